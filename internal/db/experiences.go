package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ListExperiences retrieves all experiences ordered by display order
func (db *DB) ListExperiences(ctx context.Context) ([]Experience, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, company_name, title, title_progression, team, start_date,
		        end_date, is_current, bullet_points, display_order, on_hero_section,
		        created_at
		 FROM resume_experiences ORDER BY display_order`)
	if err != nil {
		return nil, fmt.Errorf("failed to list experiences: %w", err)
	}
	defer rows.Close()

	var experiences []Experience
	for rows.Next() {
		var e Experience
		if err := rows.Scan(&e.ID, &e.CompanyName, &e.Title, &e.TitleProgression,
			&e.Team, &e.StartDate, &e.EndDate, &e.IsCurrent, &e.BulletPoints,
			&e.DisplayOrder, &e.OnHeroSection, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan experience: %w", err)
		}
		experiences = append(experiences, e)
	}
	return experiences, nil
}

// GetExperience retrieves an experience by its ID
func (db *DB) GetExperience(ctx context.Context, id uuid.UUID) (*Experience, error) {
	var e Experience
	err := db.pool.QueryRow(ctx,
		`SELECT id, company_name, title, title_progression, team, start_date,
		        end_date, is_current, bullet_points, display_order, on_hero_section,
		        created_at
		 FROM resume_experiences WHERE id = $1`,
		id,
	).Scan(&e.ID, &e.CompanyName, &e.Title, &e.TitleProgression, &e.Team,
		&e.StartDate, &e.EndDate, &e.IsCurrent, &e.BulletPoints,
		&e.DisplayOrder, &e.OnHeroSection, &e.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get experience: %w", err)
	}
	return &e, nil
}

// InsertExperience creates a new experience and returns its ID
func (db *DB) InsertExperience(ctx context.Context, e *Experience) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO resume_experiences
		     (company_name, title, title_progression, team, start_date, end_date,
		      is_current, bullet_points, display_order, on_hero_section)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id`,
		e.CompanyName, e.Title, e.TitleProgression, e.Team, e.StartDate,
		e.EndDate, e.IsCurrent, e.BulletPoints, e.DisplayOrder, e.OnHeroSection,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert experience: %w", err)
	}
	return id, nil
}

// UpdateExperience updates an existing experience
func (db *DB) UpdateExperience(ctx context.Context, e *Experience) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE resume_experiences
		 SET company_name = $1, title = $2, title_progression = $3, team = $4,
		     start_date = $5, end_date = $6, is_current = $7, bullet_points = $8,
		     display_order = $9, on_hero_section = $10
		 WHERE id = $11`,
		e.CompanyName, e.Title, e.TitleProgression, e.Team, e.StartDate,
		e.EndDate, e.IsCurrent, e.BulletPoints, e.DisplayOrder, e.OnHeroSection,
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update experience: %w", err)
	}
	return nil
}

// DeleteExperience deletes an experience by its ID
func (db *DB) DeleteExperience(ctx context.Context, id uuid.UUID) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM resume_experiences WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete experience: %w", err)
	}
	return nil
}

// UpdateExperienceOrder persists a new display order for one experience
func (db *DB) UpdateExperienceOrder(ctx context.Context, id uuid.UUID, order int) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE resume_experiences SET display_order = $1 WHERE id = $2`,
		order, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update experience order: %w", err)
	}
	return nil
}

// CountExperiences returns the number of experience rows
func (db *DB) CountExperiences(ctx context.Context) (int, error) {
	var count int
	err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM resume_experiences`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count experiences: %w", err)
	}
	return count, nil
}
