package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ListSkills retrieves all skills ordered by display order
func (db *DB) ListSkills(ctx context.Context) ([]Skill, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, category, self_rating, evidence, honest_notes,
		        years_experience, in_use, last_used, display_order, created_at
		 FROM resume_skills ORDER BY display_order`)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	var skills []Skill
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.SelfRating,
			&s.Evidence, &s.HonestNotes, &s.YearsExperience, &s.InUse,
			&s.LastUsed, &s.DisplayOrder, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, s)
	}
	return skills, nil
}

// GetSkill retrieves a skill by its ID
func (db *DB) GetSkill(ctx context.Context, id uuid.UUID) (*Skill, error) {
	var s Skill
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, category, self_rating, evidence, honest_notes,
		        years_experience, in_use, last_used, display_order, created_at
		 FROM resume_skills WHERE id = $1`,
		id,
	).Scan(&s.ID, &s.Name, &s.Category, &s.SelfRating, &s.Evidence,
		&s.HonestNotes, &s.YearsExperience, &s.InUse, &s.LastUsed,
		&s.DisplayOrder, &s.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get skill: %w", err)
	}
	return &s, nil
}

// InsertSkill creates a new skill and returns its ID
func (db *DB) InsertSkill(ctx context.Context, s *Skill) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO resume_skills
		     (name, category, self_rating, evidence, honest_notes,
		      years_experience, in_use, last_used, display_order)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		s.Name, s.Category, s.SelfRating, s.Evidence, s.HonestNotes,
		s.YearsExperience, s.InUse, s.LastUsed, s.DisplayOrder,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert skill: %w", err)
	}
	return id, nil
}

// UpdateSkill updates an existing skill
func (db *DB) UpdateSkill(ctx context.Context, s *Skill) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE resume_skills
		 SET name = $1, category = $2, self_rating = $3, evidence = $4,
		     honest_notes = $5, years_experience = $6, in_use = $7,
		     last_used = $8, display_order = $9
		 WHERE id = $10`,
		s.Name, s.Category, s.SelfRating, s.Evidence, s.HonestNotes,
		s.YearsExperience, s.InUse, s.LastUsed, s.DisplayOrder, s.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update skill: %w", err)
	}
	return nil
}

// DeleteSkill deletes a skill by its ID
func (db *DB) DeleteSkill(ctx context.Context, id uuid.UUID) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM resume_skills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}
	return nil
}

// UpdateSkillOrder persists a new display order for one skill
func (db *DB) UpdateSkillOrder(ctx context.Context, id uuid.UUID, order int) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE resume_skills SET display_order = $1 WHERE id = $2`,
		order, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update skill order: %w", err)
	}
	return nil
}

// CountSkills returns the number of skill rows
func (db *DB) CountSkills(ctx context.Context) (int, error) {
	var count int
	err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM resume_skills`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count skills: %w", err)
	}
	return count, nil
}
