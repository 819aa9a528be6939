package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// GetProfile retrieves the single profile row
func (db *DB) GetProfile(ctx context.Context) (*Profile, error) {
	var p Profile
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, short_name, tagline, email, title, subtitle,
		        target_titles, target_company_stages, location, remote_preference,
		        github_url, linkedin_url, twitter_url, created_at, updated_at
		 FROM resume_profile WHERE id = $1`,
		ProfileRowID,
	).Scan(&p.ID, &p.Name, &p.ShortName, &p.Tagline, &p.Email, &p.Title, &p.Subtitle,
		&p.TargetTitles, &p.TargetCompanyStages, &p.Location, &p.RemotePreference,
		&p.GithubURL, &p.LinkedinURL, &p.TwitterURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &p, nil
}

// UpdateProfile updates the single profile row. The row identity is fixed;
// any ID set on the input is ignored.
func (db *DB) UpdateProfile(ctx context.Context, p *Profile) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE resume_profile
		 SET name = $1, short_name = $2, tagline = $3, title = $4, subtitle = $5,
		     target_titles = $6, target_company_stages = $7, location = $8,
		     remote_preference = $9, github_url = $10, linkedin_url = $11,
		     twitter_url = $12, updated_at = NOW()
		 WHERE id = $13`,
		p.Name, p.ShortName, p.Tagline, p.Title, p.Subtitle,
		p.TargetTitles, p.TargetCompanyStages, p.Location,
		p.RemotePreference, p.GithubURL, p.LinkedinURL,
		p.TwitterURL, ProfileRowID,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

// CountProfiles returns the number of profile rows (used by the
// connectivity probe; the expected answer is always 1)
func (db *DB) CountProfiles(ctx context.Context) (int, error) {
	var count int
	err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM resume_profile`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count profiles: %w", err)
	}
	return count, nil
}
