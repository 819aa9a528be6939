package db

import (
	"context"
	"fmt"
)

// ListWeaknesses retrieves all weakness rows. There are no admin actions
// for weaknesses; the table is edited out of band and only read here.
func (db *DB) ListWeaknesses(ctx context.Context) ([]Weakness, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, description, created_at FROM resume_weaknesses ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list weaknesses: %w", err)
	}
	defer rows.Close()

	var weaknesses []Weakness
	for rows.Next() {
		var w Weakness
		if err := rows.Scan(&w.ID, &w.Description, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan weakness: %w", err)
		}
		weaknesses = append(weaknesses, w)
	}
	return weaknesses, nil
}

// ListValuesCulture retrieves all values/culture rows (read-only, like weaknesses)
func (db *DB) ListValuesCulture(ctx context.Context) ([]ValuesCulture, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, must_haves, dealbreakers, created_at
		 FROM resume_values_culture ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list values culture: %w", err)
	}
	defer rows.Close()

	var values []ValuesCulture
	for rows.Next() {
		var v ValuesCulture
		if err := rows.Scan(&v.ID, &v.MustHaves, &v.Dealbreakers, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan values culture: %w", err)
		}
		values = append(values, v)
	}
	return values, nil
}
