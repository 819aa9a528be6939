package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ListFaqResponses retrieves all FAQ responses ordered by display order
func (db *DB) ListFaqResponses(ctx context.Context) ([]FaqResponse, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, question, answer, is_common_question, display_order, created_at
		 FROM resume_faq_responses ORDER BY display_order`)
	if err != nil {
		return nil, fmt.Errorf("failed to list faq responses: %w", err)
	}
	defer rows.Close()

	var faqs []FaqResponse
	for rows.Next() {
		var f FaqResponse
		if err := rows.Scan(&f.ID, &f.Question, &f.Answer, &f.IsCommonQuestion,
			&f.DisplayOrder, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan faq response: %w", err)
		}
		faqs = append(faqs, f)
	}
	return faqs, nil
}

// GetFaqResponse retrieves a FAQ response by its ID
func (db *DB) GetFaqResponse(ctx context.Context, id uuid.UUID) (*FaqResponse, error) {
	var f FaqResponse
	err := db.pool.QueryRow(ctx,
		`SELECT id, question, answer, is_common_question, display_order, created_at
		 FROM resume_faq_responses WHERE id = $1`,
		id,
	).Scan(&f.ID, &f.Question, &f.Answer, &f.IsCommonQuestion,
		&f.DisplayOrder, &f.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get faq response: %w", err)
	}
	return &f, nil
}

// InsertFaqResponse creates a new FAQ response and returns its ID
func (db *DB) InsertFaqResponse(ctx context.Context, f *FaqResponse) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO resume_faq_responses
		     (question, answer, is_common_question, display_order)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		f.Question, f.Answer, f.IsCommonQuestion, f.DisplayOrder,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert faq response: %w", err)
	}
	return id, nil
}

// UpdateFaqResponse updates an existing FAQ response
func (db *DB) UpdateFaqResponse(ctx context.Context, f *FaqResponse) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE resume_faq_responses
		 SET question = $1, answer = $2, is_common_question = $3, display_order = $4
		 WHERE id = $5`,
		f.Question, f.Answer, f.IsCommonQuestion, f.DisplayOrder, f.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update faq response: %w", err)
	}
	return nil
}

// DeleteFaqResponse deletes a FAQ response by its ID
func (db *DB) DeleteFaqResponse(ctx context.Context, id uuid.UUID) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM resume_faq_responses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete faq response: %w", err)
	}
	return nil
}

// UpdateFaqOrder persists a new display order for one FAQ response
func (db *DB) UpdateFaqOrder(ctx context.Context, id uuid.UUID, order int) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE resume_faq_responses SET display_order = $1 WHERE id = $2`,
		order, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update faq order: %w", err)
	}
	return nil
}

// CountFaqResponses returns the number of FAQ rows
func (db *DB) CountFaqResponses(ctx context.Context) (int, error) {
	var count int
	err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM resume_faq_responses`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count faq responses: %w", err)
	}
	return count, nil
}
