// Package ordering applies caller-assigned display orders to resume
// collections. Order values are opaque integers: no renumbering,
// deduplication, or gap compaction happens here. Ties are legal and are
// resolved by the view mapper's stable sort at read time.
package ordering

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// Update pairs a row identity with its new display order
type Update struct {
	ID    uuid.UUID
	Order int
}

// UpdateFunc persists a display order for a single row of one collection
type UpdateFunc func(ctx context.Context, id uuid.UUID, order int) error

// Service reorders one collection through its UpdateFunc
type Service struct {
	update UpdateFunc
}

// NewService creates an ordering service for one collection
func NewService(update UpdateFunc) *Service {
	return &Service{update: update}
}

// Reorder applies each update in sequence. There is no batch atomicity:
// a failure partway through keeps the rows already written and returns the
// first error. Callers that need all-or-nothing semantics don't exist today;
// the admin UI resubmits the full ordering on retry.
func (s *Service) Reorder(ctx context.Context, updates []Update) error {
	for _, u := range updates {
		if err := s.update(ctx, u.ID, u.Order); err != nil {
			return fmt.Errorf("failed to reorder row %s: %w", u.ID, err)
		}
	}
	return nil
}

// SetDisplayOrder persists the order for a single row; the one-row special
// case of Reorder used when an entity is created or edited.
func (s *Service) SetDisplayOrder(ctx context.Context, id uuid.UUID, order int) error {
	if err := s.update(ctx, id, order); err != nil {
		return fmt.Errorf("failed to set display order for %s: %w", id, err)
	}
	return nil
}

// ParseOrder parses a submitted display-order value, coercing absent or
// non-numeric input to 0.
func ParseOrder(v string) int {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

// rawUpdate accepts both wire spellings of the order field. The admin pages
// historically sent "order" for skills and "display_order" for FAQ entries.
type rawUpdate struct {
	ID           string `json:"id"`
	Order        *int   `json:"order"`
	DisplayOrder *int   `json:"display_order"`
}

// ParseUpdates decodes the JSON reorder payload submitted as a form field.
// Elements with an unparsable identity are skipped; a missing order value
// coerces to 0. When both spellings are present, display_order wins.
func ParseUpdates(data []byte) ([]Update, error) {
	var raw []rawUpdate
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse reorder payload: %w", err)
	}

	updates := make([]Update, 0, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(r.ID)
		if err != nil {
			continue
		}
		order := 0
		switch {
		case r.DisplayOrder != nil:
			order = *r.DisplayOrder
		case r.Order != nil:
			order = *r.Order
		}
		updates = append(updates, Update{ID: id, Order: order})
	}
	return updates, nil
}
