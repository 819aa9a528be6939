package ordering

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUpdater records display-order writes and can fail on a chosen ID
type fakeUpdater struct {
	orders  map[uuid.UUID]int
	applied []uuid.UUID
	failOn  uuid.UUID
}

func newFakeUpdater() *fakeUpdater {
	return &fakeUpdater{orders: make(map[uuid.UUID]int)}
}

func (f *fakeUpdater) update(_ context.Context, id uuid.UUID, order int) error {
	if id == f.failOn {
		return fmt.Errorf("store unavailable")
	}
	f.orders[id] = order
	f.applied = append(f.applied, id)
	return nil
}

func TestReorder_AppliesEachUpdate(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	updater := newFakeUpdater()
	svc := NewService(updater.update)

	err := svc.Reorder(context.Background(), []Update{
		{ID: a, Order: 2},
		{ID: b, Order: 1},
	})
	require.NoError(t, err)

	// Final values depend only on the pairs, not the batch order
	assert.Equal(t, 2, updater.orders[a])
	assert.Equal(t, 1, updater.orders[b])
}

func TestReorder_PartialFailureKeepsEarlierWrites(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	updater := newFakeUpdater()
	updater.failOn = b
	svc := NewService(updater.update)

	err := svc.Reorder(context.Background(), []Update{
		{ID: a, Order: 1},
		{ID: b, Order: 2},
		{ID: c, Order: 3},
	})
	require.Error(t, err)

	// No rollback: the write before the failure sticks, the one after
	// never happens.
	assert.Equal(t, []uuid.UUID{a}, updater.applied)
	assert.Equal(t, 1, updater.orders[a])
	assert.NotContains(t, updater.orders, c)
}

func TestReorder_EmptyBatch(t *testing.T) {
	updater := newFakeUpdater()
	svc := NewService(updater.update)

	require.NoError(t, svc.Reorder(context.Background(), nil))
	assert.Empty(t, updater.applied)
}

func TestSetDisplayOrder(t *testing.T) {
	id := uuid.New()
	updater := newFakeUpdater()
	svc := NewService(updater.update)

	require.NoError(t, svc.SetDisplayOrder(context.Background(), id, 4))
	assert.Equal(t, 4, updater.orders[id])
}

func TestParseOrder(t *testing.T) {
	assert.Equal(t, 3, ParseOrder("3"))
	assert.Equal(t, -1, ParseOrder("-1"))
	assert.Equal(t, 0, ParseOrder(""))
	assert.Equal(t, 0, ParseOrder("first"))
	assert.Equal(t, 0, ParseOrder("1.5"))
}

func TestParseUpdates(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	tests := []struct {
		name    string
		payload string
		want    []Update
		wantErr bool
	}{
		{
			name:    "order spelling",
			payload: fmt.Sprintf(`[{"id":%q,"order":2},{"id":%q,"order":1}]`, a, b),
			want:    []Update{{ID: a, Order: 2}, {ID: b, Order: 1}},
		},
		{
			name:    "display_order spelling",
			payload: fmt.Sprintf(`[{"id":%q,"display_order":5}]`, a),
			want:    []Update{{ID: a, Order: 5}},
		},
		{
			name:    "display_order wins over order",
			payload: fmt.Sprintf(`[{"id":%q,"order":1,"display_order":9}]`, a),
			want:    []Update{{ID: a, Order: 9}},
		},
		{
			name:    "missing order coerces to zero",
			payload: fmt.Sprintf(`[{"id":%q}]`, a),
			want:    []Update{{ID: a, Order: 0}},
		},
		{
			name:    "unparsable id is skipped",
			payload: fmt.Sprintf(`[{"id":"nope","order":3},{"id":%q,"order":1}]`, b),
			want:    []Update{{ID: b, Order: 1}},
		},
		{
			name:    "empty array",
			payload: `[]`,
			want:    []Update{},
		},
		{
			name:    "malformed json",
			payload: `{not json`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUpdates([]byte(tt.payload))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
