package data

import (
	"context"
	"fmt"
	"testing"

	"proteintrack/backend/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreItemRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	inserted, err := store.InsertItem(ctx, types.Item{Name: "Tofu", Unit: "gm", ProteinPerUnit: 0.08})
	require.NoError(t, err)
	require.NotEmpty(t, inserted.ID)

	byID, err := store.FindItemByID(ctx, inserted.ID)
	require.NoError(t, err)
	assert.Equal(t, inserted, byID)

	byName, err := store.FindItemByName(ctx, "Tofu")
	require.NoError(t, err)
	assert.Equal(t, inserted, byName)
}

func TestMemoryStoreItemErrors(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.InsertItem(ctx, types.Item{Name: "Tofu", Unit: "gm", ProteinPerUnit: 0.08})
	require.NoError(t, err)

	_, err = store.InsertItem(ctx, types.Item{Name: "Tofu", Unit: "piece", ProteinPerUnit: 8})
	assert.ErrorIs(t, err, ErrDuplicateName)

	_, err = store.FindItemByID(ctx, "definitely-not-an-id")
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = store.FindItemByID(ctx, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.FindItemByName(ctx, "Seitan")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreInsertionOrder(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := store.InsertItem(ctx, types.Item{Name: fmt.Sprintf("item-%d", i), Unit: "gm", ProteinPerUnit: 1})
		require.NoError(t, err)
	}

	items, err := store.AllItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 5)
	for i, item := range items {
		assert.Equal(t, fmt.Sprintf("item-%d", i), item.Name)
	}
}

func TestMemoryStoreConsumptionsByDate(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for _, date := range []string{"2024-01-15", "2024-01-16", "2024-01-15"} {
		_, err := store.InsertConsumption(ctx, types.ConsumptionEntry{Date: date, ItemName: "Tofu", Quantity: 1})
		require.NoError(t, err)
	}

	entries, err := store.ConsumptionsByDate(ctx, "2024-01-15")
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	entries, err = store.ConsumptionsByDate(ctx, "1999-01-01")
	require.NoError(t, err)
	assert.Empty(t, entries)
}
