package data

import (
	"context"
	"errors"

	"proteintrack/backend/types"
)

var (
	// ErrNotFound is returned when a referenced record does not exist
	ErrNotFound = errors.New("record not found")
	// ErrInvalidID is returned when an identifier string is malformed
	ErrInvalidID = errors.New("invalid id format")
	// ErrDuplicateName is returned when an item name is already taken
	ErrDuplicateName = errors.New("item name already exists")
)

// Store is the gateway to the document database. Implementations assign
// opaque string identifiers on insert and are the only place aware of
// the native id representation. Listings return records in insertion
// order.
type Store interface {
	InsertItem(ctx context.Context, item types.Item) (types.Item, error)
	FindItemByName(ctx context.Context, name string) (types.Item, error)
	FindItemByID(ctx context.Context, id string) (types.Item, error)
	AllItems(ctx context.Context) ([]types.Item, error)

	InsertConsumption(ctx context.Context, entry types.ConsumptionEntry) (types.ConsumptionEntry, error)
	ConsumptionsByDate(ctx context.Context, date string) ([]types.ConsumptionEntry, error)

	Ping(ctx context.Context) error
	CollectionNames(ctx context.Context) ([]string, error)
	Close(ctx context.Context) error
}
