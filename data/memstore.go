package data

import (
	"context"
	"sync"

	"proteintrack/backend/types"

	"github.com/google/uuid"
)

// MemoryStore implements Store with in-process slices. It keeps the
// same id-as-opaque-string contract as MongoStore (uuid strings instead
// of ObjectID hex) and returns records in insertion order.
type MemoryStore struct {
	mutex        sync.RWMutex
	items        []types.Item
	consumptions []types.ConsumptionEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) InsertItem(ctx context.Context, item types.Item) (types.Item, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, existing := range s.items {
		if existing.Name == item.Name {
			return types.Item{}, ErrDuplicateName
		}
	}

	item.ID = uuid.NewString()
	s.items = append(s.items, item)
	return item, nil
}

func (s *MemoryStore) FindItemByName(ctx context.Context, name string) (types.Item, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	for _, item := range s.items {
		if item.Name == name {
			return item, nil
		}
	}
	return types.Item{}, ErrNotFound
}

func (s *MemoryStore) FindItemByID(ctx context.Context, id string) (types.Item, error) {
	if _, err := uuid.Parse(id); err != nil {
		return types.Item{}, ErrInvalidID
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	for _, item := range s.items {
		if item.ID == id {
			return item, nil
		}
	}
	return types.Item{}, ErrNotFound
}

func (s *MemoryStore) AllItems(ctx context.Context) ([]types.Item, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	items := make([]types.Item, len(s.items))
	copy(items, s.items)
	return items, nil
}

func (s *MemoryStore) InsertConsumption(ctx context.Context, entry types.ConsumptionEntry) (types.ConsumptionEntry, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	entry.ID = uuid.NewString()
	s.consumptions = append(s.consumptions, entry)
	return entry, nil
}

func (s *MemoryStore) ConsumptionsByDate(ctx context.Context, date string) ([]types.ConsumptionEntry, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var entries []types.ConsumptionEntry
	for _, entry := range s.consumptions {
		if entry.Date == date {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

func (s *MemoryStore) CollectionNames(ctx context.Context) ([]string, error) {
	return []string{"item", "consumption"}, nil
}

func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}
