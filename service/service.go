package service

import (
	"context"
	"errors"
	"math"

	"proteintrack/backend/data"
	"proteintrack/backend/messaging"
	"proteintrack/backend/settings"
	"proteintrack/backend/types"
)

// TrackerService implements the protein tracking operations: validate
// the request, perform one or two storage calls, reshape the result.
type TrackerService struct {
	store data.Store
	cfg   settings.Config
}

func NewTrackerService(store data.Store, cfg settings.Config) *TrackerService {
	return &TrackerService{
		store: store,
		cfg:   cfg,
	}
}

// CreateItem persists a new food item. The name must not be taken yet.
func (s *TrackerService) CreateItem(ctx context.Context, req types.ItemRequest) (types.Item, error) {
	if err := ValidateItemRequest(req); err != nil {
		return types.Item{}, &ValidationError{err}
	}

	_, err := s.store.FindItemByName(ctx, req.Name)
	if err == nil {
		return types.Item{}, ErrItemExists
	}
	if !errors.Is(err, data.ErrNotFound) {
		return types.Item{}, err
	}

	item, err := s.store.InsertItem(ctx, types.Item{
		Name:           req.Name,
		Unit:           req.Unit,
		ProteinPerUnit: req.ProteinPerUnit,
	})
	if err != nil {
		// Unique index backstop for the find-then-insert window
		if errors.Is(err, data.ErrDuplicateName) {
			return types.Item{}, ErrItemExists
		}
		return types.Item{}, err
	}

	messaging.BroadcastMessage("items_updated")
	return item, nil
}

func (s *TrackerService) GetAllItems(ctx context.Context) ([]types.Item, error) {
	items, err := s.store.AllItems(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []types.Item{}
	}
	return items, nil
}

// LogConsumption records a consumption entry for an existing item,
// snapshotting the item fields and the computed protein total.
func (s *TrackerService) LogConsumption(ctx context.Context, req types.ConsumptionRequest) (types.ConsumptionEntry, error) {
	if err := ValidateConsumptionRequest(req); err != nil {
		return types.ConsumptionEntry{}, &ValidationError{err}
	}

	item, err := s.store.FindItemByID(ctx, req.ItemID)
	if err != nil {
		return types.ConsumptionEntry{}, err
	}

	entry, err := s.store.InsertConsumption(ctx, types.ConsumptionEntry{
		Date:           req.Date,
		ItemID:         req.ItemID,
		ItemName:       item.Name,
		Unit:           item.Unit,
		Quantity:       req.Quantity,
		ProteinPerUnit: item.ProteinPerUnit,
		ProteinTotal:   item.ProteinPerUnit * req.Quantity,
	})
	if err != nil {
		return types.ConsumptionEntry{}, err
	}

	messaging.BroadcastMessage("consumptions_updated")
	return entry, nil
}

// GetConsumptionsByDate returns all entries stored for a calendar date
// together with the day's protein total, rounded to two decimals.
func (s *TrackerService) GetConsumptionsByDate(ctx context.Context, date string) (types.DailyConsumptionResponse, error) {
	if err := ValidateDate(date); err != nil {
		return types.DailyConsumptionResponse{}, &ValidationError{err}
	}

	entries, err := s.store.ConsumptionsByDate(ctx, date)
	if err != nil {
		return types.DailyConsumptionResponse{}, err
	}
	if entries == nil {
		entries = []types.ConsumptionEntry{}
	}

	total := 0.0
	for _, entry := range entries {
		total += entry.ProteinTotal
	}

	return types.DailyConsumptionResponse{
		Date:         date,
		Entries:      entries,
		TotalProtein: math.Round(total*100) / 100,
	}, nil
}

// DatabaseStatus reports storage connectivity for the diagnostic
// endpoint. Failures degrade the status fields instead of erroring.
func (s *TrackerService) DatabaseStatus(ctx context.Context) types.DatabaseStatus {
	status := types.DatabaseStatus{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if s.store != nil {
		if err := s.store.Ping(ctx); err != nil {
			status.Database = "❌ Error: " + truncate(err.Error(), 50)
		} else {
			status.ConnectionStatus = "Connected"
			if collections, err := s.store.CollectionNames(ctx); err != nil {
				status.Database = "⚠️  Connected but Error: " + truncate(err.Error(), 50)
			} else {
				if len(collections) > 10 {
					collections = collections[:10]
				}
				status.Collections = collections
				status.Database = "✅ Connected & Working"
			}
		}
	}

	if s.cfg.DatabaseURL != "" {
		status.DatabaseURL = "✅ Set"
	} else {
		status.DatabaseURL = "❌ Not Set"
	}
	if s.cfg.DatabaseName != "" {
		status.DatabaseName = "✅ Set"
	} else {
		status.DatabaseName = "❌ Not Set"
	}

	return status
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
