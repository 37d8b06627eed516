package data

import (
	"context"
	"fmt"
	"log"

	"proteintrack/backend/settings"
	"proteintrack/backend/types"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	itemCollection        = "item"
	consumptionCollection = "consumption"
)

// itemDocument is the native representation of an item. ObjectIDs never
// leave this file; callers see hex strings only.
type itemDocument struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Name           string             `bson:"name"`
	Unit           string             `bson:"unit"`
	ProteinPerUnit float64            `bson:"protein_per_unit"`
}

type consumptionDocument struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Date           string             `bson:"date"`
	ItemID         string             `bson:"item_id"`
	ItemName       string             `bson:"item_name"`
	Unit           string             `bson:"unit"`
	Quantity       float64            `bson:"quantity"`
	ProteinPerUnit float64            `bson:"protein_per_unit"`
	ProteinTotal   float64            `bson:"protein_total"`
}

// MongoStore implements Store on top of a MongoDB database.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens the database configured in cfg and prepares the indexes
// the handlers rely on.
func Connect(ctx context.Context, cfg settings.Config) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DatabaseURL))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	store := &MongoStore{
		client: client,
		db:     client.Database(cfg.DatabaseName),
	}

	// The driver connects lazily; an unreachable database shows up here
	// first. Keep running so /test can report the degraded status.
	if err := store.initIndexes(ctx); err != nil {
		log.Printf("Warning: %v", err)
	}

	return store, nil
}

func (s *MongoStore) initIndexes(ctx context.Context) error {
	_, err := s.db.Collection(itemCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create item name index: %v", err)
	}

	_, err = s.db.Collection(consumptionCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "date", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create consumption date index: %v", err)
	}

	return nil
}

func (s *MongoStore) InsertItem(ctx context.Context, item types.Item) (types.Item, error) {
	doc := itemDocument{
		Name:           item.Name,
		Unit:           item.Unit,
		ProteinPerUnit: item.ProteinPerUnit,
	}

	res, err := s.db.Collection(itemCollection).InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return types.Item{}, ErrDuplicateName
		}
		return types.Item{}, fmt.Errorf("failed to insert item: %v", err)
	}

	item.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return item, nil
}

func (s *MongoStore) FindItemByName(ctx context.Context, name string) (types.Item, error) {
	var doc itemDocument
	err := s.db.Collection(itemCollection).FindOne(ctx, bson.M{"name": name}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return types.Item{}, ErrNotFound
		}
		return types.Item{}, fmt.Errorf("failed to query item: %v", err)
	}
	return doc.toItem(), nil
}

func (s *MongoStore) FindItemByID(ctx context.Context, id string) (types.Item, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return types.Item{}, ErrInvalidID
	}

	var doc itemDocument
	err = s.db.Collection(itemCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return types.Item{}, ErrNotFound
		}
		return types.Item{}, fmt.Errorf("failed to query item: %v", err)
	}
	return doc.toItem(), nil
}

func (s *MongoStore) AllItems(ctx context.Context) ([]types.Item, error) {
	cursor, err := s.db.Collection(itemCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %v", err)
	}
	defer cursor.Close(ctx)

	var items []types.Item
	for cursor.Next(ctx) {
		var doc itemDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode item: %v", err)
		}
		items = append(items, doc.toItem())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("error iterating items: %v", err)
	}

	return items, nil
}

func (s *MongoStore) InsertConsumption(ctx context.Context, entry types.ConsumptionEntry) (types.ConsumptionEntry, error) {
	doc := consumptionDocument{
		Date:           entry.Date,
		ItemID:         entry.ItemID,
		ItemName:       entry.ItemName,
		Unit:           entry.Unit,
		Quantity:       entry.Quantity,
		ProteinPerUnit: entry.ProteinPerUnit,
		ProteinTotal:   entry.ProteinTotal,
	}

	res, err := s.db.Collection(consumptionCollection).InsertOne(ctx, doc)
	if err != nil {
		return types.ConsumptionEntry{}, fmt.Errorf("failed to insert consumption: %v", err)
	}

	entry.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return entry, nil
}

func (s *MongoStore) ConsumptionsByDate(ctx context.Context, date string) ([]types.ConsumptionEntry, error) {
	cursor, err := s.db.Collection(consumptionCollection).Find(ctx, bson.M{"date": date})
	if err != nil {
		return nil, fmt.Errorf("failed to query consumptions: %v", err)
	}
	defer cursor.Close(ctx)

	var entries []types.ConsumptionEntry
	for cursor.Next(ctx) {
		var doc consumptionDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode consumption: %v", err)
		}
		entries = append(entries, doc.toEntry())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("error iterating consumptions: %v", err)
	}

	return entries, nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *MongoStore) CollectionNames(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.D{})
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (d itemDocument) toItem() types.Item {
	return types.Item{
		ID:             d.ID.Hex(),
		Name:           d.Name,
		Unit:           d.Unit,
		ProteinPerUnit: d.ProteinPerUnit,
	}
}

func (d consumptionDocument) toEntry() types.ConsumptionEntry {
	return types.ConsumptionEntry{
		ID:             d.ID.Hex(),
		Date:           d.Date,
		ItemID:         d.ItemID,
		ItemName:       d.ItemName,
		Unit:           d.Unit,
		Quantity:       d.Quantity,
		ProteinPerUnit: d.ProteinPerUnit,
		ProteinTotal:   d.ProteinTotal,
	}
}
