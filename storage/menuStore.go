package storage

import (
	"context"
	"errors"
	"time"

	"github.com/Sanjay-Kumar-Git/eatoes-Admin/models"
	"github.com/Sanjay-Kumar-Git/eatoes-Admin/services"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MenuStore is the Mongo-backed menu catalog.
type MenuStore struct {
	collection *mongo.Collection
}

func NewMenuStore(collection *mongo.Collection) *MenuStore {
	return &MenuStore{collection: collection}
}

// EnsureIndexes creates the text index backing full-text search.
func (s *MenuStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "name", Value: "text"},
			{Key: "description", Value: "text"},
			{Key: "category", Value: "text"},
			{Key: "ingredients", Value: "text"},
		},
	})
	if err != nil {
		return &services.StorageError{Op: "create menu text index", Err: err}
	}
	return nil
}

func (s *MenuStore) Insert(ctx context.Context, item *models.MenuItem) error {
	if _, err := s.collection.InsertOne(ctx, item); err != nil {
		return &services.StorageError{Op: "insert menu item", Err: err}
	}
	return nil
}

func (s *MenuStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
	var item models.MenuItem
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, services.ErrNotFound
	}
	if err != nil {
		return nil, &services.StorageError{Op: "find menu item", Err: err}
	}
	return &item, nil
}

func (s *MenuStore) Find(ctx context.Context, filter services.MenuFilter) ([]models.MenuItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := s.collection.Find(ctx, buildMenuFilter(filter), opts)
	if err != nil {
		return nil, &services.StorageError{Op: "list menu items", Err: err}
	}
	defer cursor.Close(ctx)

	items := []models.MenuItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, &services.StorageError{Op: "decode menu items", Err: err}
	}
	return items, nil
}

func (s *MenuStore) Search(ctx context.Context, query string) ([]models.MenuItem, error) {
	scoreMeta := bson.M{"$meta": "textScore"}
	opts := options.Find().
		SetProjection(bson.M{"score": scoreMeta}).
		SetSort(bson.M{"score": scoreMeta})

	cursor, err := s.collection.Find(ctx, bson.M{"$text": bson.M{"$search": query}}, opts)
	if err != nil {
		return nil, &services.StorageError{Op: "search menu items", Err: err}
	}
	defer cursor.Close(ctx)

	items := []models.MenuItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, &services.StorageError{Op: "decode search results", Err: err}
	}
	return items, nil
}

func (s *MenuStore) Update(ctx context.Context, id primitive.ObjectID, update services.MenuItemUpdate) (*models.MenuItem, error) {
	set := buildMenuUpdate(update)
	set = append(set, bson.E{Key: "updatedAt", Value: time.Now()})

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var item models.MenuItem
	err := s.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.D{{Key: "$set", Value: set}}, opts).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, services.ErrNotFound
	}
	if err != nil {
		return nil, &services.StorageError{Op: "update menu item", Err: err}
	}
	return &item, nil
}

func (s *MenuStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return &services.StorageError{Op: "delete menu item", Err: err}
	}
	if result.DeletedCount == 0 {
		return services.ErrNotFound
	}
	return nil
}

// ToggleAvailability flips isAvailable in a single pipeline update, so the
// flip is atomic against concurrent toggles of the same item.
func (s *MenuStore) ToggleAvailability(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"isAvailable": bson.M{"$not": "$isAvailable"},
			"updatedAt":   time.Now(),
		}}},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var item models.MenuItem
	err := s.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, pipeline, opts).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, services.ErrNotFound
	}
	if err != nil {
		return nil, &services.StorageError{Op: "toggle menu item availability", Err: err}
	}
	return &item, nil
}

func buildMenuFilter(filter services.MenuFilter) bson.M {
	query := bson.M{}

	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Available != nil {
		query["isAvailable"] = *filter.Available
	}

	price := bson.M{}
	if filter.MinPrice != nil {
		price["$gte"] = *filter.MinPrice
	}
	if filter.MaxPrice != nil {
		price["$lte"] = *filter.MaxPrice
	}
	if len(price) > 0 {
		query["price"] = price
	}
	return query
}

func buildMenuUpdate(update services.MenuItemUpdate) bson.D {
	set := bson.D{}

	if update.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *update.Name})
	}
	if update.Description != nil {
		set = append(set, bson.E{Key: "description", Value: *update.Description})
	}
	if update.Category != nil {
		set = append(set, bson.E{Key: "category", Value: *update.Category})
	}
	if update.Price != nil {
		set = append(set, bson.E{Key: "price", Value: *update.Price})
	}
	if update.Ingredients != nil {
		set = append(set, bson.E{Key: "ingredients", Value: update.Ingredients})
	}
	if update.PreparationTime != nil {
		set = append(set, bson.E{Key: "preparationTime", Value: *update.PreparationTime})
	}
	if update.ImageURL != nil {
		set = append(set, bson.E{Key: "imageUrl", Value: *update.ImageURL})
	}
	if update.IsAvailable != nil {
		set = append(set, bson.E{Key: "isAvailable", Value: *update.IsAvailable})
	}
	return set
}
