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

// OrderStore is the Mongo-backed order collection.
type OrderStore struct {
	collection         *mongo.Collection
	menuCollectionName string
}

func NewOrderStore(collection *mongo.Collection, menuCollectionName string) *OrderStore {
	return &OrderStore{collection: collection, menuCollectionName: menuCollectionName}
}

func (s *OrderStore) Insert(ctx context.Context, order *models.Order) error {
	if _, err := s.collection.InsertOne(ctx, order); err != nil {
		return &services.StorageError{Op: "insert order", Err: err}
	}
	return nil
}

func (s *OrderStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, services.ErrNotFound
	}
	if err != nil {
		return nil, &services.StorageError{Op: "find order", Err: err}
	}
	return &order, nil
}

func (s *OrderStore) Find(ctx context.Context, filter services.OrderFilter) ([]models.Order, int64, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	total, err := s.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, &services.StorageError{Op: "count orders", Err: err}
	}

	skip := int64((filter.Page - 1) * filter.Limit)
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(filter.Limit))

	cursor, err := s.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, &services.StorageError{Op: "list orders", Err: err}
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, 0, &services.StorageError{Op: "decode orders", Err: err}
	}
	return orders, total, nil
}

// UpdateStatus overwrites the status field only. There is no concurrency
// token; concurrent updates to the same order are last-write-wins.
func (s *OrderStore) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) (*models.Order, error) {
	update := bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var order models.Order
	err := s.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, services.ErrNotFound
	}
	if err != nil {
		return nil, &services.StorageError{Op: "update order status", Err: err}
	}
	return &order, nil
}

// TopSellers sums quantities per menu item across all orders and joins the
// current catalog entry for display fields.
func (s *OrderStore) TopSellers(ctx context.Context, limit int) ([]models.TopSeller, error) {
	cursor, err := s.collection.Aggregate(ctx, topSellersPipeline(s.menuCollectionName, limit))
	if err != nil {
		return nil, &services.StorageError{Op: "aggregate top sellers", Err: err}
	}
	defer cursor.Close(ctx)

	result := []models.TopSeller{}
	if err := cursor.All(ctx, &result); err != nil {
		return nil, &services.StorageError{Op: "decode top sellers", Err: err}
	}
	return result, nil
}

func topSellersPipeline(menuCollection string, limit int) mongo.Pipeline {
	unwindStage := bson.D{{Key: "$unwind", Value: "$items"}}
	groupStage := bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: "$items.menuItem"},
		{Key: "totalQty", Value: bson.D{{Key: "$sum", Value: "$items.quantity"}}},
	}}}
	lookupStage := bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: menuCollection},
		{Key: "localField", Value: "_id"},
		{Key: "foreignField", Value: "_id"},
		{Key: "as", Value: "details"},
	}}}
	unwindDetailsStage := bson.D{{Key: "$unwind", Value: "$details"}}
	sortStage := bson.D{{Key: "$sort", Value: bson.D{{Key: "totalQty", Value: -1}}}}
	limitStage := bson.D{{Key: "$limit", Value: int64(limit)}}
	projectStage := bson.D{{Key: "$project", Value: bson.D{
		{Key: "_id", Value: 0},
		{Key: "menuItemId", Value: "$_id"},
		{Key: "name", Value: "$details.name"},
		{Key: "category", Value: "$details.category"},
		{Key: "price", Value: "$details.price"},
		{Key: "totalSold", Value: "$totalQty"},
	}}}

	return mongo.Pipeline{unwindStage, groupStage, lookupStage, unwindDetailsStage, sortStage, limitStage, projectStage}
}
