package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// TopSeller is one row of the top-sellers aggregation: a menu item joined
// with the total quantity sold across all orders.
type TopSeller struct {
	MenuItemID primitive.ObjectID `bson:"menuItemId" json:"menuItemId"`
	Name       string             `bson:"name" json:"name"`
	Category   string             `bson:"category" json:"category"`
	Price      float64            `bson:"price" json:"price"`
	TotalSold  int64              `bson:"totalSold" json:"totalSold"`
}
