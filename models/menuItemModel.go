package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuItem is one orderable dish or drink in the catalog. Its price is
// authoritative only at order-creation time; orders snapshot it per line.
type MenuItem struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name            string             `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Description     string             `bson:"description,omitempty" json:"description,omitempty"`
	Category        string             `bson:"category" json:"category" validate:"required"`
	Price           float64            `bson:"price" json:"price" validate:"min=0"`
	Ingredients     []string           `bson:"ingredients" json:"ingredients"`
	PreparationTime int                `bson:"preparationTime" json:"preparationTime" validate:"min=0"`
	ImageURL        string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	IsAvailable     bool               `bson:"isAvailable" json:"isAvailable"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}
