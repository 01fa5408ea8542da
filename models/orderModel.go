package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus is the closed status vocabulary. There is no transition graph:
// any status may be set from any other.
type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusPreparing OrderStatus = "Preparing"
	StatusReady     OrderStatus = "Ready"
	StatusDelivered OrderStatus = "Delivered"
	StatusCancelled OrderStatus = "Cancelled"
)

var validOrderStatuses = map[OrderStatus]bool{
	StatusPending:   true,
	StatusPreparing: true,
	StatusReady:     true,
	StatusDelivered: true,
	StatusCancelled: true,
}

// IsValid reports whether s is a member of the status vocabulary.
// Matching is exact; case variants are invalid.
func (s OrderStatus) IsValid() bool {
	return validOrderStatuses[s]
}

// OrderLine is one (menu item, quantity, price) triple within an order.
// Price, name and category are snapshots taken at order creation; later
// changes to the referenced menu item never touch them.
type OrderLine struct {
	MenuItem primitive.ObjectID `bson:"menuItem" json:"menuItem"`
	Name     string             `bson:"name,omitempty" json:"name,omitempty"`
	Category string             `bson:"category,omitempty" json:"category,omitempty"`
	Quantity int                `bson:"quantity" json:"quantity" validate:"gt=0"`
	Price    float64            `bson:"price" json:"price"`
}

// Order is a customer's placed request. Lines and total are write-once;
// status is the only field mutated after creation.
type Order struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	OrderNumber  string             `bson:"orderNumber" json:"orderNumber"`
	Items        []OrderLine        `bson:"items" json:"items"`
	TotalAmount  float64            `bson:"totalAmount" json:"totalAmount"`
	CustomerName string             `bson:"customerName,omitempty" json:"customerName,omitempty"`
	TableNumber  string             `bson:"tableNumber,omitempty" json:"tableNumber,omitempty"`
	Status       OrderStatus        `bson:"status" json:"status"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
