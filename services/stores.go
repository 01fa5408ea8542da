package services

import (
	"context"

	"github.com/Sanjay-Kumar-Git/eatoes-Admin/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuFilter narrows a menu listing. Nil pointer fields mean "no constraint".
type MenuFilter struct {
	Category  string
	Available *bool
	MinPrice  *float64
	MaxPrice  *float64
}

// MenuItemUpdate carries the fields of a partial menu item update.
// Nil fields are left untouched.
type MenuItemUpdate struct {
	Name            *string
	Description     *string
	Category        *string
	Price           *float64
	Ingredients     []string
	PreparationTime *int
	ImageURL        *string
	IsAvailable     *bool
}

// OrderFilter narrows an order listing page.
type OrderFilter struct {
	Status models.OrderStatus
	Page   int
	Limit  int
}

// MenuStore is the persistence contract for the menu catalog.
// Implementations return ErrNotFound for missing items and *StorageError
// for infrastructure failures.
type MenuStore interface {
	Insert(ctx context.Context, item *models.MenuItem) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error)
	Find(ctx context.Context, filter MenuFilter) ([]models.MenuItem, error)
	Search(ctx context.Context, query string) ([]models.MenuItem, error)
	Update(ctx context.Context, id primitive.ObjectID, update MenuItemUpdate) (*models.MenuItem, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	ToggleAvailability(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error)
}

// OrderStore is the persistence contract for orders.
type OrderStore interface {
	Insert(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	Find(ctx context.Context, filter OrderFilter) ([]models.Order, int64, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) (*models.Order, error)
	TopSellers(ctx context.Context, limit int) ([]models.TopSeller, error)
}
