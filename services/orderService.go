package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Sanjay-Kumar-Git/eatoes-Admin/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderLineInput is one requested (menu item reference, quantity) pair.
// The reference is a hex object id; price is never accepted from the client.
type OrderLineInput struct {
	MenuItem string `json:"menuItem"`
	Quantity int    `json:"quantity"`
}

// OrderService prices and persists orders and gates status updates.
type OrderService struct {
	menu   MenuStore
	orders OrderStore
}

func NewOrderService(menu MenuStore, orders OrderStore) *OrderService {
	return &OrderService{menu: menu, orders: orders}
}

// Create resolves every line against the menu catalog, snapshots the current
// price onto each line, sums the total and persists the order with status
// Pending. Resolution is all-or-nothing: nothing is written unless every
// line resolves.
func (s *OrderService) Create(ctx context.Context, lines []OrderLineInput, customerName, tableNumber string) (*models.Order, error) {
	if len(lines) == 0 {
		return nil, NewValidationError("order must contain items")
	}

	items := make([]models.OrderLine, 0, len(lines))
	var total float64

	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, NewValidationError("invalid quantity for menu item: %s", line.MenuItem)
		}

		id, err := primitive.ObjectIDFromHex(line.MenuItem)
		if err != nil {
			return nil, NewValidationError("invalid menu item: %s", line.MenuItem)
		}

		item, err := s.menu.FindByID(ctx, id)
		if errors.Is(err, ErrNotFound) {
			return nil, NewValidationError("invalid menu item: %s", line.MenuItem)
		}
		if err != nil {
			return nil, err
		}

		items = append(items, models.OrderLine{
			MenuItem: item.ID,
			Name:     item.Name,
			Category: item.Category,
			Quantity: line.Quantity,
			Price:    item.Price,
		})
		total += item.Price * float64(line.Quantity)
	}

	now := time.Now()
	order := &models.Order{
		ID:           primitive.NewObjectID(),
		Items:        items,
		TotalAmount:  total,
		CustomerName: customerName,
		TableNumber:  tableNumber,
		Status:       models.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	order.OrderNumber = newOrderNumber(order.ID)

	if err := s.orders.Insert(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateStatus validates newStatus against the closed vocabulary and
// overwrites the status field of the order. Every (old, new) pair of valid
// statuses is legal; there is no transition graph and no version check,
// so concurrent updates race with last-write-wins.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, newStatus models.OrderStatus) (*models.Order, error) {
	if !newStatus.IsValid() {
		return nil, NewValidationError("invalid status value")
	}

	id, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return nil, ErrNotFound
	}
	return s.orders.UpdateStatus(ctx, id, newStatus)
}

// Get returns one order by its hex id.
func (s *OrderService) Get(ctx context.Context, orderID string) (*models.Order, error) {
	id, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return nil, ErrNotFound
	}
	return s.orders.FindByID(ctx, id)
}

// List returns one page of orders plus the total count for the filter.
func (s *OrderService) List(ctx context.Context, filter OrderFilter) ([]models.Order, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	return s.orders.Find(ctx, filter)
}

// TopSellers returns the menu items with the highest quantity sold.
func (s *OrderService) TopSellers(ctx context.Context, limit int) ([]models.TopSeller, error) {
	if limit < 1 {
		limit = 5
	}
	return s.orders.TopSellers(ctx, limit)
}

// newOrderNumber derives the human-facing order number from the assigned id.
func newOrderNumber(id primitive.ObjectID) string {
	hex := id.Hex()
	return "ORD-" + strings.ToUpper(hex[len(hex)-6:])
}
