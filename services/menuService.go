package services

import (
	"context"
	"time"

	"github.com/Sanjay-Kumar-Git/eatoes-Admin/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuService owns the lifecycle of menu catalog entries.
type MenuService struct {
	store MenuStore
}

func NewMenuService(store MenuStore) *MenuService {
	return &MenuService{store: store}
}

// Create assigns the identifier and timestamps and persists the item.
func (s *MenuService) Create(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error) {
	now := time.Now()
	item.ID = primitive.NewObjectID()
	item.CreatedAt = now
	item.UpdatedAt = now

	if err := s.store.Insert(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Get returns one menu item by its hex id.
func (s *MenuService) Get(ctx context.Context, itemID string) (*models.MenuItem, error) {
	id, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return nil, ErrNotFound
	}
	return s.store.FindByID(ctx, id)
}

// List returns catalog entries matching the filter, newest first.
func (s *MenuService) List(ctx context.Context, filter MenuFilter) ([]models.MenuItem, error) {
	return s.store.Find(ctx, filter)
}

// Search runs a full-text query over the catalog. An empty query returns an
// empty result, never an error.
func (s *MenuService) Search(ctx context.Context, query string) ([]models.MenuItem, error) {
	if query == "" {
		return []models.MenuItem{}, nil
	}
	return s.store.Search(ctx, query)
}

// Update applies a partial field update and returns the updated item.
func (s *MenuService) Update(ctx context.Context, itemID string, update MenuItemUpdate) (*models.MenuItem, error) {
	id, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return nil, ErrNotFound
	}
	return s.store.Update(ctx, id, update)
}

// Delete removes the item. Orders referencing it keep their snapshots.
func (s *MenuService) Delete(ctx context.Context, itemID string) error {
	id, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return ErrNotFound
	}
	return s.store.Delete(ctx, id)
}

// ToggleAvailability flips the isAvailable flag atomically per item.
// Two consecutive toggles restore the original value, so retries are safe.
func (s *MenuService) ToggleAvailability(ctx context.Context, itemID string) (*models.MenuItem, error) {
	id, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return nil, ErrNotFound
	}
	return s.store.ToggleAvailability(ctx, id)
}
