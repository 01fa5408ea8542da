package controller_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"

	controller "github.com/Sanjay-Kumar-Git/eatoes-Admin/controllers"
	"github.com/Sanjay-Kumar-Git/eatoes-Admin/models"
	"github.com/Sanjay-Kumar-Git/eatoes-Admin/routes"
	"github.com/Sanjay-Kumar-Git/eatoes-Admin/services"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubMenuStore struct {
	items map[primitive.ObjectID]models.MenuItem
}

func newStubMenuStore() *stubMenuStore {
	return &stubMenuStore{items: map[primitive.ObjectID]models.MenuItem{}}
}

func (s *stubMenuStore) add(item models.MenuItem) models.MenuItem {
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	s.items[item.ID] = item
	return item
}

func (s *stubMenuStore) Insert(_ context.Context, item *models.MenuItem) error {
	s.items[item.ID] = *item
	return nil
}

func (s *stubMenuStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
	if item, ok := s.items[id]; ok {
		copy := item
		return &copy, nil
	}
	return nil, services.ErrNotFound
}

func (s *stubMenuStore) Find(_ context.Context, filter services.MenuFilter) ([]models.MenuItem, error) {
	items := []models.MenuItem{}
	for _, item := range s.items {
		if filter.Category != "" && item.Category != filter.Category {
			continue
		}
		if filter.Available != nil && item.IsAvailable != *filter.Available {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *stubMenuStore) Search(_ context.Context, _ string) ([]models.MenuItem, error) {
	items := []models.MenuItem{}
	for _, item := range s.items {
		items = append(items, item)
	}
	return items, nil
}

func (s *stubMenuStore) Update(_ context.Context, id primitive.ObjectID, update services.MenuItemUpdate) (*models.MenuItem, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	if update.Name != nil {
		item.Name = *update.Name
	}
	if update.Price != nil {
		item.Price = *update.Price
	}
	s.items[id] = item
	return &item, nil
}

func (s *stubMenuStore) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := s.items[id]; !ok {
		return services.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *stubMenuStore) ToggleAvailability(_ context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	item.IsAvailable = !item.IsAvailable
	s.items[id] = item
	return &item, nil
}

type stubOrderStore struct {
	orders []models.Order
}

func newStubOrderStore() *stubOrderStore {
	return &stubOrderStore{}
}

func (s *stubOrderStore) Insert(_ context.Context, order *models.Order) error {
	s.orders = append(s.orders, *order)
	return nil
}

func (s *stubOrderStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Order, error) {
	for _, order := range s.orders {
		if order.ID == id {
			copy := order
			return &copy, nil
		}
	}
	return nil, services.ErrNotFound
}

func (s *stubOrderStore) Find(_ context.Context, filter services.OrderFilter) ([]models.Order, int64, error) {
	matched := []models.Order{}
	for _, order := range s.orders {
		if filter.Status != "" && order.Status != filter.Status {
			continue
		}
		matched = append(matched, order)
	}

	total := int64(len(matched))
	start := (filter.Page - 1) * filter.Limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (s *stubOrderStore) UpdateStatus(_ context.Context, id primitive.ObjectID, status models.OrderStatus) (*models.Order, error) {
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			copy := s.orders[i]
			return &copy, nil
		}
	}
	return nil, services.ErrNotFound
}

func (s *stubOrderStore) TopSellers(_ context.Context, _ int) ([]models.TopSeller, error) {
	return []models.TopSeller{
		{MenuItemID: primitive.NewObjectID(), Name: "Margherita", Category: "Main Course", Price: 12, TotalSold: 42},
	}, nil
}

func newTestServer(menu services.MenuStore, orders services.OrderStore) *httptest.Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	menuService := services.NewMenuService(menu)
	orderService := services.NewOrderService(menu, orders)

	router := mux.NewRouter()
	routes.MenuRoutes(router, controller.NewMenuController(menuService, logger))
	routes.OrderRoutes(router, controller.NewOrderController(orderService, logger))
	routes.AnalyticsRoutes(router, controller.NewAnalyticsController(orderService, logger))

	return httptest.NewServer(router)
}

func doJSON(method, url, body string) (*http.Response, error) {
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return http.DefaultClient.Do(req)
}
