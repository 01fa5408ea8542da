package controller

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Sanjay-Kumar-Git/eatoes-Admin/models"
	"github.com/Sanjay-Kumar-Git/eatoes-Admin/services"
	"github.com/go-playground/validator"
	"github.com/gorilla/mux"
)

var validate = validator.New()

const requestTimeout = 10 * time.Second

type MenuController struct {
	service *services.MenuService
	logger  *slog.Logger
}

func NewMenuController(service *services.MenuService, logger *slog.Logger) *MenuController {
	return &MenuController{service: service, logger: logger}
}

type menuItemRequest struct {
	Name            string   `json:"name" validate:"required,min=2,max=100"`
	Description     string   `json:"description"`
	Category        string   `json:"category" validate:"required"`
	Price           *float64 `json:"price" validate:"omitempty,min=0"`
	Ingredients     []string `json:"ingredients"`
	PreparationTime int      `json:"preparationTime" validate:"min=0"`
	ImageURL        string   `json:"imageUrl"`
	IsAvailable     *bool    `json:"isAvailable"`
}

type menuItemUpdateRequest struct {
	Name            *string  `json:"name" validate:"omitempty,min=2,max=100"`
	Description     *string  `json:"description"`
	Category        *string  `json:"category" validate:"omitempty,min=1"`
	Price           *float64 `json:"price" validate:"omitempty,min=0"`
	Ingredients     []string `json:"ingredients"`
	PreparationTime *int     `json:"preparationTime" validate:"omitempty,min=0"`
	ImageURL        *string  `json:"imageUrl"`
	IsAvailable     *bool    `json:"isAvailable"`
}

// GetMenuItems handles GET /api/menu with optional category, availability
// and price range filters.
func (c *MenuController) GetMenuItems(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	filter := services.MenuFilter{Category: r.URL.Query().Get("category")}

	if raw := r.URL.Query().Get("availability"); raw != "" {
		available := raw == "true"
		filter.Available = &available
	}
	if raw := r.URL.Query().Get("minPrice"); raw != "" {
		if min, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MinPrice = &min
		}
	}
	if raw := r.URL.Query().Get("maxPrice"); raw != "" {
		if max, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MaxPrice = &max
		}
	}

	items, err := c.service.List(ctx, filter)
	if err != nil {
		writeError(w, c.logger, err, "Menu item not found", "Failed to fetch menu items")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// SearchMenuItems handles GET /api/menu/search?q= via the text index.
func (c *MenuController) SearchMenuItems(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	items, err := c.service.Search(ctx, r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, c.logger, err, "Menu item not found", "Search failed")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (c *MenuController) GetMenuItemByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	item, err := c.service.Get(ctx, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, c.logger, err, "Menu item not found", "Failed to fetch menu item")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (c *MenuController) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var req menuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Failed to create menu item: "+err.Error())
		return
	}

	// A required tag on *float64 would reject a legitimate zero price,
	// so presence is checked separately.
	if req.Price == nil {
		writeMessage(w, http.StatusBadRequest, "Failed to create menu item: price is required")
		return
	}

	// Items are available unless the payload says otherwise.
	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	ingredients := req.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}

	item := &models.MenuItem{
		Name:            req.Name,
		Description:     req.Description,
		Category:        req.Category,
		Price:           *req.Price,
		Ingredients:     ingredients,
		PreparationTime: req.PreparationTime,
		ImageURL:        req.ImageURL,
		IsAvailable:     available,
	}

	created, err := c.service.Create(ctx, item)
	if err != nil {
		writeError(w, c.logger, err, "Menu item not found", "Failed to create menu item")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (c *MenuController) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var req menuItemUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Failed to update menu item: "+err.Error())
		return
	}

	update := services.MenuItemUpdate{
		Name:            req.Name,
		Description:     req.Description,
		Category:        req.Category,
		Price:           req.Price,
		Ingredients:     req.Ingredients,
		PreparationTime: req.PreparationTime,
		ImageURL:        req.ImageURL,
		IsAvailable:     req.IsAvailable,
	}

	item, err := c.service.Update(ctx, mux.Vars(r)["id"], update)
	if err != nil {
		writeError(w, c.logger, err, "Menu item not found", "Failed to update menu item")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (c *MenuController) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := c.service.Delete(ctx, mux.Vars(r)["id"]); err != nil {
		writeError(w, c.logger, err, "Menu item not found", "Failed to delete menu item")
		return
	}
	writeMessage(w, http.StatusOK, "Menu item deleted successfully")
}

// ToggleAvailability handles PATCH /api/menu/{id}/availability. The client
// performs this optimistically; the response echoes the full updated item so
// it can reconcile or roll back.
func (c *MenuController) ToggleAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	item, err := c.service.ToggleAvailability(ctx, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, c.logger, err, "Menu item not found", "Failed to toggle availability")
		return
	}
	writeJSON(w, http.StatusOK, item)
}
