package controller

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Sanjay-Kumar-Git/eatoes-Admin/models"
	"github.com/Sanjay-Kumar-Git/eatoes-Admin/services"
	"github.com/gorilla/mux"
)

type OrderController struct {
	service *services.OrderService
	logger  *slog.Logger
}

func NewOrderController(service *services.OrderService, logger *slog.Logger) *OrderController {
	return &OrderController{service: service, logger: logger}
}

type createOrderRequest struct {
	Items        []services.OrderLineInput `json:"items"`
	CustomerName string                    `json:"customerName"`
	TableNumber  string                    `json:"tableNumber"`
}

type updateStatusRequest struct {
	Status models.OrderStatus `json:"status"`
}

type orderListResponse struct {
	Page        int            `json:"page"`
	TotalPages  int64          `json:"totalPages"`
	TotalOrders int64          `json:"totalOrders"`
	Orders      []models.Order `json:"orders"`
}

// GetOrders handles GET /api/orders?page=&limit=&status= and returns the
// pagination envelope the dashboard binds to.
func (c *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 {
		limit = 10
	}

	filter := services.OrderFilter{
		Status: models.OrderStatus(r.URL.Query().Get("status")),
		Page:   page,
		Limit:  limit,
	}

	orders, total, err := c.service.List(ctx, filter)
	if err != nil {
		writeError(w, c.logger, err, "Order not found", "Failed to fetch orders")
		return
	}

	writeJSON(w, http.StatusOK, orderListResponse{
		Page:        page,
		TotalPages:  (total + int64(limit) - 1) / int64(limit),
		TotalOrders: total,
		Orders:      orders,
	})
}

func (c *OrderController) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	order, err := c.service.Get(ctx, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, c.logger, err, "Order not found", "Failed to fetch order")
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// CreateOrder handles POST /api/orders. Pricing happens server-side: every
// line is resolved against the catalog and its current price snapshotted
// before anything is persisted.
func (c *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := c.service.Create(ctx, req.Items, req.CustomerName, req.TableNumber)
	if err != nil {
		writeError(w, c.logger, err, "Order not found", "Failed to create order")
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

// UpdateOrderStatus handles PATCH /api/orders/{id}/status and echoes the
// full updated order so the dashboard can reconcile its optimistic state.
func (c *OrderController) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := c.service.UpdateStatus(ctx, mux.Vars(r)["id"], req.Status)
	if err != nil {
		writeError(w, c.logger, err, "Order not found", "Failed to update order status")
		return
	}
	writeJSON(w, http.StatusOK, order)
}
