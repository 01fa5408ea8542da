package controller

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Sanjay-Kumar-Git/eatoes-Admin/services"
)

const topSellersLimit = 5

type AnalyticsController struct {
	service *services.OrderService
	logger  *slog.Logger
}

func NewAnalyticsController(service *services.OrderService, logger *slog.Logger) *AnalyticsController {
	return &AnalyticsController{service: service, logger: logger}
}

// GetTopSellers handles GET /api/analytics/top-sellers.
func (c *AnalyticsController) GetTopSellers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := c.service.TopSellers(ctx, topSellersLimit)
	if err != nil {
		writeError(w, c.logger, err, "Order not found", "Failed to fetch top sellers")
		return
	}
	writeJSON(w, http.StatusOK, result)
}
