package routes

import (
	"net/http"

	controller "github.com/Sanjay-Kumar-Git/eatoes-Admin/controllers"

	"github.com/gorilla/mux"
)

func AnalyticsRoutes(router *mux.Router, c *controller.AnalyticsController) {
	router.HandleFunc("/api/analytics/top-sellers", c.GetTopSellers).Methods(http.MethodGet)
}
