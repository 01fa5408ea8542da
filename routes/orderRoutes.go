package routes

import (
	"net/http"

	controller "github.com/Sanjay-Kumar-Git/eatoes-Admin/controllers"

	"github.com/gorilla/mux"
)

func OrderRoutes(router *mux.Router, c *controller.OrderController) {

	router.HandleFunc("/api/orders", c.GetOrders).Methods(http.MethodGet)
	router.HandleFunc("/api/orders", c.CreateOrder).Methods(http.MethodPost)

	router.HandleFunc("/api/orders/{id}", c.GetOrderByID).Methods(http.MethodGet)
	router.HandleFunc("/api/orders/{id}/status", c.UpdateOrderStatus).Methods(http.MethodPatch)
}
