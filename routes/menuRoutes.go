package routes

import (
	"net/http"

	controller "github.com/Sanjay-Kumar-Git/eatoes-Admin/controllers"

	"github.com/gorilla/mux"
)

func MenuRoutes(router *mux.Router, c *controller.MenuController) {

	router.HandleFunc("/api/menu", c.GetMenuItems).Methods(http.MethodGet)
	router.HandleFunc("/api/menu", c.CreateMenuItem).Methods(http.MethodPost)

	// Registered before /api/menu/{id} so "search" is not read as an id.
	router.HandleFunc("/api/menu/search", c.SearchMenuItems).Methods(http.MethodGet)

	router.HandleFunc("/api/menu/{id}", c.GetMenuItemByID).Methods(http.MethodGet)
	router.HandleFunc("/api/menu/{id}", c.UpdateMenuItem).Methods(http.MethodPut)
	router.HandleFunc("/api/menu/{id}", c.DeleteMenuItem).Methods(http.MethodDelete)
	router.HandleFunc("/api/menu/{id}/availability", c.ToggleAvailability).Methods(http.MethodPatch)
}
