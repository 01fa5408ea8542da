package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	database "github.com/Sanjay-Kumar-Git/eatoes-Admin/config"
	controller "github.com/Sanjay-Kumar-Git/eatoes-Admin/controllers"
	middleware "github.com/Sanjay-Kumar-Git/eatoes-Admin/middlewares"
	"github.com/Sanjay-Kumar-Git/eatoes-Admin/routes"
	"github.com/Sanjay-Kumar-Git/eatoes-Admin/services"
	"github.com/Sanjay-Kumar-Git/eatoes-Admin/storage"
	"github.com/joho/godotenv"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

const (
	menuCollection  = "menuitems"
	orderCollection = "orders"
)

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, using process environment")
	}

	port := getenv("PORT", "5000")
	mongoURI := getenv("MONGO_URI", "mongodb://localhost:27017")
	dbName := getenv("MONGO_DB", "eatoes")

	ctx := context.Background()

	client, err := database.Connect(ctx, mongoURI)
	if err != nil {
		logger.Error("failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to MongoDB", "database", dbName)

	menuStore := storage.NewMenuStore(database.OpenCollection(client, dbName, menuCollection))
	orderStore := storage.NewOrderStore(database.OpenCollection(client, dbName, orderCollection), menuCollection)

	if err := menuStore.EnsureIndexes(ctx); err != nil {
		logger.Error("failed to create menu indexes", "error", err)
		os.Exit(1)
	}

	menuService := services.NewMenuService(menuStore)
	orderService := services.NewOrderService(menuStore, orderStore)

	router := mux.NewRouter()
	router.Use(middleware.RequestLogger(logger))

	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Eatoes API is running..."))
	}).Methods(http.MethodGet)

	routes.MenuRoutes(router, controller.NewMenuController(menuService, logger))
	routes.OrderRoutes(router, controller.NewOrderController(orderService, logger))
	routes.AnalyticsRoutes(router, controller.NewAnalyticsController(orderService, logger))

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: handlers.RecoveryHandler()(cors(router)),
	}

	go func() {
		logger.Info("server running", "port", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped unexpectedly", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", "error", err)
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		logger.Error("MongoDB disconnect failed", "error", err)
	}
}
