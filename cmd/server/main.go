package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/stockroom/inventory-api/app/api"
	"github.com/stockroom/inventory-api/app/categories"
	"github.com/stockroom/inventory-api/app/products"
	"github.com/stockroom/inventory-api/config"
	"github.com/stockroom/inventory-api/database"
	"github.com/stockroom/inventory-api/models"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	categoryHandler := categories.NewCategoryHandler(models.NewCategoriesRepository(db.Gorm))
	productHandler := products.NewProductHandler(models.NewProductsRepository(db.Gorm))

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/categories", categoryHandler.HandleGetAll)
	mux.HandleFunc("POST /api/categories", categoryHandler.HandleCreate)
	mux.HandleFunc("PUT /api/categories/{id}", categoryHandler.HandleUpdate)
	mux.HandleFunc("DELETE /api/categories/{id}", categoryHandler.HandleDelete)

	mux.HandleFunc("GET /api/products", productHandler.HandleGetAll)
	mux.HandleFunc("POST /api/products", productHandler.HandleCreate)
	mux.HandleFunc("PUT /api/products/{id}", productHandler.HandleUpdate)
	mux.HandleFunc("DELETE /api/products/{id}", productHandler.HandleDelete)

	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Inventory administration API"))
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: api.CORS(mux),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Server is running on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()

	log.Println("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
