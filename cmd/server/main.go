package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v83"

	"msvosa_back_end/internal/config"
	"msvosa_back_end/internal/content"
	"msvosa_back_end/internal/database"
	"msvosa_back_end/internal/directory"
	"msvosa_back_end/internal/events"
	"msvosa_back_end/internal/handlers"
	"msvosa_back_end/internal/handlers/admin"
	"msvosa_back_end/internal/orders"
	"msvosa_back_end/internal/routes"
	"msvosa_back_end/internal/store"
)

func main() {
	config.Load()

	// Prices and totals travel as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		log.Println("⚠️ Stripe not configured, card donations disabled")
	} else {
		log.Println("✅ Stripe initialised")
	}

	database.ConnectDatabases()
	defer database.CloseScylla()

	contentStore := store.NewScyllaStore()
	directorySvc := directory.NewService(contentStore)
	eventsMgr := events.NewManager(contentStore)
	ordersMgr := orders.NewManager(contentStore)
	editorSessions := content.NewSessions(contentStore)

	handlers.Init(contentStore, directorySvc, eventsMgr)
	admin.Init(contentStore, editorSessions, ordersMgr, eventsMgr, directorySvc)

	r := gin.Default()
	routes.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 MSVOSA backend listening on port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("❌ Server stopped:", err)
	}
}
