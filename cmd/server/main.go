package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/stripe/stripe-go/v82"

	"movingco/internal/api"
	"movingco/internal/auth"
	"movingco/internal/db"
	"movingco/internal/repository"
	"movingco/internal/service"
)

func main() {
	godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	database, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := database.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	if err := db.EnsureSchema(database); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")

	pricingRepo := repository.NewPricingConfigRepository(database)
	cityRepo := repository.NewCityRepository(database)
	settingsRepo := repository.NewSettingsRepository(database)
	leadRepo := repository.NewQuoteLeadRepository(database)
	adminRepo := repository.NewAdminAuthRepository(database)

	configService := service.NewConfigService(pricingRepo, cityRepo, settingsRepo)
	if err := configService.EnsureDefaults(); err != nil {
		log.Fatalf("Failed to seed default config: %v", err)
	}

	senderService := service.NewSenderService()
	quoteService := service.NewQuoteService(configService, leadRepo, senderService)
	stripeService := service.NewStripeService()
	depositService := service.NewDepositService(stripeService, configService, leadRepo)
	adminAuthService := service.NewAdminAuthService(adminRepo)
	jobService := service.NewJobService(leadRepo)

	configHandler := api.NewConfigHandler(configService)
	quoteHandler := api.NewQuoteHandler(quoteService)
	adminHandler := api.NewAdminHandler(configService)
	adminAuthHandler := api.NewAdminAuthHandler(adminAuthService)
	stripeHandler := api.NewStripeWebhookHandler(os.Getenv("STRIPE_WEBHOOK_SECRET"), depositService)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/pricing", configHandler.GetPricing).Methods("GET")
	r.HandleFunc("/api/cities", configHandler.GetCities).Methods("GET")
	r.HandleFunc("/api/settings", configHandler.GetSettings).Methods("GET")
	r.HandleFunc("/api/quote", quoteHandler.Quote).Methods("POST")
	r.HandleFunc("/api/quotes", quoteHandler.SubmitLead).Methods("POST")
	r.HandleFunc("/api/deposit-session", stripeHandler.CreateDepositSession).Methods("POST")
	r.HandleFunc("/api/stripe/webhook", stripeHandler.HandleWebhook).Methods("POST")
	r.HandleFunc("/admin/login", adminAuthHandler.Login).Methods("POST")

	// Admin endpoints (protected)
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth.AdminAuthMiddleware)
	admin.HandleFunc("/pricing", adminHandler.UpdatePricing).Methods("PUT")
	admin.HandleFunc("/pricing/reset", adminHandler.ResetPricing).Methods("POST")
	admin.HandleFunc("/quotes", quoteHandler.ListLeads).Methods("GET")
	admin.HandleFunc("/quotes/{code}/refund", stripeHandler.RefundDeposit).Methods("POST")
	admin.HandleFunc("/cities", adminHandler.CreateCity).Methods("POST")
	admin.HandleFunc("/cities", adminHandler.UpdateCities).Methods("PUT")
	admin.HandleFunc("/cities/{name}", adminHandler.UpdateCity).Methods("PUT")
	admin.HandleFunc("/cities/{name}", adminHandler.DeleteCity).Methods("DELETE")
	admin.HandleFunc("/settings", adminHandler.UpdateSettings).Methods("PUT")
	admin.HandleFunc("/settings/reset", adminHandler.ResetSettings).Methods("POST")
	admin.HandleFunc("/register", adminAuthHandler.RegisterAdmin).Methods("POST")

	c := cron.New()
	if _, err := c.AddFunc("0 4 * * *", func() {
		if err := jobService.PurgeStaleLeads(); err != nil {
			log.Printf("Cron Job: purge failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule purge job: %v", err)
	}
	c.Start()

	allowedOrigins := []string{"http://localhost:3000"}
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		allowedOrigins = strings.Split(origins, ",")
	}
	corsHandler := handlers.CORS(
		handlers.AllowedOrigins(allowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler(r)))
}
