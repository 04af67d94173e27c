package main

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/emrekoca/mealweek-server/internal/api"
	"github.com/emrekoca/mealweek-server/internal/auth"
	"github.com/emrekoca/mealweek-server/internal/catalog"
	"github.com/emrekoca/mealweek-server/internal/config"
	"github.com/emrekoca/mealweek-server/internal/middleware"
	"github.com/emrekoca/mealweek-server/internal/planner"
	"github.com/emrekoca/mealweek-server/internal/realtime"
	"github.com/emrekoca/mealweek-server/internal/store"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found")
	}

	cfg := config.New()

	// Ensure Firestore client is closed on shutdown
	defer cfg.Firestore.Close()

	st := store.New(cfg.Firestore, cfg.AdminEmail)
	cat := catalog.New(st)
	plans := planner.NewManager(st)
	hub := realtime.NewHub()
	authService := auth.NewService(cfg.FirebaseAuth, st)

	mealHandler := api.NewMealHandler(st, cat)
	recipeHandler := api.NewRecipeHandler(st, cat)
	planHandler := api.NewPlanHandler(st, cat, plans, hub)
	userHandler := api.NewUserHandler(st)
	adminHandler := api.NewAdminHandler(st, cat)
	exportHandler := api.NewExportHandler(st, cat, plans, cfg.TokenSecret)
	wsHandler := api.NewWSHandler(authService, hub)

	r := mux.NewRouter()

	// Public routes: session bootstrap, token-gated download, websocket
	r.HandleFunc("/api/auth/session", authService.Session).Methods("POST")
	r.HandleFunc("/api/export/pdf", exportHandler.Download).Methods("GET")
	r.HandleFunc("/ws", wsHandler.Serve)

	// Everything else requires a verified ID token
	protected := r.PathPrefix("/api").Subrouter()
	protected.Use(middleware.AuthMiddleware(cfg.FirebaseAuth))

	protected.HandleFunc("/meals", mealHandler.List).Methods("GET")
	protected.HandleFunc("/meals", mealHandler.Create).Methods("POST")
	protected.HandleFunc("/meals/{id}", mealHandler.Delete).Methods("DELETE")
	protected.HandleFunc("/meals/{id}/recipes", mealHandler.Recipes).Methods("GET")

	protected.HandleFunc("/recipes", recipeHandler.List).Methods("GET")
	protected.HandleFunc("/recipes", recipeHandler.Create).Methods("POST")
	protected.HandleFunc("/recipes/saved", recipeHandler.Saved).Methods("GET")
	protected.HandleFunc("/recipes/{id}", recipeHandler.Delete).Methods("DELETE")
	protected.HandleFunc("/recipes/{id}/save", recipeHandler.Save).Methods("POST")
	protected.HandleFunc("/recipes/{id}/save", recipeHandler.Unsave).Methods("DELETE")

	protected.HandleFunc("/plan", planHandler.Get).Methods("GET")
	protected.HandleFunc("/plan/slots", planHandler.UpdateSlot).Methods("POST")
	protected.HandleFunc("/plan/move", planHandler.Move).Methods("POST")
	protected.HandleFunc("/plan/random", planHandler.Random).Methods("POST")
	protected.HandleFunc("/plan/clear", planHandler.Clear).Methods("POST")
	protected.HandleFunc("/plan/save", planHandler.Save).Methods("POST")
	protected.HandleFunc("/plan/status", planHandler.Status).Methods("GET")

	protected.HandleFunc("/users/me", userHandler.Me).Methods("GET")
	protected.HandleFunc("/users/{uid}/follow", userHandler.Follow).Methods("POST")
	protected.HandleFunc("/users/{uid}/follow", userHandler.Unfollow).Methods("DELETE")

	protected.HandleFunc("/admin/recipes", adminHandler.AddRecipe).Methods("POST")
	protected.HandleFunc("/admin/meals/{mealId}/recipes/{recipeId}", adminHandler.DeleteRecipe).Methods("DELETE")
	protected.HandleFunc("/admin/seed", adminHandler.Seed).Methods("POST")

	protected.HandleFunc("/export/token", exportHandler.Token).Methods("POST")

	corsOptions := cors.Options{
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}
	if len(cfg.AllowedOrigins) > 0 {
		corsOptions.AllowedOrigins = cfg.AllowedOrigins
	} else {
		corsOptions.AllowedOrigins = []string{"*"}
	}
	handler := cors.New(corsOptions).Handler(r)

	log.Printf("Server starting on port %s\n", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatalf("Failed to start server: %v\n", err)
	}
}
