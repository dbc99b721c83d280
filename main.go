// Command akun-go serves a minimal user-account API: registration, credential
// login issuing a bearer token, authenticated self-service profile read/delete,
// and an authenticated listing of all users.
//
// @title Akun API
// @version 1.0
// @description Minimal user-account service: registration, login, and self-service profile management.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/user/akun-go/apperror"
	"github.com/user/akun-go/auth"
	"github.com/user/akun-go/config"
	"github.com/user/akun-go/db"
	_ "github.com/user/akun-go/docs" // generated Swagger docs
	"github.com/user/akun-go/users"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading it: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pool, err := db.NewPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to create database pool: %v", err)
	}
	defer pool.Close()

	if err := db.RunMigrations(cfg.DB, "./migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	issuer := auth.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenDuration)
	store := users.NewPostgresStore(pool)
	userService := users.NewUserService(store, issuer)
	userHandlers := users.NewUserHandlers(userService)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", userHandlers.HandleRegister())
		r.Post("/login", userHandlers.HandleLogin())

		// Protected routes: the token gate runs before each of these.
		r.Group(func(r chi.Router) {
			r.Use(auth.JWTMiddleware(issuer))
			r.Get("/user", userHandlers.HandleProfile())
			r.Delete("/user", userHandlers.HandleDelete())
			r.Get("/listuser", userHandlers.HandleList())
		})
	})

	// Every unmatched path gets the same JSON body instead of chi's plain 404.
	notFound := func(w http.ResponseWriter, r *http.Request) {
		auth.WriteJSON(w, http.StatusNotFound, apperror.Envelope{
			Status:  false,
			Message: "Page Not Found",
		})
	}
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped gracefully")
}
