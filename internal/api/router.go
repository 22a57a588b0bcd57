package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/SK1028846/fantasy-football-pipeline/internal/api/handler"
	"github.com/SK1028846/fantasy-football-pipeline/internal/api/middleware"
	"github.com/SK1028846/fantasy-football-pipeline/internal/services/auth"
	"github.com/SK1028846/fantasy-football-pipeline/internal/services/trade"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger       *slog.Logger
	AuthService  *auth.Service
	TradeService *trade.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	userHandler := handler.NewUserHandler(cfg.AuthService)
	tradeHandler := handler.NewTradeHandler(cfg.TradeService)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	// Account routes (no auth required for registering/logging in)
	r.HandleFunc("/auth/register", userHandler.Register).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", userHandler.Login).Methods(http.MethodPost)

	// Protected account routes
	authProtected := r.PathPrefix("/auth").Subrouter()
	authProtected.Use(authMiddleware)
	authProtected.HandleFunc("/me", userHandler.GetMe).Methods(http.MethodGet)
	authProtected.HandleFunc("/logout", userHandler.Logout).Methods(http.MethodPost)

	// Health check endpoint (no auth)
	r.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Trade routes (all require auth)
	trades := r.PathPrefix("/").Subrouter()
	trades.Use(authMiddleware)
	trades.HandleFunc("/trade", tradeHandler.Submit).Methods(http.MethodPost)
	trades.HandleFunc("/previoustrades", tradeHandler.History).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
