package main

import (
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/white/fluxx-sales/config"
	_ "github.com/white/fluxx-sales/docs"
	"github.com/white/fluxx-sales/internal/handlers"
	"github.com/white/fluxx-sales/internal/middleware"
	"go.uber.org/zap"
)

type routerDeps struct {
	cfg      *config.Config
	logger   *zap.Logger
	tokens   middleware.TokenValidator
	health   *handlers.HealthHandler
	auth     *handlers.AuthHandler
	users    *handlers.UserHandler
	accounts *handlers.AccountHandler
	activity *handlers.ActivityHandler
	reports  *handlers.ReportHandler
	jwks     *handlers.JWKSHandler
}

func newRouter(d routerDeps) http.Handler {
	router := mux.NewRouter()

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"error":"Endpoint not found"}`))
	})

	router.HandleFunc("/health", d.health.GetOverallHealth).Methods(http.MethodGet)
	router.HandleFunc("/.well-known/jwks.json", d.jwks.GetJWKS).Methods(http.MethodGet)

	// Swagger ui endpoint - API documentation
	router.PathPrefix("/swagger/").Handler(httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("none"),
		httpSwagger.DomID("swagger-ui"),
	)).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()

	// Public
	api.HandleFunc("/auth/register", d.auth.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", d.auth.Login).Methods(http.MethodPost)

	// Protected
	protected := api.NewRoute().Subrouter()
	protected.Use(middleware.JWTAuth(d.tokens))
	protected.HandleFunc("/users", d.users.GetUser).Methods(http.MethodGet)
	protected.HandleFunc("/accounts", d.accounts.GetAccounts).Methods(http.MethodGet)
	protected.HandleFunc("/activities", d.activity.CreateActivity).Methods(http.MethodPost)
	protected.HandleFunc("/activities", d.activity.ListActivities).Methods(http.MethodGet)
	protected.HandleFunc("/reports/pending-so", d.reports.GetPendingSO).Methods(http.MethodGet)
	protected.HandleFunc("/reports/pending-so/export", d.reports.ExportPendingSO).Methods(http.MethodGet)

	// CORS wraps the router so preflight requests never reach method matching.
	return middleware.CORS(d.cfg.Server.AllowedOrigins)(middleware.RequestLogger(d.logger)(router))
}
