package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"kidswear-backend/internal/catalog"
	"kidswear-backend/internal/config"
	handlerHttp "kidswear-backend/internal/handler/http"
	"kidswear-backend/internal/order"
	"kidswear-backend/internal/store"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	log.Logger = log.With().Str("service", "kidswear-backend").Logger()

	log.Info().Msg("Kidswear backend starting...")

	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	// A missing database configuration is tolerated: the process
	// serves its informational endpoints and data endpoints report
	// the store as unconfigured.
	var st *store.Mongo
	if cfg.StoreConfigured() {
		st, err = store.Connect(context.Background(), cfg)
		if err != nil {
			log.Error().Err(err).Msg("Failed to connect to database, continuing without store")
			st = nil
		}
	} else {
		log.Warn().Msg("DATABASE_URL / DATABASE_NAME not set, store is unconfigured")
	}

	if st != nil {
		if err := st.EnsureCollections(context.Background()); err != nil {
			log.Error().Err(err).Msg("Failed to ensure collections")
		}
	}

	var catalogStore catalog.Store
	var orderStore order.Store
	if st != nil {
		catalogStore = st
		orderStore = st
	}

	catalogService := catalog.NewService(catalogStore)
	orderService := order.NewService(orderStore)

	productHandler := handlerHttp.NewProductHandler(catalogService)
	orderHandler := handlerHttp.NewOrderHandler(orderService)
	metaHandler := handlerHttp.NewMetaHandler(st, cfg)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	// Public demo API: every origin, method and header is allowed.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	metaHandler.RegisterRoutes(router)
	productHandler.RegisterRoutes(router)
	orderHandler.RegisterRoutes(router)

	server := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.App.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)
	<-stopCh

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server shutdown failed")
	}

	st.Close(context.Background())

	log.Info().Msg("Kidswear backend stopped gracefully.")
}
