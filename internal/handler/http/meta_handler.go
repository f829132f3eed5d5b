package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"kidswear-backend/internal/config"
	"kidswear-backend/internal/store"
)

// MetaHandler serves the informational endpoints: greetings, the
// database diagnostic and the static schema overview.
type MetaHandler struct {
	store *store.Mongo
	cfg   *config.Config
}

func NewMetaHandler(st *store.Mongo, cfg *config.Config) *MetaHandler {
	return &MetaHandler{store: st, cfg: cfg}
}

func (h *MetaHandler) RegisterRoutes(router chi.Router) {
	router.Get("/", h.handleRoot)
	router.Get("/api/hello", h.handleHello)
	router.Get("/health", h.handleHealth)
	router.Get("/test", h.handleTest)
	router.Get("/schema", h.handleSchema)
}

func (h *MetaHandler) handleRoot(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Hello from the Kidswear Backend!"})
}

func (h *MetaHandler) handleHello(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Hello from the backend API!"})
}

func (h *MetaHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// handleTest reports backend and database status. Diagnostic failures
// degrade into status strings; this endpoint never returns an error
// status itself.
func (h *MetaHandler) handleTest(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"backend":           "running",
		"database":          "not available",
		"database_url":      envStatus(h.cfg.Mongo.URI),
		"database_name":     envStatus(h.cfg.Mongo.Database),
		"connection_status": "not connected",
		"collections":       []string{},
	}

	if h.store == nil {
		respondWithJSON(w, http.StatusOK, response)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		response["database"] = "error: " + truncate(err.Error(), 50)
		respondWithJSON(w, http.StatusOK, response)
		return
	}

	response["database"] = "connected"
	response["connection_status"] = "connected"

	collections, err := h.store.CollectionNames(ctx)
	if err != nil {
		response["database"] = "connected but error: " + truncate(err.Error(), 50)
		respondWithJSON(w, http.StatusOK, response)
		return
	}

	if len(collections) > 10 {
		collections = collections[:10]
	}
	response["collections"] = collections
	response["database"] = "connected and working"

	respondWithJSON(w, http.StatusOK, response)
}

func (h *MetaHandler) handleSchema(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"collections": []string{store.CollectionUser, store.CollectionProduct, store.CollectionOrder},
		"notes":       "Collections are created dynamically on first insert.",
	})
}

func envStatus(value string) string {
	if value == "" {
		return "not set"
	}
	return "set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
