package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"kidswear-backend/internal/catalog"
	"kidswear-backend/internal/store"
	"kidswear-backend/internal/wire"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type ProductHandler struct {
	service catalog.Service
}

func NewProductHandler(service catalog.Service) *ProductHandler {
	return &ProductHandler{service: service}
}

func (h *ProductHandler) RegisterRoutes(router chi.Router) {
	router.Get("/api/products", h.handleListProducts)
	router.Get("/api/products/{id}", h.handleGetProduct)
	router.Post("/api/products/seed", h.handleSeedProducts)
}

func (h *ProductHandler) handleListProducts(w http.ResponseWriter, r *http.Request) {
	limit := int64(defaultListLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 1 || parsed > maxListLimit {
			log.Warn().Str("limit", raw).Msg("Rejected invalid limit parameter")
			respondWithError(w, http.StatusBadRequest, "Invalid limit parameter: must be between 1 and 200")
			return
		}
		limit = parsed
	}

	filter := catalog.ListFilter{
		Category: r.URL.Query().Get("category"),
		Query:    r.URL.Query().Get("q"),
		Limit:    limit,
	}

	docs, err := h.service.ListProducts(r.Context(), filter)
	if err != nil {
		if errors.Is(err, store.ErrNotConfigured) {
			respondWithError(w, http.StatusInternalServerError, "Database not configured")
			return
		}
		log.Error().Err(err).Msg("Failed to list products via service")
		respondWithError(w, mapErrorToStatusCode(err), "Failed to list products")
		return
	}

	respondWithJSON(w, http.StatusOK, wire.Documents(docs))
}

func (h *ProductHandler) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	idParam := chi.URLParam(r, "id")
	productID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		log.Warn().Err(err).Str("product_id", idParam).Msg("Failed to parse id parameter from URL")
		respondWithError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	doc, err := h.service.GetProduct(r.Context(), productID)
	if err != nil {
		statusCode := mapErrorToStatusCode(err)

		var clientMessage string
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			clientMessage = "Product not found"
		case errors.Is(err, store.ErrNotConfigured):
			clientMessage = "Database not configured"
		default:
			log.Error().Err(err).Msg("Failed to get product via service")
			clientMessage = "Failed to get product"
		}

		respondWithError(w, statusCode, clientMessage)
		return
	}

	respondWithJSON(w, http.StatusOK, wire.Document(doc))
}

func (h *ProductHandler) handleSeedProducts(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.SeedProducts(r.Context())
	if err != nil {
		if errors.Is(err, store.ErrNotConfigured) {
			respondWithError(w, http.StatusInternalServerError, "Database not configured")
			return
		}
		log.Error().Err(err).Msg("Failed to seed products via service")
		respondWithError(w, mapErrorToStatusCode(err), "Failed to seed products")
		return
	}

	if result.AlreadySeeded {
		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"message": "Products already exist",
			"count":   result.Existing,
		})
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Seeded sample products",
		"inserted": result.Inserted,
	})
}
