package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"kidswear-backend/internal/order"
	"kidswear-backend/internal/store"
)

type OrderItemRequest struct {
	ProductID string   `json:"product_id" validate:"required"`
	Title     string   `json:"title" validate:"required"`
	PriceBDT  *float64 `json:"price_bdt" validate:"required,gte=0"`
	Quantity  *int     `json:"quantity" validate:"omitnil,min=1"`
	Size      string   `json:"size"`
	Color     string   `json:"color"`
	Image     string   `json:"image"`
}

type ShippingAddressRequest struct {
	Name        string `json:"name" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	AddressLine string `json:"address_line" validate:"required"`
	City        string `json:"city"`
	Area        string `json:"area"`
	Notes       string `json:"notes"`
}

type PaymentInfoRequest struct {
	Method        string `json:"method" validate:"omitempty,oneof=COD bKash Nagad"`
	Status        string `json:"status" validate:"omitempty,oneof=pending paid failed"`
	TransactionID string `json:"transaction_id"`
}

// CreateOrderRequest mirrors the order schema. Client-supplied totals
// are accepted and then discarded; the service recomputes them.
type CreateOrderRequest struct {
	Items          []OrderItemRequest     `json:"items" validate:"required,min=1,dive"`
	Shipping       ShippingAddressRequest `json:"shipping"`
	SubtotalBDT    float64                `json:"subtotal_bdt"`
	DeliveryFeeBDT float64                `json:"delivery_fee_bdt"`
	TotalBDT       float64                `json:"total_bdt"`
	Payment        *PaymentInfoRequest    `json:"payment"`
	Status         string                 `json:"status" validate:"omitempty,oneof=pending processing shipped delivered cancelled"`
}

type OrderHandler struct {
	service  order.Service
	validate *validator.Validate
}

func NewOrderHandler(service order.Service) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

func (h *OrderHandler) RegisterRoutes(router chi.Router) {
	router.Post("/api/orders", h.handleCreateOrder)
}

func (h *OrderHandler) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var requestPayload CreateOrderRequest

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&requestPayload); err != nil {
		log.Warn().Err(err).Msg("Failed to decode order request body")
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request payload: %v", err))
		return
	}

	if err := h.validate.Struct(requestPayload); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			log.Error().Err(err).Type("validation_error_type", err).Msg("Unexpected error type during validation")
			respondWithError(w, http.StatusInternalServerError, "Internal validation error")
			return
		}
		respondWithValidationErrors(w, validationErrors)
		return
	}

	draft := toOrderDraft(&requestPayload)

	receipt, err := h.service.CreateOrder(r.Context(), draft)
	if err != nil {
		if errors.Is(err, store.ErrNotConfigured) {
			respondWithError(w, http.StatusInternalServerError, "Database not configured")
			return
		}
		log.Error().Err(err).Msg("Failed to create order via service")
		respondWithError(w, mapErrorToStatusCode(err), "Failed to create order")
		return
	}

	respondWithJSON(w, http.StatusOK, receipt)
}

// toOrderDraft maps the request to a domain order, applying schema
// defaults. Totals stay zero here; the service owns them.
func toOrderDraft(req *CreateOrderRequest) *order.Order {
	items := make([]order.Item, 0, len(req.Items))
	for _, item := range req.Items {
		quantity := 1
		if item.Quantity != nil {
			quantity = *item.Quantity
		}
		items = append(items, order.Item{
			ProductID: item.ProductID,
			Title:     item.Title,
			PriceBDT:  *item.PriceBDT,
			Quantity:  quantity,
			Size:      item.Size,
			Color:     item.Color,
			Image:     item.Image,
		})
	}

	shipping := order.ShippingAddress{
		Name:        req.Shipping.Name,
		Phone:       req.Shipping.Phone,
		AddressLine: req.Shipping.AddressLine,
		City:        req.Shipping.City,
		Area:        req.Shipping.Area,
		Notes:       req.Shipping.Notes,
	}
	if shipping.City == "" {
		shipping.City = "Dhaka"
	}

	var payment order.PaymentInfo
	if req.Payment != nil {
		payment = order.PaymentInfo{
			Method:        order.PaymentMethod(req.Payment.Method),
			Status:        order.PaymentStatus(req.Payment.Status),
			TransactionID: req.Payment.TransactionID,
		}
	}

	return &order.Order{
		Items:    items,
		Shipping: shipping,
		Payment:  payment,
		Status:   order.Status(req.Status),
	}
}
