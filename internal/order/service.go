package order

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"kidswear-backend/internal/store"
)

// DeliveryFeeBDT is the flat in-country delivery fee added to every
// order.
const DeliveryFeeBDT = 80.0

// Store is the slice of the persistence adapter order creation needs.
type Store interface {
	InsertOne(ctx context.Context, collection string, doc any) (primitive.ObjectID, error)
}

// Receipt is the acknowledgment returned to the client. Its status is
// a transport-level "received", distinct from the stored order status,
// which starts at pending.
type Receipt struct {
	OrderID  string  `json:"order_id"`
	Status   string  `json:"status"`
	TotalBDT float64 `json:"total_bdt"`
}

type Service interface {
	CreateOrder(ctx context.Context, draft *Order) (*Receipt, error)
}

type service struct {
	store Store
}

func NewService(st Store) Service {
	return &service{store: st}
}

// CreateOrder recomputes the draft's totals, fills in defaults and
// persists it as a single document. There is no idempotency key: two
// identical submissions create two orders.
func (s *service) CreateOrder(ctx context.Context, draft *Order) (*Receipt, error) {
	if s.store == nil {
		return nil, store.ErrNotConfigured
	}

	subtotal := 0.0
	for _, item := range draft.Items {
		subtotal += item.PriceBDT * float64(item.Quantity)
	}
	total := subtotal + DeliveryFeeBDT

	draft.SubtotalBDT = round2(subtotal)
	draft.DeliveryFeeBDT = DeliveryFeeBDT
	draft.TotalBDT = round2(total)

	if draft.Status == "" {
		draft.Status = StatusPending
	}
	if draft.Payment.Method == "" {
		draft.Payment.Method = PaymentCOD
	}
	if draft.Payment.Status == "" {
		draft.Payment.Status = PaymentPending
	}

	id, err := s.store.InsertOne(ctx, store.CollectionOrder, draft)
	if err != nil {
		return nil, fmt.Errorf("order: failed to create order: %w", err)
	}

	log.Info().
		Str("order_id", id.Hex()).
		Int("items", len(draft.Items)).
		Float64("total_bdt", draft.TotalBDT).
		Msg("Order created")

	return &Receipt{
		OrderID:  id.Hex(),
		Status:   "received",
		TotalBDT: draft.TotalBDT,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
