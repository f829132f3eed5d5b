package order

// Status values an order moves through after it is received. Only
// StatusPending is assigned in scope; the rest are part of the stored
// contract for downstream tooling.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

type PaymentMethod string

const (
	PaymentCOD   PaymentMethod = "COD"
	PaymentBkash PaymentMethod = "bKash"
	PaymentNagad PaymentMethod = "Nagad"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// Item is a denormalized snapshot of a product at order time. The
// product reference is not checked for existence.
type Item struct {
	ProductID string  `bson:"product_id" json:"product_id"`
	Title     string  `bson:"title" json:"title"`
	PriceBDT  float64 `bson:"price_bdt" json:"price_bdt"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	Size      string  `bson:"size,omitempty" json:"size,omitempty"`
	Color     string  `bson:"color,omitempty" json:"color,omitempty"`
	Image     string  `bson:"image,omitempty" json:"image,omitempty"`
}

type ShippingAddress struct {
	Name        string `bson:"name" json:"name"`
	Phone       string `bson:"phone" json:"phone"`
	AddressLine string `bson:"address_line" json:"address_line"`
	City        string `bson:"city" json:"city"`
	Area        string `bson:"area,omitempty" json:"area,omitempty"`
	Notes       string `bson:"notes,omitempty" json:"notes,omitempty"`
}

type PaymentInfo struct {
	Method        PaymentMethod `bson:"method" json:"method"`
	Status        PaymentStatus `bson:"status" json:"status"`
	TransactionID string        `bson:"transaction_id,omitempty" json:"transaction_id,omitempty"`
}

// Order is the stored document. Totals are always recomputed by the
// service; whatever the client sent is discarded.
type Order struct {
	Items          []Item          `bson:"items" json:"items"`
	Shipping       ShippingAddress `bson:"shipping" json:"shipping"`
	SubtotalBDT    float64         `bson:"subtotal_bdt" json:"subtotal_bdt"`
	DeliveryFeeBDT float64         `bson:"delivery_fee_bdt" json:"delivery_fee_bdt"`
	TotalBDT       float64         `bson:"total_bdt" json:"total_bdt"`
	Payment        PaymentInfo     `bson:"payment" json:"payment"`
	Status         Status          `bson:"status" json:"status"`
}
