package catalog

import "errors"

var ErrNotFound = errors.New("catalog: product not found")

// Category is the fixed set of storefront categories.
type Category string

const (
	CategoryBoys          Category = "Boys"
	CategoryGirls         Category = "Girls"
	CategoryBaby          Category = "Baby"
	CategoryEidCollection Category = "Eid Collection"
	CategoryWinterWear    Category = "Winter Wear"
	CategorySchoolWear    Category = "School Wear"
	CategoryAccessories   Category = "Accessories"
)

func (c Category) String() string {
	return string(c)
}

// Product is the write model for the product collection. Reads come
// back as raw documents and go through the wire package, so the struct
// carries no id field; the store assigns one on insert.
type Product struct {
	Title       string   `bson:"title" json:"title" validate:"required"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	PriceBDT    float64  `bson:"price_bdt" json:"price_bdt" validate:"gte=0"`
	Category    Category `bson:"category" json:"category" validate:"required,oneof=Boys Girls Baby 'Eid Collection' 'Winter Wear' 'School Wear' Accessories"`
	Brand       string   `bson:"brand,omitempty" json:"brand,omitempty"`
	Sizes       []string `bson:"sizes" json:"sizes"`
	Colors      []string `bson:"colors" json:"colors"`
	Images      []string `bson:"images" json:"images"`
	InStock     bool     `bson:"in_stock" json:"in_stock"`
	StockQty    int      `bson:"stock_qty" json:"stock_qty" validate:"gte=0"`
	AgeRange    string   `bson:"age_range,omitempty" json:"age_range,omitempty"`
	Rating      float64  `bson:"rating" json:"rating" validate:"gte=0,lte=5"`
}
