package catalog

// SampleProducts are the fixtures inserted by the seed endpoint when
// the product collection is empty.
func SampleProducts() []Product {
	return []Product{
		{
			Title:       "Boys Cotton T-Shirt",
			Description: "Soft cotton tee for everyday comfort",
			PriceBDT:    450,
			Category:    CategoryBoys,
			Brand:       "Kiddo",
			Sizes:       []string{"2-3Y", "4-5Y", "6-7Y"},
			Colors:      []string{"Blue", "Red"},
			Images:      []string{"https://images.unsplash.com/photo-1601050690597-9c33a4ee5ad5?w=800&q=80"},
			InStock:     true,
			StockQty:    50,
			AgeRange:    "2-7Y",
			Rating:      4.5,
		},
		{
			Title:       "Girls Floral Dress",
			Description: "Lightweight floral print dress, perfect for summer",
			PriceBDT:    1250,
			Category:    CategoryGirls,
			Brand:       "MiniBloom",
			Sizes:       []string{"2-3Y", "3-4Y", "5-6Y", "7-8Y"},
			Colors:      []string{"Pink", "Yellow"},
			Images:      []string{"https://images.unsplash.com/photo-1520975922117-9ce8bdb000a6?w=800&q=80"},
			InStock:     true,
			StockQty:    20,
			AgeRange:    "2-8Y",
			Rating:      4.8,
		},
		{
			Title:       "Baby Romper Set",
			Description: "Organic cotton romper set for newborns",
			PriceBDT:    990,
			Category:    CategoryBaby,
			Brand:       "TinyCare",
			Sizes:       []string{"0-3M", "3-6M", "6-9M"},
			Colors:      []string{"Mint", "Cream"},
			Images:      []string{"https://images.unsplash.com/photo-1619177097999-89c3b1edbba9?w=800&q=80"},
			InStock:     true,
			StockQty:    30,
			AgeRange:    "0-9M",
			Rating:      4.6,
		},
		{
			Title:       "Kids Hooded Jacket",
			Description: "Warm fleece-lined jacket for winter",
			PriceBDT:    1850,
			Category:    CategoryWinterWear,
			Brand:       "Warmy",
			Sizes:       []string{"3-4Y", "5-6Y", "7-8Y", "9-10Y"},
			Colors:      []string{"Navy", "Grey"},
			Images:      []string{"https://images.unsplash.com/photo-1520975922117-9ce8bdb000a6?w=800&q=80"},
			InStock:     true,
			StockQty:    15,
			AgeRange:    "3-10Y",
			Rating:      4.7,
		},
	}
}
