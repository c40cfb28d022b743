package domain

// Product is a catalog entry. Stock is the only field mutated after
// seeding, and only by order placement.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	Image       string
	Category    string
	Stock       int
	Rating      float64
}

// ProductFilter narrows catalog listings. The zero value matches the
// whole catalog; both fields set compose with logical AND.
type ProductFilter struct {
	Category string // exact match
	Search   string // case-insensitive substring over name or description
}

// DefaultCatalog returns the sample products used to seed an empty
// catalog. The postgres store seeds the same rows via a migration.
func DefaultCatalog() []Product {
	return []Product{
		{
			ID:          1,
			Name:        "Wireless Headphones",
			Description: "Premium noise-canceling wireless headphones with 30-hour battery life",
			Price:       199.99,
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500&h=500&fit=crop",
			Category:    "Electronics",
			Stock:       50,
			Rating:      4.5,
		},
		{
			ID:          2,
			Name:        "Smart Watch",
			Description: "Fitness tracking smartwatch with heart rate monitor and GPS",
			Price:       299.99,
			Image:       "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=500&h=500&fit=crop",
			Category:    "Electronics",
			Stock:       30,
			Rating:      4.7,
		},
		{
			ID:          3,
			Name:        "Laptop Backpack",
			Description: "Water-resistant laptop backpack with USB charging port",
			Price:       49.99,
			Image:       "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=500&h=500&fit=crop",
			Category:    "Accessories",
			Stock:       100,
			Rating:      4.3,
		},
		{
			ID:          4,
			Name:        "Mechanical Keyboard",
			Description: "RGB mechanical gaming keyboard with cherry MX switches",
			Price:       129.99,
			Image:       "https://images.unsplash.com/photo-1587829741301-dc798b83add3?w=500&h=500&fit=crop",
			Category:    "Electronics",
			Stock:       45,
			Rating:      4.6,
		},
		{
			ID:          5,
			Name:        "Coffee Maker",
			Description: "Programmable coffee maker with thermal carafe",
			Price:       79.99,
			Image:       "https://images.unsplash.com/photo-1517668808822-9ebb02f2a0e6?w=500&h=500&fit=crop",
			Category:    "Home",
			Stock:       60,
			Rating:      4.4,
		},
		{
			ID:          6,
			Name:        "Running Shoes",
			Description: "Lightweight running shoes with superior cushioning",
			Price:       89.99,
			Image:       "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=500&h=500&fit=crop",
			Category:    "Fashion",
			Stock:       75,
			Rating:      4.8,
		},
		{
			ID:          7,
			Name:        "Desk Lamp",
			Description: "LED desk lamp with adjustable brightness and color temperature",
			Price:       39.99,
			Image:       "https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=500&h=500&fit=crop",
			Category:    "Home",
			Stock:       90,
			Rating:      4.2,
		},
		{
			ID:          8,
			Name:        "Yoga Mat",
			Description: "Non-slip yoga mat with carrying strap",
			Price:       29.99,
			Image:       "https://images.unsplash.com/photo-1601925260368-ae2f83cf8b7f?w=500&h=500&fit=crop",
			Category:    "Fitness",
			Stock:       120,
			Rating:      4.5,
		},
	}
}
