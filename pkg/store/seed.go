package store

import (
	"time"

	"techstore/pkg/domain"
)

// Account pairs a user with its demo plaintext password. Passwords are
// kept in clear because this is seeded demo data, not production auth.
type Account struct {
	User     domain.User
	Password string
}

// Seed is the initial catalog state injected at construction time.
type Seed struct {
	Categories []domain.Category
	Products   []domain.Product
	Orders     []domain.Order
}

// DefaultAccounts returns the three demo accounts. The first one is the
// store administrator.
func DefaultAccounts() []Account {
	return []Account{
		{User: domain.User{ID: "1", Email: "admin@techstore.com", Name: "Admin User", Role: domain.RoleAdmin}, Password: "admin123"},
		{User: domain.User{ID: "2", Email: "user@example.com", Name: "John Smith", Role: domain.RoleUser}, Password: "user123"},
		{User: domain.User{ID: "3", Email: "jane@example.com", Name: "Jane Doe", Role: domain.RoleUser}, Password: "jane123"},
	}
}

// DefaultSeed returns the demo catalog: five categories, eight products,
// and two historical orders.
func DefaultSeed() Seed {
	return Seed{
		Categories: []domain.Category{
			{ID: "1", Name: "Laptops", Description: "High-performance laptops and notebooks"},
			{ID: "2", Name: "Smartphones", Description: "Latest smartphones and mobile devices"},
			{ID: "3", Name: "Gaming", Description: "Gaming peripherals and accessories"},
			{ID: "4", Name: "Audio", Description: "Headphones, speakers, and audio equipment"},
			{ID: "5", Name: "Accessories", Description: "Cables, chargers, and tech accessories"},
		},
		Products: []domain.Product{
			{
				ID:          "1",
				Name:        `MacBook Pro 16"`,
				Description: "Powerful laptop with M3 Pro chip, perfect for professional work and creative tasks.",
				Price:       2499,
				CategoryID:  "1",
				Image:       "https://images.pexels.com/photos/205421/pexels-photo-205421.jpeg?auto=compress&cs=tinysrgb&w=500",
				Stock:       15,
				Specifications: map[string]string{
					"Processor": "Apple M3 Pro",
					"RAM":       "32GB",
					"Storage":   "1TB SSD",
					"Display":   "16.2-inch Retina",
				},
			},
			{
				ID:          "2",
				Name:        "iPhone 15 Pro",
				Description: "Latest iPhone with titanium design and advanced camera system.",
				Price:       999,
				CategoryID:  "2",
				Image:       "https://images.pexels.com/photos/699122/pexels-photo-699122.jpeg?auto=compress&cs=tinysrgb&w=500",
				Stock:       25,
				Specifications: map[string]string{
					"Display": "6.1-inch Super Retina XDR",
					"Storage": "256GB",
					"Camera":  "48MP Main",
					"Chip":    "A17 Pro",
				},
			},
			{
				ID:          "3",
				Name:        "Gaming Mechanical Keyboard",
				Description: "RGB mechanical keyboard with Cherry MX switches for ultimate gaming experience.",
				Price:       149,
				CategoryID:  "3",
				Image:       "https://images.pexels.com/photos/2115256/pexels-photo-2115256.jpeg?auto=compress&cs=tinysrgb&w=500",
				Stock:       40,
				Specifications: map[string]string{
					"Switch Type":  "Cherry MX Blue",
					"Backlight":    "RGB",
					"Connectivity": "USB-C",
					"Layout":       "Full Size",
				},
			},
			{
				ID:          "4",
				Name:        "Wireless Noise-Canceling Headphones",
				Description: "Premium over-ear headphones with active noise cancellation and 30-hour battery life.",
				Price:       299,
				CategoryID:  "4",
				Image:       "https://images.pexels.com/photos/3394650/pexels-photo-3394650.jpeg?auto=compress&cs=tinysrgb&w=500",
				Stock:       30,
				Specifications: map[string]string{
					"Battery Life":       "30 hours",
					"Noise Cancellation": "Active ANC",
					"Connectivity":       "Bluetooth 5.0",
					"Weight":             "250g",
				},
			},
			{
				ID:          "5",
				Name:        "Dell XPS 13",
				Description: "Ultra-thin laptop with InfinityEdge display and Intel Core i7 processor.",
				Price:       1299,
				CategoryID:  "1",
				Image:       "https://images.pexels.com/photos/1029757/pexels-photo-1029757.jpeg?auto=compress&cs=tinysrgb&w=500",
				Stock:       20,
				Specifications: map[string]string{
					"Processor": "Intel Core i7-1365U",
					"RAM":       "16GB",
					"Storage":   "512GB SSD",
					"Display":   "13.4-inch FHD+",
				},
			},
			{
				ID:          "6",
				Name:        "Samsung Galaxy S24 Ultra",
				Description: "Flagship Android phone with S Pen and advanced AI features.",
				Price:       1199,
				CategoryID:  "2",
				Image:       "https://images.pexels.com/photos/1092644/pexels-photo-1092644.jpeg?auto=compress&cs=tinysrgb&w=500",
				Stock:       18,
				Specifications: map[string]string{
					"Display": "6.8-inch Dynamic AMOLED 2X",
					"Storage": "512GB",
					"Camera":  "200MP Main",
					"S Pen":   "Included",
				},
			},
			{
				ID:          "7",
				Name:        "Gaming Mouse RGB",
				Description: "High-precision gaming mouse with customizable RGB lighting and programmable buttons.",
				Price:       79,
				CategoryID:  "3",
				Image:       "https://images.pexels.com/photos/2115257/pexels-photo-2115257.jpeg?auto=compress&cs=tinysrgb&w=500",
				Stock:       50,
				Specifications: map[string]string{
					"DPI":          "16000",
					"Buttons":      "8 Programmable",
					"Connectivity": "Wireless 2.4GHz",
					"Battery":      "70 hours",
				},
			},
			{
				ID:          "8",
				Name:        "Portable Bluetooth Speaker",
				Description: "Waterproof speaker with 360-degree sound and 20-hour battery life.",
				Price:       129,
				CategoryID:  "4",
				Image:       "https://images.pexels.com/photos/1649771/pexels-photo-1649771.jpeg?auto=compress&cs=tinysrgb&w=500",
				Stock:       35,
				Specifications: map[string]string{
					"Battery Life": "20 hours",
					"Waterproof":   "IPX7",
					"Connectivity": "Bluetooth 5.0",
					"Output":       "20W",
				},
			},
		},
		Orders: []domain.Order{
			{
				ID:     "1",
				UserID: "2",
				Items: []domain.CartLine{
					{ProductID: "1", Quantity: 1},
					{ProductID: "4", Quantity: 1},
				},
				Total:     2798,
				Status:    domain.StatusDelivered,
				CreatedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
				ShippingAddress: domain.Address{
					Name:    "John Smith",
					Street:  "123 Tech Street",
					City:    "San Francisco",
					ZipCode: "94102",
					Country: "USA",
				},
			},
			{
				ID:     "2",
				UserID: "3",
				Items: []domain.CartLine{
					{ProductID: "2", Quantity: 1},
				},
				Total:     999,
				Status:    domain.StatusShipped,
				CreatedAt: time.Date(2024, 1, 18, 14, 30, 0, 0, time.UTC),
				ShippingAddress: domain.Address{
					Name:    "Jane Doe",
					Street:  "456 Innovation Ave",
					City:    "Austin",
					ZipCode: "78701",
					Country: "USA",
				},
			},
		},
	}
}
