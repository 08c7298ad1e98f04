package store

import (
	"chicchariot/internal/models"
)

// Seed data used on first run, before any snapshot has been persisted.

func seedCategories() []string {
	return []string{
		"Dresses",
		"Tops",
		"Skirts",
		"Pants",
		"Outerwear",
		"Accessories",
	}
}

func seedItems() []models.CatalogItem {
	return []models.CatalogItem{
		{
			ID:          "1",
			Name:        "Classic A-Line Midi Dress",
			Description: "A timeless piece with a flattering A-line silhouette, perfect for any occasion.",
			Price:       4500,
			Stock:       50,
			ImageURL:    "https://images.unsplash.com/photo-1572804013427-4d7ca7268211?auto=format&fit=crop&q=80&w=870",
			Category:    "Dresses",
		},
		{
			ID:          "2",
			Name:        "Silk Button-Up Blouse",
			Description: "Luxurious and versatile, this silk blouse can be dressed up or down.",
			Price:       2800,
			Stock:       80,
			ImageURL:    "https://images.unsplash.com/photo-1620799140408-edc6d5f9650d?auto=format&fit=crop&q=80&w=870",
			Category:    "Tops",
		},
		{
			ID:          "3",
			Name:        "High-Waisted Pleated Skirt",
			Description: "Flowy and chic, this pleated skirt adds a touch of elegance to your look.",
			Price:       3200,
			Stock:       60,
			ImageURL:    "https://images.unsplash.com/photo-1594610199422-315606132402?auto=format&fit=crop&q=80&w=870",
			Category:    "Skirts",
		},
		{
			ID:          "4",
			Name:        "Tailored Wide-Leg Trousers",
			Description: "Sophisticated and comfortable, these trousers are a modern wardrobe essential.",
			Price:       3800,
			Stock:       70,
			ImageURL:    "https://images.unsplash.com/photo-1594623930312-2a7053e6d16c?auto=format&fit=crop&q=80&w=870",
			Category:    "Pants",
		},
		{
			ID:          "5",
			Name:        "Cashmere Blend Cardigan",
			Description: "Stay cozy and stylish with our incredibly soft cashmere blend cardigan.",
			Price:       6500,
			Stock:       40,
			ImageURL:    "https://images.unsplash.com/photo-1552902250-286c08521d92?auto=format&fit=crop&q=80&w=870",
			Category:    "Outerwear",
		},
		{
			ID:          "6",
			Name:        "Leather Crossbody Bag",
			Description: "A minimalist and functional crossbody bag, crafted from genuine leather.",
			Price:       5500,
			Stock:       90,
			ImageURL:    "https://images.unsplash.com/photo-1594223274512-ad4803739b7c?auto=format&fit=crop&q=80&w=870",
			Category:    "Accessories",
		},
		{
			ID:          "7",
			Name:        "Floral Print Maxi Dress",
			Description: "Embrace the season with this stunning floral maxi dress, featuring a side slit.",
			Price:       5200,
			Stock:       45,
			ImageURL:    "https://images.unsplash.com/photo-1604337424266-d4a9415842c2?auto=format&fit=crop&q=80&w=870",
			Category:    "Dresses",
		},
		{
			ID:          "8",
			Name:        "Puff Sleeve Bodysuit",
			Description: "A trendy and comfortable bodysuit with statement puff sleeves.",
			Price:       2200,
			Stock:       100,
			ImageURL:    "https://images.unsplash.com/photo-1581044777550-4cfa60707c03?auto=format&fit=crop&q=80&w=870",
			Category:    "Tops",
		},
	}
}

func seedUsers() []models.User {
	return []models.User{
		{
			ID:       "admin-1",
			Username: "sagar",
			Password: "123",
			Role:     models.RoleAdmin,
			Provider: models.ProviderCredentials,
		},
	}
}
