package store

import (
	"chicchariot/internal/models"
)

func itemFixture(name, category string, stock int) models.CatalogItem {
	return models.CatalogItem{
		Name:        name,
		Description: name + " description",
		Price:       50,
		Stock:       stock,
		ImageURL:    "https://example.com/" + name,
		Category:    category,
	}
}
