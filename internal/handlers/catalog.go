package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func handleCatalog(c *gin.Context) {
	stores := getStores(c)
	c.JSON(http.StatusOK, stores.Catalog.List())
}

func handleItemDetail(c *gin.Context) {
	stores := getStores(c)

	item, found := stores.Catalog.ItemByID(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	average, count := stores.Reviews.AverageRating(item.ID)
	c.JSON(http.StatusOK, gin.H{
		"item":          item,
		"averageRating": average,
		"reviewCount":   count,
		"inWishlist":    stores.Wishlist.Contains(item.ID),
	})
}

func handleItemReviews(c *gin.Context) {
	stores := getStores(c)

	id := c.Param("id")
	if _, found := stores.Catalog.ItemByID(id); !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	average, count := stores.Reviews.AverageRating(id)
	c.JSON(http.StatusOK, gin.H{
		"reviews":       stores.Reviews.ListByItem(id),
		"averageRating": average,
		"reviewCount":   count,
	})
}
