package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func handleWishlist(c *gin.Context) {
	wishlist := getStores(c).Wishlist
	c.JSON(http.StatusOK, gin.H{
		"items": wishlist.List(),
		"count": wishlist.Count(),
	})
}

type addToWishlistRequest struct {
	ItemID string `json:"itemId" binding:"required"`
}

func handleAddToWishlist(c *gin.Context) {
	var req addToWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	stores := getStores(c)
	item, found := stores.Catalog.ItemByID(req.ItemID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	stores.Wishlist.Add(item)
	c.JSON(http.StatusOK, gin.H{
		"items": stores.Wishlist.List(),
		"count": stores.Wishlist.Count(),
	})
}

func handleRemoveFromWishlist(c *gin.Context) {
	wishlist := getStores(c).Wishlist
	wishlist.Remove(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{
		"items": wishlist.List(),
		"count": wishlist.Count(),
	})
}
