package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func cartResponse(c *gin.Context) gin.H {
	cart := getStores(c).Cart
	return gin.H{
		"lines":    cart.Lines(),
		"count":    cart.Count(),
		"subtotal": cart.Subtotal(),
	}
}

func handleCart(c *gin.Context) {
	c.JSON(http.StatusOK, cartResponse(c))
}

type addToCartRequest struct {
	ItemID string `json:"itemId" binding:"required"`
}

func handleAddToCart(c *gin.Context) {
	var req addToCartRequest
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

	stores.Cart.AddToCart(item)
	c.JSON(http.StatusOK, cartResponse(c))
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func handleUpdateCartQuantity(c *gin.Context) {
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	getStores(c).Cart.UpdateQuantity(c.Param("id"), req.Quantity)
	c.JSON(http.StatusOK, cartResponse(c))
}

func handleRemoveFromCart(c *gin.Context) {
	getStores(c).Cart.RemoveFromCart(c.Param("id"))
	c.JSON(http.StatusOK, cartResponse(c))
}

func handleClearCart(c *gin.Context) {
	getStores(c).Cart.Clear()
	c.JSON(http.StatusOK, cartResponse(c))
}
