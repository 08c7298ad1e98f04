package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type addReviewRequest struct {
	ItemID  string `json:"itemId" binding:"required"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func handleAddReview(c *gin.Context) {
	var req addReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	stores := getStores(c)
	if _, found := stores.Catalog.ItemByID(req.ItemID); !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	user := currentUser(c)
	review := stores.Reviews.Add(req.ItemID, user.ID, user.Username, req.Rating, req.Comment)
	c.JSON(http.StatusCreated, gin.H{"review": review})
}

func handleAdminDeleteReview(c *gin.Context) {
	getStores(c).Reviews.Remove(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "Review removed"})
}
