package handlers

import (
	"net/http"

	"chicchariot/internal/models"

	"github.com/gin-gonic/gin"
)

type itemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	ImageURL    string  `json:"imageUrl"`
	Category    string  `json:"category"`
}

func handleAdminAddItem(c *gin.Context) {
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	item := getStores(c).Catalog.AddItem(models.CatalogItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
	})
	c.JSON(http.StatusCreated, gin.H{"item": item})
}

func handleAdminUpdateItem(c *gin.Context) {
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	stores := getStores(c)
	id := c.Param("id")
	if _, found := stores.Catalog.ItemByID(id); !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	stores.Catalog.UpdateItem(models.CatalogItem{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
	})

	item, _ := stores.Catalog.ItemByID(id)
	c.JSON(http.StatusOK, gin.H{"item": item})
}

func handleAdminDeleteItem(c *gin.Context) {
	getStores(c).Catalog.DeleteItem(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "Item removed"})
}

type categoryRequest struct {
	Name string `json:"name" binding:"required"`
}

func handleAdminAddCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	stores := getStores(c)
	result := stores.Catalog.AddCategory(req.Name)
	if !result.Success {
		c.JSON(http.StatusBadRequest, gin.H{"error": result.Message})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"categories": stores.Catalog.List().Categories})
}

func handleAdminRenameCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	stores := getStores(c)
	result := stores.Catalog.RenameCategory(c.Param("name"), req.Name)
	if !result.Success {
		c.JSON(http.StatusBadRequest, gin.H{"error": result.Message})
		return
	}

	c.JSON(http.StatusOK, stores.Catalog.List())
}

func handleAdminDeleteCategory(c *gin.Context) {
	stores := getStores(c)
	stores.Catalog.DeleteCategory(c.Param("name"))
	c.JSON(http.StatusOK, gin.H{"categories": stores.Catalog.List().Categories})
}

func handleAdminList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"admins": getStores(c).Auth.Admins()})
}

func handleAdminAdd(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	stores := getStores(c)
	result := stores.Auth.AddAdmin(req.Username, req.Password)
	if !result.Success {
		c.JSON(http.StatusBadRequest, gin.H{"error": result.Message})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"admins": stores.Auth.Admins()})
}

func handleAdminUpdate(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	stores := getStores(c)
	result := stores.Auth.UpdateAdmin(c.Param("id"), req.Username, req.Password)
	if !result.Success {
		c.JSON(http.StatusBadRequest, gin.H{"error": result.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"admins": stores.Auth.Admins()})
}

func handleAdminRemove(c *gin.Context) {
	stores := getStores(c)
	result := stores.Auth.RemoveAdmin(c.Param("id"))
	if !result.Success {
		c.JSON(http.StatusBadRequest, gin.H{"error": result.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"admins": stores.Auth.Admins()})
}
