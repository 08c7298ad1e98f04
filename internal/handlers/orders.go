package handlers

import (
	"net/http"

	"chicchariot/internal/email"
	"chicchariot/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type checkoutRequest struct {
	Customer      models.CustomerDetails `json:"customer" binding:"required"`
	PaymentMethod string                 `json:"paymentMethod" binding:"required"`
	PaymentProof  string                 `json:"paymentProof"`
}

func handleCheckout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	stores := getStores(c)
	order, result := stores.Checkout.PlaceOrder(req.Customer, models.PaymentMethod(req.PaymentMethod), req.PaymentProof)
	if !result.Success {
		c.JSON(http.StatusBadRequest, gin.H{"error": result.Message})
		return
	}

	emailService := c.MustGet("email_service").(*email.Service)
	if emailService.IsEnabled() {
		go func(order models.Order) {
			if err := emailService.SendOrderNotification(&order); err != nil {
				log.Error().Err(err).Str("order_id", order.ID).Msg("failed to send order notification")
			}
		}(order)
	}

	c.JSON(http.StatusCreated, gin.H{"order": order})
}

func handleOrderHistory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"orders": getStores(c).Orders.List("")})
}

func handleAdminOrders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"orders": getStores(c).Orders.List(c.Query("q"))})
}

type setStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func handleAdminSetOrderStatus(c *gin.Context) {
	var req setStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	stores := getStores(c)
	result := stores.Orders.SetStatus(c.Param("id"), models.OrderStatus(req.Status))
	if !result.Success {
		c.JSON(http.StatusBadRequest, gin.H{"error": result.Message})
		return
	}

	order, found := stores.Orders.OrderByID(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}
