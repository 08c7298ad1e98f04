package handlers

import (
	"net/http"

	"chicchariot/internal/models"

	"github.com/gin-gonic/gin"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func handleLogin(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	stores := getStores(c)
	result := stores.Auth.Login(req.Username, req.Password)
	if !result.Success {
		c.JSON(http.StatusUnauthorized, gin.H{"error": result.Message})
		return
	}

	c.JSON(http.StatusOK, stores.Auth.Session())
}

func handleSignup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	stores := getStores(c)
	result := stores.Auth.Signup(req.Username, req.Password)
	if !result.Success {
		c.JSON(http.StatusBadRequest, gin.H{"error": result.Message})
		return
	}

	c.JSON(http.StatusCreated, stores.Auth.Session())
}

func handleGoogleLogin(c *gin.Context) {
	stores := getStores(c)
	result := stores.Auth.ExternalLogin()
	if !result.Success {
		c.JSON(http.StatusBadRequest, gin.H{"error": result.Message})
		return
	}

	c.JSON(http.StatusOK, stores.Auth.Session())
}

func handleSession(c *gin.Context) {
	c.JSON(http.StatusOK, getStores(c).Auth.Session())
}

func handleLogout(c *gin.Context) {
	getStores(c).Auth.Logout()
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func handleChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	stores := getStores(c)
	if !stores.Auth.VerifyPassword(req.CurrentPassword) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Current password is incorrect."})
		return
	}
	if req.NewPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "New password is required."})
		return
	}

	stores.Auth.ChangePassword(req.NewPassword)
	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

type updateProfileRequest struct {
	Username string                  `json:"username"`
	Details  *models.CustomerDetails `json:"details"`
}

func handleUpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	stores := getStores(c)
	result := stores.Auth.UpdateProfile(req.Username, req.Details)
	if !result.Success {
		c.JSON(http.StatusBadRequest, gin.H{"error": result.Message})
		return
	}

	c.JSON(http.StatusOK, stores.Auth.Session())
}
