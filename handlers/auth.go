package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"qr-order-api/config"
	"qr-order-api/middleware"
	"qr-order-api/models"
)

type RegisterRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	HasTables  bool   `json:"hasTables"`
	TableCount int    `json:"tableCount"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new store-owner account. The store record doubles as
// the login account; a fresh QR slug is generated for the customer page.
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	var existing models.Store
	if result := config.DB.Where("email = ?", req.Email).First(&existing); result.Error == nil {
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Email already registered"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to hash password"})
		return
	}

	store := models.Store{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Phone:        req.Phone,
		Address:      req.Address,
		QRSlug:       uuid.NewString(),
		HasTables:    req.HasTables,
		TableCount:   req.TableCount,
	}

	if err := config.DB.Create(&store).Error; err != nil {
		log.WithError(err).Error("Failed to create store account")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create account"})
		return
	}

	token, err := middleware.GenerateToken(store.ID, store.Email, models.RoleStore)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to generate token"})
		return
	}
	middleware.SetTokenCookie(c, token)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Account created successfully",
		"token":   token,
		"store": gin.H{
			"id":      store.ID,
			"name":    store.Name,
			"email":   store.Email,
			"qr_slug": store.QRSlug,
		},
	})
}

// Login authenticates a store owner or admin and sets the token cookie
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	var (
		accountID uint
		hash      string
		role      models.Role
	)

	var store models.Store
	if err := config.DB.Where("email = ?", req.Email).First(&store).Error; err == nil {
		accountID, hash, role = store.ID, store.PasswordHash, models.RoleStore
	} else {
		var admin models.Admin
		if err := config.DB.Where("email = ?", req.Email).First(&admin).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid email or password"})
			return
		}
		accountID, hash, role = admin.ID, admin.PasswordHash, models.RoleAdmin
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid email or password"})
		return
	}

	token, err := middleware.GenerateToken(accountID, req.Email, role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to generate token"})
		return
	}
	middleware.SetTokenCookie(c, token)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"role":    role,
	})
}

// Logout clears the auth cookie
func Logout(c *gin.Context) {
	middleware.ClearTokenCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out"})
}

// GetProfile returns the authenticated account's profile
func GetProfile(c *gin.Context) {
	accountID := middleware.GetAccountID(c)

	if middleware.GetRole(c) == models.RoleAdmin {
		var admin models.Admin
		if err := config.DB.First(&admin, accountID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Account not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "role": models.RoleAdmin, "admin": admin})
		return
	}

	var store models.Store
	if err := config.DB.First(&store, accountID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Account not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "role": models.RoleStore, "store": store})
}
