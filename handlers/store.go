package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"qr-order-api/config"
	"qr-order-api/middleware"
	"qr-order-api/models"
)

// ── Store profile ───────────────────────────────────────────────────────────

// GetStoreProfile returns the authenticated owner's store with its menu
func GetStoreProfile(c *gin.Context) {
	storeID := middleware.GetAccountID(c)
	var store models.Store
	if err := config.DB.Preload("MenuItems").First(&store, storeID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Store not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "store": store})
}

// UpdateStoreProfile updates the owner's store details
func UpdateStoreProfile(c *gin.Context) {
	storeID := middleware.GetAccountID(c)
	var store models.Store
	if err := config.DB.First(&store, storeID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Store not found"})
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	// Only allow safe fields
	allowed := map[string]bool{"name": true, "phone": true, "address": true, "has_tables": true, "table_count": true}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	if err := config.DB.Model(&store).Updates(update).Error; err != nil {
		log.WithError(err).Error("Failed to update store profile")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update store"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Store updated", "store": store})
}

// ── Menu management ─────────────────────────────────────────────────────────

type CreateMenuItemRequest struct {
	Name        string         `json:"name" binding:"required"`
	Description string         `json:"description"`
	Price       float64        `json:"price" binding:"required,gt=0"`
	Image       string         `json:"image"` // base64 data URI
	Addons      []models.Addon `json:"addons"`
}

// AddMenuItem adds a new item to the owner's menu
func AddMenuItem(c *gin.Context) {
	storeID := middleware.GetAccountID(c)

	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	item := models.MenuItem{
		StoreID:     storeID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Addons:      req.Addons,
		IsAvailable: true,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		log.WithError(err).Error("Failed to add menu item")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to add menu item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Menu item added", "item": item})
}

// GetMyMenu returns the owner's full menu, including unavailable items
func GetMyMenu(c *gin.Context) {
	storeID := middleware.GetAccountID(c)
	var items []models.MenuItem
	config.DB.Where("store_id = ?", storeID).Find(&items)
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(items), "menu": items})
}

type UpdateMenuItemRequest struct {
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	Price       *float64        `json:"price"`
	Image       *string         `json:"image"`
	IsAvailable *bool           `json:"is_available"`
	Addons      *[]models.Addon `json:"addons"`
}

// UpdateMenuItem updates a menu item (only by the owner). Fields absent from
// the request are left untouched.
func UpdateMenuItem(c *gin.Context) {
	storeID := middleware.GetAccountID(c)
	itemID := c.Param("itemId")

	var item models.MenuItem
	if err := config.DB.First(&item, itemID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Menu item not found"})
		return
	}
	if item.StoreID != storeID {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "You don't own this menu item"})
		return
	}

	var req UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Image != nil {
		item.Image = *req.Image
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	if req.Addons != nil {
		item.Addons = *req.Addons
	}
	if err := config.DB.Save(&item).Error; err != nil {
		log.WithError(err).Error("Failed to update menu item")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Menu item updated", "item": item})
}

// DeleteMenuItem removes a menu item
func DeleteMenuItem(c *gin.Context) {
	storeID := middleware.GetAccountID(c)
	itemID := c.Param("itemId")

	var item models.MenuItem
	if err := config.DB.First(&item, itemID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Menu item not found"})
		return
	}
	if item.StoreID != storeID {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "You don't own this menu item"})
		return
	}
	config.DB.Delete(&item)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Menu item deleted"})
}
