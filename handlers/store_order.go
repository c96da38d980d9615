package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"qr-order-api/config"
	"qr-order-api/middleware"
	"qr-order-api/models"
)

// ListOrders returns the authenticated store's orders for the dashboard
func ListOrders(c *gin.Context) {
	storeID := middleware.GetAccountID(c)

	var orders []models.Order
	query := config.DB.Preload("Items").Where("store_id = ?", storeID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	query.Order("created_at desc").Find(&orders)

	// Group counts by status for the dashboard summary
	summary := map[string]int{}
	for _, o := range orders {
		summary[string(o.Status)]++
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"order_summary": summary,
		"count":         len(orders),
		"orders":        orders,
	})
}

// GetOrderStatus returns the store's unpaid orders for a table number or
// customer name, so a returning customer can check their queue position.
func GetOrderStatus(c *gin.Context) {
	storeID := middleware.GetAccountID(c)

	query := config.DB.Preload("Items").
		Where("store_id = ? AND status <> ?", storeID, models.StatusPaid)
	switch {
	case c.Query("table") != "":
		query = query.Where("table_number = ?", c.Query("table"))
	case c.Query("customer") != "":
		query = query.Where("customer_name = ?", c.Query("customer"))
	default:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "table or customer query parameter required"})
		return
	}

	var orders []models.Order
	query.Order("created_at asc").Find(&orders)
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(orders), "orders": orders})
}

// DeleteOrder removes one of the store's own orders and its line items
func DeleteOrder(c *gin.Context) {
	storeID := middleware.GetAccountID(c)
	orderID := c.Param("id")

	var order models.Order
	if err := config.DB.First(&order, orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
		return
	}
	if order.StoreID != storeID {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "This order does not belong to your store"})
		return
	}

	if err := config.DB.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
		log.WithError(err).Error("Failed to delete order items")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete order"})
		return
	}
	if err := config.DB.Delete(&order).Error; err != nil {
		log.WithError(err).Error("Failed to delete order")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order deleted"})
}
