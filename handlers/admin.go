package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"qr-order-api/config"
	"qr-order-api/models"
)

// AdminGetAllStores returns every store with menu and order counts
func AdminGetAllStores(c *gin.Context) {
	var stores []models.Store
	config.DB.Find(&stores)

	result := make([]gin.H, 0, len(stores))
	for _, s := range stores {
		var menuCount, orderCount int64
		config.DB.Model(&models.MenuItem{}).Where("store_id = ?", s.ID).Count(&menuCount)
		config.DB.Model(&models.Order{}).Where("store_id = ?", s.ID).Count(&orderCount)
		result = append(result, gin.H{
			"store":       s,
			"menu_count":  menuCount,
			"order_count": orderCount,
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(stores), "stores": result})
}

// AdminGetAllOrders returns all orders across stores with dashboard totals
func AdminGetAllOrders(c *gin.Context) {
	var orders []models.Order
	query := config.DB.Preload("Items")

	if storeID := c.Query("storeId"); storeID != "" {
		query = query.Where("store_id = ?", storeID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	query.Order("created_at desc").Find(&orders)

	summary := map[string]int{}
	var totalRevenue float64
	for _, o := range orders {
		summary[string(o.Status)]++
		if o.Status == models.StatusPaid {
			totalRevenue += o.TotalPrice
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"order_summary": summary,
		"total_revenue": totalRevenue,
		"count":         len(orders),
		"orders":        orders,
	})
}

// AdminSuspendStore toggles whether a store accepts new orders
func AdminSuspendStore(c *gin.Context) {
	var store models.Store
	if err := config.DB.First(&store, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Store not found"})
		return
	}

	suspended := !store.IsSuspended
	if err := config.DB.Model(&store).Update("is_suspended", suspended).Error; err != nil {
		log.WithError(err).Error("Failed to toggle store suspension")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update store"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Store suspension updated",
		"store_id":     store.ID,
		"is_suspended": suspended,
	})
}

// AdminDeleteStore removes a store together with its menu and orders.
// The deletes run as separate statements: line items first, then orders,
// menu items and finally the store row itself. An interruption mid-sequence
// can leave the later records behind.
func AdminDeleteStore(c *gin.Context) {
	var store models.Store
	if err := config.DB.First(&store, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Store not found"})
		return
	}

	orderIDs := config.DB.Model(&models.Order{}).Select("id").Where("store_id = ?", store.ID)
	steps := []func() error{
		func() error {
			return config.DB.Where("order_id IN (?)", orderIDs).Delete(&models.OrderItem{}).Error
		},
		func() error { return config.DB.Where("store_id = ?", store.ID).Delete(&models.Order{}).Error },
		func() error { return config.DB.Where("store_id = ?", store.ID).Delete(&models.MenuItem{}).Error },
		func() error { return config.DB.Delete(&store).Error },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			log.WithError(err).WithField("store_id", store.ID).Error("Cascading store delete failed")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete store"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Store deleted", "store_id": store.ID})
}

// AdminDeleteOrder removes any order and its line items
func AdminDeleteOrder(c *gin.Context) {
	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
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
