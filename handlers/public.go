package handlers

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"qr-order-api/config"
	"qr-order-api/models"
	"qr-order-api/queue"
	"qr-order-api/status"
)

// numericIdentifier decides whether a customer identifier is a table number
var numericIdentifier = regexp.MustCompile(`^\d+$`)

// GetStoreByQR resolves a scanned QR slug to the store's public profile
func GetStoreByQR(c *gin.Context) {
	var store models.Store
	if err := config.DB.Where("qr_slug = ?", c.Param("slug")).First(&store).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Store not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "store": publicStore(&store)})
}

// GetStore returns a store's public profile by id
func GetStore(c *gin.Context) {
	var store models.Store
	if err := config.DB.First(&store, c.Param("storeId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Store not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "store": publicStore(&store)})
}

// publicStore strips account fields from a store record
func publicStore(s *models.Store) gin.H {
	return gin.H{
		"id":           s.ID,
		"name":         s.Name,
		"phone":        s.Phone,
		"address":      s.Address,
		"has_tables":   s.HasTables,
		"table_count":  s.TableCount,
		"is_suspended": s.IsSuspended,
	}
}

// GetPublicMenu returns a store's menu for the customer ordering page
func GetPublicMenu(c *gin.Context) {
	storeID := c.Param("storeId")
	var store models.Store
	if err := config.DB.First(&store, storeID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Store not found"})
		return
	}

	var items []models.MenuItem
	query := config.DB.Where("store_id = ?", storeID)
	if c.Query("available") == "true" {
		query = query.Where("is_available = ?", true)
	}
	query.Find(&items)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"store":   store.Name,
		"count":   len(items),
		"menu":    items,
	})
}

type CreateOrderItem struct {
	Name     string         `json:"name" binding:"required"`
	Price    float64        `json:"price"`
	Quantity int            `json:"quantity" binding:"required,min=1"`
	Comment  string         `json:"comment"`
	Addons   []models.Addon `json:"addons"`
}

type CreateOrderRequest struct {
	StoreID    uint              `json:"storeId" binding:"required"`
	Identifier string            `json:"identifier" binding:"required"`
	TotalPrice float64           `json:"totalPrice" binding:"required"`
	Items      []CreateOrderItem `json:"items" binding:"required,min=1,dive"`
}

// CreateOrder places a new order and assigns the next queue number for the
// store. The total price is stored as submitted, not recomputed.
func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	var store models.Store
	if err := config.DB.First(&store, req.StoreID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Store not found"})
		return
	}
	if store.IsSuspended {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Store is not accepting orders"})
		return
	}

	queueNumber, err := queue.NextNumber(config.DB, req.StoreID)
	if err != nil {
		log.WithError(err).Error("Failed to assign queue number")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to place order"})
		return
	}

	var items []models.OrderItem
	for _, it := range req.Items {
		items = append(items, models.OrderItem{
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
			Comment:  it.Comment,
			Addons:   it.Addons,
		})
	}

	order := models.Order{
		StoreID:     req.StoreID,
		Status:      models.StatusPending,
		QueueNumber: &queueNumber,
		TotalPrice:  req.TotalPrice,
		Items:       items,
	}
	if numericIdentifier.MatchString(req.Identifier) {
		order.TableNumber = req.Identifier
	} else {
		order.CustomerName = req.Identifier
	}

	if err := config.DB.Create(&order).Error; err != nil {
		log.WithError(err).Error("Failed to create order")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to place order"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     "Order placed successfully",
		"orderId":     order.ID,
		"queueNumber": queueNumber,
	})
}

type UpdateOrderStatusRequest struct {
	OrderID uint               `json:"orderId" binding:"required"`
	Status  models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus sets an order's status. When the order enters finished
// or delivered it leaves the active queue and the store's remaining active
// orders are renumbered.
func UpdateOrderStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if err := status.Validate(req.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	result := config.DB.Model(&models.Order{}).
		Where("id = ? AND status <> ?", req.OrderID, req.Status).
		Update("status", req.Status)
	if result.Error != nil {
		log.WithError(result.Error).Error("Failed to update order status")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update status"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found or status unchanged"})
		return
	}

	if status.TriggersRenumber(req.Status) {
		if err := queue.Release(config.DB, req.OrderID); err != nil {
			log.WithError(err).WithField("order_id", req.OrderID).Error("Queue renumbering failed")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update status"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order status updated", "status": req.Status})
}

type CallBillRequest struct {
	OrderID     uint `json:"orderId"`
	StoreID     uint `json:"storeId"`
	QueueNumber int  `json:"queueNumber"`
}

// CallBill flags the matching order(s) as requesting the bill. Matching is
// by order id, or by store + queue number. Idempotent: re-flagging an
// already flagged order succeeds.
func CallBill(c *gin.Context) {
	var req CallBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	query := config.DB.Model(&models.Order{})
	switch {
	case req.OrderID != 0:
		query = query.Where("id = ?", req.OrderID)
	case req.StoreID != 0 && req.QueueNumber > 0:
		query = query.Where("store_id = ? AND queue_number = ?", req.StoreID, req.QueueNumber)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "orderId or storeId+queueNumber required"})
		return
	}

	result := query.Update("is_call_bill", true)
	if result.Error != nil {
		log.WithError(result.Error).Error("Failed to set call-bill flag")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to request bill"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Bill requested"})
}

// GetActiveTables returns the distinct table numbers tied to unpaid orders,
// so the customer page can grey out tables already in use.
func GetActiveTables(c *gin.Context) {
	storeID := c.Param("storeId")

	var tables []string
	err := config.DB.Model(&models.Order{}).
		Distinct().
		Where("store_id = ? AND status <> ? AND table_number <> ''", storeID, models.StatusPaid).
		Pluck("table_number", &tables).Error
	if err != nil {
		log.WithError(err).Error("Failed to query active tables")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load tables"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(tables), "tables": tables})
}

// GetStatuses documents the order lifecycle for clients
func GetStatuses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"lifecycle":         status.Lifecycle,
		"active":            status.Active,
		"renumber_triggers": []models.OrderStatus{models.StatusFinished, models.StatusDelivered},
		"description":       "Order lifecycle; queue numbers are held by active orders only",
	})
}
