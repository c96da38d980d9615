// Package queue owns per-store queue numbers: assignment on order creation
// and renumbering when an order leaves the active set.
package queue

import (
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"qr-order-api/models"
	"qr-order-api/status"
)

// NextNumber returns the queue number for a new order of the given store:
// one past the highest number held by any existing order of that store
// (0 when the store has none). This is a read-then-write sequence with no
// isolation; two concurrent creations for the same store can both read the
// same maximum and end up with duplicate numbers.
func NextNumber(db *gorm.DB, storeID uint) (int, error) {
	var max int
	err := db.Model(&models.Order{}).
		Where("store_id = ?", storeID).
		Select("COALESCE(MAX(queue_number), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

// Release drops the queue number of a completed order and renumbers the
// store's remaining active orders. The order is re-read by ID so the store
// is taken from the stored row, not from caller input.
func Release(db *gorm.DB, orderID uint) error {
	var order models.Order
	if err := db.First(&order, orderID).Error; err != nil {
		return err
	}
	if err := db.Model(&order).Update("queue_number", nil).Error; err != nil {
		return err
	}
	return Renumber(db, order.StoreID)
}

// Renumber reassigns 1..K to the store's pending, accepted and preparing
// orders in creation order. Orders in delivering are skipped and keep their
// old number. Rows are updated one at a time, not in a transaction; a
// failure mid-pass leaves the earlier updates in place.
func Renumber(db *gorm.DB, storeID uint) error {
	var orders []models.Order
	err := db.Where("store_id = ? AND status IN ?", storeID, status.Active).
		Order("created_at asc").
		Find(&orders).Error
	if err != nil {
		return err
	}

	for i := range orders {
		if err := db.Model(&orders[i]).Update("queue_number", i+1).Error; err != nil {
			log.WithError(err).WithFields(log.Fields{
				"store_id": storeID,
				"order_id": orders[i].ID,
			}).Error("Queue renumbering aborted mid-pass")
			return err
		}
	}
	return nil
}
