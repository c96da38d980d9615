package queue

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"qr-order-api/models"
)

func setupDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// One in-memory database per test: keep the pool on a single connection
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Store{}, &models.Order{}, &models.OrderItem{}))
	return db
}

func placeOrder(t *testing.T, db *gorm.DB, storeID uint, st models.OrderStatus, createdAt time.Time) *models.Order {
	t.Helper()
	qn, err := NextNumber(db, storeID)
	require.NoError(t, err)
	order := models.Order{
		StoreID:     storeID,
		Status:      st,
		QueueNumber: &qn,
		CreatedAt:   createdAt,
	}
	require.NoError(t, db.Create(&order).Error)
	return &order
}

func reload(t *testing.T, db *gorm.DB, id uint) *models.Order {
	t.Helper()
	var order models.Order
	require.NoError(t, db.First(&order, id).Error)
	return &order
}

func TestNextNumber(t *testing.T) {
	db := setupDB(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("first order of a store gets 1", func(t *testing.T) {
		qn, err := NextNumber(db, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, qn)
	})

	t.Run("numbers increase monotonically", func(t *testing.T) {
		first := placeOrder(t, db, 1, models.StatusPending, base)
		second := placeOrder(t, db, 1, models.StatusPending, base.Add(time.Minute))
		assert.Equal(t, 1, *first.QueueNumber)
		assert.Equal(t, 2, *second.QueueNumber)
	})

	t.Run("stores are numbered independently", func(t *testing.T) {
		other := placeOrder(t, db, 2, models.StatusPending, base)
		assert.Equal(t, 1, *other.QueueNumber)
	})
}

func TestReleaseRenumbersActiveOrders(t *testing.T) {
	db := setupDB(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	orders := make([]*models.Order, 4)
	for i := range orders {
		orders[i] = placeOrder(t, db, 1, models.StatusPending, base.Add(time.Duration(i)*time.Minute))
	}

	// Finish the order holding queue number 2
	require.NoError(t, db.Model(orders[1]).Update("status", models.StatusFinished).Error)
	require.NoError(t, Release(db, orders[1].ID))

	t.Run("finished order loses its queue number", func(t *testing.T) {
		assert.Nil(t, reload(t, db, orders[1].ID).QueueNumber)
	})

	t.Run("remaining active orders hold 1..K by creation time", func(t *testing.T) {
		want := map[uint]int{
			orders[0].ID: 1,
			orders[2].ID: 2,
			orders[3].ID: 3,
		}
		for id, expected := range want {
			got := reload(t, db, id)
			require.NotNil(t, got.QueueNumber)
			assert.Equal(t, expected, *got.QueueNumber)
		}
	})
}

func TestReleaseSkipsDeliveringOrders(t *testing.T) {
	db := setupDB(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	first := placeOrder(t, db, 1, models.StatusPending, base)
	delivering := placeOrder(t, db, 1, models.StatusPending, base.Add(time.Minute))
	third := placeOrder(t, db, 1, models.StatusPending, base.Add(2*time.Minute))

	require.NoError(t, db.Model(delivering).Update("status", models.StatusDelivering).Error)

	// Finish the first order: renumbering covers pending/accepted/preparing only
	require.NoError(t, db.Model(first).Update("status", models.StatusFinished).Error)
	require.NoError(t, Release(db, first.ID))

	got := reload(t, db, delivering.ID)
	require.NotNil(t, got.QueueNumber)
	assert.Equal(t, 2, *got.QueueNumber, "delivering order keeps its old queue number")

	gotThird := reload(t, db, third.ID)
	require.NotNil(t, gotThird.QueueNumber)
	assert.Equal(t, 1, *gotThird.QueueNumber)
}

func TestRenumberEmptyStore(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, Renumber(db, 42))
}

func TestReleaseUnknownOrder(t *testing.T) {
	db := setupDB(t)
	assert.Error(t, Release(db, 999))
}
