package models

import "time"

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusAccepted   OrderStatus = "accepted"
	StatusPreparing  OrderStatus = "preparing"
	StatusFinished   OrderStatus = "finished"
	StatusDelivering OrderStatus = "delivering"
	StatusDelivered  OrderStatus = "delivered"
	StatusPaid       OrderStatus = "paid"
)

// Addon is a selected extra on a line item (also used on menu items)
type Addon struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Order struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	StoreID      uint        `json:"store_id" gorm:"not null;index"`
	Store        Store       `json:"store,omitempty" gorm:"foreignKey:StoreID"`
	TableNumber  string      `json:"table_number"`  // set when the identifier is numeric
	CustomerName string      `json:"customer_name"` // set otherwise; mutually exclusive
	Status       OrderStatus `json:"status" gorm:"not null;default:'pending'"`
	QueueNumber  *int        `json:"queue_number"` // nil once the order leaves the active queue
	TotalPrice   float64     `json:"total_price"`  // client-supplied, stored verbatim
	IsCallBill   bool        `json:"is_call_bill" gorm:"default:false"`
	Items        []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	OrderID  uint    `json:"order_id" gorm:"not null;index"`
	Name     string  `json:"name" gorm:"not null"`
	Price    float64 `json:"price" gorm:"not null"` // snapshot unit price at time of order
	Quantity int     `json:"quantity" gorm:"not null"`
	Comment  string  `json:"comment"`
	Addons   []Addon `json:"addons" gorm:"serializer:json"`
}
