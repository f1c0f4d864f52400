package models

import "time"

const (
	OrderActive    = "active"
	OrderCompleted = "completed"
)

const (
	ItemTypeProduct = "product"
	ItemTypeCombo   = "combo"
)

type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	TableID     uint        `gorm:"not null;index" json:"tableId"`
	Items       []OrderItem `json:"items"`
	Total       float64     `gorm:"not null;default:0" json:"total"`
	Status      string      `gorm:"type:varchar(16);not null;default:'active'" json:"status"`
	CreatedAt   time.Time   `gorm:"autoCreateTime" json:"createdAt"`
	CompletedAt *time.Time  `json:"completedAt"`
}

// OrderItem is a denormalized line item. Name and Price are snapshots taken
// when the item entered the order, so later catalog edits never change a tab.
type OrderItem struct {
	ID       uint    `gorm:"primaryKey" json:"-"`
	OrderID  uint    `gorm:"not null;index" json:"-"`
	RefID    uint    `gorm:"not null" json:"refId"`
	ItemType string  `gorm:"type:varchar(8);not null" json:"type"`
	Name     string  `gorm:"not null" json:"name"`
	Price    float64 `gorm:"not null" json:"price"`
	Quantity int     `gorm:"not null" json:"quantity"`
}

func (o *Order) Subtotal() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
