package models

// Combo is a bundled catalog entry. Selling one combo decrements the stock of
// every constituent product by its bundled quantity.
type Combo struct {
	ID    uint        `gorm:"primaryKey" json:"id"`
	Name  string      `gorm:"not null" json:"name"`
	Price float64     `gorm:"not null" json:"price"`
	Items []ComboItem `json:"items"`
}

type ComboItem struct {
	ID        uint `gorm:"primaryKey" json:"-"`
	ComboID   uint `gorm:"not null;index" json:"-"`
	ProductID uint `gorm:"not null" json:"productId"`
	Quantity  int  `gorm:"not null" json:"quantity"`
}
