package models

const (
	TableAvailable = "available"
	TableReserved  = "reserved"
	TableOccupied  = "occupied"
)

// Table is a physical seating unit. OrderID is set only while the table is
// occupied, ReservedBy only while it is reserved.
type Table struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	Number     int     `gorm:"uniqueIndex;not null" json:"number"`
	Status     string  `gorm:"type:varchar(16);not null;default:'available'" json:"status"`
	OrderID    *uint   `json:"orderId"`
	ReservedBy *string `json:"reservedBy"`
}
