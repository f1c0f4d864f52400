package models

const (
	CategoryBeer    = "beer"
	CategoryAlcohol = "alcohol"
	CategoryGeneral = "general"
	CategoryFood    = "food"
)

type Product struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Name     string  `gorm:"not null" json:"name"`
	Price    float64 `gorm:"not null" json:"price"`
	Category string  `gorm:"type:varchar(16);not null" json:"category"`
	Stock    int     `gorm:"not null;default:0" json:"stock"`
	MinStock int     `gorm:"not null;default:0" json:"minStock"`
}

// LowStock is derived, never stored.
func (p *Product) LowStock() bool {
	return p.Stock <= p.MinStock
}
