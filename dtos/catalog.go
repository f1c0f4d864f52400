package dtos

type ProductInput struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"required,gt=0"`
	Category string  `json:"category" binding:"required,oneof=beer alcohol general food"`
	Stock    int     `json:"stock" binding:"min=0"`
	MinStock int     `json:"minStock" binding:"min=0"`
}

type ComboItemInput struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type ComboInput struct {
	Name  string           `json:"name" binding:"required"`
	Price float64          `json:"price" binding:"required,gt=0"`
	Items []ComboItemInput `json:"items" binding:"required,min=1,dive"`
}
