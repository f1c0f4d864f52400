package dtos

// OrderItemInput names a catalog entry by id and type. Price and name are
// resolved server side at entry time so the snapshot always reflects the
// current catalog.
type OrderItemInput struct {
	RefID    uint   `json:"refId" binding:"required"`
	Type     string `json:"type" binding:"required,oneof=product combo"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

type StartOrderInput struct {
	TableID uint             `json:"tableId" binding:"required"`
	Items   []OrderItemInput `json:"items" binding:"required,min=1,dive"`
}

type AddItemsInput struct {
	Items []OrderItemInput `json:"items" binding:"required,min=1,dive"`
}
