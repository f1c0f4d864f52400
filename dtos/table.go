package dtos

type ReserveInput struct {
	ReservedBy string `json:"reservedBy" binding:"required"`
}
