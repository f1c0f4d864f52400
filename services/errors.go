package services

import (
	"errors"
	"fmt"
)

var (
	ErrTableNotFound   = errors.New("table not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrProductNotFound = errors.New("product not found")
	ErrComboNotFound   = errors.New("combo not found")

	ErrEmptyItems        = errors.New("at least one item is required")
	ErrEmptyReservedBy   = errors.New("reservation name is required")
	ErrInvalidTransition = errors.New("table is not in a state that allows this")
	ErrOrderNotActive    = errors.New("order is not active")
)

// TableConflictError reports who currently holds a table when a reserve or
// start-order attempt hits a table that is not available. The failed call
// must not mutate anything; the caller shows this to the user.
type TableConflictError struct {
	TableID    uint
	Status     string
	ReservedBy *string
	OrderID    *uint
}

func (e *TableConflictError) Error() string {
	if e.ReservedBy != nil {
		return fmt.Sprintf("table %d is %s by %s", e.TableID, e.Status, *e.ReservedBy)
	}
	return fmt.Sprintf("table %d is %s", e.TableID, e.Status)
}
