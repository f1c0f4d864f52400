package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"bar-pos-api/dtos"
	"bar-pos-api/models"
)

// TableService is the table/order state machine. Every transition that
// touches more than one row (table + order + stock) runs inside a single
// database transaction, so a failure anywhere rolls the whole step back.
type TableService interface {
	ListTables() ([]models.Table, error)
	Reserve(tableID uint, reservedBy string) (*models.Table, error)
	Release(tableID uint) (*models.Table, error)
	StartOrder(tableID uint, items []dtos.OrderItemInput) (*models.Order, error)
	AddItems(orderID uint, items []dtos.OrderItemInput) (*models.Order, error)
	Complete(orderID uint) (*models.Order, error)
	Cancel(orderID uint) (*models.Order, error)
}

type tableService struct {
	db *gorm.DB
}

func NewTableService(db *gorm.DB) TableService {
	return &tableService{db: db}
}

func (s *tableService) ListTables() ([]models.Table, error) {
	var tables []models.Table
	if err := s.db.Order("number").Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

func (s *tableService) Reserve(tableID uint, reservedBy string) (*models.Table, error) {
	reservedBy = strings.TrimSpace(reservedBy)
	if reservedBy == "" {
		return nil, ErrEmptyReservedBy
	}

	var table models.Table
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&table, tableID).Error; err != nil {
			return notFound(err, ErrTableNotFound)
		}
		if table.Status != models.TableAvailable {
			return conflict(&table)
		}
		table.Status = models.TableReserved
		table.ReservedBy = &reservedBy
		table.OrderID = nil
		return tx.Save(&table).Error
	})
	if err != nil {
		return nil, err
	}
	return &table, nil
}

func (s *tableService) Release(tableID uint) (*models.Table, error) {
	var table models.Table
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&table, tableID).Error; err != nil {
			return notFound(err, ErrTableNotFound)
		}
		if table.Status != models.TableReserved {
			return ErrInvalidTransition
		}
		table.Status = models.TableAvailable
		table.ReservedBy = nil
		table.OrderID = nil
		return tx.Save(&table).Error
	})
	if err != nil {
		return nil, err
	}
	return &table, nil
}

func (s *tableService) StartOrder(tableID uint, items []dtos.OrderItemInput) (*models.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyItems
	}

	var order models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var table models.Table
		if err := tx.First(&table, tableID).Error; err != nil {
			return notFound(err, ErrTableNotFound)
		}
		if table.Status != models.TableAvailable {
			return conflict(&table)
		}

		lines := make([]models.OrderItem, 0, len(items))
		var total float64
		for _, in := range items {
			line, err := resolveLine(tx, in)
			if err != nil {
				return err
			}
			lines = append(lines, line)
			total += line.Price * float64(line.Quantity)
		}

		order = models.Order{
			TableID: table.ID,
			Items:   lines,
			Total:   total,
			Status:  models.OrderActive,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, line := range order.Items {
			if err := consumeStock(tx, line); err != nil {
				return err
			}
		}

		table.Status = models.TableOccupied
		table.OrderID = &order.ID
		table.ReservedBy = nil
		return tx.Save(&table).Error
	})
	if err != nil {
		return nil, err
	}
	return s.reload(order.ID)
}

func (s *tableService) AddItems(orderID uint, items []dtos.OrderItemInput) (*models.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyItems
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.Preload("Items").First(&order, orderID).Error; err != nil {
			return notFound(err, ErrOrderNotFound)
		}
		if order.Status != models.OrderActive {
			return ErrOrderNotActive
		}

		for _, in := range items {
			line, err := resolveLine(tx, in)
			if err != nil {
				return err
			}

			// Merge by (refId, type): quantities add, the submitted
			// price becomes the new snapshot.
			merged := false
			for i := range order.Items {
				if order.Items[i].RefID == line.RefID && order.Items[i].ItemType == line.ItemType {
					order.Items[i].Quantity += line.Quantity
					order.Items[i].Price = line.Price
					order.Items[i].Name = line.Name
					merged = true
					break
				}
			}
			if !merged {
				line.OrderID = order.ID
				order.Items = append(order.Items, line)
			}

			if err := consumeStock(tx, line); err != nil {
				return err
			}
		}

		order.Total = order.Subtotal()
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return s.reload(orderID)
}

func (s *tableService) Complete(orderID uint) (*models.Order, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			return notFound(err, ErrOrderNotFound)
		}
		if order.Status == models.OrderCompleted {
			// Already closed; the table was freed back then. Not an error.
			return nil
		}

		now := time.Now()
		order.Status = models.OrderCompleted
		order.CompletedAt = &now
		if err := tx.Save(&order).Error; err != nil {
			return err
		}
		return freeTable(tx, order.TableID, order.ID)
	})
	if err != nil {
		return nil, err
	}
	return s.reload(orderID)
}

// Cancel frees the table but leaves the order row untouched. Stock consumed
// by the order is not restored: poured inventory is treated as gone.
func (s *tableService) Cancel(orderID uint) (*models.Order, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			return notFound(err, ErrOrderNotFound)
		}
		return freeTable(tx, order.TableID, order.ID)
	})
	if err != nil {
		return nil, err
	}
	return s.reload(orderID)
}

func (s *tableService) reload(orderID uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Items").First(&order, orderID).Error; err != nil {
		return nil, notFound(err, ErrOrderNotFound)
	}
	return &order, nil
}

// freeTable returns a table to available, but only if it still points at the
// given order, so a stale complete cannot clobber a newer occupancy.
func freeTable(tx *gorm.DB, tableID, orderID uint) error {
	var table models.Table
	if err := tx.First(&table, tableID).Error; err != nil {
		return notFound(err, ErrTableNotFound)
	}
	if table.OrderID == nil || *table.OrderID != orderID {
		return nil
	}
	table.Status = models.TableAvailable
	table.OrderID = nil
	table.ReservedBy = nil
	return tx.Save(&table).Error
}

// resolveLine turns a submitted (refId, type, quantity) into a snapshot line
// priced from the current catalog.
func resolveLine(tx *gorm.DB, in dtos.OrderItemInput) (models.OrderItem, error) {
	line := models.OrderItem{
		RefID:    in.RefID,
		ItemType: in.Type,
		Quantity: in.Quantity,
	}

	switch in.Type {
	case models.ItemTypeProduct:
		var product models.Product
		if err := tx.First(&product, in.RefID).Error; err != nil {
			return line, notFound(err, ErrProductNotFound)
		}
		line.Name = product.Name
		line.Price = product.Price
	case models.ItemTypeCombo:
		var combo models.Combo
		if err := tx.First(&combo, in.RefID).Error; err != nil {
			return line, notFound(err, ErrComboNotFound)
		}
		line.Name = combo.Name
		line.Price = combo.Price
	default:
		return line, ErrEmptyItems
	}
	return line, nil
}

// consumeStock decrements product stock for one line. Products decrement
// directly, combos expand into their constituents. Stock clamps at zero.
func consumeStock(tx *gorm.DB, line models.OrderItem) error {
	if line.ItemType == models.ItemTypeProduct {
		return reduceStock(tx, line.RefID, line.Quantity)
	}

	var combo models.Combo
	if err := tx.Preload("Items").First(&combo, line.RefID).Error; err != nil {
		return notFound(err, ErrComboNotFound)
	}
	for _, ci := range combo.Items {
		if err := reduceStock(tx, ci.ProductID, ci.Quantity*line.Quantity); err != nil {
			return err
		}
	}
	return nil
}

func reduceStock(tx *gorm.DB, productID uint, quantity int) error {
	var product models.Product
	if err := tx.First(&product, productID).Error; err != nil {
		return notFound(err, ErrProductNotFound)
	}
	product.Stock -= quantity
	if product.Stock < 0 {
		product.Stock = 0
	}
	return tx.Save(&product).Error
}

func conflict(table *models.Table) error {
	return &TableConflictError{
		TableID:    table.ID,
		Status:     table.Status,
		ReservedBy: table.ReservedBy,
		OrderID:    table.OrderID,
	}
}

func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
