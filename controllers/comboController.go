package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bar-pos-api/config"
	"bar-pos-api/dtos"
	"bar-pos-api/models"
)

func comboItemsFromInput(tx *gorm.DB, inputs []dtos.ComboItemInput) ([]models.ComboItem, error) {
	items := make([]models.ComboItem, 0, len(inputs))
	for _, in := range inputs {
		var product models.Product
		if err := tx.First(&product, in.ProductID).Error; err != nil {
			return nil, fmt.Errorf("product %d not found", in.ProductID)
		}
		items = append(items, models.ComboItem{ProductID: in.ProductID, Quantity: in.Quantity})
	}
	return items, nil
}

func GetCombos(c *gin.Context) {
	var combos []models.Combo
	if err := config.DB.Preload("Items").Order("id").Find(&combos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, combos)
}

func GetComboByID(c *gin.Context) {
	var combo models.Combo
	if err := config.DB.Preload("Items").First(&combo, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Combo not found"})
		return
	}
	c.JSON(http.StatusOK, combo)
}

func CreateCombo(c *gin.Context) {
	var input dtos.ComboInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var combo models.Combo
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		items, err := comboItemsFromInput(tx, input.Items)
		if err != nil {
			return err
		}
		combo = models.Combo{Name: input.Name, Price: input.Price, Items: items}
		return tx.Create(&combo).Error
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, combo)
}

// UpdateCombo replaces the combo's constituent list wholesale.
func UpdateCombo(c *gin.Context) {
	var combo models.Combo
	if err := config.DB.Preload("Items").First(&combo, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Combo not found"})
		return
	}

	var input dtos.ComboInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		items, err := comboItemsFromInput(tx, input.Items)
		if err != nil {
			return err
		}
		if err := tx.Where("combo_id = ?", combo.ID).Delete(&models.ComboItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].ComboID = combo.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		combo.Name = input.Name
		combo.Price = input.Price
		combo.Items = items
		return tx.Model(&models.Combo{}).Where("id = ?", combo.ID).
			Updates(map[string]interface{}{"name": input.Name, "price": input.Price}).Error
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, combo)
}

func DeleteCombo(c *gin.Context) {
	var combo models.Combo
	if err := config.DB.First(&combo, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Combo not found"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("combo_id = ?", combo.ID).Delete(&models.ComboItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&combo).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Combo deleted successfully"})
}
