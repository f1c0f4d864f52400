package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bar-pos-api/config"
	"bar-pos-api/dtos"
	"bar-pos-api/services"
)

func tableID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid table id"})
		return 0, false
	}
	return uint(id), true
}

func GetTables(c *gin.Context) {
	tables, err := services.NewTableService(config.DB).ListTables()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tables)
}

func ReserveTable(c *gin.Context) {
	id, ok := tableID(c)
	if !ok {
		return
	}

	var input dtos.ReserveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	table, err := services.NewTableService(config.DB).Reserve(id, input.ReservedBy)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}

func ReleaseTable(c *gin.Context) {
	id, ok := tableID(c)
	if !ok {
		return
	}

	table, err := services.NewTableService(config.DB).Release(id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}
