package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"bar-pos-api/config"
	"bar-pos-api/models"
	"bar-pos-api/utils/reports"
)

// loadReportData pulls the full snapshot the aggregation functions fold over.
// Reporting is an on-demand re-scan, there is no incremental state.
func loadReportData() ([]models.Order, []models.Product, []models.Combo, error) {
	var orders []models.Order
	if err := config.DB.Preload("Items").Find(&orders).Error; err != nil {
		return nil, nil, nil, err
	}
	var products []models.Product
	if err := config.DB.Find(&products).Error; err != nil {
		return nil, nil, nil, err
	}
	var combos []models.Combo
	if err := config.DB.Find(&combos).Error; err != nil {
		return nil, nil, nil, err
	}
	return orders, products, combos, nil
}

func yearMonthParams(c *gin.Context) (int, time.Month) {
	now := time.Now()
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year <= 0 {
		year = now.Year()
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		month = int(now.Month())
	}
	return year, time.Month(month)
}

func GetDashboard(c *gin.Context) {
	orders, products, combos, err := loadReportData()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var activeOrders int
	for _, o := range orders {
		if o.Status == models.OrderActive {
			activeOrders++
		}
	}

	var lowStock []models.Product
	for _, p := range products {
		if p.LowStock() {
			lowStock = append(lowStock, p)
		}
	}

	best := reports.BestSelling(orders, products, combos)
	if len(best) > 5 {
		best = best[:5]
	}

	today := reports.DailyRevenueForMonth(orders, time.Now().Year(), time.Now().Month())
	var todayOrders int
	for _, d := range today {
		if d.Day == time.Now().Day() {
			todayOrders = d.OrderCount
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"today_revenue":   reports.TodayRevenue(orders),
		"today_orders":    todayOrders,
		"active_orders":   activeOrders,
		"low_stock_count": len(lowStock),
		"low_stock":       lowStock,
		"best_selling":    best,
	})
}

func GetMonthlyRevenue(c *gin.Context) {
	orders, _, _, err := loadReportData()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	year, month := yearMonthParams(c)
	c.JSON(http.StatusOK, gin.H{
		"year":    year,
		"month":   int(month),
		"revenue": reports.MonthlyRevenue(orders, year, month),
	})
}

func GetDailyRevenue(c *gin.Context) {
	orders, _, _, err := loadReportData()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	year, month := yearMonthParams(c)
	c.JSON(http.StatusOK, gin.H{
		"year":  year,
		"month": int(month),
		"days":  reports.DailyRevenueForMonth(orders, year, month),
	})
}

func GetYearlyRevenue(c *gin.Context) {
	orders, _, _, err := loadReportData()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	year, _ := yearMonthParams(c)
	c.JSON(http.StatusOK, gin.H{
		"year":    year,
		"revenue": reports.YearlyRevenue(orders, year),
	})
}

func GetMonthsReport(c *gin.Context) {
	orders, _, _, err := loadReportData()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	year, _ := yearMonthParams(c)
	c.JSON(http.StatusOK, gin.H{"year": year, "months": reports.AllMonthsData(orders, year)})
}

func GetYearsReport(c *gin.Context) {
	orders, _, _, err := loadReportData()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"years": reports.AllYearsData(orders)})
}

func GetBestSelling(c *gin.Context) {
	orders, products, combos, err := loadReportData()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"best_selling": reports.BestSelling(orders, products, combos)})
}
