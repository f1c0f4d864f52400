// Package reports folds completed orders into revenue summaries. Every
// function is a pure pass over the slices it is given; calling twice with the
// same input yields the same output.
package reports

import (
	"sort"
	"time"

	"bar-pos-api/models"
)

type ProductSales struct {
	RefID    uint    `json:"refId"`
	Type     string  `json:"type"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

type DayRevenue struct {
	Day        int     `json:"day"`
	Date       string  `json:"date"`
	Revenue    float64 `json:"revenue"`
	OrderCount int     `json:"orderCount"`
}

type MonthRevenue struct {
	Month     int     `json:"month"`
	MonthName string  `json:"monthName"`
	Year      int     `json:"year"`
	Revenue   float64 `json:"revenue"`
}

type YearRevenue struct {
	Year    int     `json:"year"`
	Revenue float64 `json:"revenue"`
}

func completedOn(o models.Order) (time.Time, bool) {
	if o.Status != models.OrderCompleted || o.CompletedAt == nil {
		return time.Time{}, false
	}
	return *o.CompletedAt, true
}

// TodayRevenue sums completed orders whose completion falls on the current
// local calendar date. This is a date comparison, not a 24h window.
func TodayRevenue(orders []models.Order) float64 {
	y, m, d := time.Now().Date()
	var sum float64
	for _, o := range orders {
		at, ok := completedOn(o)
		if !ok {
			continue
		}
		oy, om, od := at.Date()
		if oy == y && om == m && od == d {
			sum += o.Total
		}
	}
	return sum
}

func MonthlyRevenue(orders []models.Order, year int, month time.Month) float64 {
	var sum float64
	for _, o := range orders {
		at, ok := completedOn(o)
		if !ok {
			continue
		}
		if at.Year() == year && at.Month() == month {
			sum += o.Total
		}
	}
	return sum
}

func YearlyRevenue(orders []models.Order, year int) float64 {
	var sum float64
	for _, o := range orders {
		at, ok := completedOn(o)
		if !ok {
			continue
		}
		if at.Year() == year {
			sum += o.Total
		}
	}
	return sum
}

// BestSelling groups completed orders' line items by (refId, type), summing
// quantity and snapshot revenue. Names come from the current catalog where
// the entry still exists, falling back to the name recorded on the line.
// Sorted by quantity descending, then refId ascending so ties are stable.
func BestSelling(orders []models.Order, products []models.Product, combos []models.Combo) []ProductSales {
	type key struct {
		refID    uint
		itemType string
	}

	productNames := make(map[uint]string, len(products))
	for _, p := range products {
		productNames[p.ID] = p.Name
	}
	comboNames := make(map[uint]string, len(combos))
	for _, c := range combos {
		comboNames[c.ID] = c.Name
	}

	sales := make(map[key]*ProductSales)
	for _, o := range orders {
		if o.Status != models.OrderCompleted {
			continue
		}
		for _, item := range o.Items {
			k := key{refID: item.RefID, itemType: item.ItemType}
			entry, ok := sales[k]
			if !ok {
				name := item.Name
				if item.ItemType == models.ItemTypeCombo {
					if n, ok := comboNames[item.RefID]; ok {
						name = n
					}
				} else if n, ok := productNames[item.RefID]; ok {
					name = n
				}
				entry = &ProductSales{RefID: item.RefID, Type: item.ItemType, Name: name}
				sales[k] = entry
			}
			entry.Quantity += item.Quantity
			entry.Revenue += item.Price * float64(item.Quantity)
		}
	}

	out := make([]ProductSales, 0, len(sales))
	for _, entry := range sales {
		out = append(out, *entry)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Quantity != out[j].Quantity {
			return out[i].Quantity > out[j].Quantity
		}
		if out[i].RefID != out[j].RefID {
			return out[i].RefID < out[j].RefID
		}
		return out[i].Type < out[j].Type
	})
	return out
}

// DailyRevenueForMonth buckets one month's completed orders by day of month,
// newest day first.
func DailyRevenueForMonth(orders []models.Order, year int, month time.Month) []DayRevenue {
	buckets := make(map[int]*DayRevenue)
	for _, o := range orders {
		at, ok := completedOn(o)
		if !ok || at.Year() != year || at.Month() != month {
			continue
		}
		day := at.Day()
		bucket, ok := buckets[day]
		if !ok {
			bucket = &DayRevenue{
				Day:  day,
				Date: time.Date(year, month, day, 0, 0, 0, 0, at.Location()).Format("2006-01-02"),
			}
			buckets[day] = bucket
		}
		bucket.Revenue += o.Total
		bucket.OrderCount++
	}

	out := make([]DayRevenue, 0, len(buckets))
	for _, bucket := range buckets {
		out = append(out, *bucket)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day > out[j].Day })
	return out
}

// AllMonthsData returns all twelve months of the given year, including the
// zero-revenue ones, in calendar order.
func AllMonthsData(orders []models.Order, year int) []MonthRevenue {
	out := make([]MonthRevenue, 0, 12)
	for month := time.January; month <= time.December; month++ {
		out = append(out, MonthRevenue{
			Month:     int(month),
			MonthName: month.String(),
			Year:      year,
			Revenue:   MonthlyRevenue(orders, year, month),
		})
	}
	return out
}

// AllYearsData returns every year that has at least one completed order,
// ascending.
func AllYearsData(orders []models.Order) []YearRevenue {
	totals := make(map[int]float64)
	for _, o := range orders {
		at, ok := completedOn(o)
		if !ok {
			continue
		}
		totals[at.Year()] += o.Total
	}

	out := make([]YearRevenue, 0, len(totals))
	for year, revenue := range totals {
		out = append(out, YearRevenue{Year: year, Revenue: revenue})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}
