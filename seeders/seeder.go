package seeders

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"bar-pos-api/config"
	"bar-pos-api/models"
)

const tableCount = 20

// Seed is idempotent: everything goes through FirstOrCreate so restarting the
// server never duplicates rows.
func Seed() {
	seedUsers()
	seedTables()
	seedProducts()
	seedCombos()

	log.Printf("Seeding done: %d tables, default catalog, default users", tableCount)
}

func seedUsers() {
	users := []struct {
		username string
		password string
		role     string
	}{
		{"admin", "admin123", models.RoleAdmin},
		{"staff1", "staff123", models.RoleStaff},
	}

	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			log.Println("Failed to hash seed password:", err)
			continue
		}
		user := models.User{Username: u.username, Password: string(hash), Role: u.role}
		config.DB.FirstOrCreate(&user, models.User{Username: u.username})
	}
}

func seedTables() {
	for number := 1; number <= tableCount; number++ {
		table := models.Table{Number: number, Status: models.TableAvailable}
		config.DB.FirstOrCreate(&table, models.Table{Number: number})
	}
}

func seedProducts() {
	products := []models.Product{
		{Name: "เบียร์ช้าง", Price: 90, Category: models.CategoryBeer, Stock: 500, MinStock: 50},
		{Name: "เบียร์สิงห์", Price: 85, Category: models.CategoryBeer, Stock: 500, MinStock: 50},
		{Name: "เบียร์ลีโอ", Price: 85, Category: models.CategoryBeer, Stock: 500, MinStock: 50},
		{Name: "เบียร์ไฮเนเก้น", Price: 120, Category: models.CategoryBeer, Stock: 300, MinStock: 30},
		{Name: "แสงโสม 285", Price: 285, Category: models.CategoryAlcohol, Stock: 200, MinStock: 20},
		{Name: "เหล้าหงส์", Price: 250, Category: models.CategoryAlcohol, Stock: 200, MinStock: 20},
		{Name: "รีเจ้นท์", Price: 300, Category: models.CategoryAlcohol, Stock: 150, MinStock: 15},
		{Name: "น้ำแข็ง", Price: 20, Category: models.CategoryGeneral, Stock: 1000, MinStock: 200},
		{Name: "โซดา", Price: 25, Category: models.CategoryGeneral, Stock: 500, MinStock: 100},
		{Name: "ของทอดทั่วไป", Price: 150, Category: models.CategoryFood, Stock: 300, MinStock: 50},
	}

	for _, p := range products {
		product := p
		config.DB.FirstOrCreate(&product, models.Product{Name: p.Name})
	}
}

func seedCombos() {
	var existing models.Combo
	if err := config.DB.Where("name = ?", "คอมโบเบียร์ 3 ขวด + น้ำแข็ง").First(&existing).Error; err == nil {
		return
	}

	var beer, ice models.Product
	if err := config.DB.Where("name = ?", "เบียร์ช้าง").First(&beer).Error; err != nil {
		return
	}
	if err := config.DB.Where("name = ?", "น้ำแข็ง").First(&ice).Error; err != nil {
		return
	}

	combo := models.Combo{
		Name:  "คอมโบเบียร์ 3 ขวด + น้ำแข็ง",
		Price: 199,
		Items: []models.ComboItem{
			{ProductID: beer.ID, Quantity: 3},
			{ProductID: ice.ID, Quantity: 1},
		},
	}
	if err := config.DB.Create(&combo).Error; err != nil {
		log.Println("Failed to seed combo:", err)
	}
}
