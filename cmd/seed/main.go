package main

import (
	"github.com/shopcore/internal/config"
	"github.com/shopcore/internal/logger"
	"github.com/shopcore/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	discount := models.NewMoneyFromInt(10)
	products := []models.Product{
		{
			Slug:             "wireless-earbuds",
			Name:             "Wireless Earbuds",
			Price:            models.NewMoneyFromDecimal(decimal.NewFromFloat(59.90)),
			Quantity:         120,
			IsPublished:      true,
			IsAllowedToOrder: true,
			Options: []models.ProductOption{
				{Name: "Black"},
				{Name: "White"},
			},
		},
		{
			Slug:             "mechanical-keyboard",
			Name:             "Mechanical Keyboard",
			Price:            models.NewMoneyFromDecimal(decimal.NewFromFloat(129.00)),
			Discount:         &discount,
			Quantity:         45,
			IsPublished:      true,
			IsAllowedToOrder: true,
			Options: []models.ProductOption{
				{Name: "Blue Switch"},
				{Name: "Red Switch"},
			},
		},
		{
			Slug:             "usb-c-hub",
			Name:             "USB-C Hub",
			Price:            models.NewMoneyFromDecimal(decimal.NewFromFloat(39.50)),
			Quantity:         200,
			IsPublished:      true,
			IsAllowedToOrder: true,
		},
		{
			Slug:             "legacy-dock",
			Name:             "Legacy Docking Station",
			Price:            models.NewMoneyFromDecimal(decimal.NewFromFloat(89.00)),
			Quantity:         5,
			IsPublished:      false,
			IsAllowedToOrder: false,
		},
	}

	for i := range products {
		var existing models.Product
		if err := models.DB.Where("slug = ?", products[i].Slug).First(&existing).Error; err == nil {
			stdLog.Printf("Product already exists: %s", products[i].Slug)
			continue
		}
		if err := models.DB.Create(&products[i]).Error; err != nil {
			stdLog.Printf("Failed to create product %s: %v", products[i].Slug, err)
			continue
		}
		stdLog.Printf("Created product: %s", products[i].Slug)
	}

	customers := []models.Customer{
		{
			FirstName:   "An",
			LastName:    "Nguyen",
			PhoneNumber: "+84-912-000-001",
			Address:     "12 Ly Thuong Kiet, Hanoi",
		},
		{
			FirstName:   "Minh",
			LastName:    "Tran",
			PhoneNumber: "+84-912-000-002",
			Address:     "88 Nguyen Hue, Ho Chi Minh City",
		},
	}

	for i := range customers {
		var existing models.Customer
		if err := models.DB.Where("phone_number = ?", customers[i].PhoneNumber).First(&existing).Error; err == nil {
			stdLog.Printf("Customer already exists: %s", customers[i].PhoneNumber)
			continue
		}
		if err := models.DB.Create(&customers[i]).Error; err != nil {
			stdLog.Printf("Failed to create customer %s: %v", customers[i].PhoneNumber, err)
			continue
		}
		stdLog.Printf("Created customer: %s %s (%s)", customers[i].FirstName, customers[i].LastName, customers[i].ID)
	}

	stdLog.Printf("Seed finished")
}
