package db

import (
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/odfbarbers/booking-api/internal/models"
)

// Seed populates an empty store with the default catalog so a fresh
// install is bookable out of the box.
func Seed(db *gorm.DB) {
	seedServices(db)
	seedBarber(db)
}

func seedServices(db *gorm.DB) {
	var count int64
	db.Model(&models.Service{}).Count(&count)
	if count > 0 {
		return
	}

	defaults := []models.Service{
		{
			Name:            "Classic Haircut",
			Description:     "Traditional cut with clippers and scissors, finished with a hot towel.",
			Price:           decimal.NewFromInt(15000),
			DurationMinutes: 45,
			IsActive:        true,
		},
		{
			Name:            "Beard Trim",
			Description:     "Shape-up and line work for beard and moustache.",
			Price:           decimal.NewFromInt(10000),
			DurationMinutes: 30,
			IsActive:        true,
		},
		{
			Name:            "Hair Dye",
			Description:     "Full colour treatment.",
			Price:           decimal.NewFromInt(25000),
			DurationMinutes: 60,
			IsActive:        true,
		},
	}

	if err := db.Create(&defaults).Error; err != nil {
		log.Printf("failed to seed services: %v", err)
		return
	}
	log.Printf("seeded %d default services", len(defaults))
}

func seedBarber(db *gorm.DB) {
	var count int64
	db.Model(&models.Barber{}).Count(&count)
	if count > 0 {
		return
	}

	barber := models.Barber{
		Name:     "ODF Master Barber",
		Email:    "barber@odfbarbers.example",
		Phone:    "+234 800 000 0000",
		Bio:      "Founder and master barber.",
		IsActive: true,
	}

	if err := db.Create(&barber).Error; err != nil {
		log.Printf("failed to seed barber: %v", err)
		return
	}
	log.Println("seeded default barber")
}
