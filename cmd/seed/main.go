// Seeds the catalog with a few sports and a week of hourly day slots, plus
// month passes for the current month. Intended for local development.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"courtside/config"
	"courtside/database"
	slotRepoPkg "courtside/database/repository/slot"
	sportRepoPkg "courtside/database/repository/sport"
	"courtside/models"
	"courtside/utils"

	"github.com/google/uuid"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	database.InitDB()

	sportRepo := sportRepoPkg.NewMongoSportRepo()
	slotRepo := slotRepoPkg.NewMongoSlotRepo()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sports := []models.Sport{
		{Name: "Football", Ground: "Main Turf", DayPrice: 1200, MonthPrice: 18000, LightingPrice: 300},
		{Name: "Cricket", Ground: "Nets Arena", DayPrice: 1500, MonthPrice: 22000, LightingPrice: 300},
		{Name: "Badminton", Ground: "Indoor Court 1", DayPrice: 600, MonthPrice: 9000},
	}

	now := time.Now()
	for i := range sports {
		s := &sports[i]
		s.ID = uuid.New().String()
		s.Currency = "INR"
		s.Active = true
		s.CreatedAt = now
		s.UpdatedAt = now
		if err := sportRepo.Create(ctx, s); err != nil {
			log.Fatalf("seed: failed to create sport %s: %v", s.Name, err)
		}

		var records []models.SlotRecord
		for d := 0; d < 7; d++ {
			date := now.AddDate(0, 0, d).Format("2006-01-02")
			for h := 6; h < 22; h++ {
				records = append(records, models.SlotRecord{
					SportID:   s.ID,
					SlotType:  models.SlotTypeDay,
					Date:      date,
					StartTime: fmt.Sprintf("%02d:00", h),
					EndTime:   fmt.Sprintf("%02d:00", h+1),
					Status:    models.SlotStatusAvailable,
					SportName: s.Name,
				})
			}
		}
		// One pass slot per evening hour for the current month.
		month := utils.MonthAbbrev(now.Month())
		year := fmt.Sprintf("%d", now.Year())
		for h := 18; h < 22; h++ {
			records = append(records, models.SlotRecord{
				SportID:   s.ID,
				SlotType:  models.SlotTypeMonth,
				Month:     month,
				Year:      year,
				StartTime: fmt.Sprintf("%02d:00", h),
				EndTime:   fmt.Sprintf("%02d:00", h+1),
				Status:    models.SlotStatusAvailable,
				SportName: s.Name,
			})
		}
		if err := slotRepo.CreateMany(ctx, records); err != nil {
			log.Fatalf("seed: failed to create slots for %s: %v", s.Name, err)
		}
		log.Printf("seed: %s ready with %d slots", s.Name, len(records))
	}
}
