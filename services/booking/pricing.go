package booking

import (
	"strconv"
	"strings"

	"courtside/models"
)

// Floodlights come on from this hour; evening slots carry the sport's
// lighting surcharge when one is configured.
const lightingStartHour = 18

func slotAmount(slot models.Slot, sport *models.Sport) float64 {
	price := slot.Price
	if price == 0 && sport != nil {
		if slot.SlotType == models.SlotTypeMonth {
			price = sport.MonthPrice
		} else {
			price = sport.DayPrice
		}
	}
	return price
}

func lightingSurcharge(slot models.Slot, sport *models.Sport) float64 {
	if sport == nil || sport.LightingPrice <= 0 {
		return 0
	}
	hour, err := strconv.Atoi(strings.SplitN(slot.StartTime, ":", 2)[0])
	if err != nil || hour < lightingStartHour {
		return 0
	}
	return sport.LightingPrice
}
