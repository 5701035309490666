package booking

import (
	"context"
	"testing"

	"courtside/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSlotPricePrecedence(t *testing.T) {
	sport := testSport()

	cases := []struct {
		name string
		rec  models.SlotRecord
		want float64
	}{
		{
			name: "total_price wins over price",
			rec:  models.SlotRecord{SlotType: models.SlotTypeDay, TotalPrice: 2000, Price: 1500},
			want: 2000,
		},
		{
			name: "price when no total_price",
			rec:  models.SlotRecord{SlotType: models.SlotTypeDay, Price: 1500},
			want: 1500,
		},
		{
			name: "sport day price fallback",
			rec:  models.SlotRecord{SlotType: models.SlotTypeDay},
			want: 1200,
		},
		{
			name: "sport month price for month slots",
			rec:  models.SlotRecord{SlotType: models.SlotTypeMonth},
			want: 18000,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeSlot(tc.rec, sport).Price)
		})
	}

	// No sport document at all still yields a slot, priced at zero.
	assert.Equal(t, 0.0, NormalizeSlot(models.SlotRecord{SlotType: models.SlotTypeDay}, nil).Price)
}

func TestNormalizeSlotStatus(t *testing.T) {
	rec := models.SlotRecord{SlotType: models.SlotTypeDay}
	assert.Equal(t, models.SlotStatusAvailable, NormalizeSlot(rec, nil).Status)

	rec.Status = "UNAVAILABLE"
	assert.Equal(t, models.SlotStatusBooked, NormalizeSlot(rec, nil).Status)

	rec.Status = "garbage"
	assert.Equal(t, models.SlotStatusBooked, NormalizeSlot(rec, nil).Status)
}

func TestNormalizeSlotSynthesizesStableID(t *testing.T) {
	rec := models.SlotRecord{
		SportID:   "sport-1",
		SlotType:  models.SlotTypeDay,
		Date:      "2025-07-01",
		StartTime: "18:00",
		EndTime:   "19:00",
	}
	first := NormalizeSlot(rec, nil)
	second := NormalizeSlot(rec, nil)
	assert.Equal(t, "sport-1:2025-07-01:18:00-19:00", first.ID)
	assert.Equal(t, first.ID, second.ID)

	rec.ID = "stored-id"
	assert.Equal(t, "stored-id", NormalizeSlot(rec, nil).ID)
}

func TestNormalizeSlotSportNamePrecedence(t *testing.T) {
	sport := testSport()

	rec := models.SlotRecord{SportName: "Flat Name", Sport: &models.Sport{Name: "Nested"}}
	assert.Equal(t, "Flat Name", NormalizeSlot(rec, sport).SportName)

	rec.SportName = ""
	assert.Equal(t, "Nested", NormalizeSlot(rec, sport).SportName)

	rec.Sport = nil
	assert.Equal(t, "Football", NormalizeSlot(rec, sport).SportName)
}

func TestFetchAvailableSlotsValidation(t *testing.T) {
	f := newTestFixture()
	f.sports.On("GetByID", mock.Anything, "sport-1").Return(testSport(), nil)

	cases := []struct {
		name     string
		slotType string
		date     string
		month    string
		year     string
	}{
		{"missing date", models.SlotTypeDay, "", "", ""},
		{"malformed date", models.SlotTypeDay, "01-07-2025", "", ""},
		{"full month name", models.SlotTypeMonth, "", "January", "2026"},
		{"short year", models.SlotTypeMonth, "", "JAN", "26"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			slots, err := f.svc.FetchAvailableSlots(context.Background(), "sport-1", tc.slotType, tc.date, tc.month, tc.year)
			var berr *BookingError
			require.ErrorAs(t, err, &berr)
			assert.Equal(t, CodeValidation, berr.Code)
			// Callers always get a renderable list, never nil.
			assert.NotNil(t, slots)
			assert.Empty(t, slots)
		})
	}
}

func TestFetchAvailableSlotsNormalizes(t *testing.T) {
	f := newTestFixture()
	f.sports.On("GetByID", mock.Anything, "sport-1").Return(testSport(), nil)
	f.slots.On("GetBySportAndDate", mock.Anything, "sport-1", "2025-07-01").Return([]models.SlotRecord{
		{SportID: "sport-1", SlotType: models.SlotTypeDay, Date: "2025-07-01", StartTime: "18:00", EndTime: "19:00"},
		{SportID: "sport-1", SlotType: models.SlotTypeDay, Date: "2025-07-01", StartTime: "19:00", EndTime: "20:00", Status: "BOOKED"},
	}, nil)

	slots, err := f.svc.FetchAvailableSlots(context.Background(), "sport-1", models.SlotTypeDay, "2025-07-01", "", "")
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, models.SlotStatusAvailable, slots[0].Status)
	assert.Equal(t, 1200.0, slots[0].Price)
	assert.Equal(t, models.SlotStatusBooked, slots[1].Status)
}

func TestFetchAvailableSlotsMonthMode(t *testing.T) {
	f := newTestFixture()
	f.sports.On("GetByID", mock.Anything, "sport-1").Return(testSport(), nil)
	f.slots.On("GetBySportAndMonth", mock.Anything, "sport-1", "JAN", "2026").Return([]models.SlotRecord{
		{SportID: "sport-1", SlotType: models.SlotTypeMonth, Month: "JAN", Year: "2026", StartTime: "18:00", EndTime: "19:00"},
	}, nil)

	slots, err := f.svc.FetchAvailableSlots(context.Background(), "sport-1", models.SlotTypeMonth, "", "JAN", "2026")
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, 18000.0, slots[0].Price)
	assert.Equal(t, "JAN-2026", slots[0].DateKey())
}
