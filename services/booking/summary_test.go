package booking

import (
	"context"
	"testing"

	"courtside/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSummaryRequiresSelection(t *testing.T) {
	f := newTestFixture()
	session := f.startDaySession(t)

	_, err := f.svc.BuildSummary(context.Background(), session.SessionID, "user-1")
	var berr *BookingError
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, CodeValidation, berr.Code)
}

func TestBuildSummaryPricesSelectionInOrder(t *testing.T) {
	f := newTestFixture()
	session := f.startDaySession(t)

	morning := daySlot("10:00", "11:00")
	morning.Price = 1000
	evening := daySlot("18:00", "19:00")
	session.Selected = models.SelectedSlotSet{evening, morning}
	session.NoOfPlayers = 4
	require.NoError(t, f.store.Save(context.Background(), session))

	summary, err := f.svc.BuildSummary(context.Background(), session.SessionID, "user-1")
	require.NoError(t, err)

	assert.Equal(t, "Football", summary.SportName)
	assert.Equal(t, 4, summary.NoOfPlayers)
	assert.Equal(t, "INR", summary.Currency)
	require.Len(t, summary.Slots, 2)
	// Selection order is preserved, not re-sorted by time.
	assert.Equal(t, "18:00", summary.Slots[0].StartTime)
	assert.Equal(t, "6:00 PM to 7:00 PM", summary.Slots[0].Label)
	assert.Equal(t, "10:00", summary.Slots[1].StartTime)

	// Evening slot picks up the floodlighting surcharge; morning does not.
	// 1500 + 300 + 1000.
	assert.Equal(t, 2800.0, summary.TotalAmount)
	require.Len(t, summary.Breakdown, 3)
	assert.Equal(t, "Floodlighting 6:00 PM to 7:00 PM", summary.Breakdown[1].Description)
	assert.Equal(t, 300.0, summary.Breakdown[1].Amount)
}

func TestBuildSummaryStoredOnSession(t *testing.T) {
	f := newTestFixture()
	session := f.startDaySession(t)

	session.Selected = models.SelectedSlotSet{daySlot("14:00", "15:00")}
	require.NoError(t, f.store.Save(context.Background(), session))

	_, err := f.svc.BuildSummary(context.Background(), session.SessionID, "user-1")
	require.NoError(t, err)

	reloaded, err := f.svc.GetSession(context.Background(), session.SessionID, "user-1")
	require.NoError(t, err)
	require.NotNil(t, reloaded.Summary)
	assert.Equal(t, 1500.0, reloaded.Summary.TotalAmount)
}

func TestLightingSurchargeBoundary(t *testing.T) {
	sport := testSport()

	assert.Equal(t, 0.0, lightingSurcharge(daySlot("17:00", "18:00"), sport))
	assert.Equal(t, 300.0, lightingSurcharge(daySlot("18:00", "19:00"), sport))
	assert.Equal(t, 300.0, lightingSurcharge(daySlot("21:00", "22:00"), sport))

	noLights := testSport()
	noLights.LightingPrice = 0
	assert.Equal(t, 0.0, lightingSurcharge(daySlot("18:00", "19:00"), noLights))
}
