package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hauliq/eldview-backend-go/internal/models"
)

func span(status models.Status, startH, startM, endH, endM int) models.DutyInterval {
	return models.DutyInterval{
		Status:    status,
		StartTime: at(startH, startM),
		EndTime:   at(endH, endM),
	}
}

func TestSmooth(t *testing.T) {
	cases := map[int]int{
		131: 130, // ...1 rounds down
		132: 130, // ...2 rounds down
		138: 140, // ...8 rounds up
		139: 140, // ...9 rounds up
		135: 135, // ...5 untouched
		130: 130,
		133: 133,
		134: 134,
		136: 136,
		137: 137,
		0:   0,
	}
	for in, want := range cases {
		assert.Equal(t, want, smooth(in), "smooth(%d)", in)
	}
}

func TestTotalsFullDay(t *testing.T) {
	// 8h30m driving and 15h30m off duty; both land on a multiple of 10 so
	// smoothing leaves them alone.
	intervals := []models.DutyInterval{
		span(models.StatusOffDuty, 0, 0, 6, 0),
		span(models.StatusDriving, 6, 0, 14, 30),
		span(models.StatusOffDuty, 14, 30, 0, 0),
	}
	intervals[2].EndTime = intervals[2].EndTime.AddDate(0, 0, 1) // midnight

	totals, err := Totals(intervals)
	require.NoError(t, err)

	assert.Equal(t, 510, totals.Minutes[models.StatusDriving])
	assert.Equal(t, 930, totals.Minutes[models.StatusOffDuty])
	assert.Equal(t, "8h 30m", totals.Display[models.StatusDriving])
	assert.Equal(t, "15h 30m", totals.Display[models.StatusOffDuty])
	assert.Equal(t, "0h 0m", totals.Display[models.StatusOnDuty])
	assert.Equal(t, "0h 0m", totals.Display[models.StatusSleeper])
}

func TestTotalsSmoothingApplied(t *testing.T) {
	// 2h11m of driving displays as 2h10m; the raw bucket keeps 131.
	intervals := []models.DutyInterval{
		span(models.StatusDriving, 8, 0, 10, 11),
		span(models.StatusOnDuty, 10, 11, 10, 49), // 38m -> displays 40m
	}

	totals, err := Totals(intervals)
	require.NoError(t, err)

	assert.Equal(t, 131, totals.Minutes[models.StatusDriving])
	assert.Equal(t, "2h 10m", totals.Display[models.StatusDriving])
	assert.Equal(t, 38, totals.Minutes[models.StatusOnDuty])
	assert.Equal(t, "0h 40m", totals.Display[models.StatusOnDuty])
}

func TestTotalsEmptyDay(t *testing.T) {
	totals, err := Totals(nil)
	require.NoError(t, err)
	for _, s := range models.AllStatuses {
		assert.Equal(t, 0, totals.Minutes[s])
		assert.Equal(t, "0h 0m", totals.Display[s])
	}
}

func TestTotalsRejectsInvertedInterval(t *testing.T) {
	intervals := []models.DutyInterval{
		span(models.StatusDriving, 10, 0, 8, 0),
	}

	_, err := Totals(intervals)
	var badInterval *models.ErrBadInterval
	require.ErrorAs(t, err, &badInterval)
}

func TestTotalsRejectsUnknownStatus(t *testing.T) {
	intervals := []models.DutyInterval{
		{Status: models.Status(42), StartTime: at(8, 0), EndTime: at(9, 0)},
	}

	_, err := Totals(intervals)
	var badStatus *models.ErrBadStatus
	require.ErrorAs(t, err, &badStatus)
}
