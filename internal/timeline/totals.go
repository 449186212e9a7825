package timeline

import (
	"fmt"
	"math"

	"github.com/hauliq/eldview-backend-go/internal/models"
)

// Totals sums per-status minutes across a day's intervals and applies the
// logbook display-smoothing rule. An unknown status or inverted interval
// is a contract violation of the log source and fails the whole day.
func Totals(intervals []models.DutyInterval) (models.StatusTotals, error) {
	minutes := make(map[models.Status]int, len(models.AllStatuses))
	for _, s := range models.AllStatuses {
		minutes[s] = 0
	}

	for i := range intervals {
		iv := &intervals[i]
		if err := iv.Validate(); err != nil {
			return models.StatusTotals{}, err
		}
		minutes[iv.Status] += int(math.Round(iv.EndTime.Sub(iv.StartTime).Minutes()))
	}

	display := make(map[models.Status]string, len(minutes))
	for status, total := range minutes {
		display[status] = formatMinutes(smooth(total))
	}

	return models.StatusTotals{Minutes: minutes, Display: display}, nil
}

// smooth applies the mod-10 display convention: totals ending in 1 or 2
// minutes round down to the nearest 10, totals ending in 8 or 9 round up.
// Everything else is left alone. Cosmetic only; the raw minute totals are
// kept unadjusted.
func smooth(total int) int {
	if r := total % 10; r == 1 || r == 2 {
		total -= r
	}
	if r := total % 10; r == 8 || r == 9 {
		total += 10 - r
	}
	return total
}

func formatMinutes(total int) string {
	return fmt.Sprintf("%dh %dm", total/60, total%60)
}
