// Package reset computes when a completed recurring task becomes pending again.
package reset

import (
	"time"

	"ankiplan-backend/internal/task/domain"
)

// NextReset returns the next reset instant for a category, strictly after ref.
// All arithmetic is in UTC so local-time offsets never shift the boundary.
//
//	daily    midnight of the following day
//	weekly   midnight of the next Monday (a Monday ref skips a full week)
//	weekend  midnight of the next Saturday (same skip rule)
//	monthly  midnight of the 1st of the following month
//
// Unknown categories fall back to the daily rule.
func NextReset(category domain.Category, ref time.Time) time.Time {
	ref = ref.UTC()

	switch category {
	case domain.CategoryWeekly:
		return nextWeekday(ref, time.Monday)
	case domain.CategoryWeekend:
		return nextWeekday(ref, time.Saturday)
	case domain.CategoryMonthly:
		// time.Date normalizes month 13 into January of the next year.
		return time.Date(ref.Year(), ref.Month()+1, 1, 0, 0, 0, 0, time.UTC)
	default:
		next := ref.AddDate(0, 0, 1)
		return midnight(next)
	}
}

func nextWeekday(ref time.Time, day time.Weekday) time.Time {
	days := (int(day) - int(ref.Weekday()) + 7) % 7
	if days == 0 {
		// Never resolve to the reference day itself.
		days = 7
	}
	return midnight(ref.AddDate(0, 0, days))
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
