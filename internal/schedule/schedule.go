package schedule

import (
	"time"

	"postcraft/internal/model"
)

// NextOccurrence advances a recurring schedule's anchor to the first
// occurrence at or after now. An anchor already at or past now is returned
// unchanged. Month arithmetic follows time.AddDate normalization, so
// Jan 31 + 1 month lands in early March rather than clamping to Feb's last
// day.
func NextOccurrence(anchor time.Time, period model.Recurrence, now time.Time) time.Time {
	next := anchor
	for next.Before(now) {
		next = Step(next, period)
	}
	return next
}

// Step advances a time by one period unit. Unknown periods advance by a day
// so callers never loop forever.
func Step(t time.Time, period model.Recurrence) time.Time {
	switch period {
	case model.RecurWeekly:
		return t.AddDate(0, 0, 7)
	case model.RecurMonthly:
		return t.AddDate(0, 1, 0)
	default:
		return t.AddDate(0, 0, 1)
	}
}

// NextWindow returns the next posting time avoiding quiet hours (UTC).
func NextWindow(now time.Time, quietHours []int) time.Time {
	isQuiet := func(h int) bool {
		for _, q := range quietHours {
			if q == h {
				return true
			}
		}
		return false
	}
	for i := 0; i < 48; i++ { // search up to 2 days ahead
		cand := now.Add(time.Duration(i) * time.Hour)
		if !isQuiet(cand.Hour()) {
			return cand
		}
	}
	return now.Add(15 * time.Minute)
}
