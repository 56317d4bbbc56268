package wellness

import "time"

// oneDay is the adjacency unit for streaks: two dates are consecutive when
// their literal difference is exactly one day's worth of time, not a
// calendar-aware comparison.
const oneDay = 24 * time.Hour

// CalculateStreaks computes the current and longest consecutive-day streaks
// from a most-recent-first list of event dates. A gap resets the running
// streak to 1 at the first date of the new run; the current streak is the
// run that starts at the most recent date.
func CalculateStreaks(dates []time.Time) (current, longest int) {
	if len(dates) == 0 {
		return 0, 0
	}

	run := 1
	longest = 1
	current = 1
	headRun := true

	for i := 1; i < len(dates); i++ {
		if dates[i-1].Sub(dates[i]) == oneDay {
			run++
			if headRun {
				current = run
			}
		} else {
			run = 1
			headRun = false
		}
		if run > longest {
			longest = run
		}
	}
	return current, longest
}

// CurrentStreakFrom counts consecutive marked days walking backwards from
// the given anchor. marked must be most-recent-first; the streak grows while
// each date sits exactly streak days before the anchor, so a missing "today"
// or any gap ends it. This is the per-habit statistics variant and is
// deliberately separate from CalculateStreaks.
func CurrentStreakFrom(today time.Time, marked []time.Time) int {
	today = truncateDay(today)
	streak := 0
	for _, d := range marked {
		daysDiff := int(today.Sub(truncateDay(d)) / oneDay)
		if daysDiff == streak {
			streak++
		} else {
			break
		}
	}
	return streak
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
