package wellness

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func days(dates ...string) []time.Time {
	out := make([]time.Time, len(dates))
	for i, s := range dates {
		out[i] = day(s)
	}
	return out
}

func TestCalculateStreaks(t *testing.T) {
	tests := []struct {
		name        string
		dates       []time.Time
		wantCurrent int
		wantLongest int
	}{
		{"empty", nil, 0, 0},
		{"single day", days("2024-01-05"), 1, 1},
		{"unbroken run", days("2024-01-05", "2024-01-04", "2024-01-03"), 3, 3},
		// Head run of 3, then a gap before Jan 1.
		{"gap after head run", days("2024-01-05", "2024-01-04", "2024-01-03", "2024-01-01"), 3, 3},
		// Head is isolated; the longest run sits behind the gap.
		{"longest behind gap", days("2024-01-05", "2024-01-03", "2024-01-02", "2024-01-01"), 1, 3},
		{"all isolated", days("2024-01-09", "2024-01-05", "2024-01-01"), 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current, longest := CalculateStreaks(tt.dates)
			if current != tt.wantCurrent || longest != tt.wantLongest {
				t.Errorf("CalculateStreaks() = (%d, %d), want (%d, %d)", current, longest, tt.wantCurrent, tt.wantLongest)
			}
		})
	}
}

func TestCurrentStreakFrom(t *testing.T) {
	today := day("2024-06-10")
	tests := []struct {
		name   string
		marked []time.Time
		want   int
	}{
		{"empty", nil, 0},
		{"today only", days("2024-06-10"), 1},
		{"three consecutive", days("2024-06-10", "2024-06-09", "2024-06-08"), 3},
		// Today not marked: the anchor day itself is required.
		{"missing today", days("2024-06-09", "2024-06-08"), 0},
		// Gap after today stops the count.
		{"gap stops count", days("2024-06-10", "2024-06-08", "2024-06-07"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CurrentStreakFrom(today, tt.marked); got != tt.want {
				t.Errorf("CurrentStreakFrom() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCurrentStreakFromIgnoresTimeOfDay(t *testing.T) {
	today := time.Date(2024, 6, 10, 23, 30, 0, 0, time.UTC)
	marked := []time.Time{
		time.Date(2024, 6, 10, 1, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 9, 18, 45, 0, 0, time.UTC),
	}
	if got := CurrentStreakFrom(today, marked); got != 2 {
		t.Errorf("CurrentStreakFrom() = %d, want 2", got)
	}
}
