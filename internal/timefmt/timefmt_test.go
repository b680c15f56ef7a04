package timefmt

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, time.May, 10, 18, 0, 0, 0, time.UTC)

func TestElapsed(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		want    string
	}{
		{"меньше минуты", 30 * time.Second, "just now"},
		{"ровно минута", time.Minute, "1m ago"},
		{"минуты", 45 * time.Minute, "45m ago"},
		{"час", 60 * time.Minute, "1h ago"},
		{"часы", 5*time.Hour + 59*time.Minute, "5h ago"},
		{"сутки и больше - дата", 24 * time.Hour, "5/9/2025"},
		{"неделя - дата", 7 * 24 * time.Hour, "5/3/2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Elapsed(testNow.Add(-tt.elapsed), testNow)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRemaining(t *testing.T) {
	tests := []struct {
		name      string
		remaining time.Duration
		want      string
	}{
		{"истек", 0, "Expired"},
		{"истек в прошлом", -2 * time.Hour, "Expired"},
		{"меньше минуты - истек", 59 * time.Second, "Expired"},
		{"минуты", 45 * time.Minute, "45m left"},
		{"часы с минутами", 2*time.Hour + 30*time.Minute, "2h 30m left"},
		{"ровные часы без минут", 2 * time.Hour, "2h left"},
		{"дни", 26 * time.Hour, "1d left"},
		{"трое суток", 3*24*time.Hour + 5*time.Hour, "3d left"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Remaining(testNow.Add(tt.remaining), testNow)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestRemaining_ExpiredBoundary проверяет границу: для expiresAt <= now всегда
// "Expired", для будущего времени от минуты и выше - никогда.
func TestRemaining_ExpiredBoundary(t *testing.T) {
	for _, d := range []time.Duration{0, -time.Second, -time.Minute, -48 * time.Hour} {
		require.Equal(t, "Expired", Remaining(testNow.Add(d), testNow))
	}
	for _, d := range []time.Duration{time.Minute, time.Hour, 240 * time.Minute, 72 * time.Hour} {
		require.NotEqual(t, "Expired", Remaining(testNow.Add(d), testNow), "remaining %v", d)
	}
}

// TestElapsed_CoarsenessMonotonic проверяет, что при росте давности единица
// измерения никогда не становится мельче: just now -> минуты -> часы -> дата.
func TestElapsed_CoarsenessMonotonic(t *testing.T) {
	rank := func(s string) int {
		switch {
		case s == "just now":
			return 0
		case strings.HasSuffix(s, "m ago"):
			return 1
		case strings.HasSuffix(s, "h ago"):
			return 2
		default:
			return 3 // дата
		}
	}

	prev := -1
	for mins := 0; mins <= 3*24*60; mins += 7 {
		got := Elapsed(testNow.Add(-time.Duration(mins)*time.Minute), testNow)
		r := rank(got)
		require.GreaterOrEqual(t, r, prev, fmt.Sprintf("elapsed %dm: %q", mins, got))
		prev = r
	}
}
