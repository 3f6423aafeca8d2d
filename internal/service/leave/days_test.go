package leave

import (
	"testing"
	"time"
)

func date(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return parsed
}

func TestCalculateLeaveDays(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		isHalfDay bool
		want      float64
	}{
		{"single day", "2025-06-10", "2025-06-10", false, 1},
		{"half day", "2025-06-10", "2025-06-10", true, 0.5},
		{"inclusive range", "2025-06-10", "2025-06-12", false, 3},
		{"across month boundary", "2025-06-28", "2025-07-02", false, 5},
		{"across year boundary", "2025-12-30", "2026-01-02", false, 4},
		{"full week", "2025-06-09", "2025-06-15", false, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateLeaveDays(date(t, tt.start), date(t, tt.end), tt.isHalfDay)
			if got != tt.want {
				t.Errorf("CalculateLeaveDays(%s, %s, %v) = %v, want %v", tt.start, tt.end, tt.isHalfDay, got, tt.want)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		aStart string
		aEnd   string
		bStart string
		bEnd   string
		want   bool
	}{
		{"contained single day", "2025-06-10", "2025-06-12", "2025-06-11", "2025-06-11", true},
		{"disjoint after", "2025-06-10", "2025-06-12", "2025-06-13", "2025-06-14", false},
		{"disjoint before", "2025-06-10", "2025-06-12", "2025-06-08", "2025-06-09", false},
		{"touching end day", "2025-06-10", "2025-06-12", "2025-06-12", "2025-06-14", true},
		{"touching start day", "2025-06-10", "2025-06-12", "2025-06-08", "2025-06-10", true},
		{"identical spans", "2025-06-10", "2025-06-12", "2025-06-10", "2025-06-12", true},
		{"b contains a", "2025-06-10", "2025-06-12", "2025-06-01", "2025-06-30", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(date(t, tt.aStart), date(t, tt.aEnd), date(t, tt.bStart), date(t, tt.bEnd))
			if got != tt.want {
				t.Errorf("Overlaps(%s..%s, %s..%s) = %v, want %v", tt.aStart, tt.aEnd, tt.bStart, tt.bEnd, got, tt.want)
			}
		})
	}
}
