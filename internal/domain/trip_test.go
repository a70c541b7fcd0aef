package domain

import (
	"testing"
	"time"
)

func TestTrip_HasDateRange(t *testing.T) {
	t.Parallel()

	d := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		trip Trip
		want bool
	}{
		{"both", Trip{StartDate: &d, EndDate: &d}, true},
		{"start only", Trip{StartDate: &d}, false},
		{"end only", Trip{EndDate: &d}, false},
		{"none", Trip{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.trip.HasDateRange(); got != tt.want {
				t.Errorf("HasDateRange() = %v, want %v", got, tt.want)
			}
		})
	}
}
