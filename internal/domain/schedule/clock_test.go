package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zugflow/zugflow-api/internal/httperr"
)

func TestComputeEndTime(t *testing.T) {
	cases := []struct {
		name     string
		start    string
		duration int
		want     string
	}{
		{"ordinary slot", "09:45", 30, "10:15"},
		{"full hour", "09:00", 60, "10:00"},
		{"zero padding", "09:05", 5, "09:10"},
		{"zero duration", "14:30", 0, "14:30"},
		{"crosses the hour", "10:50", 25, "11:15"},
		{"ends exactly at midnight", "23:00", 60, "24:00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ComputeEndTime(tc.start, tc.duration)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestComputeEndTime_Errors(t *testing.T) {
	cases := []struct {
		name     string
		start    string
		duration int
		code     string
	}{
		{"past midnight", "23:50", 30, "end_time_overflow"},
		{"long service late evening", "22:00", 180, "end_time_overflow"},
		{"negative duration", "10:00", -15, "invalid_duration"},
		{"missing zero padding", "9:45", 30, "invalid_time"},
		{"minutes out of range", "09:60", 30, "invalid_time"},
		{"hours out of range", "24:00", 0, "invalid_time"},
		{"no separator", "0945", 30, "invalid_time"},
		{"empty string", "", 30, "invalid_time"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ComputeEndTime(tc.start, tc.duration)
			require.Error(t, err)
			assert.True(t, httperr.IsBusiness(err, tc.code),
				"expected code %q, got %v", tc.code, err)
		})
	}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     string
		want                           bool
	}{
		{"disjoint", "09:00", "10:00", "11:00", "12:00", false},
		{"back to back", "09:00", "10:00", "10:00", "11:00", false},
		{"back to back reversed", "10:00", "11:00", "09:00", "10:00", false},
		{"partial overlap", "09:00", "10:00", "09:30", "10:30", true},
		{"contained", "09:00", "12:00", "10:00", "11:00", true},
		{"identical", "09:00", "10:00", "09:00", "10:00", true},
		{"one minute overlap", "09:00", "10:01", "10:00", "11:00", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd)
			assert.Equal(t, tc.want, got)

			// La sovrapposizione è simmetrica
			assert.Equal(t, tc.want, Overlaps(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd))
		})
	}
}

func TestIsValidClock(t *testing.T) {
	assert.True(t, IsValidClock("00:00"))
	assert.True(t, IsValidClock("23:59"))
	assert.True(t, IsValidClock("09:30"))

	assert.False(t, IsValidClock("24:00"))
	assert.False(t, IsValidClock("9:30"))
	assert.False(t, IsValidClock("09:5"))
	assert.False(t, IsValidClock("09-30"))
	assert.False(t, IsValidClock(""))
}
