package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func TestBookingDays(t *testing.T) {
	cases := []struct {
		from, to string
		want     int
	}{
		{"2026-03-01", "2026-03-01", 1},
		{"2026-03-01", "2026-03-02", 2},
		{"2026-03-01", "2026-03-05", 5},
		{"2026-02-27", "2026-03-02", 4},
	}
	for _, tc := range cases {
		b := Booking{FromDate: day(tc.from), ToDate: day(tc.to)}
		assert.Equal(t, tc.want, b.Days(), "%s..%s", tc.from, tc.to)
	}
}

func TestBookingOverlaps(t *testing.T) {
	b := Booking{FromDate: day("2026-03-02"), ToDate: day("2026-03-04")}

	cases := []struct {
		from, to string
		want     bool
	}{
		{"2026-03-01", "2026-03-01", false},
		{"2026-03-01", "2026-03-02", true},
		{"2026-03-03", "2026-03-03", true},
		{"2026-03-04", "2026-03-06", true},
		{"2026-03-05", "2026-03-06", false},
		{"2026-03-01", "2026-03-06", true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, b.Overlaps(day(tc.from), day(tc.to)), "%s..%s", tc.from, tc.to)
	}
}

func TestIsDecisionStatus(t *testing.T) {
	assert.True(t, IsDecisionStatus(BookingApproved))
	assert.True(t, IsDecisionStatus(BookingRejected))
	assert.False(t, IsDecisionStatus(BookingPending))
	assert.False(t, IsDecisionStatus("approved"))
	assert.False(t, IsDecisionStatus(""))
}

func TestIsValidCategory(t *testing.T) {
	assert.True(t, IsValidCategory("Catering"))
	assert.True(t, IsValidCategory("catering"))
	assert.True(t, IsValidCategory("wedding venues"))
	assert.False(t, IsValidCategory("Plumbing"))
	assert.False(t, IsValidCategory(""))
}

func TestCategorySlug(t *testing.T) {
	assert.Equal(t, "makeup-artists", CategorySlug("Makeup Artists"))
	assert.Equal(t, "music/dj", CategorySlug("Music/DJ"))
}
