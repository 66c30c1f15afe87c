package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidPetType(t *testing.T) {
	assert.True(t, ValidPetType("Cats"))
	assert.True(t, ValidPetType("Others"))
	assert.False(t, ValidPetType("cats"), "options are case sensitive")
	assert.False(t, ValidPetType("Snakes"))
	assert.False(t, ValidPetType(""))
}

func TestValidService(t *testing.T) {
	for _, s := range Services {
		assert.True(t, ValidService(s))
	}
	assert.False(t, ValidService("Teeth Whitening"))
	assert.False(t, ValidService(""))
}

func TestValidTimeSlot(t *testing.T) {
	assert.True(t, ValidTimeSlot("8:00 AM - 12:00 PM"))
	assert.True(t, ValidTimeSlot("1:00 PM - 6:00 PM"))
	assert.False(t, ValidTimeSlot("9:00 AM - 10:00 AM"))
	assert.False(t, ValidTimeSlot(""))
}

func TestValidAppointmentDate(t *testing.T) {
	now := time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		date string
		want bool
	}{
		{"today is bookable even late in the day", "2025-06-10", true},
		{"tomorrow", "2025-06-11", true},
		{"far future", "2026-01-01", true},
		{"yesterday", "2025-06-09", false},
		{"wrong format", "06/10/2025", false},
		{"empty", "", false},
		{"garbage", "not-a-date", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidAppointmentDate(tt.date, now))
		})
	}
}

func TestCanCancelAppointment(t *testing.T) {
	assert.True(t, CanCancelAppointment(AppointmentStatusPending))
	assert.False(t, CanCancelAppointment(AppointmentStatusApproved))
	assert.False(t, CanCancelAppointment(AppointmentStatusRejected))
	assert.False(t, CanCancelAppointment(AppointmentStatusCancelled))
}
