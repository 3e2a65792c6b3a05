package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to BookingStatus
		want     bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestBookingStatus_IsValid(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusConfirmed.IsValid())
	assert.True(t, StatusCancelled.IsValid())
	assert.True(t, StatusCompleted.IsValid())
	assert.False(t, BookingStatus("archived").IsValid())
	assert.False(t, BookingStatus("").IsValid())
}

func TestBooking_BlocksSlot(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).BlocksSlot())
	assert.True(t, (&Booking{Status: StatusConfirmed}).BlocksSlot())
	assert.False(t, (&Booking{Status: StatusCancelled}).BlocksSlot())
	assert.False(t, (&Booking{Status: StatusCompleted}).BlocksSlot())
}

func TestBooking_Interval(t *testing.T) {
	b := &Booking{StartTime: "10:00", DurationMinutes: 90}

	start, end, err := b.Interval()
	assert.NoError(t, err)
	assert.Equal(t, 600, start)
	assert.Equal(t, 690, end)

	_, _, err = (&Booking{StartTime: "bad", DurationMinutes: 30}).Interval()
	assert.Error(t, err)
}
