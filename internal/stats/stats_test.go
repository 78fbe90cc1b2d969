package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/averyhsu/hotel-booking-backend/internal/booking"
	"github.com/averyhsu/hotel-booking-backend/internal/room"
)

func TestCompute(t *testing.T) {
	t.Run("Empty dataset yields zeros", func(t *testing.T) {
		got := Compute(nil, nil)

		assert.Equal(t, 0, got.TotalRooms)
		assert.Equal(t, 0, got.TotalBookings)
		assert.Equal(t, 0, got.TotalCustomers)
		assert.Equal(t, 0.0, got.OccupancyRate)
		assert.Equal(t, "0.00", got.TotalRevenue)
	})

	t.Run("Bookings without rooms keep occupancy at zero", func(t *testing.T) {
		bookings := []*booking.Booking{
			{UserID: "u1", Status: booking.StatusConfirmed, TotalPrice: "100.00"},
		}

		got := Compute(nil, bookings)

		assert.Equal(t, 1, got.TotalBookings)
		assert.Equal(t, 0.0, got.OccupancyRate)
		assert.Equal(t, "100.00", got.TotalRevenue)
	})

	t.Run("Mixed statuses", func(t *testing.T) {
		rooms := []*room.Room{
			{ID: "r1"}, {ID: "r2"}, {ID: "r3"}, {ID: "r4"},
		}
		bookings := []*booking.Booking{
			{UserID: "u1", Status: booking.StatusConfirmed, TotalPrice: "450.00"},
			{UserID: "u1", Status: booking.StatusCompleted, TotalPrice: "120.50"},
			{UserID: "u2", Status: booking.StatusConfirmed, TotalPrice: "300.00"},
			{UserID: "u3", Status: booking.StatusPending, TotalPrice: "999.00"},
			{UserID: "u4", Status: booking.StatusCancelled, TotalPrice: "80.00"},
		}

		got := Compute(rooms, bookings)

		assert.Equal(t, 4, got.TotalRooms)
		assert.Equal(t, 5, got.TotalBookings)
		assert.Equal(t, 4, got.TotalCustomers)
		// 2 confirmed over 4 rooms.
		assert.InDelta(t, 0.5, got.OccupancyRate, 1e-9)
		// Confirmed and completed only: 450.00 + 120.50 + 300.00.
		assert.Equal(t, "870.50", got.TotalRevenue)
	})

	t.Run("Repeat customer counted once", func(t *testing.T) {
		bookings := []*booking.Booking{
			{UserID: "u1", Status: booking.StatusPending, TotalPrice: "10.00"},
			{UserID: "u1", Status: booking.StatusCancelled, TotalPrice: "10.00"},
		}

		got := Compute([]*room.Room{{ID: "r1"}}, bookings)

		assert.Equal(t, 1, got.TotalCustomers)
		assert.Equal(t, "0.00", got.TotalRevenue)
	})
}
