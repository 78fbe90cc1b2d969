// Package stats computes the admin dashboard aggregates over rooms and
// bookings. The computation is a pure function over already-fetched rows.
package stats

import (
	"github.com/averyhsu/hotel-booking-backend/internal/booking"
	"github.com/averyhsu/hotel-booking-backend/internal/pkg/money"
	"github.com/averyhsu/hotel-booking-backend/internal/room"
)

// Stats holds the admin dashboard aggregates.
type Stats struct {
	TotalRooms     int
	TotalBookings  int
	TotalCustomers int     // distinct users across all bookings
	OccupancyRate  float64 // confirmed bookings / total rooms, not date-aware
	TotalRevenue   string  // sum of total price over confirmed + completed
}

// Compute aggregates the given rooms and bookings. An empty dataset yields
// all zeros; the occupancy rate guards against division by zero.
func Compute(rooms []*room.Room, bookings []*booking.Booking) Stats {
	s := Stats{
		TotalRooms:    len(rooms),
		TotalBookings: len(bookings),
	}

	customers := make(map[string]bool)
	confirmedCount := 0
	var revenueCents int64

	for _, b := range bookings {
		customers[b.UserID] = true

		if b.Status == booking.StatusConfirmed {
			confirmedCount++
		}
		if b.Status == booking.StatusConfirmed || b.Status == booking.StatusCompleted {
			if cents, err := money.ParseCents(b.TotalPrice); err == nil {
				revenueCents += cents
			}
		}
	}

	s.TotalCustomers = len(customers)
	if s.TotalRooms > 0 {
		s.OccupancyRate = float64(confirmedCount) / float64(s.TotalRooms)
	}
	s.TotalRevenue = money.FormatCents(revenueCents)

	return s
}
