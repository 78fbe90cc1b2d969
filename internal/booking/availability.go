package booking

import (
	"time"

	"github.com/averyhsu/hotel-booking-backend/internal/room"
)

// Overlaps reports whether the half-open ranges [aStart, aEnd) and
// [bStart, bEnd) share any time.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// AvailableRooms filters rooms down to those bookable for the half-open range
// [checkIn, checkOut). Only rooms whose status is "available" are considered;
// any other status is an admin override that excludes the room outright.
// A room is then dropped if any confirmed booking overlaps the range.
// Pending bookings do not block: only confirmed reservations are binding.
func AvailableRooms(rooms []*room.Room, confirmed []*Booking, checkIn, checkOut time.Time) []*room.Room {
	conflicting := make(map[string]bool)
	for _, b := range confirmed {
		if b.Status != StatusConfirmed {
			continue
		}
		if Overlaps(checkIn, checkOut, b.CheckIn, b.CheckOut) {
			conflicting[b.RoomID] = true
		}
	}

	var out []*room.Room
	for _, r := range rooms {
		if r.Status != room.StatusAvailable {
			continue
		}
		if conflicting[r.ID] {
			continue
		}
		out = append(out, r)
	}
	return out
}
