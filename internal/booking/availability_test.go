package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/averyhsu/hotel-booking-backend/internal/room"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		aStart time.Time
		aEnd   time.Time
		bStart time.Time
		bEnd   time.Time
		want   bool
	}{
		{
			name:   "Disjoint ranges",
			aStart: date(2026, 3, 1), aEnd: date(2026, 3, 3),
			bStart: date(2026, 3, 10), bEnd: date(2026, 3, 12),
			want: false,
		},
		{
			name:   "Back to back, checkout equals checkin",
			aStart: date(2026, 3, 1), aEnd: date(2026, 3, 3),
			bStart: date(2026, 3, 3), bEnd: date(2026, 3, 5),
			want: false,
		},
		{
			name:   "One night shared",
			aStart: date(2026, 3, 1), aEnd: date(2026, 3, 4),
			bStart: date(2026, 3, 3), bEnd: date(2026, 3, 6),
			want: true,
		},
		{
			name:   "Fully contained",
			aStart: date(2026, 3, 1), aEnd: date(2026, 3, 10),
			bStart: date(2026, 3, 4), bEnd: date(2026, 3, 5),
			want: true,
		},
		{
			name:   "Identical ranges",
			aStart: date(2026, 3, 1), aEnd: date(2026, 3, 3),
			bStart: date(2026, 3, 1), bEnd: date(2026, 3, 3),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// Overlap is symmetric.
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestAvailableRooms(t *testing.T) {
	checkIn := date(2026, 3, 10)
	checkOut := date(2026, 3, 12)

	rooms := []*room.Room{
		{ID: "room-1", Number: "101", Status: room.StatusAvailable},
		{ID: "room-2", Number: "102", Status: room.StatusAvailable},
		{ID: "room-3", Number: "103", Status: room.StatusMaintenance},
		{ID: "room-4", Number: "104", Status: room.StatusBooked},
	}

	tests := []struct {
		name        string
		bookings    []*Booking
		wantNumbers []string
	}{
		{
			name:        "No bookings, override statuses still excluded",
			bookings:    nil,
			wantNumbers: []string{"101", "102"},
		},
		{
			name: "Confirmed overlap blocks the room",
			bookings: []*Booking{
				{RoomID: "room-1", CheckIn: date(2026, 3, 11), CheckOut: date(2026, 3, 14), Status: StatusConfirmed},
			},
			wantNumbers: []string{"102"},
		},
		{
			name: "Pending overlap does not block",
			bookings: []*Booking{
				{RoomID: "room-1", CheckIn: date(2026, 3, 10), CheckOut: date(2026, 3, 12), Status: StatusPending},
				{RoomID: "room-2", CheckIn: date(2026, 3, 10), CheckOut: date(2026, 3, 12), Status: StatusDepositPaid},
			},
			wantNumbers: []string{"101", "102"},
		},
		{
			name: "Cancelled overlap does not block",
			bookings: []*Booking{
				{RoomID: "room-1", CheckIn: date(2026, 3, 10), CheckOut: date(2026, 3, 12), Status: StatusCancelled},
			},
			wantNumbers: []string{"101", "102"},
		},
		{
			name: "Confirmed booking ending on check-in day does not block",
			bookings: []*Booking{
				{RoomID: "room-1", CheckIn: date(2026, 3, 8), CheckOut: date(2026, 3, 10), Status: StatusConfirmed},
			},
			wantNumbers: []string{"101", "102"},
		},
		{
			name: "All available rooms blocked",
			bookings: []*Booking{
				{RoomID: "room-1", CheckIn: date(2026, 3, 9), CheckOut: date(2026, 3, 11), Status: StatusConfirmed},
				{RoomID: "room-2", CheckIn: date(2026, 3, 11), CheckOut: date(2026, 3, 13), Status: StatusConfirmed},
			},
			wantNumbers: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AvailableRooms(rooms, tt.bookings, checkIn, checkOut)

			var numbers []string
			for _, r := range got {
				numbers = append(numbers, r.Number)
			}
			assert.Equal(t, tt.wantNumbers, numbers)
		})
	}
}
