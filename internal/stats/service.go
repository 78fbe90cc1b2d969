package stats

import (
	"context"

	"github.com/averyhsu/hotel-booking-backend/internal/booking"
	"github.com/averyhsu/hotel-booking-backend/internal/room"
)

type Service interface {
	Compute(ctx context.Context) (*Stats, error)
}

type service struct {
	roomRepo    room.Repository
	bookingRepo booking.Repository
}

func NewService(roomRepo room.Repository, bookingRepo booking.Repository) Service {
	return &service{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
	}
}

func (s *service) Compute(ctx context.Context) (*Stats, error) {
	// Total rooms includes every status; paginated listing is bypassed by
	// asking for each status bucket.
	var rooms []*room.Room
	for _, st := range []room.Status{room.StatusAvailable, room.StatusBooked, room.StatusMaintenance} {
		rs, err := s.roomRepo.ListByStatus(ctx, st)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, rs...)
	}

	bookings, err := s.bookingRepo.ListByStatuses(ctx,
		booking.StatusPending,
		booking.StatusDepositPaid,
		booking.StatusConfirmed,
		booking.StatusCompleted,
		booking.StatusCancelled,
	)
	if err != nil {
		return nil, err
	}

	result := Compute(rooms, bookings)
	return &result, nil
}
