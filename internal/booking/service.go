package booking

import (
	"context"
	"time"

	"github.com/averyhsu/hotel-booking-backend/internal/pkg/money"
	"github.com/averyhsu/hotel-booking-backend/internal/room"
)

// CreateRequest carries the fields needed to place a reservation.
// Status is never taken from the caller: new bookings are always pending.
type CreateRequest struct {
	UserID          string
	RoomID          string
	CheckIn         time.Time
	CheckOut        time.Time
	Guests          int
	TotalPrice      string
	SpecialRequests *string
}

// CancelResult reports the advisory refund for a cancelled booking.
// The core never moves money itself; the payment collaborator does.
type CancelResult struct {
	Booking       *Booking
	RefundAmount  string
	RefundPercent int
}

// Notifier receives lifecycle events. Calls are fire-and-forget: the booking
// outcome never depends on the notifier.
type Notifier interface {
	BookingCreated(ctx context.Context, b *Booking)
	BookingCancelled(ctx context.Context, b *Booking, refundAmount string, refundPercent int)
}

type Service interface {
	// ListAvailableRooms returns the rooms bookable over [checkIn, checkOut).
	ListAvailableRooms(ctx context.Context, checkIn, checkOut time.Time) ([]*room.Room, error)

	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string, requesterID string, isAdmin bool) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)

	ConfirmPayment(ctx context.Context, id string, paymentIntentID string) (*Booking, error)
	MarkDepositPaid(ctx context.Context, id string, paymentIntentID string) (*Booking, error)
	Complete(ctx context.Context, id string) (*Booking, error)
	Cancel(ctx context.Context, id string, actingUserID string, isAdmin bool) (*CancelResult, error)
}

type service struct {
	repo     Repository
	roomRepo room.Repository
	notifier Notifier
	policy   RefundPolicy

	now func() time.Time // injectable clock for tests
}

func NewService(repo Repository, roomRepo room.Repository, notifier Notifier, policy RefundPolicy) Service {
	return &service{
		repo:     repo,
		roomRepo: roomRepo,
		notifier: notifier,
		policy:   policy,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) ListAvailableRooms(ctx context.Context, checkIn, checkOut time.Time) ([]*room.Room, error) {
	if !checkIn.Before(checkOut) {
		return nil, ErrInvalidDateRange
	}

	rooms, err := s.roomRepo.ListByStatus(ctx, room.StatusAvailable)
	if err != nil {
		return nil, err
	}

	confirmed, err := s.repo.ListByStatuses(ctx, StatusConfirmed)
	if err != nil {
		return nil, err
	}

	return AvailableRooms(rooms, confirmed, checkIn, checkOut), nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	if !req.CheckIn.Before(req.CheckOut) {
		return nil, ErrInvalidDateRange
	}
	if req.Guests < 1 {
		return nil, ErrInvalidGuests
	}

	price, err := money.ParseCents(req.TotalPrice)
	if err != nil || price < 0 {
		return nil, ErrInvalidPrice
	}

	rm, err := s.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if err == room.ErrNotFound {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	if req.Guests > rm.Capacity {
		return nil, ErrTooManyGuests
	}

	b := &Booking{
		UserID:          req.UserID,
		RoomID:          req.RoomID,
		RoomNumber:      rm.Number,
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		Guests:          req.Guests,
		TotalPrice:      money.FormatCents(price),
		Status:          StatusPending,
		SpecialRequests: req.SpecialRequests,
	}

	// Availability check and insert run in one transaction behind a room
	// row lock; see Repository.CreateIfAvailable.
	if err := s.repo.CreateIfAvailable(ctx, b); err != nil {
		return nil, err
	}

	go s.notifier.BookingCreated(context.WithoutCancel(ctx), b)

	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string, requesterID string, isAdmin bool) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && b.UserID != requesterID {
		return nil, ErrForbidden
	}
	return b, nil
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) ConfirmPayment(ctx context.Context, id string, paymentIntentID string) (*Booking, error) {
	return s.transition(ctx, id, StatusConfirmed, &paymentIntentID)
}

func (s *service) MarkDepositPaid(ctx context.Context, id string, paymentIntentID string) (*Booking, error) {
	return s.transition(ctx, id, StatusDepositPaid, &paymentIntentID)
}

func (s *service) Complete(ctx context.Context, id string) (*Booking, error) {
	return s.transition(ctx, id, StatusCompleted, nil)
}

func (s *service) transition(ctx context.Context, id string, to Status, paymentIntentID *string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanTransition(b.Status, to) {
		return nil, ErrInvalidState
	}

	b.Status = to
	if paymentIntentID != nil && *paymentIntentID != "" {
		b.PaymentIntentID = paymentIntentID
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Cancel(ctx context.Context, id string, actingUserID string, isAdmin bool) (*CancelResult, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isAdmin && b.UserID != actingUserID {
		return nil, ErrForbidden
	}

	// Cancelling a completed or already-cancelled booking is an explicit
	// conflict, not a no-op: a fresh refund quote for a finished booking
	// would be misleading.
	if !CanTransition(b.Status, StatusCancelled) {
		return nil, ErrInvalidState
	}

	amount, percent, err := s.policy.Refund(s.now(), b.CheckIn, b.TotalPrice)
	if err != nil {
		return nil, ErrInvalidPrice
	}

	b.Status = StatusCancelled
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	go s.notifier.BookingCancelled(context.WithoutCancel(ctx), b, amount, percent)

	return &CancelResult{
		Booking:       b,
		RefundAmount:  amount,
		RefundPercent: percent,
	}, nil
}
