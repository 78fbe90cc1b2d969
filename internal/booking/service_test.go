package booking

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/averyhsu/hotel-booking-backend/internal/room"
)

// fakeRepository is an in-memory Repository for service tests.
type fakeRepository struct {
	mu        sync.Mutex
	bookings  map[string]*Booking
	createErr error
	nextID    int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{bookings: make(map[string]*Booking)}
}

func (f *fakeRepository) CreateIfAvailable(_ context.Context, b *Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	// Mirror the real repository: only confirmed bookings block an insert.
	for _, existing := range f.bookings {
		if existing.RoomID != b.RoomID || existing.Status != StatusConfirmed {
			continue
		}
		if Overlaps(b.CheckIn, b.CheckOut, existing.CheckIn, existing.CheckOut) {
			return ErrRoomNotAvailable
		}
	}
	f.nextID++
	b.ID = "booking-" + strconv.Itoa(f.nextID)
	copied := *b
	f.bookings[b.ID] = &copied
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id string) (*Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeRepository) List(_ context.Context, _ Filter) ([]*Booking, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*Booking
	for _, b := range f.bookings {
		copied := *b
		out = append(out, &copied)
	}
	return out, len(out), nil
}

func (f *fakeRepository) Update(_ context.Context, b *Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.bookings[b.ID]; !ok {
		return ErrNotFound
	}
	copied := *b
	f.bookings[b.ID] = &copied
	return nil
}

func (f *fakeRepository) ListByStatuses(_ context.Context, statuses ...Status) ([]*Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	want := make(map[Status]bool)
	for _, s := range statuses {
		want[s] = true
	}
	var out []*Booking
	for _, b := range f.bookings {
		if want[b.Status] {
			copied := *b
			out = append(out, &copied)
		}
	}
	return out, nil
}

// fakeRoomRepository serves a fixed set of rooms.
type fakeRoomRepository struct {
	rooms map[string]*room.Room
}

func (f *fakeRoomRepository) Create(_ context.Context, _ *room.Room) error { return nil }
func (f *fakeRoomRepository) Update(_ context.Context, _ *room.Room) error { return nil }
func (f *fakeRoomRepository) Delete(_ context.Context, _ string) error     { return nil }

func (f *fakeRoomRepository) GetByID(_ context.Context, id string) (*room.Room, error) {
	r, ok := f.rooms[id]
	if !ok {
		return nil, room.ErrNotFound
	}
	return r, nil
}

func (f *fakeRoomRepository) List(_ context.Context, _ room.Filter) ([]*room.Room, int, error) {
	var out []*room.Room
	for _, r := range f.rooms {
		out = append(out, r)
	}
	return out, len(out), nil
}

func (f *fakeRoomRepository) ListByStatus(_ context.Context, status room.Status) ([]*room.Room, error) {
	var out []*room.Room
	for _, r := range f.rooms {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out, nil
}

// recordingNotifier counts events; calls come in on a goroutine.
type recordingNotifier struct {
	mu        sync.Mutex
	created   int
	cancelled int
}

func (n *recordingNotifier) BookingCreated(_ context.Context, _ *Booking) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.created++
}

func (n *recordingNotifier) BookingCancelled(_ context.Context, _ *Booking, _ string, _ int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.cancelled++
}

func newTestService(t *testing.T) (*service, *fakeRepository, *fakeRoomRepository) {
	t.Helper()
	repo := newFakeRepository()
	roomRepo := &fakeRoomRepository{rooms: map[string]*room.Room{
		"room-1": {ID: "room-1", Number: "101", Capacity: 2, Status: room.StatusAvailable, PricePerNight: "150.00"},
		"room-2": {ID: "room-2", Number: "102", Capacity: 4, Status: room.StatusAvailable, PricePerNight: "220.00"},
	}}
	svc := NewService(repo, roomRepo, &recordingNotifier{}, DefaultRefundPolicy()).(*service)
	return svc, repo, roomRepo
}

func validCreateRequest() CreateRequest {
	return CreateRequest{
		UserID:     "user-1",
		RoomID:     "room-1",
		CheckIn:    date(2026, 5, 10),
		CheckOut:   date(2026, 5, 13),
		Guests:     2,
		TotalPrice: "450.00",
	}
}

func TestCreateBooking(t *testing.T) {
	t.Run("Valid request starts pending", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		b, err := svc.Create(context.Background(), validCreateRequest())
		require.NoError(t, err)

		assert.Equal(t, StatusPending, b.Status)
		assert.Equal(t, "101", b.RoomNumber)
		assert.Equal(t, "450.00", b.TotalPrice)
		assert.NotEmpty(t, b.ID)
	})

	t.Run("Check-out before check-in", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		req := validCreateRequest()
		req.CheckIn, req.CheckOut = req.CheckOut, req.CheckIn
		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("Zero-night stay", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		req := validCreateRequest()
		req.CheckOut = req.CheckIn
		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("Guests below 1", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		req := validCreateRequest()
		req.Guests = 0
		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidGuests)
	})

	t.Run("Guests over capacity", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		req := validCreateRequest()
		req.Guests = 3 // room-1 sleeps 2
		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrTooManyGuests)
	})

	t.Run("Unknown room", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		req := validCreateRequest()
		req.RoomID = "room-404"
		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrRoomNotFound)
	})

	t.Run("Malformed price", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		req := validCreateRequest()
		req.TotalPrice = "4.5.0"
		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("Room conflict surfaces as not available", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		repo.createErr = ErrRoomNotAvailable

		_, err := svc.Create(context.Background(), validCreateRequest())
		assert.ErrorIs(t, err, ErrRoomNotAvailable)
	})

	t.Run("Overlapping pending bookings may coexist", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		first, err := svc.Create(context.Background(), validCreateRequest())
		require.NoError(t, err)
		assert.Equal(t, StatusPending, first.Status)

		// Same room, same dates: the first booking is still pending, so the
		// second reservation goes through.
		req := validCreateRequest()
		req.UserID = "user-2"
		second, err := svc.Create(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, StatusPending, second.Status)
		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("Confirmed booking blocks an overlapping create", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		first, err := svc.Create(context.Background(), validCreateRequest())
		require.NoError(t, err)
		_, err = svc.ConfirmPayment(context.Background(), first.ID, "pi_123")
		require.NoError(t, err)

		req := validCreateRequest()
		req.UserID = "user-2"
		_, err = svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrRoomNotAvailable)

		// A non-overlapping stay on the same room is still fine.
		req.CheckIn = date(2026, 5, 13)
		req.CheckOut = date(2026, 5, 15)
		b, err := svc.Create(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, StatusPending, b.Status)
	})
}

func TestGetByIDOwnership(t *testing.T) {
	svc, _, _ := newTestService(t)
	b, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	t.Run("Owner can read", func(t *testing.T) {
		got, err := svc.GetByID(context.Background(), b.ID, "user-1", false)
		require.NoError(t, err)
		assert.Equal(t, b.ID, got.ID)
	})

	t.Run("Stranger is forbidden", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), b.ID, "user-2", false)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("Admin can read any", func(t *testing.T) {
		got, err := svc.GetByID(context.Background(), b.ID, "someone-else", true)
		require.NoError(t, err)
		assert.Equal(t, b.ID, got.ID)
	})

	t.Run("Unknown id", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), "nope", "user-1", false)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPaymentTransitions(t *testing.T) {
	t.Run("Confirm stores payment intent", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		b, err := svc.Create(context.Background(), validCreateRequest())
		require.NoError(t, err)

		got, err := svc.ConfirmPayment(context.Background(), b.ID, "pi_123")
		require.NoError(t, err)
		assert.Equal(t, StatusConfirmed, got.Status)
		require.NotNil(t, got.PaymentIntentID)
		assert.Equal(t, "pi_123", *got.PaymentIntentID)
	})

	t.Run("Deposit then confirm", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		b, err := svc.Create(context.Background(), validCreateRequest())
		require.NoError(t, err)

		got, err := svc.MarkDepositPaid(context.Background(), b.ID, "pi_dep")
		require.NoError(t, err)
		assert.Equal(t, StatusDepositPaid, got.Status)

		got, err = svc.ConfirmPayment(context.Background(), b.ID, "pi_full")
		require.NoError(t, err)
		assert.Equal(t, StatusConfirmed, got.Status)
	})

	t.Run("Complete requires confirmed", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		b, err := svc.Create(context.Background(), validCreateRequest())
		require.NoError(t, err)

		_, err = svc.Complete(context.Background(), b.ID)
		assert.ErrorIs(t, err, ErrInvalidState)

		_, err = svc.ConfirmPayment(context.Background(), b.ID, "pi_123")
		require.NoError(t, err)

		got, err := svc.Complete(context.Background(), b.ID)
		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, got.Status)
	})

	t.Run("Confirm twice is a conflict", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		b, err := svc.Create(context.Background(), validCreateRequest())
		require.NoError(t, err)

		_, err = svc.ConfirmPayment(context.Background(), b.ID, "pi_123")
		require.NoError(t, err)

		_, err = svc.ConfirmPayment(context.Background(), b.ID, "pi_456")
		assert.ErrorIs(t, err, ErrInvalidState)
	})
}

func TestCancel(t *testing.T) {
	checkIn := date(2026, 5, 10)

	setup := func(t *testing.T, now time.Time) (*service, *Booking) {
		t.Helper()
		svc, _, _ := newTestService(t)
		svc.now = func() time.Time { return now }

		b, err := svc.Create(context.Background(), validCreateRequest())
		require.NoError(t, err)
		return svc, b
	}

	t.Run("Owner cancels early, full refund", func(t *testing.T) {
		svc, b := setup(t, checkIn.Add(-72*time.Hour))

		res, err := svc.Cancel(context.Background(), b.ID, "user-1", false)
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, res.Booking.Status)
		assert.Equal(t, 100, res.RefundPercent)
		assert.Equal(t, "450.00", res.RefundAmount)
	})

	t.Run("Cancel inside half window", func(t *testing.T) {
		svc, b := setup(t, checkIn.Add(-30*time.Hour))

		res, err := svc.Cancel(context.Background(), b.ID, "user-1", false)
		require.NoError(t, err)
		assert.Equal(t, 50, res.RefundPercent)
		assert.Equal(t, "225.00", res.RefundAmount)
	})

	t.Run("Late cancel gets nothing back", func(t *testing.T) {
		svc, b := setup(t, checkIn.Add(-2*time.Hour))

		res, err := svc.Cancel(context.Background(), b.ID, "user-1", false)
		require.NoError(t, err)
		assert.Equal(t, 0, res.RefundPercent)
		assert.Equal(t, "0.00", res.RefundAmount)
	})

	t.Run("Stranger cannot cancel", func(t *testing.T) {
		svc, b := setup(t, checkIn.Add(-72*time.Hour))

		_, err := svc.Cancel(context.Background(), b.ID, "user-2", false)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("Admin can cancel any booking", func(t *testing.T) {
		svc, b := setup(t, checkIn.Add(-72*time.Hour))

		res, err := svc.Cancel(context.Background(), b.ID, "admin-1", true)
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, res.Booking.Status)
	})

	t.Run("Cancelling twice is a conflict", func(t *testing.T) {
		svc, b := setup(t, checkIn.Add(-72*time.Hour))

		_, err := svc.Cancel(context.Background(), b.ID, "user-1", false)
		require.NoError(t, err)

		_, err = svc.Cancel(context.Background(), b.ID, "user-1", false)
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("Cancelling a completed booking is a conflict", func(t *testing.T) {
		svc, b := setup(t, checkIn.Add(-72*time.Hour))

		_, err := svc.ConfirmPayment(context.Background(), b.ID, "pi_123")
		require.NoError(t, err)
		_, err = svc.Complete(context.Background(), b.ID)
		require.NoError(t, err)

		_, err = svc.Cancel(context.Background(), b.ID, "user-1", false)
		assert.ErrorIs(t, err, ErrInvalidState)
	})
}

func TestListAvailableRooms(t *testing.T) {
	svc, repo, _ := newTestService(t)

	// room-1 is taken over the window by a confirmed booking; a pending one on
	// room-2 must not block it.
	repo.bookings["b1"] = &Booking{
		ID: "b1", RoomID: "room-1", Status: StatusConfirmed,
		CheckIn: date(2026, 5, 10), CheckOut: date(2026, 5, 13),
	}
	repo.bookings["b2"] = &Booking{
		ID: "b2", RoomID: "room-2", Status: StatusPending,
		CheckIn: date(2026, 5, 10), CheckOut: date(2026, 5, 13),
	}

	got, err := svc.ListAvailableRooms(context.Background(), date(2026, 5, 11), date(2026, 5, 12))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "room-2", got[0].ID)

	_, err = svc.ListAvailableRooms(context.Background(), date(2026, 5, 12), date(2026, 5, 12))
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}
