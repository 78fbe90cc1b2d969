package booking

import (
	"net/http"
	"time"

	"github.com/averyhsu/hotel-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "booking not found")
	ErrRoomNotFound     = apperror.New(http.StatusNotFound, "room not found")
	ErrRoomNotAvailable = apperror.New(http.StatusConflict, "room is not available for the requested dates")
	ErrInvalidDateRange = apperror.New(http.StatusBadRequest, "check-in date must be before check-out date")
	ErrInvalidGuests    = apperror.New(http.StatusBadRequest, "guest count must be at least 1")
	ErrTooManyGuests    = apperror.New(http.StatusBadRequest, "guest count exceeds room capacity")
	ErrInvalidPrice     = apperror.New(http.StatusBadRequest, "invalid total price")
	ErrForbidden        = apperror.New(http.StatusForbidden, "not allowed to modify this booking")
	ErrInvalidState     = apperror.New(http.StatusConflict, "booking is not in a state that allows this transition")
)

// Status is the booking lifecycle state.
type Status string

const (
	StatusPending     Status = "pending"
	StatusDepositPaid Status = "deposit_paid" // partial payment, used by walk-in flows
	StatusConfirmed   Status = "confirmed"
	StatusCompleted   Status = "completed"
	StatusCancelled   Status = "cancelled"
)

// CanTransition reports whether a booking may move from one status to another.
func CanTransition(from, to Status) bool {
	switch from {
	case StatusPending:
		return to == StatusDepositPaid || to == StatusConfirmed || to == StatusCancelled
	case StatusDepositPaid:
		return to == StatusConfirmed || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusCompleted || to == StatusCancelled
	}
	// completed and cancelled are terminal
	return false
}

// Booking links one user and one room over a half-open date range
// [CheckIn, CheckOut).
type Booking struct {
	ID              string
	UserID          string
	UserName        string // joined for display
	RoomID          string
	RoomNumber      string // joined for display
	CheckIn         time.Time
	CheckOut        time.Time
	Guests          int
	TotalPrice      string // decimal string, e.g. "450.00"
	Status          Status
	SpecialRequests *string
	PaymentIntentID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Filter defines parameters for listing bookings.
type Filter struct {
	UserID   string
	RoomID   string
	Status   string
	From     *time.Time // bookings checking out after this date
	To       *time.Time // bookings checking in before this date
	Page     int
	PageSize int
}
