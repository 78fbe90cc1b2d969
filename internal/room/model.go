package room

import (
	"net/http"
	"time"

	"github.com/averyhsu/hotel-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "room not found")
	ErrNumberTaken     = apperror.New(http.StatusConflict, "room number already in use")
	ErrInvalidType     = apperror.New(http.StatusBadRequest, "invalid room type")
	ErrInvalidStatus   = apperror.New(http.StatusBadRequest, "invalid room status")
	ErrInvalidCapacity = apperror.New(http.StatusBadRequest, "capacity must be at least 1")
	ErrInvalidPrice    = apperror.New(http.StatusBadRequest, "invalid nightly price")
	ErrNumberRequired  = apperror.New(http.StatusBadRequest, "room number is required")
)

// Type is the room category shown to guests.
type Type string

const (
	TypeStandard     Type = "standard"
	TypeDeluxe       Type = "deluxe"
	TypeSuite        Type = "suite"
	TypePresidential Type = "presidential"
)

// Status is an admin-set override. Availability is computed from confirmed
// bookings; any status other than StatusAvailable forcibly excludes the room
// from search results regardless of its bookings.
type Status string

const (
	StatusAvailable   Status = "available"
	StatusBooked      Status = "booked"
	StatusMaintenance Status = "maintenance"
)

// Room represents a bookable hotel room.
type Room struct {
	ID            string // UUID
	Number        string // unique display label, e.g. "101"
	Type          Type
	PricePerNight string // decimal string, e.g. "150.00"
	Capacity      int
	Status        Status
	Amenities     []string
	ImageIDs      []string // ids of uploaded room photos
	Description   *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Filter defines parameters for listing rooms.
type Filter struct {
	Type     string
	Status   string
	Capacity int // minimum capacity
	Page     int
	PageSize int
}

// ValidType reports whether t is a known room type.
func ValidType(t Type) bool {
	switch t {
	case TypeStandard, TypeDeluxe, TypeSuite, TypePresidential:
		return true
	}
	return false
}

// ValidStatus reports whether s is a known room status.
func ValidStatus(s Status) bool {
	switch s {
	case StatusAvailable, StatusBooked, StatusMaintenance:
		return true
	}
	return false
}
