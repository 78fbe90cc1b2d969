package http

import (
	"time"

	"github.com/averyhsu/hotel-booking-backend/internal/booking"
	"github.com/averyhsu/hotel-booking-backend/internal/pkg/request"
	roomHttp "github.com/averyhsu/hotel-booking-backend/internal/room/http"
	userHttp "github.com/averyhsu/hotel-booking-backend/internal/user/http"
)

const dateLayout = "2006-01-02"

// parseDate parses a calendar date like "2024-01-15" in UTC.
func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.UTC)
}

// AvailabilityRequest defines query parameters for the room search.
type AvailabilityRequest struct {
	CheckIn  string `form:"check_in" binding:"required"`
	CheckOut string `form:"check_out" binding:"required"`
}

// ListBookingsRequest defines query parameters for listing bookings.
type ListBookingsRequest struct {
	request.ListParams
	RoomID string `form:"room_id" binding:"omitempty,uuid"`
	UserID string `form:"user_id" binding:"omitempty,uuid"`
	Status string `form:"status" binding:"omitempty,oneof=pending deposit_paid confirmed completed cancelled"`
	From   string `form:"from"`
	To     string `form:"to"`
}

// CreateBookingBody is the payload for placing a reservation. Any status
// field sent by the client is ignored; new bookings are always pending.
type CreateBookingBody struct {
	RoomID          string  `json:"room_id" binding:"required,uuid"`
	CheckIn         string  `json:"check_in" binding:"required"`
	CheckOut        string  `json:"check_out" binding:"required"`
	Guests          int     `json:"guests" binding:"required,min=1"`
	TotalPrice      string  `json:"total_price" binding:"required"`
	SpecialRequests *string `json:"special_requests"`
}

// PaymentBody carries the payment provider's intent reference.
type PaymentBody struct {
	PaymentIntentID string `json:"payment_intent_id" binding:"required"`
}

type BookingResponse struct {
	ID              string            `json:"id"`
	User            userHttp.UserTag  `json:"user"`
	Room            roomHttp.RoomTag  `json:"room"`
	CheckIn         string            `json:"check_in"`
	CheckOut        string            `json:"check_out"`
	Guests          int               `json:"guests"`
	TotalPrice      string            `json:"total_price"`
	Status          string            `json:"status"`
	SpecialRequests *string           `json:"special_requests"`
	PaymentIntentID *string           `json:"payment_intent_id"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		User:            userHttp.UserTag{ID: b.UserID, Name: b.UserName},
		Room:            roomHttp.RoomTag{ID: b.RoomID, Number: b.RoomNumber},
		CheckIn:         b.CheckIn.Format(dateLayout),
		CheckOut:        b.CheckOut.Format(dateLayout),
		Guests:          b.Guests,
		TotalPrice:      b.TotalPrice,
		Status:          string(b.Status),
		SpecialRequests: b.SpecialRequests,
		PaymentIntentID: b.PaymentIntentID,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// CancelResponse reports the advisory refund for a cancelled booking.
type CancelResponse struct {
	Booking          BookingResponse `json:"booking"`
	RefundAmount     string          `json:"refund_amount"`
	RefundPercentage int             `json:"refund_percentage"`
}
