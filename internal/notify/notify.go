// Package notify is the seam between the booking core and the external
// messaging collaborators (customer email, admin channel). The core fires
// these notifications and never depends on their outcome.
package notify

import (
	"context"
	"log"

	"github.com/averyhsu/hotel-booking-backend/internal/booking"
)

// LogNotifier writes booking lifecycle events to the process log. It stands
// in for the email/admin-channel integrations, which live outside this
// service, and satisfies booking.Notifier.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) BookingCreated(ctx context.Context, b *booking.Booking) {
	log.Printf("booking created: id=%s room=%s user=%s %s -> %s",
		b.ID, b.RoomNumber, b.UserID, b.CheckIn.Format("2006-01-02"), b.CheckOut.Format("2006-01-02"))
}

func (n *LogNotifier) BookingCancelled(ctx context.Context, b *booking.Booking, refundAmount string, refundPercent int) {
	log.Printf("booking cancelled: id=%s room=%s refund=%s (%d%%)",
		b.ID, b.RoomNumber, refundAmount, refundPercent)
}
