package booking

import (
	"time"

	"github.com/averyhsu/hotel-booking-backend/internal/pkg/money"
)

// RefundPolicy decides what share of a booking's total price is returned when
// it is cancelled, based on how far ahead of check-in the cancellation lands.
type RefundPolicy struct {
	FullBefore  time.Duration // full refund strictly more than this before check-in
	HalfBefore  time.Duration // half refund at least this long before check-in
	FullPercent int
	HalfPercent int
}

// DefaultRefundPolicy returns the standard 48h/24h, 100%/50%/0% tiers.
func DefaultRefundPolicy() RefundPolicy {
	return RefundPolicy{
		FullBefore:  48 * time.Hour,
		HalfBefore:  24 * time.Hour,
		FullPercent: 100,
		HalfPercent: 50,
	}
}

// Percent returns the refund percentage for a cancellation at "now" of a
// booking checking in at "checkIn". The full tier requires strictly more than
// FullBefore remaining; exactly FullBefore falls into the half tier.
func (p RefundPolicy) Percent(now, checkIn time.Time) int {
	remaining := checkIn.Sub(now)
	switch {
	case remaining > p.FullBefore:
		return p.FullPercent
	case remaining >= p.HalfBefore:
		return p.HalfPercent
	default:
		return 0
	}
}

// Refund computes the advisory refund for the given total price.
// The returned amount is a decimal string like the input.
func (p RefundPolicy) Refund(now, checkIn time.Time, totalPrice string) (amount string, percent int, err error) {
	cents, err := money.ParseCents(totalPrice)
	if err != nil {
		return "", 0, err
	}

	percent = p.Percent(now, checkIn)
	return money.FormatCents(cents * int64(percent) / 100), percent, nil
}
