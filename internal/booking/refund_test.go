package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefundPolicyPercent(t *testing.T) {
	policy := DefaultRefundPolicy()
	checkIn := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"72h before check-in", checkIn.Add(-72 * time.Hour), 100},
		{"Just over 48h before", checkIn.Add(-48*time.Hour - time.Minute), 100},
		{"Exactly 48h before falls into the half tier", checkIn.Add(-48 * time.Hour), 50},
		{"30h before", checkIn.Add(-30 * time.Hour), 50},
		{"Exactly 24h before", checkIn.Add(-24 * time.Hour), 50},
		{"Just under 24h before", checkIn.Add(-24*time.Hour + time.Minute), 0},
		{"10h before", checkIn.Add(-10 * time.Hour), 0},
		{"After check-in", checkIn.Add(2 * time.Hour), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.Percent(tt.now, checkIn))
		})
	}
}

func TestRefundPolicyRefund(t *testing.T) {
	policy := DefaultRefundPolicy()
	checkIn := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		now         time.Time
		totalPrice  string
		wantAmount  string
		wantPercent int
	}{
		{"Full refund", checkIn.Add(-72 * time.Hour), "450.00", "450.00", 100},
		{"Half refund", checkIn.Add(-30 * time.Hour), "450.00", "225.00", 50},
		{"Half refund rounds down", checkIn.Add(-30 * time.Hour), "99.99", "49.99", 50},
		{"No refund", checkIn.Add(-2 * time.Hour), "450.00", "0.00", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, percent, err := policy.Refund(tt.now, checkIn, tt.totalPrice)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAmount, amount)
			assert.Equal(t, tt.wantPercent, percent)
		})
	}

	t.Run("Invalid price", func(t *testing.T) {
		_, _, err := policy.Refund(checkIn.Add(-72*time.Hour), checkIn, "not-a-price")
		require.Error(t, err)
	})
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from Status
		to   Status
		want bool
	}{
		{StatusPending, StatusDepositPaid, true},
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusDepositPaid, StatusConfirmed, true},
		{StatusDepositPaid, StatusCancelled, true},
		{StatusDepositPaid, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+" to "+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}
