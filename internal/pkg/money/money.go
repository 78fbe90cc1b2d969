// Package money handles the decimal-string prices stored on rooms and
// bookings. Amounts are parsed into integer cents so refund and revenue
// math never touches floating point.
package money

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseCents parses a decimal string like "450.00" or "99.9" into cents.
// At most two fractional digits are accepted.
func ParseCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("amount %q has more than two decimal places", s)
	}
	// Pad "9" -> "90" so "1.5" means 150 cents.
	for len(frac) < 2 {
		frac += "0"
	}

	// Both parts must be plain digits; ParseUint rejects stray signs like
	// "450.-1" that a signed parse would silently fold in.
	w, err := strconv.ParseUint(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	f, err := strconv.ParseUint(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}

	cents := int64(w)*100 + int64(f)
	if neg {
		cents = -cents
	}
	return cents, nil
}

// FormatCents renders cents back into a two-decimal string, e.g. 45000 -> "450.00".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
