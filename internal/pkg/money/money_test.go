package money

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCents(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "450.00", want: 45000},
		{in: "0.00", want: 0},
		{in: "0", want: 0},
		{in: "150", want: 15000},
		{in: "99.9", want: 9990},
		{in: ".50", want: 50},
		{in: "-12.34", want: -1234},
		{in: " 10.00 ", want: 1000},
		{in: "10.005", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
		{in: "450.-1", wantErr: true},
		{in: "1.-5", wantErr: true},
		{in: "12.+3", wantErr: true},
		{in: "+12.00", wantErr: true},
		{in: "--5", wantErr: true},
		{in: "4.5.0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCents(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFormatCents(t *testing.T) {
	require.Equal(t, "450.00", FormatCents(45000))
	require.Equal(t, "0.00", FormatCents(0))
	require.Equal(t, "0.05", FormatCents(5))
	require.Equal(t, "-12.34", FormatCents(-1234))
}

func TestRoundTrip(t *testing.T) {
	for _, s := range []string{"450.00", "0.00", "1234.56"} {
		c, err := ParseCents(s)
		require.NoError(t, err)
		require.Equal(t, s, FormatCents(c))
	}
}
