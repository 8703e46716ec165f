package money_test

import (
	"testing"

	"github.com/poshub/multicurrency/internal/utils/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		places int32
		want   string
	}{
		{"exact half rounds up", "1.005", 2, "1.01"},
		{"exact half rounds away from zero when negative", "-1.005", 2, "-1.01"},
		{"below half rounds down", "1.004", 2, "1.00"},
		{"zero places truncates via half-up", "163.456789", 0, "163"},
		{"zero places half rounds up", "163.5", 0, "164"},
		{"six places for rates", "1.0844999951", 6, "1.0845"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := money.RoundHalfUp(d(tt.in), tt.places)
			assert.True(t, d(tt.want).Equal(got), "got %s want %s", got, tt.want)
		})
	}
}

func TestConvertFromBase(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		rate   string
		places int
		want   string
	}{
		{"EUR to USD", "100", "1.085000", 2, "108.50"},
		{"EUR to GBP", "100", "0.856000", 2, "85.60"},
		{"EUR to JPY zero decimals", "1", "163.456789", 0, "163"},
		{"zero rate sentinel", "100", "0", 2, "0"},
		{"zero amount", "0", "1.085000", 2, "0"},
		{"negative amount refund", "-100", "1.085000", 2, "-108.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := money.ConvertFromBase(d(tt.amount), d(tt.rate), tt.places)
			assert.True(t, d(tt.want).Equal(got), "got %s want %s", got, tt.want)
		})
	}
}

func TestConvertToBase(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		rate   string
		want   string
	}{
		{"USD to EUR", "108.50", "1.085000", "100.00"},
		{"GBP to EUR", "85.60", "0.856000", "100.00"},
		{"zero rate sentinel", "100", "0", "0"},
		{"negative amount refund", "-108.50", "1.085000", "-100.00"},
		{"always two decimals", "10", "3", "3.33"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := money.ConvertToBase(d(tt.amount), d(tt.rate))
			assert.True(t, d(tt.want).Equal(got), "got %s want %s", got, tt.want)
		})
	}
}

// Round-tripping base -> C -> base stays within one unit at the smaller of
// the two scales for any positive rate.
func TestConvertRoundTrip(t *testing.T) {
	rates := []string{"1.085000", "0.856000", "7.435300", "163.456789"}
	amounts := []string{"100", "0.01", "99999.99", "42.42"}

	for _, r := range rates {
		for _, a := range amounts {
			rate := d(r)
			amount := d(a)
			foreign := money.ConvertFromBase(amount, rate, 2)
			back := money.ConvertToBase(foreign, rate)
			diff := back.Sub(amount).Abs()
			assert.True(t, diff.LessThanOrEqual(d("0.01")),
				"round trip drifted by %s for amount %s rate %s", diff, a, r)
		}
	}
}
