package rates

import (
	"github.com/poshub/multicurrency/internal/core/ports/providers"
	"github.com/shopspring/decimal"
)

// ResolveRate derives a currency's rate relative to the hub's base from a
// feed anchored to its own reference currency. Three cases apply:
//
//  1. base equals the anchor and the code is quoted in the feed: use the
//     feed rate directly.
//  2. the code equals the anchor and the base is quoted: reciprocal of the
//     base's feed rate.
//  3. both base and code are quoted (neither is the anchor): cross rate
//     feed[code] / feed[base].
//
// The boolean is false when none of the cases apply; the caller reports
// that currency as a warning rather than failing the run.
func ResolveRate(feed providers.RateTable, anchor, base, code string) (decimal.Decimal, bool) {
	if base == anchor {
		if rate, ok := feed[code]; ok {
			return rate, true
		}
		return decimal.Zero, false
	}

	baseRate, baseQuoted := feed[base]
	if baseQuoted && baseRate.IsZero() {
		// A zero quote cannot serve as a divisor in either remaining case.
		return decimal.Zero, false
	}

	if code == anchor {
		if baseQuoted {
			return decimal.NewFromInt(1).Div(baseRate), true
		}
		return decimal.Zero, false
	}

	codeRate, codeQuoted := feed[code]
	if baseQuoted && codeQuoted {
		return codeRate.Div(baseRate), true
	}
	return decimal.Zero, false
}
