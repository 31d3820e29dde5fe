// Package formatter renders numeric country facts for display.
package formatter

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/nyaruka/phonenumbers"
	"github.com/shopspring/decimal"
)

// CallingCode returns the international dialing prefix for an ISO 3166-1
// alpha-2 region, e.g. "+92" for "PK". Unknown regions yield "".
func CallingCode(regionCode string) string {
	code := phonenumbers.GetCountryCodeForRegion(strings.ToUpper(strings.TrimSpace(regionCode)))
	if code == 0 {
		return ""
	}
	return "+" + strconv.Itoa(code)
}

// Population formats n with thousands separators. Zero means unknown.
func Population(n int64) string {
	if n <= 0 {
		return ""
	}
	return humanize.Comma(n)
}

// Area formats square kilometres rounded to whole units. Areas under half a
// km² keep their decimals.
func Area(km2 decimal.Decimal) string {
	if !km2.IsPositive() {
		return ""
	}
	whole := km2.Round(0)
	if whole.IsZero() {
		return km2.String()
	}
	return humanize.Comma(whole.IntPart())
}

// Density is people per km² with one decimal place, "" when either side is unknown.
func Density(population int64, km2 decimal.Decimal) string {
	if population <= 0 || !km2.IsPositive() {
		return ""
	}
	return decimal.NewFromInt(population).Div(km2).StringFixed(1)
}
