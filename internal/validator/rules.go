package validator

import (
	"regexp"
	"unicode/utf8"
)

var (
	// CountryCodeRgx matches the lookup keys the alpha endpoint accepts:
	// ISO 3166-1 numeric (3 digits), alpha-2 or alpha-3 codes.
	CountryCodeRgx = regexp.MustCompile(`^(?:[0-9]{3}|[A-Za-z]{2,3})$`)
)

// MaxRunes returns true if a string is less than or equal to a maximum number of n
func MaxRunes(value string, n int) bool {
	return utf8.RuneCountInString(value) <= n
}

// Matches returns true if a string value matches a specific regexp pattern.
func Matches(value string, rx *regexp.Regexp) bool {
	return rx.MatchString(value)
}

// In returns true if a value is in a list of values.
func In[T comparable](value T, list ...T) bool {
	for i := range list {
		if value == list[i] {
			return true
		}
	}
	return false
}

// IsCountryCode returns true if value can be used as an alpha lookup key.
func IsCountryCode(value string) bool {
	return Matches(value, CountryCodeRgx)
}
