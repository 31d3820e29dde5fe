package models

import (
	"sort"

	"github.com/shopspring/decimal"
)

// CountryName holds the naming block of a country record
type CountryName struct {
	Common     string                `json:"common"`
	Official   string                `json:"official"`
	NativeName map[string]NativeName `json:"nativeName,omitempty"`
}

// NativeName is a country name in one of its own languages
type NativeName struct {
	Official string `json:"official"`
	Common   string `json:"common"`
}

// Currency describes one currency used by a country
type Currency struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// Flags holds the flag image locations of a country
type Flags struct {
	PNG string `json:"png"`
	SVG string `json:"svg"`
	Alt string `json:"alt,omitempty"`
}

// Country represents a country record as returned by the REST Countries API.
// Every field is optional; the accessors below return empty values when the
// API omitted the data.
type Country struct {
	Name       *CountryName        `json:"name,omitempty"`
	CCA2       string              `json:"cca2,omitempty"`
	CCA3       string              `json:"cca3,omitempty"`
	CCN3       string              `json:"ccn3,omitempty"` // ISO 3166-1 numeric
	Capital    []string            `json:"capital,omitempty"`
	Region     string              `json:"region,omitempty"`
	Subregion  string              `json:"subregion,omitempty"`
	Currencies map[string]Currency `json:"currencies,omitempty"`
	Languages  map[string]string   `json:"languages,omitempty"`
	Flags      *Flags              `json:"flags,omitempty"`
	Population int64               `json:"population,omitempty"`
	Area       decimal.Decimal     `json:"area"` // km²
}

// CommonName returns the common name or an empty string
func (c *Country) CommonName() string {
	if c == nil || c.Name == nil {
		return ""
	}
	return c.Name.Common
}

// OfficialName returns the official name or an empty string
func (c *Country) OfficialName() string {
	if c == nil || c.Name == nil {
		return ""
	}
	return c.Name.Official
}

// NativeOfficialName returns the official name in the given language code
func (c *Country) NativeOfficialName(lang string) string {
	if c == nil || c.Name == nil {
		return ""
	}
	return c.Name.NativeName[lang].Official
}

// Currency returns the currency registered under code, if any
func (c *Country) Currency(code string) (Currency, bool) {
	if c == nil {
		return Currency{}, false
	}
	cur, ok := c.Currencies[code]
	return cur, ok
}

// FirstCapital returns the first listed capital
func (c *Country) FirstCapital() string {
	if c == nil || len(c.Capital) == 0 {
		return ""
	}
	return c.Capital[0]
}

// FlagPNG returns the PNG flag URL
func (c *Country) FlagPNG() string {
	if c == nil || c.Flags == nil {
		return ""
	}
	return c.Flags.PNG
}

// FlagAlt returns the flag description, or "Flag of <name>" when the API has none
func (c *Country) FlagAlt() string {
	if c != nil && c.Flags != nil && c.Flags.Alt != "" {
		return c.Flags.Alt
	}
	return "Flag of " + c.CommonName()
}

// Identifier returns the key used for detail lookups. The numeric code is
// preferred; a handful of territories have none, so cca3 is used for those.
func (c *Country) Identifier() string {
	if c == nil {
		return ""
	}
	if c.CCN3 != "" {
		return c.CCN3
	}
	return c.CCA3
}

// LanguageNames returns the language names sorted alphabetically
func (c *Country) LanguageNames() []string {
	if c == nil || len(c.Languages) == 0 {
		return nil
	}
	names := make([]string, 0, len(c.Languages))
	for _, name := range c.Languages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
