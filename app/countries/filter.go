package countries

import (
	"strings"

	"github.com/joefazee/atlas/models"
)

// Filter keeps the countries whose common name contains term, ignoring case,
// in their original order. An empty term keeps everything.
func Filter(countries []models.Country, term string) []models.Country {
	if term == "" {
		return countries
	}

	needle := strings.ToLower(term)
	out := make([]models.Country, 0, len(countries))
	for i := range countries {
		name := countries[i].CommonName()
		if name != "" && strings.Contains(strings.ToLower(name), needle) {
			out = append(out, countries[i])
		}
	}
	return out
}
