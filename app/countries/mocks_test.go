package countries

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/joefazee/atlas/models"
)

type MockClient struct {
	mock.Mock
}

func (m *MockClient) All(ctx context.Context) ([]models.Country, error) {
	args := m.Called(ctx)
	countries, _ := args.Get(0).([]models.Country)
	return countries, args.Error(1)
}

func (m *MockClient) ByCode(ctx context.Context, code string) (*models.Country, error) {
	args := m.Called(ctx, code)
	country, _ := args.Get(0).(*models.Country)
	return country, args.Error(1)
}

func country(common, ccn3, capital, region string) models.Country {
	return models.Country{
		Name:    &models.CountryName{Common: common, Official: common},
		CCN3:    ccn3,
		Capital: []string{capital},
		Region:  region,
		Flags:   &models.Flags{PNG: "https://flagcdn.com/w320/" + ccn3 + ".png"},
	}
}

// numbered returns n countries named "Country 01", "Country 02", ...
func numbered(n int) []models.Country {
	out := make([]models.Country, n)
	for i := range out {
		out[i] = country(fmt.Sprintf("Country %02d", i+1), fmt.Sprintf("%03d", i+1), "Capital", "Europe")
	}
	return out
}

func pakistan() *models.Country {
	return &models.Country{
		Name: &models.CountryName{
			Common:   "Pakistan",
			Official: "Islamic Republic of Pakistan",
			NativeName: map[string]models.NativeName{
				"eng": {Official: "Islamic Republic of Pakistan", Common: "Pakistan"},
				"urd": {Official: "اسلامی جمہوریۂ پاكستان", Common: "پاكستان"},
			},
		},
		CCA2:       "PK",
		CCA3:       "PAK",
		CCN3:       "586",
		Capital:    []string{"Islamabad"},
		Region:     "Asia",
		Subregion:  "Southern Asia",
		Currencies: map[string]models.Currency{"PKR": {Name: "Pakistani rupee", Symbol: "₨"}},
		Languages:  map[string]string{"urd": "Urdu", "eng": "English"},
		Flags:      &models.Flags{PNG: "https://flagcdn.com/w320/pk.png"},
		Population: 220892331,
		Area:       decimal.NewFromInt(881912),
	}
}

func intPtr(n int) *int { return &n }

func parseQuery(raw string) (url.Values, error) {
	return url.ParseQuery(raw)
}
