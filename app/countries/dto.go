package countries

import (
	"net/url"
	"strconv"

	"github.com/joefazee/atlas/internal/paging"
	"github.com/joefazee/atlas/internal/validator"
)

// MaxSearchLength caps a search term in runes
const MaxSearchLength = 100

// Config holds the list and detail view settings
type Config struct {
	// The detail view shows one currency and one native name; these pick which.
	DetailCurrencyCode string `env:"DETAIL_CURRENCY_CODE" env-default:"PKR" validate:"required"`
	DetailLanguage     string `env:"DETAIL_NATIVE_LANGUAGE" env-default:"urd" validate:"required"`
	SkeletonCount      int    `env:"LIST_SKELETON_COUNT" env-default:"8" validate:"min=1,max=48"`
	RefreshSeconds     int    `env:"LIST_REFRESH_SECONDS" env-default:"2" validate:"min=1"`
}

// ListQuery carries the list controls of one request. A nil field was not
// given and leaves the stored value alone.
type ListQuery struct {
	Search  *string `form:"q" binding:"omitempty,max=100"`
	Page    *int    `form:"page" binding:"omitempty,min=1"`
	PerPage *int    `form:"per_page" binding:"omitempty,oneof=8 12 16 24"`
}

// ParseListQuery reads the list controls leniently: an invalid value is
// reported in the returned validator and otherwise treated as absent.
func ParseListQuery(values url.Values) (ListQuery, *validator.Validator) {
	v := validator.New()
	var q ListQuery

	if raw, ok := values["q"]; ok && len(raw) > 0 {
		term := raw[0]
		v.Check(validator.MaxRunes(term, MaxSearchLength), "q", "must not be more than 100 characters")
		if v.Valid() {
			q.Search = &term
		}
	}

	if raw := values.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		v.Check(err == nil && n >= 1, "page", "must be a positive integer")
		if err == nil && n >= 1 {
			q.Page = &n
		}
	}

	if raw := values.Get("per_page"); raw != "" {
		n, err := strconv.Atoi(raw)
		v.Check(err == nil && paging.ValidPageSize(n), "per_page", "must be one of 8, 12, 16 or 24")
		if err == nil && paging.ValidPageSize(n) {
			q.PerPage = &n
		}
	}

	return q, v
}

// CountryCard is one entry of the list view
type CountryCard struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Capital   string `json:"capital"`
	Region    string `json:"region"`
	FlagURL   string `json:"flag_url"`
	FlagAlt   string `json:"flag_alt"`
	DetailURL string `json:"detail_url"`
}

// CountryDetail is the detail view of one country. Fields the API did not
// supply are empty strings.
type CountryDetail struct {
	ID             string   `json:"id"`
	CommonName     string   `json:"common_name"`
	OfficialName   string   `json:"official_name"`
	NativeName     string   `json:"native_name"`
	CurrencyCode   string   `json:"currency_code"`
	CurrencyName   string   `json:"currency_name"`
	CurrencySymbol string   `json:"currency_symbol"`
	Capital        string   `json:"capital"`
	Region         string   `json:"region"`
	Subregion      string   `json:"subregion"`
	Population     string   `json:"population"`
	Area           string   `json:"area"`
	Density        string   `json:"density"`
	CallingCode    string   `json:"calling_code"`
	FlagURL        string   `json:"flag_url"`
	FlagAlt        string   `json:"flag_alt"`
	Languages      []string `json:"languages"`
}

// ListPage is the derived list view handed to the template
type ListPage struct {
	View      paging.View[CountryCard]
	Search    string
	PageSizes []int
}

// LoadingPage is the placeholder view shown while the catalog loads
type LoadingPage struct {
	Skeletons int
}
