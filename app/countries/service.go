package countries

import (
	"context"
	"fmt"

	"github.com/joefazee/atlas/internal/formatter"
	"github.com/joefazee/atlas/internal/logger"
	"github.com/joefazee/atlas/internal/paging"
	"github.com/joefazee/atlas/internal/sanitizer"
	"github.com/joefazee/atlas/models"
)

type service struct {
	catalog   *Catalog
	client    Client
	sanitizer sanitizer.HTMLStripperer
	cfg       Config
	logger    logger.Logger
}

// NewService creates a new country service
func NewService(catalog *Catalog, client Client, stripper sanitizer.HTMLStripperer, cfg Config, log logger.Logger) Service {
	return &service{
		catalog:   catalog,
		client:    client,
		sanitizer: stripper,
		cfg:       cfg,
		logger:    log,
	}
}

// List applies the controls in q in this order: search term, page size,
// page. A changed term or page size goes back to page 1 unless q also names
// a page. The page is clamped to what the filtered list offers. The term is
// matched exactly as typed.
func (s *service) List(ctx context.Context, st *paging.State, q ListQuery) *ListPage {
	s.catalog.Activate(ctx)

	status, all := s.catalog.Snapshot()
	if status != StatusLoaded {
		return nil
	}

	st.Normalize()
	if q.Search != nil && *q.Search != st.Search {
		st.SetSearch(*q.Search)
	}
	if q.PerPage != nil && *q.PerPage != st.PageSize {
		if err := st.SetPageSize(*q.PerPage); err != nil {
			s.logger.Debug("page size ignored", map[string]interface{}{"per_page": *q.PerPage})
		}
	}
	if q.Page != nil {
		st.Page = *q.Page
	}

	view := paging.Paginate(Filter(all, st.Search), st)

	return &ListPage{
		View:      paging.Map(view, s.toCard),
		Search:    st.Search,
		PageSizes: paging.PageSizes,
	}
}

func (s *service) Detail(ctx context.Context, id string) (*CountryDetail, error) {
	country, err := s.client.ByCode(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch country %s: %w", id, err)
	}
	if country == nil {
		return nil, models.ErrRecordNotFound
	}

	detail := s.toDetail(country)
	if detail.ID == "" {
		detail.ID = id
	}
	return &detail, nil
}

func (s *service) toCard(c models.Country) CountryCard {
	id := c.Identifier()
	return CountryCard{
		ID:        id,
		Name:      c.CommonName(),
		Capital:   c.FirstCapital(),
		Region:    c.Region,
		FlagURL:   c.FlagPNG(),
		FlagAlt:   s.sanitizer.PlainText(c.FlagAlt()),
		DetailURL: "/countriesApi/" + id,
	}
}

func (s *service) toDetail(c *models.Country) CountryDetail {
	cur, _ := c.Currency(s.cfg.DetailCurrencyCode)

	d := CountryDetail{
		ID:             c.Identifier(),
		CommonName:     c.CommonName(),
		OfficialName:   c.OfficialName(),
		NativeName:     c.NativeOfficialName(s.cfg.DetailLanguage),
		CurrencyName:   cur.Name,
		CurrencySymbol: cur.Symbol,
		Capital:        c.FirstCapital(),
		Region:         c.Region,
		Subregion:      c.Subregion,
		Population:     formatter.Population(c.Population),
		Area:           formatter.Area(c.Area),
		Density:        formatter.Density(c.Population, c.Area),
		CallingCode:    formatter.CallingCode(c.CCA2),
		FlagURL:        c.FlagPNG(),
		FlagAlt:        c.OfficialName(),
		Languages:      c.LanguageNames(),
	}
	if cur.Name != "" || cur.Symbol != "" {
		d.CurrencyCode = s.cfg.DetailCurrencyCode
	}
	return d
}
