package countries

import (
	"context"

	"github.com/joefazee/atlas/internal/paging"
	"github.com/joefazee/atlas/models"
)

// Client defines the remote country data source
type Client interface {
	All(ctx context.Context) ([]models.Country, error)
	ByCode(ctx context.Context, code string) (*models.Country, error)
}

// Service defines the interface for country business logic
type Service interface {
	// List applies q to st and derives the current page. The page is nil
	// while the collection is still loading.
	List(ctx context.Context, st *paging.State, q ListQuery) *ListPage
	Detail(ctx context.Context, id string) (*CountryDetail, error)
}
