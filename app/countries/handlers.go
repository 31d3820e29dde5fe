package countries

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/atlas/app/api"
	"github.com/joefazee/atlas/app/web"
	"github.com/joefazee/atlas/internal/logger"
	"github.com/joefazee/atlas/internal/paging"
	"github.com/joefazee/atlas/internal/session"
	"github.com/joefazee/atlas/internal/validator"
	"github.com/joefazee/atlas/models"
)

const (
	listTitle   = "Countries Explorer"
	detailTitle = "Country Profile"
)

// Handler handles HTTP requests for countries
type Handler struct {
	service Service
	cfg     Config
	logger  logger.Logger
}

// NewHandler creates a new country handler
func NewHandler(service Service, cfg Config, log logger.Logger) *Handler {
	return &Handler{
		service: service,
		cfg:     cfg,
		logger:  log,
	}
}

// ListPage renders the searchable, paginated country grid. The list
// position lives in the visitor's session; invalid query values are ignored.
func (h *Handler) ListPage(c *gin.Context) {
	sess := session.FromContext(c)
	st := listState(sess)

	q, v := ParseListQuery(c.Request.URL.Query())
	if !v.Valid() {
		h.logger.Debug("ignoring invalid list query", map[string]interface{}{"errors": v.Errors})
	}

	page := h.service.List(c.Request.Context(), &st, q)
	if page == nil {
		p := web.NewPage(c, "Countries of the World", LoadingPage{Skeletons: h.cfg.SkeletonCount})
		p.Refresh = h.cfg.RefreshSeconds
		c.HTML(http.StatusOK, web.LoadingPage, p)
		return
	}

	saveListState(sess, st)
	c.HTML(http.StatusOK, web.ListPage, web.NewPage(c, listTitle, page))
}

// DetailPage renders one country. Any failure renders the page with empty fields.
func (h *Handler) DetailPage(c *gin.Context) {
	id := c.Param("id")
	detail := &CountryDetail{ID: id}

	if validator.IsCountryCode(id) {
		d, err := h.service.Detail(c.Request.Context(), id)
		if err != nil {
			h.logger.Error(err, map[string]interface{}{"op": "countries.detail", "id": id})
		} else {
			detail = d
		}
	} else {
		h.logger.Debug("invalid country id", map[string]interface{}{"id": id})
	}

	title := detailTitle
	if detail.OfficialName != "" {
		title = detail.OfficialName
	}
	c.HTML(http.StatusOK, web.DetailPage, web.NewPage(c, title, detail))
}

// GetCountries godoc
// @Summary List countries
// @Description Search and paginate the country collection. Responds 202 while the collection is loading.
// @Tags countries
// @Produce json
// @Param q query string false "Case-insensitive substring of the common name"
// @Param page query int false "Page number" minimum(1)
// @Param per_page query int false "Page size" Enums(8, 12, 16, 24)
// @Success 200 {object} api.Response{data=[]CountryCard,meta=api.PaginationMeta}
// @Success 202 {object} api.Response{data=api.LoadingData}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/countries [get]
func (h *Handler) GetCountries(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		api.ValidationErrorResponse(c, err.Error())
		return
	}

	st := paging.NewState()
	page := h.service.List(c.Request.Context(), &st, q)
	if page == nil {
		api.LoadingResponse(c, "Countries are still loading")
		return
	}

	v := page.View
	api.PaginatedResponse(c, "Countries retrieved successfully", v.Items, api.PaginationMeta{
		Page:       v.Page,
		PerPage:    v.PageSize,
		Total:      v.Total,
		TotalPages: v.TotalPages,
		From:       v.From,
		To:         v.To,
		Pages:      v.Pages,
		HasNext:    v.HasNext,
		HasPrev:    v.HasPrev,
	})
}

// GetCountry godoc
// @Summary Get country
// @Description Get detailed information about a country by numeric, alpha-2 or alpha-3 code
// @Tags countries
// @Produce json
// @Param id path string true "Country code"
// @Success 200 {object} api.Response{data=CountryDetail}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 502 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/countries/{id} [get]
func (h *Handler) GetCountry(c *gin.Context) {
	id := c.Param("id")
	if !validator.IsCountryCode(id) {
		api.ValidationErrorResponse(c, "Country id must be a numeric, alpha-2 or alpha-3 code")
		return
	}

	detail, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		if errors.Is(err, models.ErrRecordNotFound) {
			api.NotFoundResponse(c, "Country")
			return
		}
		api.UpstreamErrorResponse(c, "Failed to fetch country")
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Country retrieved successfully", detail)
}

func listState(s *session.Session) paging.State {
	st := paging.State{Search: s.State.Search, Page: s.State.Page, PageSize: s.State.PageSize}
	st.Normalize()
	return st
}

func saveListState(s *session.Session, st paging.State) {
	s.State.Search = st.Search
	s.State.Page = st.Page
	s.State.PageSize = st.PageSize
}
