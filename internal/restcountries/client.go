// Package restcountries is a small client for the public REST Countries API
// (https://restcountries.com). It performs exactly the requests it is asked
// for: no retries, no rate limiting, no caching.
package restcountries

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/joefazee/atlas/models"
)

// Config holds the upstream API settings
type Config struct {
	BaseURL string        `env:"RESTCOUNTRIES_BASE_URL" env-default:"https://restcountries.com/v3.1" validate:"required,url"`
	Timeout time.Duration `env:"RESTCOUNTRIES_TIMEOUT" env-default:"15s" validate:"gt=0"`
	// ListFields limits the /all response; the API rejects /all without it.
	ListFields []string `env:"RESTCOUNTRIES_LIST_FIELDS" env-separator:"," env-default:"name,cca2,cca3,ccn3,capital,region,flags"`
}

// Client fetches country records.
type Client struct {
	httpClient *http.Client
	baseURL    string
	listFields []string
}

// NewClient returns a client for cfg. A nil httpClient gets one with cfg.Timeout.
func NewClient(cfg Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		listFields: cfg.ListFields,
	}
}

// All fetches the whole collection
func (c *Client) All(ctx context.Context) ([]models.Country, error) {
	endpoint := c.baseURL + "/all"
	if len(c.listFields) > 0 {
		endpoint += "?fields=" + url.QueryEscape(strings.Join(c.listFields, ","))
	}

	var countries []models.Country
	if err := c.getJSON(ctx, endpoint, &countries); err != nil {
		return nil, err
	}
	return countries, nil
}

// ByCode fetches the record for a numeric, alpha-2 or alpha-3 code. The API
// answers with a one-element array; its only element is returned.
func (c *Client) ByCode(ctx context.Context, code string) (*models.Country, error) {
	endpoint := fmt.Sprintf("%s/alpha/%s", c.baseURL, url.PathEscape(code))

	var countries []models.Country
	if err := c.getJSON(ctx, endpoint, &countries); err != nil {
		return nil, err
	}
	if len(countries) == 0 {
		return nil, models.ErrRecordNotFound
	}
	return &countries[0], nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: %s returned %s: %s", models.ErrUpstream, req.URL.Path, resp.Status, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to parse country data: %w", err)
	}
	return nil
}
