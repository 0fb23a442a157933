package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"apartment-portal/internal/models"
)

// Filters holds the listing search parameters. Zero/nil fields are omitted
// from the request.
type Filters struct {
	Search    string
	Project   string
	MinPrice  *float64
	MaxPrice  *float64
	Bedrooms  *int
	Bathrooms *int
	Page      int
	Limit     int
}

// Values encodes the filters as URL query parameters, omitting absent fields.
func (f Filters) Values() url.Values {
	params := url.Values{}
	if f.Search != "" {
		params.Set("search", f.Search)
	}
	if f.Project != "" {
		params.Set("project", f.Project)
	}
	if f.MinPrice != nil {
		params.Set("minPrice", formatFloat(*f.MinPrice))
	}
	if f.MaxPrice != nil {
		params.Set("maxPrice", formatFloat(*f.MaxPrice))
	}
	if f.Bedrooms != nil {
		params.Set("bedrooms", strconv.Itoa(*f.Bedrooms))
	}
	if f.Bathrooms != nil {
		params.Set("bathrooms", strconv.Itoa(*f.Bathrooms))
	}
	if f.Page > 0 {
		params.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		params.Set("limit", strconv.Itoa(f.Limit))
	}
	return params
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Client is a typed HTTP client for the apartments API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the API at baseURL. The timeout applies to every
// request; a timeout is reported as server unavailability.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL + "/api/v1",
		http:    &http.Client{Timeout: timeout},
	}
}

// SearchApartments fetches one page of the filtered listing.
func (c *Client) SearchApartments(ctx context.Context, f Filters) (*models.PaginatedApartments, error) {
	var result models.PaginatedApartments
	endpoint := "/apartments"
	if q := f.Values().Encode(); q != "" {
		endpoint += "?" + q
	}
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetApartment fetches a single apartment by id.
func (c *Client) GetApartment(ctx context.Context, id string) (*models.Apartment, error) {
	var result models.Apartment
	if err := c.do(ctx, http.MethodGet, "/apartments/"+url.PathEscape(id), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetProjects fetches the distinct project names.
func (c *Client) GetProjects(ctx context.Context) ([]string, error) {
	var result []string
	if err := c.do(ctx, http.MethodGet, "/apartments/projects", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// CreateApartment submits a new apartment. A duplicate unit number surfaces
// as an APIError with status 409.
func (c *Client) CreateApartment(ctx context.Context, body any) (*models.Apartment, error) {
	var result models.Apartment
	if err := c.do(ctx, http.MethodPost, "/apartments", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		// Transport failure or timeout: no response at all.
		return &ServerUnavailableError{Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return &ServerUnavailableError{StatusCode: resp.StatusCode}
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errBody struct {
			Message string `json:"message"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil {
			apiErr.Message = errBody.Message
		}
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
