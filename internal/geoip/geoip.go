package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "https://ipapi.co"

// Client resolves an IP to city/country via ipapi.co. Lookups are always
// best-effort; callers substitute "Unknown" on failure.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    defaultBaseURL,
	}
}

// NewClientWithBaseURL exists for tests against a stub server.
func NewClientWithBaseURL(baseURL string) *Client {
	c := NewClient()
	c.baseURL = baseURL
	return c
}

func (c *Client) Lookup(ctx context.Context, ip string) (string, string, error) {
	url := fmt.Sprintf("%s/%s/json/", c.baseURL, ip)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("geolocation lookup returned status %d", resp.StatusCode)
	}

	var payload struct {
		City        string `json:"city"`
		CountryName string `json:"country_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", "", err
	}

	return payload.City, payload.CountryName, nil
}
