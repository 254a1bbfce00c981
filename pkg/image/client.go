package image

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const endpoint = "https://api.unsplash.com/search/photos"

var (
	ErrDisabled  = errors.New("image search is not configured")
	ErrNoResults = errors.New("image search returned no photos")
)

type Client struct {
	accessKey  string
	httpClient *http.Client
}

func NewClient(accessKey string, timeout time.Duration) *Client {
	return &Client{
		accessKey:  accessKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Name() string {
	return "unsplash"
}

func (c *Client) Enabled() bool {
	return c.accessKey != ""
}

// Background returns the URL of the first landscape photo matching term.
func (c *Client) Background(ctx context.Context, term string) (string, error) {
	if !c.Enabled() {
		return "", ErrDisabled
	}

	params := url.Values{}
	params.Add("query", term)
	params.Add("per_page", "1")
	params.Add("orientation", "landscape")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("unsplash request: %w", err)
	}
	req.Header.Set("Authorization", "Client-ID "+c.accessKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("unsplash fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unsplash returned %d", resp.StatusCode)
	}

	var raw unsplashResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return "", fmt.Errorf("unsplash decode: %w", err)
	}

	if len(raw.Results) == 0 || raw.Results[0].URLs.Regular == "" {
		return "", ErrNoResults
	}

	return raw.Results[0].URLs.Regular, nil
}

type unsplashResponse struct {
	Results []unsplashPhoto `json:"results"`
}

type unsplashPhoto struct {
	URLs struct {
		Regular string `json:"regular"`
	} `json:"urls"`
}
