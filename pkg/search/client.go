package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	endpoint    = "https://www.googleapis.com/customsearch/v1"
	resultCount = 3
)

var (
	ErrDisabled  = errors.New("web search is not configured")
	ErrNoResults = errors.New("web search returned no items")
)

// Client fetches a few Google Custom Search results and flattens them into
// prompt context.
type Client struct {
	apiKey     string
	engineID   string
	httpClient *http.Client
}

func NewClient(apiKey, engineID string, timeout time.Duration) *Client {
	return &Client{
		apiKey:     apiKey,
		engineID:   engineID,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Name() string {
	return "google_search"
}

func (c *Client) Enabled() bool {
	return c.apiKey != "" && c.engineID != ""
}

// Context returns "title: snippet" blocks separated by a blank line.
func (c *Client) Context(ctx context.Context, query string) (string, error) {
	if !c.Enabled() {
		return "", ErrDisabled
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildURL(query), nil)
	if err != nil {
		return "", fmt.Errorf("search request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("search fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("search API returned %d", resp.StatusCode)
	}

	var raw cseResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return "", fmt.Errorf("search decode: %w", err)
	}

	if len(raw.Items) == 0 {
		return "", ErrNoResults
	}

	blocks := make([]string, 0, len(raw.Items))
	for _, item := range raw.Items {
		title := plainText(item.HTMLTitle, item.Title)
		snippet := plainText(item.HTMLSnippet, item.Snippet)
		blocks = append(blocks, title+": "+snippet)
	}

	return strings.Join(blocks, "\n\n"), nil
}

func (c *Client) buildURL(query string) string {
	params := url.Values{}
	params.Add("key", c.apiKey)
	params.Add("cx", c.engineID)
	params.Add("q", query)
	params.Add("num", strconv.Itoa(resultCount))
	return endpoint + "?" + params.Encode()
}

// plainText strips markup from the HTML variant of a field, falling back to
// the plain variant when the HTML one is missing or unparsable.
func plainText(html, fallback string) string {
	if html == "" {
		return strings.TrimSpace(fallback)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.TrimSpace(fallback)
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

type cseResponse struct {
	Items []cseItem `json:"items"`
}

type cseItem struct {
	Title       string `json:"title"`
	HTMLTitle   string `json:"htmlTitle"`
	Snippet     string `json:"snippet"`
	HTMLSnippet string `json:"htmlSnippet"`
	Link        string `json:"link"`
}
