package market

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	_ "golang.org/x/image/webp"
)

const (
	// DefaultBaseURL is the CoinGecko v3 api base url.
	DefaultBaseURL = "https://api.coingecko.com/api/v3"

	marketsPath = "/coins/markets"
	// PageSize is the number of coins requested.
	PageSize = 10
	// maxErrBody caps how much of an error response is kept for diagnostics.
	maxErrBody = 512
)

// Fetcher fetches the top coins by market cap.
type Fetcher interface {
	FetchTopCoins(ctx context.Context) ([]CoinMarketEntry, error)
}

// ImageFetcher fetches coin logos.
type ImageFetcher interface {
	FetchImage(ctx context.Context, imageURL string) (image.Image, error)
}

// ClientConfig represents the configuration for the market data client.
type ClientConfig struct {
	// BaseURL is the market data api base url.
	BaseURL string
	// APIKey is the CoinGecko demo api key, sent even when empty.
	APIKey string
	// Timeout bounds each request, zero means no timeout.
	Timeout time.Duration
}

// Client is the CoinGecko market data client.
type Client struct {
	cfg   *ClientConfig
	httpc *http.Client
}

// Ensure the client implements the fetcher interfaces.
var _ Fetcher = (*Client)(nil)
var _ ImageFetcher = (*Client)(nil)

// NewClient instantiates a new market data client.
func NewClient(cfg *ClientConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	return &Client{
		cfg:   cfg,
		httpc: &http.Client{Timeout: cfg.Timeout},
	}
}

// marketsURL forms the url for the top coins listing.
func (c *Client) marketsURL() string {
	params := url.Values{}
	params.Add("vs_currency", "usd")
	params.Add("order", "market_cap_desc")
	params.Add("per_page", fmt.Sprint(PageSize))
	params.Add("page", "1")
	params.Add("sparkline", "true")
	params.Add("x_cg_demo_api_key", c.cfg.APIKey)

	return strings.TrimSuffix(c.cfg.BaseURL, "/") + marketsPath + "?" + params.Encode()
}

// get performs a GET request and returns the response body of a successful response.
func (c *Client) get(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBody))
		return nil, fmt.Errorf("API error: %s - %s", resp.Status, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return body, nil
}

// FetchTopCoins fetches the top coins by market cap along with their 7 day sparklines.
func (c *Client) FetchTopCoins(ctx context.Context) ([]CoinMarketEntry, error) {
	body, err := c.get(ctx, c.marketsURL())
	if err != nil {
		return nil, fmt.Errorf("fetching top coins: %w", err)
	}

	coins, err := ParseCoins(body)
	if err != nil {
		return nil, fmt.Errorf("parsing top coins: %w", err)
	}

	return coins, nil
}

// FetchImage downloads and decodes the image at the provided url.
func (c *Client) FetchImage(ctx context.Context, imageURL string) (image.Image, error) {
	body, err := c.get(ctx, imageURL)
	if err != nil {
		return nil, fmt.Errorf("fetching image %s: %w", imageURL, err)
	}

	img, _, err := image.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("decoding image %s: %w", imageURL, err)
	}

	return img, nil
}
