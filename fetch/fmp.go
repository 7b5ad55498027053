package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/avh/trend/shared"
	"github.com/tidwall/gjson"
)

const (
	// BaseURL is the FMP API base url.
	BaseURL = "https://financialmodelingprep.com/stable"
)

// FMPConfig represents the configuration for the FMP client.
type FMPConfig struct {
	// APIKey is the FMP API Key.
	APIKey string
	// BaseURL is the API base url.
	BaseURL string
}

// FMPClient represents the Financial Modeling Preparation (FMP) API client.
// The client is safe for concurrent use.
type FMPClient struct {
	cfg   *FMPConfig
	httpc http.Client
}

// Ensure the FMPClient implements the BarSource interface.
var _ shared.BarSource = (*FMPClient)(nil)

// NewFMPClient instantiates a new FMP client.
func NewFMPClient(cfg *FMPConfig) (*FMPClient, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("fmp base url cannot be an empty string")
	}

	return &FMPClient{
		cfg:   cfg,
		httpc: http.Client{Timeout: time.Second * 5},
	}, nil
}

// formURL creates full urls including parameters for the api. The buffer is
// call-local, concurrent fetches never share url state.
func (c *FMPClient) formURL(path string, params string) string {
	var buf bytes.Buffer
	buf.Grow(len(c.cfg.BaseURL) + len(path) + len(params) + 1)
	buf.WriteString(c.cfg.BaseURL)
	buf.WriteString(path)
	buf.WriteString("?")
	buf.WriteString(params)

	return buf.String()
}

// ParseBars parses daily bars from the provided json data.
func ParseBars(data []gjson.Result) ([]shared.Bar, error) {
	bars := make([]shared.Bar, 0, len(data))

	for idx := range data {
		var bar shared.Bar

		bar.Open = data[idx].Get("open").Float()
		bar.Low = data[idx].Get("low").Float()
		bar.High = data[idx].Get("high").Float()
		bar.Close = data[idx].Get("close").Float()
		bar.Volume = data[idx].Get("volume").Float()

		dt, err := time.Parse(shared.DateLayout, data[idx].Get("date").String())
		if err != nil {
			return nil, fmt.Errorf("parsing bar date: %w", err)
		}

		bar.Date = dt
		bars = append(bars, bar)
	}

	return bars, nil
}

// FetchDailyHistorical fetches daily end-of-day historical market data for
// the provided symbol, oldest first.
func (c *FMPClient) FetchDailyHistorical(ctx context.Context, symbol string, lookback int) ([]shared.Bar, error) {
	const dailyHistoricalPath = "/historical-price-eod/full"

	params := url.Values{}
	params.Add("symbol", symbol)
	params.Add("apikey", c.cfg.APIKey)
	if lookback > 0 {
		start := time.Now().AddDate(0, 0, -lookback)
		params.Add("from", start.Format(shared.DateLayout))
	}

	formedURL := c.formURL(dailyHistoricalPath, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, formedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating daily historical request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching daily historical data for %s: %w", symbol, err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching daily historical data for %s: status %s", symbol, strconv.Itoa(resp.StatusCode))
	}

	data := gjson.ParseBytes(body).Array()

	bars, err := ParseBars(data)
	if err != nil {
		return nil, fmt.Errorf("parsing bars for %s: %w", symbol, err)
	}

	return bars, nil
}
