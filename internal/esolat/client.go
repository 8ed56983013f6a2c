// Package esolat fetches daily prayer tables from JAKIM's e-Solat API.
package esolat

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/masjidsite/internal/prayer"
)

const (
	DefaultBaseURL = "https://www.e-solat.gov.my"
	takwimPath     = "/index.php"
)

type Client struct {
	httpClient *resty.Client
}

// NewClient builds a client against baseURL with the given request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		SetHeader("Accept", "application/json")

	return &Client{httpClient: client}
}

// FetchToday requests period=today for zone. Only transport failures and
// non-2xx statuses are errors; an unsuccessful "status" in the body is left
// for prayer.Normalize to judge.
func (c *Client) FetchToday(ctx context.Context, zone string) (*prayer.ProviderResponse, error) {
	var out prayer.ProviderResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"r":      "esolatApi/TakwimSolat",
			"period": "today",
			"zone":   zone,
		}).
		SetResult(&out).
		ForceContentType("application/json").
		Get(takwimPath)
	if err != nil {
		return nil, fmt.Errorf("e-solat request for zone %s: %w", zone, err)
	}
	if resp.IsError() {
		log.Error().Int("status_code", resp.StatusCode()).Str("zone", zone).Msg("[esolat] non-success response")
		return nil, fmt.Errorf("e-solat returned %d for zone %s", resp.StatusCode(), zone)
	}

	log.Debug().Str("zone", zone).Str("status", out.Status).Int("days", len(out.PrayerTime)).Msg("[esolat] fetched")
	return &out, nil
}

var _ prayer.Provider = (*Client)(nil)
