// Package upcloud implements the runtime.Adapter for UpCloud.
//
// No Go SDK for UpCloud exists in the example corpus (the original Python
// crawler uses the upcloud_api PyPI package), so the Fetcher talks to
// UpCloud's documented REST API directly over net/http, authenticating with
// HTTP basic auth the same way the original's CloudManager does.
package upcloud

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/sparecores/sc-crawler/internal/vendors/cache"
)

const baseURL = "https://api.upcloud.com/1.3"

type zone struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Public      string `json:"public"`
}

type zonesResponse struct {
	Zones struct {
		Zone []zone `json:"zone"`
	} `json:"zones"`
}

// Fetcher retrieves raw inventory data from the UpCloud API.
type Fetcher interface {
	Zones(ctx context.Context) ([]zone, error)
}

type httpFetcher struct {
	username string
	password string
	client   *http.Client
	cache    *cache.Cache
}

// NewHTTPFetcher builds a Fetcher authenticated via the UPCLOUD_USERNAME and
// UPCLOUD_PASSWORD env vars, mirroring the original's _client(). c may be
// nil to disable disk caching of zone responses (spec.md §4.7).
func NewHTTPFetcher(c *cache.Cache) (Fetcher, error) {
	username, ok := os.LookupEnv("UPCLOUD_USERNAME")
	if !ok {
		return nil, fmt.Errorf("missing environment variable: UPCLOUD_USERNAME")
	}
	password, ok := os.LookupEnv("UPCLOUD_PASSWORD")
	if !ok {
		return nil, fmt.Errorf("missing environment variable: UPCLOUD_PASSWORD")
	}
	return &httpFetcher{username: username, password: password, client: http.DefaultClient, cache: c}, nil
}

func (f *httpFetcher) do(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+path, nil)
	if err != nil {
		return err
	}
	req.SetBasicAuth(f.username, f.password)
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("upcloud: request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upcloud: %s returned status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (f *httpFetcher) Zones(ctx context.Context) ([]zone, error) {
	return cache.Do(f.cache, cache.Key("upcloud.Zones"), func() ([]zone, error) {
		var out zonesResponse
		if err := f.do(ctx, "/zone", &out); err != nil {
			return nil, err
		}
		return out.Zones.Zone, nil
	})
}
