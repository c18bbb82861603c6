// Package ovh implements the OVHcloud Public Cloud inventory adapter. No Go
// SDK for OVHcloud exists in the example corpus (unlike AWS/Azure/GCP/
// Hetzner), so the Fetcher talks to the OVH REST API and the public
// service catalog directly over net/http, signing requests the way OVH's
// own API documentation describes. Ported from
// original_source/src/sc_crawler/vendors/ovh.py.
package ovh

import (
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/sparecores/sc-crawler/internal/vendors/cache"
)

// catalogAddon is one plan/addon entry in OVH's public service catalog
// response, trimmed to the fields this adapter reads.
type catalogAddon struct {
	PlanCode    string         `json:"planCode"`
	InvoiceName string         `json:"invoiceName"`
	Product     string         `json:"product"`
	Blobs       map[string]any `json:"blobs"`
	Pricings    []struct {
		Price        float64 `json:"price"`
		IntervalUnit string  `json:"intervalUnit"`
	} `json:"pricings"`
	Configurations []struct {
		Name   string   `json:"name"`
		Values []string `json:"values"`
	} `json:"configurations"`
}

type catalog struct {
	Addons []catalogAddon `json:"addons"`
}

type regionInfo struct {
	Name             string   `json:"name"`
	Datacenter       string   `json:"datacenter"`
	AvailabilityZone []string `json:"availabilityZones"`
}

// Fetcher is the raw-payload I/O surface the adapter needs. Kept separate
// from the normalize functions so tests can stub it without hitting the
// real OVH API.
type Fetcher interface {
	Regions(ctx context.Context) ([]string, error)
	Region(ctx context.Context, name string) (regionInfo, error)
	Catalog(ctx context.Context) (catalog, error)
}

type httpFetcher struct {
	endpoint    string
	appKey      string
	appSecret   string
	consumerKey string
	projectID   string
	subsidiary  string
	client      *http.Client
	cache       *cache.Cache
}

// NewHTTPFetcher builds the production Fetcher from OVH's documented
// service-account environment variables (spec.md §6.3). c may be nil to
// disable disk caching of catalog/region responses (spec.md §4.7).
func NewHTTPFetcher(c *cache.Cache) (Fetcher, error) {
	for _, ev := range []string{"OVH_ENDPOINT", "OVH_APPLICATION_KEY", "OVH_APPLICATION_SECRET", "OVH_CONSUMER_KEY", "OVH_PROJECT_ID"} {
		if os.Getenv(ev) == "" {
			return nil, fmt.Errorf("ovh: missing environment variable %s", ev)
		}
	}
	subsidiary := os.Getenv("OVH_SUBSIDIARY")
	if subsidiary == "" {
		subsidiary = "IE"
	}
	return &httpFetcher{
		endpoint:    os.Getenv("OVH_ENDPOINT"),
		appKey:      os.Getenv("OVH_APPLICATION_KEY"),
		appSecret:   os.Getenv("OVH_APPLICATION_SECRET"),
		consumerKey: os.Getenv("OVH_CONSUMER_KEY"),
		projectID:   os.Getenv("OVH_PROJECT_ID"),
		subsidiary:  subsidiary,
		client:      &http.Client{Timeout: 30 * time.Second},
		cache:       c,
	}, nil
}

// sign implements OVH's documented request-signing scheme:
// SHA1("$appSecret+$consumerKey+$method+$url+$body+$timestamp").
func (f *httpFetcher) sign(method, fullURL, body, timestamp string) string {
	h := sha1.New()
	io.WriteString(h, f.appSecret+"+"+f.consumerKey+"+"+method+"+"+fullURL+"+"+body+"+"+timestamp)
	return "$1$" + fmt.Sprintf("%x", h.Sum(nil))
}

func (f *httpFetcher) do(ctx context.Context, method, path string, out any) error {
	fullURL := f.endpoint + path
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req, err := http.NewRequestWithContext(ctx, method, fullURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Ovh-Application", f.appKey)
	req.Header.Set("X-Ovh-Consumer", f.consumerKey)
	req.Header.Set("X-Ovh-Timestamp", timestamp)
	req.Header.Set("X-Ovh-Signature", f.sign(method, fullURL, "", timestamp))

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("ovh: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("ovh: %s %s: status %d", method, path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (f *httpFetcher) Regions(ctx context.Context) ([]string, error) {
	return cache.Do(f.cache, cache.Key("ovh.Regions", f.projectID), func() ([]string, error) {
		var out []string
		err := f.do(ctx, http.MethodGet, "/cloud/project/"+f.projectID+"/region", &out)
		return out, err
	})
}

func (f *httpFetcher) Region(ctx context.Context, name string) (regionInfo, error) {
	return cache.Do(f.cache, cache.Key("ovh.Region", f.projectID, name), func() (regionInfo, error) {
		var out regionInfo
		err := f.do(ctx, http.MethodGet, "/cloud/project/"+f.projectID+"/region/"+name, &out)
		return out, err
	})
}

func (f *httpFetcher) Catalog(ctx context.Context) (catalog, error) {
	return cache.Do(f.cache, cache.Key("ovh.Catalog", f.subsidiary), func() (catalog, error) {
		var out catalog
		q := url.Values{"ovhSubsidiary": []string{f.subsidiary}}
		err := f.do(ctx, http.MethodGet, "/order/catalog/public/cloud?"+q.Encode(), &out)
		return out, err
	})
}
