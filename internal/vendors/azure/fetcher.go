// Package azure implements the Azure inventory adapter: VM size discovery
// via armcompute's ResourceSKUs API and retail pricing via the public Azure
// Retail Prices REST API. Ported from
// original_source/src/sc_crawler/vendors/azure.py, reusing its
// azure SDK client construction idiom from internal/cloud/azure.
package azure

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v4"

	"github.com/sparecores/sc-crawler/internal/vendors/common"
)

// retailPriceItem mirrors the fields of an Azure Retail Prices API item that
// the adapter actually consumes. Ported from original_source/src/sc_crawler/vendors/azure.py's retail price item shape.
type retailPriceItem struct {
	RetailPrice   float64 `json:"retailPrice"`
	ArmRegionName string  `json:"armRegionName"`
	MeterName     string  `json:"meterName"`
	ProductName   string  `json:"productName"`
	SkuName       string  `json:"skuName"`
	UnitOfMeasure string  `json:"unitOfMeasure"`
	ArmSkuName    string  `json:"armSkuName"`
}

type retailPriceResponse struct {
	Items        []retailPriceItem `json:"Items"`
	NextPageLink string            `json:"NextPageLink"`
}

// Fetcher is the raw-payload I/O surface the adapter needs. Kept separate
// from the normalize functions so tests can stub it without hitting the
// real Azure APIs.
type Fetcher interface {
	VMSizes(ctx context.Context, region string) ([]*armcompute.ResourceSKU, error)
	OnDemandPrices(ctx context.Context, region string) (map[string]float64, error)
	SpotPrices(ctx context.Context, region string) (map[string]float64, error)
}

const retailPricesURL = "https://prices.azure.com/api/retail/prices"

type sdkFetcher struct {
	skuClient  *armcompute.ResourceSKUsClient
	httpClient *http.Client
}

// NewSDKFetcher builds the production Fetcher from the subscription id in
// AZURE_SUBSCRIPTION_ID and the default Azure credential chain
// (azidentity.NewDefaultAzureCredential covers managed identity, az-cli
// login, and service-principal env vars in one call).
func NewSDKFetcher() (Fetcher, error) {
	subscriptionID := os.Getenv("AZURE_SUBSCRIPTION_ID")
	if subscriptionID == "" {
		return nil, fmt.Errorf("azure: AZURE_SUBSCRIPTION_ID environment variable is required")
	}
	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("azure: acquiring default credential: %w", err)
	}
	client, err := armcompute.NewResourceSKUsClient(subscriptionID, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("azure: creating resource SKUs client: %w", err)
	}
	return &sdkFetcher{
		skuClient:  client,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

func (f *sdkFetcher) VMSizes(ctx context.Context, region string) ([]*armcompute.ResourceSKU, error) {
	var out []*armcompute.ResourceSKU
	filter := fmt.Sprintf("location eq '%s'", region)
	pager := f.skuClient.NewListPager(&armcompute.ResourceSKUsClientListOptions{Filter: &filter})
	for pager.More() {
		var page armcompute.ResourceSKUsClientListResponse
		err := common.Retry(ctx, func() error {
			var err error
			page, err = pager.NextPage(ctx)
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("azure: listing VM sizes in %s: %w", region, err)
		}
		for _, sku := range page.Value {
			if sku.ResourceType == nil || *sku.ResourceType != "virtualMachines" {
				continue
			}
			out = append(out, sku)
		}
	}
	return out, nil
}

func (f *sdkFetcher) OnDemandPrices(ctx context.Context, region string) (map[string]float64, error) {
	return f.fetchRetailPrices(ctx, region, false)
}

func (f *sdkFetcher) SpotPrices(ctx context.Context, region string) (map[string]float64, error) {
	return f.fetchRetailPrices(ctx, region, true)
}

// fetchRetailPrices pages through the public Azure Retail Prices API,
// ported from original_source/src/sc_crawler/vendors/azure.py's inventory_server_prices/inventory_server_prices_spot, generalized with a spotOnly
// flag so the same request shape serves both pricing stages.
func (f *sdkFetcher) fetchRetailPrices(ctx context.Context, region string, spotOnly bool) (map[string]float64, error) {
	prices := make(map[string]float64)
	priceType := "Consumption"
	filter := fmt.Sprintf(
		"serviceName eq 'Virtual Machines' and armRegionName eq '%s' and priceType eq '%s' and currencyCode eq 'USD'",
		region, priceType,
	)

	const maxPages = 100
	nextURL := fmt.Sprintf("%s?$filter=%s", retailPricesURL, url.QueryEscape(filter))

	for page := 0; nextURL != "" && page < maxPages; page++ {
		var body []byte
		err := common.Retry(ctx, func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, nextURL, nil)
			if err != nil {
				return err
			}
			resp, err := f.httpClient.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			b, err := io.ReadAll(resp.Body)
			if err != nil {
				return err
			}
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("retail prices returned status %d: %s", resp.StatusCode, string(b))
			}
			body = b
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("azure: fetching retail prices for %s: %w", region, err)
		}

		var priceResp retailPriceResponse
		if err := json.Unmarshal(body, &priceResp); err != nil {
			return nil, fmt.Errorf("azure: decoding retail prices response: %w", err)
		}

		for _, item := range priceResp.Items {
			if item.UnitOfMeasure != "1 Hour" {
				continue
			}
			if strings.Contains(item.ProductName, "Windows") {
				continue
			}
			isSpotItem := strings.Contains(item.MeterName, "Spot") || strings.Contains(item.SkuName, "Spot")
			if isSpotItem != spotOnly {
				continue
			}
			if item.ArmSkuName == "" {
				continue
			}
			if existing, ok := prices[item.ArmSkuName]; !ok || item.RetailPrice < existing {
				prices[item.ArmSkuName] = item.RetailPrice
			}
		}

		nextURL = priceResp.NextPageLink
	}

	return prices, nil
}
