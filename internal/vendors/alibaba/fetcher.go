// Package alibaba implements the runtime.Adapter for Alibaba Cloud ECS.
//
// Unlike OVH/UpCloud, Alibaba Cloud does have a real Go SDK in the example
// corpus (github.com/alibabacloud-go/ecs-20140526, used by the
// karpenter-provider-alicloud manifest), so the Fetcher wraps that SDK
// instead of hand-rolling HTTP, mirroring how the original Python crawler
// wraps aliyun-python-sdk-ecs. Ported from
// original_source/src/sc_crawler/vendors/alicloud.py.
package alibaba

import (
	"context"
	"fmt"
	"os"

	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	ecs "github.com/alibabacloud-go/ecs-20140526/v4/client"
	"github.com/alibabacloud-go/tea/tea"
)

// Fetcher is the raw-payload I/O surface the adapter needs. Kept separate
// from the normalize functions so tests can stub it without hitting the
// real Alibaba Cloud API.
type Fetcher interface {
	Regions(ctx context.Context) ([]*ecs.DescribeRegionsResponseBodyRegionsRegion, error)
	Zones(ctx context.Context, regionID string) ([]*ecs.DescribeZonesResponseBodyZonesZone, error)
	InstanceTypes(ctx context.Context, regionID string) ([]*ecs.DescribeInstanceTypesResponseBodyInstanceTypesInstanceType, error)
	InstancePrice(ctx context.Context, regionID, instanceType string) (price float32, currency string, err error)
	DiskPrice(ctx context.Context, regionID, diskCategory, performanceLevel string) (price float32, currency string, err error)
}

type sdkFetcher struct {
	accessKeyID     string
	accessKeySecret string
}

// NewSDKFetcher builds a Fetcher authenticated via the ALIYUN_ACCESS_KEY and
// ALIYUN_SECRET env vars, mirroring the original's get_client().
func NewSDKFetcher() (Fetcher, error) {
	keyID, ok := os.LookupEnv("ALIYUN_ACCESS_KEY")
	if !ok {
		return nil, fmt.Errorf("missing environment variable: ALIYUN_ACCESS_KEY")
	}
	secret, ok := os.LookupEnv("ALIYUN_SECRET")
	if !ok {
		return nil, fmt.Errorf("missing environment variable: ALIYUN_SECRET")
	}
	return &sdkFetcher{accessKeyID: keyID, accessKeySecret: secret}, nil
}

// client builds a region-scoped ECS client. The original reconnects a new
// AcsClient per region for zone/price queries (regional API endpoints), so
// this Fetcher does the same rather than trying to share one client.
func (f *sdkFetcher) client(regionID string) (*ecs.Client, error) {
	config := &openapi.Config{
		AccessKeyId:     tea.String(f.accessKeyID),
		AccessKeySecret: tea.String(f.accessKeySecret),
		RegionId:        tea.String(regionID),
		Endpoint:        tea.String(fmt.Sprintf("ecs.%s.aliyuncs.com", regionID)),
	}
	return ecs.NewClient(config)
}

func (f *sdkFetcher) Regions(ctx context.Context) ([]*ecs.DescribeRegionsResponseBodyRegionsRegion, error) {
	client, err := f.client("eu-central-1")
	if err != nil {
		return nil, fmt.Errorf("alibaba: building client: %w", err)
	}
	resp, err := client.DescribeRegions(&ecs.DescribeRegionsRequest{})
	if err != nil {
		return nil, fmt.Errorf("alibaba: describing regions: %w", err)
	}
	return resp.Body.Regions.Region, nil
}

func (f *sdkFetcher) Zones(ctx context.Context, regionID string) ([]*ecs.DescribeZonesResponseBodyZonesZone, error) {
	client, err := f.client(regionID)
	if err != nil {
		return nil, fmt.Errorf("alibaba: building client for %s: %w", regionID, err)
	}
	resp, err := client.DescribeZones(&ecs.DescribeZonesRequest{RegionId: tea.String(regionID)})
	if err != nil {
		return nil, fmt.Errorf("alibaba: describing zones in %s: %w", regionID, err)
	}
	return resp.Body.Zones.Zone, nil
}

func (f *sdkFetcher) InstanceTypes(ctx context.Context, regionID string) ([]*ecs.DescribeInstanceTypesResponseBodyInstanceTypesInstanceType, error) {
	client, err := f.client(regionID)
	if err != nil {
		return nil, fmt.Errorf("alibaba: building client for %s: %w", regionID, err)
	}
	resp, err := client.DescribeInstanceTypes(&ecs.DescribeInstanceTypesRequest{})
	if err != nil {
		return nil, fmt.Errorf("alibaba: describing instance types in %s: %w", regionID, err)
	}
	return resp.Body.InstanceTypes.InstanceType, nil
}

// InstancePrice queries the pay-as-you-go hourly price for one instance
// type in one region. The original's primary price source is the paginated
// QuerySkuPriceList bssopenapi endpoint, for which no Go SDK package exists
// in the corpus; this Fetcher instead uses the still-present (if
// "deprecated" per the original's own comment) per-instance DescribePrice
// call, which the ecs client already wired above covers directly. See
// DESIGN.md for the tradeoff.
func (f *sdkFetcher) InstancePrice(ctx context.Context, regionID, instanceType string) (float32, string, error) {
	client, err := f.client(regionID)
	if err != nil {
		return 0, "", fmt.Errorf("alibaba: building client for %s: %w", regionID, err)
	}
	resp, err := client.DescribePrice(&ecs.DescribePriceRequest{
		InstanceType:       tea.String(instanceType),
		PriceUnit:          tea.String("Hour"),
		SystemDiskCategory: tea.String("cloud_ssd"),
		SystemDiskSize:     tea.Int32(50),
	})
	if err != nil {
		return 0, "", fmt.Errorf("alibaba: pricing %s in %s: %w", instanceType, regionID, err)
	}
	price := resp.Body.PriceInfo.Price
	return *price.TradePrice, *price.Currency, nil
}

// diskPriceInstanceType is a common instance type available in most
// regions, used as a fixed anchor for pricing a data disk in isolation
// (ported from the original's DEFAULT_INSTANCE_TYPE).
const diskPriceInstanceType = "ecs.c6.large"

// DiskPrice prices a 2000 GiB data disk of the given category (and, for
// cloud_essd, performance level) attached to diskPriceInstanceType. 2000
// GiB satisfies every disk category's minimum size, including PL3's 1261
// GiB floor (ported from the original's hardcoded DataDisk1Size(2000)).
func (f *sdkFetcher) DiskPrice(ctx context.Context, regionID, diskCategory, performanceLevel string) (float32, string, error) {
	client, err := f.client(regionID)
	if err != nil {
		return 0, "", fmt.Errorf("alibaba: building client for %s: %w", regionID, err)
	}
	req := &ecs.DescribePriceRequest{
		PriceUnit:         tea.String("Hour"),
		InstanceType:      tea.String(diskPriceInstanceType),
		DataDisk1Size:     tea.Int32(2000),
		DataDisk1Category: tea.String(diskCategory),
	}
	if performanceLevel != "" {
		req.DataDisk1PerformanceLevel = tea.String(performanceLevel)
	}
	resp, err := client.DescribePrice(req)
	if err != nil {
		return 0, "", fmt.Errorf("alibaba: pricing disk %s in %s: %w", diskCategory, regionID, err)
	}
	for _, detail := range resp.Body.PriceInfo.Price.DetailInfos.DetailInfo {
		if detail.Resource != nil && (*detail.Resource == "systemDisk" || *detail.Resource == "dataDisk") {
			return *detail.TradePrice, *resp.Body.PriceInfo.Price.Currency, nil
		}
	}
	return 0, "", fmt.Errorf("alibaba: no dataDisk/systemDisk line item in price response for %s", diskCategory)
}
