// Package aws implements the AWS EC2 inventory adapter: region/zone/instance
// type/pricing discovery via aws-sdk-go-v2, normalized into pkg/schema rows.
// Ported from original_source/src/sc_crawler/vendors/aws.py, reusing the
// same region/credential resolution its boto3 session setup relies on.
package aws

import (
	"context"
	"fmt"

	awscfg "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/aws-sdk-go-v2/service/pricing"
	pricingtypes "github.com/aws/aws-sdk-go-v2/service/pricing/types"

	"github.com/sparecores/sc-crawler/internal/vendors/common"
)

// Fetcher is the raw-payload I/O surface InventoryServers and friends need.
// Kept separate from the normalize functions so tests can stub it without
// hitting the real AWS API (spec.md's "adapter functions are pure").
type Fetcher interface {
	Regions(ctx context.Context) ([]ec2types.Region, error)
	Zones(ctx context.Context, region string) ([]ec2types.AvailabilityZone, error)
	InstanceTypes(ctx context.Context, region string) ([]ec2types.InstanceTypeInfo, error)
	OnDemandPrices(ctx context.Context, region string) (map[string]float64, error)
	SpotPrices(ctx context.Context, region string) (map[string]float64, error)
}

// sdkFetcher is the production Fetcher, backed by a per-region ec2.Client
// (EC2 calls are region-scoped) and a single us-east-1 pricing.Client (the
// AWS Pricing API is only ever available there).
type sdkFetcher struct {
	newEC2  func(region string) (*ec2.Client, error)
	pricing *pricing.Client
}

// NewSDKFetcher builds the production Fetcher from default AWS credentials.
func NewSDKFetcher(ctx context.Context) (Fetcher, error) {
	pricingCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion("us-east-1"))
	if err != nil {
		return nil, fmt.Errorf("aws: loading pricing config: %w", err)
	}
	return &sdkFetcher{
		newEC2: func(region string) (*ec2.Client, error) {
			cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
			if err != nil {
				return nil, fmt.Errorf("aws: loading config for region %s: %w", region, err)
			}
			return ec2.NewFromConfig(cfg), nil
		},
		pricing: pricing.NewFromConfig(pricingCfg),
	}, nil
}

func (f *sdkFetcher) Regions(ctx context.Context) ([]ec2types.Region, error) {
	client, err := f.newEC2("us-east-1")
	if err != nil {
		return nil, err
	}
	var out []ec2types.Region
	err = common.Retry(ctx, func() error {
		resp, err := client.DescribeRegions(ctx, &ec2.DescribeRegionsInput{AllRegions: awscfg.Bool(false)})
		if err != nil {
			return err
		}
		out = resp.Regions
		return nil
	})
	return out, err
}

func (f *sdkFetcher) Zones(ctx context.Context, region string) ([]ec2types.AvailabilityZone, error) {
	client, err := f.newEC2(region)
	if err != nil {
		return nil, err
	}
	var out []ec2types.AvailabilityZone
	err = common.Retry(ctx, func() error {
		resp, err := client.DescribeAvailabilityZones(ctx, &ec2.DescribeAvailabilityZonesInput{
			Filters: []ec2types.Filter{{Name: awscfg.String("zone-type"), Values: []string{"availability-zone"}}},
		})
		if err != nil {
			return err
		}
		out = resp.AvailabilityZones
		return nil
	})
	return out, err
}

func (f *sdkFetcher) InstanceTypes(ctx context.Context, region string) ([]ec2types.InstanceTypeInfo, error) {
	client, err := f.newEC2(region)
	if err != nil {
		return nil, err
	}
	var out []ec2types.InstanceTypeInfo
	paginator := ec2.NewDescribeInstanceTypesPaginator(client, &ec2.DescribeInstanceTypesInput{})
	for paginator.HasMorePages() {
		var page *ec2.DescribeInstanceTypesOutput
		err := common.Retry(ctx, func() error {
			var err error
			page, err = paginator.NextPage(ctx)
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("aws: describing instance types in %s: %w", region, err)
		}
		out = append(out, page.InstanceTypes...)
	}
	return out, nil
}

func (f *sdkFetcher) OnDemandPrices(ctx context.Context, region string) (map[string]float64, error) {
	prices := make(map[string]float64)
	filters := []pricingtypes.Filter{
		{Type: pricingtypes.FilterTypeTermMatch, Field: awscfg.String("ServiceCode"), Value: awscfg.String("AmazonEC2")},
		{Type: pricingtypes.FilterTypeTermMatch, Field: awscfg.String("regionCode"), Value: awscfg.String(region)},
		{Type: pricingtypes.FilterTypeTermMatch, Field: awscfg.String("operatingSystem"), Value: awscfg.String("Linux")},
		{Type: pricingtypes.FilterTypeTermMatch, Field: awscfg.String("tenancy"), Value: awscfg.String("Shared")},
		{Type: pricingtypes.FilterTypeTermMatch, Field: awscfg.String("preInstalledSw"), Value: awscfg.String("NA")},
		{Type: pricingtypes.FilterTypeTermMatch, Field: awscfg.String("capacitystatus"), Value: awscfg.String("Used")},
	}
	input := &pricing.GetProductsInput{
		ServiceCode: awscfg.String("AmazonEC2"),
		Filters:     filters,
		MaxResults:  awscfg.Int32(100),
	}
	paginator := pricing.NewGetProductsPaginator(f.pricing, input)
	for paginator.HasMorePages() {
		var page *pricing.GetProductsOutput
		err := common.Retry(ctx, func() error {
			var err error
			page, err = paginator.NextPage(ctx)
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("aws: getting products for %s: %w", region, err)
		}
		for _, raw := range page.PriceList {
			instanceType, price, ok := parseOnDemandPriceListItem(raw)
			if !ok {
				continue
			}
			if existing, found := prices[instanceType]; !found || price < existing {
				prices[instanceType] = price
			}
		}
	}
	return prices, nil
}

func (f *sdkFetcher) SpotPrices(ctx context.Context, region string) (map[string]float64, error) {
	client, err := f.newEC2(region)
	if err != nil {
		return nil, err
	}
	prices := make(map[string]float64)
	paginator := ec2.NewDescribeSpotPriceHistoryPaginator(client, &ec2.DescribeSpotPriceHistoryInput{
		ProductDescriptions: []string{"Linux/UNIX"},
	})
	for paginator.HasMorePages() {
		var page *ec2.DescribeSpotPriceHistoryOutput
		err := common.Retry(ctx, func() error {
			var err error
			page, err = paginator.NextPage(ctx)
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("aws: describing spot price history in %s: %w", region, err)
		}
		for _, sp := range page.SpotPriceHistory {
			if sp.InstanceType == "" || sp.SpotPrice == nil {
				continue
			}
			instanceType := string(sp.InstanceType)
			// Spot history holds one entry per recent change; keep the
			// first (most recent, AWS returns newest-first) per type.
			if _, seen := prices[instanceType]; seen {
				continue
			}
			var price float64
			if _, err := fmt.Sscanf(*sp.SpotPrice, "%g", &price); err == nil {
				prices[instanceType] = price
			}
		}
	}
	return prices, nil
}
