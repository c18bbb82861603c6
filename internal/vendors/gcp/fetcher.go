// Package gcp implements the GCP Compute Engine inventory adapter: zone and
// machine type discovery via cloud.google.com/go/compute/apiv1, normalized
// into pkg/schema rows. Pricing is estimated from a component-rate table
// since no Cloud Billing Catalog client is wired (see DESIGN.md). Ported
// from original_source/src/sc_crawler/vendors/gcp.py, reusing its
// machine-family/GPU lookup tables, which that module hard-codes inline.
package gcp

import (
	"context"
	"fmt"
	"os"

	compute "cloud.google.com/go/compute/apiv1"
	"cloud.google.com/go/compute/apiv1/computepb"
	"google.golang.org/api/iterator"
)

// Fetcher is the raw-payload I/O surface the adapter needs. Kept separate
// from the normalize functions so tests can stub it without hitting the
// real GCP API.
type Fetcher interface {
	Zones(ctx context.Context, region string) ([]*computepb.Zone, error)
	MachineTypes(ctx context.Context, zone string) ([]*computepb.MachineType, error)
}

type sdkFetcher struct {
	project       string
	zonesClient   *compute.ZonesClient
	machineClient *compute.MachineTypesClient
}

// NewSDKFetcher builds the production Fetcher from the project id in
// GOOGLE_CLOUD_PROJECT/GCP_PROJECT and application-default credentials.
func NewSDKFetcher(ctx context.Context) (Fetcher, error) {
	project := os.Getenv("GOOGLE_CLOUD_PROJECT")
	if project == "" {
		project = os.Getenv("GCP_PROJECT")
	}
	if project == "" {
		return nil, fmt.Errorf("gcp: GOOGLE_CLOUD_PROJECT or GCP_PROJECT environment variable is required")
	}

	zonesClient, err := compute.NewZonesRESTClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("gcp: creating zones client: %w", err)
	}
	machineClient, err := compute.NewMachineTypesRESTClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("gcp: creating machine types client: %w", err)
	}

	return &sdkFetcher{project: project, zonesClient: zonesClient, machineClient: machineClient}, nil
}

func (f *sdkFetcher) Zones(ctx context.Context, region string) ([]*computepb.Zone, error) {
	filter := fmt.Sprintf("region eq .*/%s", region)
	req := &computepb.ListZonesRequest{Project: f.project, Filter: &filter}
	it := f.zonesClient.List(ctx, req)
	var out []*computepb.Zone
	for {
		zone, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("gcp: listing zones in %s: %w", region, err)
		}
		out = append(out, zone)
	}
	return out, nil
}

func (f *sdkFetcher) MachineTypes(ctx context.Context, zone string) ([]*computepb.MachineType, error) {
	req := &computepb.ListMachineTypesRequest{Project: f.project, Zone: zone}
	it := f.machineClient.List(ctx, req)
	var out []*computepb.MachineType
	for {
		mt, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("gcp: listing machine types in %s: %w", zone, err)
		}
		out = append(out, mt)
	}
	return out, nil
}
