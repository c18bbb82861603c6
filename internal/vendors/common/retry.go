// Package common holds the small pieces every vendor adapter shares: a
// retry wrapper for transient SDK/HTTP errors and the synthesized-zone
// helper for providers with no zone concept of their own.
package common

import (
	"context"

	"github.com/cenkalti/backoff/v4"

	"github.com/sparecores/sc-crawler/pkg/schema"
)

// Retry runs fn with exponential backoff, honoring ctx cancellation. Vendor
// Fetchers wrap their own SDK/HTTP calls in this rather than retrying
// inside the SDK client itself, matching how the teacher's
// internal/cloud/aws/commitments.go wraps individual AWS calls rather than
// configuring retries at the client level.
func Retry(ctx context.Context, fn func() error) error {
	b := backoff.WithContext(backoff.NewExponentialBackOff(), ctx)
	return backoff.Retry(fn, b)
}

// SingleZone returns the one Zone to use for vendors with no
// availability-zone concept of their own (spec.md §4.4: "providers without
// a zone concept get a synthesized 1:1 dummy zone"). The zone id and name
// mirror the region's own, matching
// original_source/src/sc_crawler/vendors/*.py's zone-less adapters, which
// reuse the region identifier as the sole zone identifier.
func SingleZone(vendorID string, r schema.Region) schema.Zone {
	return schema.Zone{
		VendorID:     vendorID,
		RegionID:     r.RegionID,
		ZoneID:       r.RegionID,
		Name:         r.Name,
		APIReference: r.APIReference,
		DisplayName:  r.DisplayName,
	}
}
