package gcp

import "strings"

// componentPricing holds per-vCPU and per-GB-RAM hourly rates for a machine
// family, ported from original_source/src/sc_crawler/vendors/gcp.py's machine-family pricing table (us-central1 base
// rates). No Cloud Billing Catalog client is wired into this module (see
// DESIGN.md), so this component-rate estimate is the adapter's only
// pricing source rather than a fallback path as it is in original_source/src/sc_crawler/vendors/gcp.py.
type componentPricing struct {
	cpuPerHour float64
	memPerHour float64
}

var familyPricing = map[string]componentPricing{
	"n2":  {cpuPerHour: 0.031611, memPerHour: 0.004237},
	"n1":  {cpuPerHour: 0.031611, memPerHour: 0.004237},
	"e2":  {cpuPerHour: 0.021811, memPerHour: 0.002923},
	"n2d": {cpuPerHour: 0.027502, memPerHour: 0.003686},
	"c2":  {cpuPerHour: 0.03398, memPerHour: 0.004554},
	"c2d": {cpuPerHour: 0.02909, memPerHour: 0.003898},
	"c3":  {cpuPerHour: 0.03616, memPerHour: 0.00484},
	"c3d": {cpuPerHour: 0.03245, memPerHour: 0.00435},
	"c4":  {cpuPerHour: 0.03810, memPerHour: 0.00510},
	"h3":  {cpuPerHour: 0.03535, memPerHour: 0.00473},
	"m3":  {cpuPerHour: 0.03710, memPerHour: 0.00890},
	"n4":  {cpuPerHour: 0.02830, memPerHour: 0.00379},
	"t2d": {cpuPerHour: 0.027502, memPerHour: 0.003686},
	"t2a": {cpuPerHour: 0.0245, memPerHour: 0.00328},
	"a2":  {cpuPerHour: 0.031611, memPerHour: 0.004237},
	"a3":  {cpuPerHour: 0.031611, memPerHour: 0.004237},
	"g2":  {cpuPerHour: 0.031611, memPerHour: 0.004237},
}

// regionMultiplier adjusts base us-central1 pricing by region, ported from
// original_source/src/sc_crawler/vendors/gcp.py's region price multiplier table. Regions not listed use 1.0.
var regionMultiplier = map[string]float64{
	"us-central1":  1.00,
	"us-east1":     1.00,
	"us-east4":     1.10,
	"us-west1":     1.00,
	"us-west2":     1.20,
	"europe-west1": 1.10,
	"europe-west4": 1.10,
	"asia-east1":   1.10,
	"asia-south1":  1.08,
}

// gpuHourlyPrice maps GPU model names to per-GPU hourly rates, ported from
// original_source/src/sc_crawler/vendors/gcp.py's GPU pricing table.
var gpuHourlyPrice = map[string]float64{
	"nvidia-tesla-a100": 2.934,
	"nvidia-a100-80gb":  2.934,
	"nvidia-tesla-v100": 2.48,
	"nvidia-tesla-t4":   0.35,
	"nvidia-l4":         0.70,
}

// spotDiscount is the fraction off on-demand for preemptible/spot VMs, a
// flat approximation of original_source/src/sc_crawler/vendors/gcp.py's per-family spot-discount table
// (GCP preemptible pricing is a fixed ~60-91% discount depending on
// family; this adapter uses the conservative middle of that band).
const spotDiscount = 0.70

// estimatePrice applies the family's component rate plus any GPU surcharge,
// scaled by the region multiplier, ported from original_source/src/sc_crawler/vendors/gcp.py's pricing
// calculation in getGCPPricing.
func estimatePrice(family string, vcpus, memoryMiB int, gpuCount int, gpuModel string, region string) float64 {
	comp, ok := familyPricing[family]
	if !ok {
		comp = componentPricing{cpuPerHour: 0.03, memPerHour: 0.004}
	}
	mult := regionMultiplier[region]
	if mult == 0 {
		mult = 1.0
	}
	memGB := float64(memoryMiB) / 1024
	price := (comp.cpuPerHour*float64(vcpus) + comp.memPerHour*memGB) * mult
	if gpuCount > 0 {
		rate, ok := gpuHourlyPrice[strings.ToLower(gpuModel)]
		if ok {
			price += rate * float64(gpuCount)
		}
	}
	return price
}
