package schema

import "github.com/sparecores/sc-crawler/pkg/scfields"

// PriceFields is embedded by every price entity (spec.md §3.2): the billing
// unit, the flat/ceiling price, any upfront fee, an optional tiered price
// ladder, and the currency.
type PriceFields struct {
	Unit         scfields.PriceUnit   `json:"unit"`
	Price        float64              `json:"price"`
	PriceUpfront float64              `json:"price_upfront"`
	PriceTiered  []scfields.PriceTier `json:"price_tiered"`
	Currency     string               `json:"currency"`
}

func (p PriceFields) attrs() map[string]interface{} {
	return map[string]interface{}{
		"unit":          p.Unit,
		"price":         p.Price,
		"price_upfront": p.PriceUpfront,
		"price_tiered":  p.PriceTiered,
		"currency":      p.Currency,
	}
}

// validate checks invariants shared by every price entity: a valid unit, a
// non-negative price, and a tiered ladder sorted ascending by lower bound
// that covers a connected range when non-empty (spec.md §3.4 invariant 6).
func (p PriceFields) validate(verr *ValidationError) {
	if !p.Unit.Valid() {
		verr.Add("unit %q is invalid", p.Unit)
	}
	if p.Price < 0 {
		verr.Add("price cannot be negative")
	}
	if p.Currency == "" {
		verr.Add("currency is required")
	}
	var prevUpper *float64
	for i, tier := range p.PriceTiered {
		lower, err := tier.LowerValue()
		if err != nil {
			verr.Add("price_tiered[%d].lower: %v", i, err)
			continue
		}
		upper, err := tier.UpperValue()
		if err != nil {
			verr.Add("price_tiered[%d].upper: %v", i, err)
			continue
		}
		if lower > upper {
			verr.Add("price_tiered[%d] lower %v exceeds upper %v", i, lower, upper)
		}
		if prevUpper != nil && lower != *prevUpper {
			verr.Add("price_tiered[%d] lower %v does not connect to previous upper %v", i, lower, *prevUpper)
		}
		prevUpper = &upper
	}
}

// ServerPrice is the price of running a Server in a Region/Zone under a
// given Allocation method and operating system.
type ServerPrice struct {
	Meta
	PriceFields
	VendorID        string             `json:"vendor_id"`
	RegionID        string             `json:"region_id"`
	ZoneID          string             `json:"zone_id"`
	ServerID        string             `json:"server_id"`
	Allocation      scfields.Allocation `json:"allocation"`
	OperatingSystem string             `json:"operating_system"`
}

func (p ServerPrice) TableName() string { return "server_price" }

func (p ServerPrice) PrimaryKeys() map[string]interface{} {
	return map[string]interface{}{
		"vendor_id":  p.VendorID,
		"region_id":  p.RegionID,
		"zone_id":    p.ZoneID,
		"server_id":  p.ServerID,
		"allocation": p.Allocation,
	}
}

func (p ServerPrice) Attributes() map[string]interface{} {
	a := p.PriceFields.attrs()
	a["operating_system"] = p.OperatingSystem
	a["status"] = p.Status
	a["observed_at"] = p.ObservedAt
	return a
}

func (p ServerPrice) Validate() error {
	verr := &ValidationError{Entity: "ServerPrice"}
	if p.VendorID == "" || p.RegionID == "" || p.ZoneID == "" || p.ServerID == "" {
		verr.Add("vendor_id, region_id, zone_id and server_id are all required")
	}
	if !p.Allocation.Valid() {
		verr.Add("allocation %q is invalid", p.Allocation)
	}
	if p.OperatingSystem == "" {
		verr.Add("operating_system is required")
	}
	p.PriceFields.validate(verr)
	return verr.AsError()
}

// ServerPriceScd is the SCD Type 2 companion of ServerPrice.
type ServerPriceScd struct {
	ServerPrice
}

func (p ServerPriceScd) TableName() string { return "server_price_scd" }

func (p ServerPriceScd) PrimaryKeys() map[string]interface{} {
	pk := p.ServerPrice.PrimaryKeys()
	pk["observed_at"] = p.ObservedAt
	return pk
}

// StoragePrice is the price of a Storage offering in a given Region.
type StoragePrice struct {
	Meta
	PriceFields
	VendorID  string `json:"vendor_id"`
	RegionID  string `json:"region_id"`
	StorageID string `json:"storage_id"`
}

func (p StoragePrice) TableName() string { return "storage_price" }

func (p StoragePrice) PrimaryKeys() map[string]interface{} {
	return map[string]interface{}{
		"vendor_id":  p.VendorID,
		"region_id":  p.RegionID,
		"storage_id": p.StorageID,
	}
}

func (p StoragePrice) Attributes() map[string]interface{} {
	a := p.PriceFields.attrs()
	a["status"] = p.Status
	a["observed_at"] = p.ObservedAt
	return a
}

func (p StoragePrice) Validate() error {
	verr := &ValidationError{Entity: "StoragePrice"}
	if p.VendorID == "" || p.RegionID == "" || p.StorageID == "" {
		verr.Add("vendor_id, region_id and storage_id are all required")
	}
	p.PriceFields.validate(verr)
	return verr.AsError()
}

// StoragePriceScd is the SCD Type 2 companion of StoragePrice.
type StoragePriceScd struct {
	StoragePrice
}

func (p StoragePriceScd) TableName() string { return "storage_price_scd" }

func (p StoragePriceScd) PrimaryKeys() map[string]interface{} {
	pk := p.StoragePrice.PrimaryKeys()
	pk["observed_at"] = p.ObservedAt
	return pk
}

// TrafficPrice is the price of inbound or outbound network traffic in a
// given Region.
type TrafficPrice struct {
	Meta
	PriceFields
	VendorID  string                      `json:"vendor_id"`
	RegionID  string                      `json:"region_id"`
	Direction scfields.TrafficDirection   `json:"direction"`
}

func (p TrafficPrice) TableName() string { return "traffic_price" }

func (p TrafficPrice) PrimaryKeys() map[string]interface{} {
	return map[string]interface{}{
		"vendor_id": p.VendorID,
		"region_id": p.RegionID,
		"direction": p.Direction,
	}
}

func (p TrafficPrice) Attributes() map[string]interface{} {
	a := p.PriceFields.attrs()
	a["status"] = p.Status
	a["observed_at"] = p.ObservedAt
	return a
}

func (p TrafficPrice) Validate() error {
	verr := &ValidationError{Entity: "TrafficPrice"}
	if p.VendorID == "" || p.RegionID == "" {
		verr.Add("vendor_id and region_id are required")
	}
	if !p.Direction.Valid() {
		verr.Add("direction %q is invalid", p.Direction)
	}
	p.PriceFields.validate(verr)
	return verr.AsError()
}

// TrafficPriceScd is the SCD Type 2 companion of TrafficPrice.
type TrafficPriceScd struct {
	TrafficPrice
}

func (p TrafficPriceScd) TableName() string { return "traffic_price_scd" }

func (p TrafficPriceScd) PrimaryKeys() map[string]interface{} {
	pk := p.TrafficPrice.PrimaryKeys()
	pk["observed_at"] = p.ObservedAt
	return pk
}

// Ipv4Price is the price of a public IPv4 address in a given Region.
type Ipv4Price struct {
	Meta
	PriceFields
	VendorID string `json:"vendor_id"`
	RegionID string `json:"region_id"`
}

func (p Ipv4Price) TableName() string { return "ipv4_price" }

func (p Ipv4Price) PrimaryKeys() map[string]interface{} {
	return map[string]interface{}{"vendor_id": p.VendorID, "region_id": p.RegionID}
}

func (p Ipv4Price) Attributes() map[string]interface{} {
	a := p.PriceFields.attrs()
	a["status"] = p.Status
	a["observed_at"] = p.ObservedAt
	return a
}

func (p Ipv4Price) Validate() error {
	verr := &ValidationError{Entity: "Ipv4Price"}
	if p.VendorID == "" || p.RegionID == "" {
		verr.Add("vendor_id and region_id are required")
	}
	p.PriceFields.validate(verr)
	return verr.AsError()
}

// Ipv4PriceScd is the SCD Type 2 companion of Ipv4Price.
type Ipv4PriceScd struct {
	Ipv4Price
}

func (p Ipv4PriceScd) TableName() string { return "ipv4_price_scd" }

func (p Ipv4PriceScd) PrimaryKeys() map[string]interface{} {
	pk := p.Ipv4Price.PrimaryKeys()
	pk["observed_at"] = p.ObservedAt
	return pk
}
