package schema

import "github.com/sparecores/sc-crawler/pkg/scfields"

// Storage is a block-storage offering of a Vendor, independent of any
// particular Region (availability is expressed through StoragePrice).
type Storage struct {
	Meta
	VendorID      string                `json:"vendor_id"`
	StorageID     string                `json:"storage_id"`
	Name          string                `json:"name"`
	Description   *string               `json:"description,omitempty"`
	StorageType   scfields.StorageType  `json:"storage_type"`
	MaxIops       *int                  `json:"max_iops,omitempty"`
	MaxThroughput *int                  `json:"max_throughput,omitempty"`
	MinSize       *int                  `json:"min_size,omitempty"`
	MaxSize       *int                  `json:"max_size,omitempty"`
}

func (s Storage) TableName() string { return "storage" }

func (s Storage) PrimaryKeys() map[string]interface{} {
	return map[string]interface{}{"vendor_id": s.VendorID, "storage_id": s.StorageID}
}

func (s Storage) Attributes() map[string]interface{} {
	return map[string]interface{}{
		"name":           s.Name,
		"description":    s.Description,
		"storage_type":   s.StorageType,
		"max_iops":       s.MaxIops,
		"max_throughput": s.MaxThroughput,
		"min_size":       s.MinSize,
		"max_size":       s.MaxSize,
		"status":         s.Status,
		"observed_at":    s.ObservedAt,
	}
}

func (s Storage) Validate() error {
	verr := &ValidationError{Entity: "Storage"}
	if s.VendorID == "" || s.StorageID == "" {
		verr.Add("vendor_id and storage_id are required")
	}
	if s.Name == "" {
		verr.Add("name is required")
	}
	if !s.StorageType.Valid() {
		verr.Add("storage_type %q is invalid", s.StorageType)
	}
	if s.MinSize != nil && s.MaxSize != nil && *s.MinSize > *s.MaxSize {
		verr.Add("min_size %d exceeds max_size %d", *s.MinSize, *s.MaxSize)
	}
	return verr.AsError()
}

// StorageScd is the SCD Type 2 companion of Storage.
type StorageScd struct {
	Storage
}

func (s StorageScd) TableName() string { return "storage_scd" }

func (s StorageScd) PrimaryKeys() map[string]interface{} {
	return map[string]interface{}{
		"vendor_id":   s.VendorID,
		"storage_id":  s.StorageID,
		"observed_at": s.ObservedAt,
	}
}
