package schema

import "github.com/sparecores/sc-crawler/pkg/scfields"

// Server is one instance/server type offered by a Vendor: its compute,
// memory, accelerator, storage, and networking shape. Hardware detail
// fields (Cpus, Gpus, cache sizes, flags) are populated or enriched later
// by inspector hydration (internal/inspector), not by the vendor adapter
// alone.
type Server struct {
	Meta
	VendorID         string                          `json:"vendor_id"`
	ServerID         string                          `json:"server_id"`
	Name             string                          `json:"name"`
	APIReference     string                          `json:"api_reference"`
	DisplayName      string                          `json:"display_name"`
	Description      *string                         `json:"description,omitempty"`
	Family           *string                         `json:"family,omitempty"`
	Vcpus            int                             `json:"vcpus"`
	Hypervisor       *string                         `json:"hypervisor,omitempty"`
	CpuAllocation    scfields.CpuAllocation          `json:"cpu_allocation"`
	CpuCores         *int                            `json:"cpu_cores,omitempty"`
	CpuSpeed         *float64                        `json:"cpu_speed,omitempty"`
	CpuArchitecture  scfields.CpuArchitecture        `json:"cpu_architecture"`
	CpuManufacturer  *string                         `json:"cpu_manufacturer,omitempty"`
	CpuFamily        *string                         `json:"cpu_family,omitempty"`
	CpuModel         *string                         `json:"cpu_model,omitempty"`
	CpuL1Cache       *int                            `json:"cpu_l1_cache,omitempty"`
	CpuL2Cache       *int                            `json:"cpu_l2_cache,omitempty"`
	CpuL3Cache       *int                            `json:"cpu_l3_cache,omitempty"`
	CpuFlags         []string                        `json:"cpu_flags"`
	Cpus             scfields.JSONColumn[[]scfields.Cpu] `json:"cpus"`
	MemoryAmount     int                             `json:"memory_amount"`
	MemoryGeneration scfields.MemoryGeneration       `json:"memory_generation"`
	MemorySpeed      *int                            `json:"memory_speed,omitempty"`
	MemoryEcc        *bool                           `json:"memory_ecc,omitempty"`
	GpuCount         float64                         `json:"gpu_count"`
	GpuMemoryMin     *int                            `json:"gpu_memory_min,omitempty"`
	GpuMemoryTotal   *int                            `json:"gpu_memory_total,omitempty"`
	GpuManufacturer  *string                         `json:"gpu_manufacturer,omitempty"`
	GpuFamily        *string                         `json:"gpu_family,omitempty"`
	GpuModel         *string                         `json:"gpu_model,omitempty"`
	Gpus             scfields.JSONColumn[[]scfields.Gpu] `json:"gpus"`
	StorageSize      int                             `json:"storage_size"`
	StorageType      scfields.StorageType            `json:"storage_type"`
	Storages         scfields.JSONColumn[[]scfields.Disk] `json:"storages"`
	NetworkSpeed     *float64                        `json:"network_speed,omitempty"`
	InboundTraffic   float64                         `json:"inbound_traffic"`
	OutboundTraffic  float64                         `json:"outbound_traffic"`
	Ipv4             int                             `json:"ipv4"`
}

func (s Server) TableName() string { return "server" }

func (s Server) PrimaryKeys() map[string]interface{} {
	return map[string]interface{}{"vendor_id": s.VendorID, "server_id": s.ServerID}
}

func (s Server) Attributes() map[string]interface{} {
	return map[string]interface{}{
		"name":              s.Name,
		"api_reference":     s.APIReference,
		"display_name":      s.DisplayName,
		"description":       s.Description,
		"family":            s.Family,
		"vcpus":             s.Vcpus,
		"hypervisor":        s.Hypervisor,
		"cpu_allocation":    s.CpuAllocation,
		"cpu_cores":         s.CpuCores,
		"cpu_speed":         s.CpuSpeed,
		"cpu_architecture":  s.CpuArchitecture,
		"cpu_manufacturer":  s.CpuManufacturer,
		"cpu_family":        s.CpuFamily,
		"cpu_model":         s.CpuModel,
		"cpu_l1_cache":      s.CpuL1Cache,
		"cpu_l2_cache":      s.CpuL2Cache,
		"cpu_l3_cache":      s.CpuL3Cache,
		"cpu_flags":         s.CpuFlags,
		"cpus":              s.Cpus.Data,
		"memory_amount":     s.MemoryAmount,
		"memory_generation": s.MemoryGeneration,
		"memory_speed":      s.MemorySpeed,
		"memory_ecc":        s.MemoryEcc,
		"gpu_count":         s.GpuCount,
		"gpu_memory_min":    s.GpuMemoryMin,
		"gpu_memory_total":  s.GpuMemoryTotal,
		"gpu_manufacturer":  s.GpuManufacturer,
		"gpu_family":        s.GpuFamily,
		"gpu_model":         s.GpuModel,
		"gpus":              s.Gpus.Data,
		"storage_size":      s.StorageSize,
		"storage_type":      s.StorageType,
		"storages":          s.Storages.Data,
		"network_speed":     s.NetworkSpeed,
		"inbound_traffic":   s.InboundTraffic,
		"outbound_traffic":  s.OutboundTraffic,
		"ipv4":              s.Ipv4,
		"status":            s.Status,
		"observed_at":       s.ObservedAt,
	}
}

func (s Server) Validate() error {
	verr := &ValidationError{Entity: "Server"}
	if s.VendorID == "" || s.ServerID == "" {
		verr.Add("vendor_id and server_id are required")
	}
	if s.Name == "" {
		verr.Add("name is required")
	}
	if s.Vcpus <= 0 {
		verr.Add("vcpus must be positive, got %d", s.Vcpus)
	}
	if s.MemoryAmount <= 0 {
		verr.Add("memory_amount must be positive, got %d", s.MemoryAmount)
	}
	if !s.CpuAllocation.Valid() {
		verr.Add("cpu_allocation %q is invalid", s.CpuAllocation)
	}
	if !s.CpuArchitecture.Valid() {
		verr.Add("cpu_architecture %q is invalid", s.CpuArchitecture)
	}
	if !s.MemoryGeneration.Valid() {
		verr.Add("memory_generation %q is invalid", s.MemoryGeneration)
	}
	if !s.StorageType.Valid() {
		verr.Add("storage_type %q is invalid", s.StorageType)
	}
	if s.GpuCount < 0 {
		verr.Add("gpu_count cannot be negative")
	}
	if len(s.Gpus.Data) > 0 && s.GpuMemoryTotal != nil {
		sum := 0
		for _, g := range s.Gpus.Data {
			sum += g.Memory
		}
		if sum != *s.GpuMemoryTotal {
			verr.Add("gpu_memory_total %d does not equal sum of per-GPU memory %d", *s.GpuMemoryTotal, sum)
		}
	}
	return verr.AsError()
}

// ServerScd is the SCD Type 2 companion of Server.
type ServerScd struct {
	Server
}

func (s ServerScd) TableName() string { return "server_scd" }

func (s ServerScd) PrimaryKeys() map[string]interface{} {
	return map[string]interface{}{
		"vendor_id":   s.VendorID,
		"server_id":   s.ServerID,
		"observed_at": s.ObservedAt,
	}
}
