// Package scfields defines the enumerations and JSON-valued nested types
// shared across the cross-vendor schema (pkg/schema). These are kept
// separate from the table definitions themselves so they can be embedded in
// several entities (Cpu/Gpu/Disk/PriceTier inside Server/price rows) without
// import cycles.
package scfields

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
)

// Status is the last known status of a resource.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// StorageType is the high-level category of a block storage offering.
type StorageType string

const (
	StorageHDD      StorageType = "HDD"
	StorageSSD      StorageType = "SSD"
	StorageNVMeSSD  StorageType = "NVME_SSD"
	StorageNetwork  StorageType = "NETWORK"
)

func (s StorageType) Valid() bool {
	switch s {
	case StorageHDD, StorageSSD, StorageNVMeSSD, StorageNetwork, "":
		return true
	}
	return false
}

// TrafficDirection is the direction of network traffic a TrafficPrice covers.
type TrafficDirection string

const (
	TrafficIn  TrafficDirection = "IN"
	TrafficOut TrafficDirection = "OUT"
)

func (d TrafficDirection) Valid() bool {
	return d == TrafficIn || d == TrafficOut
}

// CpuAllocation is the CPU allocation method a cloud vendor sells.
type CpuAllocation string

const (
	CPUShared    CpuAllocation = "SHARED"
	CPUBurstable CpuAllocation = "BURSTABLE"
	CPUDedicated CpuAllocation = "DEDICATED"
)

func (c CpuAllocation) Valid() bool {
	switch c {
	case CPUShared, CPUBurstable, CPUDedicated, "":
		return true
	}
	return false
}

// CpuArchitecture enumerates the supported CPU instruction-set architectures.
type CpuArchitecture string

const (
	ArchARM64    CpuArchitecture = "ARM64"
	ArchARM64Mac CpuArchitecture = "ARM64_MAC"
	ArchI386     CpuArchitecture = "I386"
	ArchX86_64   CpuArchitecture = "X86_64"
	ArchX86_64Mac CpuArchitecture = "X86_64_MAC"
)

func (a CpuArchitecture) Valid() bool {
	switch a {
	case ArchARM64, ArchARM64Mac, ArchI386, ArchX86_64, ArchX86_64Mac, "":
		return true
	}
	return false
}

// MemoryGeneration enumerates supported DDR generations.
type MemoryGeneration string

const (
	DDR3 MemoryGeneration = "DDR3"
	DDR4 MemoryGeneration = "DDR4"
	DDR5 MemoryGeneration = "DDR5"
)

func (m MemoryGeneration) Valid() bool {
	switch m {
	case DDR3, DDR4, DDR5, "":
		return true
	}
	return false
}

// Allocation is the purchasing model of a server instance.
type Allocation string

const (
	AllocationOnDemand Allocation = "ONDEMAND"
	AllocationReserved Allocation = "RESERVED"
	AllocationSpot     Allocation = "SPOT"
)

func (a Allocation) Valid() bool {
	switch a {
	case AllocationOnDemand, AllocationReserved, AllocationSpot:
		return true
	}
	return false
}

// PriceUnit is the billing unit of a price.
type PriceUnit string

const (
	UnitYear     PriceUnit = "YEAR"
	UnitMonth    PriceUnit = "MONTH"
	UnitHour     PriceUnit = "HOUR"
	UnitGiB      PriceUnit = "GIB"
	UnitGB       PriceUnit = "GB"
	UnitGBMonth  PriceUnit = "GB_MONTH"
)

func (u PriceUnit) Valid() bool {
	switch u {
	case UnitYear, UnitMonth, UnitHour, UnitGiB, UnitGB, UnitGBMonth:
		return true
	}
	return false
}

// Infinity is the JSON escape hatch for an unbounded price-tier edge, since
// standard JSON has no +/-Inf literal (spec: "Infinity" string round-trip).
const (
	PosInfinity = "Infinity"
	NegInfinity = "-Infinity"
)

// PriceTier is one piecewise-constant segment of a tiered price. Lower/Upper
// hold either a float64 or the string "Infinity"/"-Infinity".
type PriceTier struct {
	Lower interface{} `json:"lower"`
	Upper interface{} `json:"upper"`
	Price float64     `json:"price"`
}

// LowerValue returns Lower as a float, treating "-Infinity" as -Inf.
func (t PriceTier) LowerValue() (float64, error) {
	return numericOrInf(t.Lower)
}

// UpperValue returns Upper as a float, treating "Infinity" as +Inf.
func (t PriceTier) UpperValue() (float64, error) {
	return numericOrInf(t.Upper)
}

func numericOrInf(v interface{}) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case int:
		return float64(x), nil
	case json.Number:
		return x.Float64()
	case string:
		switch x {
		case PosInfinity:
			return posInf, nil
		case NegInfinity:
			return negInf, nil
		default:
			var f float64
			if _, err := fmt.Sscanf(x, "%g", &f); err != nil {
				return 0, fmt.Errorf("price tier bound %q is neither numeric nor Infinity", x)
			}
			return f, nil
		}
	default:
		return 0, fmt.Errorf("price tier bound has unsupported type %T", v)
	}
}

var (
	posInf = math.Inf(1)
	negInf = math.Inf(-1)
)

// Cpu is the per-socket CPU detail record embedded in Server.Cpus.
type Cpu struct {
	Manufacturer string   `json:"manufacturer,omitempty"`
	Family       string   `json:"family,omitempty"`
	Model        string   `json:"model,omitempty"`
	Cores        int      `json:"cores,omitempty"`
	Threads      int      `json:"threads,omitempty"`
	L1CacheSize  int      `json:"l1_cache_size,omitempty"`
	L2CacheSize  int      `json:"l2_cache_size,omitempty"`
	L3CacheSize  int      `json:"l3_cache_size,omitempty"`
	Microcode    string   `json:"microcode,omitempty"`
	Capabilities []string `json:"capabilities,omitempty"`
	Bugs         []string `json:"bugs,omitempty"`
	Bogomips     float64  `json:"bogomips,omitempty"`
}

// Gpu is the per-accelerator GPU detail record embedded in Server.Gpus.
type Gpu struct {
	Manufacturer string `json:"manufacturer"`
	Family       string `json:"family,omitempty"`
	Model        string `json:"model"`
	Memory       int    `json:"memory"`
	Firmware     string `json:"firmware,omitempty"`
}

// Disk is one physical/virtual disk attached to a Server, embedded in
// Server.Storages.
type Disk struct {
	Size        int         `json:"size"`
	StorageType StorageType `json:"storage_type"`
}

// JSONColumn adapts any JSON-serializable T to database/sql's Valuer/Scanner
// contract, the idiomatic way to store a JSON-typed column via database/sql
// without an ORM (modernc.org/sqlite has no native JSON column type, unlike
// PostgreSQL's jsonb).
type JSONColumn[T any] struct {
	Data T
}

// Scan implements sql.Scanner.
func (c *JSONColumn[T]) Scan(src interface{}) error {
	if src == nil {
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported JSON column source type %T", src)
	}
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, &c.Data)
}

// Value implements driver.Valuer.
func (c JSONColumn[T]) Value() (driver.Value, error) {
	b, err := json.Marshal(c.Data)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}
