package schema

// Tables lists every live (non-SCD) entity in declaration order, mirroring
// original_source/src/sc_crawler/tables.py's module-level `tables` list.
// pkg/store uses this for DDL generation and whole-database hashing.
var Tables = []Record{
	Country{},
	ComplianceFramework{},
	Vendor{},
	VendorComplianceLink{},
	Region{},
	Zone{},
	Storage{},
	Server{},
	ServerPrice{},
	StoragePrice{},
	TrafficPrice{},
	Ipv4Price{},
	Benchmark{},
	BenchmarkScore{},
}

// ScdTables lists every SCD companion, mirroring
// original_source/src/sc_crawler/scd.py's `scd_tables` list comprehension.
// Benchmark and BenchmarkScore have no companion (spec.md §3.3); neither do
// the pure lookups Country, ComplianceFramework and Vendor.
var ScdTables = []Record{
	VendorComplianceLinkScd{},
	RegionScd{},
	ZoneScd{},
	StorageScd{},
	ServerScd{},
	ServerPriceScd{},
	StoragePriceScd{},
	TrafficPriceScd{},
	Ipv4PriceScd{},
}
