package ovh

// datacenterMeta holds manual per-datacenter geography the OVH region API
// doesn't expose, ported from original_source/src/sc_crawler/vendors/ovh.py's region_country_mapping/
// region_coordinates/region_addresses/region_zip_codes dicts (trimmed to
// the handful of fields this schema carries).
type datacenterMeta struct {
	countryID string
	city      string
	lat, lon  float64
}

var ovhDatacenters = map[string]datacenterMeta{
	"SBG": {"FR", "Strasbourg", 48.5854388, 7.7974307},
	"GRA": {"FR", "Gravelines", 51.0166852, 2.1551437},
	"RBX": {"FR", "Roubaix", 50.691834, 3.2003148},
	"PAR": {"FR", "Paris", 48.8885363, 2.3755977},
	"ERI": {"GB", "London", 51.4915264, 0.1668186},
	"LIM": {"DE", "Frankfurt", 50.1109221, 8.6821267},
	"WAW": {"PL", "Warsaw", 52.2077264, 20.8080621},
	"DE":  {"DE", "Frankfurt", 50.1109221, 8.6821267},
	"UK":  {"GB", "London", 51.4915264, 0.1668186},
	"BHS": {"CA", "Montreal", 45.3093037, -73.8965535},
	"TOR": {"CA", "Toronto", 43.4273216, -80.3726843},
	"HIL": {"US", "Seattle", 45.520137, -122.9898308},
	"VIN": {"US", "Washington DC", 38.7474561, -77.6744531},
	"SGP": {"SG", "Singapore", 1.3177101, 103.893902},
	"SYD": {"AU", "Sydney", -33.8727409, 151.2057136},
	"MUM": {"IN", "Mumbai", 19.0824822, 72.7141328},
}
