package hetzner

// locationMeta holds manual per-location coordinates, ported from the
// original_source/src/sc_crawler/vendors/hcloud.py's `datacenters` dict in inventory_datacenters
// (keyed there by numeric datacenter id; keyed here by the API's stable
// location name since a location can host more than one datacenter id).
type locationMeta struct {
	lat, lon float64
}

var hetznerLocations = map[string]locationMeta{
	"nbg1": {lat: 49.4498349, lon: 11.0128772},  // Nuremberg
	"hel1": {lat: 60.3433291, lon: 25.02683},    // Helsinki
	"fsn1": {lat: 50.4793313, lon: 12.3331105},  // Falkenstein
	"ash":  {lat: 39.0176685, lon: -77.468102},  // Ashburn, VA
	"hil":  {lat: 45.558319, lon: -122.9306602}, // Hillsboro, OR
}
