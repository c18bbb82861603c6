package aws

// regionMeta holds manual per-region facts the EC2 API itself doesn't
// expose: coordinates, the year AWS opened the region, and a green-energy
// flag. Ported from the kind of manual lookup table
// original_source/metadata/location.py's sibling per-vendor modules
// maintain for the same gap. Regions AWS hasn't opened yet, or that this
// table hasn't been extended to cover, get zero values (omitted from the
// Server/Region row rather than guessed).
type regionMeta struct {
	lat, lon     float64
	foundingYear int
	greenEnergy  bool
}

var awsRegionMeta = map[string]regionMeta{
	"us-east-1":      {lat: 38.9519, lon: -77.4480, foundingYear: 2006, greenEnergy: false},
	"us-east-2":      {lat: 40.4173, lon: -82.9071, foundingYear: 2016, greenEnergy: true},
	"us-west-1":      {lat: 37.3541, lon: -121.9552, foundingYear: 2009, greenEnergy: false},
	"us-west-2":      {lat: 45.8399, lon: -119.7006, foundingYear: 2011, greenEnergy: true},
	"eu-west-1":      {lat: 53.4129, lon: -8.2439, foundingYear: 2007, greenEnergy: true},
	"eu-west-2":      {lat: 51.5074, lon: -0.1278, foundingYear: 2016, greenEnergy: false},
	"eu-central-1":   {lat: 50.1109, lon: 8.6821, foundingYear: 2014, greenEnergy: true},
	"ap-southeast-1": {lat: 1.3521, lon: 103.8198, foundingYear: 2010, greenEnergy: false},
	"ap-southeast-2": {lat: -33.8688, lon: 151.2093, foundingYear: 2012, greenEnergy: false},
	"ap-northeast-1": {lat: 35.6762, lon: 139.6503, foundingYear: 2011, greenEnergy: false},
	"sa-east-1":      {lat: -23.5505, lon: -46.6333, foundingYear: 2011, greenEnergy: false},
}
