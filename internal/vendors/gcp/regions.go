package gcp

// regionMeta holds manual per-region facts the Compute API doesn't expose
// directly: coordinates, opening year, green-energy flag, and HQ country.
// Same gap-filling idiom as the AWS/Azure adapters' regions.go (spec.md
// §5.G).
type regionMeta struct {
	countryID    string
	lat, lon     float64
	foundingYear int
	greenEnergy  bool
}

var gcpRegions = map[string]regionMeta{
	"us-central1":  {countryID: "US", lat: 41.2619, lon: -95.8608, foundingYear: 2015, greenEnergy: true},
	"us-east1":     {countryID: "US", lat: 33.1960, lon: -80.0131, foundingYear: 2015, greenEnergy: true},
	"us-west1":     {countryID: "US", lat: 45.5946, lon: -121.1787, foundingYear: 2016, greenEnergy: true},
	"europe-west1": {countryID: "BE", lat: 50.4710, lon: 3.8183, foundingYear: 2015, greenEnergy: true},
	"europe-west4": {countryID: "NL", lat: 53.4386, lon: 6.8355, foundingYear: 2018, greenEnergy: true},
	"asia-east1":   {countryID: "TW", lat: 24.0717, lon: 120.5624, foundingYear: 2016, greenEnergy: false},
	"asia-south1":  {countryID: "IN", lat: 19.0760, lon: 72.8777, foundingYear: 2017, greenEnergy: false},
}
