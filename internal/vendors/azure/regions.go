package azure

// regionMeta holds manual per-region facts armcompute's SKU listing doesn't
// carry: coordinates, opening year, green-energy flag, and the country the
// region's datacenter sits in. Same gap-filling idiom as the AWS adapter's
// regions.go (spec.md §5.G).
type regionMeta struct {
	countryID    string
	lat, lon     float64
	foundingYear int
	greenEnergy  bool
}

// azureRegions lists the subset of Azure regions this adapter knows how to
// describe; armcompute.NewResourceSKUsClient is queried once per entry here
// rather than discovered dynamically, since ResourceSKUs has no
// "list regions" operation of its own.
var azureRegions = map[string]regionMeta{
	"eastus":             {countryID: "US", lat: 37.3719, lon: -79.8164, foundingYear: 2014, greenEnergy: false},
	"eastus2":            {countryID: "US", lat: 36.6681, lon: -78.3889, foundingYear: 2015, greenEnergy: true},
	"westus2":            {countryID: "US", lat: 47.233, lon: -119.852, foundingYear: 2016, greenEnergy: true},
	"westeurope":         {countryID: "NL", lat: 52.3667, lon: 4.9, foundingYear: 2010, greenEnergy: true},
	"northeurope":        {countryID: "IE", lat: 53.3478, lon: -6.2597, foundingYear: 2010, greenEnergy: true},
	"uksouth":            {countryID: "GB", lat: 50.941, lon: -0.799, foundingYear: 2016, greenEnergy: false},
	"southeastasia":      {countryID: "SG", lat: 1.283, lon: 103.833, foundingYear: 2013, greenEnergy: false},
	"japaneast":          {countryID: "JP", lat: 35.68, lon: 139.77, foundingYear: 2014, greenEnergy: false},
	"australiaeast":      {countryID: "AU", lat: -33.86, lon: 151.2094, foundingYear: 2014, greenEnergy: false},
	"brazilsouth":        {countryID: "BR", lat: -23.55, lon: -46.633, foundingYear: 2014, greenEnergy: false},
}
