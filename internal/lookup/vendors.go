package lookup

import "github.com/sparecores/sc-crawler/pkg/schema"

// Vendors declares the static Vendor record for each of the seven curated
// providers, keyed by vendor id. AWS and GCP are ported directly from
// original_source/src/sc_crawler/vendors/vendors.py; the rest are
// synthesized analogously from public vendor facts (homepage, HQ address,
// founding year) since the original only curated AWS/GCP by the time this
// was ported.
var Vendors = map[string]schema.Vendor{
	"aws": {
		VendorID:     "aws",
		Name:         "Amazon Web Services",
		Homepage:     "https://aws.amazon.com",
		CountryID:    "US",
		State:        strp("Washington"),
		City:         strp("Seattle"),
		AddressLine:  strp("410 Terry Ave N"),
		ZipCode:      strp("98109"),
		FoundingYear: 2002,
		StatusPage:   strp("https://health.aws.amazon.com/health/status"),
	},
	"gcp": {
		VendorID:     "gcp",
		Name:         "Google Cloud Platform",
		Homepage:     "https://cloud.google.com",
		CountryID:    "US",
		State:        strp("California"),
		City:         strp("Mountain View"),
		AddressLine:  strp("1600 Amphitheatre Pkwy"),
		ZipCode:      strp("94043"),
		FoundingYear: 2008,
		StatusPage:   strp("https://status.cloud.google.com/"),
	},
	"azure": {
		VendorID:     "azure",
		Name:         "Microsoft Azure",
		Homepage:     "https://azure.microsoft.com",
		CountryID:    "US",
		State:        strp("Washington"),
		City:         strp("Redmond"),
		AddressLine:  strp("1 Microsoft Way"),
		ZipCode:      strp("98052"),
		FoundingYear: 2010,
		StatusPage:   strp("https://azure.status.microsoft/"),
	},
	"hetzner": {
		VendorID:     "hetzner",
		Name:         "Hetzner Online GmbH",
		Homepage:     "https://www.hetzner.com",
		CountryID:    "DE",
		State:        strp("Bavaria"),
		City:         strp("Gunzenhausen"),
		AddressLine:  strp("Industriestr. 25"),
		ZipCode:      strp("91710"),
		FoundingYear: 1997,
		StatusPage:   strp("https://status.hetzner.com/"),
	},
	"ovh": {
		VendorID:     "ovh",
		Name:         "OVH Groupe SAS",
		Homepage:     "https://www.ovhcloud.com",
		CountryID:    "FR",
		City:         strp("Roubaix"),
		AddressLine:  strp("2 Rue Kellermann"),
		ZipCode:      strp("59100"),
		FoundingYear: 1999,
		StatusPage:   strp("https://status.ovhcloud.com/"),
	},
	"upcloud": {
		VendorID:     "upcloud",
		Name:         "UpCloud Ltd",
		Homepage:     "https://upcloud.com",
		CountryID:    "FI",
		City:         strp("Helsinki"),
		AddressLine:  strp("Eteläesplanadi 2"),
		ZipCode:      strp("00130"),
		FoundingYear: 2012,
		StatusPage:   strp("https://status.upcloud.com/"),
	},
	"alibaba": {
		VendorID:     "alibaba",
		Name:         "Alibaba Cloud",
		Homepage:     "https://www.alibabacloud.com",
		CountryID:    "CN",
		City:         strp("Hangzhou"),
		AddressLine:  strp("969 West Wen Yi Road"),
		ZipCode:      strp("311121"),
		FoundingYear: 2009,
		StatusPage:   strp("https://status.alibabacloud.com/"),
	},
}

// VendorIDs returns every curated vendor id, in the map's undefined order;
// callers that need a stable order should sort the result themselves.
func VendorIDs() []string {
	ids := make([]string, 0, len(Vendors))
	for id := range Vendors {
		ids = append(ids, id)
	}
	return ids
}
