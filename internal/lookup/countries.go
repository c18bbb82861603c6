// Package lookup holds the static reference data sc-crawler seeds once and
// never discovers from a vendor API: ISO-3166 country/continent mappings,
// compliance framework certifications, and the curated vendor roster
// itself.
package lookup

import "github.com/sparecores/sc-crawler/pkg/schema"

// countryContinent maps ISO-3166 alpha-2 codes to their continent, ported
// verbatim from original_source/metadata/location.py's
// country_continent_mapping. Only the countries actually referenced by a
// curated vendor's HQ or a region's physical location need an entry here;
// extend as new vendors/regions are added.
var countryContinent = map[string]string{
	"AE": "Asia",
	"AU": "Oceania",
	"BE": "Europe",
	"BH": "Asia",
	"BR": "South America",
	"CA": "North America",
	"CH": "Europe",
	"CL": "South America",
	"CN": "Asia",
	"DE": "Europe",
	"ES": "Europe",
	"FI": "Europe",
	"FR": "Europe",
	"GB": "Europe",
	"HK": "Asia",
	"ID": "Asia",
	"IE": "Europe",
	"IL": "Asia",
	"IT": "Europe",
	"IN": "Asia",
	"JP": "Asia",
	"KR": "Asia",
	"NL": "Europe",
	"PL": "Europe",
	"QA": "Asia",
	"SA": "Asia",
	"SE": "Europe",
	"SG": "Asia",
	"TW": "Asia",
	"US": "North America",
	"ZA": "Africa",
}

// Countries is keyed by country_id (ISO-3166 alpha-2), matching
// original_source/src/sc_crawler/lookup.py's module-level countries dict.
var Countries = buildCountries()

func buildCountries() map[string]schema.Country {
	out := make(map[string]schema.Country, len(countryContinent))
	for code, continent := range countryContinent {
		out[code] = schema.Country{
			CountryID: code,
			Continent: continent,
		}
	}
	return out
}
