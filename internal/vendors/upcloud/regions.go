package upcloud

// regionMeta holds the manually-collected metadata UpCloud's zone API
// doesn't expose, sourced from https://upcloud.com/data-centres (ported
// from original_source/src/sc_crawler/vendors/upcloud.py's manual_data dict).
type regionMeta struct {
	countryID    string
	state        string
	city         string
	foundingYear int
	greenEnergy  bool
	lon, lat     float64
}

var upcloudRegions = map[string]regionMeta{
	"au-syd1": {countryID: "AU", state: "New South Wales", city: "Sydney", foundingYear: 2021, greenEnergy: false, lon: 151.189377, lat: -33.918251},
	"de-fra1": {countryID: "DE", state: "Hesse", city: "Frankfurt", foundingYear: 2015, greenEnergy: true, lon: 8.735120, lat: 50.119190},
	"fi-hel1": {countryID: "FI", state: "Uusimaa", city: "Helsinki", foundingYear: 2011, greenEnergy: true, lon: 24.778570, lat: 60.20323},
	"fi-hel2": {countryID: "FI", state: "Uusimaa", city: "Helsinki", foundingYear: 2018, greenEnergy: true, lon: 24.876350, lat: 60.216209},
	"es-mad1": {countryID: "ES", state: "Madrid", city: "Madrid", foundingYear: 2020, greenEnergy: true, lon: -3.6239873, lat: 40.4395019},
	"nl-ams1": {countryID: "NL", state: "Noord Holland", city: "Amsterdam", foundingYear: 2017, greenEnergy: true, lon: 4.8400019, lat: 52.3998291},
	"pl-waw1": {countryID: "PL", state: "Mazowieckie", city: "Warsaw", foundingYear: 2020, greenEnergy: true, lon: 20.9192823, lat: 52.1905901},
	"se-sto1": {countryID: "SE", state: "Stockholm", city: "Stockholm", foundingYear: 2015, greenEnergy: true, lon: 18.102788, lat: 59.2636708},
	"sg-sin1": {countryID: "SG", state: "Singapore", city: "Singapore", foundingYear: 2017, greenEnergy: true, lon: 103.7022636, lat: 1.3172304},
	"uk-lon1": {countryID: "GB", state: "London", city: "London", foundingYear: 2012, greenEnergy: true, lon: -0.1037341, lat: 51.5232232},
	"us-chi1": {countryID: "US", state: "Illinois", city: "Chicago", foundingYear: 2014, greenEnergy: false, lon: -87.6342056, lat: 41.8761287},
	"us-nyc1": {countryID: "US", state: "New York", city: "New York", foundingYear: 2020, greenEnergy: false, lon: -74.0645536, lat: 40.7834325},
	"us-sjo1": {countryID: "US", state: "California", city: "San Jose", foundingYear: 2018, greenEnergy: false, lon: -121.9754458, lat: 37.3764769},
}
