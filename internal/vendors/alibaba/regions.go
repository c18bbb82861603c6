package alibaba

// regionMeta is the manual region-geography table the API doesn't expose,
// ported verbatim from original_source/src/sc_crawler/vendors/alicloud.py's manual region coordinate table.
type regionMeta struct {
	city      string
	lat, lon  float64
	countryID string
}

var alibabaRegionCoords = map[string]regionMeta{
	// Mainland China
	"cn-qingdao":    {city: "Qingdao", lat: 36.0671, lon: 120.3826, countryID: "CN"},
	"cn-beijing":    {city: "Beijing", lat: 39.9042, lon: 116.4074, countryID: "CN"},
	"cn-zhangjiakou": {city: "Zhangjiakou", lat: 40.8244, lon: 114.8875, countryID: "CN"},
	"cn-huhehaote":  {city: "Hohhot", lat: 40.8426, lon: 111.7490, countryID: "CN"},
	"cn-wulanchabu": {city: "Ulanqab", lat: 41.0350, lon: 113.1343, countryID: "CN"},
	"cn-hangzhou":   {city: "Hangzhou", lat: 30.2741, lon: 120.1551, countryID: "CN"},
	"cn-shanghai":   {city: "Shanghai", lat: 31.2304, lon: 121.4737, countryID: "CN"},
	"cn-nanjing":    {city: "Nanjing", lat: 32.0603, lon: 118.7969, countryID: "CN"},
	"cn-shenzhen":   {city: "Shenzhen", lat: 22.5431, lon: 114.0579, countryID: "CN"},
	"cn-heyuan":     {city: "Heyuan", lat: 23.7405, lon: 114.7003, countryID: "CN"},
	"cn-guangzhou":  {city: "Guangzhou", lat: 23.1291, lon: 113.2644, countryID: "CN"},
	"cn-fuzhou":     {city: "Fuzhou", lat: 26.0745, lon: 119.2965, countryID: "CN"},
	"cn-wuhan-lr":   {city: "Wuhan", lat: 30.5928, lon: 114.3055, countryID: "CN"},
	"cn-chengdu":    {city: "Chengdu", lat: 30.5728, lon: 104.0668, countryID: "CN"},
	"cn-hongkong":   {city: "Hong Kong", lat: 22.3193, lon: 114.1694, countryID: "HK"},
	// Asia Pacific
	"ap-northeast-1": {city: "Tokyo", lat: 35.6895, lon: 139.6917, countryID: "JP"},
	"ap-northeast-2": {city: "Seoul", lat: 37.5665, lon: 126.9780, countryID: "KR"},
	"ap-southeast-1": {city: "Singapore", lat: 1.3521, lon: 103.8198, countryID: "SG"},
	"ap-southeast-3": {city: "Kuala Lumpur", lat: 3.1390, lon: 101.6869, countryID: "MY"},
	"ap-southeast-5": {city: "Jakarta", lat: 6.2088, lon: 106.8456, countryID: "ID"},
	"ap-southeast-6": {city: "Manila", lat: 14.5995, lon: 120.9842, countryID: "PH"},
	"ap-southeast-7": {city: "Bangkok", lat: 13.7563, lon: 100.5018, countryID: "TH"},
	// Americas
	"us-east-1": {city: "Virginia", lat: 38.0293, lon: -78.4767, countryID: "US"},
	"us-west-1": {city: "Silicon Valley", lat: 37.3875, lon: -122.0575, countryID: "US"},
	"na-south-1": {city: "Mexico City", lat: 19.4326, lon: -99.1332, countryID: "MX"},
	// Europe
	"eu-west-1":    {city: "London", lat: 51.5074, lon: -0.1278, countryID: "GB"},
	"eu-central-1": {city: "Frankfurt", lat: 50.1109, lon: 8.6821, countryID: "DE"},
	// Middle East
	"me-east-1":    {city: "Dubai", lat: 25.2048, lon: 55.2708, countryID: "AE"},
	"me-central-1": {city: "Riyadh", lat: 24.7136, lon: 46.6753, countryID: "SA"},
}
