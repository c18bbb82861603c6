package aws

import (
	"encoding/json"
	"strconv"
)

// parseOnDemandPriceListItem extracts the instance type and hourly USD rate
// from one AWS Pricing API PriceList JSON document, ported from
// original_source/src/sc_crawler/vendors/aws.py's _make_price_from_product.
func parseOnDemandPriceListItem(raw string) (instanceType string, price float64, ok bool) {
	var item struct {
		Product struct {
			Attributes struct {
				InstanceType string `json:"instanceType"`
			} `json:"attributes"`
		} `json:"product"`
		Terms struct {
			OnDemand map[string]struct {
				PriceDimensions map[string]struct {
					Unit         string            `json:"unit"`
					PricePerUnit map[string]string `json:"pricePerUnit"`
				} `json:"priceDimensions"`
			} `json:"OnDemand"`
		} `json:"terms"`
	}

	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		return "", 0, false
	}

	instanceType = item.Product.Attributes.InstanceType
	if instanceType == "" {
		return "", 0, false
	}

	for _, offer := range item.Terms.OnDemand {
		for _, dim := range offer.PriceDimensions {
			if dim.Unit != "Hrs" {
				continue
			}
			usd, ok := dim.PricePerUnit["USD"]
			if !ok {
				continue
			}
			p, err := strconv.ParseFloat(usd, 64)
			if err != nil || p <= 0 {
				continue
			}
			return instanceType, p, true
		}
	}
	return "", 0, false
}
