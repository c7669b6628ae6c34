package analysis

import (
	"strings"

	"github.com/paperfold/invoice-intel/constants"
)

// EstimateEmissions maps vendor name and amount to a coarse ESG category
// and a derived CO2e figure. Keyword tables are evaluated in rule order;
// an unmatched or missing vendor falls through to "general".
func EstimateEmissions(vendorName *string, totalAmount *float64, rules *Rules) Emissions {
	category := constants.ESGGeneral
	factor := rules.GeneralFactor

	if vendorName != nil {
		vendor := strings.ToLower(*vendorName)
	match:
		for _, ef := range rules.Emissions {
			for _, kw := range ef.Keywords {
				if strings.Contains(vendor, kw) {
					category = ef.Category
					factor = ef.Factor
					break match
				}
			}
		}
	}

	em := Emissions{Category: category, Confidence: 0.4}
	if totalAmount != nil && *totalAmount > 0 {
		estimate := *totalAmount * factor
		em.CO2eEstimate = &estimate
		em.Confidence = 0.6
	}
	return em
}
