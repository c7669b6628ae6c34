package analysis

import (
	"github.com/paperfold/invoice-intel/constants"
)

// ScoreFraud flags amount-based anomalies and assigns a risk tier.
// Thresholds come from the rule table and are applied to the raw numeric
// amount; cross-document checks are an external collaborator's job.
func ScoreFraud(f Fields, rules *Rules) Fraud {
	fr := Fraud{Risk: constants.RiskLow, Anomalies: []string{}}
	if f.TotalAmount == nil {
		return fr
	}

	switch total := *f.TotalAmount; {
	case total > rules.Risk.HighAbove:
		fr.Risk = constants.RiskHigh
		fr.Anomalies = append(fr.Anomalies, "Unusually high amount")
	case total > rules.Risk.MediumAbove:
		fr.Risk = constants.RiskMedium
	}
	return fr
}

// FraudScoreValue maps the risk tier onto the record's numeric score.
func FraudScoreValue(tier constants.RiskTier) float64 {
	switch tier {
	case constants.RiskHigh:
		return 0.9
	case constants.RiskMedium:
		return 0.6
	default:
		return 0.2
	}
}
