package analysis

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/paperfold/invoice-intel/constants"
)

// Compliance issue codes.
const (
	IssueVATRateOutOfRange = "VAT_RATE_OUT_OF_RANGE"
	IssueVATIDMissing      = "VAT_ID_MISSING"
	IssueTaxAmountMissing  = "TAX_AMOUNT_MISSING"
)

var (
	reVATID = regexp.MustCompile(`(?i)\b(?:vat\s*(?:id|no\.?|number|reg)|ust[-.\s]?id)\b|\b[A-Z]{2}\s?\d{8,12}\b`)

	// whole words only, so prose like "necessary" never reads as SAR
	reAEDCode = regexp.MustCompile(`\bAED\b`)
	reSARCode = regexp.MustCompile(`\bSAR\b`)
)

// InferJurisdiction resolves the tax regime: explicit input first, then
// currency-code cues in the text, then currency, defaulting to EU.
func InferJurisdiction(explicit string, f Fields, text string) constants.Jurisdiction {
	if jur, ok := constants.ParseJurisdiction(explicit); ok {
		return jur
	}
	upper := strings.ToUpper(text)
	switch {
	case reAEDCode.MatchString(upper):
		return constants.JurisdictionUAE
	case reSARCode.MatchString(upper):
		return constants.JurisdictionKSA
	case f.Currency == "EUR":
		return constants.JurisdictionEU
	}
	return constants.JurisdictionEU
}

// EvaluateCompliance checks the extracted tax amount against the
// jurisdiction's expected VAT-rate band. A missing or zero tax amount is
// reported through the same issue list so the verdict vocabulary stays
// unified (see constants.ToRecordStatus for the record-facing mapping).
func EvaluateCompliance(f Fields, text string, jur constants.Jurisdiction, rules *Rules) Compliance {
	c := Compliance{Issues: []Issue{}, Status: constants.CompliancePass}

	if f.TaxAmount == nil || *f.TaxAmount <= 0 {
		c.Issues = append(c.Issues, Issue{
			Code:     IssueTaxAmountMissing,
			Message:  "Tax amount is missing or zero; VAT cannot be verified.",
			Severity: constants.SeverityWarning,
		})
	}

	if f.TotalAmount != nil && *f.TotalAmount > 0 && f.TaxAmount != nil && *f.TaxAmount > 0 {
		rate := *f.TaxAmount / *f.TotalAmount
		c.ComputedRate = &rate

		if band, ok := rules.VAT[jur]; ok {
			tol := rules.VATRateTolerance
			if rate < band.Min-tol || rate > band.Max+tol {
				c.Issues = append(c.Issues, Issue{
					Code: IssueVATRateOutOfRange,
					Message: fmt.Sprintf("Computed VAT rate %.1f%% is outside the expected %s range (%.0f%%-%.0f%%).",
						rate*100, jur, band.Min*100, band.Max*100),
					Severity: constants.SeverityWarning,
				})
			}
		}
	}

	if jur == constants.JurisdictionEU && !reVATID.MatchString(text) {
		c.Issues = append(c.Issues, Issue{
			Code:     IssueVATIDMissing,
			Message:  "No VAT ID found in the document text.",
			Severity: constants.SeverityInfo,
		})
	}

	c.Status = aggregateStatus(c.Issues)
	return c
}

// aggregateStatus: any error fails, else any warning needs review.
func aggregateStatus(issues []Issue) constants.ComplianceStatus {
	status := constants.CompliancePass
	for _, issue := range issues {
		switch issue.Severity {
		case constants.SeverityError:
			return constants.ComplianceFail
		case constants.SeverityWarning:
			status = constants.ComplianceNeedsReview
		}
	}
	return status
}
