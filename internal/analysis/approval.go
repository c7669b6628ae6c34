package analysis

import (
	"fmt"

	"github.com/paperfold/invoice-intel/constants"
)

// requiredFields must each clear the confidence floor for an automatic
// decision; anything below routes the document to a human.
var requiredFields = []string{
	FieldVendorName,
	FieldInvoiceNumber,
	FieldInvoiceDate,
	FieldTotalAmount,
}

// ApprovalInput is the fan-in of the earlier stages.
type ApprovalInput struct {
	DocClass        constants.DocClass
	FieldConfidence FieldConfidence
	Risk            constants.RiskTier
	Compliance      constants.ComplianceStatus
}

// DecideApproval combines classification, field confidence, risk, and
// compliance into one of pass, fail, or needs_info.
func DecideApproval(in ApprovalInput, rules *Rules) Approval {
	reasons := []string{}

	if in.DocClass != constants.DocClassInvoice && in.DocClass != constants.DocClassReceipt {
		reasons = append(reasons, fmt.Sprintf("Document classified as %q, not an invoice or receipt.", in.DocClass))
	}
	if in.Risk == constants.RiskHigh {
		reasons = append(reasons, "High fraud risk score.")
	}
	switch in.Compliance {
	case constants.ComplianceFail:
		reasons = append(reasons, "Compliance check failed.")
	case constants.ComplianceNeedsReview:
		reasons = append(reasons, "Compliance review required.")
	}

	needsInfo := []string{}
	for _, field := range requiredFields {
		if in.FieldConfidence[field] < rules.RequiredFieldFloor {
			needsInfo = append(needsInfo, field)
		}
	}

	if len(needsInfo) > 0 {
		return Approval{
			Decision:        constants.DecisionNeedsInfo,
			Confidence:      0.65,
			Reasons:         append(reasons, "Missing or low-confidence required fields."),
			NeedsInfoFields: needsInfo,
		}
	}

	if in.Risk == constants.RiskHigh || in.Compliance == constants.ComplianceFail {
		return Approval{
			Decision:        constants.DecisionFail,
			Confidence:      0.75,
			Reasons:         reasons,
			NeedsInfoFields: needsInfo,
		}
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "All checks passed.")
	}
	return Approval{
		Decision:        constants.DecisionPass,
		Confidence:      0.8,
		Reasons:         reasons,
		NeedsInfoFields: needsInfo,
	}
}
