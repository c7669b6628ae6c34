package analysis

import (
	"github.com/paperfold/invoice-intel/constants"
)

// Analyze runs the full understanding & risk-scoring pipeline over one
// document. Every stage is a pure function of its inputs: identical input
// yields an identical Result, there is no I/O, and degradation is always
// best-effort (a stage that cannot derive a value returns nil or a default
// low-confidence score rather than failing the run).
func Analyze(doc Document, rules *Rules) Result {
	if rules == nil {
		rules = DefaultRules()
	}

	// fan-out: field extraction feeds the scoring stages; the two
	// classifiers read the raw text independently
	fields := ExtractFields(doc.Text)
	classification := ClassifyDocument(doc.Text)
	direction := ResolveDirection(doc.Text, fields.VendorName, doc.CompanyName)

	fieldConf := ScoreFields(fields)
	jurisdiction := InferJurisdiction(doc.Jurisdiction, fields, doc.Text)
	compliance := EvaluateCompliance(fields, doc.Text, jurisdiction, rules)
	fraud := ScoreFraud(fields, rules)

	// fan-in
	approval := DecideApproval(ApprovalInput{
		DocClass:        classification.Class,
		FieldConfidence: fieldConf,
		Risk:            fraud.Risk,
		Compliance:      compliance.Status,
	}, rules)

	emissions := EstimateEmissions(fields.VendorName, fields.TotalAmount, rules)
	payment := BuildPaymentPayload(fields)

	var vatAmount *float64
	if compliance.ComputedRate != nil && fields.TotalAmount != nil {
		amount := *fields.TotalAmount * *compliance.ComputedRate
		vatAmount = &amount
	}

	flagged, flagReason := flagRecord(fraud, compliance)

	return Result{
		Fields: fields,

		DocClass:           classification.Class,
		DocClassConfidence: classification.Confidence,
		DocClassSignals:    classification.Signals,

		Direction:           direction.Direction,
		DirectionConfidence: direction.Confidence,
		DirectionSignals:    direction.Signals,

		FieldConfidence: fieldConf,

		Jurisdiction:      jurisdiction,
		ComplianceIssues:  compliance.Issues,
		VATRate:           compliance.ComputedRate,
		VATAmountComputed: vatAmount,

		FraudScore:   FraudScoreValue(fraud.Risk),
		AnomalyFlags: fraud.Anomalies,

		Approval:           approval.Decision,
		ApprovalConfidence: approval.Confidence,
		ApprovalReasons:    approval.Reasons,
		NeedsInfoFields:    approval.NeedsInfoFields,

		ESGCategory:         emissions.Category,
		CO2eEstimate:        emissions.CO2eEstimate,
		EmissionsConfidence: emissions.Confidence,

		PaymentPayload:  payment,
		PaymentQRString: PaymentQRString(payment),

		RiskScore:        fraud.Risk,
		ComplianceStatus: constants.ToRecordStatus(compliance.Status),
		IsFlagged:        flagged,
		FlagReason:       flagReason,
	}
}

// flagRecord marks records that need attention before payment: high fraud
// risk or a hard compliance failure.
func flagRecord(fraud Fraud, compliance Compliance) (bool, string) {
	if fraud.Risk == constants.RiskHigh {
		reason := "High fraud risk"
		if len(fraud.Anomalies) > 0 {
			reason = fraud.Anomalies[0]
		}
		return true, reason
	}
	if compliance.Status == constants.ComplianceFail {
		for _, issue := range compliance.Issues {
			if issue.Severity == constants.SeverityError {
				return true, issue.Message
			}
		}
		return true, "Compliance check failed"
	}
	return false, ""
}
