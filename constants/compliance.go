package constants

// ComplianceStatus is the single internal vocabulary for compliance verdicts.
type ComplianceStatus string

const (
	CompliancePass        ComplianceStatus = "pass"
	ComplianceNeedsReview ComplianceStatus = "needs_review"
	ComplianceFail        ComplianceStatus = "fail"
)

// RecordComplianceStatus is the vocabulary used by the persisted record contract.
type RecordComplianceStatus string

const (
	RecordCompliant    RecordComplianceStatus = "compliant"
	RecordNeedsReview  RecordComplianceStatus = "needs_review"
	RecordNonCompliant RecordComplianceStatus = "non_compliant"
)

// ToRecordStatus maps the internal compliance verdict onto the record vocabulary.
// The mapping is total so the two can never disagree.
func ToRecordStatus(s ComplianceStatus) RecordComplianceStatus {
	switch s {
	case CompliancePass:
		return RecordCompliant
	case ComplianceFail:
		return RecordNonCompliant
	default:
		return RecordNeedsReview
	}
}

// Issue severities.
const (
	SeverityInfo    = "info"
	SeverityWarning = "warning"
	SeverityError   = "error"
)
