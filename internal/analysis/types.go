package analysis

import (
	"github.com/paperfold/invoice-intel/constants"
)

// Document is the immutable pipeline input. Text is the only field the
// extraction logic reads deeply; it is assumed to preserve the original
// line and word order of the source document.
type Document struct {
	FileName     string
	FileType     string
	Text         string
	Jurisdiction string
	CompanyName  string
}

// Fields is the flat field set extracted once per document and read by the
// later stages. Amounts are nil, never NaN, when unparsable.
type Fields struct {
	VendorName    *string  `json:"vendor_name"`
	InvoiceNumber *string  `json:"invoice_number"`
	InvoiceDate   *string  `json:"invoice_date"` // YYYY-MM-DD
	TotalAmount   *float64 `json:"total_amount"`
	TaxAmount     *float64 `json:"tax_amount"`
	Currency      string   `json:"currency"`     // USD | EUR | GBP
	InvoiceType   string   `json:"invoice_type"` // services | goods | other
	Language      string   `json:"language"`
}

// Field names as they appear in FieldConfidence and needs_info_fields.
const (
	FieldVendorName    = "vendor_name"
	FieldInvoiceNumber = "invoice_number"
	FieldInvoiceDate   = "invoice_date"
	FieldTotalAmount   = "total_amount"
	FieldTaxAmount     = "tax_amount"
	FieldCurrency      = "currency"
)

// Classification is the document-type verdict.
type Classification struct {
	Class      constants.DocClass `json:"doc_class"`
	Confidence float64            `json:"confidence"`
	Signals    []string           `json:"signals"`
}

// DirectionResult is the payer/payee verdict.
type DirectionResult struct {
	Direction  constants.Direction `json:"direction"`
	Confidence float64             `json:"confidence"`
	Signals    []string            `json:"signals"`
}

// FieldConfidence maps field name to a heuristic confidence in [0,1].
type FieldConfidence map[string]float64

// Issue is a single compliance finding.
type Issue struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Severity string `json:"severity"` // info | warning | error
}

// Compliance is the tax-compliance verdict.
type Compliance struct {
	Issues       []Issue                    `json:"issues"`
	ComputedRate *float64                   `json:"computed_rate"`
	Status       constants.ComplianceStatus `json:"status"`
}

// Fraud is the amount-anomaly verdict.
type Fraud struct {
	Risk      constants.RiskTier `json:"risk_score"`
	Anomalies []string           `json:"anomalies"`
}

// Approval is the terminal automated decision.
type Approval struct {
	Decision        constants.Decision `json:"decision"`
	Confidence      float64            `json:"confidence"`
	Reasons         []string           `json:"reasons"`
	NeedsInfoFields []string           `json:"needs_info_fields"`
}

// Emissions is the CO2e estimate attributed to the spend.
type Emissions struct {
	Category     constants.ESGCategory `json:"esg_category"`
	CO2eEstimate *float64              `json:"co2e_estimate"`
	Confidence   float64               `json:"confidence"`
}

// PaymentPayload is the vendor/amount/reference hand-off for payment apps.
type PaymentPayload struct {
	Payee     *string  `json:"payee"`
	Reference *string  `json:"reference"`
	Amount    *float64 `json:"amount"`
	Currency  *string  `json:"currency"`
}

// Result is the complete record-facing envelope, stored verbatim by the
// caller's persistence layer. Scored fields only; timestamps and ids live
// on the transport wrapper so identical input yields identical Result.
type Result struct {
	Fields

	DocClass           constants.DocClass `json:"doc_class"`
	DocClassConfidence float64            `json:"doc_class_confidence"`
	DocClassSignals    []string           `json:"doc_class_signals"`

	Direction           constants.Direction `json:"direction"`
	DirectionConfidence float64             `json:"direction_confidence"`
	DirectionSignals    []string            `json:"direction_signals"`

	FieldConfidence FieldConfidence `json:"field_confidence"`

	Jurisdiction      constants.Jurisdiction `json:"jurisdiction"`
	ComplianceIssues  []Issue                `json:"compliance_issues"`
	VATRate           *float64               `json:"vat_rate"`
	VATAmountComputed *float64               `json:"vat_amount_computed"`

	FraudScore   float64  `json:"fraud_score"` // 0.2 | 0.6 | 0.9
	AnomalyFlags []string `json:"anomaly_flags"`

	Approval           constants.Decision `json:"approval"`
	ApprovalConfidence float64            `json:"approval_confidence"`
	ApprovalReasons    []string           `json:"approval_reasons"`
	NeedsInfoFields    []string           `json:"needs_info_fields"`

	ESGCategory         constants.ESGCategory `json:"esg_category"`
	CO2eEstimate        *float64              `json:"co2e_estimate"`
	EmissionsConfidence float64               `json:"emissions_confidence"`

	PaymentPayload  PaymentPayload `json:"payment_payload"`
	PaymentQRString string         `json:"payment_qr_string"`

	RiskScore        constants.RiskTier               `json:"risk_score"`
	ComplianceStatus constants.RecordComplianceStatus `json:"compliance_status"`
	IsFlagged        bool                             `json:"is_flagged"`
	FlagReason       string                           `json:"flag_reason"`
}
