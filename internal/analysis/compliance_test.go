package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperfold/invoice-intel/constants"
)

func TestInferJurisdiction(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		fields   Fields
		text     string
		want     constants.Jurisdiction
	}{
		{"explicit uae", "uae", Fields{}, "", constants.JurisdictionUAE},
		{"explicit long form", "United Arab Emirates", Fields{}, "", constants.JurisdictionUAE},
		{"explicit ksa", "SA", Fields{}, "", constants.JurisdictionKSA},
		{"aed in text", "", Fields{}, "Total: 500 AED", constants.JurisdictionUAE},
		{"sar in text", "", Fields{}, "Amount: 100 SAR", constants.JurisdictionKSA},
		{"lowercase aed", "", Fields{}, "total 500 aed", constants.JurisdictionUAE},
		{"sar inside a word", "", Fields{Currency: "USD"}, "Payment is necessary within 30 days", constants.JurisdictionEU},
		{"aed inside a word", "", Fields{Currency: "USD"}, "Encyclopaedia subscription renewal", constants.JurisdictionEU},
		{"eur currency", "", Fields{Currency: "EUR"}, "", constants.JurisdictionEU},
		{"default", "", Fields{Currency: "USD"}, "nothing here", constants.JurisdictionEU},
		{"unknown explicit falls through", "mars", Fields{}, "500 AED", constants.JurisdictionUAE},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferJurisdiction(tt.explicit, tt.fields, tt.text))
		})
	}
}

func TestEmbeddedCurrencyCodeKeepsVerdictClean(t *testing.T) {
	text := "Payment is necessary within 30 days.\nVAT ID: DE123456789"
	jur := InferJurisdiction("", Fields{Currency: "USD"}, text)
	require.Equal(t, constants.JurisdictionEU, jur)

	f := Fields{TotalAmount: floatPtr(1000), TaxAmount: floatPtr(190)}
	c := EvaluateCompliance(f, text, jur, DefaultRules())
	assert.Equal(t, constants.CompliancePass, c.Status)
	assert.Empty(t, c.Issues)
}

func TestEvaluateComplianceCleanEUInvoice(t *testing.T) {
	f := Fields{TotalAmount: floatPtr(1000), TaxAmount: floatPtr(190)}
	c := EvaluateCompliance(f, "VAT ID: DE123456789", constants.JurisdictionEU, DefaultRules())

	assert.Equal(t, constants.CompliancePass, c.Status)
	assert.Empty(t, c.Issues)
	require.NotNil(t, c.ComputedRate)
	assert.InDelta(t, 0.19, *c.ComputedRate, 1e-9)
}

func TestEvaluateComplianceMissingTax(t *testing.T) {
	f := Fields{TotalAmount: floatPtr(1000)}
	c := EvaluateCompliance(f, "VAT ID: DE123456789", constants.JurisdictionEU, DefaultRules())

	assert.Equal(t, constants.ComplianceNeedsReview, c.Status)
	require.Len(t, c.Issues, 1)
	assert.Equal(t, IssueTaxAmountMissing, c.Issues[0].Code)
	assert.Equal(t, constants.SeverityWarning, c.Issues[0].Severity)
	assert.Nil(t, c.ComputedRate)
}

func TestEvaluateComplianceZeroTaxTreatedAsMissing(t *testing.T) {
	f := Fields{TotalAmount: floatPtr(1000), TaxAmount: floatPtr(0)}
	c := EvaluateCompliance(f, "VAT ID: DE123456789", constants.JurisdictionEU, DefaultRules())

	assert.Equal(t, constants.ComplianceNeedsReview, c.Status)
	require.Len(t, c.Issues, 1)
	assert.Equal(t, IssueTaxAmountMissing, c.Issues[0].Code)
}

func TestEvaluateComplianceRateOutOfRange(t *testing.T) {
	f := Fields{TotalAmount: floatPtr(1000), TaxAmount: floatPtr(50)}
	c := EvaluateCompliance(f, "VAT ID: DE123456789", constants.JurisdictionEU, DefaultRules())

	assert.Equal(t, constants.ComplianceNeedsReview, c.Status)
	require.Len(t, c.Issues, 1)
	assert.Equal(t, IssueVATRateOutOfRange, c.Issues[0].Code)
	require.NotNil(t, c.ComputedRate)
	assert.InDelta(t, 0.05, *c.ComputedRate, 1e-9)
}

func TestEvaluateComplianceToleranceIsInclusive(t *testing.T) {
	// 13% is exactly min minus tolerance for the EU band, so it still passes
	f := Fields{TotalAmount: floatPtr(1000), TaxAmount: floatPtr(130)}
	c := EvaluateCompliance(f, "VAT ID: DE123456789", constants.JurisdictionEU, DefaultRules())

	assert.Equal(t, constants.CompliancePass, c.Status)
	assert.Empty(t, c.Issues)
}

func TestEvaluateComplianceUAEPointRate(t *testing.T) {
	ok := EvaluateCompliance(Fields{TotalAmount: floatPtr(1000), TaxAmount: floatPtr(50)}, "", constants.JurisdictionUAE, DefaultRules())
	assert.Equal(t, constants.CompliancePass, ok.Status)
	assert.Empty(t, ok.Issues)

	bad := EvaluateCompliance(Fields{TotalAmount: floatPtr(1000), TaxAmount: floatPtr(100)}, "", constants.JurisdictionUAE, DefaultRules())
	assert.Equal(t, constants.ComplianceNeedsReview, bad.Status)
	require.Len(t, bad.Issues, 1)
	assert.Equal(t, IssueVATRateOutOfRange, bad.Issues[0].Code)
}

func TestEvaluateComplianceEUVATIDMissingIsInfoOnly(t *testing.T) {
	f := Fields{TotalAmount: floatPtr(1000), TaxAmount: floatPtr(190)}
	c := EvaluateCompliance(f, "no tax identifiers anywhere", constants.JurisdictionEU, DefaultRules())

	assert.Equal(t, constants.CompliancePass, c.Status)
	require.Len(t, c.Issues, 1)
	assert.Equal(t, IssueVATIDMissing, c.Issues[0].Code)
	assert.Equal(t, constants.SeverityInfo, c.Issues[0].Severity)
}

func TestAggregateStatus(t *testing.T) {
	assert.Equal(t, constants.CompliancePass, aggregateStatus(nil))
	assert.Equal(t, constants.CompliancePass, aggregateStatus([]Issue{{Severity: constants.SeverityInfo}}))
	assert.Equal(t, constants.ComplianceNeedsReview, aggregateStatus([]Issue{
		{Severity: constants.SeverityInfo},
		{Severity: constants.SeverityWarning},
	}))
	assert.Equal(t, constants.ComplianceFail, aggregateStatus([]Issue{
		{Severity: constants.SeverityWarning},
		{Severity: constants.SeverityError},
	}))
}
