package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreFieldsAllPresent(t *testing.T) {
	fc := ScoreFields(Fields{
		VendorName:    strPtr("Acme GmbH"),
		InvoiceNumber: strPtr("INV-2024-001"),
		InvoiceDate:   strPtr("2024-01-15"),
		TotalAmount:   floatPtr(1200),
		TaxAmount:     floatPtr(96),
		Currency:      "USD",
	})

	assert.InDelta(t, 0.85, fc[FieldVendorName], 1e-9)
	assert.InDelta(t, 0.80, fc[FieldInvoiceNumber], 1e-9)
	assert.InDelta(t, 0.80, fc[FieldInvoiceDate], 1e-9)
	assert.InDelta(t, 0.85, fc[FieldTotalAmount], 1e-9)
	assert.InDelta(t, 0.75, fc[FieldTaxAmount], 1e-9)
	assert.InDelta(t, 0.70, fc[FieldCurrency], 1e-9)
}

func TestScoreFieldsAllAbsent(t *testing.T) {
	fc := ScoreFields(Fields{})

	assert.InDelta(t, 0.30, fc[FieldVendorName], 1e-9)
	assert.InDelta(t, 0.25, fc[FieldInvoiceNumber], 1e-9)
	assert.InDelta(t, 0.30, fc[FieldInvoiceDate], 1e-9)
	assert.InDelta(t, 0.30, fc[FieldTotalAmount], 1e-9)
	assert.InDelta(t, 0.40, fc[FieldTaxAmount], 1e-9)
	assert.InDelta(t, 0.20, fc[FieldCurrency], 1e-9)
}

func TestScoreFieldsShortInvoiceNumber(t *testing.T) {
	fc := ScoreFields(Fields{InvoiceNumber: strPtr("A-17")})
	assert.InDelta(t, 0.60, fc[FieldInvoiceNumber], 1e-9)
}

func TestScoreFieldsWithinUnitInterval(t *testing.T) {
	for _, f := range []Fields{
		{},
		{VendorName: strPtr("x"), Currency: "EUR"},
		{InvoiceNumber: strPtr("12345"), TotalAmount: floatPtr(1)},
	} {
		for name, conf := range ScoreFields(f) {
			assert.GreaterOrEqual(t, conf, 0.0, name)
			assert.LessOrEqual(t, conf, 1.0, name)
		}
	}
}
