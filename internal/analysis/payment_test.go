package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPaymentPayload(t *testing.T) {
	f := Fields{
		VendorName:    strPtr("Acme GmbH"),
		InvoiceNumber: strPtr("INV-2024-001"),
		TotalAmount:   floatPtr(1200),
		Currency:      "USD",
	}
	p := BuildPaymentPayload(f)

	require.NotNil(t, p.Payee)
	assert.Equal(t, "Acme GmbH", *p.Payee)
	require.NotNil(t, p.Reference)
	assert.Equal(t, "INV-2024-001", *p.Reference)
	require.NotNil(t, p.Amount)
	assert.Equal(t, 1200.0, *p.Amount)
	require.NotNil(t, p.Currency)
	assert.Equal(t, "USD", *p.Currency)
}

func TestBuildPaymentPayloadEmptyCurrencyStaysNil(t *testing.T) {
	p := BuildPaymentPayload(Fields{VendorName: strPtr("Acme")})
	assert.Nil(t, p.Currency)
}

func TestPaymentQRString(t *testing.T) {
	p := BuildPaymentPayload(Fields{
		VendorName:    strPtr("Acme GmbH"),
		InvoiceNumber: strPtr("INV-2024-001"),
		TotalAmount:   floatPtr(1200),
		Currency:      "USD",
	})
	assert.Equal(t, "pay:Acme%20GmbH?amount=1200.00&currency=USD&reference=INV-2024-001", PaymentQRString(p))
}

func TestPaymentQRStringPayeeOnly(t *testing.T) {
	p := PaymentPayload{Payee: strPtr("Acme")}
	assert.Equal(t, "pay:Acme", PaymentQRString(p))
}

func TestPaymentQRStringEmptyPayload(t *testing.T) {
	assert.Equal(t, "", PaymentQRString(PaymentPayload{}))
}
