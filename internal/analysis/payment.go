package analysis

import (
	"fmt"
	"net/url"
	"strings"
)

// BuildPaymentPayload remaps extracted fields into the payment hand-off
// shape. No validation beyond type coercion happens here.
func BuildPaymentPayload(f Fields) PaymentPayload {
	p := PaymentPayload{
		Payee:     f.VendorName,
		Reference: f.InvoiceNumber,
		Amount:    f.TotalAmount,
	}
	if f.Currency != "" {
		currency := f.Currency
		p.Currency = &currency
	}
	return p
}

// PaymentQRString serializes the payload into a single pay: URI for QR
// rendering. An empty payload yields an empty string.
func PaymentQRString(p PaymentPayload) string {
	if p.Payee == nil && p.Reference == nil && p.Amount == nil {
		return ""
	}

	payee := ""
	if p.Payee != nil {
		payee = url.PathEscape(*p.Payee)
	}

	params := url.Values{}
	if p.Amount != nil {
		params.Set("amount", fmt.Sprintf("%.2f", *p.Amount))
	}
	if p.Currency != nil && *p.Currency != "" {
		params.Set("currency", *p.Currency)
	}
	if p.Reference != nil && *p.Reference != "" {
		params.Set("reference", *p.Reference)
	}

	var b strings.Builder
	b.WriteString("pay:")
	b.WriteString(payee)
	if encoded := params.Encode(); encoded != "" {
		b.WriteString("?")
		b.WriteString(encoded)
	}
	return b.String()
}
