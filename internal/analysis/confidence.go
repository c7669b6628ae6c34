package analysis

// Per-field presence/shape confidence constants. No field's confidence
// depends on any other field.
const (
	confVendorPresent = 0.85
	confVendorAbsent  = 0.30

	confInvoiceNumLong  = 0.80 // >= 5 characters
	confInvoiceNumShort = 0.60
	confInvoiceNumNone  = 0.25

	confDatePresent = 0.80
	confDateAbsent  = 0.30

	confTotalPresent = 0.85
	confTotalAbsent  = 0.30

	confTaxPresent = 0.75
	confTaxAbsent  = 0.40

	confCurrencyPresent = 0.70
	confCurrencyAbsent  = 0.20
)

// ScoreFields assigns a heuristic confidence in [0,1] to each extracted
// field based on presence and shape only.
func ScoreFields(f Fields) FieldConfidence {
	fc := FieldConfidence{
		FieldVendorName:  presence(f.VendorName != nil, confVendorPresent, confVendorAbsent),
		FieldInvoiceDate: presence(f.InvoiceDate != nil, confDatePresent, confDateAbsent),
		FieldTotalAmount: presence(f.TotalAmount != nil, confTotalPresent, confTotalAbsent),
		FieldTaxAmount:   presence(f.TaxAmount != nil, confTaxPresent, confTaxAbsent),
		FieldCurrency:    presence(f.Currency != "", confCurrencyPresent, confCurrencyAbsent),
	}

	switch {
	case f.InvoiceNumber == nil:
		fc[FieldInvoiceNumber] = confInvoiceNumNone
	case len(*f.InvoiceNumber) >= 5:
		fc[FieldInvoiceNumber] = confInvoiceNumLong
	default:
		fc[FieldInvoiceNumber] = confInvoiceNumShort
	}
	return fc
}

func presence(present bool, yes, no float64) float64 {
	if present {
		return yes
	}
	return no
}
