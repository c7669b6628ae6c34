package analysis

// BuildResultJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing the record envelope. It backs the optional
// response validation and doubles as the contract the persistence
// collaborator can rely on.
func BuildResultJSONSchema() map[string]any {
	confidence := func(lo, hi float64) map[string]any {
		return map[string]any{"type": "number", "minimum": lo, "maximum": hi}
	}
	nullableString := map[string]any{"type": []string{"string", "null"}}
	nullableNumber := map[string]any{"type": []string{"number", "null"}}
	stringArray := map[string]any{"type": "array", "items": map[string]any{"type": "string"}}

	props := map[string]any{
		"vendor_name":    nullableString,
		"invoice_number": nullableString,
		"invoice_date":   map[string]any{"type": []string{"string", "null"}, "pattern": `^\d{4}-\d{2}-\d{2}$`},
		"total_amount":   nullableNumber,
		"tax_amount":     nullableNumber,
		"currency":       map[string]any{"type": "string", "enum": []string{"USD", "EUR", "GBP"}},
		"invoice_type":   map[string]any{"type": "string", "enum": []string{"services", "goods", "other"}},
		"language":       map[string]any{"type": "string"},

		"doc_class": map[string]any{"type": "string",
			"enum": []string{"invoice", "receipt", "offer", "prescription", "sick_note", "other"}},
		"doc_class_confidence": confidence(0.3, 0.95),
		"doc_class_signals":    stringArray,

		"direction":            map[string]any{"type": "string", "enum": []string{"incoming", "outgoing", "unknown"}},
		"direction_confidence": confidence(0.4, 0.9),
		"direction_signals":    stringArray,

		"field_confidence": map[string]any{
			"type":                 "object",
			"additionalProperties": confidence(0, 1),
		},

		"jurisdiction":        map[string]any{"type": "string", "enum": []string{"EU", "UAE", "KSA"}},
		"compliance_issues":   map[string]any{"type": "array", "items": issueSchema()},
		"vat_rate":            nullableNumber,
		"vat_amount_computed": nullableNumber,

		"fraud_score":   map[string]any{"type": "number", "enum": []float64{0.2, 0.6, 0.9}},
		"anomaly_flags": stringArray,

		"approval":            map[string]any{"type": "string", "enum": []string{"pass", "fail", "needs_info"}},
		"approval_confidence": confidence(0, 1),
		"approval_reasons":    stringArray,
		"needs_info_fields":   stringArray,

		"esg_category":         map[string]any{"type": "string"},
		"co2e_estimate":        nullableNumber,
		"emissions_confidence": confidence(0, 1),

		"payment_payload": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"payee":     nullableString,
				"reference": nullableString,
				"amount":    nullableNumber,
				"currency":  nullableString,
			},
			"required": []string{"payee", "reference", "amount", "currency"},
		},
		"payment_qr_string": map[string]any{"type": "string"},

		"risk_score":        map[string]any{"type": "string", "enum": []string{"low", "medium", "high"}},
		"compliance_status": map[string]any{"type": "string", "enum": []string{"compliant", "needs_review", "non_compliant"}},
		"is_flagged":        map[string]any{"type": "boolean"},
		"flag_reason":       map[string]any{"type": "string"},
	}

	required := make([]string, 0, len(props))
	for name := range props {
		required = append(required, name)
	}

	return map[string]any{
		"type":       "object",
		"properties": props,
		"required":   required,
	}
}

func issueSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"code":     map[string]any{"type": "string", "minLength": 1},
			"message":  map[string]any{"type": "string"},
			"severity": map[string]any{"type": "string", "enum": []string{"info", "warning", "error"}},
		},
		"required": []string{"code", "message", "severity"},
	}
}
