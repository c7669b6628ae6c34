package constants

import "strings"

// Jurisdiction is a tax-regime identifier used to select expected VAT-rate ranges.
type Jurisdiction string

const (
	JurisdictionEU  Jurisdiction = "EU"
	JurisdictionUAE Jurisdiction = "UAE"
	JurisdictionKSA Jurisdiction = "KSA"
)

// ParseJurisdiction canonicalizes free-form jurisdiction input.
// Unknown or empty input returns ("", false); the caller picks the default.
func ParseJurisdiction(input string) (Jurisdiction, bool) {
	switch strings.ToUpper(strings.TrimSpace(input)) {
	case "EU", "EUROPE", "EUROPEAN UNION":
		return JurisdictionEU, true
	case "UAE", "AE", "UNITED ARAB EMIRATES":
		return JurisdictionUAE, true
	case "KSA", "SA", "SAUDI ARABIA":
		return JurisdictionKSA, true
	}
	return "", false
}
