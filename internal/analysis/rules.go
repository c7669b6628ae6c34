package analysis

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/paperfold/invoice-intel/constants"
)

// RiskRules holds the absolute amount thresholds for the fraud scorer.
// Thresholds are applied to raw numeric amounts regardless of currency;
// deployments that need currency-aware values override them per rules file.
type RiskRules struct {
	MediumAbove float64 `yaml:"medium_above"`
	HighAbove   float64 `yaml:"high_above"`
}

// VATRange is the expected VAT-rate band for a jurisdiction.
// Min == Max expresses a point value (e.g. UAE 5%).
type VATRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// EmissionFactor maps vendor-name keywords to an ESG category and a
// CO2e-per-currency-unit factor. Entries are evaluated in order.
type EmissionFactor struct {
	Category constants.ESGCategory `yaml:"category"`
	Factor   float64               `yaml:"factor"`
	Keywords []string              `yaml:"keywords"`
}

// Rules collects every tunable table the pipeline evaluates. The zero
// value is not usable; start from DefaultRules.
type Rules struct {
	Risk               RiskRules                           `yaml:"risk"`
	VAT                map[constants.Jurisdiction]VATRange `yaml:"vat"`
	VATRateTolerance   float64                             `yaml:"vat_rate_tolerance"`
	Emissions          []EmissionFactor                    `yaml:"emissions"`
	GeneralFactor      float64                             `yaml:"general_factor"`
	RequiredFieldFloor float64                             `yaml:"required_field_floor"`
}

// DefaultRules returns the compiled-in rule tables.
func DefaultRules() *Rules {
	return &Rules{
		Risk: RiskRules{
			MediumAbove: 25000,
			HighAbove:   40000,
		},
		VAT: map[constants.Jurisdiction]VATRange{
			constants.JurisdictionEU:  {Min: 0.15, Max: 0.27},
			constants.JurisdictionUAE: {Min: 0.05, Max: 0.05},
			constants.JurisdictionKSA: {Min: 0.15, Max: 0.15},
		},
		VATRateTolerance: 0.02,
		Emissions: []EmissionFactor{
			{
				Category: constants.ESGTravel,
				Factor:   1.2,
				Keywords: []string{"ryanair", "lufthansa", "easyjet", "wizz", "emirates", "klm", "air france", "airlines", "airways"},
			},
			{
				Category: constants.ESGTransport,
				Factor:   0.9,
				Keywords: []string{"uber", "lyft", "bolt", "taxi", "careem"},
			},
			{
				Category: constants.ESGOfficeSupplies,
				Factor:   0.5,
				Keywords: []string{"staples", "office depot", "viking", "lyreco"},
			},
			{
				Category: constants.ESGUtilities,
				Factor:   0.8,
				Keywords: []string{"electric", "energy", "power", "water", "gas", "utility"},
			},
		},
		GeneralFactor:      0.4,
		RequiredFieldFloor: 0.5,
	}
}

// LoadRules reads a YAML rules file layered over the defaults. Keys absent
// from the file keep their default values.
func LoadRules(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	rules := DefaultRules()
	if err := yaml.Unmarshal(data, rules); err != nil {
		return nil, fmt.Errorf("parse rules file: %w", err)
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return rules, nil
}

// Validate rejects rule tables the pipeline cannot evaluate sensibly.
func (r *Rules) Validate() error {
	if r.Risk.HighAbove < r.Risk.MediumAbove {
		return fmt.Errorf("risk: high_above (%v) must be >= medium_above (%v)", r.Risk.HighAbove, r.Risk.MediumAbove)
	}
	for jur, band := range r.VAT {
		if band.Min < 0 || band.Max < band.Min {
			return fmt.Errorf("vat[%s]: invalid range [%v, %v]", jur, band.Min, band.Max)
		}
	}
	for _, ef := range r.Emissions {
		if ef.Factor < 0 {
			return fmt.Errorf("emissions[%s]: factor must be non-negative", ef.Category)
		}
	}
	if r.RequiredFieldFloor < 0 || r.RequiredFieldFloor > 1 {
		return fmt.Errorf("required_field_floor must be in [0,1], got %v", r.RequiredFieldFloor)
	}
	return nil
}
