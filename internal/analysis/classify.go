package analysis

import (
	"regexp"
	"strings"

	"github.com/paperfold/invoice-intel/constants"
)

// classProbe is a single keyword signal contributing to a document class.
type classProbe struct {
	re    *regexp.Regexp
	label string
}

// classProfile groups the probes for one document class. Profiles are
// evaluated in slice order and ties resolve to the earliest profile, so
// the tie-break rule is data, not insertion order.
type classProfile struct {
	class  constants.DocClass
	probes []classProbe
}

var docProfiles = []classProfile{
	{
		class: constants.DocClassInvoice,
		probes: []classProbe{
			{regexp.MustCompile(`\binvoice\b`), "invoice_keyword"},
			{regexp.MustCompile(`\binvoice\s*(?:number|no\.?|#)`), "invoice_number_label"},
			{regexp.MustCompile(`\b(?:amount\s+due|payment\s+terms|due\s+date)\b`), "payment_terms"},
		},
	},
	{
		class: constants.DocClassReceipt,
		probes: []classProbe{
			{regexp.MustCompile(`\breceipt\b`), "receipt_keyword"},
			{regexp.MustCompile(`\b(?:change\s+due|cash\s+tendered|card\s+payment)\b`), "register_artifact"},
			{regexp.MustCompile(`\bthank\s+you\s+for\s+your\s+(?:purchase|visit)\b`), "thank_you_line"},
		},
	},
	{
		class: constants.DocClassOffer,
		probes: []classProbe{
			{regexp.MustCompile(`\b(?:offer|quotation|quote)\b`), "offer_keyword"},
			{regexp.MustCompile(`\bvalid\s+(?:until|through)\b`), "validity_window"},
			{regexp.MustCompile(`\bproposal\b`), "proposal_keyword"},
		},
	},
	{
		class: constants.DocClassPrescription,
		probes: []classProbe{
			{regexp.MustCompile(`\b(?:prescription|rx)\b`), "prescription_keyword"},
			{regexp.MustCompile(`\b(?:dosage|\d+\s*mg)\b`), "dosage_marker"},
			{regexp.MustCompile(`\bpharmacy\b`), "pharmacy_keyword"},
		},
	},
	{
		class: constants.DocClassSickNote,
		probes: []classProbe{
			{regexp.MustCompile(`\b(?:sick\s+note|medical\s+certificate)\b`), "sick_note_keyword"},
			{regexp.MustCompile(`\bunfit\s+for\s+work\b`), "unfit_for_work"},
			{regexp.MustCompile(`\bdiagnos(?:is|ed)\b`), "diagnosis_marker"},
		},
	},
}

// ClassifyDocument scores the raw text against the document-type profiles.
// Confidence is 0.55 + 0.15 per signal, capped at 0.95; zero signals on
// every profile yields "other" at a fixed 0.3.
func ClassifyDocument(text string) Classification {
	lower := strings.ToLower(text)

	best := Classification{Class: constants.DocClassOther, Signals: []string{}}
	bestCount := 0
	for _, prof := range docProfiles {
		signals := make([]string, 0, len(prof.probes))
		for _, p := range prof.probes {
			if p.re.MatchString(lower) {
				signals = append(signals, p.label)
			}
		}
		if len(signals) > bestCount {
			bestCount = len(signals)
			best.Class = prof.class
			best.Signals = signals
		}
	}

	if bestCount == 0 {
		best.Confidence = 0.3
		return best
	}
	best.Confidence = clamp(0.55+0.15*float64(bestCount), 0, 0.95)
	return best
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
