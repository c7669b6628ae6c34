package analysis

import (
	"regexp"
	"strings"

	"github.com/paperfold/invoice-intel/constants"
)

var incomingCues = []classProbe{
	{regexp.MustCompile(`\b(?:bill\s+to|billed\s+to)\b`), "bill_to"},
	{regexp.MustCompile(`\bship\s+to\b`), "ship_to"},
	{regexp.MustCompile(`\b(?:amount\s+due|payable)\b`), "amount_due"},
}

var outgoingCues = []classProbe{
	{regexp.MustCompile(`\b(?:from:|seller|supplier)`), "sender_label"},
	{regexp.MustCompile(`\byour\s+invoice\b`), "your_invoice"},
	{regexp.MustCompile(`\bservices\s+rendered\b`), "services_rendered"},
}

// ClassifyDirection counts payer cues against payee cues. Zero signals on
// both sides yields "unknown" at 0.4; otherwise the higher count wins with
// ties favoring incoming, at 0.6 + 0.1 per winning signal, capped at 0.9.
func ClassifyDirection(text string) DirectionResult {
	lower := strings.ToLower(text)

	match := func(cues []classProbe) []string {
		signals := make([]string, 0, len(cues))
		for _, c := range cues {
			if c.re.MatchString(lower) {
				signals = append(signals, c.label)
			}
		}
		return signals
	}

	in := match(incomingCues)
	out := match(outgoingCues)

	if len(in) == 0 && len(out) == 0 {
		return DirectionResult{
			Direction:  constants.DirectionUnknown,
			Confidence: 0.4,
			Signals:    []string{},
		}
	}

	dir := constants.DirectionIncoming
	winning := in
	if len(out) > len(in) {
		dir = constants.DirectionOutgoing
		winning = out
	}
	return DirectionResult{
		Direction:  dir,
		Confidence: clamp(0.6+0.1*float64(len(winning)), 0.4, 0.9),
		Signals:    winning,
	}
}

// ResolveDirection folds the caller's identity into the text-cue verdict.
// A document whose extracted vendor is the caller's own company was issued
// by the caller, which outweighs generic payer cues.
func ResolveDirection(text string, vendorName *string, companyName string) DirectionResult {
	res := ClassifyDirection(text)
	if vendorName == nil || strings.TrimSpace(companyName) == "" {
		return res
	}
	if !strings.EqualFold(strings.TrimSpace(*vendorName), strings.TrimSpace(companyName)) {
		return res
	}

	if res.Direction == constants.DirectionOutgoing {
		res.Signals = append(res.Signals, "vendor_is_caller")
		res.Confidence = clamp(0.6+0.1*float64(len(res.Signals)), 0.4, 0.9)
		return res
	}
	return DirectionResult{
		Direction:  constants.DirectionOutgoing,
		Confidence: 0.7,
		Signals:    []string{"vendor_is_caller"},
	}
}
