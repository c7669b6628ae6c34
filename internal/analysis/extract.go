package analysis

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	reInvoiceLabel = regexp.MustCompile(`(?i)\binvoice\s*(?:number|no\.?|num\.?|#)\s*[:\-]?\s*([A-Za-z0-9][A-Za-z0-9/_\-]*)`)
	reInvoiceToken = regexp.MustCompile(`\b(INV[-_]?\d[A-Za-z0-9\-]*)\b`)

	reISODate = regexp.MustCompile(`\b(\d{4})[-/](\d{1,2})[-/](\d{1,2})\b`)
	reDMYDate = regexp.MustCompile(`\b(\d{1,2})([./])(\d{1,2})([./])(\d{4})\b`)

	reTotalLabel  = regexp.MustCompile(`(?i)\b(?:grand\s+total|amount\s+due|total(?:\s+amount)?)\s*:?\s*[$€£]?\s*(\d[\d.,]*)`)
	reTaxLabel    = regexp.MustCompile(`(?i)\b(?:vat|tax)(?:\s+amount)?\s*:?\s*[$€£]?\s*(\d[\d.,]*)`)
	reCurrencyAmt = regexp.MustCompile(`[$€£]\s*(\d[\d.,]*)`)

	reVendorLabel = regexp.MustCompile(`(?im)^[ \t]*(?:vendor|from|seller|supplier)\s*:\s*(\S.*)$`)

	reServiceTerms = regexp.MustCompile(`(?i)\b(?:services?|consulting|consultancy|retainer|hourly\s+rate)\b`)
	reGoodsTerms   = regexp.MustCompile(`(?i)\b(?:products?|items?|qty|quantity|sku|unit\s+price|goods)\b`)

	reGroupedThousands = regexp.MustCompile(`^\d{1,3}(,\d{3})+$`)
)

// ExtractFields pattern-matches the raw text into a flat field set.
// It never fails: worst case is an all-nil field set with currency USD
// and invoice type "other".
func ExtractFields(text string) Fields {
	return Fields{
		VendorName:    extractVendor(text),
		InvoiceNumber: extractInvoiceNumber(text),
		InvoiceDate:   extractDate(text),
		TotalAmount:   extractTotal(text),
		TaxAmount:     extractTax(text),
		Currency:      detectCurrency(text),
		InvoiceType:   detectInvoiceType(text),
		Language:      "en",
	}
}

func detectCurrency(text string) string {
	switch {
	case strings.Contains(text, "€"):
		return "EUR"
	case strings.Contains(text, "£"):
		return "GBP"
	default:
		return "USD"
	}
}

func extractInvoiceNumber(text string) *string {
	if m := reInvoiceLabel.FindStringSubmatch(text); m != nil {
		return &m[1]
	}
	if m := reInvoiceToken.FindStringSubmatch(text); m != nil {
		return &m[1]
	}
	return nil
}

// extractDate tries ISO-ish dates first, then dd/mm/yyyy and dd.mm.yyyy.
// The result is always normalized to YYYY-MM-DD.
func extractDate(text string) *string {
	for _, m := range reISODate.FindAllStringSubmatch(text, -1) {
		if iso := normalizeDate(m[1], m[2], m[3]); iso != nil {
			return iso
		}
	}
	for _, m := range reDMYDate.FindAllStringSubmatch(text, -1) {
		// both separators must agree; "15/01.2024" is not a date
		if m[2] != m[4] {
			continue
		}
		if iso := normalizeDate(m[5], m[3], m[1]); iso != nil {
			return iso
		}
	}
	return nil
}

func normalizeDate(year, month, day string) *string {
	y, _ := strconv.Atoi(year)
	mo, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	if mo < 1 || mo > 12 || d < 1 || d > 31 {
		return nil
	}
	// reject non-existent dates like Feb 30 via round-trip
	t := time.Date(y, time.Month(mo), d, 0, 0, 0, 0, time.UTC)
	if t.Year() != y || int(t.Month()) != mo || t.Day() != d {
		return nil
	}
	iso := fmt.Sprintf("%04d-%02d-%02d", y, mo, d)
	return &iso
}

func extractTotal(text string) *float64 {
	if m := reTotalLabel.FindStringSubmatch(text); m != nil {
		if v := parseAmount(m[1]); v != nil {
			return v
		}
	}
	// fall back to the first currency-prefixed number anywhere
	if m := reCurrencyAmt.FindStringSubmatch(text); m != nil {
		return parseAmount(m[1])
	}
	return nil
}

func extractTax(text string) *float64 {
	if m := reTaxLabel.FindStringSubmatch(text); m != nil {
		return parseAmount(m[1])
	}
	return nil
}

// parseAmount strips thousands separators and parses the remainder.
// Unparsable input yields nil, never an error or NaN.
func parseAmount(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	hasDot := strings.Contains(s, ".")
	hasComma := strings.Contains(s, ",")
	switch {
	case hasDot && hasComma:
		// the later separator is the decimal one; the other groups thousands
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case hasComma:
		// "1,200" is grouping, "96,5" is a decimal comma
		if reGroupedThousands.MatchString(s) {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.Replace(s, ",", ".", 1)
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// extractVendor prefers an explicit vendor/from label; otherwise the first
// non-trivial line stands in when it is short enough to be a name.
func extractVendor(text string) *string {
	if m := reVendorLabel.FindStringSubmatch(text); m != nil {
		v := strings.TrimSpace(m[1])
		if v != "" {
			return &v
		}
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) <= 3 {
			continue
		}
		if len(line) < 60 {
			return &line
		}
		return nil
	}
	return nil
}

func detectInvoiceType(text string) string {
	switch {
	case reServiceTerms.MatchString(text):
		return "services"
	case reGoodsTerms.MatchString(text):
		return "goods"
	default:
		return "other"
	}
}
