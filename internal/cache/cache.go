// Package cache provides an explicit, caller-owned cache for analysis
// results keyed by a content hash of the input text. The pipeline itself
// stays stateless; only the serving layer decides whether to consult it.
package cache

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/paperfold/invoice-intel/internal/analysis"
)

// Key derives the cache key for one pipeline invocation. Jurisdiction and
// company name are part of the key because they change the compliance and
// direction verdicts.
func Key(text, jurisdiction, companyName string) string {
	h := sha256.New()
	h.Write([]byte(text))
	h.Write([]byte{0})
	h.Write([]byte(jurisdiction))
	h.Write([]byte{0})
	h.Write([]byte(companyName))
	return hex.EncodeToString(h.Sum(nil))
}

// Cache stores analysis results. Implementations must be safe for
// concurrent use.
type Cache interface {
	Get(key string) (analysis.Result, bool)
	Put(key string, result analysis.Result)
	Len() int
}
