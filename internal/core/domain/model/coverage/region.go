package coverage

import (
	"math"
	"strconv"
	"strings"
)

// SpecialPricingMarkers are the raw key fragments that select the discounted doorstep tier.
var SpecialPricingMarkers = []string{"IAH", "DFW"}

// Region is a doorstep coverage area backed by one region table.
type Region struct {
	name    string
	key     string
	special bool
}

// Name is the cleaned, public region name.
func (r Region) Name() string {
	return r.name
}

// Key is the raw table key the region was derived from.
func (r Region) Key() string {
	return r.key
}

// IsSpecialPricing reports whether the region is in the discounted doorstep tier.
func (r Region) IsSpecialPricing() bool {
	return r.special
}

// CleanRegionName derives the public region name from a raw table key.
//
// The key is split on whitespace. When it has more than two tokens, every token but the
// last is kept and joined with a single space; otherwise only the first token is kept.
func CleanRegionName(rawKey string) string {
	tokens := strings.Fields(rawKey)
	switch {
	case len(tokens) == 0:
		return ""
	case len(tokens) > 2:
		return strings.Join(tokens[:len(tokens)-1], " ")
	default:
		return tokens[0]
	}
}

// IsSpecialPricingKey reports whether rawKey contains any of SpecialPricingMarkers.
func IsSpecialPricingKey(rawKey string) bool {
	for _, marker := range SpecialPricingMarkers {
		if strings.Contains(rawKey, marker) {
			return true
		}
	}
	return false
}

// CanonicalCell normalizes a reference table cell for ZIP comparison.
//
// The value is trimmed. Numeric renderings with a fractional part or an exponent, as
// spreadsheets produce for number-typed cells ("60601.0", "6.0601E4"), are truncated to
// their integer digits. Anything else keeps its trimmed text, so "02134" stays "02134".
func CanonicalCell(value string) string {
	v := strings.TrimSpace(value)
	if !strings.ContainsAny(v, ".eE") {
		return v
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return v
	}
	return strconv.FormatInt(int64(math.Trunc(f)), 10)
}
