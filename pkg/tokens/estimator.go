// Package tokens estimates the LLM token cost of an assembled context
// document. The estimate is a stated approximation, not a tokenizer:
// one token per CharsPerToken characters of normalized text.
package tokens

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// CharsPerToken is the fixed average characters-per-token ratio used for
// estimation, calibrated to typical English/code token density. Swapping in
// a provider-specific tokenizer would change every downstream number, so the
// constant is part of the contract.
const CharsPerToken = 4

// CostPrecision is the number of decimal places costs are rounded to.
const CostPrecision = 4

// minCostUnit is the smallest representable cost at CostPrecision. Estimates
// that round to zero for a non-empty document report this instead, so a tiny
// document never looks free.
const minCostUnit = 1e-4

// ErrInvalidProviderTable reports an empty provider price table.
var ErrInvalidProviderTable = errors.New("invalid provider table: no providers")

// TokenReport is the estimate for one document at one point in time. It is
// never cached: callers re-estimate whenever the document changes.
type TokenReport struct {
	// Source identifies the document (path or caller-chosen handle).
	Source string `json:"source,omitempty"`
	// CharCount is the rune count of the text after line-ending
	// normalization.
	CharCount int `json:"char_count"`
	// TokenCount is CharCount / CharsPerToken; zero for whitespace-only
	// text.
	TokenCount int `json:"token_count"`
	// Costs maps provider name to estimated cost, computed from each
	// provider's price per 1000 tokens.
	Costs map[string]float64 `json:"costs"`
}

// Estimate computes a token and cost estimate for text. The providers table
// maps provider name to price per 1000 tokens and must be non-empty.
func Estimate(source, text string, providers map[string]float64) (TokenReport, error) {
	if len(providers) == 0 {
		return TokenReport{}, ErrInvalidProviderTable
	}

	normalized := Normalize(text)
	chars := len([]rune(normalized))

	count := 0
	if strings.TrimSpace(normalized) != "" {
		count = chars / CharsPerToken
	}

	costs := make(map[string]float64, len(providers))
	for name, pricePerThousand := range providers {
		costs[name] = Cost(count, pricePerThousand)
	}

	return TokenReport{
		Source:     source,
		CharCount:  chars,
		TokenCount: count,
		Costs:      costs,
	}, nil
}

// Count returns the token estimate for text alone, without cost math.
func Count(text string) int {
	normalized := Normalize(text)
	if strings.TrimSpace(normalized) == "" {
		return 0
	}
	return len([]rune(normalized)) / CharsPerToken
}

// Cost prices a token count against a per-1000-token rate, rounded to
// CostPrecision decimal places. A non-zero token count never prices at zero.
func Cost(tokenCount int, pricePerThousand float64) float64 {
	raw := float64(tokenCount) / 1000 * pricePerThousand
	shift := math.Pow(10, CostPrecision)
	rounded := math.Round(raw*shift) / shift
	if rounded == 0 && tokenCount > 0 && pricePerThousand > 0 {
		return minCostUnit
	}
	return rounded
}

// Normalize collapses CRLF and bare CR line endings to LF so the character
// count is stable across platforms.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// FormatCost renders a cost for display.
func FormatCost(cost float64) string {
	return fmt.Sprintf("$%.*f", CostPrecision, cost)
}
