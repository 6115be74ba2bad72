package domain

import "strings"

// Relevance grades how closely a discussion title relates to the tracked
// ecosystem.
type Relevance string

const (
	RelevanceHigh   Relevance = "high"
	RelevanceMedium Relevance = "medium"
	RelevanceLow    Relevance = "low"
)

// ExtractKeywords returns the subset of keywords contained in text
// (case-insensitive substring match), preserving the keyword order.
func ExtractKeywords(text string, keywords []string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			found = append(found, kw)
		}
	}
	return found
}

// ScoreRelevance grades a title: high when it matches a high-value keyword,
// medium when it matches any watched keyword, low otherwise.
func ScoreRelevance(title string, keywords, highValue []string) Relevance {
	lower := strings.ToLower(title)
	for _, kw := range highValue {
		if strings.Contains(lower, kw) {
			return RelevanceHigh
		}
	}
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return RelevanceMedium
		}
	}
	return RelevanceLow
}
