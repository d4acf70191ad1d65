package domain

import (
	"strings"
	"unicode/utf8"
)

// Keyword match types.
const (
	MatchExact  = "EXACT"
	MatchPhrase = "PHRASE"
	MatchBroad  = "BROAD"
)

const maxKeywordLen = 80

// Keyword is the read model for a platform keyword criterion.
type Keyword struct {
	CriterionID string `json:"criterionId"`
	Text        string `json:"text"`
	MatchType   string `json:"matchType"`
	Status      string `json:"status"`
}

// KeywordRequest is one keyword to add. MatchType may be empty and
// defaults to BROAD when composed.
type KeywordRequest struct {
	Text      string `json:"text"`
	MatchType string `json:"matchType"`
}

// ValidateKeywords checks a batch of keyword requests. The batch must be
// non-empty; each text must be non-blank and at most 80 characters after
// trimming, and each match type must be in the supported set when given.
func ValidateKeywords(keywords []KeywordRequest) error {
	if len(keywords) == 0 {
		return invalid("keywords array is required")
	}
	for _, k := range keywords {
		text := strings.TrimSpace(k.Text)
		if text == "" || utf8.RuneCountInString(text) > maxKeywordLen {
			return invalid("each keyword must be 1-80 characters")
		}
		switch k.MatchType {
		case "", MatchExact, MatchPhrase, MatchBroad:
		default:
			return invalid("matchType must be EXACT, PHRASE or BROAD")
		}
	}
	return nil
}
