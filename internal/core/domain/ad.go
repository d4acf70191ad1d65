package domain

import (
	"net/url"
	"unicode/utf8"
)

// Creative slot limits for responsive search ads. Counts are minimums,
// lengths are maximums, both inclusive.
const (
	minHeadlines      = 3
	maxHeadlineLen    = 30
	minDescriptions   = 2
	maxDescriptionLen = 90
)

// CreateAdRequest is the inbound shape for ad creation. Headlines and
// descriptions are ordered; the first headline is pinned to the primary
// slot when composed.
type CreateAdRequest struct {
	Headlines    []string `json:"headlines"`
	Descriptions []string `json:"descriptions"`
	FinalURL     string   `json:"finalUrl"`
}

// Validate checks the structural rules for ad creation. A single
// offending element in either list fails the whole request; there is no
// partial creation.
func (r CreateAdRequest) Validate() error {
	if len(r.Headlines) < minHeadlines {
		return invalid("at least 3 headlines are required")
	}
	if len(r.Descriptions) < minDescriptions {
		return invalid("at least 2 descriptions are required")
	}
	for _, h := range r.Headlines {
		if utf8.RuneCountInString(h) > maxHeadlineLen {
			return invalid("each headline must be at most 30 characters")
		}
	}
	for _, d := range r.Descriptions {
		if utf8.RuneCountInString(d) > maxDescriptionLen {
			return invalid("each description must be at most 90 characters")
		}
	}
	if r.FinalURL == "" {
		return invalid("finalUrl is required")
	}
	u, err := url.Parse(r.FinalURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return invalid("finalUrl must be a well-formed absolute URL")
	}
	return nil
}
