// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the golinks-search workflow.
package types

// Answer represents one golink returned by the search API, after
// HTML-entity unescaping and clicks coercion. Constructed once per API
// record and immutable afterwards.
type Answer struct {
	// Shortname is the golink alias (the part after "go/").
	Shortname string `json:"shortname" yaml:"shortname"`

	// Link is the destination URL the golink redirects to.
	Link string `json:"link" yaml:"link"`

	// Clicks is the popularity count reported by the API. Never negative.
	Clicks int `json:"clicks" yaml:"clicks"`
}
