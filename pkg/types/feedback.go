// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Item is a single row in the launcher's Script Filter result list.
type Item struct {
	// Title is the main text of the row (the golink shortname).
	Title string `json:"title"`

	// Subtitle is the secondary text ("(<clicks>) <link>").
	Subtitle string `json:"subtitle,omitempty"`

	// Arg is the value passed to the next workflow action when the row
	// is activated (the "http://go/<shortname>" URL). Empty for
	// advisory rows.
	Arg string `json:"arg,omitempty"`

	// UID lets the launcher track selection history across runs.
	UID string `json:"uid,omitempty"`

	// Valid marks the row as actionable. Advisory rows are not.
	Valid bool `json:"valid"`

	// Icon names the icon file shown next to the row.
	Icon *Icon `json:"icon,omitempty"`

	// Autocomplete replaces the query when the user tabs on the row.
	// Used by the update advisory to trigger the workflow updater.
	Autocomplete string `json:"autocomplete,omitempty"`
}

// Icon references an icon file by path.
type Icon struct {
	Path string `json:"path"`
}

// Feedback is the top-level Script Filter JSON document written to stdout.
type Feedback struct {
	Items []Item `json:"items"`
}
