// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for components that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "golinks-search/0.1 (https://github.com/pdiddy/golinks-search)").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the golinks API query.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIURL is the golinks search endpoint. Overridable via the
	// api_url environment variable.
	APIURL string `json:"api_url" yaml:"api_url"`

	// MaxResults is the result cap sent as the limit parameter
	// (default 50). Overridable via max_results.
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// CacheConfig holds settings for the filesystem result cache.
type CacheConfig struct {
	// Dir is the cache root directory. Entries live under it at paths
	// derived from the cache key.
	Dir string `json:"dir" yaml:"dir"`

	// MaxAge is how long a cached result set stays valid (default 20s).
	// Overridable via cache_max_age, in seconds.
	MaxAge time.Duration `json:"max_age" yaml:"max_age"`
}

// UpdateConfig holds settings for the release update check.
type UpdateConfig struct {
	// GitHubSlug is the "owner/repo" whose releases are checked.
	GitHubSlug string `json:"github_slug" yaml:"github_slug"`

	// Disabled turns the update check off entirely.
	Disabled bool `json:"disabled" yaml:"disabled"`
}

// Config is the top-level configuration for golinks-search.
type Config struct {
	Search SearchConfig `json:"search" yaml:"search"`
	Cache  CacheConfig  `json:"cache" yaml:"cache"`
	Update UpdateConfig `json:"update" yaml:"update"`
}
