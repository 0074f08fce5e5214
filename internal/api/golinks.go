// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package api fetches raw golink records from the search endpoint.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pdiddy/golinks-search/internal/httputil"
	"github.com/pdiddy/golinks-search/internal/secrets"
)

// DefaultBaseURL is the public search endpoint used when no api_url
// override is configured.
const DefaultBaseURL = "https://api.stackexchange.com/2.2/search/advanced"

// ErrMalformedResponse reports a response that parsed as JSON but does
// not match the expected schema. The shape is validated here at the API
// boundary rather than trusted downstream.
var ErrMalformedResponse = errors.New("malformed API response")

// RawSite is one record of the API's sites array. Fields are pointers so
// a missing field is distinguishable from an empty one; values are still
// HTML-escaped as received.
type RawSite struct {
	Shortname *string      `json:"shortname"`
	URL       *string      `json:"url"`
	Clicks    *json.Number `json:"clicks"`
}

type sitesResponse struct {
	Sites []RawSite `json:"sites"`
}

// Client queries the golinks search API.
type Client struct {
	HTTPClient *http.Client

	// BaseURL is the search endpoint. Tests substitute an httptest
	// server.
	BaseURL string

	// UserAgent identifies the program and its help URL.
	UserAgent string

	// Credentials are optional application credentials that raise the
	// per-IP request quota. Empty fields are omitted from the request.
	Credentials secrets.Credentials
}

// Fetch performs one GET with short_name=query and limit=limit and
// returns the decoded sites records. An empty query is sent as-is; the
// API decides what it matches. A non-2xx status, malformed JSON, or a
// record missing a required field aborts with an error — no retry, no
// partial result. An empty payload yields an empty slice.
func (c *Client) Fetch(ctx context.Context, query string, limit int) ([]RawSite, error) {
	params := url.Values{
		"short_name": {query},
		"limit":      {strconv.Itoa(limit)},
	}
	if c.Credentials.APIKey != "" {
		params.Set("key", c.Credentials.APIKey)
	}
	if c.Credentials.ClientID != "" {
		params.Set("client_id", c.Credentials.ClientID)
	}
	reqURL := c.BaseURL + "?" + params.Encode()

	resp, err := httputil.Get(ctx, c.HTTPClient, reqURL, c.UserAgent)
	if err != nil {
		return nil, fmt.Errorf("golinks API request: %w", err)
	}
	defer resp.Body.Close()

	var sr sitesResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("parsing golinks response: %w", err)
	}

	for i, site := range sr.Sites {
		if err := site.validate(); err != nil {
			return nil, fmt.Errorf("sites[%d]: %w", i, err)
		}
	}
	return sr.Sites, nil
}

func (r RawSite) validate() error {
	switch {
	case r.Shortname == nil:
		return fmt.Errorf("%w: missing shortname", ErrMalformedResponse)
	case r.URL == nil:
		return fmt.Errorf("%w: missing url", ErrMalformedResponse)
	case r.Clicks == nil:
		return fmt.Errorf("%w: missing clicks", ErrMalformedResponse)
	}
	return nil
}
