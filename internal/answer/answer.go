// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package answer maps raw API records into Answers and orders them for
// display.
package answer

import (
	"fmt"
	"html"
	"sort"

	"github.com/pdiddy/golinks-search/internal/api"
	"github.com/pdiddy/golinks-search/pkg/types"
)

// Map converts raw sites records into Answers: shortname and url are
// HTML-entity-unescaped, clicks is coerced to a non-negative int, and
// the sequence is sorted by descending clicks. The sort is stable, so
// ties keep the API's original order and zero-click records end up last
// in their original order. A record that cannot be coerced fails the
// whole mapping; there are no partial records.
func Map(sites []api.RawSite) ([]types.Answer, error) {
	answers := make([]types.Answer, 0, len(sites))
	for i, site := range sites {
		clicks, err := coerceClicks(site)
		if err != nil {
			return nil, fmt.Errorf("sites[%d]: %w", i, err)
		}
		answers = append(answers, types.Answer{
			Shortname: html.UnescapeString(*site.Shortname),
			Link:      html.UnescapeString(*site.URL),
			Clicks:    clicks,
		})
	}

	sort.SliceStable(answers, func(i, j int) bool {
		return answers[i].Clicks > answers[j].Clicks
	})
	return answers, nil
}

func coerceClicks(site api.RawSite) (int, error) {
	n, err := site.Clicks.Int64()
	if err != nil {
		// The API occasionally reports clicks as a float.
		f, ferr := site.Clicks.Float64()
		if ferr != nil {
			return 0, fmt.Errorf("%w: clicks %q is not numeric", api.ErrMalformedResponse, site.Clicks.String())
		}
		n = int64(f)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: negative clicks %d", api.ErrMalformedResponse, n)
	}
	return int(n), nil
}
