// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package workflow orchestrates one query: derive the cache key, reuse
// or fetch answers, and emit Script Filter feedback.
package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pdiddy/golinks-search/internal/answer"
	"github.com/pdiddy/golinks-search/internal/api"
	"github.com/pdiddy/golinks-search/internal/cache"
	"github.com/pdiddy/golinks-search/internal/cachekey"
	"github.com/pdiddy/golinks-search/internal/update"
	"github.com/pdiddy/golinks-search/pkg/types"
)

const (
	// goBase is the prefix of the URL passed to the launcher action.
	goBase = "http://go/"

	// resultIcon is bundled with the workflow.
	resultIcon = "icon.png"

	// updateIcon marks the update-available advisory row.
	updateIcon = "update-available.png"

	// warningIcon is the system caution icon shown on the empty-state
	// advisory.
	warningIcon = "/System/Library/CoreServices/CoreTypes.bundle/Contents/Resources/AlertCautionIcon.icns"
)

// Searcher fetches raw golink records for a query. *api.Client is the
// production implementation; tests substitute stubs.
type Searcher interface {
	Fetch(ctx context.Context, query string, limit int) ([]api.RawSite, error)
}

// Workflow holds the collaborators for one query run. Everything is
// injected explicitly; there is no package-level state.
type Workflow struct {
	Store    *cache.Store
	Searcher Searcher

	// MaxResults caps the limit parameter sent to the API.
	MaxResults int

	// CacheMaxAge bounds how old a cached answer set may be.
	CacheMaxAge time.Duration

	// Update, when non-nil, prepends an update-available advisory.
	Update *update.Result

	// Log receives diagnostics. Stdout carries the feedback JSON, so
	// production wires this to stderr.
	Log io.Writer
}

// Run executes one query end to end and writes the feedback JSON to out.
// The raw query is trimmed; an empty result is a valid query and still
// goes to the API. Any failure before rendering aborts the whole run —
// nothing is cached or emitted on error.
func (w *Workflow) Run(ctx context.Context, rawQuery string, out io.Writer) error {
	query := strings.TrimSpace(rawQuery)
	key := cachekey.Derive(query)
	fmt.Fprintf(w.logw(), "cache key: %q -> %q\n", query, key)

	answers, ok := w.Store.Get(key, w.CacheMaxAge)
	if !ok {
		sites, err := w.Searcher.Fetch(ctx, query, w.MaxResults)
		if err != nil {
			return err
		}
		if answers, err = answer.Map(sites); err != nil {
			return err
		}
		if err := w.Store.Put(key, answers); err != nil {
			return err
		}
	}
	fmt.Fprintf(w.logw(), "%d answers for query %q\n", len(answers), query)

	enc := json.NewEncoder(out)
	return enc.Encode(w.render(answers))
}

// render builds the feedback document: an optional update advisory,
// then one row per answer in sorted order, or the empty-state advisory.
func (w *Workflow) render(answers []types.Answer) types.Feedback {
	var fb types.Feedback

	if w.Update != nil {
		fb.Items = append(fb.Items, types.Item{
			Title:        "A newer version is available",
			Subtitle:     "↩ to install update " + w.Update.LatestVersion,
			Autocomplete: "workflow:update",
			Icon:         &types.Icon{Path: updateIcon},
		})
	}

	if len(answers) == 0 {
		fb.Items = append(fb.Items, types.Item{
			Title:    "No Answers Found",
			Subtitle: "Try a different query",
			Icon:     &types.Icon{Path: warningIcon},
		})
		return fb
	}

	for _, a := range answers {
		fb.Items = append(fb.Items, types.Item{
			Title:    a.Shortname,
			Subtitle: fmt.Sprintf("(%d) %s", a.Clicks, a.Link),
			Arg:      goBase + a.Shortname,
			UID:      a.Link,
			Valid:    true,
			Icon:     &types.Icon{Path: resultIcon},
		})
	}
	return fb
}

func (w *Workflow) logw() io.Writer {
	if w.Log == nil {
		return io.Discard
	}
	return w.Log
}
