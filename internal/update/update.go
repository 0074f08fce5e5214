// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package update checks GitHub Releases for a newer version. The check
// runs independently of the search flow and never fails it.
package update

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/pdiddy/golinks-search/internal/httputil"
)

// releasesBase is the GitHub API root. Declared as a var so tests can
// substitute an httptest server.
var releasesBase = "https://api.github.com"

const checkTimeout = 5 * time.Second

// Result holds the outcome of a version check.
type Result struct {
	LatestVersion string
	ReleaseURL    string
}

type ghRelease struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Check queries the latest release of slug ("owner/repo") and reports a
// Result when its tag differs from currentVersion. Any error — network,
// status, parse — yields nil: an unreachable GitHub must never break a
// search.
func Check(ctx context.Context, client *http.Client, slug, currentVersion string) *Result {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	resp, err := httputil.Get(ctx, client, releasesBase+"/repos/"+slug+"/releases/latest", "")
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	var release ghRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil
	}

	latest := strings.TrimPrefix(release.TagName, "v")
	current := strings.TrimPrefix(currentVersion, "v")
	if latest == "" || latest == current {
		return nil
	}

	return &Result{LatestVersion: latest, ReleaseURL: release.HTMLURL}
}
