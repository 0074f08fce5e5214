// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cachekey

import (
	"regexp"
	"strings"
	"testing"
)

func TestDeriveIdempotent(t *testing.T) {
	if Derive("golang docs") != Derive("golang docs") {
		t.Error("same query should derive the same key")
	}
}

func TestDeriveSanitizes(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantPrefix string
	}{
		{"space and bang become single dash", "go lang!", "search/go-lang-"},
		{"allowed chars untouched", "a-b_c;d.e", "search/a-b_c;d.e-"},
		{"uppercase lowered", "BugTracker", "search/bugtracker-"},
		{"consecutive unsafe chars collapse", "a  !!b", "search/a-b-"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Derive(tt.query)
			if !strings.HasPrefix(got, tt.wantPrefix) {
				t.Errorf("Derive(%q) = %q, want prefix %q", tt.query, got, tt.wantPrefix)
			}
			if strings.Contains(got, "--") {
				t.Errorf("Derive(%q) = %q contains a dash run", tt.query, got)
			}
		})
	}
}

func TestDeriveShape(t *testing.T) {
	valid := regexp.MustCompile(`^search/[a-z0-9_;.-]*-[0-9a-f]{12}$`)
	for _, q := range []string{"bugs", "go lang!", "", "Café", "日本"} {
		if got := Derive(q); !valid.MatchString(got) {
			t.Errorf("Derive(%q) = %q, not a well-formed key", q, got)
		}
	}
}

// The hash suffix is computed from the raw query, so queries that fold to
// an identical sanitized prefix still derive distinct keys.
func TestDeriveHashFromRawQuery(t *testing.T) {
	accented := Derive("Café")
	plain := Derive("cafe")

	if accented == plain {
		t.Fatalf("Derive(%q) == Derive(%q) = %q, want distinct keys", "Café", "cafe", accented)
	}

	trim := func(k string) string { return k[:strings.LastIndex(k, "-")] }
	if trim(accented) != trim(plain) {
		t.Errorf("prefixes differ: %q vs %q, want identical sanitized prefix", accented, plain)
	}
}
