// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package answer

import (
	"encoding/json"
	"testing"

	"github.com/pdiddy/golinks-search/internal/api"
)

func rawSite(shortname, url, clicks string) api.RawSite {
	n := json.Number(clicks)
	return api.RawSite{Shortname: &shortname, URL: &url, Clicks: &n}
}

func TestMapUnescapesEntities(t *testing.T) {
	answers, err := Map([]api.RawSite{rawSite("a&amp;b", "http://x/?a=1&amp;b=2", "1")})
	if err != nil {
		t.Fatalf("Map() error: %v", err)
	}
	if answers[0].Shortname != "a&b" {
		t.Errorf("Shortname = %q, want %q", answers[0].Shortname, "a&b")
	}
	if answers[0].Link != "http://x/?a=1&b=2" {
		t.Errorf("Link = %q, want %q", answers[0].Link, "http://x/?a=1&b=2")
	}
}

// Descending clicks, zero-click records last, ties in original API order.
func TestMapSortsByClicks(t *testing.T) {
	answers, err := Map([]api.RawSite{
		rawSite("zero-a", "http://x/a", "0"),
		rawSite("five", "http://x/b", "5"),
		rawSite("zero-b", "http://x/c", "0"),
		rawSite("three", "http://x/d", "3"),
	})
	if err != nil {
		t.Fatalf("Map() error: %v", err)
	}

	want := []string{"five", "three", "zero-a", "zero-b"}
	for i, name := range want {
		if answers[i].Shortname != name {
			t.Errorf("answers[%d].Shortname = %q, want %q", i, answers[i].Shortname, name)
		}
	}
}

func TestMapCoercesClicks(t *testing.T) {
	tests := []struct {
		name   string
		clicks string
		want   int
	}{
		{"integer", "42", 42},
		{"zero", "0", 0},
		{"float truncated", "3.0", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers, err := Map([]api.RawSite{rawSite("x", "http://x", tt.clicks)})
			if err != nil {
				t.Fatalf("Map() error: %v", err)
			}
			if answers[0].Clicks != tt.want {
				t.Errorf("Clicks = %d, want %d", answers[0].Clicks, tt.want)
			}
		})
	}
}

func TestMapRejectsBadClicks(t *testing.T) {
	for _, clicks := range []string{"lots", "-1"} {
		if _, err := Map([]api.RawSite{rawSite("x", "http://x", clicks)}); err == nil {
			t.Errorf("Map() with clicks %q should fail", clicks)
		}
	}
}

func TestMapEmpty(t *testing.T) {
	answers, err := Map(nil)
	if err != nil {
		t.Fatalf("Map() error: %v", err)
	}
	if len(answers) != 0 {
		t.Errorf("len = %d, want 0", len(answers))
	}
	if answers == nil {
		t.Error("Map(nil) returned nil slice")
	}
}
