// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cachekey derives filesystem-safe cache keys from raw queries.
// Derivation is pure: the cache store owns directory creation, invoked
// only when it is about to write.
package cachekey

import (
	"crypto/md5"
	"encoding/hex"
	"regexp"
	"strings"

	"github.com/pdiddy/golinks-search/internal/textutil"
)

// Namespace is the fixed prefix segment under the cache root.
const Namespace = "search/"

var (
	unsafeChars = regexp.MustCompile(`[^a-z0-9_;.-]`)
	dashRuns    = regexp.MustCompile(`-+`)
)

// Derive returns a deterministic, path-segment-safe cache key for query.
// The key is Namespace + sanitized(query) + "-" + hash(query), where the
// sanitized form is the ASCII-folded, lowercased query with every unsafe
// character replaced by "-" and dash runs collapsed. The 12-hex MD5 hash
// is computed from the raw query bytes, not the sanitized form, so
// queries that fold to the same prefix ("Café", "cafe") still get
// distinct keys. The hash disambiguates keys; it is not a security
// measure.
func Derive(query string) string {
	key := textutil.Unicodify([]byte(query))
	key = strings.ToLower(textutil.Asciify(key))
	key = unsafeChars.ReplaceAllString(key, "-") + "-" + contentHash(query)
	return Namespace + dashRuns.ReplaceAllString(key, "-")
}

// contentHash returns the first 12 hex digits of the MD5 digest of s.
func contentHash(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])[:12]
}
