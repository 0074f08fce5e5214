// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textutil normalizes arbitrary input text into ASCII-only,
// filesystem-safe material for cache keys.
package textutil

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// asciiFolder decomposes text (NFD) so that accented letters split into a
// base letter plus combining marks, then drops every non-ASCII rune. The
// result is a best-effort transliteration: diacritics vanish, characters
// with no ASCII analogue are dropped entirely.
var asciiFolder = transform.Chain(
	norm.NFD,
	runes.Remove(runes.Predicate(func(r rune) bool { return r > utf8.RuneSelf })),
)

// Unicodify decodes b as UTF-8, substituting U+FFFD for each undecodable
// byte. It never fails.
func Unicodify(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	var sb strings.Builder
	sb.Grow(len(b))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError && size == 1 {
			sb.WriteRune(utf8.RuneError)
		} else {
			sb.Write(b[:size])
		}
		b = b[size:]
	}
	return sb.String()
}

// Asciify returns s with every character reduced to its ASCII form where
// one exists ("Café" → "Cafe") and removed where none does. Lossy by
// design: it trades fidelity for stable cache-key material.
func Asciify(s string) string {
	out, _, err := transform.String(asciiFolder, s)
	if err != nil {
		// norm.NFD and runes.Remove do not return errors for valid
		// UTF-8; Unicodify guarantees validity for byte input.
		return s
	}
	return out
}
