// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textutil

import "testing"

func TestAsciify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain ascii unchanged", "golinks", "golinks"},
		{"accents stripped", "Café", "Cafe"},
		{"mixed diacritics", "naïve résumé", "naive resume"},
		{"no ascii analogue dropped", "日本go", "go"},
		{"empty", "", ""},
		{"case preserved", "GoLang", "GoLang"},
		{"punctuation preserved", "go-lang_1.0;x", "go-lang_1.0;x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Asciify(tt.in); got != tt.want {
				t.Errorf("Asciify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestUnicodify(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"valid utf8", []byte("Café"), "Café"},
		{"invalid byte replaced", []byte{'g', 'o', 0xff}, "go�"},
		{"each invalid byte replaced", []byte{0xc3, 0x28, 0xa0}, "�(�"},
		{"empty", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Unicodify(tt.in); got != tt.want {
				t.Errorf("Unicodify(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
