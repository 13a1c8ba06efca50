package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Water Extraction", "water-extraction"},
		{"  Mold   Remediation ", "mold-remediation"},
		{"Roof & Gutter Repair!", "roof-gutter-repair"},
		{"St. Louis, MO", "st-louis-mo"},
		{"already-a-slug", "already-a-slug"},
		{"--leading and trailing--", "leading-and-trailing"},
		{"snake_case_kept", "snake_case_kept"},
		{"Café Déjà Vu", "caf-dj-vu"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{
		"Water Extraction", "a - b", "x\t\ty", "Ünïcödé String", "100% Guaranteed",
		"tabs\tand\nnewlines", "-", "a--b---c", "İstanbul", "e f",
	}
	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once), "input %q", in)
	}
}
