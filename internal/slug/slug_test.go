package slug_test

import (
	"testing"

	"github.com/blog-platform-api/internal/slug"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Hello World", "hello-world"},
		{"lowercases", "UPPER Case Title", "upper-case-title"},
		{"punctuation removed", "What's New, in Go 1.21?", "whats-new-in-go-121"},
		{"accents stripped", "Café au Lait", "cafe-au-lait"},
		{"ampersand spelled out", "Posts & Pages", "posts-and-pages"},
		{"collapses spaces", "Too   many    spaces", "too-many-spaces"},
		{"leading and trailing space", "  padded title  ", "padded-title"},
		{"hyphens preserved as separators", "state-of-the-art", "state-of-the-art"},
		{"empty", "", ""},
		{"only punctuation", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := slug.Make(tt.title); got != tt.want {
				t.Errorf("Make(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}
