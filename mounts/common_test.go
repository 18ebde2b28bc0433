package mounts

import (
	"testing"
)

func TestNormPath(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"/", ""},
		{"/foo", "foo"},
		{"/foo/", "foo"},
		{"/foo/bar", "foo/bar"},
		{"/foo/bar/", "foo/bar"},
		{"foo", "foo"},
		{"foo/", "foo"},
		{"//multiple//slashes//", "multiple/slashes"},
		{"/foo/../bar", "bar"},
		{"/../../etc", "etc"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := normPath(tt.input)
			if result != tt.expected {
				t.Errorf("normPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestSplitPath(t *testing.T) {
	tests := []struct {
		in, dir, name string
	}{
		{"", "", ""},
		{"a", "", "a"},
		{"a/b", "a", "b"},
		{"a/b/c.txt", "a/b", "c.txt"},
	}
	for _, tt := range tests {
		dir, name := splitPath(tt.in)
		if dir != tt.dir || name != tt.name {
			t.Errorf("splitPath(%q) = (%q, %q), want (%q, %q)", tt.in, dir, name, tt.dir, tt.name)
		}
	}
}
