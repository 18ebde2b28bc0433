package listing

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func TestBreadcrumbs(t *testing.T) {
	tests := []struct {
		in   string
		want []Breadcrumb
	}{
		{"/", nil},
		{"/a", []Breadcrumb{{"a", "/a"}}},
		{"/a/b", []Breadcrumb{{"a", "/a"}, {"b", "/a/b"}}},
		{"/a/b/", []Breadcrumb{{"a", "/a"}, {"b", "/a/b"}}},
		{"//a//b", []Breadcrumb{{"a", "/a"}, {"b", "/a/b"}}},
	}
	for _, tt := range tests {
		got := Breadcrumbs(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("Breadcrumbs(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Breadcrumbs(%q)[%d] = %v, want %v", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func titleDoc(t *testing.T, urlPath string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(PathTitle(urlPath))))
	if err != nil {
		t.Fatalf("parse title: %v", err)
	}
	return doc
}

func TestPathTitleRoot(t *testing.T) {
	doc := titleDoc(t, "/")
	h1 := doc.Find("h1#path")
	if h1.Length() != 1 {
		t.Fatalf("h1#path count = %d", h1.Length())
	}
	if n := h1.Find("a").Length(); n != 0 {
		t.Errorf("root title has %d links, want 0", n)
	}
	if got := h1.Text(); got != "/" {
		t.Errorf("root title text = %q, want %q", got, "/")
	}
}

func TestPathTitleSegments(t *testing.T) {
	doc := titleDoc(t, "/a/b")
	links := doc.Find("h1#path a")
	if links.Length() != 2 {
		t.Fatalf("link count = %d, want 2", links.Length())
	}
	want := []struct{ href, label string }{{"/a", "a"}, {"/a/b", "b"}}
	links.Each(func(i int, s *goquery.Selection) {
		if href, _ := s.Attr("href"); href != want[i].href {
			t.Errorf("link %d href = %q, want %q", i, href, want[i].href)
		}
		if s.Text() != want[i].label {
			t.Errorf("link %d label = %q, want %q", i, s.Text(), want[i].label)
		}
	})
	if got := doc.Find("h1#path").Text(); got != "/a/b" {
		t.Errorf("title text = %q, want /a/b", got)
	}
}

func TestPathTitleEscaping(t *testing.T) {
	doc := titleDoc(t, "/<x> y/")
	a := doc.Find("h1#path a")
	if a.Text() != "<x> y" {
		t.Errorf("label = %q", a.Text())
	}
	if href, _ := a.Attr("href"); href != "/%3Cx%3E%20y" {
		t.Errorf("href = %q", href)
	}
}

func TestHrefPath(t *testing.T) {
	tests := []struct{ in, want string }{
		{"/a/b/", "/a/b/"},
		{"/a b", "/a%20b"},
		{"/100%", "/100%25"},
		{"target/", "target/"},
		{"a:b", "./a:b"},
		{"dir/a:b", "dir/a:b"},
		{"/x/..", "/x/.."},
	}
	for _, tt := range tests {
		if got := hrefPath(tt.in); got != tt.want {
			t.Errorf("hrefPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
