package listing

import (
	"html/template"
	"strings"
)

// Breadcrumb is one clickable segment of the page title.
type Breadcrumb struct {
	Name string // raw segment text
	Path string // cumulative path up to and including this segment
}

// Breadcrumbs splits a URL path into cumulative segments. Empty segments
// are dropped, so "/" yields none and "/a/b/" yields a and b.
func Breadcrumbs(urlPath string) []Breadcrumb {
	var (
		crumbs []Breadcrumb
		prefix strings.Builder
	)
	for _, seg := range strings.Split(urlPath, "/") {
		if seg == "" {
			continue
		}
		prefix.WriteByte('/')
		prefix.WriteString(seg)
		crumbs = append(crumbs, Breadcrumb{Name: seg, Path: prefix.String()})
	}
	return crumbs
}

// PathTitle renders the breadcrumb trail: a literal "/" followed by the
// segment links joined with "/".
func PathTitle(urlPath string) template.HTML {
	var b strings.Builder
	b.WriteString(`<h1 id="path">/`)
	for i, c := range Breadcrumbs(urlPath) {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(`<a href="`)
		b.WriteString(template.HTMLEscapeString(hrefPath(c.Path)))
		b.WriteString(`">`)
		b.WriteString(template.HTMLEscapeString(c.Name))
		b.WriteString(`</a>`)
	}
	b.WriteString(`</h1>`)
	return template.HTML(b.String())
}
