package listing

import (
	_ "embed"
	"html/template"
	"net/url"
	"strings"

	"github.com/jackfish212/dirserve/types"
)

// DefaultStylesheet is used when no stylesheet file is configured.
//
//go:embed assets/dir_index.css
var DefaultStylesheet string

const unknownField = "unknown"

var pageTemplate = template.Must(template.New("listing").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Index of {{.Path}}</title>
<style>{{.Stylesheet}}</style>
</head>
<body>
{{.Title}}
<hr>
<table>
<thead><tr><th>Name</th><th>MIME</th><th>Size</th><th>Modified</th><th>Changed</th><th>Accessed</th><th>Created</th></tr></thead>
<tbody>
{{- if .ParentHref}}
<tr class="parent"><td><a href="{{.ParentHref}}">../</a></td><td>(go up)</td></tr>
<tr></tr>
{{- end}}
{{- range .Rows}}
<tr class="entry"><td><a href="{{.Href}}" class="{{.Class}}">{{.Label}}</a></td><td>{{.Type}}</td><td>{{.Size}}</td><td>{{.Modified}}</td><td>{{.Changed}}</td><td>{{.Accessed}}</td><td>{{.Created}}</td></tr>
{{- end}}
</tbody>
</table>
<hr>
{{with .Footer -}}
<footer id="footer">
<span class="name">{{.Name}}</span> <span class="version">{{.Version}}</span>
by <span class="author">{{.Author}}</span>
&middot; {{if .HomepageLink}}<a class="homepage" href="{{.Homepage}}">{{.Homepage}}</a>{{else}}<span class="homepage">{{.Homepage}}</span>{{end}}
&middot; rev <span class="revision" title="{{.Revision}}">{{.ShortRevision}}</span>
</footer>
{{- end}}
</body>
</html>
`))

type pageData struct {
	Path       string
	Title      template.HTML
	Stylesheet template.CSS
	ParentHref string
	Rows       []row
	Footer     footerView
}

type row struct {
	Href     string
	Class    string
	Label    string
	Type     string
	Size     string
	Modified string
	Changed  string
	Accessed string
	Created  string
}

func newRow(ce types.ClassifiedEntry) row {
	r := row{
		Href:  hrefPath(ce.TargetPath),
		Class: ce.ClassName,
		Label: ce.DisplayName,
		Type:  ce.TypeTag,
		Size:  sizeCell(ce),
	}
	if ce.Meta != nil {
		r.Modified = FormatTimestamp(ce.Meta.Modified)
		r.Changed = FormatTimestamp(ce.Meta.Changed)
		r.Accessed = FormatTimestamp(ce.Meta.Accessed)
		r.Created = FormatTimestamp(ce.Meta.Created)
	}
	return r
}

type footerView struct {
	Name          string
	Version       string
	Author        string
	Homepage      string
	HomepageLink  bool
	Revision      string
	ShortRevision string
}

func newFooter(info types.ProjectInfo) footerView {
	f := footerView{
		Name:     orUnknown(info.Name),
		Version:  orUnknown(info.Version),
		Author:   orUnknown(info.Author),
		Homepage: orUnknown(info.Homepage),
		Revision: orUnknown(info.Revision),
	}
	f.HomepageLink = strings.HasPrefix(info.Homepage, "https://") || strings.HasPrefix(info.Homepage, "http://")
	f.ShortRevision = f.Revision
	if len(info.Revision) > 8 {
		f.ShortRevision = info.Revision[:8]
	}
	return f
}

func orUnknown(s string) string {
	if s == "" {
		return unknownField
	}
	return s
}

// hrefPath percent-encodes p for use in an href while keeping "/" intact.
func hrefPath(p string) string {
	s := (&url.URL{Path: p}).EscapedPath()
	if !strings.HasPrefix(s, "/") {
		// A colon in the first segment of a relative reference would be
		// read as a scheme.
		if i := strings.IndexByte(s, ':'); i >= 0 && !strings.Contains(s[:i], "/") {
			s = "./" + s
		}
	}
	return s
}
