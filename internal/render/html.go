package render

import (
	"embed"
	"html/template"
	"io"

	"srtcheck/internal/align"
	"srtcheck/internal/report"
)

//go:embed templates/report.html.tmpl
var templateFS embed.FS

var reportTemplate = template.Must(template.New("report.html.tmpl").Funcs(template.FuncMap{
	"isDelete": func(s align.Segment) bool { return s.Kind == align.SegDelete },
	"isInsert": func(s align.Segment) bool { return s.Kind == align.SegInsert },
}).ParseFS(templateFS, "templates/report.html.tmpl"))

// HTML writes doc as a standalone HTML page. Deleted and inserted runs are
// marked up with <del> and <ins>.
func HTML(w io.Writer, doc report.Document) error {
	return reportTemplate.Execute(w, doc)
}
