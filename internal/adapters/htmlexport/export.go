// Package htmlexport writes a standalone HTML report for a scan: a
// summary block (total and per-pattern counts, line range) followed by
// the per-match detail. html/template handles escaping, so pattern and
// context text from arbitrary input files is safe to embed.
package htmlexport

import (
	"fmt"
	"html/template"
	"os"

	"github.com/corey/keyscan/internal/domain/report"
	"github.com/corey/keyscan/internal/ports"
)

const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>keyscan report</title>
<style>
body { font-family: Arial, sans-serif; line-height: 1.6; }
.match { margin-bottom: 15px; border-left: 3px solid #3498db; padding-left: 10px; }
.pattern { font-weight: bold; color: #e74c3c; }
.context { color: #7f8c8d; font-style: italic; }
.summary { background-color: #f9f9f9; padding: 15px; margin-bottom: 20px; }
</style>
</head>
<body>
<h1>Scan results</h1>
<div class="summary">
<h2>Summary</h2>
<p>Total matches: {{.Summary.Total}}</p>
{{if .Summary.PerPattern}}<h3>Matches per pattern</h3>
<ul>
{{range .Summary.PerPattern}}<li>{{.Pattern}}: {{.Count}}</li>
{{end}}</ul>
<p>Lines {{.Summary.FirstLine}} through {{.Summary.LastLine}}</p>
{{end}}</div>
<h2>Match detail</h2>
{{range .Matches}}<div class="match">
<p><strong>Line {{.Line}}, column {{.Column}}:</strong> pattern <span class="pattern">{{.Pattern}}</span></p>
<p class="context">Context: &quot;{{.Context}}&quot;</p>
</div>
{{end}}</body>
</html>
`

var tmpl = template.Must(template.New("report").Parse(reportTemplate))

type reportData struct {
	Summary *report.Summary
	Matches []ports.Match
}

// Export writes the HTML report for matches to path.
func Export(path string, matches []ports.Match) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer f.Close()

	data := reportData{
		Summary: report.Summarize(matches),
		Matches: matches,
	}
	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return f.Close()
}
