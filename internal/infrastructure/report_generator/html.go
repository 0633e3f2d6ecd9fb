package report_generator

import (
	"html/template"
	"io"

	"github.com/kurochkinivan/dealer_notifier/internal/domain"
)

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Dispatch report: {{.Campaign}}</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: .3rem .6rem; text-align: left; }
.sent { color: #1a7f37; } .failed, .error { color: #cf222e; } .skipped { color: #9a6700; }
</style>
</head>
<body>
<h1>Dispatch report: {{.Campaign}}</h1>
<p>Processed {{.Summary.Total}} item(s): {{.Summary.Sent}} sent, {{.Summary.Failed}} failed, {{.Summary.Skipped}} skipped, {{.Summary.Errored}} errors.</p>
<p><small>Batch {{.BatchID}}</small></p>
<table>
<thead><tr><th>File</th><th>Key</th><th>Phone</th><th>Dealer</th><th>Status</th><th>Detail</th></tr></thead>
<tbody>
{{- range .Results}}
<tr class="{{.Status.Class}}"><td>{{.File}}</td><td>{{.Key}}</td><td>{{.Phone}}</td><td>{{.Dealer}}</td><td>{{.Status}}</td><td>{{.Detail}}</td></tr>
{{- end}}
</tbody>
</table>
<p><a href="/">Back</a></p>
</body>
</html>
`))

type HTMLGenerator struct{}

func NewHTML() *HTMLGenerator {
	return &HTMLGenerator{}
}

func (g *HTMLGenerator) ContentType() string {
	return "text/html; charset=utf-8"
}

func (g *HTMLGenerator) GenerateReport(w io.Writer, report *domain.Report) error {
	return reportTemplate.Execute(w, report)
}
