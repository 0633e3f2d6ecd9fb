package v1

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/kurochkinivan/dealer_notifier/internal/domain"
)

var dashboardTemplate = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Message dashboard</title>
<style>
body { font-family: sans-serif; margin: 2rem; max-width: 48rem; }
section { border: 1px solid #ccc; padding: 1rem; margin-bottom: 1rem; }
.error { color: #cf222e; }
</style>
</head>
<body>
<h1>Message dashboard</h1>
{{- if .Error}}
<p class="error">{{.Error}}</p>
{{- end}}
{{- range .Campaigns}}
<section>
<h2>{{.Title}}</h2>
<p>Spreadsheet columns: {{range $i, $c := .RequiredColumns}}{{if $i}}, {{end}}<code>{{$c}}</code>{{end}}</p>
{{- if .Attachment}}
<p>Document filename format: <code>&lt;invoice_number&gt;_&lt;anything&gt;.&lt;ext&gt;</code></p>
{{- end}}
<form method="post" enctype="multipart/form-data" action="/api/v1/campaigns/{{.Name}}/dispatch?format=html">
<p><label>Spreadsheet <input type="file" name="roster" accept=".xlsx,.xls,.csv" required></label></p>
{{- if .Attachment}}
<p><label>Documents <input type="file" name="documents" multiple required></label></p>
{{- end}}
<button type="submit">Send messages</button>
</form>
</section>
{{- end}}
</body>
</html>
`))

type dashboardData struct {
	Error     string
	Campaigns []domain.CampaignInfo
}

func (h *CampaignsHandler) Dashboard(w http.ResponseWriter, _ *http.Request) {
	h.renderDashboard(w, http.StatusOK, "")
}

func (h *CampaignsHandler) renderDashboard(w http.ResponseWriter, status int, message string) {
	buf := &bytes.Buffer{}

	err := dashboardTemplate.Execute(buf, dashboardData{
		Error:     message,
		Campaigns: h.runner.Campaigns(),
	})
	if err != nil {
		h.log.Error("failed to render dashboard", slog.String("err", err.Error()))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}
