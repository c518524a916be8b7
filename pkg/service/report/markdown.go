package report

import (
	"bytes"
	_ "embed"
	"strings"
	"text/template"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/continuum/pkg/domain/model"
)

//go:embed template/report.md
var reportTmpl string

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"cell": escapeCell,
}).Parse(reportTmpl))

// RenderMarkdown renders the compiled report as a markdown document
func RenderMarkdown(report *model.Report) ([]byte, error) {
	if report == nil {
		return nil, goerr.New("report is nil")
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, report); err != nil {
		return nil, goerr.Wrap(err, "failed to render report", goerr.V("organization", report.Organization))
	}
	return buf.Bytes(), nil
}

// FileName returns the export file name of a report, e.g. bcm-report-20260301.md
func FileName(report *model.Report) string {
	return "bcm-report-" + report.GeneratedAt.Format("20060102") + ".md"
}

// escapeCell keeps user text from breaking a markdown table row
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
