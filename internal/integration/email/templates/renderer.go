// Package templates provides email template rendering functionality.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/shopledger/backend/internal/application/adapter"
)

//go:embed *.html *.txt
var templateFS embed.FS

// Renderer handles email template rendering.
type Renderer struct {
	htmlTemplates *htmltemplate.Template
	textTemplates *texttemplate.Template
}

// NewRenderer creates a new template renderer.
func NewRenderer() (*Renderer, error) {
	htmlTmpl, err := htmltemplate.ParseFS(templateFS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML templates: %w", err)
	}

	textTmpl, err := texttemplate.ParseFS(templateFS, "*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to parse text templates: %w", err)
	}

	return &Renderer{
		htmlTemplates: htmlTmpl,
		textTemplates: textTmpl,
	}, nil
}

// RenderWeeklyReport renders both versions of the weekly report email.
func (r *Renderer) RenderWeeklyReport(data adapter.WeeklyReportData) (string, string, error) {
	var htmlBuf bytes.Buffer
	if err := r.htmlTemplates.ExecuteTemplate(&htmlBuf, "weekly_report.html", data); err != nil {
		return "", "", fmt.Errorf("failed to render HTML template: %w", err)
	}

	var textBuf bytes.Buffer
	if err := r.textTemplates.ExecuteTemplate(&textBuf, "weekly_report.txt", data); err != nil {
		return "", "", fmt.Errorf("failed to render text template: %w", err)
	}

	return htmlBuf.String(), textBuf.String(), nil
}

// Ensure Renderer satisfies the adapter interface.
var _ adapter.ReportRenderer = (*Renderer)(nil)
