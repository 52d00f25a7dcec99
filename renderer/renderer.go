// Package renderer produces the report outputs: the static HTML page and
// the console summary.
package renderer

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/etnz/aforro"
)

//go:embed report.html
var templates embed.FS

// ReportHTML renders the report page. The only dynamic value on the page is
// the current/invested ratio, rendered with 10 decimals.
func ReportHTML(s aforro.Summary) (string, error) {
	content, err := templates.ReadFile("report.html")
	if err != nil {
		return "", fmt.Errorf("cannot read report template: %w", err)
	}
	tpl, err := template.New("report").Parse(string(content))
	if err != nil {
		return "", fmt.Errorf("cannot parse report template: %w", err)
	}
	data := struct{ Ratio string }{Ratio: aforro.FormatNumber(s.Ratio, 10)}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("cannot render report: %w", err)
	}
	return buf.String(), nil
}

// WriteReport renders the report page into path, creating parent directories
// as needed.
func WriteReport(path string, s aforro.Summary) error {
	html, err := ReportHTML(s)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("cannot create report directory %q: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return fmt.Errorf("cannot write report %q: %w", path, err)
	}
	return nil
}
