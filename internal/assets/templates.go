package assets

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

//go:embed templates/session-report.md.go.tmpl
var fallbackSessionReportTemplate string

const fallbackSessionReportTemplateName = "session-report.md.go.tmpl"

// ParseSessionReportTemplate parses templatePath, falling back to the embedded
// report template when the path is empty, missing or does not parse.
func ParseSessionReportTemplate(templatePath string) (*template.Template, error) {
	return parseTemplateWithFallback(templatePath, fallbackSessionReportTemplateName, fallbackSessionReportTemplate)
}

func parseTemplateWithFallback(templatePath, fallbackName, fallbackTemplate string) (*template.Template, error) {
	funcMap := template.FuncMap{
		"join":    strings.Join,
		"percent": func(f float64) string { return fmt.Sprintf("%.1f%%", f) },
		"cell":    tableCell,
	}

	if templatePath != "" {
		if _, err := os.Stat(templatePath); err == nil {
			fileName := filepath.Base(templatePath)
			tmpl, err := template.New(fileName).
				Funcs(funcMap).
				ParseFiles(templatePath)
			if err == nil {
				return tmpl, nil
			}
			slog.Default().Warn("failed to parse a template, using the embedded one",
				slog.String("templatePath", templatePath),
				slog.Any("error", err),
			)
		}
	}

	tmpl, err := template.New(fallbackName).
		Funcs(funcMap).
		Parse(fallbackTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}

	return tmpl, nil
}

var tableCellReplacer = strings.NewReplacer(
	`|`, `\|`,
	"\r\n", " ",
	"\n", " ",
)

// tableCell escapes s for use inside a markdown table cell
func tableCell(s string) string {
	return tableCellReplacer.Replace(s)
}
