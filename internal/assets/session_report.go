package assets

import (
	"fmt"
	"io"
	"time"

	"github.com/vokabulatr/vokabulatr/internal/statistics"
)

// SessionReportTemplate is the data passed to the session report template
type SessionReportTemplate struct {
	SessionID  string
	DeckPath   string
	FinishedAt time.Time
	statistics.SessionStatistics
}

func WriteSessionReport(output io.Writer, templatePath string, templateData SessionReportTemplate) error {
	tmpl, err := ParseSessionReportTemplate(templatePath)
	if err != nil {
		return fmt.Errorf("ParseSessionReportTemplate() > %w", err)
	}
	if err := tmpl.Execute(output, templateData); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}
