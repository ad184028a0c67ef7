package converter

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vokabulatr/vokabulatr/internal/assets"
	"github.com/vokabulatr/vokabulatr/internal/statistics"
)

func sessionReportMarkdown(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, assets.WriteSessionReport(&buf, "", assets.SessionReportTemplate{
		SessionID:  "0f8b6c1e",
		DeckPath:   "german.csv",
		FinishedAt: time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC),
		SessionStatistics: statistics.SessionStatistics{
			Cards: []statistics.CardStatistics{
				{Index: 0, Front: "der Hund", Back: "dog", Attempts: 2, Correct: 1, Wrong: 1, History: "-+"},
				{Index: 1, Front: "ja | nein", Back: "yes | no", Attempts: 1, Correct: 1, History: "+"},
			},
			CardCount:      2,
			AttemptedCards: 2,
			Attempts:       3,
			Correct:        2,
			Percent:        66.7,
			HasAttempts:    true,
			History:        "-++",
		},
	}))
	return buf.Bytes()
}

func TestConvertMarkdownToPDF(t *testing.T) {
	tests := []struct {
		name       string
		fileName   string
		wantErrMsg string
	}{
		{
			name:       "wrong extension",
			fileName:   "report.md",
			wantErrMsg: "output file must have .pdf extension",
		},
		{
			name:     "session report",
			fileName: "report.pdf",
		},
		{
			name:     "uppercase extension",
			fileName: "REPORT.PDF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			pdfPath := filepath.Join(dir, tt.fileName)

			err := ConvertMarkdownToPDF(sessionReportMarkdown(t), pdfPath)

			if tt.wantErrMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
				assert.NoFileExists(t, pdfPath)
				return
			}
			require.NoError(t, err)

			content, err := os.ReadFile(pdfPath)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(content, []byte("%PDF-")), "output should be a PDF document")

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Len(t, entries, 1, "only the PDF should be written")
		})
	}
}
