package converter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMarkdownToHTML(t *testing.T) {
	got := string(RenderMarkdownToHTML([]byte("# Session report\n\n- Attempts: 2\n")))
	assert.Contains(t, got, "<h1>Session report</h1>")
	assert.Contains(t, got, "<li>Attempts: 2</li>")
}

func TestConvertMarkdownToHTML(t *testing.T) {
	tests := []struct {
		name       string
		fileName   string
		wantErrMsg string
		wantBody   []string
	}{
		{
			name:       "wrong extension",
			fileName:   "report.txt",
			wantErrMsg: "output file must have .html extension",
		},
		{
			name:       "missing directory",
			fileName:   filepath.Join("missing", "report.html"),
			wantErrMsg: "os.WriteFile",
		},
		{
			name:     "session report",
			fileName: "report.html",
			wantBody: []string{
				"<title>german &lt;1&gt;</title>",
				"<h1>Session report</h1>",
				"<li>Attempts: 3</li>",
				"<td>der Hund</td>",
				"<td>ja | nein</td>",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			htmlPath := filepath.Join(t.TempDir(), tt.fileName)

			err := ConvertMarkdownToHTML(sessionReportMarkdown(t), htmlPath, "german <1>")
			if tt.wantErrMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
				return
			}
			require.NoError(t, err)

			content, err := os.ReadFile(htmlPath)
			require.NoError(t, err)
			for _, want := range tt.wantBody {
				assert.Contains(t, string(content), want)
			}
		})
	}
}
