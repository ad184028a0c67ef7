package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vokabulatr/vokabulatr/internal/config"
	"github.com/vokabulatr/vokabulatr/internal/deckfile"
	"github.com/vokabulatr/vokabulatr/internal/quiz"
)

func TestSetupTestConfig(t *testing.T) {
	tmpDir := t.TempDir()
	templatePath := filepath.Join(tmpDir, "report.md.go.tmpl")
	require.NoError(t, os.WriteFile(templatePath, []byte("{{ .Attempts }}"), 0644))

	got := SetupTestConfig(t, tmpDir, WithQuitToken("exit"), WithHardestCount(3), WithShuffle(), WithReportTemplate(templatePath))

	want := filepath.Join(tmpDir, "config.yml")
	assert.Equal(t, want, got)

	info, err := os.Stat(filepath.Join(tmpDir, "reports"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	loader, err := config.NewConfigLoader(got)
	require.NoError(t, err)
	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "exit", cfg.Session.QuitToken)
	assert.Equal(t, 3, cfg.Session.HardestCount)
	assert.True(t, cfg.Session.Shuffle)
	assert.Equal(t, templatePath, cfg.Outputs.ReportTemplate)
	assert.Equal(t, filepath.Join(tmpDir, "reports"), cfg.Outputs.ReportDirectory)
}

func TestCreateDeckFile(t *testing.T) {
	pairs := []quiz.Pair{
		{Front: "der Hund", Back: "dog"},
		{Front: "ja, bitte", Back: "yes, please"},
	}

	for _, name := range []string{"deck.csv", "nested/deck.yml", "deck.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := CreateDeckFile(t, t.TempDir(), name, pairs)

			got, err := deckfile.Load(path)
			require.NoError(t, err)
			assert.Equal(t, pairs, got)
		})
	}
}
