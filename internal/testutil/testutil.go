// Package testutil provides shared test helpers for creating config files and deck fixtures.
package testutil

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vokabulatr/vokabulatr/internal/quiz"
)

// ConfigOption configures optional fields when creating a config file fixture.
type ConfigOption func(*testConfig)

type testConfig struct {
	quitToken    string
	hardestCount int
	shuffle      bool
	templatePath string
}

// WithQuitToken overrides the session quit token.
func WithQuitToken(token string) ConfigOption {
	return func(cfg *testConfig) {
		cfg.quitToken = token
	}
}

// WithHardestCount overrides the default count of the hardest cards command.
func WithHardestCount(n int) ConfigOption {
	return func(cfg *testConfig) {
		cfg.hardestCount = n
	}
}

// WithShuffle enables shuffling when a session starts.
func WithShuffle() ConfigOption {
	return func(cfg *testConfig) {
		cfg.shuffle = true
	}
}

// WithReportTemplate sets a report template file.
func WithReportTemplate(path string) ConfigOption {
	return func(cfg *testConfig) {
		cfg.templatePath = path
	}
}

// SetupTestConfig creates a config file and a reports directory for testing.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, opts ...ConfigOption) string {
	t.Helper()

	cfg := testConfig{
		quitToken:    quiz.DefaultQuitToken,
		hardestCount: quiz.DefaultHardestCount,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	reportsDir := filepath.Join(tmpDir, "reports")
	require.NoError(t, os.MkdirAll(reportsDir, 0755))

	configContent := fmt.Sprintf(`matching:
  ignore_case: true
  ignore_accents: true
session:
  shuffle: %t
  hardest_count: %d
  quit_token: %q
outputs:
  report_directory: %s
`,
		cfg.shuffle,
		cfg.hardestCount,
		cfg.quitToken,
		reportsDir,
	)
	if cfg.templatePath != "" {
		configContent += fmt.Sprintf("  report_template: %s\n", cfg.templatePath)
	}

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// CreateDeckFile writes pairs into dir/name as CSV or YAML, depending on the extension.
// Returns the path to the deck file.
func CreateDeckFile(t *testing.T, dir, name string, pairs []quiz.Pair) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))

	var content []byte
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		var sb strings.Builder
		writer := csv.NewWriter(&sb)
		for _, pair := range pairs {
			require.NoError(t, writer.Write([]string{pair.Front, pair.Back}))
		}
		writer.Flush()
		require.NoError(t, writer.Error())
		content = []byte(sb.String())
	case ".yml", ".yaml":
		var err error
		content, err = yaml.Marshal(pairs)
		require.NoError(t, err)
	default:
		t.Fatalf("unsupported deck file extension: %s", name)
	}

	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}
