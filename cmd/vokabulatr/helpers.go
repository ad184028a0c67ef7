package main

import (
	"fmt"
	"path/filepath"

	"github.com/vokabulatr/vokabulatr/internal/config"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// resolveReportPath places relative report paths under the configured report directory
func resolveReportPath(cfg *config.Config, reportPath string) string {
	if reportPath == "" || filepath.IsAbs(reportPath) || cfg.Outputs.ReportDirectory == "" {
		return reportPath
	}
	return filepath.Join(cfg.Outputs.ReportDirectory, reportPath)
}
