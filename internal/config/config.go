package config

import (
	"errors"
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/vokabulatr/vokabulatr/internal/quiz"
)

type Config struct {
	Matching MatchingConfig `mapstructure:"matching"`
	Display  DisplayConfig  `mapstructure:"display"`
	Session  SessionConfig  `mapstructure:"session"`
	Outputs  OutputsConfig  `mapstructure:"outputs"`
}

type MatchingConfig struct {
	TrimWhitespace      bool `mapstructure:"trim_whitespace"`
	NormalizeWhitespace bool `mapstructure:"normalize_whitespace"`
	IgnoreCase          bool `mapstructure:"ignore_case"`
	IgnoreAccents       bool `mapstructure:"ignore_accents"`
	IgnoreNonAlphabetic bool `mapstructure:"ignore_nonalphabetic"`
}

type DisplayConfig struct {
	CorrectSymbol   string `mapstructure:"correct_symbol" validate:"required"`
	IncorrectSymbol string `mapstructure:"incorrect_symbol" validate:"required,nefield=CorrectSymbol"`
}

type SessionConfig struct {
	Shuffle      bool   `mapstructure:"shuffle"`
	Flip         bool   `mapstructure:"flip"`
	HardestCount int    `mapstructure:"hardest_count" validate:"min=1"`
	QuitToken    string `mapstructure:"quit_token" validate:"required"`
}

type OutputsConfig struct {
	ReportTemplate  string `mapstructure:"report_template" validate:"omitempty,file"`
	ReportDirectory string `mapstructure:"report_directory"`
}

// MatchPolicy returns the answer matching rules configured in the matching section
func (c Config) MatchPolicy() quiz.MatchPolicy {
	return quiz.MatchPolicy{
		TrimWhitespace:      c.Matching.TrimWhitespace,
		NormalizeWhitespace: c.Matching.NormalizeWhitespace,
		IgnoreCase:          c.Matching.IgnoreCase,
		IgnoreAccents:       c.Matching.IgnoreAccents,
		IgnoreNonAlphabetic: c.Matching.IgnoreNonAlphabetic,
	}
}

// SessionOptions returns the drilling options configured in the display and session sections
func (c Config) SessionOptions() []quiz.SessionOption {
	return []quiz.SessionOption{
		quiz.WithSymbols(c.Display.CorrectSymbol, c.Display.IncorrectSymbol),
		quiz.WithQuitToken(c.Session.QuitToken),
		quiz.WithHardestCount(c.Session.HardestCount),
	}
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/vokabulatr")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	defaultPolicy := quiz.DefaultMatchPolicy()
	v.SetDefault("matching.trim_whitespace", defaultPolicy.TrimWhitespace)
	v.SetDefault("matching.normalize_whitespace", defaultPolicy.NormalizeWhitespace)
	v.SetDefault("matching.ignore_case", defaultPolicy.IgnoreCase)
	v.SetDefault("matching.ignore_accents", defaultPolicy.IgnoreAccents)
	v.SetDefault("matching.ignore_nonalphabetic", defaultPolicy.IgnoreNonAlphabetic)
	v.SetDefault("display.correct_symbol", quiz.DefaultCorrectSymbol)
	v.SetDefault("display.incorrect_symbol", quiz.DefaultIncorrectSymbol)
	v.SetDefault("session.shuffle", false)
	v.SetDefault("session.flip", false)
	v.SetDefault("session.hardest_count", quiz.DefaultHardestCount)
	v.SetDefault("session.quit_token", quiz.DefaultQuitToken)
	// Template is optional - if not specified, the embedded report template is used
	v.SetDefault("outputs.report_template", "")
	v.SetDefault("outputs.report_directory", ".")

	if err := v.BindEnv("session.quit_token", "VOKABULATR_QUIT_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind VOKABULATR_QUIT_TOKEN environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
