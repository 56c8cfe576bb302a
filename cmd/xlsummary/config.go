package main

import (
	_ "embed"

	"github.com/ukaji3/xlsummary-go/internal/utils"
	"github.com/ukaji3/xlsummary-go/pkg/xlsummary"
	"go.uber.org/zap"
)

//go:embed default_config.yaml
var defaultConfiguration []byte

const (
	configurationName = "xlsummary"
	configurationType = "yaml"
	environmentPrefix = "XLSUMMARY"
)

// Configuration mirrors default_config.yaml.
type Configuration struct {
	Common  CommonConfiguration  `mapstructure:"common"`
	Summary SummaryConfiguration `mapstructure:"summary"`
	Batch   BatchConfiguration   `mapstructure:"batch"`
}

// CommonConfiguration stores logging settings.
type CommonConfiguration struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// SummaryConfiguration controls the Summary sheet layout and value lookup.
type SummaryConfiguration struct {
	SheetName    string `mapstructure:"sheet_name"`
	Label        string `mapstructure:"label"`
	FallbackCell string `mapstructure:"fallback_cell"`
}

// BatchConfiguration controls which files are processed.
type BatchConfiguration struct {
	Directory  string   `mapstructure:"directory"`
	Extensions []string `mapstructure:"extensions"`
	DryRun     bool     `mapstructure:"dry_run"`
}

// loadConfiguration resolves the embedded defaults, the optional file at path
// and XLSUMMARY_* environment variables.
func loadConfiguration(path string) (Configuration, utils.LoadedConfiguration, error) {
	loader := utils.NewConfigurationLoader(configurationName, configurationType, environmentPrefix, []string{"."})
	loader.SetEmbeddedConfiguration(defaultConfiguration)

	var cfg Configuration
	loaded, err := loader.LoadConfiguration(path, nil, &cfg)
	return cfg, loaded, err
}

// Options converts the configuration into update options.
func (c Configuration) Options(logger *zap.Logger) xlsummary.Options {
	opts := xlsummary.DefaultOptions()
	if c.Summary.SheetName != "" {
		opts.SummarySheet = c.Summary.SheetName
	}
	if c.Summary.Label != "" {
		opts.Label = c.Summary.Label
	}
	if c.Summary.FallbackCell != "" {
		opts.FallbackCell = c.Summary.FallbackCell
	}
	if len(c.Batch.Extensions) > 0 {
		opts.Extensions = append([]string(nil), c.Batch.Extensions...)
	}
	opts.DryRun = c.Batch.DryRun
	opts.Logger = logger
	return opts
}
