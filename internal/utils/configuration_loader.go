package utils

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ConfigurationLoader wraps Viper to load an embedded default, an optional
// configuration file and environment overrides.
type ConfigurationLoader struct {
	configurationName     string
	configurationType     string
	environmentPrefix     string
	searchPaths           []string
	embeddedConfiguration []byte
}

// LoadedConfiguration surfaces metadata about the resolved configuration.
type LoadedConfiguration struct {
	ConfigFileUsed string
}

// NewConfigurationLoader creates a loader that searches the given paths and respects an environment prefix.
func NewConfigurationLoader(configurationName, configurationType, environmentPrefix string, searchPaths []string) *ConfigurationLoader {
	return &ConfigurationLoader{
		configurationName: configurationName,
		configurationType: configurationType,
		environmentPrefix: environmentPrefix,
		searchPaths:       append([]string(nil), searchPaths...),
	}
}

// SetEmbeddedConfiguration stores configuration merged before any user file.
func (loader *ConfigurationLoader) SetEmbeddedConfiguration(data []byte) {
	loader.embeddedConfiguration = append([]byte(nil), data...)
}

// LoadConfiguration populates target from the embedded defaults, defaultValues,
// the configuration file (explicit path or search paths) and the environment.
// A missing configuration file in the search paths is not an error.
func (loader *ConfigurationLoader) LoadConfiguration(configurationFilePath string, defaultValues map[string]any, target any) (LoadedConfiguration, error) {
	v := viper.New()
	v.SetConfigName(loader.configurationName)
	v.SetConfigType(loader.configurationType)

	if len(loader.embeddedConfiguration) > 0 {
		if err := v.MergeConfig(bytes.NewReader(loader.embeddedConfiguration)); err != nil {
			return LoadedConfiguration{}, fmt.Errorf("failed to merge embedded configuration: %w", err)
		}
	}

	for _, searchPath := range loader.searchPaths {
		v.AddConfigPath(searchPath)
	}

	v.SetEnvPrefix(loader.environmentPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, value := range defaultValues {
		v.SetDefault(key, value)
	}

	if configurationFilePath != "" {
		v.SetConfigFile(configurationFilePath)
	}

	if err := v.MergeInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return LoadedConfiguration{}, fmt.Errorf("failed to read configuration: %w", err)
		}
	}

	if err := v.Unmarshal(target); err != nil {
		return LoadedConfiguration{}, fmt.Errorf("failed to parse configuration: %w", err)
	}

	return LoadedConfiguration{ConfigFileUsed: v.ConfigFileUsed()}, nil
}
