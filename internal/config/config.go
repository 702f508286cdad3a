package config

import (
	"fmt"

	"github.com/recrsn/addonstub/internal/convert"
	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	Input   string        `mapstructure:"input"`
	Output  string        `mapstructure:"output"`
	Convert ConvertConfig `mapstructure:"convert"`
	UI      UIConfig      `mapstructure:"ui"`
	Log     LogConfig     `mapstructure:"log"`
}

// ConvertConfig holds the markers the converter keys on
type ConvertConfig struct {
	Marker            string   `mapstructure:"marker"`
	Self              string   `mapstructure:"self"`
	ReservedPrefixes  []string `mapstructure:"reserved_prefixes"`
	CleanupKeyword    string   `mapstructure:"cleanup_keyword"`
	LegacyAnnotations []string `mapstructure:"legacy_annotations"`
	Namespace         string   `mapstructure:"namespace"`
}

// UIConfig holds UI-specific configuration
type UIConfig struct {
	ColorEnabled bool `mapstructure:"color_enabled"`
	ShowReport   bool `mapstructure:"show_report"`
	ShowDiff     bool `mapstructure:"show_diff"`
}

// LogConfig controls the JSONL run log
type LogConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// Dir overrides the platform data directory
	Dir string `mapstructure:"dir"`
}

// Options converts the convert section into converter options
func (c ConvertConfig) Options() convert.Options {
	return convert.Options{
		Marker:            c.Marker,
		Self:              c.Self,
		ReservedPrefixes:  c.ReservedPrefixes,
		CleanupKeyword:    c.CleanupKeyword,
		LegacyAnnotations: c.LegacyAnnotations,
		Namespace:         c.Namespace,
	}
}

// LoadConfig loads the configuration from the first .addonstub.yaml found in
// searchPaths. A missing file leaves the defaults in place.
func LoadConfig(searchPaths ...string) (Config, error) {
	v := viper.New()
	v.SetConfigName(".addonstub")
	v.SetConfigType("yaml")
	setValues(v.SetDefault, DefaultConfig())

	for _, path := range searchPaths {
		if path != "" {
			v.AddConfigPath(path)
		}
	}

	// Read config (will use first found file)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return DefaultConfig(), fmt.Errorf("reading config: %w", err)
		}
		// Config file not found - continue with defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return DefaultConfig(), fmt.Errorf("unmarshaling config: %w", err)
	}

	return config, nil
}

// SaveConfig writes config to path as YAML
func SaveConfig(config Config, path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	setValues(v.Set, config)

	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// setValues feeds every key of config to set, which is either Set or SetDefault
func setValues(set func(key string, value any), config Config) {
	set("input", config.Input)
	set("output", config.Output)

	set("convert.marker", config.Convert.Marker)
	set("convert.self", config.Convert.Self)
	set("convert.reserved_prefixes", config.Convert.ReservedPrefixes)
	set("convert.cleanup_keyword", config.Convert.CleanupKeyword)
	set("convert.legacy_annotations", config.Convert.LegacyAnnotations)
	set("convert.namespace", config.Convert.Namespace)

	set("ui.color_enabled", config.UI.ColorEnabled)
	set("ui.show_report", config.UI.ShowReport)
	set("ui.show_diff", config.UI.ShowDiff)

	set("log.enabled", config.Log.Enabled)
	set("log.dir", config.Log.Dir)
}
