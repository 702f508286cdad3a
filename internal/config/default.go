package config

import "github.com/recrsn/addonstub/internal/convert"

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	opts := convert.DefaultOptions()

	return Config{
		Input:  "play_raw.js",
		Output: "p5.play.js",
		Convert: ConvertConfig{
			Marker:            opts.Marker,
			Self:              opts.Self,
			ReservedPrefixes:  opts.ReservedPrefixes,
			CleanupKeyword:    opts.CleanupKeyword,
			LegacyAnnotations: opts.LegacyAnnotations,
			Namespace:         opts.Namespace,
		},
		UI: UIConfig{
			ColorEnabled: true,
			ShowReport:   true,
			ShowDiff:     true,
		},
		Log: LogConfig{
			Enabled: true,
		},
	}
}
