package sdf

// Config holds SDF generation parameters.
type Config struct {
	// Padding is the number of border pixels added on each side of the
	// coverage bitmap before the distance transform runs. The band is
	// classified as outside, which keeps the field well defined at the
	// glyph border. Typical values: 2-8.
	// Default: 4
	Padding int

	// PixelRange is the nominal distance-field range in source pixels
	// used to normalize signed distance before encoding.
	// Larger values = softer falloff, smaller = sharper but less scalable.
	// Default: 4.0
	PixelRange float64

	// EncodeBias shifts the zero-crossing position within the 0..1
	// output range. The glyph edge encodes to EncodeBias*255.
	// Default: 0.4
	EncodeBias float64

	// EncodeScale controls how many source pixels map across the full
	// 0..1 output range.
	// Default: 0.5
	EncodeScale float64

	// Workers is the number of goroutines used for the distance sweeps.
	// Values of 0 or 1 run the sweeps serially. The output bytes are
	// identical for every worker count.
	// Default: 4
	Workers int
}

// DefaultConfig returns the default SDF configuration.
// These values work well for typical embedded bitmap strike sizes.
func DefaultConfig() Config {
	return Config{
		Padding:     4,
		PixelRange:  4.0,
		EncodeBias:  0.4,
		EncodeScale: 0.5,
		Workers:     4,
	}
}

// Validate checks if the configuration is valid and returns an error if not.
func (c *Config) Validate() error {
	if c.Padding < 0 {
		return &ConfigError{Field: "Padding", Reason: "must not be negative"}
	}
	if c.PixelRange <= 0 {
		return &ConfigError{Field: "PixelRange", Reason: "must be positive"}
	}
	if c.Workers < 0 {
		return &ConfigError{Field: "Workers", Reason: "must not be negative"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "sdf: invalid config." + e.Field + ": " + e.Reason
}
