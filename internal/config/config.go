// Package config defines passqr's local configuration: a small struct with
// a Defaults() constructor, following the teacher pack's convention
// (dfbb-im2code/internal/config). Unlike the teacher, passqr has no
// --config flag or path to load from — spec.md's external interfaces are
// explicit that there are "no environment variables, no config files" — so
// only Defaults() is exposed, not a Load/Save round trip.
package config

// Config holds the small set of options the passqr CLI exposes beyond the
// single positional secret-file argument.
type Config struct {
	OutputPath string
	LogLevel   string
}

// Defaults returns a Config populated with the values the original
// implementation hardcodes: output written to ./qr_code.png.
func Defaults() *Config {
	return &Config{
		OutputPath: "./qr_code.png",
		LogLevel:   "info",
	}
}
