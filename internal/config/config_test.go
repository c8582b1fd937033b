package config

import "testing"

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if cfg.OutputPath != "./qr_code.png" {
		t.Fatalf("OutputPath = %q, want ./qr_code.png", cfg.OutputPath)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel = %q, want info", cfg.LogLevel)
	}
}
