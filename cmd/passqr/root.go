package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ashokshau/passqr/internal/config"
	"github.com/ashokshau/passqr/internal/secretfile"
	"github.com/ashokshau/passqr/png"
	"github.com/ashokshau/passqr/qrcode"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "passqr <secret-file>",
	Short: "Render a short binary secret as a scannable QR code PNG",
	Args:  cobra.ExactArgs(1),
	RunE:  runPassqr,
}

func init() {
	rootCmd.SilenceUsage = true
}

// Execute runs the root command and translates any error into a
// human-readable message on stdout, matching the original implementation's
// println!("{err}") error handling rather than structured error codes.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stdout, err)
		os.Exit(1)
	}
}

func runPassqr(cmd *cobra.Command, args []string) error {
	cfg := config.Defaults()

	secret, warning, err := secretfile.Read(args[0])
	if err != nil {
		return err
	}
	if warning != "" {
		fmt.Println(warning)
	}
	if len(secret) == 0 {
		return fmt.Errorf("password file is empty")
	}

	grid, err := qrcode.Encode(secret)
	if err != nil {
		return err
	}

	modules := make([][]byte, len(grid))
	for i := range grid {
		modules[i] = grid[i][:]
	}

	data, err := png.Encode(modules)
	if err != nil {
		return err
	}

	if err := os.WriteFile(cfg.OutputPath, data, 0644); err != nil {
		return fmt.Errorf("unable to write file: %w", err)
	}

	slog.Info("wrote QR code", "path", cfg.OutputPath, "bytes", len(data))
	return nil
}
