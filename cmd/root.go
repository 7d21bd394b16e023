// SPDX-License-Identifier: MIT
// Package cmd implements the voicedsp command line interface. The CLI is
// host-side tooling around the same DSP core the native bridge exports;
// it never goes through the C boundary.
package cmd

import (
	"github.com/spf13/cobra"

	"voicedsp/internal/config"
	"voicedsp/internal/log"
)

var (
	cfg      *config.Config
	cfgPath  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:           "voicedsp",
	Short:         "Voice analysis DSP toolkit: spectrum and pitch",
	SilenceErrors: false,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}
		if level, ok := log.ParseLevel(cfg.LogLevel); ok {
			log.SetLevel(level)
		} else {
			log.Warnf("cmd: unknown log level %q, using info", cfg.LogLevel)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "",
		"Path to a YAML config file (default: voicedsp.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Log level: debug, info, warn, error")
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}
