package main

import (
	"github.com/spf13/cobra"
)

// Version is the tool version stamped into reports.
const Version = "1.0.0"

var (
	// logLevelFlag is the global --log-level flag value
	logLevelFlag string
)

var rootCmd = &cobra.Command{
	Use:   "astrosan",
	Short: "astrosan - astronomical coordinate sanitizer",
	Long: `astrosan normalizes free-form astronomical coordinate input into
standardized string representations. It accepts sexagesimal, compact and
decimal notations for right ascension and declination, recognizes object
catalog designations, validates physical ranges, and renders the result in
the aladin, decimal or hms-dms output format.`,
	Version: Version,
}

func init() {
	rootCmd.SetVersionTemplate("astrosan version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "info",
		"Log level: debug, info, warn, or error")
}
