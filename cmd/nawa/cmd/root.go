package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	Version = "0.1.0-dev"
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:     "nawa",
	Short:   "نواة — an interpreter for an Arabic-keyword scripting language",
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func exitError(format string, args ...any) error {
	return fmt.Errorf("error: "+format, args...)
}
