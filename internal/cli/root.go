// Package cli wires the moneta commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moneta-ai/moneta/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "moneta",
	Short: "Moneta: personal finance assistant",
	Long: `Moneta is a personal finance assistant. The CLI hosts the
first-launch onboarding flow that collects your language, name, currency,
and a short survey, and saves the resulting preferences.`,
	Version: version.GetVersion(),
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("moneta %s\n", version.GetVersion()))
}
