package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/goldengate-rescue/chipsync/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verbose   bool
	configDir string
)

var rootCmd = &cobra.Command{
	Use:   "chipsync",
	Short: "Reconcile registry snapshots and build microchip registration updates",
	Long: `Compares two exports of the rescue's dog database, finds dogs whose
microchip registration is out of date, and builds the upload file for the
external registration service plus an error report of everything suspect
found along the way.`,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose trace output")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default ~/.chipsync)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Warn("%v", err)
		os.Exit(1)
	}
}
