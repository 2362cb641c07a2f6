package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	sessioncmd "github.com/flttx/medi-manage-platform-sub000/cmd/session"
	systemcmd "github.com/flttx/medi-manage-platform-sub000/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "mediman",
	Short: "Clinic management platform with synchronized multi-terminal sessions.",
	Long: `Mediman runs the clinic's desktop console and the doctor and patient
terminals as separate session processes. Sessions share clinical state by
broadcasting whole-slice snapshots over a sync bus; each process renders
its own role against the same dataset.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(sessioncmd.NewSessionCommand())
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
}
