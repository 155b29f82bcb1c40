// cmd/perfval/root.go
package perfval

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd is the base Cobra command for the perfval application.
// All subcommands are attached to this root to form the complete CLI.
var rootCmd = &cobra.Command{
	Use:   "perfval",
	Short: "Statistical performance validation tool",
	Long: `perfval enforces statistical rigor for performance claims. It compares a
baseline and an optimized set of latency measurements, runs a two-sample
significance test and an effect-size calculation, and renders a pass/fail
validation report against a fixed statistical protocol.`,
	SilenceUsage: true,
}

// Execute runs the root Cobra command and all registered subcommands.
// It prints any returned error and exits the process with a non-zero
// status code on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "optional JSON config file overriding protocol thresholds")
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}
