// cmd/perfval/protocol.go
package perfval

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/MorchestraWorld/perfval/internal/validate"
)

// protocolCmd implements 'protocol', which prints the statistical protocol
// that 'validate' will enforce after config-file and flag resolution.
var protocolCmd = &cobra.Command{
	Use:   "protocol",
	Short: "Show the active statistical validation protocol",
	Long:  `The 'protocol' command prints the thresholds a performance claim must satisfy: minimum sample size, significance level, minimum effect size, confidence level and maximum coefficient of variation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfigFile(); err != nil {
			return err
		}
		printProtocol(resolveThresholds())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(protocolCmd)
}

// printProtocol renders the thresholds in a labeled two-column layout.
func printProtocol(thr validate.Thresholds) {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Width(28)
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("255"))

	row := func(label, value string) {
		fmt.Println(labelStyle.Render(label) + valueStyle.Render(value))
	}

	fmt.Println("Statistical Validation Protocol:")
	row("  Minimum sample size", fmt.Sprintf("n >= %d per condition", thr.MinSampleSize))
	row("  Significance level", fmt.Sprintf("p < %g", thr.SignificanceLevel))
	row("  Minimum effect size", fmt.Sprintf("|d| >= %g", thr.MinEffectSize))
	row("  Confidence level", fmt.Sprintf("%g%%", thr.ConfidenceLevel*100))
	row("  Maximum variability", fmt.Sprintf("CV <= %g", thr.MaxCV))
}
