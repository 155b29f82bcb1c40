// cmd/perfval/commands.go
package perfval

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// commandsCmd implements 'commands', which prints every command and
// subcommand with its short description in a two-column layout.
var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List all commands and subcommands",
	Long:  `The 'commands' command lists every command and subcommand in a two-column layout, with the command path in the first column and its short description in the second.`,
	Run: func(cmd *cobra.Command, args []string) {
		listAllCommands(rootCmd)
	},
}

func init() {
	rootCmd.AddCommand(commandsCmd)
}

// listAllCommands walks the command tree and prints each command path and
// short description, padded into two columns.
func listAllCommands(root *cobra.Command) {
	paths, descriptions := collectCommands(root, "")

	width := 0
	for _, p := range paths {
		if len(p) > width {
			width = len(p)
		}
	}

	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Width(width + 2)
	fmt.Println("Commands and Subcommands:")
	for i := range paths {
		fmt.Println("  " + pathStyle.Render(paths[i]) + descriptions[i])
	}
}

// collectCommands flattens the command tree into parallel path and
// description slices.
func collectCommands(cmd *cobra.Command, prefix string) (paths, descriptions []string) {
	path := cmd.Name()
	if prefix != "" {
		path = prefix + " " + cmd.Name()
	}
	paths = append(paths, path)
	descriptions = append(descriptions, cmd.Short)

	for _, sub := range cmd.Commands() {
		if sub.Hidden {
			continue
		}
		subPaths, subDescriptions := collectCommands(sub, path)
		paths = append(paths, subPaths...)
		descriptions = append(descriptions, subDescriptions...)
	}
	return paths, descriptions
}
