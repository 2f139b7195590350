// Package cli provides the Cobra command structure for uiguide.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/uiguide/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root uiguide command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "uiguide",
		Short: "Validate and work with UI design guideline documents",
		Long: `uiguide checks UI design guideline documents written in markdown.

validate-guidelines inspects a guideline document for the sections, design
tokens, tables, and code examples a design system is expected to document,
and reports errors (which fail validation) and warnings (which never do).

The generate, review, and build commands accept their full option sets and
confirm what they would do.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
			cmd.SetContext(logging.WithLogger(cmd.Context(), logging.Default()))
		},
		// Without a subcommand, show help and fail.
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cmd.Help(); err != nil {
				return fmt.Errorf("show help: %w", err)
			}
			return ErrNoCommand
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddGroup(commandGroups()...)

	addToGroup(rootCmd, groupValidation,
		newValidateCommand(),
		newRulesCommand(),
		newInitCommand(),
	)
	addToGroup(rootCmd, groupWorkflow,
		newGenerateGuidelinesCommand(),
		newReviewComponentCommand(),
		newBuildComponentCommand(),
		newBuildComponentsCommand(),
	)
	rootCmd.AddCommand(newVersionCommand(info))

	ApplyToCommand(rootCmd)

	return rootCmd
}

func addToGroup(parent *cobra.Command, groupID string, cmds ...*cobra.Command) {
	for _, cmd := range cmds {
		cmd.GroupID = groupID
		parent.AddCommand(cmd)
	}
}
