package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/uiguide/internal/configloader"
	"github.com/yaklabco/uiguide/internal/logging"
	"github.com/yaklabco/uiguide/pkg/check"
	_ "github.com/yaklabco/uiguide/pkg/check/rules" // Register built-in rules
	"github.com/yaklabco/uiguide/pkg/config"
	"github.com/yaklabco/uiguide/pkg/reporter"
)

type validateFlags struct {
	file    string
	strict  bool
	output  string
	format  string
	compact bool
}

func newValidateCommand() *cobra.Command {
	flags := &validateFlags{}

	cmd := &cobra.Command{
		Use:   "validate-guidelines",
		Short: "Validate guideline markdown structure",
		Long:  validateLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "path to guidelines markdown (required)")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "fail on warnings (accepted; warnings never change the verdict)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output validation report (accepted; the report is written to stdout)")
	cmd.Flags().StringVar(&flags.format, "format", "text", "report format: text, json")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "minify JSON output")

	if err := cmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	return cmd
}

const validateLongDescription = `Validate a guideline document.

Errors fail validation: a required section (Color Palette, Typography,
Spacing Scale, Components, Buttons, Cards) without a heading of depth 1-3,
or no component section with a heading of depth 2-4.

Warnings never fail validation: missing frontmatter, a Color Palette without
hex colors, Typography without font sizes, no tables, or no code examples.

Examples:
  uiguide validate-guidelines --file design-system.md
  uiguide validate-guidelines -f design-system.md --format json`

func runValidate(cmd *cobra.Command, flags *validateFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	// Only values set on the command line override config files.
	cliCfg := &config.Config{
		Strict: flags.strict,
		Output: flags.output,
	}
	if cmd.Flags().Changed("format") {
		cliCfg.Format = config.OutputFormat(flags.format)
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldSource, loadResult.LoadedFrom)
	}
	if finalCfg.Strict {
		logger.Debug("strict mode accepted; warnings do not change the verdict", logging.FieldStrict, true)
	}
	if finalCfg.Output != "" {
		logger.Debug("report path accepted; the report is written to stdout", logging.FieldOutput, finalCfg.Output)
	}

	format, err := reporter.ParseFormat(string(finalCfg.Format))
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	rep, err := reporter.New(reporter.Options{
		Writer:  cmd.OutOrStdout(),
		Format:  format,
		Color:   colorMode,
		Compact: flags.compact,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	logger.Info("validating guidelines", logging.FieldFile, flags.file)

	engine := check.NewEngine(check.DefaultRegistry, finalCfg)
	result, err := engine.ValidateFile(ctx, flags.file)
	if err != nil {
		return fmt.Errorf("validate %s: %w", flags.file, err)
	}

	if len(result.Components) > 0 {
		logger.Info("found documentation for", logging.FieldComponents, strings.Join(result.Components, ", "))
	}
	if result.Meta != nil && result.Meta.Title != "" {
		logger.Debug("guideline metadata", logging.FieldTitle, result.Meta.Title)
	}

	if err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	logger.Debug("validation complete",
		logging.FieldStatus, result.Status(),
		logging.FieldErrors, len(result.Errors),
		logging.FieldWarnings, len(result.Warnings),
	)

	if !result.Passed() {
		return ErrValidationFailed
	}

	return nil
}
