package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/uiguide/internal/logging"
)

// The commands in this file accept the full option set of the guideline
// workflow and print what they would do. They always succeed.

type generateFlags struct {
	input      string
	output     string
	components string
	format     string
	detailed   bool
}

func newGenerateGuidelinesCommand() *cobra.Command {
	flags := &generateFlags{}

	cmd := &cobra.Command{
		Use:     "generate-guidelines",
		Short:   "Extract design guidelines from UI image",
		Example: "  uiguide generate-guidelines --input template.jpg --output design-system.md",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logPlaceholder(cmd, logging.FieldInput, flags.input)
			return printLines(cmd.OutOrStdout(),
				"📊 Extracting guidelines from: "+flags.input,
				"Output will be saved to: "+flags.output,
				"",
				"✨ Guidelines extracted successfully!",
			)
		},
	}

	format := newChoiceValue(&flags.format, "markdown", "markdown", "json", "yaml")

	cmd.Flags().StringVarP(&flags.input, "input", "i", "", "path to UI template image (required)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "design-system.md", "output file path")
	cmd.Flags().StringVarP(&flags.components, "components", "c", "all",
		"component types to extract (all or comma-separated list)")
	cmd.Flags().VarP(format, "format", "f", format.usage("output format"))
	cmd.Flags().BoolVar(&flags.detailed, "detailed", false, "include detailed specs and code examples")

	mustMarkRequired(cmd, "input")

	return cmd
}

type reviewFlags struct {
	file       string
	guidelines string
	output     string
	strict     bool
	fix        bool
}

func newReviewComponentCommand() *cobra.Command {
	flags := &reviewFlags{}

	cmd := &cobra.Command{
		Use:     "review-component",
		Short:   "Review component for compliance",
		Example: "  uiguide review-component --file Button.jsx --guidelines design-system.md",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logPlaceholder(cmd, logging.FieldFile, flags.file)
			return printLines(cmd.OutOrStdout(),
				"🔍 Reviewing component: "+flags.file,
				"Against guidelines: "+flags.guidelines,
				"",
				"✅ Compliance check complete!",
			)
		},
	}

	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "path to component file (required)")
	cmd.Flags().StringVarP(&flags.guidelines, "guidelines", "g", "", "path to guidelines markdown (required)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "compliance-report.md", "output file path")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "fail on any deviations")
	cmd.Flags().BoolVar(&flags.fix, "fix", false, "generate fixed version automatically")

	mustMarkRequired(cmd, "file", "guidelines")

	return cmd
}

type buildFlags struct {
	componentType string
	guidelines    string
	variants      string
	sizes         string
	framework     string
	css           string
	output        string
	typescript    bool
	withTests     bool
}

func newBuildComponentCommand() *cobra.Command {
	flags := &buildFlags{}

	cmd := &cobra.Command{
		Use:     "build-component",
		Short:   "Generate a component following guidelines",
		Example: "  uiguide build-component --type button --framework react --css tailwind",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logPlaceholder(cmd, logging.FieldName, flags.componentType)
			return printLines(cmd.OutOrStdout(),
				fmt.Sprintf("🛠️  Building %s component", flags.componentType),
				"Framework: "+flags.framework,
				"CSS: "+flags.css,
				"Output: "+flags.output,
				"",
				"✨ Component generated successfully!",
			)
		},
	}

	framework := newChoiceValue(&flags.framework, "react", "react", "vue", "html", "web-component")
	css := newChoiceValue(&flags.css, "tailwind", "tailwind", "cssmodules", "styled")

	cmd.Flags().StringVarP(&flags.componentType, "type", "t", "", "component type (button, card, badge, modal, etc.) (required)")
	cmd.Flags().StringVarP(&flags.guidelines, "guidelines", "g", "", "path to guidelines")
	cmd.Flags().StringVarP(&flags.variants, "variants", "v", "primary,secondary", "component variants (comma-separated)")
	cmd.Flags().StringVarP(&flags.sizes, "sizes", "s", "sm,md,lg", "component sizes (comma-separated)")
	cmd.Flags().Var(framework, "framework", framework.usage("framework to use"))
	cmd.Flags().Var(css, "css", css.usage("CSS approach"))
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file path")
	cmd.Flags().BoolVar(&flags.typescript, "typescript", false, "generate TypeScript version")
	cmd.Flags().BoolVar(&flags.withTests, "with-tests", false, "include test file")

	mustMarkRequired(cmd, "type")

	return cmd
}

type buildAllFlags struct {
	guidelines string
	all        bool
	types      string
	output     string
	framework  string
	css        string
	withDocs   bool
}

func newBuildComponentsCommand() *cobra.Command {
	flags := &buildAllFlags{}

	cmd := &cobra.Command{
		Use:     "build-components",
		Short:   "Generate all components from guidelines",
		Example: "  uiguide build-components --guidelines design-system.md --all",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logPlaceholder(cmd, logging.FieldInput, flags.guidelines)
			return printLines(cmd.OutOrStdout(),
				"🛠️  Building components from guidelines: "+flags.guidelines,
				"Output directory: "+flags.output,
				"Framework: "+flags.framework,
				"",
				"✨ All components generated successfully!",
			)
		},
	}

	framework := newChoiceValue(&flags.framework, "react", "react", "vue", "html")
	css := newChoiceValue(&flags.css, "tailwind", "tailwind", "cssmodules", "styled")

	cmd.Flags().StringVarP(&flags.guidelines, "guidelines", "g", "", "path to guidelines (required)")
	cmd.Flags().BoolVar(&flags.all, "all", false, "generate all component types")
	cmd.Flags().StringVarP(&flags.types, "types", "t", "", "specific types (comma-separated)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "./components", "output directory")
	cmd.Flags().Var(framework, "framework", framework.usage("framework to use"))
	cmd.Flags().Var(css, "css", css.usage("CSS approach"))
	cmd.Flags().BoolVar(&flags.withDocs, "with-docs", false, "include documentation")

	mustMarkRequired(cmd, "guidelines")

	return cmd
}

func mustMarkRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", name, err))
		}
	}
}

func logPlaceholder(cmd *cobra.Command, key, value string) {
	logging.FromContext(cmd.Context()).Debug("placeholder command", logging.FieldCommand, cmd.Name(), key, value)
}

func printLines(w io.Writer, lines ...string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}
