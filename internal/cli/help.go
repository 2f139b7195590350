package cli

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/yaklabco/uiguide/internal/ui/pretty"
)

// Command groups shown in root help.
const (
	groupValidation = "validation"
	groupWorkflow   = "workflow"
)

func commandGroups() []*cobra.Group {
	return []*cobra.Group{
		{ID: groupValidation, Title: "Validation Commands:"},
		{ID: groupWorkflow, Title: "Guideline Workflow Commands:"},
	}
}

// HelpFormatter renders Cobra help with the report palette.
type HelpFormatter struct {
	styles *pretty.Styles
}

// NewHelpFormatter creates a help formatter for the given color mode.
func NewHelpFormatter(colorMode string, writer io.Writer) *HelpFormatter {
	return &HelpFormatter{
		styles: pretty.NewStyles(pretty.IsColorEnabled(colorMode, writer)),
	}
}

func (h *HelpFormatter) templateFuncs() template.FuncMap {
	return template.FuncMap{
		"heading":     h.styles.Title.Render,
		"command":     h.styles.Bold.Render,
		"subcommand":  h.styles.Success.Render,
		"dim":         h.styles.Dim.Render,
		"flags":       h.renderFlags,
		"rpad":        rpad,
		"trimTrailer": trimTrailingWhitespaces,
	}
}

const usageTemplate = `{{ heading "Usage:" }}
{{- if .Runnable}}
  {{ command .UseLine }}{{end}}
{{- if .HasAvailableSubCommands}}
  {{ command .CommandPath }} [command]{{end}}

{{- if .HasExample}}

{{ heading "Examples:" }}
{{ dim .Example }}
{{- end}}

{{- if .HasAvailableSubCommands}}{{$cmds := .Commands}}
{{- range $group := .Groups}}

{{ heading $group.Title }}
{{- range $cmds}}{{if and (eq .GroupID $group.ID) .IsAvailableCommand}}
  {{ subcommand (rpad .Name .NamePadding) }} {{ .Short }}{{end}}{{end}}
{{- end}}
{{- if not .AllChildCommandsHaveGroup}}

{{ heading "Additional Commands:" }}
{{- range $cmds}}{{if and (eq .GroupID "") (or .IsAvailableCommand (eq .Name "help"))}}
  {{ subcommand (rpad .Name .NamePadding) }} {{ .Short }}{{end}}{{end}}
{{- end}}
{{- end}}

{{- if .HasAvailableLocalFlags}}

{{ heading "Flags:" }}
{{ flags .LocalFlags }}
{{- end}}

{{- if .HasAvailableInheritedFlags}}

{{ heading "Global Flags:" }}
{{ flags .InheritedFlags }}
{{- end}}

{{- if .HasAvailableSubCommands}}

Use "{{ command (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end}}
`

const helpTemplate = `{{with (or .Long .Short)}}{{ . | trimTrailer }}

{{end}}` + usageTemplate

// renderFlags styles pflag usage lines of the form "  -f, --file string   description".
func (h *HelpFormatter) renderFlags(set interface{ FlagUsages() string }) string {
	usages := strings.TrimSuffix(set.FlagUsages(), "\n")
	if usages == "" {
		return ""
	}

	lines := strings.Split(usages, "\n")
	for i, line := range lines {
		lines[i] = h.renderFlagLine(line)
	}
	return strings.Join(lines, "\n")
}

func (h *HelpFormatter) renderFlagLine(line string) string {
	trimmed := strings.TrimLeft(line, " ")
	indent := line[:len(line)-len(trimmed)]

	// Names and type are single-space separated; pflag pads the description.
	names, desc, found := strings.Cut(trimmed, "  ")
	if !found {
		return line
	}
	padding := strings.Repeat(" ", len(trimmed)-len(names)-len(strings.TrimLeft(desc, " ")))

	var out strings.Builder
	out.WriteString(indent)
	for i, token := range strings.Fields(names) {
		if i > 0 {
			out.WriteString(" ")
		}
		out.WriteString(h.renderFlagToken(token))
	}
	out.WriteString(padding)
	out.WriteString(strings.TrimLeft(desc, " "))
	return out.String()
}

func (h *HelpFormatter) renderFlagToken(token string) string {
	if !strings.HasPrefix(token, "-") {
		return h.styles.Dim.Render(token)
	}
	name, comma := strings.CutSuffix(token, ",")
	rendered := h.styles.Warning.Render(name)
	if comma {
		rendered += ","
	}
	return rendered
}

// ApplyToCommand installs the styled templates on cmd; subcommands inherit them.
// The color mode is read from the parsed --color flag each time help renders.
func ApplyToCommand(cmd *cobra.Command) {
	cmd.SetUsageFunc(func(c *cobra.Command) error {
		return renderHelp(c, "usage", usageTemplate)
	})

	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		if err := renderHelp(c, "help", helpTemplate); err != nil {
			c.PrintErrln(err)
		}
	})
}

func renderHelp(c *cobra.Command, name, text string) error {
	colorMode, err := c.Root().PersistentFlags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	h := NewHelpFormatter(colorMode, c.OutOrStdout())
	tmpl, err := template.New(name).Funcs(h.templateFuncs()).Parse(text)
	if err != nil {
		return fmt.Errorf("parse %s template: %w", name, err)
	}
	if err := tmpl.Execute(c.OutOrStdout(), c); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}

// rpad pads str with spaces to the given width.
func rpad(str string, width int) string {
	return fmt.Sprintf("%-*s", width, str)
}

func trimTrailingWhitespaces(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
