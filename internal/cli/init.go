package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/uiguide/internal/logging"
	"github.com/yaklabco/uiguide/pkg/config"
	"github.com/yaklabco/uiguide/pkg/fsutil"
)

// defaultConfigFile is the file init writes when no --output is given.
const defaultConfigFile = ".uiguide.yml"

// stdinIsTerminal reports whether prompts can be answered.
//
//nolint:gochecknoglobals // Replaced in tests.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new uiguide configuration file",
		Long: `Create a new .uiguide.yml configuration file in the current directory
holding the default required and component section catalogs. Edit the
catalogs to match your design system, or disable individual checks.

An existing file is only replaced with --force or after confirming at an
interactive prompt. The previous file is kept with a .uiguide.bak suffix.

Examples:
  uiguide init                       Create .uiguide.yml
  uiguide init --force               Replace an existing .uiguide.yml
  uiguide init --output custom.yml   Write to a custom file path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runInit(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", defaultConfigFile, "output file path")

	return cmd
}

func runInit(ctx context.Context, in io.Reader, out io.Writer, flags *initFlags) error {
	logger := logging.NewInteractiveTo(out)

	absPath, err := filepath.Abs(flags.output)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if fsutil.FileExists(absPath) {
		if err := confirmOverwrite(in, out, flags); err != nil {
			return err
		}

		backedUp, err := fsutil.CreateBackup(ctx, absPath)
		if err != nil {
			return fmt.Errorf("back up existing file: %w", err)
		}
		if backedUp {
			logger.Warn("overwriting existing file", logging.FieldPath, flags.output,
				"backup", fsutil.BackupPath(flags.output))
		}
	}

	content, err := config.GenerateTemplate()
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	if err := fsutil.WriteAtomic(ctx, absPath, content, fsutil.DefaultFileMode); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, flags.output)
	logger.Info("customize the section catalogs by editing the file")
	logger.Info("run 'uiguide rules' to see all available checks")

	return nil
}

// confirmOverwrite succeeds when replacing an existing file is allowed.
func confirmOverwrite(in io.Reader, out io.Writer, flags *initFlags) error {
	if flags.force {
		return nil
	}

	if !stdinIsTerminal() {
		return fmt.Errorf("file %q already exists; use --force to overwrite", flags.output)
	}

	if _, err := fmt.Fprintf(out, "%s already exists. Overwrite? [y/N] ", flags.output); err != nil {
		return fmt.Errorf("write prompt: %w", err)
	}

	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && response == "" {
		return fmt.Errorf("read response: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(response)) {
	case "y", "yes":
		return nil
	default:
		return fmt.Errorf("file %q already exists; not overwritten", flags.output)
	}
}
