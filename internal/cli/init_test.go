package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/uiguide/pkg/config"
	"github.com/yaklabco/uiguide/pkg/fsutil"
)

func setTerminal(t *testing.T, interactive bool) {
	t.Helper()
	orig := stdinIsTerminal
	stdinIsTerminal = func() bool { return interactive }
	t.Cleanup(func() { stdinIsTerminal = orig })
}

func TestRunInit_CreatesTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), defaultConfigFile)

	var out bytes.Buffer
	err := runInit(context.Background(), strings.NewReader(""), &out, &initFlags{output: path})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	cfg, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultRequiredSections(), cfg.RequiredSections)
	assert.Contains(t, string(data), "GV002")
	assert.Contains(t, out.String(), "created configuration file")
}

func TestRunInit_ExistingFile(t *testing.T) {
	tests := []struct {
		name        string
		force       bool
		interactive bool
		input       string
		wantErr     string
		wantBackup  bool
	}{
		{name: "non-interactive without force", wantErr: "use --force to overwrite"},
		{name: "force", force: true, wantBackup: true},
		{name: "prompt accepted", interactive: true, input: "y\n", wantBackup: true},
		{name: "prompt accepted without newline", interactive: true, input: "yes", wantBackup: true},
		{name: "prompt declined", interactive: true, input: "n\n", wantErr: "not overwritten"},
		{name: "prompt default", interactive: true, input: "\n", wantErr: "not overwritten"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setTerminal(t, tt.interactive)

			path := filepath.Join(t.TempDir(), "team.yml")
			original := []byte("format: json\n")
			require.NoError(t, os.WriteFile(path, original, 0o644))

			var out bytes.Buffer
			err := runInit(context.Background(), strings.NewReader(tt.input), &out,
				&initFlags{force: tt.force, output: path})

			data, readErr := os.ReadFile(path)
			require.NoError(t, readErr)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Equal(t, original, data, "file must be left untouched")
				assert.False(t, fsutil.FileExists(fsutil.BackupPath(path)))
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, original, data)
			if tt.interactive {
				assert.Contains(t, out.String(), "Overwrite? [y/N]")
			}

			if tt.wantBackup {
				backup, err := os.ReadFile(fsutil.BackupPath(path))
				require.NoError(t, err)
				assert.Equal(t, original, backup)
			}
		})
	}
}
