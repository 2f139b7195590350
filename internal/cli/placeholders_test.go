package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholderCommands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "generate guidelines",
			args: []string{"generate-guidelines", "--input", "template.jpg"},
			want: "📊 Extracting guidelines from: template.jpg\n" +
				"Output will be saved to: design-system.md\n" +
				"\n" +
				"✨ Guidelines extracted successfully!\n",
		},
		{
			name: "review component",
			args: []string{"review-component", "-f", "Button.jsx", "-g", "design-system.md"},
			want: "🔍 Reviewing component: Button.jsx\n" +
				"Against guidelines: design-system.md\n" +
				"\n" +
				"✅ Compliance check complete!\n",
		},
		{
			name: "build component",
			args: []string{"build-component", "--type", "button", "--framework", "vue", "--css", "styled"},
			want: "🛠️  Building button component\n" +
				"Framework: vue\n" +
				"CSS: styled\n" +
				"Output: \n" +
				"\n" +
				"✨ Component generated successfully!\n",
		},
		{
			name: "build components",
			args: []string{"build-components", "-g", "design-system.md", "--all"},
			want: "🛠️  Building components from guidelines: design-system.md\n" +
				"Output directory: ./components\n" +
				"Framework: react\n" +
				"\n" +
				"✨ All components generated successfully!\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestPlaceholderCommands_Usage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "generate without input", args: []string{"generate-guidelines"}, wantErr: `"input"`},
		{name: "review without guidelines", args: []string{"review-component", "-f", "Button.jsx"}, wantErr: `"guidelines"`},
		{name: "build without type", args: []string{"build-component"}, wantErr: `"type"`},
		{name: "build components without guidelines", args: []string{"build-components"}, wantErr: `"guidelines"`},
		{
			name:    "unknown generate format",
			args:    []string{"generate-guidelines", "-i", "x.png", "--format", "pdf"},
			wantErr: `invalid choice "pdf"`,
		},
		{
			name:    "web-component only for single builds",
			args:    []string{"build-components", "-g", "x.md", "--framework", "web-component"},
			wantErr: `invalid choice "web-component"`,
		},
		{
			name:    "unknown css approach",
			args:    []string{"build-component", "-t", "card", "--css", "sass"},
			wantErr: "choose from tailwind, cssmodules, styled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
