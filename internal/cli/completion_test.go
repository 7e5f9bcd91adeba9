package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestGenerateCompletion(t *testing.T) {
	t.Parallel()
	strategies := []string{"channel", "mutex", "sequential"}

	tests := []struct {
		shell    string
		contains []string
	}{
		{
			shell: "bash",
			contains: []string{
				"complete -F _accumcalc_completions accumcalc",
				`strategies="channel mutex sequential"`,
				"-strategy|--strategy)",
				"-metrics-out|--metrics-out)",
				`compgen -W "bash zsh fish"`,
			},
		},
		{
			shell: "zsh",
			contains: []string{
				"#compdef accumcalc",
				"strategies=(channel mutex sequential)",
				"'-strategy[Runner strategy]:strategy:($strategies)'",
				"'(-q -quiet)'{-q,-quiet}'[Print only the final value]'",
				"'*:input file:_files'",
			},
		},
		{
			shell: "fish",
			contains: []string{
				"complete -c accumcalc -o strategy -d 'Runner strategy' -xa 'channel mutex sequential'",
				"complete -c accumcalc -o metrics-out -d 'Write Prometheus metrics to a file' -rF",
				"complete -c accumcalc -s v -o verbose -d 'Enable debug logging'",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell, strategies); err != nil {
				t.Fatalf("GenerateCompletion(%q) error = %v", tt.shell, err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("%s script missing %q:\n%s", tt.shell, want, buf.String())
				}
			}
		})
	}
}

func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	t.Parallel()
	err := GenerateCompletion(&bytes.Buffer{}, "powershell", nil)
	if err == nil || !strings.Contains(err.Error(), "unsupported shell") {
		t.Errorf("expected unsupported shell error, got %v", err)
	}
}
