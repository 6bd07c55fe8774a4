package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestGenerateCompletion(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		shell        string
		wantContains []string
	}{
		{"bash", []string{"_seqcalc()", "complete -F _seqcalc seqcalc", "arithmetic geometric"}},
		{"zsh", []string{"#compdef seqcalc", "_arguments", "--kind"}},
		{"fish", []string{"complete -c seqcalc", "-l kind", "arithmetic geometric"}},
		{"powershell", []string{"Register-ArgumentCompleter", "--completion"}},
		{"ps", []string{"Register-ArgumentCompleter"}},
	}

	for _, tc := range testCases {
		t.Run(tc.shell, func(t *testing.T) {
			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tc.shell); err != nil {
				t.Fatalf("GenerateCompletion(%q) unexpected error: %v", tc.shell, err)
			}
			output := buf.String()
			for _, want := range tc.wantContains {
				if !strings.Contains(output, want) {
					t.Errorf("%s completion should contain %q, got:\n%s", tc.shell, want, output)
				}
			}
		})
	}

	t.Run("unsupported shell", func(t *testing.T) {
		var buf bytes.Buffer
		err := GenerateCompletion(&buf, "tcsh")
		if err == nil {
			t.Fatal("expected error for unsupported shell")
		}
		if !strings.Contains(err.Error(), "unsupported shell") {
			t.Errorf("error = %v, want mention of unsupported shell", err)
		}
	})
}

func TestFlagRegistry_CoversPrimaryFlags(t *testing.T) {
	t.Parallel()

	want := map[string]bool{"kind": false, "first": false, "step": false, "completion": false}
	for _, f := range flagRegistry {
		if _, ok := want[f.Long]; ok {
			want[f.Long] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("flag registry should include --%s", name)
		}
	}
}
