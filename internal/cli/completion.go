package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// All shell completion functions generate from this registry, so adding
// a new flag only requires appending to flagRegistry.
type FlagCompletion struct {
	Long      string   // long flag name without "--" (e.g., "help")
	Short     string   // short flag without "-" (e.g., "h")
	Help      string   // description text
	Values    []string // suggested completion values (nil = boolean/no suggestions)
	ValueName string   // label for the value in zsh (e.g., "number", "duration")
	IsFile    bool     // true if the flag takes a file path
}

// flagRegistry is the central list of all CLI flags for completion generation.
var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Short: "V", Help: "Show version information"},
	{Long: "kind", Short: "k", Help: "Sequence kind", Values: []string{"arithmetic", "geometric"}, ValueName: "kind"},
	{Long: "first", Short: "a", Help: "First term of the sequence", ValueName: "number"},
	{Long: "step", Short: "d", Help: "Common difference or common ratio", ValueName: "number"},
	{Short: "n", Help: "Number of terms to generate", ValueName: "count"},
	{Long: "timeout", Help: "Maximum execution time", Values: []string{"10s", "30s", "1m", "5m"}, ValueName: "duration"},
	{Long: "output", Short: "o", Help: "Output file path", IsFile: true, ValueName: "file"},
	{Long: "quiet", Short: "q", Help: "Print only the generated sequence"},
	{Long: "verbose", Short: "v", Help: "Include the labeled term grid"},
	{Long: "repl", Short: "i", Help: "Start the interactive REPL"},
	{Long: "tui", Help: "Start the interactive terminal form"},
	{Long: "serve", Help: "Start the HTTP API server"},
	{Long: "addr", Help: "Listen address for -serve", ValueName: "address"},
	{Long: "no-color", Help: "Disable colored output"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish", "powershell"}, ValueName: "shell"},
}

// GenerateCompletion generates a shell completion script for the specified shell.
//
// Parameters:
//   - out: The writer to output the completion script.
//   - shell: The shell type ("bash", "zsh", "fish", "powershell").
//
// Returns:
//   - error: An error if the shell is not supported.
func GenerateCompletion(out io.Writer, shell string) error {
	switch shell {
	case "bash":
		return generateBashCompletion(out)
	case "zsh":
		return generateZshCompletion(out)
	case "fish":
		return generateFishCompletion(out)
	case "powershell", "ps":
		return generatePowerShellCompletion(out)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish, powershell)", shell)
	}
}

// allFlagNames returns every flag spelling with its dash prefix.
func allFlagNames() []string {
	var names []string
	for _, f := range flagRegistry {
		if f.Long != "" {
			names = append(names, "--"+f.Long)
		}
		if f.Short != "" {
			names = append(names, "-"+f.Short)
		}
	}
	return names
}

func generateBashCompletion(out io.Writer) error {
	fmt.Fprintf(out, "# bash completion for seqcalc\n")
	fmt.Fprintf(out, "_seqcalc() {\n")
	fmt.Fprintf(out, "    local cur prev\n")
	fmt.Fprintf(out, "    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	fmt.Fprintf(out, "    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n\n")
	fmt.Fprintf(out, "    case \"$prev\" in\n")
	for _, f := range flagRegistry {
		if len(f.Values) == 0 && !f.IsFile {
			continue
		}
		patterns := []string{}
		if f.Long != "" {
			patterns = append(patterns, "--"+f.Long)
		}
		if f.Short != "" {
			patterns = append(patterns, "-"+f.Short)
		}
		fmt.Fprintf(out, "        %s)\n", strings.Join(patterns, "|"))
		if f.IsFile {
			fmt.Fprintf(out, "            COMPREPLY=( $(compgen -f -- \"$cur\") )\n")
		} else {
			fmt.Fprintf(out, "            COMPREPLY=( $(compgen -W \"%s\" -- \"$cur\") )\n", strings.Join(f.Values, " "))
		}
		fmt.Fprintf(out, "            return 0\n")
		fmt.Fprintf(out, "            ;;\n")
	}
	fmt.Fprintf(out, "    esac\n\n")
	fmt.Fprintf(out, "    COMPREPLY=( $(compgen -W \"%s\" -- \"$cur\") )\n", strings.Join(allFlagNames(), " "))
	fmt.Fprintf(out, "    return 0\n")
	fmt.Fprintf(out, "}\n")
	fmt.Fprintf(out, "complete -F _seqcalc seqcalc\n")
	return nil
}

func generateZshCompletion(out io.Writer) error {
	fmt.Fprintf(out, "#compdef seqcalc\n\n")
	fmt.Fprintf(out, "_seqcalc() {\n")
	fmt.Fprintf(out, "    _arguments \\\n")
	for _, f := range flagRegistry {
		name := "--" + f.Long
		if f.Long == "" {
			name = "-" + f.Short
		}
		spec := fmt.Sprintf("        '%s[%s]", name, f.Help)
		switch {
		case f.IsFile:
			spec += fmt.Sprintf(":%s:_files", f.ValueName)
		case len(f.Values) > 0:
			spec += fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
		case f.ValueName != "":
			spec += fmt.Sprintf(":%s:", f.ValueName)
		}
		spec += "' \\\n"
		fmt.Fprint(out, spec)
	}
	fmt.Fprintf(out, "        && return 0\n")
	fmt.Fprintf(out, "}\n\n")
	fmt.Fprintf(out, "_seqcalc \"$@\"\n")
	return nil
}

func generateFishCompletion(out io.Writer) error {
	fmt.Fprintf(out, "# fish completion for seqcalc\n")
	for _, f := range flagRegistry {
		parts := []string{"complete -c seqcalc"}
		if f.Long != "" {
			parts = append(parts, "-l "+f.Long)
		}
		if f.Short != "" {
			parts = append(parts, "-s "+f.Short)
		}
		if len(f.Values) > 0 {
			parts = append(parts, fmt.Sprintf("-xa \"%s\"", strings.Join(f.Values, " ")))
		} else if f.IsFile {
			parts = append(parts, "-r")
		}
		parts = append(parts, fmt.Sprintf("-d \"%s\"", f.Help))
		fmt.Fprintln(out, strings.Join(parts, " "))
	}
	return nil
}

func generatePowerShellCompletion(out io.Writer) error {
	fmt.Fprintf(out, "# PowerShell completion for seqcalc\n")
	fmt.Fprintf(out, "Register-ArgumentCompleter -Native -CommandName seqcalc -ScriptBlock {\n")
	fmt.Fprintf(out, "    param($wordToComplete, $commandAst, $cursorPosition)\n")
	fmt.Fprintf(out, "    $flags = @(\n")
	for _, name := range allFlagNames() {
		fmt.Fprintf(out, "        '%s'\n", name)
	}
	fmt.Fprintf(out, "    )\n")
	fmt.Fprintf(out, "    $flags | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	fmt.Fprintf(out, "        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterName', $_)\n")
	fmt.Fprintf(out, "    }\n")
	fmt.Fprintf(out, "}\n")
	return nil
}
