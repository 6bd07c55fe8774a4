// Package ui provides terminal color themes for CLI output and the lipgloss
// palette used by the TUI form. Themes respect the NO_COLOR convention
// (https://no-color.org/) and the --no-color flag.
package ui
