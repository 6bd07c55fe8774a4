// Package tui implements the interactive terminal form for sequence
// generation, built on bubbletea. The form edits the generation parameters
// in place and renders each result with its summary and closed forms.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/agbru/seqcalc/internal/errors"
	"github.com/agbru/seqcalc/internal/format"
	"github.com/agbru/seqcalc/internal/sequence"
)

// Focus order of the form fields.
const (
	fieldKind = iota
	fieldFirst
	fieldStep
	fieldCount
	fieldMax
)

// ContextCancelledMsg signals that the parent context was canceled.
type ContextCancelledMsg struct{ Err error }

// Model is the root bubbletea model of the sequence form.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc

	kind   sequence.Kind
	inputs [3]textinput.Model
	focus  int

	result  *sequence.Result
	errText string

	keymap   KeyMap
	version  string
	width    int
	exitCode int
}

// NewModel creates the form model seeded with the given request.
func NewModel(parentCtx context.Context, req sequence.Request, version string) Model {
	ctx, cancel := context.WithCancel(parentCtx)

	var inputs [3]textinput.Model
	labels := [3]string{
		format.Number(req.FirstTerm),
		format.Number(req.Step),
		strconv.Itoa(req.NumTerms),
	}
	for i := range inputs {
		ti := textinput.New()
		ti.SetValue(labels[i])
		ti.CharLimit = 24
		ti.Width = 20
		ti.Prompt = ""
		inputs[i] = ti
	}

	return Model{
		ctx:      ctx,
		cancel:   cancel,
		kind:     req.Kind,
		inputs:   inputs,
		focus:    fieldKind,
		keymap:   DefaultKeyMap(),
		version:  version,
		exitCode: apperrors.ExitSuccess,
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, watchContextCmd(m.ctx))
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case ContextCancelledMsg:
		m.exitCode = apperrors.ExitErrorCanceled
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Submit):
		m.generate()
		return m, nil

	case key.Matches(msg, m.keymap.Next):
		return m.moveFocus(1)

	case key.Matches(msg, m.keymap.Prev):
		return m.moveFocus(-1)

	case key.Matches(msg, m.keymap.Toggle) && m.focus == fieldKind:
		m.toggleKind()
		return m, nil
	}

	if m.focus >= fieldFirst {
		var cmd tea.Cmd
		m.inputs[m.focus-fieldFirst], cmd = m.inputs[m.focus-fieldFirst].Update(msg)
		return m, cmd
	}
	return m, nil
}

// moveFocus shifts the focused field by delta, wrapping around the form.
func (m Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	m.focus = (m.focus + delta + fieldMax) % fieldMax

	var cmd tea.Cmd
	for i := range m.inputs {
		if m.focus == fieldFirst+i {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return m, cmd
}

// toggleKind switches between arithmetic and geometric. When the step input
// still holds the other kind's default, it follows along.
func (m *Model) toggleKind() {
	if m.kind == sequence.Arithmetic {
		m.kind = sequence.Geometric
		if m.inputs[1].Value() == format.Number(sequence.DefaultDifference) {
			m.inputs[1].SetValue(format.Number(sequence.DefaultRatio))
		}
	} else {
		m.kind = sequence.Arithmetic
		if m.inputs[1].Value() == format.Number(sequence.DefaultRatio) {
			m.inputs[1].SetValue(format.Number(sequence.DefaultDifference))
		}
	}
}

// generate parses the form fields and runs the engine, storing either the
// result or an error message for the next render.
func (m *Model) generate() {
	m.result = nil
	m.errText = ""

	first, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[0].Value()), 64)
	if err != nil {
		m.errText = fmt.Sprintf("invalid first term: %s", m.inputs[0].Value())
		return
	}
	step, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[1].Value()), 64)
	if err != nil {
		m.errText = fmt.Sprintf("invalid %s: %s", m.kind.StepName(), m.inputs[1].Value())
		return
	}
	count, err := strconv.Atoi(strings.TrimSpace(m.inputs[2].Value()))
	if err != nil {
		m.errText = fmt.Sprintf("invalid term count: %s", m.inputs[2].Value())
		return
	}

	res, err := sequence.Evaluate(sequence.Request{
		Kind:      m.kind,
		FirstTerm: first,
		Step:      step,
		NumTerms:  count,
	})
	if err != nil {
		m.errText = err.Error()
		return
	}
	m.result = &res
}

// View renders the full form.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Sequence Calculator"))
	b.WriteString(" ")
	b.WriteString(versionStyle.Render(m.version))
	b.WriteString("\n\n")

	b.WriteString(panelStyle.Render(m.renderForm()))
	b.WriteString("\n")

	if m.errText != "" {
		b.WriteString(errorStyle.Render("✗ " + m.errText))
		b.WriteString("\n")
	}
	if m.result != nil {
		b.WriteString(panelStyle.Render(m.renderResult()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderForm() string {
	var b strings.Builder

	kindLabel := labelStyle
	if m.focus == fieldKind {
		kindLabel = labelFocusedStyle
	}
	b.WriteString(kindLabel.Render("Kind"))
	b.WriteString(m.renderKindChoice())
	b.WriteString("\n")

	stepLabel := "Difference"
	if m.kind == sequence.Geometric {
		stepLabel = "Ratio"
	}
	rows := [3]string{"First term", stepLabel, "Term count"}
	for i, label := range rows {
		style := labelStyle
		if m.focus == fieldFirst+i {
			style = labelFocusedStyle
		}
		b.WriteString(style.Render(label))
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderKindChoice() string {
	arith := kindInactiveStyle.Render("arithmetic")
	geom := kindInactiveStyle.Render("geometric")
	if m.kind == sequence.Arithmetic {
		arith = kindActiveStyle.Render("[arithmetic]")
	} else {
		geom = kindActiveStyle.Render("[geometric]")
	}
	return arith + "  " + geom
}

func (m Model) renderResult() string {
	res := m.result
	var b strings.Builder

	b.WriteString(resultLabelStyle.Render("Sequence  "))
	b.WriteString(resultValueStyle.Render(format.Sequence(res.Terms)))
	b.WriteString("\n")
	b.WriteString(resultLabelStyle.Render("Last term "))
	b.WriteString(resultValueStyle.Render(format.Number(res.Summary.LastTerm)))
	b.WriteString("\n")
	b.WriteString(resultLabelStyle.Render("Sum       "))
	b.WriteString(resultValueStyle.Render(format.Number(res.Summary.Sum)))
	b.WriteString("\n")
	b.WriteString(formulaStyle.Render(res.Request.TermFormula()))
	b.WriteString("\n")
	b.WriteString(formulaStyle.Render(res.Request.SumFormula()))
	return b.String()
}

func (m Model) renderFooter() string {
	bindings := []key.Binding{
		m.keymap.Submit, m.keymap.Next, m.keymap.Toggle, m.keymap.Quit,
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts,
			footerKeyStyle.Render(h.Key)+" "+footerDescStyle.Render(h.Desc))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(parts, "  "))
}

// Run is the public entry point for the TUI mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, req sequence.Request, version string) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, req, version)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}

	if m, ok := finalModel.(Model); ok {
		m.cancel()
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err()}
	}
}
