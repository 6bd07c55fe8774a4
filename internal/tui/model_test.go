package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	apperrors "github.com/agbru/seqcalc/internal/errors"
	"github.com/agbru/seqcalc/internal/sequence"
	"github.com/agbru/seqcalc/internal/ui"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	original := ui.GetCurrentTheme()
	ui.SetCurrentTheme(ui.NoColorTheme)
	t.Cleanup(func() { ui.SetCurrentTheme(original) })
	initTUIStyles()

	m := NewModel(context.Background(), sequence.Request{
		Kind:      sequence.Arithmetic,
		FirstTerm: sequence.DefaultFirstTerm,
		Step:      sequence.DefaultDifference,
		NumTerms:  5,
	}, "test")
	t.Cleanup(m.cancel)
	return m
}

func pressKey(m Model, msg tea.KeyMsg) Model {
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func TestNewModel_SeedsInputsFromRequest(t *testing.T) {
	m := newTestModel(t)

	if m.kind != sequence.Arithmetic {
		t.Errorf("kind = %v, want arithmetic", m.kind)
	}
	if got := m.inputs[0].Value(); got != "1" {
		t.Errorf("first term input = %q, want 1", got)
	}
	if got := m.inputs[2].Value(); got != "5" {
		t.Errorf("count input = %q, want 5", got)
	}
	if m.exitCode != apperrors.ExitSuccess {
		t.Errorf("exitCode = %d, want success", m.exitCode)
	}
}

func TestModel_SubmitGeneratesResult(t *testing.T) {
	m := newTestModel(t)

	m = pressKey(m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.result == nil {
		t.Fatal("submit should produce a result")
	}
	if m.errText != "" {
		t.Fatalf("unexpected error text: %s", m.errText)
	}

	view := m.View()
	for _, want := range []string{"1, 2, 3, 4, 5", "Sum", "a_n = 1 + (n-1) × 1"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q, got:\n%s", want, view)
		}
	}
}

func TestModel_ToggleKindFollowsStepDefault(t *testing.T) {
	m := newTestModel(t)

	// Focus starts on the kind row, so arrow keys switch the kind.
	m = pressKey(m, tea.KeyMsg{Type: tea.KeyRight})

	if m.kind != sequence.Geometric {
		t.Fatalf("kind = %v, want geometric", m.kind)
	}
	if got := m.inputs[1].Value(); got != "2" {
		t.Errorf("step input should follow the geometric default, got %q", got)
	}

	m = pressKey(m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.kind != sequence.Arithmetic {
		t.Errorf("kind = %v, want arithmetic after toggling back", m.kind)
	}
	if got := m.inputs[1].Value(); got != "1" {
		t.Errorf("step input should revert to the arithmetic default, got %q", got)
	}
}

func TestModel_InvalidInputSetsError(t *testing.T) {
	m := newTestModel(t)
	m.inputs[2].SetValue("lots")

	m = pressKey(m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.result != nil {
		t.Error("invalid input should not produce a result")
	}
	if !strings.Contains(m.errText, "invalid term count") {
		t.Errorf("errText = %q, want an invalid term count message", m.errText)
	}
}

func TestModel_ValidationErrorSurfaces(t *testing.T) {
	m := newTestModel(t)
	m.inputs[2].SetValue("1001")

	m = pressKey(m, tea.KeyMsg{Type: tea.KeyEnter})

	if !strings.Contains(m.errText, "num_terms") {
		t.Errorf("errText = %q, want the validation message", m.errText)
	}
}

func TestModel_FocusCycle(t *testing.T) {
	m := newTestModel(t)

	m = pressKey(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != fieldFirst {
		t.Errorf("focus = %d, want first term field", m.focus)
	}
	if !m.inputs[0].Focused() {
		t.Error("first input should be focused")
	}

	for i := 0; i < 3; i++ {
		m = pressKey(m, tea.KeyMsg{Type: tea.KeyTab})
	}
	if m.focus != fieldKind {
		t.Errorf("focus should wrap back to the kind row, got %d", m.focus)
	}
}

func TestModel_ContextCancellationQuits(t *testing.T) {
	m := newTestModel(t)

	updated, cmd := m.Update(ContextCancelledMsg{Err: context.Canceled})
	m = updated.(Model)

	if m.exitCode != apperrors.ExitErrorCanceled {
		t.Errorf("exitCode = %d, want %d", m.exitCode, apperrors.ExitErrorCanceled)
	}
	if cmd == nil {
		t.Fatal("cancellation should produce a quit command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("expected tea.Quit, got %T", msg)
	}
}

func TestDefaultKeyMap_BindingsHaveHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := map[string]string{
		"enter":     km.Submit.Help().Key,
		"tab":       km.Next.Help().Key,
		"shift+tab": km.Prev.Help().Key,
		"esc":       km.Quit.Help().Key,
	}
	for want, got := range bindings {
		if got != want {
			t.Errorf("help key = %q, want %q", got, want)
		}
	}
}
