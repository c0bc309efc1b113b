// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/tweetgen/internal/ui/styles"
)

// =============================================================================
// TOAST TESTS
// =============================================================================

func TestNewErrorToast(t *testing.T) {
	toast := NewErrorToast("Failed to generate image. Please try again.")

	if toast.Kind != ToastKindError {
		t.Errorf("Kind = %d, want ToastKindError", toast.Kind)
	}
	if toast.Duration != styles.ErrorToastDuration {
		t.Errorf("Duration = %v, want %v", toast.Duration, styles.ErrorToastDuration)
	}
	if toast.IsExpired() {
		t.Error("fresh toast should not be expired")
	}
}

func TestToastIsExpired(t *testing.T) {
	toast := NewStatusToast("x")
	toast.Duration = 10 * time.Millisecond
	toast.CreatedAt = time.Now().Add(-20 * time.Millisecond)

	if !toast.IsExpired() {
		t.Error("toast should be expired")
	}
	if toast.TimeRemaining() != 0 {
		t.Errorf("TimeRemaining = %v, want 0", toast.TimeRemaining())
	}
}

func TestToastManager(t *testing.T) {
	m := NewToastManager()

	first := m.AddError("one")
	second := m.AddSuccess("two")
	if first == second {
		t.Fatal("toast IDs must be unique")
	}
	if m.Len() != 2 {
		t.Fatalf("Len = %d, want 2", m.Len())
	}
	if got := m.Toasts()[0].Message; got != "two" {
		t.Errorf("newest toast = %q, want two", got)
	}

	m.Dismiss(first)
	if m.Len() != 1 {
		t.Errorf("Len after dismiss = %d, want 1", m.Len())
	}

	m.DismissAll()
	if m.Len() != 0 {
		t.Errorf("Len after DismissAll = %d", m.Len())
	}
}

func TestToastManager_Cap(t *testing.T) {
	m := NewToastManager()
	for i := 0; i < maxVisibleToasts+3; i++ {
		m.AddStatus("toast")
	}
	if m.Len() != maxVisibleToasts {
		t.Errorf("Len = %d, want %d", m.Len(), maxVisibleToasts)
	}
}

func TestToastManager_TickExpires(t *testing.T) {
	m := NewToastManager()
	expired := NewWarningToast("old")
	expired.CreatedAt = time.Now().Add(-time.Hour)
	m.Add(expired)
	m.AddStatus("new")

	active := m.Tick()
	if len(active) != 1 || active[0].Message != "new" {
		t.Errorf("Tick() = %+v", active)
	}
}

func TestRenderToast(t *testing.T) {
	out := RenderToast(NewErrorToast("An error occurred while downloading the image. Please try again."), 40)

	if !strings.Contains(out, styles.StatusIndicators.Error) {
		t.Error("error toast should carry the error indicator")
	}
	for _, line := range strings.Split(out, "\n") {
		if w := lipgloss.Width(line); w > 40 {
			t.Errorf("line width %d exceeds 40: %q", w, line)
		}
	}
}

func TestRenderToastStack_Empty(t *testing.T) {
	if RenderToastStack(nil, 80) != "" {
		t.Error("empty stack should render nothing")
	}
}

func TestWrapToastText(t *testing.T) {
	got := wrapToastText("aaa bbb ccc", 7)
	if got != "aaa bbb\nccc" {
		t.Errorf("wrapToastText = %q", got)
	}
	if wrapToastText("", 5) != "" {
		t.Error("empty text should stay empty")
	}
}

// =============================================================================
// ALERT SINK TESTS
// =============================================================================

func TestAlertSink_Listen(t *testing.T) {
	sink := NewAlertSink(2)
	sink.Alert("Tweet not ready for download. Please try again.")

	msg := sink.Listen()()
	alert, ok := msg.(AlertMsg)
	if !ok {
		t.Fatalf("Listen() produced %T", msg)
	}
	if alert.Message != "Tweet not ready for download. Please try again." {
		t.Errorf("Message = %q", alert.Message)
	}
}

func TestAlertSink_DropsWhenFull(t *testing.T) {
	sink := NewAlertSink(1)

	done := make(chan struct{})
	go func() {
		sink.Alert("a")
		sink.Alert("b")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Alert blocked on a full buffer")
	}

	if got := sink.Listen()().(AlertMsg).Message; got != "a" {
		t.Errorf("first alert = %q, want a", got)
	}
}

// =============================================================================
// HELP AND STATUS BAR TESTS
// =============================================================================

func testBindings() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "export")),
		key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "toggle theme")),
	}
}

func TestHelpOverlay_Markdown(t *testing.T) {
	disabled := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hidden"), key.WithDisabled())
	h := NewHelpOverlay(HelpSection{Title: "Export", Bindings: append(testBindings(), disabled)})

	md := h.Markdown()
	if !strings.Contains(md, "## Export") || !strings.Contains(md, "| `ctrl+s` | export |") {
		t.Errorf("Markdown() = %s", md)
	}
	if strings.Contains(md, "hidden") {
		t.Error("disabled bindings should be omitted")
	}
}

func TestHelpOverlay_ViewCaches(t *testing.T) {
	h := NewHelpOverlay(HelpSection{Title: "Export", Bindings: testBindings()})
	h.Width = 60

	first := h.View()
	if !strings.Contains(first, "export") {
		t.Errorf("View() missing binding text: %s", first)
	}
	if h.View() != first {
		t.Error("View() should be stable for the same width and theme")
	}
}

func TestStatusBar_View(t *testing.T) {
	bar := NewStatusBar(styles.NewTheme(true))
	bar.Theme = "dark"
	bar.Override = "system"
	bar.Layout = "wide"
	bar.Shortcuts = testBindings()
	bar.SetWidth(100)

	out := bar.View()
	for _, want := range []string{"dark", "system", "wide", "ctrl+s"} {
		if !strings.Contains(out, want) {
			t.Errorf("status bar missing %q: %s", want, out)
		}
	}
	if w := lipgloss.Width(out); w > 100 {
		t.Errorf("status bar width %d exceeds 100", w)
	}
}

func TestStatusBar_DropsShortcutsWhenNarrow(t *testing.T) {
	bar := NewStatusBar(styles.NewTheme(false))
	bar.Theme = "light"
	bar.Override = "dark"
	bar.Layout = "narrow"
	bar.Shortcuts = testBindings()
	bar.SetWidth(40)

	if strings.Contains(bar.View(), "toggle theme") {
		t.Error("narrow status bar should drop shortcuts that do not fit")
	}
}
