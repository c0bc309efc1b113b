// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
)

func TestNewTheme(t *testing.T) {
	theme := NewTheme(true)
	if theme == nil {
		t.Fatal("NewTheme() returned nil")
	}
	if !theme.IsDark {
		t.Error("NewTheme(true) should be dark")
	}
	if !lipgloss.HasDarkBackground() {
		t.Error("renderer should follow the app theme")
	}
	if theme.App.Render("test") == "" {
		t.Error("App style should render")
	}
}

func TestThemeApply(t *testing.T) {
	theme := NewTheme(true)
	theme.Apply(false)

	if theme.IsDark {
		t.Error("Apply(false) should switch to light")
	}
	if lipgloss.HasDarkBackground() {
		t.Error("renderer should report a light background")
	}

	theme.Apply(true)
	if !theme.IsDark || !lipgloss.HasDarkBackground() {
		t.Error("Apply(true) should switch back to dark")
	}
}

func TestThemeStylesRender(t *testing.T) {
	theme := NewTheme(false)
	styles := []struct {
		name  string
		style lipgloss.Style
	}{
		{"Header", theme.Header},
		{"Panel", theme.Panel},
		{"PanelFocused", theme.PanelFocused},
		{"FieldLabel", theme.FieldLabel},
		{"Button", theme.ButtonActive},
		{"StatusBar", theme.StatusBar},
		{"ToastBox", theme.ToastBox},
	}
	for _, s := range styles {
		if !strings.Contains(s.style.Render("test"), "test") {
			t.Errorf("%s style lost its content", s.name)
		}
	}
}

func TestThemeGetLayoutMode(t *testing.T) {
	theme := NewTheme(true)

	tests := []struct {
		breakpoint int
		width      int
		want       LayoutMode
	}{
		{0, 80, LayoutNarrow},
		{0, 109, LayoutNarrow},
		{0, 110, LayoutWide},
		{0, 200, LayoutWide},
		{140, 120, LayoutNarrow},
		{140, 140, LayoutWide},
	}

	for _, tc := range tests {
		theme.WideBreakpoint = tc.breakpoint
		theme.SetSize(tc.width, 24)
		if got := theme.GetLayoutMode(); got != tc.want {
			t.Errorf("breakpoint %d width %d: got %v, want %v", tc.breakpoint, tc.width, got, tc.want)
		}
	}
}

func TestLayoutModeString(t *testing.T) {
	if LayoutWide.String() != "wide" || LayoutNarrow.String() != "narrow" {
		t.Errorf("unexpected names %q %q", LayoutWide, LayoutNarrow)
	}
}

func TestSpinnerConfig(t *testing.T) {
	if LineSpinner.Duration() != 100*time.Millisecond {
		t.Errorf("LineSpinner.Duration() = %v", LineSpinner.Duration())
	}
	if (SpinnerConfig{}).Duration() != time.Second {
		t.Error("zero FPS should fall back to one frame per second")
	}

	s := DotsSpinner.Spinner()
	if len(s.Frames) != len(DotsSpinner.Frames) || s.FPS != DotsSpinner.Duration() {
		t.Errorf("Spinner() = %+v", s)
	}
}

func TestRenderStatusFunctions(t *testing.T) {
	tests := []struct {
		name      string
		fn        func(string) string
		indicator string
	}{
		{"success", RenderSuccess, StatusIndicators.Success},
		{"error", RenderError, StatusIndicators.Error},
		{"warning", RenderWarning, StatusIndicators.Warning},
		{"info", RenderInfo, StatusIndicators.Info},
	}
	for _, tt := range tests {
		out := tt.fn("saved")
		if !strings.Contains(out, tt.indicator) || !strings.Contains(out, "saved") {
			t.Errorf("%s: %q missing indicator or message", tt.name, out)
		}
	}
}
