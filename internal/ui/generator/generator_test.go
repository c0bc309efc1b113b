// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package generator

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/tweetgen/internal/export"
	"github.com/jeranaias/tweetgen/internal/post"
	"github.com/jeranaias/tweetgen/internal/render"
	"github.com/jeranaias/tweetgen/internal/storage"
	"github.com/jeranaias/tweetgen/internal/theme"
	"github.com/jeranaias/tweetgen/internal/ui/components"
)

// =============================================================================
// FIXTURES
// =============================================================================

type fakeRasterizer struct {
	mu    sync.Mutex
	calls []export.RasterOptions
}

func (f *fakeRasterizer) Rasterize(_ context.Context, _ []byte, opts export.RasterOptions) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, opts)
	return []byte("jpeg"), nil
}

type fakeSaver struct {
	names []string
}

func (s *fakeSaver) Save(name string, _ []byte) (string, error) {
	s.names = append(s.names, name)
	return "/out/" + name, nil
}

type failingKV struct{}

func (failingKV) Get(string) (string, bool, error) { return "", false, nil }
func (failingKV) Set(string, string) error        { return errors.New("read-only") }

type fixture struct {
	model  Model
	raster *fakeRasterizer
	saver  *fakeSaver
	kv     storage.KV
	alerts *components.AlertSink
}

func newFixture(t *testing.T, kv storage.KV) *fixture {
	t.Helper()
	if kv == nil {
		kv = storage.NewMemoryStore()
	}
	f := &fixture{
		raster: &fakeRasterizer{},
		saver:  &fakeSaver{},
		kv:     kv,
		alerts: components.NewAlertSink(8),
	}
	deps := Deps{
		Session:  post.NewSession(post.NewStore(post.Default())),
		Theme:    theme.New(kv, nil),
		Pipeline: export.NewPipeline(f.raster, f.saver, f.alerts, nil, export.Options{}),
		Alerts:   f.alerts,
	}
	f.model = New(deps, Options{DevicePixelRatio: 1})
	return f
}

func (f *fixture) send(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := f.model.Update(msg)
	m, ok := next.(Model)
	require.True(t, ok)
	f.model = m
	return cmd
}

// exportResult runs cmd, descending into batches, and returns the export
// outcome it carried.
func exportResult(t *testing.T, cmd tea.Cmd) ExportDoneMsg {
	t.Helper()
	require.NotNil(t, cmd)
	switch msg := cmd().(type) {
	case ExportDoneMsg:
		return msg
	case tea.BatchMsg:
		for _, c := range msg {
			if c == nil {
				continue
			}
			if done, ok := c().(ExportDoneMsg); ok {
				return done
			}
		}
	}
	t.Fatal("no ExportDoneMsg produced")
	return ExportDoneMsg{}
}

func ctrl(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func alt(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true}
}

// =============================================================================
// EXPORT
// =============================================================================

func TestExport_BeforeLayoutAlertsNotReady(t *testing.T) {
	f := newFixture(t, nil)
	assert.Nil(t, f.model.CaptureTarget())

	done := exportResult(t, f.send(t, ctrl(tea.KeyCtrlS)))
	assert.ErrorIs(t, done.Err, export.ErrCaptureTargetMissing)
	assert.Empty(t, f.raster.calls)

	alert := f.alerts.Listen()().(components.AlertMsg)
	assert.Equal(t, export.AlertNotReady, alert.Message)

	f.send(t, done)
	assert.Zero(t, f.model.Exporting())
}

func TestExport_CaptureWidthFollowsLayout(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  int
	}{
		{"wide", 160, render.WideWidth},
		{"narrow", 80, render.NarrowWidth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			f.send(t, tea.WindowSizeMsg{Width: tt.width, Height: 50})

			target := f.model.CaptureTarget()
			require.NotNil(t, target)
			assert.Equal(t, tt.want, target.Width)

			done := exportResult(t, f.send(t, ctrl(tea.KeyCtrlS)))
			require.NoError(t, done.Err)
			require.Len(t, f.raster.calls, 1)
			assert.Equal(t, tt.want, f.raster.calls[0].Width)
			assert.Equal(t, 2.0, f.raster.calls[0].Scale)
			assert.Equal(t, "/out/"+f.saver.names[0], done.Path)
		})
	}
}

func TestExport_ThemedShortcutsSetOverride(t *testing.T) {
	f := newFixture(t, nil)
	f.send(t, tea.WindowSizeMsg{Width: 120, Height: 40})

	done := exportResult(t, f.send(t, alt('l')))
	require.NoError(t, done.Err)
	assert.Equal(t, theme.OverrideLight, f.model.Override())
	assert.Equal(t, 1, f.model.Exporting())
	assert.Equal(t, "light", f.raster.calls[0].Theme)

	f.send(t, done)
	assert.Zero(t, f.model.Exporting())
	require.Len(t, f.model.toasts.Toasts(), 1)
	assert.Contains(t, f.model.toasts.Toasts()[0].Message, "Saved /out/tweet-tweetgen-")

	exportResult(t, f.send(t, alt('d')))
	assert.Equal(t, theme.OverrideDark, f.model.Override())
	assert.Equal(t, "dark", f.raster.calls[1].Theme)
}

// =============================================================================
// THEME
// =============================================================================

func TestOverride_Cycles(t *testing.T) {
	f := newFixture(t, nil)
	assert.Equal(t, theme.OverrideSystem, f.model.Override())

	f.send(t, ctrl(tea.KeyCtrlO))
	assert.Equal(t, theme.OverrideLight, f.model.Override())
	assert.False(t, f.model.previewDark())

	f.send(t, ctrl(tea.KeyCtrlO))
	assert.Equal(t, theme.OverrideDark, f.model.Override())

	f.send(t, ctrl(tea.KeyCtrlO))
	assert.Equal(t, theme.OverrideSystem, f.model.Override())
	assert.True(t, f.model.previewDark())
}

func TestToggleTheme_Persists(t *testing.T) {
	f := newFixture(t, nil)
	require.True(t, f.model.deps.Theme.IsDark())

	f.send(t, ctrl(tea.KeyCtrlT))
	assert.False(t, f.model.deps.Theme.IsDark())
	assert.False(t, f.model.styles.IsDark)

	v, ok, err := f.kv.Get(theme.StorageKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", v)
	assert.Zero(t, f.model.toasts.Len())
}

func TestToggleTheme_PersistFailureWarns(t *testing.T) {
	f := newFixture(t, failingKV{})

	f.send(t, ctrl(tea.KeyCtrlT))
	assert.False(t, f.model.deps.Theme.IsDark())
	require.Equal(t, 1, f.model.toasts.Len())
	assert.Equal(t, components.ToastKindWarning, f.model.toasts.Toasts()[0].Kind)
}

// =============================================================================
// INTERACTIONS AND MESSAGES
// =============================================================================

func TestLikeAndRetweet(t *testing.T) {
	f := newFixture(t, nil)
	store := f.model.deps.Session.Store()

	f.send(t, ctrl(tea.KeyCtrlL))
	assert.Equal(t, "129", store.Get().Likes.String())
	assert.True(t, f.model.deps.Session.Interactions().Liked)

	f.send(t, ctrl(tea.KeyCtrlL))
	assert.Equal(t, "128", store.Get().Likes.String())

	f.send(t, ctrl(tea.KeyCtrlR))
	assert.Equal(t, "46", store.Get().Retweets.String())
}

func TestAlertMsg_ShowsErrorToast(t *testing.T) {
	f := newFixture(t, nil)

	cmd := f.send(t, components.AlertMsg{Message: export.AlertDownloadError})
	assert.NotNil(t, cmd)
	require.Equal(t, 1, f.model.toasts.Len())
	toast := f.model.toasts.Toasts()[0]
	assert.Equal(t, components.ToastKindError, toast.Kind)
	assert.Equal(t, export.AlertDownloadError, toast.Message)

	f.send(t, ctrl(tea.KeyEsc))
	assert.Zero(t, f.model.toasts.Len())
}

func TestHelp_ToggleSwallowsKeys(t *testing.T) {
	f := newFixture(t, nil)
	f.send(t, tea.WindowSizeMsg{Width: 100, Height: 40})

	f.send(t, ctrl(tea.KeyF1))
	assert.True(t, f.model.showHelp)

	f.send(t, ctrl(tea.KeyCtrlL))
	assert.Equal(t, "128", f.model.deps.Session.Store().Get().Likes.String())

	f.send(t, ctrl(tea.KeyEsc))
	assert.False(t, f.model.showHelp)
}

func TestQuit(t *testing.T) {
	f := newFixture(t, nil)
	cmd := f.send(t, ctrl(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

// =============================================================================
// VIEW
// =============================================================================

func TestView(t *testing.T) {
	f := newFixture(t, nil)
	assert.Equal(t, "Loading...", f.model.View())

	f.send(t, tea.WindowSizeMsg{Width: 140, Height: 50})
	view := f.model.View()
	assert.Contains(t, view, "Mock Tweet Generator")
	assert.Contains(t, view, "Live preview (dark)")
	assert.Contains(t, view, "@tweetgen")
	assert.Contains(t, view, "Display name")
	assert.Contains(t, view, "wide")

	f.send(t, tea.WindowSizeMsg{Width: 70, Height: 50})
	assert.True(t, strings.Contains(f.model.View(), "narrow"))
}
