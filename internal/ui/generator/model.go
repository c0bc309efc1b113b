// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package generator

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jeranaias/tweetgen/internal/export"
	"github.com/jeranaias/tweetgen/internal/post"
	"github.com/jeranaias/tweetgen/internal/render"
	"github.com/jeranaias/tweetgen/internal/theme"
	"github.com/jeranaias/tweetgen/internal/ui/components"
	"github.com/jeranaias/tweetgen/internal/ui/editor"
	"github.com/jeranaias/tweetgen/internal/ui/styles"
)

// Deps are the collaborators the screen drives.
type Deps struct {
	Session  *post.Session
	Theme    *theme.Controller
	Pipeline *export.Pipeline
	// Alerts must be the Notifier the pipeline was built with.
	Alerts *components.AlertSink
	Logger *zap.SugaredLogger
	// Context is cancelled when the program exits.
	Context context.Context
}

// Options are the screen's tunables, usually taken from config.
type Options struct {
	DevicePixelRatio float64
	WideBreakpoint   int
	CompactMode      bool
	MaxMediaBytes    int64
	DropDir          string
}

// Model is the root Bubble Tea model: the editor form, the live preview
// and the export controls.
type Model struct {
	deps   Deps
	opts   Options
	keys   KeyMap
	styles *styles.Theme

	editor    editor.Model
	toasts    *components.ToastManager
	statusBar *components.StatusBar
	help      *components.HelpOverlay
	spinner   spinner.Model

	override  theme.Override
	showHelp  bool
	exporting int

	// ready flips on the first WindowSizeMsg; until then no preview is laid
	// out and exports have no capture target.
	ready  bool
	width  int
	height int
}

// New builds the screen. The chrome styles follow deps.Theme.
func New(deps Deps, opts Options) Model {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop().Sugar()
	}
	if deps.Context == nil {
		deps.Context = context.Background()
	}
	if deps.Alerts == nil {
		deps.Alerts = components.NewAlertSink(8)
	}

	st := styles.NewTheme(deps.Theme.IsDark())
	if opts.WideBreakpoint > 0 {
		st.WideBreakpoint = opts.WideBreakpoint
	}
	deps.Theme.OnApply(st.Apply)

	keys := DefaultKeyMap()
	ed := editor.New(deps.Session.Store(), st, editor.Options{
		Context:  deps.Context,
		MaxBytes: opts.MaxMediaBytes,
	})

	sp := spinner.New()
	sp.Spinner = styles.LineSpinner.Spinner()
	sp.Style = st.Spinner

	help := components.NewHelpOverlay(
		components.HelpSection{Title: "Post", Bindings: flatten(keys.FullHelp())},
		components.HelpSection{Title: "Editor", Bindings: flatten(ed.Keys().FullHelp())},
	)

	return Model{
		deps:      deps,
		opts:      opts,
		keys:      keys,
		styles:    st,
		editor:    ed,
		toasts:    components.NewToastManager(),
		statusBar: components.NewStatusBar(st),
		help:      help,
		spinner:   sp,
		override:  theme.OverrideSystem,
	}
}

// Init starts the editor cursor, the alert listener and the toast clock.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.editor.Init(),
		m.deps.Alerts.Listen(),
		components.ToastTickCmd(),
	)
}

// Override returns the current preview theme override.
func (m Model) Override() theme.Override {
	return m.override
}

// Exporting reports how many exports are in flight.
func (m Model) Exporting() int {
	return m.exporting
}

// CaptureTarget returns the visible preview, or nil before the first
// layout.
func (m Model) CaptureTarget() *export.Target {
	if !m.ready {
		return nil
	}
	width := render.NarrowWidth
	if m.styles.GetLayoutMode() == styles.LayoutWide {
		width = render.WideWidth
	}
	return &export.Target{
		Post:         m.deps.Session.Store().Get(),
		Interactions: m.deps.Session.Interactions(),
		Width:        width,
	}
}

// previewDark is the theme the card is drawn in.
func (m Model) previewDark() bool {
	return theme.Effective(m.override, m.deps.Theme.IsDark())
}

func flatten(groups [][]key.Binding) []key.Binding {
	var out []key.Binding
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
