// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package editor

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/tweetgen/internal/media"
	"github.com/jeranaias/tweetgen/internal/post"
	"github.com/jeranaias/tweetgen/internal/ui/styles"
)

// Options configures a new editor.
type Options struct {
	// Context bounds file reads; cancelled when the program quits.
	Context  context.Context
	MaxBytes int64
	Keys     KeyMap
}

// Model is the form that edits the post held in a store.
type Model struct {
	store *post.Store
	theme *styles.Theme
	keys  KeyMap

	ctx      context.Context
	maxBytes int64

	inputs  [fieldCount]textinput.Model
	content textarea.Model
	focus   FieldID
	width   int

	pending map[media.Slot]string
	errs    map[media.Slot]string
}

// New creates an editor bound to store, with focus on the display name.
func New(store *post.Store, theme *styles.Theme, opts Options) Model {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = media.DefaultMaxBytes
	}
	if len(opts.Keys.NextField.Keys()) == 0 {
		opts.Keys = DefaultKeyMap()
	}

	m := Model{
		store:    store,
		theme:    theme,
		keys:     opts.Keys,
		ctx:      opts.Context,
		maxBytes: opts.MaxBytes,
		pending:  make(map[media.Slot]string),
		errs:     make(map[media.Slot]string),
	}

	for id := FieldID(0); id < fieldCount; id++ {
		switch id.kind() {
		case kindText, kindPath:
			ti := textinput.New()
			ti.Prompt = ""
			ti.Placeholder = fieldSpecs[id].placeholder
			ti.CharLimit = 0
			m.inputs[id] = ti
		case kindArea:
			ta := textarea.New()
			ta.Placeholder = fieldSpecs[id].placeholder
			ta.ShowLineNumbers = false
			// Posts loaded from disk may be any length.
			ta.CharLimit = 0
			ta.MaxHeight = 0
			ta.SetHeight(4)
			m.content = ta
		}
	}

	m.Sync()
	m.SetWidth(60)
	m.focusField(FieldDisplayName)
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Keys returns the editor key map.
func (m Model) Keys() KeyMap {
	return m.keys
}

// Focused returns the field that has keyboard focus.
func (m Model) Focused() FieldID {
	return m.focus
}

// Pending reports whether a file is being read for slot.
func (m Model) Pending(slot media.Slot) bool {
	_, ok := m.pending[slot]
	return ok
}

// SetWidth resizes the inputs to fit width columns.
func (m *Model) SetWidth(width int) {
	m.width = width
	inner := width - m.theme.FieldLabel.GetWidth() - 4
	if inner < 10 {
		inner = 10
	}
	for id := FieldID(0); id < fieldCount; id++ {
		switch id.kind() {
		case kindText, kindPath:
			m.inputs[id].Width = inner
		case kindArea:
			m.content.SetWidth(inner)
		}
	}
}

// Sync copies the store's current post into the inputs. Inputs that already
// hold the right value keep their cursor.
func (m *Model) Sync() {
	p := m.store.Get()
	for id := FieldID(0); id < fieldCount; id++ {
		want := textOf(id, p)
		switch id.kind() {
		case kindText:
			if m.inputs[id].Value() != want {
				m.inputs[id].SetValue(want)
				m.inputs[id].CursorEnd()
			}
		case kindArea:
			if m.content.Value() != want {
				m.content.SetValue(want)
			}
		}
	}
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles key presses and finished file reads.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case IngestedMsg:
		return m.handleIngested(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m.forward(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextField):
		return m, m.focusField((m.focus + 1) % fieldCount)
	case key.Matches(msg, m.keys.PrevField):
		return m, m.focusField((m.focus + fieldCount - 1) % fieldCount)
	case key.Matches(msg, m.keys.CycleBadge):
		m.store.Update(func(p post.Post) post.Post {
			p.VerificationBadge = p.VerificationBadge.Next()
			return p
		})
		return m, nil
	case key.Matches(msg, m.keys.ToggleTimestamp):
		m.toggleTimestamp()
		return m, nil
	case key.Matches(msg, m.keys.ClearProfile):
		m.store.Update(post.Post.ClearProfileImage)
		delete(m.errs, media.SlotProfile)
		return m, nil
	case key.Matches(msg, m.keys.ClearMedia):
		m.store.Update(post.Post.ClearMedia)
		delete(m.errs, media.SlotMedia)
		return m, nil
	}

	switch m.focus.kind() {
	case kindChoice:
		switch {
		case key.Matches(msg, m.keys.CycleChoice):
			m.cycleChoice(true)
		case key.Matches(msg, m.keys.CycleBack):
			m.cycleChoice(false)
		}
		return m, nil
	case kindPath:
		if key.Matches(msg, m.keys.Attach) {
			return m.attach(m.focus)
		}
	}

	return m.forward(msg)
}

// forward passes msg to the focused input and writes any change back to
// the store.
func (m Model) forward(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus.kind() {
	case kindText:
		before := m.inputs[m.focus].Value()
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		if after := m.inputs[m.focus].Value(); after != before {
			id := m.focus
			m.store.Update(func(p post.Post) post.Post { return withText(id, p, after) })
		}
	case kindArea:
		before := m.content.Value()
		m.content, cmd = m.content.Update(msg)
		if after := m.content.Value(); after != before {
			m.store.Update(func(p post.Post) post.Post { return withText(FieldContent, p, after) })
		}
	case kindPath:
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	}
	return m, cmd
}

func (m *Model) cycleChoice(forward bool) {
	switch m.focus {
	case FieldBadge:
		m.store.Update(func(p post.Post) post.Post {
			if forward {
				p.VerificationBadge = p.VerificationBadge.Next()
			} else {
				p.VerificationBadge = prevBadge(p.VerificationBadge)
			}
			return p
		})
	case FieldTimestampFormat:
		m.toggleTimestamp()
	}
}

func (m *Model) toggleTimestamp() {
	p := m.store.Update(func(p post.Post) post.Post {
		return p.WithTimestampFormat(flipTimestamp(p.TimestampFormat))
	})
	m.inputs[FieldTimestamp].SetValue(p.DisplayTimestamp())
	m.inputs[FieldTimestamp].CursorEnd()
	if p.TimestampFormat == post.TimestampExact {
		m.inputs[FieldTimestamp].Placeholder = "e.g., 12:34 PM"
	} else {
		m.inputs[FieldTimestamp].Placeholder = fieldSpecs[FieldTimestamp].placeholder
	}
}

func (m Model) attach(id FieldID) (Model, tea.Cmd) {
	slot := id.slot()
	cmd := ingestCmd(m.ctx, slot, m.inputs[id].Value(), m.maxBytes)
	if cmd == nil {
		return m, nil
	}
	m.pending[slot] = expandPath(m.inputs[id].Value())
	delete(m.errs, slot)
	return m, cmd
}

func (m Model) handleIngested(msg IngestedMsg) (Model, tea.Cmd) {
	delete(m.pending, msg.Slot)

	if err := msg.Result.Err; err != nil {
		m.errs[msg.Slot] = err.Error()
		return m, noticeCmd(NoticeMsg{Err: fmt.Errorf("attach %s: %w", msg.Slot, err)})
	}

	res := msg.Result
	m.store.Update(func(p post.Post) post.Post {
		if msg.Slot == media.SlotProfile {
			return p.SetProfileImage(res.Ref)
		}
		return p.SetMedia(res.Ref, res.Kind)
	})
	delete(m.errs, msg.Slot)

	id := FieldMediaPath
	if msg.Slot == media.SlotProfile {
		id = FieldProfilePath
	}
	m.inputs[id].SetValue("")

	return m, noticeCmd(NoticeMsg{Text: fmt.Sprintf("Attached %s (%s)", res.Ref.Name, res.Kind)})
}

func (m *Model) focusField(id FieldID) tea.Cmd {
	for i := FieldID(0); i < fieldCount; i++ {
		switch i.kind() {
		case kindText, kindPath:
			m.inputs[i].Blur()
		case kindArea:
			m.content.Blur()
		}
	}
	m.focus = id
	switch id.kind() {
	case kindText, kindPath:
		return m.inputs[id].Focus()
	case kindArea:
		return m.content.Focus()
	}
	return nil
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the form.
func (m Model) View() string {
	t := m.theme
	p := m.store.Get()

	rows := make([]string, 0, fieldCount+1)
	rows = append(rows, t.PanelTitle.Render("Customize your tweet"))

	for id := FieldID(0); id < fieldCount; id++ {
		label := t.FieldLabel.Render(id.Label())
		if id == m.focus {
			label = t.FieldLabelFocused.Render(id.Label())
		}

		var value string
		switch id.kind() {
		case kindText, kindPath:
			value = m.inputs[id].View()
		case kindArea:
			value = m.content.View()
		case kindChoice:
			value = m.choiceView(id, p)
		}

		row := lipgloss.JoinHorizontal(lipgloss.Top, label, value)
		if id.kind() == kindPath {
			row = lipgloss.JoinVertical(lipgloss.Left, row, m.attachmentLine(id, p))
		}
		rows = append(rows, row)
	}

	return strings.Join(rows, "\n")
}

func (m Model) choiceView(id FieldID, p post.Post) string {
	t := m.theme
	var parts []string
	switch id {
	case FieldBadge:
		for _, b := range badgeOptions {
			style := t.Button
			if b == p.VerificationBadge {
				style = t.ButtonActive
			}
			parts = append(parts, style.Render(badgeLabels[b]))
		}
	case FieldTimestampFormat:
		for _, f := range timestampOptions {
			style := t.Button
			if f == p.TimestampFormat {
				style = t.ButtonActive
			}
			parts = append(parts, style.Render(timestampLabels[f]))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) attachmentLine(id FieldID, p post.Post) string {
	t := m.theme
	indent := strings.Repeat(" ", t.FieldLabel.GetWidth())
	slot := id.slot()

	if path, ok := m.pending[slot]; ok {
		return indent + t.FieldHint.Render("reading "+path+"...")
	}
	if msg, ok := m.errs[slot]; ok {
		return indent + t.FieldError.Render(msg)
	}

	var ref *media.Reference
	var clearKey key.Binding
	if slot == media.SlotProfile {
		ref, clearKey = p.ProfileImage, m.keys.ClearProfile
	} else {
		ref, clearKey = p.Media, m.keys.ClearMedia
	}
	if ref == nil {
		return indent + t.FieldHint.Render("none attached")
	}
	return indent + t.FieldValue.Render(describe(ref)) + "  " +
		t.FieldHint.Render(clearKey.Help().Key+" to remove")
}

func describe(ref *media.Reference) string {
	s := fmt.Sprintf("%s, %s", ref.Name, humanSize(ref.Size))
	if ref.Width > 0 && ref.Height > 0 {
		s += fmt.Sprintf(", %dx%d", ref.Width, ref.Height)
	}
	return s
}

func humanSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	}
	return fmt.Sprintf("%d B", n)
}
