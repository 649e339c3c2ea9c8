// Package tui is the terminal front end of the sum form. All state changes
// happen synchronously inside Update.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/sumform/internal/form"
	"github.com/jask/sumform/internal/numfmt"
)

// Labels are the user-visible strings of the form.
type Labels struct {
	Title       string
	Subtitle    string
	Placeholder string
	ResultLabel string
	AddButton   string
	CalcButton  string
}

// DefaultLabels returns the built-in English strings.
func DefaultLabels() Labels {
	return Labels{
		Title:       "Sum Calculator",
		Subtitle:    "Enter numbers to add them up",
		Placeholder: "Enter a number...",
		ResultLabel: "Total",
		AddButton:   "Add number",
		CalcButton:  "Calculate",
	}
}

// Options configure a Model. Zero fields fall back to defaults.
type Options struct {
	Form      *form.Form
	Formatter *numfmt.Formatter
	Keys      *KeyRegistry
	Labels    Labels
	Logger    *zap.Logger
	// HelpStyle is a glamour standard style name ("dark", "light", "ascii", ...).
	HelpStyle string
}

const (
	statusLastEntry = "the last number cannot be removed"
	statusNoRow     = "move to a number to remove it"
)

type focusKind int

const (
	focusRow focusKind = iota
	focusAdd
	focusCalculate
)

// Model is the bubbletea model for one form instance.
type Model struct {
	form      *form.Form
	formatter *numfmt.Formatter
	keys      *KeyRegistry
	labels    Labels
	log       *zap.Logger
	helpStyle string

	inputs   map[form.EntryID]textinput.Model
	focus    int
	showHelp bool
	help     help.Model
	status   string
	width    int
}

func New(opts Options) *Model {
	if opts.Form == nil {
		opts.Form = form.New()
	}
	if opts.Formatter == nil {
		opts.Formatter = numfmt.MustNew(numfmt.DefaultLocale)
	}
	if opts.Keys == nil {
		opts.Keys = NewKeyRegistry()
	}
	opts.Labels = mergeLabels(opts.Labels, DefaultLabels())
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.HelpStyle == "" {
		opts.HelpStyle = "dark"
	}

	m := &Model{
		form:      opts.Form,
		formatter: opts.Formatter,
		keys:      opts.Keys,
		labels:    opts.Labels,
		log:       opts.Logger.With(zap.String("form", opts.Form.InstanceID())),
		helpStyle: opts.HelpStyle,
		inputs:    make(map[form.EntryID]textinput.Model, opts.Form.Len()),
		help:      help.New(),
	}
	for _, e := range m.form.Entries() {
		m.inputs[e.ID] = m.newInput(e.Value)
	}
	m.applyFocus()
	return m
}

func mergeLabels(l, def Labels) Labels {
	pick := func(v, d string) string {
		if v == "" {
			return d
		}
		return v
	}
	return Labels{
		Title:       pick(l.Title, def.Title),
		Subtitle:    pick(l.Subtitle, def.Subtitle),
		Placeholder: pick(l.Placeholder, def.Placeholder),
		ResultLabel: pick(l.ResultLabel, def.ResultLabel),
		AddButton:   pick(l.AddButton, def.AddButton),
		CalcButton:  pick(l.CalcButton, def.CalcButton),
	}
}

func (m *Model) newInput(value string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = m.labels.Placeholder
	ti.Prompt = ""
	// entries are raw text of any length
	ti.CharLimit = 0
	ti.Width = 24
	ti.SetValue(value)
	return ti
}

// Form exposes the underlying state, mostly for tests and the caller that
// wants the final total after the program exits.
func (m *Model) Form() *form.Form { return m.form }

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, m.updateFocusedInput(msg)
}

func (m *Model) scope() string {
	if m.showHelp {
		return scopeHelp
	}
	return scopeForm
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if b := m.keys.Lookup(msg.String(), m.scope()); b != nil {
		return m.dispatch(b.Action)
	}
	if m.showHelp {
		return nil
	}
	return m.updateFocusedInput(msg)
}

func (m *Model) dispatch(action Action) tea.Cmd {
	switch action {
	case actionQuit:
		m.log.Debug("quit")
		return tea.Quit
	case actionHelp:
		m.showHelp = !m.showHelp
	case actionClose:
		m.showHelp = false
	case actionNext:
		return m.moveFocus(1)
	case actionPrev:
		return m.moveFocus(-1)
	case actionAdd:
		return m.addEntry()
	case actionRemove:
		return m.removeFocused()
	case actionCalculate:
		m.calculate()
	case actionActivate:
		switch kind, _ := m.focusTarget(); kind {
		case focusRow:
			return m.moveFocus(1)
		case focusAdd:
			return m.addEntry()
		case focusCalculate:
			m.calculate()
		}
	}
	return nil
}

// focusTarget maps the focus index onto rows followed by the add and
// calculate controls.
func (m *Model) focusTarget() (focusKind, int) {
	n := m.form.Len()
	switch {
	case m.focus < n:
		return focusRow, m.focus
	case m.focus == n:
		return focusAdd, -1
	default:
		return focusCalculate, -1
	}
}

func (m *Model) focusCount() int { return m.form.Len() + 2 }

func (m *Model) moveFocus(delta int) tea.Cmd {
	count := m.focusCount()
	m.focus = ((m.focus+delta)%count + count) % count
	return m.applyFocus()
}

func (m *Model) applyFocus() tea.Cmd {
	if m.focus >= m.focusCount() {
		m.focus = m.focusCount() - 1
	}
	var cmd tea.Cmd
	for i, e := range m.form.Entries() {
		ti := m.inputs[e.ID]
		if i == m.focus {
			cmd = ti.Focus()
		} else {
			ti.Blur()
		}
		m.inputs[e.ID] = ti
	}
	return cmd
}

func (m *Model) addEntry() tea.Cmd {
	e := m.form.Add()
	m.inputs[e.ID] = m.newInput("")
	m.status = ""
	m.focus = m.form.Len() - 1
	return m.applyFocus()
}

func (m *Model) removeFocused() tea.Cmd {
	kind, idx := m.focusTarget()
	if kind != focusRow {
		m.status = statusNoRow
		return nil
	}
	if !m.form.CanRemove() {
		m.status = statusLastEntry
		return nil
	}
	id := m.form.Entries()[idx].ID
	if !m.form.Remove(id) {
		return nil
	}
	delete(m.inputs, id)
	m.status = ""
	if m.focus >= m.form.Len() {
		m.focus = m.form.Len() - 1
	}
	return m.applyFocus()
}

func (m *Model) calculate() {
	m.form.Calculate()
	m.status = ""
}

// updateFocusedInput forwards msg to the focused row's input and pushes the
// new text into the form only when it actually changed.
func (m *Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	kind, idx := m.focusTarget()
	if kind != focusRow {
		return nil
	}
	id := m.form.Entries()[idx].ID
	ti := m.inputs[id]
	before := ti.Value()
	ti, cmd := ti.Update(msg)
	m.inputs[id] = ti
	if after := ti.Value(); after != before {
		m.form.UpdateValue(id, after)
		m.status = ""
	}
	return cmd
}
