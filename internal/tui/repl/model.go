// ============================================================================
// numerical - Numerische Größen und Operator-Protokolle
// ============================================================================
//
// Package:     repl
// Description: Bubbletea model for the interactive expression REPL
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package repl

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	numlog "github.com/msto63/numerical/foundation/core/log"
	"github.com/msto63/numerical/foundation/quantities"
	"github.com/msto63/numerical/internal/calc"
)

// Kinds the REPL cycles through for number literals
var literalKinds = []quantities.Kind{quantities.KindReal, quantities.KindValue, quantities.KindDecimal}

// Config holds REPL configuration
type Config struct {
	Kind         quantities.Kind // wrapper for number literals
	Repr         bool            // show constructor form instead of payload text
	SettingsFile string          // history file, no persistence if empty
	Logger       *numlog.Logger
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Kind:         quantities.KindReal,
		SettingsFile: DefaultSettingsFile(),
	}
}

// Model is the Bubbletea model of the REPL
type Model struct {
	// State
	width  int
	height int
	ready  bool

	// Components
	input    textinput.Model
	viewport viewport.Model

	// Evaluation
	evaluator *calc.Evaluator
	kind      quantities.Kind
	repr      bool
	entries   []Entry
	logger    *numlog.Logger

	// Input history
	inputHistory []string
	historyIndex int    // -1 = neue Eingabe
	currentInput string // Zwischenspeicher beim Navigieren

	settingsFile string
}

// New creates a new REPL model
func New(cfg Config) Model {
	ti := textinput.New()
	ti.Placeholder = "Ausdruck eingeben, z.B. [2.1, 3.4] + [21, 34]"
	ti.Prompt = "» "
	ti.CharLimit = 2000
	ti.Width = 80
	ti.Focus()

	logger := cfg.Logger
	if logger == nil {
		logger = numlog.GetDefault()
	}
	logger = logger.WithField("component", "repl")

	kind := cfg.Kind
	if kind == "" {
		kind = quantities.KindReal
	}

	var history []string
	if cfg.SettingsFile != "" {
		if settings, err := LoadSettings(cfg.SettingsFile); err == nil {
			history = settings.InputHistory
		}
	}

	return Model{
		input:        ti,
		evaluator:    calc.New(calc.Config{Kind: kind, Logger: logger}),
		kind:         kind,
		repr:         cfg.Repr,
		logger:       logger,
		inputHistory: history,
		historyIndex: -1,
		settingsFile: cfg.SettingsFile,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 3
		footerHeight := 6
		viewportHeight := max(msg.Height-headerHeight-footerHeight, 1)

		if !m.ready {
			m.viewport = viewport.New(msg.Width-2, viewportHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 2
			m.viewport.Height = viewportHeight
		}
		m.input.Width = max(msg.Width-8, 10)
		m.updateViewportContent()

	case evalResultMsg:
		m.entries = append(m.entries, msg.entry)
		if msg.entry.Err != nil {
			m.logger.Debug("evaluation failed", numlog.Fields{
				"input": msg.entry.Input,
				"error": msg.entry.Err.Error(),
			})
		}
		m.updateViewportContent()
		m.viewport.GotoBottom()

	case historySavedMsg:
		if msg.err != nil {
			m.logger.Debug("history not saved", numlog.Fields{"error": msg.err.Error()})
		}
	}

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	if m.ready {
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyCtrlL:
		m.entries = nil
		m.updateViewportContent()
		return m, nil

	case tea.KeyCtrlK:
		m.cycleKind()
		return m, nil

	case tea.KeyCtrlR:
		m.repr = !m.repr
		return m, nil

	case tea.KeyUp:
		if len(m.inputHistory) == 0 {
			return m, nil
		}
		if m.historyIndex == -1 {
			m.currentInput = m.input.Value()
			m.historyIndex = len(m.inputHistory) - 1
		} else if m.historyIndex > 0 {
			m.historyIndex--
		}
		m.input.SetValue(m.inputHistory[m.historyIndex])
		m.input.CursorEnd()
		return m, nil

	case tea.KeyDown:
		if m.historyIndex == -1 {
			return m, nil
		}
		if m.historyIndex < len(m.inputHistory)-1 {
			m.historyIndex++
			m.input.SetValue(m.inputHistory[m.historyIndex])
		} else {
			m.historyIndex = -1
			m.input.SetValue(m.currentInput)
		}
		m.input.CursorEnd()
		return m, nil

	case tea.KeyEnter:
		input := strings.TrimSpace(m.input.Value())
		if input == "" {
			return m, nil
		}
		if input == "exit" || input == "quit" {
			return m, tea.Quit
		}

		m.input.Reset()
		m.historyIndex = -1
		m.currentInput = ""
		if n := len(m.inputHistory); n == 0 || m.inputHistory[n-1] != input {
			m.inputHistory = append(m.inputHistory, input)
		}
		return m, tea.Batch(m.evaluate(input), m.saveHistory())
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// cycleKind switches the wrapper for number literals
func (m *Model) cycleKind() {
	next := literalKinds[0]
	for i, k := range literalKinds {
		if k == m.kind {
			next = literalKinds[(i+1)%len(literalKinds)]
			break
		}
	}
	m.kind = next
	m.evaluator = calc.New(calc.Config{Kind: next, Logger: m.logger})
}

// evaluate runs the expression off the update loop
func (m Model) evaluate(input string) tea.Cmd {
	evaluator := m.evaluator
	repr := m.repr
	return func() tea.Msg {
		start := time.Now()
		result, err := evaluator.Eval(input)
		entry := Entry{
			Input:     input,
			Err:       err,
			Timestamp: start,
			Duration:  time.Since(start),
		}
		if err == nil {
			entry.Output = calc.Format(result, repr)
			entry.Type = calc.TypeLabel(result)
		}
		return evalResultMsg{entry: entry}
	}
}

// saveHistory persists the input history
func (m Model) saveHistory() tea.Cmd {
	if m.settingsFile == "" {
		return nil
	}
	path := m.settingsFile
	history := append([]string(nil), m.inputHistory...)
	kind := string(m.kind)
	return func() tea.Msg {
		settings, err := LoadSettings(path)
		if err != nil {
			settings = &Settings{}
		}
		settings.InputHistory = history
		settings.LastKind = kind
		return historySavedMsg{err: SaveSettings(path, settings)}
	}
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Lade REPL..."
	}

	var b strings.Builder
	b.WriteString(LogoStyle.Render(Logo) + "  " + SubHeaderStyle.Render("Operatoren: + - * / // % ** == != < <= > >= in"))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(InputStyle.Width(max(m.width-4, 10)).Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())
	return b.String()
}

func (m Model) renderStatusBar() string {
	repr := "aus"
	if m.repr {
		repr = "an"
	}
	status := fmt.Sprintf("Literale: %s  Repr: %s  Einträge: %d",
		StatusValueStyle.Render(string(m.kind)),
		StatusValueStyle.Render(repr),
		len(m.entries))
	return StatusBarStyle.Width(max(m.width, 10)).Render(status)
}

func (m Model) renderHelpBar() string {
	hints := []string{
		RenderKeyHint("Enter", "auswerten"),
		RenderKeyHint("↑/↓", "Historie"),
		RenderKeyHint("Ctrl+K", "Literal-Typ"),
		RenderKeyHint("Ctrl+R", "Repr"),
		RenderKeyHint("Ctrl+L", "leeren"),
		RenderKeyHint("Esc", "beenden"),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(hints, "  "))
}

// updateViewportContent renders the transcript into the viewport
func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}

	var content strings.Builder
	for _, e := range m.entries {
		content.WriteString(PromptStyle.Render("» ") + InputEchoStyle.Render(e.Input))
		content.WriteString("  " + HelpDescStyle.Render(e.Timestamp.Format("15:04:05")))
		content.WriteString("\n")
		if e.Err != nil {
			content.WriteString(ErrorStyle.Render("Fehler: " + e.Err.Error()))
		} else {
			content.WriteString(ResultStyle.Render(e.Output) + "  " + TypeBadgeStyle.Render(e.Type))
		}
		content.WriteString("\n\n")
	}
	m.viewport.SetContent(content.String())
}

// Entries returns the evaluated lines
func (m Model) Entries() []Entry {
	return append([]Entry(nil), m.entries...)
}

// Run starts the REPL TUI
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
