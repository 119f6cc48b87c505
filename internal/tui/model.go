package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	mdwerror "github.com/msto63/asymptotix/foundation/core/error"
	"github.com/msto63/asymptotix/foundation/core/errors"
	mdwlog "github.com/msto63/asymptotix/foundation/core/log"
	"github.com/msto63/asymptotix/foundation/expr"
	"github.com/msto63/asymptotix/internal/store"
)

const (
	module = errors.ModuleTUI

	// header, spinner line, bordered input and footer
	chromeHeight = 7

	storeTimeout = 5 * time.Second
)

// Entry is one block of the transcript
type Entry struct {
	Input  string
	Output string
	Kind   string
	Err    bool
	System bool
}

// Options configures the calculator
type Options struct {
	// Store is optional; without it names resolve from the session only
	Store        store.Store
	Logger       *mdwlog.Logger
	LogTolerance float64
	SessionID    string
	// HistoryLimit bounds the stored inputs loaded for ↑/↓ recall
	HistoryLimit int
}

// Model is the calculator REPL
type Model struct {
	// State
	width   int
	height  int
	ready   bool
	loading bool

	// Components
	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model

	// Session
	entries  []Entry
	scope    *expr.Scope
	bindings map[string]string

	// Input recall
	history []string
	histPos int

	store        store.Store
	logger       *mdwlog.Logger
	logTolerance float64
	sessionID    string
	historyLimit int
}

// NewModel creates a new calculator model
func NewModel(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.SessionID == "" {
		opts.SessionID = uuid.New().String()
	}
	if opts.HistoryLimit <= 0 {
		opts.HistoryLimit = 100
	}

	ti := textinput.New()
	ti.Placeholder = "Ausdruck oder let name = ausdruck eingeben..."
	ti.Prompt = "ε> "
	ti.Focus()
	ti.CharLimit = expr.DefaultMaxInputLength
	ti.Width = 80

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	return Model{
		input:        ti,
		spinner:      sp,
		scope:        expr.NewScope(),
		bindings:     make(map[string]string),
		store:        opts.Store,
		logger:       opts.Logger.WithComponent(module).WithField("session", opts.SessionID),
		logTolerance: opts.LogTolerance,
		sessionID:    opts.SessionID,
		historyLimit: opts.HistoryLimit,
	}
}

// SessionID returns the id under which inputs are recorded
func (m Model) SessionID() string { return m.sessionID }

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		m.loadHistory(),
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			if m.loading {
				return m, nil
			}
			input := strings.TrimSpace(m.input.Value())
			if input == "" {
				return m, nil
			}
			m.input.Reset()
			m.pushHistory(input)
			return m.submit(input)

		case "up":
			m.recall(-1)
			return m, nil

		case "down":
			m.recall(1)
			return m, nil

		case "ctrl+l":
			m.entries = nil
			m.updateContent()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		if !m.ready {
			m.viewport = viewport.New(msg.Width, max(1, msg.Height-chromeHeight))
			m.viewport.YPosition = 2
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = max(1, msg.Height-chromeHeight)
		}
		m.input.Width = max(10, msg.Width-8)
		m.updateContent()

	case evalResultMsg:
		m.loading = false
		m.applyResult(msg)
		m.updateContent()

	case infoMsg:
		m.loading = false
		if msg.err != nil {
			m.entries = append(m.entries, Entry{Input: msg.input, Output: msg.err.Error(), Err: true})
		} else {
			m.system(msg.lines...)
		}
		m.updateContent()

	case historyLoadedMsg:
		if msg.err != nil {
			m.system("Verlauf nicht geladen: " + msg.err.Error())
		} else {
			m.history = append(msg.inputs, m.history...)
			m.histPos = len(m.history)
		}
		m.updateContent()

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	// Update components
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) submit(input string) (Model, tea.Cmd) {
	switch {
	case input == ":help" || input == "help":
		m.showHelp()
		m.updateContent()
		return m, nil

	case input == ":vars":
		m.showVars()
		m.updateContent()
		return m, nil

	case input == ":defs":
		return m.withStore(input, m.listDefinitions)

	case input == ":history":
		return m.withStore(input, m.listHistory)

	case strings.HasPrefix(input, ":save"):
		name := strings.TrimSpace(strings.TrimPrefix(input, ":save"))
		source, ok := m.bindings[name]
		if !ok {
			m.fail(input, errors.NotFound(module, "save", name))
			return m, nil
		}
		return m.withStore(input, func() tea.Cmd { return m.save(input, name, source) })

	case strings.HasPrefix(input, ":"):
		m.fail(input, errors.InvalidInput(module, "command", input, ":help, :vars, :defs, :history or :save name"))
		return m, nil
	}

	name, source, err := ParseLet(input)
	if err != nil {
		m.fail(input, err)
		return m, nil
	}
	m.loading = true
	return m, m.evaluate(input, name, source)
}

func (m Model) withStore(input string, next func() tea.Cmd) (Model, tea.Cmd) {
	if m.store == nil {
		m.fail(input, errors.NewErrorBuilder(module).
			Operation("store").
			Messagef("kein Speicher konfiguriert").
			Kind(mdwerror.CodeConfigError).
			Build())
		return m, nil
	}
	m.loading = true
	return m, next()
}

// ParseLet splits "let name = expr" into its parts. Input without the let
// keyword is returned unchanged as source with an empty name.
func ParseLet(input string) (name, source string, err error) {
	rest, ok := strings.CutPrefix(input, "let ")
	if !ok {
		return "", input, nil
	}
	name, source, ok = strings.Cut(rest, "=")
	name, source = strings.TrimSpace(name), strings.TrimSpace(source)
	if !ok || source == "" {
		return "", "", errors.InvalidInput(module, "let", input, "let name = expression")
	}
	if !expr.IsValidIdentifier(name) || expr.IsReserved(name) {
		return "", "", errors.InvalidInput(module, "let", name, "non-reserved identifier")
	}
	return name, source, nil
}

func (m *Model) applyResult(msg evalResultMsg) {
	if msg.err != nil {
		m.fail(msg.input, msg.err)
		return
	}
	out := msg.value.String()
	if msg.name != "" {
		if err := m.scope.Set(msg.name, msg.value); err != nil {
			m.fail(msg.input, err)
			return
		}
		m.bindings[msg.name] = msg.source
		out = msg.name + " = " + out
	}
	m.entries = append(m.entries, Entry{Input: msg.input, Output: out, Kind: msg.value.Kind().String()})
}

func (m *Model) fail(input string, err error) {
	m.entries = append(m.entries, Entry{Input: input, Output: err.Error(), Err: true})
	m.updateContent()
}

func (m *Model) system(lines ...string) {
	for _, l := range lines {
		m.entries = append(m.entries, Entry{Output: l, System: true})
	}
}

func (m *Model) pushHistory(input string) {
	if n := len(m.history); n == 0 || m.history[n-1] != input {
		m.history = append(m.history, input)
	}
	m.histPos = len(m.history)
}

func (m *Model) recall(step int) {
	if len(m.history) == 0 {
		return
	}
	pos := m.histPos + step
	switch {
	case pos < 0:
		pos = 0
	case pos >= len(m.history):
		m.histPos = len(m.history)
		m.input.Reset()
		return
	}
	m.histPos = pos
	m.input.SetValue(m.history[pos])
	m.input.CursorEnd()
}

func (m *Model) showHelp() {
	m.system(
		"Eingaben: Ausdruck, let name = ausdruck",
		"Befehle: :vars, :defs, :save name, :history, :help",
	)
	for _, name := range expr.Builtins() {
		doc, _ := expr.Describe(name)
		m.system("  " + doc)
	}
	m.system("Konstanten: " + strings.Join(expr.Constants(), ", "))
}

func (m *Model) showVars() {
	names := m.scope.Names()
	if len(names) == 0 {
		m.system("Keine Bindungen in dieser Sitzung.")
		return
	}
	for _, name := range names {
		v, _, _ := m.scope.Resolve(name)
		m.system(fmt.Sprintf("%s = %s", name, v))
	}
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Lade..."
	}

	var s strings.Builder

	// Header
	s.WriteString(m.renderHeader())
	s.WriteString("\n")

	// Transcript
	s.WriteString(m.viewport.View())
	s.WriteString("\n")

	if m.loading {
		s.WriteString(m.spinner.View())
		s.WriteString(" Berechne...")
	}
	s.WriteString("\n")

	s.WriteString(FocusedInputStyle.Render(m.input.View()))
	s.WriteString("\n")
	s.WriteString(m.renderFooter())

	return s.String()
}

func (m *Model) renderHeader() string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		TitleStyle.Render("asymptotix"),
		SubtitleStyle.Render("  A·ε^α + B·ε^β"),
	)
}

func (m *Model) renderFooter() string {
	help := "Enter: Auswerten • ↑/↓: Verlauf • Ctrl+L: Leeren • Ctrl+C: Beenden"
	session := fmt.Sprintf("Sitzung: %.8s • Bindungen: %d", m.sessionID, len(m.bindings))

	return StatusBarStyle.Width(m.width).Render(
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			help,
			strings.Repeat(" ", max(0, m.width-lipgloss.Width(help)-lipgloss.Width(session)-4)),
			session,
		),
	)
}

func (m *Model) updateContent() {
	var content strings.Builder

	for _, e := range m.entries {
		switch {
		case e.System:
			content.WriteString(SystemMessageStyle.Render(e.Output))
			content.WriteString("\n")
			continue
		case e.Err:
			content.WriteString(PromptStyle.Render("ε> "))
			content.WriteString(e.Input)
			content.WriteString("\n")
			content.WriteString(RenderError(e.Output))
		default:
			content.WriteString(PromptStyle.Render("ε> "))
			content.WriteString(e.Input)
			content.WriteString("\n")
			content.WriteString(RenderResult(e.Kind, e.Output))
		}
		content.WriteString("\n\n")
	}

	m.viewport.SetContent(content.String())
	m.viewport.GotoBottom()
}

// Message types for async operations
type evalResultMsg struct {
	input  string
	name   string
	source string
	value  expr.Value
	err    error
}

type infoMsg struct {
	input string
	lines []string
	err   error
}

type historyLoadedMsg struct {
	inputs []string
	err    error
}
