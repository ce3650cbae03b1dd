// Package tui is the interactive walkthrough: topic menu, example menu,
// scroll-revealed steps, and the AI explanation prompt.
package tui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sqlviz/internal/catalog"
	"github.com/san-kum/sqlviz/internal/config"
	"github.com/san-kum/sqlviz/internal/explain"
	"github.com/san-kum/sqlviz/internal/markup"
	"github.com/san-kum/sqlviz/internal/playback"
	"github.com/san-kum/sqlviz/internal/render"
	"github.com/san-kum/sqlviz/internal/storage"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

type state int

const (
	stateTopics state = iota
	stateExamples
	stateSteps
	stateExplain
)

type model struct {
	state state
	cat   catalog.Catalog
	cfg   *config.Config

	cursor   int
	exCursor int
	topic    catalog.Topic
	example  catalog.Example

	engine   *playback.Engine
	viewport *playback.Viewport
	rendered []string
	scroll   int
	total    int

	input   string
	waiting bool
	answer  string
	errText string
	savedID string
	client  *explain.Client
	store   *storage.Store

	width  int
	height int
}

// explainMsg carries the result of one explanation request back into the
// event loop.
type explainMsg struct {
	text string
	err  error
}

func New(cat catalog.Catalog, cfg *config.Config) *model {
	return &model{
		cat:    cat,
		cfg:    cfg,
		engine: playback.NewEngine(),
		client: explain.New(cfg.Service.URL, cfg.Service.APIKey, time.Duration(cfg.Service.TimeoutSeconds)*time.Second),
		store:  storage.New(cfg.DataDir),
		width:  80,
		height: 24,
	}
}

// Run starts the interactive program.
func Run(cat catalog.Catalog, cfg *config.Config) error {
	p := tea.NewProgram(New(cat, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.state == stateSteps {
			m.layoutSteps()
		}
		return m, nil
	case explainMsg:
		m.waiting = false
		if msg.err != nil {
			m.errText = msg.err.Error()
			m.answer = ""
			return m, nil
		}
		m.errText = ""
		m.answer = markup.RenderTerminal(markup.FormatAIResponse(msg.text), m.contentWidth())
		if m.store.Init() == nil {
			if id, err := m.store.Save(m.input, msg.text); err == nil {
				m.savedID = id
			}
		}
		return m, nil
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateTopics:
		return m.topicsKey(msg)
	case stateExamples:
		return m.examplesKey(msg)
	case stateSteps:
		return m.stepsKey(msg)
	case stateExplain:
		return m.explainKey(msg)
	}
	return m, nil
}

func (m *model) topicsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.cat)-1 {
			m.cursor++
		}
	case "e":
		m.enterExplain()
	case "enter", " ":
		m.topic = m.cat[m.cursor]
		m.exCursor = 0 // topic change resets example selection
		m.state = stateExamples
	}
	return m, nil
}

func (m *model) examplesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.state = stateTopics
	case "up", "k":
		if m.exCursor > 0 {
			m.exCursor--
		}
	case "down", "j":
		if m.exCursor < len(m.topic.Examples)-1 {
			m.exCursor++
		}
	case "enter", " ":
		m.example = m.topic.Examples[m.exCursor]
		m.startSteps()
		return m, tea.ClearScreen
	}
	return m, nil
}

func (m *model) stepsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.engine.Stop()
		m.state = stateExamples
		return m, tea.ClearScreen
	case "e":
		m.enterExplain()
	case "up", "k":
		m.scrollTo(m.scroll - 1)
	case "down", "j":
		m.scrollTo(m.scroll + 1)
	case "pgup":
		m.scrollTo(m.scroll - m.viewHeight())
	case "pgdown", " ":
		m.scrollTo(m.scroll + m.viewHeight())
	case "g":
		m.scrollTo(0)
	case "G":
		m.scrollTo(m.total)
	}
	return m, nil
}

func (m *model) explainKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.state = stateTopics
		return m, tea.ClearScreen
	case "enter":
		if m.waiting {
			return m, nil
		}
		query := m.input
		m.waiting = true
		m.answer = ""
		m.errText = ""
		m.savedID = ""
		return m, func() tea.Msg {
			text, err := m.client.Explain(context.Background(), query)
			return explainMsg{text: text, err: err}
		}
	case "backspace":
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	default:
		if msg.Type == tea.KeyRunes {
			m.input += string(msg.Runes)
		} else if msg.Type == tea.KeySpace {
			m.input += " "
		}
	}
	return m, nil
}

func (m *model) enterExplain() {
	m.state = stateExplain
	m.input = ""
	m.answer = ""
	m.errText = ""
	m.savedID = ""
}

// startSteps renders the selected example and rewires playback: the old
// watcher is detached, the revealed set cleared, a fresh viewport attached.
func (m *model) startSteps() {
	m.state = stateSteps
	m.scroll = 0
	m.viewport = playback.NewViewport(m.cfg.RevealThreshold)
	m.layoutSteps()
	m.engine.Watch(m.viewport, len(m.example.Steps))
	m.viewport.SetViewport(m.scroll, m.viewHeight())
}

// layoutSteps renders every step at the current width and hands the line
// extents to the viewport notifier.
func (m *model) layoutSteps() {
	m.rendered = make([]string, len(m.example.Steps))
	bounds := make([]playback.Bounds, len(m.example.Steps))
	top := 0
	for i, step := range m.example.Steps {
		content := render.Step(i, step, m.contentWidth())
		m.rendered[i] = content
		h := strings.Count(content, "\n") + 3 // split lines plus gap between steps
		bounds[i] = playback.Bounds{Top: top, Height: h}
		top += h
	}
	m.total = top
	if m.viewport != nil {
		m.viewport.SetBounds(bounds)
		m.viewport.SetViewport(m.scroll, m.viewHeight())
	}
}

func (m *model) scrollTo(line int) {
	max := m.total - m.viewHeight()
	if max < 0 {
		max = 0
	}
	if line < 0 {
		line = 0
	}
	if line > max {
		line = max
	}
	m.scroll = line
	if m.viewport != nil {
		m.viewport.SetViewport(m.scroll, m.viewHeight())
	}
}

func (m *model) viewHeight() int {
	h := m.height - 4 // header and footer rows
	if h < 5 {
		h = 5
	}
	return h
}

func (m *model) contentWidth() int {
	w := m.width - 6
	if w < 40 {
		w = 40
	}
	return w
}
