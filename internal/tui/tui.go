package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/sirupsen/logrus"
	"github.com/tatianab/zuul/internal/engine"
	"github.com/tatianab/zuul/internal/models"
	"github.com/tatianab/zuul/internal/parser"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type sessionState int

const (
	statePlaying sessionState = iota
	stateOver
)

type model struct {
	state     sessionState
	engine    *engine.Engine
	log       logrus.FieldLogger
	textInput textinput.Model
	viewport  viewport.Model
	gameLog   string
	width     int
	height    int
	remaining time.Duration
}

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	rejectStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D7875F"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	titleCaser = cases.Title(language.English)
)

func NewModel(eng *engine.Engine, log logrus.FieldLogger) model {
	ti := textinput.New()
	ti.Placeholder = "What do you do?"
	ti.Focus()
	ti.CharLimit = 156
	ti.Width = 40

	return model{
		state:     statePlaying,
		engine:    eng,
		log:       log,
		textInput: ti,
		gameLog:   eng.Welcome() + "\n\n",
		remaining: eng.Session().Remaining(),
	}
}

type sessionEndedMsg struct{}

type tickMsg time.Time

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForEnd(m.engine), tick())
}

// waitForEnd blocks until the session is over, however it ends, and reports
// it to the program. It only reads the Done channel, so the engine itself is
// never touched outside Update.
func waitForEnd(eng *engine.Engine) tea.Cmd {
	return func() tea.Msg {
		<-eng.Done()
		return sessionEndedMsg{}
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == stateOver {
			return m, tea.Quit
		}
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.engine.Close()
			return m, tea.Quit

		case tea.KeyEnter:
			action := m.textInput.Value()
			if action == "" {
				return m, nil
			}
			m.textInput.Reset()
			m.playTurn(action)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = m.logWidth()
		m.viewport.Height = msg.Height - 6
		m.refreshLog()

	case tickMsg:
		m.remaining = m.engine.Session().Remaining()
		if m.state == statePlaying {
			return m, tick()
		}
		return m, nil

	case sessionEndedMsg:
		if m.state == statePlaying {
			// The deadline passed while the player was typing.
			m.log.Info("session ended while waiting for input")
			m.gameLog += gameStyle.Render(m.engine.EndMessage()) + "\n\n"
			m.finish()
		}
		return m, nil
	}

	if m.state == statePlaying {
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *model) playTurn(action string) {
	m.gameLog += userStyle.Render("> "+action) + "\n\n"

	res := m.engine.ProcessTurn(parser.Parse(action))
	style := gameStyle
	if res.Err != nil {
		style = rejectStyle
	}
	m.gameLog += style.Render(res.Output) + "\n\n"

	if res.Ended {
		m.finish()
		return
	}
	m.refreshLog()
}

func (m *model) finish() {
	m.state = stateOver
	m.remaining = m.engine.Session().Remaining()
	m.textInput.Blur()
	m.refreshLog()
}

func (m *model) refreshLog() {
	if m.viewport.Width == 0 {
		return
	}
	m.viewport.SetContent(wordwrap.String(m.gameLog, m.viewport.Width))
	m.viewport.GotoBottom()
}

func (m model) logWidth() int {
	return int(float64(m.width) * 0.75)
}

func (m model) View() string {
	if m.viewport.Width == 0 {
		return "\n  Loading...\n"
	}

	mainView := lipgloss.JoinHorizontal(lipgloss.Top,
		m.viewport.View(),
		m.renderState(),
	)

	var footer string
	switch m.state {
	case statePlaying:
		footer = lipgloss.JoinVertical(lipgloss.Left,
			"\n"+m.textInput.View(),
			"\n"+helpStyle.Render("Type 'help' for commands. Esc quits."),
		)
	case stateOver:
		footer = "\n" + helpStyle.Render("The game is over. Press any key to exit.")
	}

	return "\n" + lipgloss.JoinVertical(lipgloss.Left, mainView, footer) + "\n"
}

func (m model) renderState() string {
	room := m.engine.CurrentRoom()

	location := titleStyle.Render("LOCATION") + "\n" + roomTitle(room.ID) + "\n\n"

	timeLeft := titleStyle.Render("TIME LEFT") + "\n" + formatRemaining(m.remaining) + "\n\n"

	trapDoor := "closed"
	if room.TrapDoor().IsOpen() {
		trapDoor = "open"
	}
	fixtures := titleStyle.Render("TRAP DOOR") + "\n" + trapDoor + "\n\n"

	inventory := titleStyle.Render("INVENTORY") + "\n"
	items := m.engine.Inventory()
	if len(items) == 0 {
		inventory += "(empty)"
	}
	for _, item := range items {
		inventory += "- " + item.Name + "\n"
	}

	content := location + timeLeft + fixtures + inventory

	stateWidth := int(float64(m.width) * 0.23) // Leave some room for padding
	return stateStyle.Width(stateWidth).Height(m.viewport.Height).Render(content)
}

// roomTitle turns a room ID like "main_building" into "Main Building".
func roomTitle(id models.RoomID) string {
	return titleCaser.String(strings.ReplaceAll(string(id), "_", " "))
}

func formatRemaining(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

func Run(eng *engine.Engine, log logrus.FieldLogger) error {
	p := tea.NewProgram(NewModel(eng, log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
