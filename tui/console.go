// Package tui is the operator's console for a running rig.
package tui

import (
	"context"
	"fmt"
	"github.com/jt05610/mocktails"
	"github.com/jt05610/mocktails/pour"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Bar is what the console drives. *rig.Rig satisfies it.
type Bar interface {
	MakeDrink(ctx context.Context, name string) (*pour.Plan, error)
	PrimeStart(bottle int) error
	PrimeEnd() (int, bool)
	Menu() mocktails.Menu
}

const (
	hotPink  = lipgloss.Color("#FF06B7")
	darkGray = lipgloss.Color("#767676")
	red      = lipgloss.Color("#FF5F5F")
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(hotPink).Bold(true)
	helpStyle  = lipgloss.NewStyle().Foreground(darkGray)
	errStyle   = lipgloss.NewStyle().Foreground(red)
	docStyle   = lipgloss.NewStyle().Padding(1, 2, 1, 2)
)

const help = "make <drink> | prime <bottle> | stop | menu | quit"

// maxLines is how much history the console keeps on screen.
const maxLines = 12

type drinkDone struct {
	plan *pour.Plan
}

type Model struct {
	ctx   context.Context
	bar   Bar
	input textinput.Model
	lines []string
}

func New(ctx context.Context, bar Bar) *Model {
	input := textinput.New()
	input.Placeholder = "make SUNSET_COOLER"
	input.Focus()
	input.CharLimit = 64
	input.Width = 40
	input.Prompt = "> "
	return &Model{
		ctx:   ctx,
		bar:   bar,
		input: input,
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.bar.PrimeEnd()
			return m, tea.Quit
		case tea.KeyEnter:
			line := m.input.Value()
			m.input.SetValue("")
			out, cmd := m.Exec(line)
			if out != "" {
				m.println(out)
			}
			return m, cmd
		}
	case drinkDone:
		m.println(fmt.Sprintf("%s is ready", msg.plan.Recipe))
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) println(s string) {
	m.lines = append(m.lines, s)
	if len(m.lines) > maxLines {
		m.lines = m.lines[len(m.lines)-maxLines:]
	}
}

// Lines is the console history, oldest first.
func (m *Model) Lines() []string {
	return m.lines
}

func waitFor(plan *pour.Plan) tea.Cmd {
	return func() tea.Msg {
		<-plan.Done()
		return drinkDone{plan: plan}
	}
}

// Exec runs one console line. It returns the text to show and a command for the program to run.
func (m *Model) Exec(line string) (string, tea.Cmd) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	switch strings.ToLower(fields[0]) {
	case "make", "m":
		if len(fields) != 2 {
			return errStyle.Render("usage: make <drink>"), nil
		}
		plan, err := m.bar.MakeDrink(m.ctx, strings.ToUpper(fields[1]))
		if err != nil {
			return errStyle.Render(err.Error()), nil
		}
		return fmt.Sprintf("%s will take %ds", plan.Recipe, plan.DrinkDuration), waitFor(plan)
	case "prime", "p":
		if len(fields) != 2 {
			return errStyle.Render("usage: prime <bottle>"), nil
		}
		bottle, err := strconv.Atoi(fields[1])
		if err != nil {
			return errStyle.Render(fmt.Sprintf("bad bottle %q", fields[1])), nil
		}
		if err := m.bar.PrimeStart(bottle); err != nil {
			return errStyle.Render(err.Error()), nil
		}
		return fmt.Sprintf("priming bottle %d, enter stop when done", bottle), nil
	case "stop", "s":
		bottle, ok := m.bar.PrimeEnd()
		if !ok {
			return "nothing priming", nil
		}
		return fmt.Sprintf("stopped priming bottle %d", bottle), nil
	case "menu":
		return strings.Join(m.bar.Menu().Names(), "\n"), nil
	case "quit", "q", "exit":
		m.bar.PrimeEnd()
		return "", tea.Quit
	case "help", "?":
		return help, nil
	}
	return errStyle.Render(fmt.Sprintf("unknown command %q", fields[0])), nil
}

func (m *Model) View() string {
	bld := &strings.Builder{}
	bld.WriteString(titleStyle.Render("mocktails") + "\n\n")
	for _, l := range m.lines {
		bld.WriteString(l + "\n")
	}
	bld.WriteString("\n" + m.input.View() + "\n")
	bld.WriteString(helpStyle.Render(help))
	return docStyle.Render(bld.String())
}
