package picker

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/footprint-tools/clif/dispatch"
)

type item struct {
	name        string
	description string
}

func (i item) Title() string       { return i.name }
func (i item) Description() string { return i.description }
func (i item) FilterValue() string { return i.name }

type model struct {
	list   list.Model
	choice string
}

func newModel(title string, level *dispatch.SubCommands) model {
	var items []list.Item
	level.Range(func(name string, cmd *dispatch.Command) bool {
		items = append(items, item{name: name, description: cmd.Description})
		return true
	})

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)

	return model{list: l}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if it, ok := m.list.SelectedItem().(item); ok {
				m.choice = it.name
			}
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.list.View() }

// pick runs the interactive chooser and returns the selected command name,
// or "" when the user cancelled.
func pick(ctx *dispatch.Context) (string, error) {
	m := newModel("Choose a command", ctx.Resolution.Level)
	p := tea.NewProgram(m, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return "", err
	}
	if fm, ok := final.(model); ok {
		return fm.choice, nil
	}
	return "", nil
}
