package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// sceneListModel is the bubbletea model for interactive demo scene selection.
type sceneListModel struct {
	scenes   []demoScene
	cursor   int
	selected *demoScene
}

// Init implements tea.Model.
func (m sceneListModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m sceneListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.scenes)-1 {
				m.cursor++
			}
		case "enter":
			m.selected = &m.scenes[m.cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m sceneListModel) View() string {
	var b strings.Builder
	b.WriteString(listDimStyle.Render("Select a demo scene (enter to render, q to quit)"))
	b.WriteString("\n\n")

	for i, s := range m.scenes {
		line := fmt.Sprintf("%s  %s", s.name, listDimStyle.Render(s.description))
		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render("› " + line))
		} else {
			b.WriteString(listNormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// pickDemoScene runs the interactive scene picker and returns the selection,
// or false if the user quit without choosing.
func pickDemoScene() (demoScene, bool, error) {
	model := sceneListModel{scenes: demoScenes}
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return demoScene{}, false, err
	}
	m, ok := final.(sceneListModel)
	if !ok || m.selected == nil {
		return demoScene{}, false, nil
	}
	return *m.selected, true, nil
}
