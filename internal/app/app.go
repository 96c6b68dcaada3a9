package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/querydrill/internal/catalog"
	"github.com/abhisek/querydrill/internal/highlight"
	"github.com/abhisek/querydrill/internal/router"
	"github.com/abhisek/querydrill/internal/screen"
	"github.com/abhisek/querydrill/internal/screens/home"
	"github.com/abhisek/querydrill/internal/ui/layout"
)

// Options carries the wiring for the TUI.
type Options struct {
	Index    *catalog.Index
	Progress highlight.Progress
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router    *router.Router
	width     int
	height    int
	solved    int
	attempted int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	solved, attempted := tally(opts.Index, opts.Progress)
	return AppModel{
		router:    router.New(home.New(opts.Index, opts.Progress)),
		solved:    solved,
		attempted: attempted,
	}
}

// tally counts solved and attempted exercises for the header.
func tally(ix *catalog.Index, prog highlight.Progress) (solved, attempted int) {
	for _, ex := range ix.Exercises() {
		switch highlight.ClassifyExercise(ex, prog) {
		case highlight.StatusCorrect:
			solved++
		case highlight.StatusAttempted:
			attempted++
		}
	}
	return solved, attempted
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.solved, m.attempted, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
