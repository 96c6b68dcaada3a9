// Package home is the entry menu.
package home

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/querydrill/internal/catalog"
	"github.com/abhisek/querydrill/internal/highlight"
	"github.com/abhisek/querydrill/internal/router"
	"github.com/abhisek/querydrill/internal/screen"
	"github.com/abhisek/querydrill/internal/screens/browse"
	"github.com/abhisek/querydrill/internal/screens/stats"
	"github.com/abhisek/querydrill/internal/ui/components"
	"github.com/abhisek/querydrill/internal/ui/theme"
)

// HomeScreen is the main entry screen of the application.
type HomeScreen struct {
	ix   *catalog.Index
	prog highlight.Progress
	menu components.Picker
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a home screen over the catalog and progress sets.
func New(ix *catalog.Index, prog highlight.Progress) *HomeScreen {
	menu := components.NewPicker("", []components.PickerItem{
		{Label: "BROWSE EXERCISES"},
		{Label: "PROGRESS OVERVIEW"},
		{Label: "QUIT"},
	})
	return &HomeScreen{ix: ix, prog: prog, menu: menu}
}

func (s *HomeScreen) Init() tea.Cmd {
	return nil
}

func (s *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		s.menu.Move(-1)
	case "down", "j":
		s.menu.Move(1)
	case "enter":
		switch s.menu.Cursor {
		case 0:
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: browse.New(s.ix, s.prog)}
			}
		case 1:
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(s.ix, s.prog)}
			}
		case 2:
			return s, tea.Quit
		}
	}
	return s, nil
}

func (s *HomeScreen) View(width, height int) string {
	banner := theme.Title.Render("QueryDrill") + "\n" +
		theme.Subtitle.Render("SQL practice exercises") + "\n"

	return lipgloss.JoinVertical(lipgloss.Left,
		banner,
		"",
		s.menu.View(true),
	)
}

func (s *HomeScreen) Title() string {
	return "Home"
}
