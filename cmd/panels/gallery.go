package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/grindlemire/go-panels"
	"github.com/grindlemire/go-panels/internal/canvas"
	"github.com/grindlemire/go-panels/internal/gallery"
	"github.com/grindlemire/go-panels/internal/scene"
	"github.com/spf13/cobra"
)

func newGalleryCmd() *cobra.Command {
	var seed int64
	cmd := &cobra.Command{
		Use:   "gallery [scene...]",
		Short: "Browse the sample scenes and scene files interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(cmd.OutOrStdout()) {
				return errors.New("gallery needs an interactive terminal")
			}

			files := make([]*scene.Scene, 0, len(args))
			for _, path := range args {
				s, err := scene.Load(path)
				if err != nil {
					return err
				}
				files = append(files, s)
			}

			p := tea.NewProgram(newGalleryModel(files, seed),
				tea.WithAltScreen(),
				tea.WithOutput(cmd.OutOrStdout()))
			_, err := p.Run()
			return err
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 1, "Seed for sample scene data")
	return cmd
}

type galleryKeys struct {
	Prev       key.Binding
	Next       key.Binding
	Grow       key.Binding
	Shrink     key.Binding
	Up         key.Binding
	Down       key.Binding
	Regenerate key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func (k galleryKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Grow, k.Shrink, k.Help, k.Quit}
}

func (k galleryKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next},
		{k.Grow, k.Shrink},
		{k.Up, k.Down},
		{k.Regenerate, k.Help, k.Quit},
	}
}

var defaultGalleryKeys = galleryKeys{
	Prev:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous panel")),
	Next:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next panel")),
	Grow:       key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "grow container")),
	Shrink:     key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "shrink container")),
	Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
	Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
	Regenerate: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "new sample data")),
	Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
}

const (
	minZoom  = 0.25
	maxZoom  = 4
	zoomStep = 1.1
)

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FFFFFF")).
	Background(lipgloss.Color("#3498DB")).
	Padding(0, 1)

// galleryModel browses scenes. Every frame is a fresh layout pass over the
// current scene at the current zoom.
type galleryModel struct {
	keys galleryKeys
	help help.Model

	files   []*scene.Scene
	samples []*scene.Scene
	seed    int64

	index  int
	zoom   float64
	scroll int

	width, height int
}

func newGalleryModel(files []*scene.Scene, seed int64) galleryModel {
	return galleryModel{
		keys:    defaultGalleryKeys,
		help:    help.New(),
		files:   files,
		samples: gallery.New(seed).Scenes(),
		seed:    seed,
		zoom:    1,
	}
}

func (m galleryModel) count() int {
	return len(m.files) + len(m.samples)
}

// current returns the selected scene with the zoom applied to its finite
// axes.
func (m galleryModel) current() *scene.Scene {
	var s scene.Scene
	if m.index < len(m.files) {
		s = *m.files[m.index]
	} else {
		s = *m.samples[m.index-len(m.files)]
	}
	if !panels.IsInf(s.Available.Width) {
		s.Available.Width *= m.zoom
	}
	if !panels.IsInf(s.Available.Height) {
		s.Available.Height *= m.zoom
	}
	return &s
}

func (m galleryModel) Init() tea.Cmd {
	return nil
}

func (m galleryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.index = (m.index + 1) % m.count()
			m.scroll = 0
		case key.Matches(msg, m.keys.Prev):
			m.index = (m.index - 1 + m.count()) % m.count()
			m.scroll = 0
		case key.Matches(msg, m.keys.Grow):
			m.zoom = min(m.zoom*zoomStep, maxZoom)
		case key.Matches(msg, m.keys.Shrink):
			m.zoom = max(m.zoom/zoomStep, minZoom)
		case key.Matches(msg, m.keys.Up):
			m.scroll = max(0, m.scroll-1)
		case key.Matches(msg, m.keys.Down):
			m.scroll = min(m.scroll+1, m.maxScroll())
		case key.Matches(msg, m.keys.Regenerate):
			m.seed++
			m.samples = gallery.New(m.seed).Scenes()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

// screen returns the terminal size, with a fallback before the first
// WindowSizeMsg arrives.
func (m galleryModel) screen() (width, height int) {
	width, height = m.width, m.height
	if width <= 0 {
		width = defaultColumns
	}
	if height <= 0 {
		height = 30
	}
	return width, height
}

func (m galleryModel) canvasRows() int {
	_, height := m.screen()
	return max(1, height-2-lipgloss.Height(m.help.View(m.keys)))
}

func (m galleryModel) projection(size panels.Size) canvas.Projection {
	width, _ := m.screen()
	return canvas.FitWidth(size.Width, width-1)
}

func (m galleryModel) maxScroll() int {
	s := m.current()
	size := drawExtent(s, s.Layout())
	_, total := m.projection(size).Size(size)
	return max(0, total+1-m.canvasRows())
}

func (m galleryModel) View() string {
	s := m.current()
	res := s.Layout()

	title := titleStyle.Render(s.Name) + fmt.Sprintf(" %d/%d  %s  container %s  desired %s  zoom %.0f%%",
		m.index+1, m.count(), panels.Name(s.Panel), formatSize(s.Available), formatSize(res.Desired), m.zoom*100)

	c := sceneCanvas(s, res, m.projection(drawExtent(s, res)), canvas.BorderRounded, m.scroll, m.canvasRows())
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		c.Render(canvas.DefaultPalette()),
		m.help.View(m.keys),
	)
}
