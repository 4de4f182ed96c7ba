// Command plottui shows a scene in the terminal, rendered onto a braille
// cell grid. The scene is built once; every terminal resize triggers a
// fresh render pass at the new cell dimensions.
package main

import (
	"log"
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/termcanvas"
)

type model struct {
	scene  *plot.Scene
	width  int
	height int
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "loading..."
	}
	canvas := termcanvas.New(m.width, m.height-1)
	plot.Render(m.scene, canvas)
	return canvas.String() + "\nq: quit"
}

func main() {
	scene, err := plot.NewSceneBuilder().
		SetBackgroundColor(plot.Black).
		SetAxesColor(plot.White).
		AddFunctionWith(func(x float64) float64 {
			return 6 * math.Sin(x)
		}, plot.Cyan).
		AddFunctionWith(func(x float64) float64 {
			return 1 / x
		}, plot.Yellow).
		Build()
	if err != nil {
		log.Fatalf("Failed to build scene: %v", err)
	}

	p := tea.NewProgram(model{scene: scene}, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}
