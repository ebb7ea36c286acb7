package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	scoreStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // Color for the score
	boldStyle  = lipgloss.NewStyle().Bold(true)
)

// InfoPanel is the InfoDisplay shown above the canvas.
type InfoPanel struct {
	Level     int
	Score     int
	HighScore int
	Task      string
}

func (p *InfoPanel) ShowLevel(level int) { p.Level = level }

func (p *InfoPanel) ShowScore(score int) {
	p.Score = score
	if score > p.HighScore {
		p.HighScore = score
	}
}

func (p *InfoPanel) ShowTask(task string) { p.Task = task }

func (p *InfoPanel) View() string {
	status := fmt.Sprintf("LEVEL: %d | SCORE: %d | BEST: %d", p.Level, p.Score, p.HighScore)
	return scoreStyle.Render(status) + "\n" + boldStyle.Render("Task: ") + p.Task
}
