package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/spellace/internal/penalty"
	"github.com/verte-zerg/spellace/internal/report"
)

func (a *App) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.PlayAgain):
		a.start(a.launch, a.origin)
	case key.Matches(msg, keys.Menu):
		a.session = nil
		a.result = nil
		a.screen = screenMenu
	case key.Matches(msg, keys.Quit):
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) viewResults() string {
	if a.result == nil {
		return ""
	}
	r := *a.result
	level, _ := a.catalog.DifficultyByID(r.Difficulty)

	ratingStyle := toastGood
	if r.Accuracy < 60 {
		ratingStyle = toastBad
	}
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		metricCard("Score", fmt.Sprintf("%d", r.Score)),
		metricCard("WPM", fmt.Sprintf("%.1f", r.WordsPerMinute)),
		metricCard("Accuracy", fmt.Sprintf("%.0f%%", r.Accuracy)),
		metricCard("Time", report.FormatElapsed(r.Elapsed.Seconds())),
		metricCard("Mistakes", fmt.Sprintf("%d", r.Mistakes)),
	)

	penaltyName := string(r.Penalty)
	if sys, ok := penalty.Lookup(r.Penalty); ok {
		penaltyName = sys.Icon + " " + sys.Name
	}
	details := []string{
		fmt.Sprintf("Words: %d/%d", r.WordsCompleted, r.TotalWords),
		"Penalty: " + penaltyName,
		"Difficulty: " + stars(level.Tier),
	}

	lines := []string{
		titleStyle.Render("Game Complete!"),
		ratingStyle.Render(report.Rating(r.Accuracy)),
		levelStyle(level.Color).Render(level.Name + " Level"),
		"",
		cards,
		"",
		panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, details...)),
		"",
		subtitleStyle.Render(report.Encouragement(r.Accuracy)),
		"",
		footerStyle.Render(a.help.View(resultsHelp())),
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}
