package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/spellace/internal/model"
	"github.com/verte-zerg/spellace/internal/penalty"
)

type menuItem struct {
	title       string
	description string
}

var menuItems = []menuItem{
	{title: "Quick Practice", description: "Pick a level and go. Penalties follow the level."},
	{title: "Custom Challenge", description: "Choose both the level and the penalty system."},
	{title: "Quit", description: "Leave the arena."},
}

const (
	menuQuickPractice = iota
	menuCustomChallenge
	menuQuit
)

const (
	focusDifficulties = iota
	focusPenalties
)

// challengeState tracks the two lists of the custom challenge screen.
type challengeState struct {
	focus      int
	diffCursor int
	penCursor  int
	// selected is the chosen difficulty index, -1 before a choice.
	selected int
	hint     string
}

func (c *challengeState) reset(systems []penalty.System, configured string) {
	c.focus = focusDifficulties
	c.diffCursor = 0
	c.selected = -1
	c.hint = ""
	c.penCursor = 0
	if configured == "" {
		return
	}
	want := penalty.Parse(configured)
	for i, sys := range systems {
		if sys.ID == want {
			c.penCursor = i
			return
		}
	}
}

func (a *App) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		a.menuCursor = wrapIndex(a.menuCursor-1, len(menuItems))
	case key.Matches(msg, keys.Down):
		a.menuCursor = wrapIndex(a.menuCursor+1, len(menuItems))
	case key.Matches(msg, keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, keys.Select):
		switch a.menuCursor {
		case menuQuickPractice:
			a.screen = screenDifficulty
		case menuCustomChallenge:
			a.challenge.reset(a.systems, a.cfg.Penalty)
			a.screen = screenChallenge
		case menuQuit:
			return a, tea.Quit
		}
	}
	return a, nil
}

func (a *App) updateDifficulty(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		a.difficultyCursor = wrapIndex(a.difficultyCursor-1, len(a.levels))
	case key.Matches(msg, keys.Down):
		a.difficultyCursor = wrapIndex(a.difficultyCursor+1, len(a.levels))
	case key.Matches(msg, keys.Back):
		a.screen = screenMenu
	case key.Matches(msg, keys.Select):
		if len(a.levels) == 0 {
			return a, nil
		}
		level := a.levels[a.difficultyCursor]
		a.start(Launch{Difficulty: level.ID, Penalty: a.configuredPenalty()}, screenDifficulty)
	}
	return a, nil
}

// configuredPenalty returns the penalty from the config file, or nil so the
// difficulty decides.
func (a *App) configuredPenalty() *penalty.Type {
	if a.cfg.Penalty == "" {
		return nil
	}
	p := penalty.Parse(a.cfg.Penalty)
	return &p
}

func (a *App) updateChallenge(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := &a.challenge
	switch {
	case key.Matches(msg, keys.Back):
		a.screen = screenMenu
	case key.Matches(msg, keys.Switch):
		if c.focus == focusDifficulties {
			c.focus = focusPenalties
		} else {
			c.focus = focusDifficulties
		}
	case key.Matches(msg, keys.Up):
		c.move(-1, len(a.levels), len(a.systems))
	case key.Matches(msg, keys.Down):
		c.move(1, len(a.levels), len(a.systems))
	case key.Matches(msg, keys.Select):
		if c.focus == focusDifficulties {
			c.selected = c.diffCursor
			c.focus = focusPenalties
			c.hint = ""
			return a, nil
		}
		if c.selected < 0 || c.selected >= len(a.levels) {
			c.hint = "Select a difficulty first"
			c.focus = focusDifficulties
			return a, nil
		}
		p := a.systems[c.penCursor].ID
		a.start(Launch{Difficulty: a.levels[c.selected].ID, Penalty: &p}, screenChallenge)
	}
	return a, nil
}

func (c *challengeState) move(delta, levels, systems int) {
	if c.focus == focusDifficulties {
		c.diffCursor = wrapIndex(c.diffCursor+delta, levels)
		return
	}
	c.penCursor = wrapIndex(c.penCursor+delta, systems)
}

func (a *App) viewMenu() string {
	lines := []string{
		titleStyle.Render("Spell Ace Arena"),
		subtitleStyle.Render("The ultimate competitive spelling challenge"),
		"",
	}
	for i, item := range menuItems {
		style := itemStyle
		if i == a.menuCursor {
			style = activeItemStyle
		}
		body := lipgloss.JoinVertical(lipgloss.Left,
			cardValueStyle.Render(item.title),
			subtitleStyle.Render(item.description),
		)
		lines = append(lines, style.Width(52).Render(body))
	}
	lines = append(lines, "", footerStyle.Render(a.help.View(menuHelp())))
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (a *App) viewDifficulty() string {
	lines := []string{
		titleStyle.Render("Choose Your Challenge"),
		subtitleStyle.Render("Select a difficulty level"),
		"",
	}
	rows := make([]string, 0, len(a.levels))
	for i, level := range a.levels {
		rows = append(rows, levelRow(level, i == a.difficultyCursor, false))
	}
	lines = append(lines, panelStyle.Render(strings.Join(rows, "\n")))
	if len(a.levels) > 0 {
		level := a.levels[a.difficultyCursor]
		pen := a.configuredPenalty()
		var p penalty.Type
		if pen != nil {
			p = *pen
		} else {
			p = penalty.ForDifficulty(level.ID)
		}
		lines = append(lines, "", subtitleStyle.Render(level.Description), penaltyLine(p))
	}
	lines = append(lines, "", footerStyle.Render(a.help.View(pickerHelp())))
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (a *App) viewChallenge() string {
	c := a.challenge
	levelRows := make([]string, 0, len(a.levels))
	for i, level := range a.levels {
		cursor := c.focus == focusDifficulties && i == c.diffCursor
		levelRows = append(levelRows, levelRow(level, cursor, i == c.selected))
	}
	penaltyRows := make([]string, 0, len(a.systems))
	for i, sys := range a.systems {
		cursor := c.focus == focusPenalties && i == c.penCursor
		penaltyRows = append(penaltyRows, systemRow(sys, cursor, i == c.penCursor))
	}

	levelPanel, penaltyPanel := panelStyle, panelStyle
	if c.focus == focusDifficulties {
		levelPanel = focusedPanelStyle
	} else {
		penaltyPanel = focusedPanelStyle
	}
	panels := lipgloss.JoinHorizontal(lipgloss.Top,
		levelPanel.Render(cardTitleStyle.Render("Difficulty")+"\n"+strings.Join(levelRows, "\n")),
		" ",
		penaltyPanel.Render(cardTitleStyle.Render("Penalty")+"\n"+strings.Join(penaltyRows, "\n")),
	)

	chosen := "none"
	if c.selected >= 0 && c.selected < len(a.levels) {
		chosen = a.levels[c.selected].Name
	}
	lines := []string{
		titleStyle.Render("Custom Challenge"),
		subtitleStyle.Render("Pick a difficulty, then a penalty system"),
		"",
		panels,
		"",
		subtitleStyle.Render(fmt.Sprintf("Difficulty: %s", chosen)),
		penaltyLine(a.systems[c.penCursor].ID),
	}
	if c.hint != "" {
		lines = append(lines, hintStyle.Render(c.hint))
	}
	lines = append(lines, "", footerStyle.Render(a.help.View(challengeHelp())))
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func levelRow(level model.DifficultyLevel, cursor, selected bool) string {
	marker := "  "
	switch {
	case cursor:
		marker = "› "
	case selected:
		marker = "● "
	}
	name := levelStyle(level.Color).Render(fmt.Sprintf("%-14s", level.Name))
	return marker + name + " " + pendingStyle.Render(stars(level.Tier))
}

func systemRow(sys penalty.System, cursor, chosen bool) string {
	marker := "  "
	switch {
	case cursor:
		marker = "› "
	case chosen:
		marker = "● "
	}
	return marker + sys.Icon + " " + cardValueStyle.Render(sys.Name) + " " + pendingStyle.Render(string(sys.Severity))
}

func penaltyLine(p penalty.Type) string {
	sys, ok := penalty.Lookup(p)
	if !ok {
		return subtitleStyle.Render("Penalty: " + string(p))
	}
	return subtitleStyle.Render(fmt.Sprintf("Penalty: %s %s - %s", sys.Icon, sys.Name, sys.Description))
}

const maxTier = 6

func stars(tier int) string {
	if tier < 0 {
		tier = 0
	}
	if tier > maxTier {
		tier = maxTier
	}
	return strings.Repeat("★", tier) + strings.Repeat("☆", maxTier-tier)
}
