package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/spellace/internal/game"
	"github.com/verte-zerg/spellace/internal/penalty"
	"github.com/verte-zerg/spellace/internal/report"
)

func (a *App) updateGame(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.session == nil {
		a.screen = screenMenu
		return a, nil
	}
	switch a.session.Status() {
	case game.StatusWaiting:
		switch {
		case key.Matches(msg, keys.Start):
			return a, a.begin()
		case key.Matches(msg, keys.Back):
			a.session.Exit()
		}
	case game.StatusPlaying:
		switch {
		case key.Matches(msg, keys.Exit):
			a.session.Exit()
			return a, nil
		case key.Matches(msg, keys.Restart):
			a.restart()
			return a, nil
		}
		return a, a.updateInput(msg)
	}
	return a, nil
}

// begin starts the clock and focuses the input.
func (a *App) begin() tea.Cmd {
	if !a.session.Start() {
		return nil
	}
	if a.session.Status() != game.StatusPlaying {
		return nil
	}
	a.toast = "Game Started! Type the words as fast as you can!"
	a.toastBad = false
	a.logger.Info("session started", "session", a.session.ID())
	return tea.Batch(a.input.Focus(), tickCmd(a.session.ID()))
}

func (a *App) restart() {
	a.session.Restart()
	a.input.Reset()
	a.input.Blur()
	a.toast = ""
	a.logger.Info("session restarted", "session", a.session.ID())
}

// updateInput feeds a message to the text field and forwards any change of
// its value to the session. The field is then synced back to the session
// buffer, which is cleared on a correct word or a mistake.
func (a *App) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	sess := a.session
	value := a.input.Value()
	if value == sess.Buffer() {
		return cmd
	}
	a.showFeedback(sess.HandleInput(value))
	if a.screen == screenGame {
		a.input.SetValue(sess.Buffer())
		a.input.CursorEnd()
	}
	return cmd
}

func (a *App) showFeedback(fb game.Feedback) {
	switch fb.Kind {
	case game.FeedbackCorrect:
		a.toast = fmt.Sprintf("Correct! +%d points", fb.Points)
		a.toastBad = false
	case game.FeedbackMistake:
		a.toast = "Incorrect! " + fb.Penalty.Message
		a.toastBad = true
		a.logger.Debug("mistake",
			"word", fb.Word,
			"score_deduction", fb.Penalty.ScoreDeduction,
			"time_deduction", fb.Penalty.TimeDeduction,
			"terminates", fb.Penalty.Terminates,
		)
	}
}

func (a *App) viewGame() string {
	if a.session == nil {
		return ""
	}
	if a.session.Status() == game.StatusWaiting {
		return a.viewWaiting()
	}
	return a.viewPlaying()
}

func (a *App) viewWaiting() string {
	s := a.session
	level, _ := a.catalog.DifficultyByID(s.Difficulty())
	rules := []string{
		cardTitleStyle.Render("Game Rules"),
		fmt.Sprintf("• Spell %d words as fast and accurately as you can", len(s.Words())),
		fmt.Sprintf("• Each correct word scores %d points per letter", game.PointsPerLetter),
		"• Typing past the end of a word counts as a mistake",
		fmt.Sprintf("• Finish every word before the clock runs out (%s)", report.FormatClock(s.Duration())),
	}
	lines := []string{
		titleStyle.Render("Spell Ace Arena"),
		levelStyle(level.Color).Render(level.Name+" Level") + " " + pendingStyle.Render(stars(level.Tier)),
		penaltyLine(s.Penalty()),
		"",
		panelStyle.Render(strings.Join(rules, "\n")),
		"",
		footerStyle.Render(a.help.View(waitingHelp())),
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (a *App) viewPlaying() string {
	s := a.session
	words := s.Words()
	total := len(words)

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		metricCard("Time", report.FormatClock(s.Remaining())),
		metricCard("Score", fmt.Sprintf("%d", s.Score())),
		metricCard("Words", fmt.Sprintf("%d/%d", s.Index(), total)),
		metricCard("Mistakes", mistakesValue(s)),
	)

	var wordsDone, timeLeft float64
	if total > 0 {
		wordsDone = float64(s.Index()) / float64(total)
	}
	if s.Duration() > 0 {
		timeLeft = float64(s.Remaining()) / float64(s.Duration())
	}
	bars := lipgloss.JoinVertical(lipgloss.Left,
		barLabel("Words Progress", fmt.Sprintf("%d/%d", s.Index(), total), a.wordsBar.Width),
		a.wordsBar.ViewAs(wordsDone),
		barLabel("Time Remaining", fmt.Sprintf("%ds", s.Remaining()), a.timeBar.Width),
		a.timeBar.ViewAs(timeLeft),
	)

	width := a.contentWidth()
	target := targetStyle.Render(renderStyledRunes(buildTargetRunes([]rune(s.CurrentWord()), []rune(s.Buffer()))))
	queue := centerLines(wrapStyledRunes(buildQueueRunes(words, s.Index()), width), width)

	lines := []string{
		cards,
		"",
		bars,
		"",
		subtitleStyle.Render(fmt.Sprintf("Word %d of %d", min(s.Index()+1, total), total)),
		target,
		"",
		a.input.View(),
		a.renderToast(),
		"",
		queue,
		"",
		footerStyle.Render(a.help.View(playingHelp())),
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func mistakesValue(s *game.Session) string {
	if s.Penalty() == penalty.Strikes {
		return fmt.Sprintf("%d/%d", s.Mistakes(), penalty.StrikeLimit)
	}
	return fmt.Sprintf("%d", s.Mistakes())
}

func (a *App) renderToast() string {
	if a.toast == "" {
		return ""
	}
	if a.toastBad {
		return toastBad.Render(a.toast)
	}
	return toastGood.Render(a.toast)
}

func metricCard(title, value string) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		cardTitleStyle.Render(title),
		cardValueStyle.Render(value),
	)
	return cardStyle.Width(12).Align(lipgloss.Center).Render(body)
}

func barLabel(label, value string, width int) string {
	gap := width - lipgloss.Width(label) - lipgloss.Width(value)
	if gap < 1 {
		gap = 1
	}
	return subtitleStyle.Render(label) + strings.Repeat(" ", gap) + cardValueStyle.Render(value)
}
