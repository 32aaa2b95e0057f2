package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/verte-zerg/spellace/internal/game"
	"github.com/verte-zerg/spellace/internal/model"
	"github.com/verte-zerg/spellace/internal/penalty"
)

const terminalWidthBackup = 80

// RenderLevels prints the difficulty levels with their word counts.
func RenderLevels(w io.Writer, levels []model.DifficultyLevel, wordCounts map[string]int) error {
	headers := []string{"ID", "Name", "Tier", "Words", "Auto Penalty", "Description"}
	rows := make([][]string, 0, len(levels))
	for _, level := range levels {
		rows = append(rows, []string{
			level.ID,
			level.Name,
			fmt.Sprintf("%d", level.Tier),
			fmt.Sprintf("%d", wordCounts[level.ID]),
			string(penalty.ForDifficulty(level.ID)),
			level.Description,
		})
	}
	return writeLines(w, formatTable(headers, rows, map[int]bool{2: true, 3: true}))
}

// RenderPenalties prints the penalty systems.
func RenderPenalties(w io.Writer, systems []penalty.System) error {
	headers := []string{"ID", "", "Name", "Severity", "Description"}
	rows := make([][]string, 0, len(systems))
	for _, s := range systems {
		rows = append(rows, []string{string(s.ID), s.Icon, s.Name, string(s.Severity), s.Description})
	}
	return writeLines(w, formatTable(headers, rows, nil))
}

// RenderPacks prints custom word counts per tier.
func RenderPacks(w io.Writer, summaries []model.PackSummary) error {
	if len(summaries) == 0 {
		_, err := fmt.Fprintln(w, "No custom words imported.")
		return err
	}
	headers := []string{"Tier", "Custom Words"}
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{s.Tier, fmt.Sprintf("%d", s.Words)})
	}
	return writeLines(w, formatTable(headers, rows, map[int]bool{1: true}))
}

// RenderWords prints words in columns that fit the terminal width.
func RenderWords(w io.Writer, words []model.Word) error {
	return writeLines(w, wordColumns(words, outputWidth(w)))
}

func wordColumns(words []model.Word, width int) []string {
	if len(words) == 0 {
		return nil
	}
	cellWidth := 0
	for _, word := range words {
		if n := displayWidth(word.Text); n > cellWidth {
			cellWidth = n
		}
	}
	cellWidth += 2
	perLine := width / cellWidth
	if perLine < 1 {
		perLine = 1
	}
	lines := make([]string, 0, len(words)/perLine+1)
	for start := 0; start < len(words); start += perLine {
		end := start + perLine
		if end > len(words) {
			end = len(words)
		}
		var b strings.Builder
		for i, word := range words[start:end] {
			if i < end-start-1 {
				b.WriteString(padCell(word.Text, cellWidth, false, false))
			} else {
				b.WriteString(word.Text)
			}
		}
		lines = append(lines, b.String())
	}
	return lines
}

// RenderResult prints a finished game summary.
func RenderResult(w io.Writer, result game.Result, level model.DifficultyLevel) error {
	levelName := level.Name
	if levelName == "" {
		levelName = result.Difficulty
	}
	penaltyName := string(result.Penalty)
	if sys, ok := penalty.Lookup(result.Penalty); ok {
		penaltyName = sys.Name
	}
	lines := []string{
		fmt.Sprintf("%s  %s level", Rating(result.Accuracy), levelName),
	}
	headers := []string{"Score", "WPM", "Accuracy", "Time", "Mistakes", "Words", "Penalty"}
	rows := [][]string{{
		fmt.Sprintf("%d", result.Score),
		fmt.Sprintf("%.1f", result.WordsPerMinute),
		fmt.Sprintf("%.0f%%", result.Accuracy),
		FormatElapsed(result.Elapsed.Seconds()),
		fmt.Sprintf("%d", result.Mistakes),
		fmt.Sprintf("%d/%d", result.WordsCompleted, result.TotalWords),
		penaltyName,
	}}
	lines = append(lines, formatTable(headers, rows, map[int]bool{0: true, 1: true, 2: true, 3: true, 4: true, 5: true})...)
	lines = append(lines, Encouragement(result.Accuracy))
	return writeLines(w, lines)
}

// FormatElapsed renders seconds as 12.3s.
func FormatElapsed(seconds float64) string {
	return fmt.Sprintf("%.1fs", seconds)
}

// FormatClock renders whole seconds as m:ss.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// Rating names the performance band of an accuracy percentage.
func Rating(accuracy float64) string {
	switch {
	case accuracy >= 90:
		return "Champion!"
	case accuracy >= 75:
		return "Excellent!"
	case accuracy >= 60:
		return "Good Job!"
	case accuracy >= 40:
		return "Keep Practicing!"
	default:
		return "Try Again!"
	}
}

// Encouragement returns the closing message for an accuracy percentage.
func Encouragement(accuracy float64) string {
	switch {
	case accuracy >= 90:
		return "Outstanding spelling skills! You're ready for the championship!"
	case accuracy >= 75:
		return "Great work! Keep practicing to reach champion level!"
	case accuracy >= 60:
		return "Nice progress! Try a higher difficulty next time!"
	default:
		return "Every expert was once a beginner. Keep practicing!"
	}
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func outputWidth(w io.Writer) int {
	file, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return terminalWidthBackup
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}
