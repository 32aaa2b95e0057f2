package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type styledRune struct {
	s       string
	width   int
	isSpace bool
}

// buildTargetRunes colors the active word by what has been typed so far.
// The first untyped rune is underlined as the cursor.
func buildTargetRunes(targetRunes, inputRunes []rune) []styledRune {
	out := make([]styledRune, 0, len(targetRunes))
	for i, target := range targetRunes {
		style := currentWordStyle
		if i < len(inputRunes) {
			if inputRunes[i] == target {
				style = correctStyle
			} else {
				style = incorrectStyle
			}
		} else if i == len(inputRunes) {
			style = style.Underline(true)
		}
		out = append(out, styledRune{
			s:     style.Render(string(target)),
			width: runewidth.RuneWidth(target),
		})
	}
	return out
}

// buildQueueRunes renders the session words as one line: completed words,
// the active word and the pending ones each in their own style.
func buildQueueRunes(words []string, index int) []styledRune {
	var out []styledRune
	for i, word := range words {
		if i > 0 {
			out = append(out, styledRune{s: " ", width: 1, isSpace: true})
		}
		style := pendingStyle
		switch {
		case i < index:
			style = doneWordStyle
		case i == index:
			style = currentWordStyle
		}
		for _, r := range word {
			out = append(out, styledRune{
				s:     style.Render(string(r)),
				width: runewidth.RuneWidth(r),
			})
		}
	}
	return out
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var out strings.Builder
	line := make([]styledRune, 0, len(runes))
	lineWidth := 0
	lastSpaceIdx := -1

	for i := 0; i < len(runes); {
		item := runes[i]
		if lineWidth+item.width > width && len(line) > 0 {
			if lastSpaceIdx >= 0 {
				out.WriteString(renderStyledRunes(line[:lastSpaceIdx]))
				out.WriteRune('\n')
				line = append([]styledRune{}, line[lastSpaceIdx+1:]...)
				lineWidth = lineWidthOf(line)
				lastSpaceIdx = lastSpaceIndex(line)
			} else {
				out.WriteString(renderStyledRunes(line))
				out.WriteRune('\n')
				line = line[:0]
				lineWidth = 0
				lastSpaceIdx = -1
			}
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	out.WriteString(renderStyledRunes(line))
	return out.String()
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []styledRune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}

// centerLines centers each line of s within width.
func centerLines(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
