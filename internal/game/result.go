package game

import (
	"time"

	"github.com/verte-zerg/spellace/internal/penalty"
)

// Result is the immutable summary of a finished session.
type Result struct {
	Score          int
	Mistakes       int
	Elapsed        time.Duration
	WordsPerMinute float64
	Accuracy       float64
	WordsCompleted int
	TotalWords     int
	Difficulty     string
	Penalty        penalty.Type
}

func (s *Session) computeResult() Result {
	elapsed := time.Duration(s.duration) * time.Second
	if s.started {
		elapsed = s.now().Sub(s.startedAt)
	}
	completed := s.index
	if s.index < len(s.words) && s.input == s.words[s.index] {
		completed++
	}
	wpm, accuracy := Metrics(completed, len(s.words), elapsed)
	return Result{
		Score:          s.score,
		Mistakes:       s.mistakes,
		Elapsed:        elapsed,
		WordsPerMinute: wpm,
		Accuracy:       accuracy,
		WordsCompleted: completed,
		TotalWords:     len(s.words),
		Difficulty:     s.difficulty,
		Penalty:        s.penalty,
	}
}

// Metrics computes words per minute and accuracy percentage. Degenerate
// inputs yield zero instead of NaN or infinity.
func Metrics(completed, total int, elapsed time.Duration) (wpm, accuracy float64) {
	if total > 0 {
		accuracy = float64(completed) / float64(total) * 100
	}
	seconds := elapsed.Seconds()
	if seconds > 0 {
		wpm = float64(completed) / seconds * 60
	}
	return wpm, accuracy
}
