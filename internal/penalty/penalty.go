// Package penalty decides what a committed mistake costs.
package penalty

import (
	"fmt"
	"strings"
)

// Type identifies a penalty system.
type Type string

// Penalty systems.
const (
	None        Type = "none"
	Points      Type = "points"
	Time        Type = "time"
	Strikes     Type = "strikes"
	Progressive Type = "progressive"
)

// Severity is a display tag for how harsh a system is.
type Severity string

// Severities.
const (
	SeverityLow     Severity = "low"
	SeverityMedium  Severity = "medium"
	SeverityHigh    Severity = "high"
	SeverityExtreme Severity = "extreme"
)

// StrikeLimit is the mistake count that ends a Three Strikes game.
const StrikeLimit = 3

const (
	pointsDeduction      = 100
	timeDeduction        = 10
	progressiveBase      = 50
	progressiveMaxDouble = 24
)

// System holds the display metadata of a penalty type.
type System struct {
	ID          Type
	Name        string
	Description string
	Icon        string
	Severity    Severity
}

var systems = []System{
	{ID: None, Name: "Practice Mode", Description: "No penalties - just track mistakes", Icon: "🎯", Severity: SeverityLow},
	{ID: Points, Name: "Point Deduction", Description: "Lose 100 points per mistake", Icon: "💰", Severity: SeverityMedium},
	{ID: Time, Name: "Time Penalty", Description: "Lose 10 seconds per mistake", Icon: "⏰", Severity: SeverityMedium},
	{ID: Strikes, Name: "Three Strikes", Description: "Game ends after 3 mistakes", Icon: "⚾", Severity: SeverityHigh},
	{ID: Progressive, Name: "Progressive Penalty", Description: "Increasing penalty: 50, 100, 200 points...", Icon: "📈", Severity: SeverityExtreme},
}

// Systems returns all penalty systems in display order.
func Systems() []System {
	out := make([]System, len(systems))
	copy(out, systems)
	return out
}

// Lookup returns the metadata for a penalty type.
func Lookup(id Type) (System, bool) {
	for _, s := range systems {
		if s.ID == id {
			return s, true
		}
	}
	return System{}, false
}

// Parse maps a string to a penalty type. Unknown values become None.
func Parse(s string) Type {
	t, err := ParseStrict(s)
	if err != nil {
		return None
	}
	return t
}

// ParseStrict maps a string to a penalty type and rejects unknown values.
func ParseStrict(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := Lookup(t); !ok {
		return None, fmt.Errorf("unknown penalty %q", s)
	}
	return t, nil
}

// ForDifficulty picks the penalty used when none was chosen explicitly.
func ForDifficulty(difficultyID string) Type {
	switch difficultyID {
	case "high", "championship":
		return Points
	default:
		return None
	}
}

// Outcome is the consequence of a single mistake.
type Outcome struct {
	ScoreDeduction int
	TimeDeduction  int
	Terminates     bool
	Message        string
}

// Evaluate computes the outcome of the mistakeCount-th mistake. It does not
// clamp; callers keep score and time non-negative.
func Evaluate(t Type, mistakeCount, currentScore, timeRemaining int) Outcome {
	switch t {
	case Points:
		return Outcome{
			ScoreDeduction: pointsDeduction,
			Message:        fmt.Sprintf("-%d points penalty!", pointsDeduction),
		}
	case Time:
		return Outcome{
			TimeDeduction: timeDeduction,
			Message:       fmt.Sprintf("-%d seconds penalty!", timeDeduction),
		}
	case Strikes:
		if mistakeCount >= StrikeLimit {
			return Outcome{Terminates: true, Message: "Three strikes - Game Over!"}
		}
		return Outcome{Message: fmt.Sprintf("Strike %d/%d", mistakeCount, StrikeLimit)}
	case Progressive:
		deduction := progressiveDeduction(mistakeCount)
		return Outcome{
			ScoreDeduction: deduction,
			Message:        fmt.Sprintf("-%d points penalty!", deduction),
		}
	case None:
		return Outcome{Message: "Try again!"}
	default:
		return Outcome{Message: "Try again!"}
	}
}

// progressiveDeduction doubles from 50 on every mistake and saturates
// before it would overflow a 32-bit int.
func progressiveDeduction(mistakeCount int) int {
	if mistakeCount < 1 {
		return 0
	}
	shift := mistakeCount - 1
	if shift > progressiveMaxDouble {
		shift = progressiveMaxDouble
	}
	return progressiveBase << shift
}
