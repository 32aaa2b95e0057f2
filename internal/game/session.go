// Package game implements the spelling race session state machine.
package game

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/verte-zerg/spellace/internal/model"
	"github.com/verte-zerg/spellace/internal/penalty"
)

// Session defaults.
const (
	DefaultDuration = 120
	DefaultWords    = 10
	PointsPerLetter = 10
)

// Status is the lifecycle state of a session.
type Status int

// Session states.
const (
	StatusWaiting Status = iota
	StatusPlaying
	StatusFinished
)

func (s Status) String() string {
	switch s {
	case StatusWaiting:
		return "waiting"
	case StatusPlaying:
		return "playing"
	case StatusFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Sampler draws the words of a session.
type Sampler interface {
	Sample(difficultyID string, count int) []model.Word
}

// Hooks are invoked on the terminal transitions of a session.
type Hooks struct {
	OnComplete func(Result)
	OnExit     func()
}

// Options configure a session.
type Options struct {
	Difficulty string
	// Penalty overrides the difficulty's default penalty when set.
	Penalty  *penalty.Type
	Words    int
	Duration int
	// Now defaults to time.Now.
	Now   func() time.Time
	Hooks Hooks
}

// Session is one play-through. It is not safe for concurrent use; the
// input handler and the timer tick must be serialized by the caller.
type Session struct {
	id         uuid.UUID
	sampler    Sampler
	difficulty string
	penalty    penalty.Type
	wordCount  int
	duration   int
	now        func() time.Time
	hooks      Hooks

	words     []string
	index     int
	input     string
	score     int
	mistakes  int
	remaining int
	status    Status
	startedAt time.Time
	started   bool

	result *Result
	exited bool
}

// New configures a session in the waiting state with freshly sampled words.
func New(sampler Sampler, opts Options) *Session {
	s := &Session{
		sampler:    sampler,
		difficulty: opts.Difficulty,
		wordCount:  opts.Words,
		duration:   opts.Duration,
		now:        opts.Now,
		hooks:      opts.Hooks,
	}
	if s.wordCount <= 0 {
		s.wordCount = DefaultWords
	}
	if s.duration <= 0 {
		s.duration = DefaultDuration
	}
	if s.now == nil {
		s.now = time.Now
	}
	if opts.Penalty != nil {
		s.penalty = *opts.Penalty
	} else {
		s.penalty = penalty.ForDifficulty(opts.Difficulty)
	}
	s.reset()
	return s
}

func (s *Session) reset() {
	s.id = uuid.New()
	sampled := s.sampler.Sample(s.difficulty, s.wordCount)
	s.words = make([]string, 0, len(sampled))
	for _, w := range sampled {
		s.words = append(s.words, w.Text)
	}
	s.index = 0
	s.input = ""
	s.score = 0
	s.mistakes = 0
	s.remaining = s.duration
	s.status = StatusWaiting
	s.startedAt = time.Time{}
	s.started = false
	s.result = nil
	s.exited = false
}

// ID identifies the current run. It changes on every restart.
func (s *Session) ID() uuid.UUID { return s.id }

// Status returns the lifecycle state.
func (s *Session) Status() Status { return s.status }

// Words returns the words drawn for this run.
func (s *Session) Words() []string {
	out := make([]string, len(s.words))
	copy(out, s.words)
	return out
}

// Index returns the position of the active word.
func (s *Session) Index() int { return s.index }

// Buffer returns the text typed so far for the active word.
func (s *Session) Buffer() string { return s.input }

// Score returns the cumulative score.
func (s *Session) Score() int { return s.score }

// Mistakes returns the number of committed mistakes.
func (s *Session) Mistakes() int { return s.mistakes }

// Remaining returns the remaining time in seconds.
func (s *Session) Remaining() int { return s.remaining }

// Duration returns the configured session length in seconds.
func (s *Session) Duration() int { return s.duration }

// Difficulty returns the difficulty identifier.
func (s *Session) Difficulty() string { return s.difficulty }

// Penalty returns the penalty type in effect.
func (s *Session) Penalty() penalty.Type { return s.penalty }

// CurrentWord returns the active target word, or "" once all words are done.
func (s *Session) CurrentWord() string {
	if s.index < 0 || s.index >= len(s.words) {
		return ""
	}
	return s.words[s.index]
}

// Result returns the result once the session finished with one.
func (s *Session) Result() (Result, bool) {
	if s.result == nil {
		return Result{}, false
	}
	return *s.result, true
}

// Start moves a waiting session to playing. A session without words
// finishes immediately.
func (s *Session) Start() bool {
	if s.status != StatusWaiting {
		return false
	}
	s.startedAt = s.now()
	s.started = true
	s.status = StatusPlaying
	if len(s.words) == 0 {
		s.finish()
	}
	return true
}

// Tick advances the clock by one second. It reports whether the tick was
// applied; ticks outside playing are ignored.
func (s *Session) Tick() bool {
	if s.status != StatusPlaying {
		return false
	}
	s.remaining--
	if s.remaining <= 0 {
		s.remaining = 0
		s.finish()
	}
	return true
}

// FeedbackKind classifies what an input change did.
type FeedbackKind int

// Feedback kinds.
const (
	FeedbackIgnored FeedbackKind = iota
	FeedbackTyping
	FeedbackCorrect
	FeedbackMistake
)

// Feedback describes the effect of an input change.
type Feedback struct {
	Kind    FeedbackKind
	Word    string
	Points  int
	Penalty penalty.Outcome
}

// HandleInput processes a change of the input buffer. Only input that runs
// past the target word without matching it counts as a mistake.
func (s *Session) HandleInput(value string) Feedback {
	if s.status != StatusPlaying || s.index >= len(s.words) {
		return Feedback{Kind: FeedbackIgnored}
	}
	target := s.CurrentWord()
	s.input = value

	switch {
	case value == target:
		points := utf8.RuneCountInString(target) * PointsPerLetter
		s.score += points
		s.index++
		s.input = ""
		if s.index >= len(s.words) {
			s.finish()
		}
		return Feedback{Kind: FeedbackCorrect, Word: target, Points: points}
	case utf8.RuneCountInString(value) > utf8.RuneCountInString(target):
		s.mistakes++
		outcome := penalty.Evaluate(s.penalty, s.mistakes, s.score, s.remaining)
		s.score = clampSub(s.score, outcome.ScoreDeduction)
		s.remaining = clampSub(s.remaining, outcome.TimeDeduction)
		s.input = ""
		if outcome.Terminates {
			s.finish()
		}
		return Feedback{Kind: FeedbackMistake, Word: target, Penalty: outcome}
	default:
		return Feedback{Kind: FeedbackTyping, Word: target}
	}
}

// Restart discards the current run and returns to waiting with new words.
func (s *Session) Restart() {
	s.reset()
}

// Exit abandons the session. OnExit runs once, and only when the session
// has not already produced a result.
func (s *Session) Exit() {
	if s.exited || s.result != nil {
		return
	}
	s.exited = true
	s.status = StatusFinished
	if s.hooks.OnExit != nil {
		s.hooks.OnExit()
	}
}

func (s *Session) finish() {
	if s.result != nil {
		return
	}
	s.status = StatusFinished
	result := s.computeResult()
	s.result = &result
	if s.hooks.OnComplete != nil {
		s.hooks.OnComplete(result)
	}
}

func clampSub(v, d int) int {
	v -= d
	if v < 0 {
		return 0
	}
	return v
}
