package game

import (
	"math"
	"testing"
	"time"

	"github.com/verte-zerg/spellace/internal/model"
	"github.com/verte-zerg/spellace/internal/penalty"
)

type fixedSampler struct {
	words []string
	calls int
}

func (f *fixedSampler) Sample(_ string, count int) []model.Word {
	f.calls++
	out := make([]model.Word, 0, len(f.words))
	for i, w := range f.words {
		if i >= count {
			break
		}
		out = append(out, model.Word{Text: w, Tier: 1})
	}
	return out
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type recorder struct {
	results []Result
	exits   int
}

func (r *recorder) hooks() Hooks {
	return Hooks{
		OnComplete: func(res Result) { r.results = append(r.results, res) },
		OnExit:     func() { r.exits++ },
	}
}

func newSession(t *testing.T, words []string, pen *penalty.Type) (*Session, *fakeClock, *recorder) {
	t.Helper()
	clock := &fakeClock{now: time.Unix(1000, 0)}
	rec := &recorder{}
	s := New(&fixedSampler{words: words}, Options{
		Difficulty: "grade1",
		Penalty:    pen,
		Words:      len(words),
		Duration:   120,
		Now:        clock.Now,
		Hooks:      rec.hooks(),
	})
	return s, clock, rec
}

func ptr(t penalty.Type) *penalty.Type { return &t }

func typeWord(s *Session, word string) Feedback {
	var fb Feedback
	runes := []rune(word)
	for i := 1; i <= len(runes); i++ {
		fb = s.HandleInput(string(runes[:i]))
	}
	return fb
}

func TestNewSessionDefaults(t *testing.T) {
	s := New(&fixedSampler{words: []string{"a", "b"}}, Options{Difficulty: "grade1"})
	if s.Status() != StatusWaiting {
		t.Fatalf("expected waiting, got %s", s.Status())
	}
	if s.Remaining() != DefaultDuration || s.Duration() != DefaultDuration {
		t.Fatalf("expected %d seconds, got %d", DefaultDuration, s.Remaining())
	}
	if s.Penalty() != penalty.None {
		t.Fatalf("expected none penalty, got %s", s.Penalty())
	}
}

func TestPenaltyFollowsDifficultyWhenUnset(t *testing.T) {
	s := New(&fixedSampler{words: []string{"a"}}, Options{Difficulty: "championship"})
	if s.Penalty() != penalty.Points {
		t.Fatalf("expected points for championship, got %s", s.Penalty())
	}
	s = New(&fixedSampler{words: []string{"a"}}, Options{Difficulty: "championship", Penalty: ptr(penalty.None)})
	if s.Penalty() != penalty.None {
		t.Fatalf("explicit penalty must win, got %s", s.Penalty())
	}
}

func TestInputIgnoredUntilStarted(t *testing.T) {
	s, _, _ := newSession(t, []string{"cat"}, nil)
	if fb := s.HandleInput("cat"); fb.Kind != FeedbackIgnored {
		t.Fatalf("expected input to be ignored while waiting")
	}
	if s.Score() != 0 || s.Index() != 0 {
		t.Fatalf("waiting session was mutated")
	}
	if s.Tick() {
		t.Fatalf("expected tick to be ignored while waiting")
	}
	if s.Remaining() != 120 {
		t.Fatalf("remaining changed while waiting: %d", s.Remaining())
	}
}

func TestCompleteAllWords(t *testing.T) {
	s, clock, rec := newSession(t, []string{"cat", "dog"}, ptr(penalty.None))
	s.Start()
	clock.Advance(6 * time.Second)
	if fb := typeWord(s, "cat"); fb.Kind != FeedbackCorrect || fb.Points != 30 {
		t.Fatalf("unexpected feedback: %+v", fb)
	}
	if s.Index() != 1 || s.Buffer() != "" {
		t.Fatalf("expected advance to word 1 with empty buffer, got %d %q", s.Index(), s.Buffer())
	}
	typeWord(s, "dog")

	if s.Status() != StatusFinished {
		t.Fatalf("expected finished after last word, got %s", s.Status())
	}
	if len(rec.results) != 1 {
		t.Fatalf("expected one result, got %d", len(rec.results))
	}
	res := rec.results[0]
	if res.Score != 60 || res.Mistakes != 0 {
		t.Fatalf("unexpected score/mistakes: %+v", res)
	}
	if res.Accuracy != 100 {
		t.Fatalf("expected accuracy 100, got %f", res.Accuracy)
	}
	if math.Abs(res.WordsPerMinute-20) > 1e-9 {
		t.Fatalf("expected 20 wpm (2 words in 6s), got %f", res.WordsPerMinute)
	}
	if res.Difficulty != "grade1" || res.Penalty != penalty.None {
		t.Fatalf("unexpected config in result: %+v", res)
	}
	if got, ok := s.Result(); !ok || got != res {
		t.Fatalf("Result() mismatch: %+v", got)
	}
}

func TestNoFurtherMutationAfterFinish(t *testing.T) {
	s, _, rec := newSession(t, []string{"cat"}, nil)
	s.Start()
	typeWord(s, "cat")
	if s.Tick() {
		t.Fatalf("tick applied after finish")
	}
	if fb := s.HandleInput("x"); fb.Kind != FeedbackIgnored {
		t.Fatalf("input applied after finish")
	}
	s.Exit()
	if len(rec.results) != 1 || rec.exits != 0 {
		t.Fatalf("expected single completion and no exit, got %d results %d exits", len(rec.results), rec.exits)
	}
	if s.Start() {
		t.Fatalf("finished session restarted via Start")
	}
}

func TestInProgressTypingIsNotAMistake(t *testing.T) {
	s, _, _ := newSession(t, []string{"cat"}, ptr(penalty.Points))
	s.Start()
	for _, v := range []string{"x", "xy", "xyz", "xy", ""} {
		if fb := s.HandleInput(v); fb.Kind != FeedbackTyping {
			t.Fatalf("input %q: expected typing feedback, got %+v", v, fb)
		}
		if s.Buffer() != v {
			t.Fatalf("buffer not stored: %q", s.Buffer())
		}
	}
	if s.Mistakes() != 0 {
		t.Fatalf("expected no mistakes, got %d", s.Mistakes())
	}
}

func TestPointsPenaltyClampsScore(t *testing.T) {
	s, _, _ := newSession(t, []string{"dog", "sun", "cat"}, ptr(penalty.Points))
	s.Start()
	typeWord(s, "dog")
	typeWord(s, "sun")
	if s.Score() != 60 {
		t.Fatalf("expected 60, got %d", s.Score())
	}
	s.HandleInput("cats")
	if s.Score() != 0 {
		t.Fatalf("expected score clamped to 0, got %d", s.Score())
	}
	if s.Mistakes() != 1 {
		t.Fatalf("expected 1 mistake, got %d", s.Mistakes())
	}
	if s.Status() != StatusPlaying {
		t.Fatalf("expected playing, got %s", s.Status())
	}
	if s.Buffer() != "" || s.Index() != 2 {
		t.Fatalf("mistake must clear buffer and keep index, got %q %d", s.Buffer(), s.Index())
	}
}

func TestTimePenaltyClampsWithoutEnding(t *testing.T) {
	s, _, rec := newSession(t, []string{"cat", "dog"}, ptr(penalty.Time))
	s.Start()
	for s.Remaining() > 5 {
		s.Tick()
	}
	fb := s.HandleInput("cats")
	if fb.Kind != FeedbackMistake || fb.Penalty.TimeDeduction != 10 {
		t.Fatalf("unexpected feedback: %+v", fb)
	}
	if s.Remaining() != 0 {
		t.Fatalf("expected remaining clamped to 0, got %d", s.Remaining())
	}
	if s.Status() != StatusPlaying || len(rec.results) != 0 {
		t.Fatalf("time penalty alone must not end the session")
	}
	s.Tick()
	if s.Status() != StatusFinished || s.Remaining() != 0 {
		t.Fatalf("expected tick to finish at zero, got %s %d", s.Status(), s.Remaining())
	}
	if len(rec.results) != 1 {
		t.Fatalf("expected one result, got %d", len(rec.results))
	}
}

func TestStrikesTerminateOnThird(t *testing.T) {
	s, _, rec := newSession(t, []string{"cat", "dog"}, ptr(penalty.Strikes))
	s.Start()
	s.HandleInput("cats")
	s.HandleInput("cats")
	if s.Status() != StatusPlaying {
		t.Fatalf("expected playing after two strikes")
	}
	fb := s.HandleInput("cats")
	if !fb.Penalty.Terminates {
		t.Fatalf("expected termination on third strike")
	}
	if s.Status() != StatusFinished {
		t.Fatalf("expected finished, got %s", s.Status())
	}
	s.HandleInput("cats")
	s.Tick()
	if len(rec.results) != 1 {
		t.Fatalf("expected exactly one result, got %d", len(rec.results))
	}
	if rec.results[0].Mistakes != 3 {
		t.Fatalf("expected 3 mistakes, got %d", rec.results[0].Mistakes)
	}
}

func TestProgressivePenaltyNeverNegative(t *testing.T) {
	s, _, _ := newSession(t, []string{"cat", "dog", "sun", "run"}, ptr(penalty.Progressive))
	s.Start()
	typeWord(s, "cat")
	typeWord(s, "dog")
	for i := 0; i < 40; i++ {
		s.HandleInput("sunny")
		if s.Score() < 0 || s.Remaining() < 0 {
			t.Fatalf("negative state after %d mistakes", i+1)
		}
	}
	if s.Mistakes() != 40 {
		t.Fatalf("expected 40 mistakes, got %d", s.Mistakes())
	}
}

func TestTimerRunsOut(t *testing.T) {
	s, clock, rec := newSession(t, []string{"cat", "dog"}, nil)
	s.Start()
	typeWord(s, "cat")
	s.HandleInput("d")
	for i := 0; i < 120; i++ {
		clock.Advance(time.Second)
		s.Tick()
	}
	if s.Status() != StatusFinished {
		t.Fatalf("expected finished, got %s", s.Status())
	}
	if s.Tick() {
		t.Fatalf("timer kept running after finish")
	}
	res := rec.results[0]
	if res.WordsCompleted != 1 || res.Accuracy != 50 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Elapsed != 120*time.Second {
		t.Fatalf("expected 120s elapsed, got %s", res.Elapsed)
	}
	if math.Abs(res.WordsPerMinute-0.5) > 1e-9 {
		t.Fatalf("expected 0.5 wpm, got %f", res.WordsPerMinute)
	}
}

func TestRestartResetsRun(t *testing.T) {
	sampler := &fixedSampler{words: []string{"cat", "dog"}}
	s := New(sampler, Options{Difficulty: "grade1", Penalty: ptr(penalty.Points)})
	firstID := s.ID()
	s.Start()
	typeWord(s, "cat")
	s.HandleInput("dogs")
	s.Tick()
	s.Restart()
	if s.ID() == firstID {
		t.Fatalf("expected new session id after restart")
	}
	if s.Status() != StatusWaiting || s.Score() != 0 || s.Mistakes() != 0 || s.Index() != 0 || s.Remaining() != DefaultDuration {
		t.Fatalf("restart did not reset counters")
	}
	if sampler.calls != 2 {
		t.Fatalf("expected words to be resampled, got %d samples", sampler.calls)
	}
	if s.Penalty() != penalty.Points {
		t.Fatalf("restart must keep the penalty, got %s", s.Penalty())
	}
}

func TestExitProducesNoResult(t *testing.T) {
	s, _, rec := newSession(t, []string{"cat"}, nil)
	s.Start()
	s.Exit()
	s.Exit()
	if rec.exits != 1 {
		t.Fatalf("expected one exit callback, got %d", rec.exits)
	}
	if len(rec.results) != 0 {
		t.Fatalf("exit must not produce a result")
	}
	if s.Tick() {
		t.Fatalf("tick applied after exit")
	}
	if _, ok := s.Result(); ok {
		t.Fatalf("expected no result after exit")
	}
}

func TestEmptyWordList(t *testing.T) {
	s, _, rec := newSession(t, nil, nil)
	s.Start()
	if s.Status() != StatusFinished {
		t.Fatalf("expected empty session to finish at start")
	}
	if len(rec.results) != 1 {
		t.Fatalf("expected one result, got %d", len(rec.results))
	}
	res := rec.results[0]
	if res.Accuracy != 0 || res.WordsPerMinute != 0 {
		t.Fatalf("expected zero metrics, got %+v", res)
	}
	if math.IsNaN(res.Accuracy) || math.IsInf(res.WordsPerMinute, 0) {
		t.Fatalf("metrics must be finite")
	}
}

func TestMetricsDegenerate(t *testing.T) {
	wpm, acc := Metrics(0, 0, 0)
	if wpm != 0 || acc != 0 {
		t.Fatalf("expected zeros, got %f %f", wpm, acc)
	}
	wpm, acc = Metrics(3, 10, 0)
	if wpm != 0 || acc != 30 {
		t.Fatalf("expected 0 wpm and 30%%, got %f %f", wpm, acc)
	}
}

func TestResultWithoutStartUsesDuration(t *testing.T) {
	s, _, _ := newSession(t, []string{"cat"}, nil)
	res := s.computeResult()
	if res.Elapsed != 120*time.Second {
		t.Fatalf("expected configured duration, got %s", res.Elapsed)
	}
}

func TestStatusString(t *testing.T) {
	if StatusPlaying.String() != "playing" || Status(9).String() != "unknown" {
		t.Fatalf("unexpected status strings")
	}
}
