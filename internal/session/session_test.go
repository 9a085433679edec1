package session

import (
	"math/rand"
	"testing"
	"time"

	"github.com/ybert/teaty/internal/generator"
)

var testCorpus = []string{
	"hello", "world", "speed", "test", "keyboard", "fast",
	"typing", "game", "challenge", "performance", "accuracy", "practice",
}

// fakeClock is a manually advanced clock.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestSession(seed int64) (*Session, *fakeClock) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	sampler := generator.NewWithRand(rand.New(rand.NewSource(seed)))
	return New(sampler, testCorpus, clock.Now), clock
}

func TestNewSamplesTenUniqueWords(t *testing.T) {
	s, _ := newTestSession(1)
	if len(s.Words()) != SampleSize {
		t.Fatalf("expected %d words, got %d", SampleSize, len(s.Words()))
	}
	seen := map[string]struct{}{}
	for _, w := range s.Words() {
		if _, ok := seen[w]; ok {
			t.Fatalf("word %q sampled twice", w)
		}
		seen[w] = struct{}{}
	}
}

func TestApplyCharAppendOnly(t *testing.T) {
	s, _ := newTestSession(1)
	for i, r := range "abc" {
		s.ApplyChar(r)
		if len(s.Input()) != i+1 {
			t.Fatalf("expected input length %d, got %d", i+1, len(s.Input()))
		}
	}
	if string(s.Input()) != "abc" {
		t.Fatalf("expected input abc, got %q", string(s.Input()))
	}
}

func TestStartTimeLatchesOnce(t *testing.T) {
	s, clock := newTestSession(1)
	if s.Started() {
		t.Fatalf("session should not be started before first char")
	}
	s.ApplyChar('a')
	if !s.Started() {
		t.Fatalf("session should be started after first char")
	}
	first := s.startedAt
	clock.Advance(5 * time.Second)
	s.ApplyChar('b')
	if !s.startedAt.Equal(first) {
		t.Fatalf("start time changed on second char")
	}
}

func TestTickFormula(t *testing.T) {
	s, clock := newTestSession(1)
	for i := 0; i < 25; i++ {
		s.ApplyChar('x')
	}
	clock.Advance(10 * time.Second)
	s.Tick()
	// (25/5) * (60/10) = 30
	if got := s.CurrentWPM(); got != 30 {
		t.Fatalf("expected WPM 30, got %d", got)
	}
}

func TestTickBeforeStartAppendsNothing(t *testing.T) {
	s, clock := newTestSession(1)
	clock.Advance(time.Minute)
	s.Tick()
	if len(s.History()) != 0 {
		t.Fatalf("expected empty history, got %v", s.History())
	}
}

func TestTickAtZeroElapsedAppendsNothing(t *testing.T) {
	s, _ := newTestSession(1)
	s.ApplyChar('a')
	s.Tick()
	if len(s.History()) != 0 {
		t.Fatalf("expected empty history at zero elapsed, got %v", s.History())
	}
}

func TestTickZeroCharsZeroWPM(t *testing.T) {
	s, clock := newTestSession(1)
	s.ApplyChar('a')
	clock.Advance(3 * time.Second)
	// One char over three seconds truncates to 4; the formula itself
	// yields 0 only with an empty buffer, which cannot start the timer,
	// so exercise truncation toward zero with a long elapsed instead.
	clock.Advance(57 * time.Second)
	s.Tick()
	if got := s.CurrentWPM(); got != 0 {
		t.Fatalf("expected WPM 0 for 1 char over 60s, got %d", got)
	}
}

func TestTickRepeatsWithinSameSecond(t *testing.T) {
	s, clock := newTestSession(1)
	for i := 0; i < 10; i++ {
		s.ApplyChar('x')
	}
	clock.Advance(2 * time.Second)
	s.Tick()
	s.Tick()
	s.Tick()
	if len(s.History()) != 3 {
		t.Fatalf("expected 3 history entries, got %d", len(s.History()))
	}
	for _, wpm := range s.History() {
		if wpm != 60 {
			t.Fatalf("expected repeated WPM 60, got %v", s.History())
		}
	}
}

func TestCurrentWPMEmptyHistory(t *testing.T) {
	s, _ := newTestSession(1)
	if got := s.CurrentWPM(); got != 0 {
		t.Fatalf("expected WPM 0 with empty history, got %d", got)
	}
}

func TestResetClearsEverything(t *testing.T) {
	s, clock := newTestSession(1)
	s.ApplyChar('a')
	clock.Advance(2 * time.Second)
	s.Tick()

	s.Reset()
	if len(s.Input()) != 0 {
		t.Fatalf("expected empty input after reset")
	}
	if s.Started() {
		t.Fatalf("expected unset start time after reset")
	}
	if len(s.History()) != 0 {
		t.Fatalf("expected empty history after reset")
	}
	if len(s.Words()) != SampleSize {
		t.Fatalf("expected %d words after reset, got %d", SampleSize, len(s.Words()))
	}
}

func TestResetResamplesDeterministically(t *testing.T) {
	a, _ := newTestSession(3)
	b, _ := newTestSession(3)
	a.Reset()
	b.Reset()
	for i := range a.Words() {
		if a.Words()[i] != b.Words()[i] {
			t.Fatalf("same seed produced different resamples: %v vs %v", a.Words(), b.Words())
		}
	}
}

func TestEndToEndScenario(t *testing.T) {
	s, clock := newTestSession(1)
	for _, r := range "hello" {
		s.ApplyChar(r)
	}
	clock.Advance(2 * time.Second)
	s.Tick()
	// (5/5) * (60/2) = 30
	if got := s.CurrentWPM(); got != 30 {
		t.Fatalf("expected WPM 30, got %d", got)
	}
}
