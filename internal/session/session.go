// Package session owns the state of a single typing round.
package session

import (
	"time"

	"github.com/ybert/teaty/internal/generator"
)

// SampleSize is the number of target words per round.
const SampleSize = 10

// Clock returns the current time. Injected so tests control elapsed time.
type Clock func() time.Time

// Session holds the mutable state of one typing round: the sampled
// target words, the append-only input buffer, the start time (zero
// until the first character), and the WPM samples recorded so far.
type Session struct {
	sampler *generator.Sampler
	corpus  []string
	clock   Clock

	words      []string
	input      []rune
	startedAt  time.Time
	wpmHistory []int
}

// New creates a session with a freshly sampled target. The corpus must
// hold at least SampleSize words; the caller validates that at startup.
func New(sampler *generator.Sampler, corpus []string, clock Clock) *Session {
	s := &Session{sampler: sampler, corpus: corpus, clock: clock}
	s.Reset()
	return s
}

// Reset replaces the target words with a fresh sample and clears the
// input buffer, start time, and WPM history.
func (s *Session) Reset() {
	s.words = s.sampler.Sample(s.corpus, SampleSize)
	s.input = nil
	s.startedAt = time.Time{}
	s.wpmHistory = nil
}

// ApplyChar appends a typed character. The first character of a round
// latches the start time. Mismatches are recorded, not rejected;
// correctness is a display concern.
func (s *Session) ApplyChar(r rune) {
	if s.startedAt.IsZero() {
		s.startedAt = s.clock()
	}
	s.input = append(s.input, r)
}

// Tick recomputes WPM and appends it to the history once at least one
// whole second has elapsed. Called once per loop iteration; repeated
// calls within the same second append the same value again.
func (s *Session) Tick() {
	if s.startedAt.IsZero() {
		return
	}
	elapsed := int64(s.clock().Sub(s.startedAt).Seconds())
	if elapsed <= 0 {
		return
	}
	wpm := (float64(len(s.input)) / 5.0) * (60.0 / float64(elapsed))
	s.wpmHistory = append(s.wpmHistory, int(wpm))
}

// CurrentWPM returns the most recent WPM sample, or 0 before the first.
func (s *Session) CurrentWPM() int {
	if len(s.wpmHistory) == 0 {
		return 0
	}
	return s.wpmHistory[len(s.wpmHistory)-1]
}

// Words returns the target words of this round.
func (s *Session) Words() []string { return s.words }

// Input returns the characters typed so far.
func (s *Session) Input() []rune { return s.input }

// Started reports whether the first character has been typed.
func (s *Session) Started() bool { return !s.startedAt.IsZero() }

// History returns the WPM samples recorded this round.
func (s *Session) History() []int { return s.wpmHistory }
