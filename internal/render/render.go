// Package render projects session state into a display model. The model
// carries no styles and no terminal vocabulary; mapping tags to colors
// is the TUI's job.
package render

// Title is the static heading shown above the target text.
const Title = "Teaty Typing Speed Test"

// State is the read-only view of a session the projector consumes.
// *session.Session satisfies it.
type State interface {
	Words() []string
	Input() []rune
	CurrentWPM() int
}

// Tag classifies one target character against the typed input.
type Tag int

const (
	// Pending means no input has reached this position yet.
	Pending Tag = iota
	// Matched means the typed character equals the target.
	Matched
	// Mismatched means the typed character differs from the target.
	Mismatched
)

// Char is one target character with its correctness tag.
type Char struct {
	R   rune
	Tag Tag
}

// Frame is the display model for one loop iteration.
type Frame struct {
	Title string
	Chars []Char
	WPM   int
}

// Project builds the display model for the current session state.
//
// Target words are joined by single spaces. Each word is assumed to
// occupy len(word)+1 input slots, one trailing separator slot per word
// with the last word included, so the input character compared against
// word i, offset j sits at index i*(len(word_i)+1)+j. When word lengths
// vary this shifts later words relative to their on-screen position;
// that drift is intentional and kept. Joining spaces themselves are
// never compared and always render Pending.
func Project(s State) Frame {
	input := s.Input()
	var chars []Char
	for i, word := range s.Words() {
		if i > 0 {
			chars = append(chars, Char{R: ' ', Tag: Pending})
		}
		runes := []rune(word)
		for j, target := range runes {
			pos := i*(len(runes)+1) + j
			tag := Pending
			if pos < len(input) {
				if input[pos] == target {
					tag = Matched
				} else {
					tag = Mismatched
				}
			}
			chars = append(chars, Char{R: target, Tag: tag})
		}
	}
	return Frame{Title: Title, Chars: chars, WPM: s.CurrentWPM()}
}
