package tui

import (
	"strings"
	"testing"

	"github.com/ybert/teaty/internal/render"
)

func TestStyledCellsTags(t *testing.T) {
	cells := styledCells([]render.Char{
		{R: 'c', Tag: render.Matched},
		{R: 'b', Tag: render.Mismatched},
		{R: 't', Tag: render.Pending},
	})
	if len(cells) != 3 {
		t.Fatalf("expected 3 cells, got %d", len(cells))
	}
	if cells[0].s != matchedStyle.Render("c") {
		t.Fatalf("expected matched style for first cell")
	}
	if cells[1].s != mismatchedStyle.Render("b") {
		t.Fatalf("expected mismatched style for second cell")
	}
	if cells[2].s != pendingStyle.Render("t") {
		t.Fatalf("expected pending style for third cell")
	}
}

func TestStyledCellsSpaceFlag(t *testing.T) {
	cells := styledCells([]render.Char{
		{R: 'a', Tag: render.Matched},
		{R: ' ', Tag: render.Pending},
	})
	if cells[0].isSpace {
		t.Fatalf("letter cell flagged as space")
	}
	if !cells[1].isSpace {
		t.Fatalf("space cell not flagged as space")
	}
}

func plainCells(s string) []cell {
	out := make([]cell, 0, len(s))
	for _, r := range s {
		out = append(out, cell{s: string(r), width: 1, isSpace: r == ' '})
	}
	return out
}

func TestWrapCellsBreaksAtSpace(t *testing.T) {
	got := wrapCells(plainCells("one two three"), 7)
	want := "one\ntwo\nthree"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestWrapCellsLongWordHardBreak(t *testing.T) {
	got := wrapCells(plainCells("abcdefgh"), 3)
	if got != "abc\ndef\ngh" {
		t.Fatalf("unexpected wrap: %q", got)
	}
}

func TestWrapCellsZeroWidthNoWrap(t *testing.T) {
	got := wrapCells(plainCells("one two"), 0)
	if strings.Contains(got, "\n") {
		t.Fatalf("expected no wrapping for zero width, got %q", got)
	}
}
