// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/ybert/teaty/internal/render"
)

// cell is one pre-styled target character with its display width.
type cell struct {
	s       string
	width   int
	isSpace bool
}

func styleFor(tag render.Tag) lipgloss.Style {
	switch tag {
	case render.Matched:
		return matchedStyle
	case render.Mismatched:
		return mismatchedStyle
	default:
		return pendingStyle
	}
}

func styledCells(chars []render.Char) []cell {
	out := make([]cell, 0, len(chars))
	for _, ch := range chars {
		out = append(out, cell{
			s:       styleFor(ch.Tag).Render(string(ch.R)),
			width:   runewidth.RuneWidth(ch.R),
			isSpace: ch.R == ' ',
		})
	}
	return out
}

func renderCells(cells []cell) string {
	var b strings.Builder
	for _, item := range cells {
		b.WriteString(item.s)
	}
	return b.String()
}

// wrapCells breaks the styled text into lines of at most width display
// cells, preferring to break after the last space on the line.
func wrapCells(cells []cell, width int) string {
	if width <= 0 {
		return renderCells(cells)
	}
	var out strings.Builder
	line := make([]cell, 0, len(cells))
	lineWidth := 0
	lastSpaceIdx := -1

	for i := 0; i < len(cells); {
		item := cells[i]
		if lineWidth+item.width > width && len(line) > 0 {
			if lastSpaceIdx >= 0 {
				out.WriteString(renderCells(line[:lastSpaceIdx]))
				out.WriteRune('\n')
				line = append([]cell{}, line[lastSpaceIdx+1:]...)
				lineWidth = lineWidthOf(line)
				lastSpaceIdx = lastSpaceIndex(line)
			} else {
				out.WriteString(renderCells(line))
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
	out.WriteString(renderCells(line))
	return out.String()
}

func lineWidthOf(line []cell) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []cell) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}
