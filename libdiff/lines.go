package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// LineOp marks a line of a line diff.
type LineOp byte

const (
	LineEqual  LineOp = ' '
	LineDelete LineOp = '-'
	LineInsert LineOp = '+'
)

type Line struct {
	Op   LineOp
	Text string
}

func (l Line) String() string {
	return string(l.Op) + " " + l.Text
}

// Lines returns a line by line diff of two texts.
func Lines(from, to string) []Line {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	var res []Line
	for _, d := range diffs {
		op := LineEqual
		switch d.Type {
		case diffpatch.DiffDelete:
			op = LineDelete
		case diffpatch.DiffInsert:
			op = LineInsert
		}
		text := strings.TrimSuffix(d.Text, "\n")
		for _, ln := range strings.Split(text, "\n") {
			res = append(res, Line{Op: op, Text: ln})
		}
	}
	return res
}

// Changed reports whether any line differs.
func Changed(lines []Line) bool {
	for _, ln := range lines {
		if ln.Op != LineEqual {
			return true
		}
	}
	return false
}
