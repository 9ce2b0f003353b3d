package text

import "strings"

// frame is the candidate output line under construction. start is the first byte not yet
// emitted and end is the last space seen that still keeps the line within the limit.
type frame struct {
	start int
	end   int
}

type segmenter struct {
	out    *strings.Builder
	maxLen int

	s string
	frame
}

func newSegmenter(out *strings.Builder, maxLen int) *segmenter {
	return &segmenter{out: out, maxLen: maxLen}
}

// segment greedily breaks a single over-long segment at spaces and writes the lines to
// the output.
func (sg *segmenter) segment(line string) {
	sg.s = trimTrailing(line)
	if sg.s == "" {
		sg.out.WriteByte('\n')
		return
	}

	lead := sg.skipSpaces(0)
	if lead >= sg.maxLen {
		// The indentation alone fills a line. It is emitted as is and the remainder
		// of the leading run is dropped.
		sg.emit(sg.s[:sg.maxLen])
		sg.start = lead
	}
	sg.end = sg.start

	for next := sg.indexSpace(lead); next >= 0; next = sg.indexSpace(sg.end + 1) {
		switch width := next - sg.start; {
		case width == sg.maxLen:
			sg.emit(trimTrailing(sg.s[sg.start:next]))
			sg.advance(next)
		case width > sg.maxLen:
			if sg.start == sg.end {
				// A single word is wider than the limit, so it goes out whole.
				sg.emit(trimTrailing(sg.s[sg.start:next]))
				sg.advance(next)
			} else {
				sg.emit(trimTrailing(sg.s[sg.start:sg.end]))
				sg.advance(sg.end)
			}
		default:
			sg.end = next
		}
	}

	if sg.start == sg.end {
		sg.emit(trimTrailing(sg.s[sg.start:]))
		return
	}

	sg.emit(trimTrailing(sg.s[sg.start:sg.end]))
	sg.emit(trimSpace(sg.s[sg.end:]))
}

// advance starts a new frame at the first non-space byte at or after i.
func (sg *segmenter) advance(i int) {
	sg.start = sg.skipSpaces(i)
	sg.end = sg.start
}

func (sg *segmenter) skipSpaces(i int) int {
	for i < len(sg.s) && sg.s[i] == ' ' {
		i++
	}
	return i
}

func (sg *segmenter) indexSpace(from int) int {
	if from >= len(sg.s) {
		return -1
	}

	i := strings.IndexByte(sg.s[from:], ' ')
	if i < 0 {
		return -1
	}
	return from + i
}

func (sg *segmenter) emit(line string) {
	sg.out.WriteString(line)
	sg.out.WriteByte('\n')
}
