package text

import (
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

// Strategy selects how over-long lines are broken.
type Strategy string

const (
	// StrategyFrame breaks lines with Wrap.
	StrategyFrame Strategy = "frame"
	// StrategyReflow breaks lines with Reflow.
	StrategyReflow Strategy = "reflow"
)

var Strategies = []Strategy{StrategyFrame, StrategyReflow}

func (st Strategy) Wrap(s string, maxLen int) string {
	if st == StrategyReflow {
		return Reflow(s, maxLen)
	}
	return Wrap(s, maxLen)
}

// Reflow is like Wrap but fills each segment with go-wordwrap, which packs as many
// whole words as fit on each line and treats every kind of whitespace as a break
// opportunity.
func Reflow(s string, maxLen int) string {
	if maxLen < 1 || len(s) <= maxLen {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 20)

	for _, segment := range splitSegments(s) {
		b.WriteString(trimTrailing(wordwrap.WrapString(segment, uint(maxLen))))
		b.WriteByte('\n')
	}

	return b.String()
}
