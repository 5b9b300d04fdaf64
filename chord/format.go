package chord

import (
	"strings"

	"github.com/matthunz/staff/interval"
)

type token struct {
	interval interval.Interval
	text     string
}

// Only the first present interval of each group is written.
var (
	qualityTokens = []token{
		{interval.MinorThird, "m"},
		{interval.MajorSecond, "sus2"},
		{interval.PerfectFourth, "sus4"},
	}
	seventhTokens = []token{
		{interval.MinorSeventh, "7"},
		{interval.MajorSeventh, "maj7"},
	}
)

func firstToken(set interval.Set, tokens []token) string {
	for _, t := range tokens {
		if set.Contains(t.interval) {
			return t.text
		}
	}
	return ""
}

// A rule writes zero or one token given the chord and its root-relative intervals.
type rule func(c Chord, set interval.Set) string

var symbolRules = []rule{
	func(c Chord, _ interval.Set) string {
		return c.Root.Pitch().String()
	},
	func(_ Chord, set interval.Set) string {
		return firstToken(set, qualityTokens)
	},
	func(_ Chord, set interval.Set) string {
		if set.Contains(interval.Tritone) {
			return "b5"
		}
		return ""
	},
	func(_ Chord, set interval.Set) string {
		return firstToken(set, seventhTokens)
	},
	func(c Chord, _ interval.Set) string {
		if c.Bass == nil {
			return ""
		}
		return "/" + c.Bass.Pitch().String()
	},
	func(_ Chord, set interval.Set) string {
		if !set.Contains(interval.Unison) {
			return "(no root)"
		}
		return ""
	},
	func(_ Chord, set interval.Set) string {
		if !set.Contains(interval.Tritone) && !set.Contains(interval.PerfectFifth) {
			return "(no5)"
		}
		return ""
	},
}

// String renders the chord symbol, e.g. "Cm7", "Gm/C" or "Em/C(no5)".
func (c Chord) String() string {
	set := c.RootIntervals()

	var sb strings.Builder
	for _, r := range symbolRules {
		sb.WriteString(r(c, set))
	}
	return sb.String()
}
