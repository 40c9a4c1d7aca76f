package txt

import (
	"strings"
	"time"
	"unicode"

	"github.com/dlclark/regexp2"
)

// timestampPattern matches 1 to 3 colon timestamps with an optional fraction,
// or a bare decimal like 12.345. The lookarounds keep a match from starting or
// ending inside a longer run of digits, which RE2 cannot express.
var timestampPattern = regexp2.MustCompile(
	`(?<![0-9])(?:(?:[0-9]{2}:)?(?:[0-9]{1,2}:)?[0-9]{1,2}:[0-9]{1,2}(?:[.,][0-9]+)?|[0-9]{1,5}[.,][0-9]{1,3})(?![0-9])`,
	regexp2.None,
)

// one source line after timestamp recognition
type classifiedLine struct {
	raw string

	startToken string
	endToken   string
	start      time.Duration
	end        time.Duration

	// empty when the line carries no letter or digit besides its timestamps
	text string
}

func (l classifiedLine) hasStart() bool {
	return l.startToken != ""
}

func (l classifiedLine) hasEnd() bool {
	return l.endToken != ""
}

func (l classifiedLine) hasText() bool {
	return l.text != ""
}

// number of colons in the start token, the shape used for the dominant vote
func (l classifiedLine) colons() int {
	return strings.Count(l.startToken, ":")
}

// demote drops the recognized timestamps and keeps the whole line as text
func (l *classifiedLine) demote() {
	l.startToken, l.endToken = "", ""
	l.start, l.end = 0, 0
	l.text = l.raw
}

// span of a timestamp match, in runes
type tokenMatch struct {
	value string
	start int
	end   int
}

// classifyLine splits a trimmed source line into its start/end timestamps and
// trailing text. A timestamp only counts when no letter precedes it; otherwise
// the whole line is text.
func classifyLine(line string) classifiedLine {
	cl := classifiedLine{raw: line}
	runes := []rune(line)
	rest := runes

	matches := findTimestamps(line, 2)
	if len(matches) > 0 && !hasLetter(string(runes[:matches[0].start])) {
		if accepted, ok := acceptTimestamps(&cl, matches); ok {
			rest = runes[accepted.end:]
		}
	}

	remainder := strings.TrimSpace(string(rest))
	if hasLetter(remainder) || hasDigit(remainder) {
		cl.text = remainder
	}
	return cl
}

// acceptTimestamps converts the start and optional end tokens. A token that
// fails conversion leaves the line without timestamps.
func acceptTimestamps(cl *classifiedLine, matches []tokenMatch) (tokenMatch, bool) {
	start, err := ParseTimestamp(matches[0].value)
	if err != nil {
		return tokenMatch{}, false
	}
	cl.startToken, cl.start = matches[0].value, start
	last := matches[0]

	if len(matches) > 1 {
		end, err := ParseTimestamp(matches[1].value)
		if err != nil {
			cl.startToken, cl.start = "", 0
			return tokenMatch{}, false
		}
		cl.endToken, cl.end = matches[1].value, end
		last = matches[1]
	}
	return last, true
}

// returns up to limit timestamp matches in line order
func findTimestamps(line string, limit int) []tokenMatch {
	var out []tokenMatch
	m, err := timestampPattern.FindStringMatch(line)
	for err == nil && m != nil && len(out) < limit {
		out = append(out, tokenMatch{
			value: m.String(),
			start: m.Index,
			end:   m.Index + m.Length,
		})
		m, err = timestampPattern.FindNextMatch(m)
	}
	return out
}

func classifyLines(lines []string) []classifiedLine {
	out := make([]classifiedLine, len(lines))
	for i, line := range lines {
		out[i] = classifyLine(line)
	}
	return out
}

func hasLetter(s string) bool {
	return strings.IndexFunc(s, unicode.IsLetter) >= 0
}

func hasDigit(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return r >= '0' && r <= '9'
	}) >= 0
}
