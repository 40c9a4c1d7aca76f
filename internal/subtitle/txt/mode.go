package txt

// parsing strategy chosen once per document
type Mode int

const (
	// every non-blank line is its own cue with synthesized timing
	ModeUntimed Mode = iota
	// paragraphs separated by single blank lines, no timestamps
	ModeBlankLinePaired
	// lines led by timestamps
	ModeTimestamped
)

func (m Mode) String() string {
	switch m {
	case ModeUntimed:
		return "untimed"
	case ModeBlankLinePaired:
		return "blank-line-paired"
	case ModeTimestamped:
		return "timestamped"
	default:
		return "unknown"
	}
}

// document-level thresholds, as fractions expressed by their divisors
const (
	// at least 1 in 5 non-blank lines must be timestamp-led
	timestampedDivisor = 5
	// more than 1 in 100 lines must start a two-line paragraph
	doubleTextDivisor = 100
	// more than 1 in 20 lines must follow an isolated blank line
	singleBlankDivisor = 20
)

// blank-line structure of a document
type blankLineStats struct {
	lines       int
	doubleText  int
	singleBlank int
}

// countBlankLineStructure walks trimmed lines (blanks kept) and counts lines
// that are the second line of a paragraph following a blank, and lines that
// directly follow a blank line which itself follows text.
func countBlankLineStructure(lines []string) blankLineStats {
	stats := blankLineStats{lines: len(lines)}
	blankAt := func(i int) bool {
		return i >= 0 && lines[i] == ""
	}
	for k, line := range lines {
		if line == "" {
			continue
		}
		prevBlank := blankAt(k - 1)
		prev2Blank := blankAt(k - 2)
		if !prevBlank && prev2Blank {
			stats.doubleText++
		}
		if prevBlank && !prev2Blank {
			stats.singleBlank++
		}
	}
	return stats
}

func (s blankLineStats) pairedByBlankLines() bool {
	return s.doubleText*doubleTextDivisor > s.lines &&
		s.singleBlank*singleBlankDivisor > s.lines
}

func countTimestamped(lines []classifiedLine) int {
	n := 0
	for _, l := range lines {
		if l.hasStart() {
			n++
		}
	}
	return n
}

func usesTimestamps(timestamped, total int) bool {
	return timestamped*timestampedDivisor >= total
}

// dominantColonCount returns the colon count carried by most start tokens.
// Ties go to the count seen first.
func dominantColonCount(lines []classifiedLine) (int, error) {
	var order []int
	tally := make(map[int]int)
	for _, l := range lines {
		if !l.hasStart() {
			continue
		}
		c := l.colons()
		if _, seen := tally[c]; !seen {
			order = append(order, c)
		}
		tally[c]++
	}
	if len(order) == 0 {
		return 0, ErrNoTimestampsFound
	}

	best := order[0]
	for _, c := range order[1:] {
		if tally[c] > tally[best] {
			best = c
		}
	}
	return best, nil
}

// demoteMinorityShapes turns timestamps with fewer colons than the dominant
// shape back into plain text and reports how many lines changed.
func demoteMinorityShapes(lines []classifiedLine, dominant int) int {
	demoted := 0
	for i := range lines {
		if lines[i].hasStart() && lines[i].colons() < dominant {
			lines[i].demote()
			demoted++
		}
	}
	return demoted
}
