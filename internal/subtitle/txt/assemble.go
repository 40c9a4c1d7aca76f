package txt

import "time"

const (
	// how far back an orphan text line may look for a timestamp-only line
	timingLookback = 2
	// how many previous rows may share a start with the row being merged
	mergeLookback = 10
)

// cue under construction; timing may still be missing
type pendingCue struct {
	start    time.Duration
	end      time.Duration
	hasStart bool
	hasEnd   bool
	lines    []string
}

// one text line with the timing resolved for it
type row struct {
	text     string
	start    time.Duration
	end      time.Duration
	hasStart bool
	hasEnd   bool
}

// assembleTimestamped turns classified lines into cues. Sequence numbers that
// sit right above a timestamp line are dropped, orphan text inherits timing
// from a timestamp-only line up to two lines back, and rows sharing a start
// with one of the previous ten rows are merged into one cue.
func assembleTimestamped(lines []classifiedLine) []pendingCue {
	rows := make([]row, 0, len(lines))
	for i, l := range lines {
		if !l.hasText() {
			continue
		}
		if isDigits(l.text) && i+1 < len(lines) && lines[i+1].hasStart() {
			continue
		}

		r := row{text: l.text}
		if src, ok := resolveTiming(lines, i); ok {
			r.start, r.hasStart = src.start, true
			r.end, r.hasEnd = src.end, src.hasEnd()
		}
		rows = append(rows, r)
	}
	return mergeRows(rows)
}

func resolveTiming(lines []classifiedLine, i int) (classifiedLine, bool) {
	if lines[i].hasStart() {
		return lines[i], true
	}
	for back := 1; back <= timingLookback && i-back >= 0; back++ {
		prev := lines[i-back]
		if prev.hasStart() && !prev.hasText() {
			return prev, true
		}
	}
	return classifiedLine{}, false
}

func mergeRows(rows []row) []pendingCue {
	var cues []pendingCue
	for k, r := range rows {
		if len(cues) > 0 && continuesEarlierRow(rows, k) {
			last := &cues[len(cues)-1]
			last.lines = append(last.lines, r.text)
			continue
		}
		cues = append(cues, pendingCue{
			start:    r.start,
			end:      r.end,
			hasStart: r.hasStart,
			hasEnd:   r.hasEnd,
			lines:    []string{r.text},
		})
	}
	return cues
}

// a row continues the current cue when it has no start of its own, or its
// start equals the start of a recent timed row
func continuesEarlierRow(rows []row, k int) bool {
	r := rows[k]
	for back := 1; back <= mergeLookback && k-back >= 0; back++ {
		prev := rows[k-back]
		if !prev.hasStart {
			continue
		}
		if !r.hasStart || prev.start == r.start {
			return true
		}
	}
	return false
}

// assembleBlankLinePaired groups consecutive non-blank lines into one cue;
// a blank line closes the current cue.
func assembleBlankLinePaired(lines []string) []pendingCue {
	var cues []pendingCue
	for k, line := range lines {
		if line == "" {
			continue
		}
		afterBlank := k > 0 && lines[k-1] == ""
		if afterBlank || len(cues) == 0 {
			cues = append(cues, pendingCue{lines: []string{line}})
			continue
		}
		last := &cues[len(cues)-1]
		last.lines = append(last.lines, line)
	}
	return cues
}

func assembleUntimed(lines []string) []pendingCue {
	cues := make([]pendingCue, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		cues = append(cues, pendingCue{lines: []string{line}})
	}
	return cues
}
