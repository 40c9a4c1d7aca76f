package txt

import (
	"time"

	"github.com/mgpai22/subconv/internal/subtitle"
)

// step between synthesized starts, and the length of a final cue without end
const defaultCueLength = time.Second

// completeTimings fills missing bounds in place. Untimed cues get sequential
// starts counting from the last known start (0, 1, 2, ... when nothing is
// timed); missing ends take the next cue's start, or start + 1s for the last
// cue. Explicit ends are left alone even when they precede the start.
func completeTimings(cues []pendingCue) error {
	if len(cues) == 0 {
		return ErrEmptyResult
	}

	last := -defaultCueLength
	for i := range cues {
		if !cues[i].hasStart {
			last += defaultCueLength
			cues[i].start, cues[i].hasStart = last, true
			continue
		}
		last = cues[i].start
	}

	for i := range cues {
		if cues[i].hasEnd {
			continue
		}
		if i+1 < len(cues) {
			cues[i].end = cues[i+1].start
		} else {
			cues[i].end = cues[i].start + defaultCueLength
		}
		cues[i].hasEnd = true
	}
	return nil
}

func toCues(pending []pendingCue) []subtitle.Cue {
	out := make([]subtitle.Cue, len(pending))
	for i, p := range pending {
		out[i] = subtitle.Cue{
			Start: p.start,
			End:   p.end,
			Lines: p.lines,
		}
	}
	return out
}
