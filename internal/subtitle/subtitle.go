package subtitle

import (
	"strings"
	"time"
)

// single subtitle entry: a time interval plus one or more text lines
type Cue struct {
	Start time.Duration
	End   time.Duration
	Lines []string
}

// start time in seconds
func (c Cue) StartSeconds() float64 {
	return c.Start.Seconds()
}

// end time in seconds
func (c Cue) EndSeconds() float64 {
	return c.End.Seconds()
}

// lines joined with newlines, the way most formats store multi-line text
func (c Cue) Text() string {
	return strings.Join(c.Lines, "\n")
}

// represents complete subtitle track, the intermediate representation every
// converter reads and writes
type Subtitle struct {
	Cues   []Cue
	Format string
}

// represents supported subtitle formats
type Format string

const (
	FormatSRT Format = "srt"
	FormatVTT Format = "vtt"
	FormatASS Format = "ass"
	FormatTXT Format = "txt"
)

// interface for parsing subtitle content already decoded to text
type Parser interface {
	Parse(content string) (*Subtitle, error)
}
