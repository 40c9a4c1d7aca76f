// Package txt recovers subtitle cues from loosely structured plain text.
//
// The parser decides per document whether lines are led by timestamps, are
// paragraphs separated by blank lines, or are plain untimed lines. Timestamped
// documents keep only the dominant timestamp shape, attach orphan text to a
// nearby timestamp line and merge lines sharing a start into one cue. Missing
// timing is synthesized so every returned cue has both bounds.
package txt

import (
	"strings"

	"go.uber.org/zap"

	"github.com/mgpai22/subconv/internal/subtitle"
)

// Parser parses plain-text subtitles. It holds no per-document state and is
// safe for concurrent use.
type Parser struct {
	logger *zap.SugaredLogger
}

var _ subtitle.Parser = (*Parser)(nil)

// NewParser returns a parser logging its decisions to logger at debug level.
// A nil logger discards them.
func NewParser(logger *zap.SugaredLogger) *Parser {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Parser{logger: logger}
}

// Analysis describes how a document was classified.
type Analysis struct {
	Mode Mode
	// colon count of the dominant timestamp shape, -1 outside timestamped mode
	DominantColons   int
	Lines            int
	NonBlankLines    int
	TimestampedLines int
	DoubleTextRuns   int
	SingleBlankLines int
	DemotedLines     int
}

// CanParse reports whether content has anything the parser could turn into a
// cue, which is any letter at all.
func CanParse(content string) bool {
	return hasLetter(content)
}

// one parse worth of working data
type document struct {
	// trimmed lines of the trimmed content, blank lines kept
	lines []string
	// the same lines without blanks, classified
	classified []classifiedLine
}

func newDocument(content string) *document {
	content = strings.TrimSpace(content)
	if content == "" {
		return &document{}
	}

	raw := strings.Split(content, "\n")
	lines := make([]string, len(raw))
	nonBlank := make([]string, 0, len(raw))
	for i, line := range raw {
		lines[i] = strings.TrimSpace(line)
		if lines[i] != "" {
			nonBlank = append(nonBlank, lines[i])
		}
	}
	return &document{
		lines:      lines,
		classified: classifyLines(nonBlank),
	}
}

// Analyze classifies content without assembling cues.
func (p *Parser) Analyze(content string) (Analysis, error) {
	return p.analyze(newDocument(content))
}

func (p *Parser) analyze(doc *document) (Analysis, error) {
	a := Analysis{
		DominantColons: -1,
		Lines:          len(doc.lines),
		NonBlankLines:  len(doc.classified),
	}
	if a.NonBlankLines == 0 {
		return a, ErrEmptyResult
	}

	a.TimestampedLines = countTimestamped(doc.classified)
	stats := countBlankLineStructure(doc.lines)
	a.DoubleTextRuns, a.SingleBlankLines = stats.doubleText, stats.singleBlank

	switch {
	case usesTimestamps(a.TimestampedLines, a.NonBlankLines):
		dominant, err := dominantColonCount(doc.classified)
		if err != nil {
			return a, err
		}
		a.Mode = ModeTimestamped
		a.DominantColons = dominant
		a.DemotedLines = demoteMinorityShapes(doc.classified, dominant)
	case stats.pairedByBlankLines():
		a.Mode = ModeBlankLinePaired
	default:
		a.Mode = ModeUntimed
	}

	p.logger.Debugw("classified plain text document",
		"mode", a.Mode.String(),
		"lines", a.Lines,
		"timestamped_lines", a.TimestampedLines,
		"dominant_colons", a.DominantColons,
		"demoted_lines", a.DemotedLines,
	)
	return a, nil
}

// Parse converts a newline-normalized document into cues ordered as they
// appear in the source, every cue carrying a start, an end and at least one
// line.
func (p *Parser) Parse(content string) (*subtitle.Subtitle, error) {
	sub, _, err := p.ParseWithAnalysis(content)
	return sub, err
}

// ParseWithAnalysis is Parse that also reports how the document was
// classified.
func (p *Parser) ParseWithAnalysis(content string) (*subtitle.Subtitle, Analysis, error) {
	doc := newDocument(content)
	a, err := p.analyze(doc)
	if err != nil {
		return nil, a, err
	}

	var pending []pendingCue
	switch a.Mode {
	case ModeTimestamped:
		pending = assembleTimestamped(doc.classified)
	case ModeBlankLinePaired:
		pending = assembleBlankLinePaired(doc.lines)
	default:
		pending = assembleUntimed(doc.lines)
	}

	if err := completeTimings(pending); err != nil {
		return nil, a, err
	}

	p.logger.Debugw("assembled cues", "mode", a.Mode.String(), "cues", len(pending))
	return &subtitle.Subtitle{
		Cues:   toCues(pending),
		Format: string(subtitle.FormatTXT),
	}, a, nil
}
