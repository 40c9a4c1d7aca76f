package subtitle

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// interface for serializing subtitles
type Writer interface {
	Write(sub *Subtitle, w io.Writer) error
}

// SubRip format
type SRTWriter struct{}

// WebVTT format
type VTTWriter struct{}

// Advanced SubStation Alpha format
type ASSWriter struct {
	Title    string
	FontName string
	FontSize int
}

// plain text, one cue per line
type TXTWriter struct {
	LineEnding string
}

func NewWriter(format Format) (Writer, error) {
	switch format {
	case FormatSRT:
		return &SRTWriter{}, nil
	case FormatVTT:
		return &VTTWriter{}, nil
	case FormatASS:
		return &ASSWriter{
			Title:    "Converted Subtitles",
			FontName: "Arial",
			FontSize: 20,
		}, nil
	case FormatTXT:
		return &TXTWriter{LineEnding: "\r\n"}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// writes the subtitle to an SRT stream
func (w *SRTWriter) Write(sub *Subtitle, out io.Writer) error {
	bw := bufio.NewWriter(out)
	for i, cue := range sub.Cues {
		// index (1-based)
		fmt.Fprintf(bw, "%d\n", i+1)

		// timestamps: 00:00:00,000 --> 00:00:00,000
		fmt.Fprintf(bw, "%s --> %s\n",
			formatSRTTime(cue.Start),
			formatSRTTime(cue.End))

		bw.WriteString(cue.Text())
		bw.WriteString("\n\n")
	}
	return bw.Flush()
}

// writes the subtitle to a VTT stream
func (w *VTTWriter) Write(sub *Subtitle, out io.Writer) error {
	bw := bufio.NewWriter(out)

	bw.WriteString("WEBVTT\n\n")

	for i, cue := range sub.Cues {
		// optional cue identifier
		fmt.Fprintf(bw, "%d\n", i+1)

		// timestamps: 00:00:00.000 --> 00:00:00.000
		fmt.Fprintf(bw, "%s --> %s\n",
			formatVTTTime(cue.Start),
			formatVTTTime(cue.End))

		bw.WriteString(cue.Text())
		bw.WriteString("\n\n")
	}
	return bw.Flush()
}

// writes the subtitle to an ASS stream
func (w *ASSWriter) Write(sub *Subtitle, out io.Writer) error {
	bw := bufio.NewWriter(out)

	// script info section
	bw.WriteString("[Script Info]\n")
	fmt.Fprintf(bw, "Title: %s\n", w.Title)
	bw.WriteString("ScriptType: v4.00+\n")
	bw.WriteString("Collisions: Normal\n")
	bw.WriteString("PlayDepth: 0\n\n")

	// v4+ styles section
	bw.WriteString("[V4+ Styles]\n")
	bw.WriteString("Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding\n")
	fmt.Fprintf(bw, "Style: Default,%s,%d,&H00FFFFFF,&H000000FF,&H00000000,&H00000000,0,0,0,0,100,100,0,0,1,2,2,2,10,10,10,1\n\n",
		w.FontName, w.FontSize)

	// events section
	bw.WriteString("[Events]\n")
	bw.WriteString("Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\n")

	for _, cue := range sub.Cues {
		fmt.Fprintf(bw, "Dialogue: 0,%s,%s,Default,,0,0,0,,%s\n",
			formatASSTime(cue.Start),
			formatASSTime(cue.End),
			escapeASSText(cue.Text()))
	}
	return bw.Flush()
}

// writes one cue per line, the cue's lines joined with a space
func (w *TXTWriter) Write(sub *Subtitle, out io.Writer) error {
	eol := w.LineEnding
	if eol == "" {
		eol = "\n"
	}
	rows := make([]string, 0, len(sub.Cues))
	for _, cue := range sub.Cues {
		rows = append(rows, strings.Join(cue.Lines, " "))
	}
	_, err := io.WriteString(out, strings.TrimSpace(strings.Join(rows, eol)))
	return err
}

// serializes sub with w into the file at path, creating parent directories
func WriteFile(w Writer, sub *Subtitle, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := w.Write(sub, f); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

func formatSRTTime(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	millis := int(d.Milliseconds()) % 1000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}

func formatVTTTime(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	millis := int(d.Milliseconds()) % 1000

	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}

func formatASSTime(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	centis := (int(d.Milliseconds()) % 1000) / 10

	return fmt.Sprintf("%d:%02d:%02d.%02d", hours, minutes, seconds, centis)
}

func escapeASSText(text string) string {
	return strings.ReplaceAll(text, "\n", "\\N")
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}

// FormatForExtension reports the format named by path's extension, if any.
func FormatForExtension(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".srt":
		return FormatSRT, true
	case ".vtt":
		return FormatVTT, true
	case ".ass", ".ssa":
		return FormatASS, true
	case ".txt":
		return FormatTXT, true
	default:
		return "", false
	}
}

// file extension for a format
func GetExtensionForFormat(format Format) string {
	switch format {
	case FormatSRT:
		return ".srt"
	case FormatVTT:
		return ".vtt"
	case FormatASS:
		return ".ass"
	case FormatTXT:
		return ".txt"
	default:
		return ".srt"
	}
}

// parses a format name as given on the command line or in config
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatSRT, FormatVTT, FormatASS, FormatTXT:
		return f, nil
	case "ssa":
		return FormatASS, nil
	default:
		return "", fmt.Errorf("unsupported format: %s", name)
	}
}
