// Package config loads optional TOML settings for the subconv CLI.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/mgpai22/subconv/internal/subtitle"
)

// Output contains defaults for written subtitles.
type Output struct {
	Format string `toml:"format"`
	// "crlf" or "lf", used by the txt writer
	LineEnding string `toml:"line_ending"`
}

// ASS contains the script header and default style of written ASS files.
type ASS struct {
	Title    string `toml:"title"`
	FontName string `toml:"font_name"`
	FontSize int    `toml:"font_size"`
}

// Input contains settings for decoding source files.
type Input struct {
	// charset assumed when input is not UTF-8 and detection fails
	FallbackCharset string `toml:"fallback_charset"`
}

// Convert contains batch conversion settings.
type Convert struct {
	Concurrency int `toml:"concurrency"`
}

// Config encapsulates all configuration values for subconv.
type Config struct {
	Output  Output  `toml:"output"`
	ASS     ASS     `toml:"ass"`
	Input   Input   `toml:"input"`
	Convert Convert `toml:"convert"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Output: Output{
			Format:     string(subtitle.FormatSRT),
			LineEnding: "crlf",
		},
		ASS: ASS{
			Title:    "Converted Subtitles",
			FontName: "Arial",
			FontSize: 20,
		},
		Input: Input{
			FallbackCharset: "windows-1252",
		},
		Convert: Convert{
			Concurrency: 4,
		},
	}
}

// Load reads the TOML file at path over the defaults. An empty path or a
// missing file yields the defaults. The second return reports whether a file
// was read.
func Load(path string) (*Config, bool, error) {
	cfg := Default()

	exists := false
	if path != "" {
		file, err := os.Open(filepath.Clean(path))
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, false, fmt.Errorf("open config: %w", err)
		default:
			defer file.Close()
			decoder := toml.NewDecoder(file)
			decoder.DisallowUnknownFields()
			if err := decoder.Decode(&cfg); err != nil {
				return nil, false, fmt.Errorf("parse config: %w", err)
			}
			exists = true
		}
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, false, err
	}
	return &cfg, exists, nil
}

func (c *Config) normalize() {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	c.Output.LineEnding = strings.ToLower(strings.TrimSpace(c.Output.LineEnding))
	c.Input.FallbackCharset = strings.TrimSpace(c.Input.FallbackCharset)
}

// Validate checks that configuration values are usable.
func (c *Config) Validate() error {
	if _, err := subtitle.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	switch c.Output.LineEnding {
	case "crlf", "lf":
	default:
		return fmt.Errorf("output.line_ending must be crlf or lf, got %q", c.Output.LineEnding)
	}
	if c.ASS.FontSize <= 0 {
		return fmt.Errorf("ass.font_size must be positive, got %d", c.ASS.FontSize)
	}
	if c.Convert.Concurrency <= 0 {
		return fmt.Errorf("convert.concurrency must be positive, got %d", c.Convert.Concurrency)
	}
	return nil
}

// LineEndingString returns the literal line terminator for the txt writer.
func (c *Config) LineEndingString() string {
	if c.Output.LineEnding == "lf" {
		return "\n"
	}
	return "\r\n"
}

// NewWriter builds a writer for format using the configured ASS header and
// txt line ending.
func (c *Config) NewWriter(format subtitle.Format) (subtitle.Writer, error) {
	switch format {
	case subtitle.FormatASS:
		return &subtitle.ASSWriter{
			Title:    c.ASS.Title,
			FontName: c.ASS.FontName,
			FontSize: c.ASS.FontSize,
		}, nil
	case subtitle.FormatTXT:
		return &subtitle.TXTWriter{LineEnding: c.LineEndingString()}, nil
	default:
		return subtitle.NewWriter(format)
	}
}
