package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mgpai22/subconv/internal/convert"
	"github.com/mgpai22/subconv/internal/subtitle"
	"github.com/mgpai22/subconv/internal/subtitle/txt"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert [text_file...]",
	Short: "Convert plain-text subtitles to another format",
	Long: `Parse one or more plain-text subtitle files and write them in the
requested format.

Input may be numbered SRT-like text, lines led by timestamps, timestamps on
their own lines, paragraphs separated by blank lines, or bare lines of text.

Examples:
  subconv convert lyrics.txt
  subconv convert transcript.txt -f vtt -o transcript.vtt
  subconv convert *.txt --format ass --concurrency 8`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().
		StringP("format", "f", "", "Output subtitle format (srt, vtt, ass, txt); defaults to the config value")
	convertCmd.Flags().
		Int("concurrency", 0, "Number of files converted in parallel; defaults to the config value")
}

func runConvert(cmd *cobra.Command, args []string) error {
	formatStr, _ := cmd.Flags().GetString("format")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	outputPath, _ := cmd.Flags().GetString("output")

	format, err := resolveFormat(formatStr, outputPath)
	if err != nil {
		return err
	}

	if concurrency < 0 {
		return fmt.Errorf("concurrency must be positive, got %d", concurrency)
	}
	if outputPath != "" && len(args) > 1 {
		return fmt.Errorf("--output can only be used with a single input file")
	}

	jobs := make([]convert.Job, len(args))
	for i, input := range args {
		out := outputPath
		if out == "" {
			out = defaultOutputPath(input, format)
		}
		jobs[i] = convert.Job{Input: input, Output: out, Format: format}
	}

	logger.Infow("Starting conversion",
		"files", len(jobs),
		"format", format,
	)

	converter := convert.NewConverter(cfg, logger)
	results, err := converter.Run(context.Background(), jobs, concurrency)
	if err != nil {
		if errors.Is(err, txt.ErrEmptyResult) {
			return fmt.Errorf("no subtitles found in the input: %w", err)
		}
		return fmt.Errorf("conversion failed: %w", err)
	}

	for _, r := range results {
		absOutput, _ := filepath.Abs(r.Job.Output)
		fmt.Printf("Converted %s -> %s (%d cues, %s)\n",
			r.Job.Input, absOutput, r.Cues, r.Mode)
	}
	return nil
}

// an explicit --format wins, then the extension of --output, then the config
func resolveFormat(formatStr, outputPath string) (subtitle.Format, error) {
	if formatStr != "" {
		return subtitle.ParseFormat(formatStr)
	}
	if outputPath != "" {
		if f, ok := subtitle.FormatForExtension(outputPath); ok {
			return f, nil
		}
	}
	return subtitle.ParseFormat(cfg.Output.Format)
}

// output path next to the input with the format's extension; an input that
// already has that extension gets a ".converted" infix instead of being
// overwritten
func defaultOutputPath(input string, format subtitle.Format) string {
	ext := subtitle.GetExtensionForFormat(format)
	base := strings.TrimSuffix(input, filepath.Ext(input))
	out := base + ext
	if filepath.Clean(out) == filepath.Clean(input) {
		out = base + ".converted" + ext
	}
	return out
}
