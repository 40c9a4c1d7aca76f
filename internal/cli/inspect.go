package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mgpai22/subconv/internal/convert"
	"github.com/mgpai22/subconv/internal/subtitle"
	"github.com/mgpai22/subconv/internal/subtitle/txt"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [text_file]",
	Short: "Show how a plain-text subtitle file is interpreted",
	Long: `Parse a plain-text subtitle file and print the detected layout
followed by the recovered cues.

Examples:
  subconv inspect transcript.txt
  subconv inspect lyrics.txt --limit 0`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().
		Int("limit", 20, "Maximum number of cues to list (0 lists none, -1 lists all)")
}

func runInspect(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	converter := convert.NewConverter(cfg, logger)
	sub, analysis, err := converter.Load(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderTable(args[0], []string{"Property", "Value"},
		analysisRows(analysis, len(sub.Cues)),
		[]columnAlignment{alignLeft, alignRight},
	))

	if limit == 0 {
		return nil
	}
	fmt.Fprintln(out, renderTable("", []string{"#", "Start", "End", "Text"},
		cueRows(sub.Cues, limit),
		[]columnAlignment{alignRight, alignRight, alignRight, alignLeft},
	))
	if limit > 0 && len(sub.Cues) > limit {
		fmt.Fprintf(out, "... %d more cues\n", len(sub.Cues)-limit)
	}
	return nil
}

func analysisRows(a txt.Analysis, cues int) [][]string {
	dominant := "-"
	if a.DominantColons >= 0 {
		dominant = strconv.Itoa(a.DominantColons)
	}
	return [][]string{
		{"Mode", a.Mode.String()},
		{"Lines", strconv.Itoa(a.Lines)},
		{"Non-blank lines", strconv.Itoa(a.NonBlankLines)},
		{"Timestamped lines", strconv.Itoa(a.TimestampedLines)},
		{"Dominant colons", dominant},
		{"Demoted lines", strconv.Itoa(a.DemotedLines)},
		{"Cues", strconv.Itoa(cues)},
	}
}

func cueRows(cues []subtitle.Cue, limit int) [][]string {
	if limit < 0 || limit > len(cues) {
		limit = len(cues)
	}
	rows := make([][]string, 0, limit)
	for i, c := range cues[:limit] {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			formatClock(c.Start),
			formatClock(c.End),
			strings.Join(c.Lines, " / "),
		})
	}
	return rows
}

// h:mm:ss.mmm
func formatClock(d time.Duration) string {
	ms := d.Milliseconds()
	return fmt.Sprintf("%d:%02d:%02d.%03d",
		ms/3_600_000, ms/60_000%60, ms/1000%60, ms%1000)
}
