package cli

import (
	"github.com/mgpai22/subconv/internal/config"
	"github.com/mgpai22/subconv/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	logger     *logging.Logger
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "subconv",
	Short: "Recover subtitles from plain text and convert them",
	Long: `Subconv is a CLI tool that turns loosely structured plain-text
subtitles into timed cues and writes them as SRT, VTT, ASS or plain text.

Timestamps are detected automatically; documents without any timing get
one-second cues in reading order.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logging.NewLogger(verbose)

		loaded, exists, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		if exists {
			logger.Debugw("Loaded config", "path", configPath)
		}
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "Path to a TOML config file")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
}
