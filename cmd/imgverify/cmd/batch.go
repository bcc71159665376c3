package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/sujinee01/Image-Verification-Automation-System/internal/batch"
	"github.com/sujinee01/Image-Verification-Automation-System/internal/pipeline"
)

// batchCmd represents the batch command.
var batchCmd = &cobra.Command{
	Use:   "batch [paths...]",
	Short: "Verify many images or whole directories concurrently",
	Long: `Discover image files under the given files and directories and run the
verification pipeline over them with a worker pool. Per-file failures are
reported in the summary instead of aborting the run.

Examples:
  imgverify batch ./scans
  imgverify batch ./scans --recursive --workers 8
  imgverify batch ./scans --include 'scan_*.png' --format json`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.New("no input paths provided")
		}

		cfg := GetConfig()
		format := cfg.Output.Format
		if !pipeline.IsValidFormat(format) {
			return fmt.Errorf("invalid output format: %s (must be one of: %s)",
				format, strings.Join(pipeline.ValidFormats, ", "))
		}

		bcfg := batch.DefaultConfig()
		bcfg.Recursive, _ = cmd.Flags().GetBool("recursive")
		if w, _ := cmd.Flags().GetInt("workers"); w > 0 {
			bcfg.Workers = w
		}
		bcfg.IncludePatterns, _ = cmd.Flags().GetStringSlice("include")
		bcfg.ExcludePatterns, _ = cmd.Flags().GetStringSlice("exclude")

		bcfg.Pipeline.Extract.Language = cfg.Pipeline.Language
		bcfg.Pipeline.Extract.TessdataPrefix = cfg.Pipeline.TessdataPrefix
		bcfg.Pipeline.Preprocess.BlockSize = cfg.Pipeline.BlockSize
		bcfg.Pipeline.Preprocess.Constant = cfg.Pipeline.ThresholdConstant
		bcfg.Pipeline.MinLines = cfg.Pipeline.MinLines
		if cfg.Pipeline.DictPath != "" {
			bcfg.Pipeline.DictionaryPaths = strings.Split(cfg.Pipeline.DictPath, ",")
		}

		res, err := batch.Run(cmd.Context(), args, bcfg)
		if err != nil {
			return err
		}

		out, err := batch.FormatResults(res, format, cfg.Output.ShowText)
		if err != nil {
			return fmt.Errorf("failed to format batch results: %w", err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().BoolP("recursive", "r", false, "descend into subdirectories")
	batchCmd.Flags().IntP("workers", "w", 0, "worker count (default: number of CPUs)")
	batchCmd.Flags().StringSlice("include", nil, "glob patterns a file name must match")
	batchCmd.Flags().StringSlice("exclude", nil, "glob patterns that exclude a file name")
}

// GetBatchCommand returns the batch command for testing purposes.
func GetBatchCommand() *cobra.Command {
	return batchCmd
}
