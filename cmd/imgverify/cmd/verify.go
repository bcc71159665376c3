package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/sujinee01/Image-Verification-Automation-System/internal/pipeline"
	"github.com/sujinee01/Image-Verification-Automation-System/internal/preprocess"
)

// verifyCmd represents the verify command.
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify one or more document images",
	Long: `Run the full verification pipeline on one or more image files:
preprocess, OCR, and rule-based text validation.

Supported formats: JPEG, PNG, BMP, TIFF

Examples:
  imgverify verify scan.png
  imgverify verify *.png --format json
  imgverify verify scan.jpg --lang deu --min-lines 5`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.New("no input files provided")
		}

		cfg := GetConfig()

		format := cfg.Output.Format
		if !pipeline.IsValidFormat(format) {
			return fmt.Errorf("invalid output format: %s (must be one of: %s)",
				format, strings.Join(pipeline.ValidFormats, ", "))
		}

		b := pipeline.NewBuilder().
			WithLanguage(cfg.Pipeline.Language).
			WithTessdataPrefix(cfg.Pipeline.TessdataPrefix).
			WithThreshold(cfg.Pipeline.BlockSize, cfg.Pipeline.ThresholdConstant).
			WithMinLines(cfg.Pipeline.MinLines)
		if cfg.Pipeline.DictPath != "" {
			b = b.WithDictionaryPaths(strings.Split(cfg.Pipeline.DictPath, ","))
		}
		pl, err := b.Build()
		if err != nil {
			return fmt.Errorf("failed to build verification pipeline: %w", err)
		}

		var outputs []string
		for _, path := range args {
			if !preprocess.IsSupportedImage(path) {
				return fmt.Errorf("unsupported image format: %s", path)
			}
			res, err := pl.VerifyFile(cmd.Context(), path)
			if err != nil {
				// Infrastructure failure: report and stop, no stack trace.
				return fmt.Errorf("verification of %s failed: %w", path, err)
			}

			switch format {
			case pipeline.FormatJSON:
				s, err := pipeline.ToJSON(res)
				if err != nil {
					return err
				}
				outputs = append(outputs, s)
			case pipeline.FormatYAML:
				s, err := pipeline.ToYAML(res)
				if err != nil {
					return err
				}
				outputs = append(outputs, s)
			default:
				s := pipeline.ToPlainText(res, cfg.Output.ShowText)
				if len(args) > 1 {
					s = fmt.Sprintf("%s:\n%s", path, s)
				}
				outputs = append(outputs, s)
			}
		}

		final := strings.Join(outputs, "\n")
		if cfg.Output.File != "" {
			if err := os.WriteFile(cfg.Output.File, []byte(final), 0o600); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Results written to %s\n", cfg.Output.File); err != nil {
				return err
			}
			return nil
		}
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), final); err != nil {
			return fmt.Errorf("failed to write final output: %w", err)
		}
		return nil
	},
}

func addVerifyFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", "text", "output format (text, json, yaml)")
	cmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringP("lang", "l", "eng", "OCR language code (e.g. eng, deu)")
	cmd.Flags().String("tessdata-prefix", "", "override the Tesseract trained-data directory")
	cmd.Flags().Int("block-size", 11, "adaptive threshold neighborhood size (odd, >1)")
	cmd.Flags().Float64("threshold-constant", 2, "constant subtracted from the local mean when binarizing")
	cmd.Flags().Int("min-lines", 3, "minimum number of non-blank lines expected")
	cmd.Flags().String("dict", "", "comma-separated extra word-list files merged into the dictionary")
	cmd.Flags().Bool("show-text", true, "include the raw extracted text in plain-text output")
}

// bindVerifyFlags binds all flags to viper configuration keys.
func bindVerifyFlags(cmd *cobra.Command) {
	flagBindings := []struct {
		key  string
		flag string
	}{
		{"output.format", "format"},
		{"output.file", "output"},
		{"output.show_text", "show-text"},
		{"pipeline.language", "lang"},
		{"pipeline.tessdata_prefix", "tessdata-prefix"},
		{"pipeline.block_size", "block-size"},
		{"pipeline.threshold_constant", "threshold-constant"},
		{"pipeline.min_lines", "min-lines"},
		{"pipeline.dict_path", "dict"},
	}
	for _, binding := range flagBindings {
		if err := viper.BindPFlag(binding.key, cmd.Flags().Lookup(binding.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", binding.flag, err))
		}
	}
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	addVerifyFlags(verifyCmd)
	bindVerifyFlags(verifyCmd)
}

// GetVerifyCommand returns the verify command for testing purposes.
func GetVerifyCommand() *cobra.Command {
	return verifyCmd
}
