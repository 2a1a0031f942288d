package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oshoval/image-link-extractor/internal/ocr"
)

var outputFile string

// textCmd represents the text command
var textCmd = &cobra.Command{
	Use:   "text [image]",
	Short: "Dump the raw OCR text for an image",
	Long: `Dump the raw Tesseract output for an image without any URL mining.

Useful for debugging: this is exactly the text the extract command feeds
into its rejoin/match/fix pipeline.

Examples:
  image-link-extractor text screenshot.png
  image-link-extractor text --output dump.txt slide.png`,
	Args: cobra.ExactArgs(1),
	RunE: runText,
}

func init() {
	rootCmd.AddCommand(textCmd)

	textCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: stdout)")
	textCmd.Flags().StringVar(&lang, "lang", "eng", "Tesseract language code")
}

func runText(cmd *cobra.Command, args []string) error {
	filename := args[0]

	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return fmt.Errorf("file does not exist: %s", filename)
	}

	if !ocr.IsSupportedFormat(filename) {
		return fmt.Errorf("unsupported format: %s", filename)
	}

	text, err := ocr.ExtractText(filename, lang)
	if err != nil {
		return fmt.Errorf("failed to extract text: %w", err)
	}

	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(text), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}

		if !quiet {
			fmt.Fprintf(os.Stderr, "OCR text written to %s\n", outputFile)
		}

		return nil
	}

	fmt.Print(text)

	return nil
}
