package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/oshoval/image-link-extractor/internal/extractor"
	"github.com/oshoval/image-link-extractor/internal/ocr"
)

var (
	lang         string
	showText     bool
	batchMode    bool
	numWorkers   int
	showProgress bool
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract [image...]",
	Short: "Extract URLs from images",
	Long: `Extract URLs from screenshot or slide images.

Each image is OCR'd with Tesseract and the recognized text is mined for
URLs. Line-wrapped URLs are rejoined, OCR glyph misreads inside hex-like
path segments are corrected, and the output is deduplicated in
first-occurrence order. A failing image is reported and skipped; it never
aborts the rest of the batch.

Supported formats: ` + strings.Join(ocr.SupportedFormats(), " ") + `

Examples:
  image-link-extractor extract screenshot.png
  image-link-extractor extract slide1.png slide2.png
  image-link-extractor extract --batch --workers 8 slides/*.png
  image-link-extractor extract -o json screenshot.png`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVar(&lang, "lang", "eng", "Tesseract language code")
	extractCmd.Flags().BoolVar(&showText, "show-text", false, "include the raw OCR text in the output")
	extractCmd.Flags().BoolVar(&batchMode, "batch", false, "process images in parallel")
	extractCmd.Flags().IntVar(&numWorkers, "workers", runtime.NumCPU(), "number of parallel workers for batch mode")
	extractCmd.Flags().BoolVar(&showProgress, "progress", true, "log per-image progress during batch processing")
}

func runExtract(cmd *cobra.Command, args []string) error {
	// Config file can set the language; an explicit flag wins.
	if !cmd.Flags().Changed("lang") {
		if v := viper.GetString("language"); v != "" {
			lang = v
		}
	}

	options := extractor.ExtractionOptions{
		Language:    lang,
		IncludeText: showText,
	}

	var results []*extractor.ExtractionResult
	if batchMode {
		results = extractBatch(args, options)
	} else {
		results = extractSequential(args, options)
	}

	return outputResults(results)
}

func extractSequential(paths []string, options extractor.ExtractionOptions) []*extractor.ExtractionResult {
	ext := extractor.New(options)

	results := make([]*extractor.ExtractionResult, 0, len(paths))

	for _, path := range paths {
		if !quiet {
			log.Info().Str("file", path).Msg("processing image")
		}

		result := ext.ProcessImage(path)
		if !result.OK() {
			log.Error().Str("file", path).Str("kind", string(result.Err.Kind)).Msg(result.Err.Message)
		}

		results = append(results, result)
	}

	return results
}

func extractBatch(paths []string, options extractor.ExtractionOptions) []*extractor.ExtractionResult {
	pool := extractor.NewWorkerPool(numWorkers, options)
	pool.Start()

	go func() {
		for update := range pool.Progress() {
			switch update.Status {
			case extractor.TaskStatusFailed:
				log.Error().Str("file", update.Path).Msg(update.Message)
			case extractor.TaskStatusCompleted:
				if showProgress && !quiet {
					log.Info().
						Str("file", update.Path).
						Int("completed", update.Completed).
						Int("total", update.Total).
						Dur("elapsed", update.ElapsedTime).
						Msg("image done")
				}
			default:
				log.Debug().Str("file", update.Path).Str("status", string(update.Status)).Msg("progress")
			}
		}
	}()

	// Submit from a separate goroutine: the task and result channels are
	// fixed-size buffers, so queueing a large batch before draining any
	// results would fill both and block the workers.
	go func() {
		for i, path := range paths {
			pool.Submit(extractor.Task{
				ID:   taskID(i),
				Path: path,
			})
		}

		pool.Wait()
	}()

	// Collect by task ID so output order matches the argument order even
	// though workers finish out of order, and so a path passed twice
	// keeps one result per occurrence.
	byID := make(map[string]*extractor.ExtractionResult, len(paths))

	for taskResult := range pool.Results() {
		byID[taskResult.Task.ID] = taskResult.Result
	}

	results := make([]*extractor.ExtractionResult, 0, len(paths))
	for i := range paths {
		if result, ok := byID[taskID(i)]; ok {
			results = append(results, result)
		}
	}

	return results
}

func taskID(i int) string {
	return fmt.Sprintf("task-%d", i)
}

func outputResults(results []*extractor.ExtractionResult) error {
	switch strings.ToLower(output) {
	case "json":
		return outputJSON(results)
	case "csv":
		return outputCSV(results)
	case "human":
		return outputHuman(results)
	default:
		return fmt.Errorf("unsupported output format: %s", output)
	}
}

func outputHuman(results []*extractor.ExtractionResult) error {
	header := color.New(color.Bold)
	urlColor := color.New(color.FgCyan)
	errColor := color.New(color.FgRed)

	for _, result := range results {
		header.Printf("=== %s ===\n", result.File)

		if !result.OK() {
			errColor.Printf("  ERROR: %s\n", result.Err.Message)
			fmt.Println()

			continue
		}

		if len(result.URLs) > 0 {
			fmt.Printf("Found %d link(s):\n\n", len(result.URLs))

			for i, url := range result.URLs {
				fmt.Printf("  %d. %s\n", i+1, urlColor.Sprint(url))
			}
		} else {
			fmt.Println("  No links found.")
		}

		if showText && result.Text != "" {
			fmt.Printf("\n--- OCR text ---\n%s\n", result.Text)
		}

		fmt.Println()
	}

	return nil
}

func outputJSON(results []*extractor.ExtractionResult) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(results)
}

func outputCSV(results []*extractor.ExtractionResult) error {
	writer := csv.NewWriter(os.Stdout)
	defer writer.Flush()

	if err := writer.Write([]string{"file", "url", "error"}); err != nil {
		return err
	}

	for _, result := range results {
		if !result.OK() {
			if err := writer.Write([]string{result.File, "", result.Err.Message}); err != nil {
				return err
			}

			continue
		}

		for _, url := range result.URLs {
			if err := writer.Write([]string{result.File, url, ""}); err != nil {
				return err
			}
		}
	}

	return nil
}
