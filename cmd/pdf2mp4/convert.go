package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kuraken88/pdf2mp4/internal/config"
	"github.com/kuraken88/pdf2mp4/internal/document"
	"github.com/kuraken88/pdf2mp4/internal/logger"
	"github.com/kuraken88/pdf2mp4/internal/media"
	"github.com/kuraken88/pdf2mp4/internal/narration"
	"github.com/kuraken88/pdf2mp4/internal/pipeline"
	"github.com/kuraken88/pdf2mp4/internal/tts"
	"github.com/kuraken88/pdf2mp4/pkg/executor"
)

func newConvertCommand(configFlag *string) *cobra.Command {
	var (
		output string
		start  int
		pages  int
		lang   string
	)

	cmd := &cobra.Command{
		Use:   "convert <document.pdf>",
		Short: "Convert one document into a narrated video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configFlag)
			if err != nil {
				return err
			}
			if lang != "" {
				cfg.TTS.Language = lang
			}

			docPath := args[0]
			if output == "" {
				output = defaultOutputName(docPath)
			}

			log := logger.New(cfg.Logging.Level)
			rng := document.PageRange{Start: start, Count: pages}
			return runConvert(cmd.Context(), cfg, log, docPath, output, rng)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output video file (default: <document>.mp4)")
	cmd.Flags().IntVar(&start, "start", 0, "First page to process, 0-based")
	cmd.Flags().IntVar(&pages, "pages", 0, "Number of pages to process (0 = to end)")
	cmd.Flags().StringVarP(&lang, "lang", "l", "", "Narration language code (overrides config)")

	return cmd
}

func defaultOutputName(docPath string) string {
	base := filepath.Base(docPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.ReplaceAll(base, " ", "_") + ".mp4"
}

// runConvert wires the collaborators and drives one conversion. Shared by
// the convert command and watch mode.
func runConvert(ctx context.Context, cfg *config.Config, log logger.Logger, docPath, output string, rng document.PageRange) error {
	exec := executor.New()
	enc := media.NewEncoder(cfg, exec, log)
	synth := tts.New(cfg, exec, log)
	bg := media.NewBackgroundProvider(cfg, enc, log)

	var polisher narration.Polisher
	if cfg.Narration.Polish {
		if key := os.Getenv("GEMINI_API_KEY"); key != "" {
			polisher = narration.NewPolisher(key, cfg.Narration.Model, log)
		} else {
			log.Warn(ctx, "narration.polish enabled but GEMINI_API_KEY is not set, skipping polish")
		}
	}

	orch := pipeline.New(cfg, document.Open, synth, enc, bg, polisher, log)

	log.Info(ctx, "Starting conversion of %s to %s", docPath, output)
	report, err := orch.Run(ctx, docPath, output, rng)
	if report != nil && len(report.Results) > 0 {
		fmt.Println(renderSummary(report))
	}
	if err != nil {
		if report != nil {
			// The expensive per-page work survives for the next attempt.
			log.Info(ctx, "Intermediate files kept in %s", report.WorkDir)
		} else {
			// Setup failed before any page work; nothing worth keeping.
			_ = os.RemoveAll(pipeline.NewLayout(cfg.Paths.WorkDir, docPath).Dir)
		}
		return err
	}

	if cfg.Transcript.Enabled {
		transcriptPath := strings.TrimSuffix(output, filepath.Ext(output)) + "_transcript.docx"
		if err := pipeline.WriteTranscript(filepath.Base(docPath), report.Results, transcriptPath); err != nil {
			log.Warn(ctx, "Failed to write transcript: %v", err)
		} else {
			log.Info(ctx, "Transcript written to %s", transcriptPath)
		}
	}

	if err := os.RemoveAll(report.WorkDir); err != nil {
		log.Warn(ctx, "Failed to clean up %s: %v", report.WorkDir, err)
	} else {
		log.Info(ctx, "Temporary files cleaned up")
	}

	if failed := report.Failed(); len(failed) > 0 {
		log.Warn(ctx, "Conversion completed with %d failed pages", len(failed))
	}

	absOutput, err := filepath.Abs(output)
	if err != nil {
		absOutput = output
	}
	log.Info(ctx, "Final video created successfully at: %s (%.1fs)", absOutput, report.OutputDuration)
	return nil
}
