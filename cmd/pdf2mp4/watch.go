package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kuraken88/pdf2mp4/internal/document"
	"github.com/kuraken88/pdf2mp4/internal/logger"
	"github.com/kuraken88/pdf2mp4/internal/watcher"
)

func newWatchCommand(configFlag *string) *cobra.Command {
	var (
		input  string
		outDir string
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Convert every PDF dropped into the input directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configFlag)
			if err != nil {
				return err
			}
			if input != "" {
				cfg.Paths.Input = input
			}
			if outDir != "" {
				cfg.Paths.Output = outDir
			}
			if cfg.Paths.Input == "" {
				return errors.New("watch mode needs an input directory (--input or paths.input)")
			}
			if cfg.Paths.Output == "" {
				cfg.Paths.Output = "."
			}

			log := logger.New(cfg.Logging.Level)
			ctx := cmd.Context()

			for _, dir := range []string{cfg.Paths.Input, cfg.Paths.Output} {
				if err := os.MkdirAll(dir, 0755); err != nil {
					return fmt.Errorf("create directory %s: %w", dir, err)
				}
			}

			handler := func(ctx context.Context, docPath string) error {
				base := filepath.Base(docPath)
				base = strings.TrimSuffix(base, filepath.Ext(base))
				output := filepath.Join(cfg.Paths.Output, strings.ReplaceAll(base, " ", "_")+".mp4")
				return runConvert(ctx, cfg, log, docPath, output, document.PageRange{})
			}

			w, err := watcher.New(cfg.Paths.Input, handler, log, cfg.Performance.MaxConcurrent)
			if err != nil {
				return fmt.Errorf("create watcher: %w", err)
			}
			defer w.Stop()

			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

			errChan := make(chan error, 1)
			go func() {
				if err := w.Start(ctx); err != nil && err != context.Canceled {
					errChan <- err
				}
			}()

			log.Info(ctx, "Watching %s, writing videos to %s (max concurrent: %d)",
				cfg.Paths.Input, cfg.Paths.Output, cfg.Performance.MaxConcurrent)
			log.Info(ctx, "Press Ctrl+C to stop")

			select {
			case <-sigChan:
				log.Info(ctx, "Shutdown signal received")
			case err := <-errChan:
				return fmt.Errorf("watcher: %w", err)
			}

			cancel()
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Directory to watch for PDFs")
	cmd.Flags().StringVarP(&outDir, "out-dir", "d", "", "Directory for finished videos")

	return cmd
}
