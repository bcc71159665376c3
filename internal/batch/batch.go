// Package batch verifies many images in one run: file discovery over
// directories and globs, a worker pool over the verification pipeline, and
// aggregate reporting.
package batch

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/sujinee01/Image-Verification-Automation-System/internal/extract"
	"github.com/sujinee01/Image-Verification-Automation-System/internal/pipeline"
)

// Config holds batch run settings.
type Config struct {
	Recursive       bool
	IncludePatterns []string
	ExcludePatterns []string
	Workers         int
	Pipeline        pipeline.Config
	// Engine overrides the configured OCR engine when set. Used by tests.
	Engine extract.Engine
}

// DefaultConfig returns batch settings with one worker per CPU.
func DefaultConfig() Config {
	return Config{
		Workers:  runtime.NumCPU(),
		Pipeline: pipeline.DefaultConfig(),
	}
}

// ItemResult is the outcome for one discovered file. Exactly one of Result
// and Err is set.
type ItemResult struct {
	Path   string           `json:"path" yaml:"path"`
	Result *pipeline.Result `json:"result,omitempty" yaml:"result,omitempty"`
	Err    string           `json:"error,omitempty" yaml:"error,omitempty"`
}

// Result aggregates a full batch run.
type Result struct {
	Items       []ItemResult  `json:"items" yaml:"items"`
	Duration    time.Duration `json:"duration_ns" yaml:"duration_ns"`
	WorkerCount int           `json:"workers" yaml:"workers"`
	Valid       int           `json:"valid" yaml:"valid"`
	Invalid     int           `json:"invalid" yaml:"invalid"`
	Failed      int           `json:"failed" yaml:"failed"`
}

// Run discovers image files under the given paths and verifies them
// concurrently. Per-file failures are recorded in the result rather than
// aborting the run; Run itself fails only when no files are found or the
// pipeline cannot be built.
func Run(ctx context.Context, paths []string, cfg Config) (*Result, error) {
	files, err := discoverImageFiles(paths, cfg.Recursive, cfg.IncludePatterns, cfg.ExcludePatterns)
	if err != nil {
		return nil, fmt.Errorf("failed to discover image files: %w", err)
	}
	if len(files) == 0 {
		return nil, errors.New("no image files found")
	}

	b := pipeline.NewBuilder().
		WithLanguage(cfg.Pipeline.Extract.Language).
		WithTessdataPrefix(cfg.Pipeline.Extract.TessdataPrefix).
		WithThreshold(cfg.Pipeline.Preprocess.BlockSize, cfg.Pipeline.Preprocess.Constant).
		WithMinLines(cfg.Pipeline.MinLines).
		WithDictionaryPaths(cfg.Pipeline.DictionaryPaths)
	if cfg.Engine != nil {
		b = b.WithEngine(cfg.Engine)
	}
	pl, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build verification pipeline: %w", err)
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(files) {
		workers = len(files)
	}

	start := time.Now()
	items := processFilesParallel(ctx, pl, files, workers)

	res := &Result{
		Items:       items,
		Duration:    time.Since(start),
		WorkerCount: workers,
	}
	for _, item := range items {
		switch {
		case item.Err != "":
			res.Failed++
		case item.Result.Report.IsValid:
			res.Valid++
		default:
			res.Invalid++
		}
	}
	return res, nil
}

// processFilesParallel fans the file list out over a fixed worker pool.
// Results keep the discovery order.
func processFilesParallel(ctx context.Context, pl *pipeline.Pipeline, files []string, workers int) []ItemResult {
	items := make([]ItemResult, len(files))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				items[i] = verifyOne(ctx, pl, files[i])
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return items
}

func verifyOne(ctx context.Context, pl *pipeline.Pipeline, path string) ItemResult {
	item := ItemResult{Path: path}
	if err := ctx.Err(); err != nil {
		item.Err = err.Error()
		return item
	}
	res, err := pl.VerifyFile(ctx, path)
	if err != nil {
		item.Err = err.Error()
		return item
	}
	item.Result = res
	return item
}
