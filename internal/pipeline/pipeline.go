// Package pipeline wires preprocessing, OCR extraction and text validation
// into a single verification run.
package pipeline

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/sujinee01/Image-Verification-Automation-System/internal/common"
	"github.com/sujinee01/Image-Verification-Automation-System/internal/extract"
	"github.com/sujinee01/Image-Verification-Automation-System/internal/preprocess"
	"github.com/sujinee01/Image-Verification-Automation-System/internal/validate"
)

// Config holds configuration for the verification pipeline and its stages.
type Config struct {
	Preprocess      preprocess.Config
	Extract         extract.Config
	MinLines        int
	DictionaryPaths []string
}

// DefaultConfig returns a default pipeline config with stage defaults.
func DefaultConfig() Config {
	return Config{
		Preprocess: preprocess.DefaultConfig(),
		Extract:    extract.DefaultConfig(),
		MinLines:   validate.DefaultMinLines,
	}
}

// Builder constructs a Pipeline with fluent configuration.
type Builder struct {
	cfg    Config
	engine extract.Engine
}

// NewBuilder creates a new pipeline builder with defaults.
func NewBuilder() *Builder { return &Builder{cfg: DefaultConfig()} }

// WithLanguage sets the OCR language code.
func (b *Builder) WithLanguage(lang string) *Builder {
	if lang != "" {
		b.cfg.Extract.Language = lang
	}
	return b
}

// WithTessdataPrefix overrides the Tesseract trained-data location.
func (b *Builder) WithTessdataPrefix(prefix string) *Builder {
	if prefix != "" {
		b.cfg.Extract.TessdataPrefix = prefix
	}
	return b
}

// WithThreshold sets the adaptive threshold block size and constant offset.
func (b *Builder) WithThreshold(blockSize int, constant float64) *Builder {
	if blockSize > 0 {
		b.cfg.Preprocess.BlockSize = blockSize
	}
	b.cfg.Preprocess.Constant = constant
	return b
}

// WithMinLines overrides the minimum non-blank line count policy.
func (b *Builder) WithMinLines(n int) *Builder {
	if n >= 0 {
		b.cfg.MinLines = n
	}
	return b
}

// WithDictionaryPaths adds extra word-list files merged into the built-in
// dictionary.
func (b *Builder) WithDictionaryPaths(paths []string) *Builder {
	cleaned := make([]string, 0, len(paths))
	for _, p := range paths {
		if p != "" {
			cleaned = append(cleaned, p)
		}
	}
	b.cfg.DictionaryPaths = cleaned
	return b
}

// WithEngine replaces the OCR engine. Intended for tests and alternative
// providers.
func (b *Builder) WithEngine(e extract.Engine) *Builder {
	b.engine = e
	return b
}

// Build validates the configuration and assembles the pipeline.
func (b *Builder) Build() (*Pipeline, error) {
	if err := b.cfg.Preprocess.Validate(); err != nil {
		return nil, fmt.Errorf("invalid preprocess config: %w", err)
	}
	dict, err := validate.LoadWordLists(b.cfg.DictionaryPaths)
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}
	engine := b.engine
	if engine == nil {
		engine = extract.NewTesseractEngine(b.cfg.Extract)
	}
	return &Pipeline{
		cfg:       b.cfg,
		engine:    engine,
		validator: validate.New(validate.WithDictionary(dict), validate.WithMinLines(b.cfg.MinLines)),
	}, nil
}

// Pipeline runs preprocess, extract and validate in sequence. A Pipeline is
// stateless between runs and safe to reuse.
type Pipeline struct {
	cfg       Config
	engine    extract.Engine
	validator *validate.Validator
}

// Result captures one verification run.
type Result struct {
	Path       string          `json:"path,omitempty" yaml:"path,omitempty"`
	Width      int             `json:"width" yaml:"width"`
	Height     int             `json:"height" yaml:"height"`
	Text       string          `json:"text" yaml:"text"`
	Report     validate.Report          `json:"report" yaml:"report"`
	Processing time.Duration            `json:"processing_ns" yaml:"processing_ns"`
	Stages     map[string]time.Duration `json:"stages_ns,omitempty" yaml:"stages_ns,omitempty"`
}

// VerifyFile loads and preprocesses the image at path, extracts its text and
// validates it. Infrastructure failures (missing file, engine breakage)
// return an error; a failed validation is a normal result.
func (p *Pipeline) VerifyFile(ctx context.Context, path string) (*Result, error) {
	clock := common.NewStageClock()
	bin, meta, err := preprocess.Run(path, p.cfg.Preprocess)
	if err != nil {
		return nil, err
	}
	clock.Mark("preprocess")
	res, err := p.verify(ctx, bin, clock)
	if err != nil {
		return nil, err
	}
	res.Path = meta.Path
	return res, nil
}

// VerifyImage runs the pipeline on an already-decoded image.
func (p *Pipeline) VerifyImage(ctx context.Context, img image.Image) (*Result, error) {
	clock := common.NewStageClock()
	gray := preprocess.Grayscale(img)
	bin := preprocess.AdaptiveThreshold(gray, p.cfg.Preprocess.BlockSize, p.cfg.Preprocess.Constant)
	clock.Mark("preprocess")
	return p.verify(ctx, bin, clock)
}

func (p *Pipeline) verify(ctx context.Context, bin *image.Gray, clock *common.StageClock) (*Result, error) {
	text, err := p.engine.Recognize(ctx, bin)
	if err != nil {
		return nil, err
	}
	clock.Mark("extract")
	report := p.validator.Validate(text)
	clock.Mark("validate")

	b := bin.Bounds()
	return &Result{
		Width:      b.Dx(),
		Height:     b.Dy(),
		Text:       text,
		Report:     report,
		Processing: clock.Total(),
		Stages:     clock.Map(),
	}, nil
}
