package extract

import (
	"context"
	"fmt"
	"image"
)

// EngineError indicates the OCR engine itself could not run, as opposed to the
// engine running and recognizing nothing.
type EngineError struct {
	Engine string
	Err    error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("ocr engine %s failed: %v", e.Engine, e.Err)
}

func (e *EngineError) Unwrap() error { return e.Err }

// Engine is the OCR provider contract: one preprocessed image in, raw text out.
// An empty string is a valid result; engines must not fail on low-confidence
// recognition.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, img image.Image) (string, error)
}

// Config holds OCR engine settings.
type Config struct {
	// Language selects the alphabet/script set the engine expects,
	// as a Tesseract language code ("eng", "deu", ...).
	Language string
	// TessdataPrefix overrides the trained-data search path when the
	// engine's data is not in the default location.
	TessdataPrefix string
}

// DefaultConfig returns default OCR settings.
func DefaultConfig() Config {
	return Config{Language: "eng"}
}
