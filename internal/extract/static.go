package extract

import (
	"context"
	"image"
)

// StaticEngine is a deterministic Engine returning a fixed transcription.
// It serves tests and environments where Tesseract is unavailable.
type StaticEngine struct {
	Text string
	Err  error
}

func (e *StaticEngine) Name() string { return "static" }

// Recognize returns the configured text or error, ignoring the image.
func (e *StaticEngine) Recognize(ctx context.Context, _ image.Image) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}
	if e.Err != nil {
		return "", &EngineError{Engine: e.Name(), Err: e.Err}
	}
	return e.Text, nil
}
