package extract

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"

	"github.com/otiai10/gosseract/v2"
)

// TesseractEngine implements Engine using the gosseract client.
type TesseractEngine struct {
	cfg           Config
	clientFactory func() *gosseract.Client
}

// NewTesseractEngine constructs a Tesseract-backed OCR engine.
func NewTesseractEngine(cfg Config) *TesseractEngine {
	if cfg.Language == "" {
		cfg.Language = "eng"
	}
	return &TesseractEngine{cfg: cfg, clientFactory: gosseract.NewClient}
}

func (e *TesseractEngine) Name() string { return "tesseract" }

// Recognize performs OCR on a single image. The image is handed to Tesseract
// as encoded PNG bytes. Whatever the engine produces is returned verbatim,
// including the empty string.
func (e *TesseractEngine) Recognize(ctx context.Context, img image.Image) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", &EngineError{Engine: e.Name(), Err: fmt.Errorf("encode image: %w", err)}
	}

	c := e.clientFactory()
	defer func() { _ = c.Close() }()

	if e.cfg.TessdataPrefix != "" {
		if err := c.SetTessdataPrefix(e.cfg.TessdataPrefix); err != nil {
			return "", &EngineError{Engine: e.Name(), Err: fmt.Errorf("set tessdata prefix: %w", err)}
		}
	}
	if err := c.SetLanguage(e.cfg.Language); err != nil {
		return "", &EngineError{Engine: e.Name(), Err: fmt.Errorf("set language: %w", err)}
	}
	if err := c.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", &EngineError{Engine: e.Name(), Err: fmt.Errorf("set image: %w", err)}
	}

	text, err := c.Text()
	if err != nil {
		return "", &EngineError{Engine: e.Name(), Err: err}
	}
	return text, nil
}
