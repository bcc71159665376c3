package extract

import (
	"context"
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineError(t *testing.T) {
	cause := errors.New("binary not found")
	err := &EngineError{Engine: "tesseract", Err: cause}

	assert.Contains(t, err.Error(), "tesseract")
	assert.Contains(t, err.Error(), "binary not found")
	assert.ErrorIs(t, err, cause)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "eng", cfg.Language)
	assert.Empty(t, cfg.TessdataPrefix)
}

func TestStaticEngine_ReturnsText(t *testing.T) {
	e := &StaticEngine{Text: "Hello world."}
	img := image.NewGray(image.Rect(0, 0, 4, 4))

	got, err := e.Recognize(context.Background(), img)
	require.NoError(t, err)
	assert.Equal(t, "Hello world.", got)
}

func TestStaticEngine_EmptyTextIsNotAnError(t *testing.T) {
	e := &StaticEngine{}
	got, err := e.Recognize(context.Background(), image.NewGray(image.Rect(0, 0, 1, 1)))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStaticEngine_WrapsFailureAsEngineError(t *testing.T) {
	cause := errors.New("engine exploded")
	e := &StaticEngine{Err: cause}

	_, err := e.Recognize(context.Background(), image.NewGray(image.Rect(0, 0, 1, 1)))
	require.Error(t, err)

	var engineErr *EngineError
	require.ErrorAs(t, err, &engineErr)
	assert.Equal(t, "static", engineErr.Engine)
	assert.ErrorIs(t, err, cause)
}

func TestStaticEngine_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := &StaticEngine{Text: "ignored"}
	_, err := e.Recognize(ctx, image.NewGray(image.Rect(0, 0, 1, 1)))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewTesseractEngine_Defaults(t *testing.T) {
	e := NewTesseractEngine(Config{})
	assert.Equal(t, "tesseract", e.Name())
	assert.Equal(t, "eng", e.cfg.Language)
}
