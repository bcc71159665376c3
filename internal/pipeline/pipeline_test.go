package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sujinee01/Image-Verification-Automation-System/internal/extract"
	"github.com/sujinee01/Image-Verification-Automation-System/internal/preprocess"
	"github.com/sujinee01/Image-Verification-Automation-System/internal/testutil"
)

func buildTestPipeline(t *testing.T, engine extract.Engine) *Pipeline {
	t.Helper()
	pl, err := NewBuilder().WithEngine(engine).Build()
	require.NoError(t, err)
	return pl
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 11, cfg.Preprocess.BlockSize)
	assert.InDelta(t, 2.0, cfg.Preprocess.Constant, 1e-9)
	assert.Equal(t, "eng", cfg.Extract.Language)
	assert.Equal(t, 3, cfg.MinLines)
}

func TestBuilder_InvalidBlockSize(t *testing.T) {
	_, err := NewBuilder().WithThreshold(4, 2).Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "block size")
}

func TestBuilder_MissingDictionaryFile(t *testing.T) {
	_, err := NewBuilder().WithDictionaryPaths([]string{"missing_words.txt"}).Build()
	require.Error(t, err)
}

func TestBuilder_Options(t *testing.T) {
	b := NewBuilder().
		WithLanguage("deu").
		WithTessdataPrefix("/opt/tessdata").
		WithThreshold(15, 3).
		WithMinLines(5)
	assert.Equal(t, "deu", b.cfg.Extract.Language)
	assert.Equal(t, "/opt/tessdata", b.cfg.Extract.TessdataPrefix)
	assert.Equal(t, 15, b.cfg.Preprocess.BlockSize)
	assert.Equal(t, 5, b.cfg.MinLines)

	// Empty values leave defaults intact.
	b = NewBuilder().WithLanguage("").WithThreshold(0, 2).WithMinLines(-1)
	assert.Equal(t, "eng", b.cfg.Extract.Language)
	assert.Equal(t, 11, b.cfg.Preprocess.BlockSize)
	assert.Equal(t, 3, b.cfg.MinLines)
}

func TestVerifyFile_EndToEnd(t *testing.T) {
	img := testutil.GenerateTextImage(testutil.DefaultTextImageConfig())
	path := testutil.WriteTempPNG(t, img)

	engine := &extract.StaticEngine{Text: "Helo wrld.\nThis is fine.\nEnd"}
	pl := buildTestPipeline(t, engine)

	res, err := pl.VerifyFile(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, path, res.Path)
	assert.Equal(t, testutil.MediumSize.Width, res.Width)
	assert.Equal(t, testutil.MediumSize.Height, res.Height)
	assert.Equal(t, "Helo wrld.\nThis is fine.\nEnd", res.Text)

	assert.Subset(t, res.Report.MisspelledWords, []string{"helo", "wrld"})
	assert.Equal(t, 3, res.Report.LineCount)
	require.Len(t, res.Report.Errors, 1)
	assert.False(t, res.Report.IsValid)
	assert.Positive(t, res.Processing)
	for _, stage := range []string{"preprocess", "extract", "validate"} {
		assert.Contains(t, res.Stages, stage)
	}
}

func TestVerifyFile_MissingFile(t *testing.T) {
	pl := buildTestPipeline(t, &extract.StaticEngine{Text: "ignored"})

	res, err := pl.VerifyFile(context.Background(), "does_not_exist.png")
	require.Error(t, err)
	assert.Nil(t, res)

	var nfe *preprocess.NotFoundError
	require.ErrorAs(t, err, &nfe)
	assert.Equal(t, "does_not_exist.png", nfe.Path)
}

func TestVerifyFile_EngineFailure(t *testing.T) {
	img := testutil.GenerateTextImage(testutil.DefaultTextImageConfig())
	path := testutil.WriteTempPNG(t, img)

	pl := buildTestPipeline(t, &extract.StaticEngine{Err: errors.New("tesseract missing")})

	_, err := pl.VerifyFile(context.Background(), path)
	require.Error(t, err)

	var engineErr *extract.EngineError
	require.ErrorAs(t, err, &engineErr)
}

func TestVerifyImage_ValidDocument(t *testing.T) {
	img := testutil.GenerateTextImage(testutil.DefaultTextImageConfig())

	engine := &extract.StaticEngine{Text: "All text is good.\nEvery line is fine.\nNothing is wrong here."}
	pl := buildTestPipeline(t, engine)

	res, err := pl.VerifyImage(context.Background(), img)
	require.NoError(t, err)
	assert.True(t, res.Report.IsValid)
	assert.Empty(t, res.Report.Errors)
	assert.Empty(t, res.Path)
}

func TestVerifyImage_EmptyRecognition(t *testing.T) {
	img := testutil.GenerateTextImage(testutil.DefaultTextImageConfig())
	pl := buildTestPipeline(t, &extract.StaticEngine{Text: ""})

	res, err := pl.VerifyImage(context.Background(), img)
	require.NoError(t, err, "empty recognition is not an engine failure")
	assert.Equal(t, 0, res.Report.LineCount)
	assert.False(t, res.Report.IsValid)
}

func TestPipeline_StatelessAcrossRuns(t *testing.T) {
	img := testutil.GenerateTextImage(testutil.DefaultTextImageConfig())
	pl := buildTestPipeline(t, &extract.StaticEngine{Text: "one  two"})

	first, err := pl.VerifyImage(context.Background(), img)
	require.NoError(t, err)
	second, err := pl.VerifyImage(context.Background(), img)
	require.NoError(t, err)

	assert.Equal(t, first.Report, second.Report)
}
