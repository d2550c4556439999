package ocr

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosumar-digital/docextract/internal/common"
)

// stubRunner replays a canned result and, for pdftoppm calls, drops fake page
// images next to the output prefix the way poppler would.
type stubRunner struct {
	pages  int
	stdout string
	err    error

	calls [][]string
}

func (r *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	r.calls = append(r.calls, append([]string{name}, args...))
	if r.err != nil {
		return nil, []byte("boom"), r.err
	}
	if r.pages > 0 {
		prefix := args[len(args)-1]
		for i := 1; i <= r.pages; i++ {
			if err := os.WriteFile(prefix+"-"+string(rune('0'+i))+".png", []byte("png"), 0o600); err != nil {
				return nil, nil, err
			}
		}
	}
	return []byte(r.stdout), nil, nil
}

func TestRasterize_PDF(t *testing.T) {
	runner := &stubRunner{pages: 3}
	e := NewExtractorWithRunner(Config{}, runner, nil)

	set, err := e.Rasterize(context.Background(), []byte("%PDF-1.4"), "PDF")
	require.NoError(t, err)
	defer set.Close()

	require.Len(t, set.Images, 3)
	assert.Equal(t, "page-1.png", filepath.Base(set.Images[0]))
	assert.Equal(t, "page-3.png", filepath.Base(set.Images[2]))

	require.Len(t, runner.calls, 1)
	assert.Equal(t, "pdftoppm", runner.calls[0][0])
	assert.Contains(t, runner.calls[0], "-r")
	assert.Contains(t, runner.calls[0], "300")
	assert.Contains(t, runner.calls[0], "-png")
}

func TestRasterize_PDFMaxPagesCap(t *testing.T) {
	runner := &stubRunner{pages: 5}
	e := NewExtractorWithRunner(Config{MaxPages: 2}, runner, nil)

	set, err := e.Rasterize(context.Background(), []byte("%PDF-1.4"), "PDF")
	require.NoError(t, err)
	defer set.Close()
	assert.Len(t, set.Images, 2)
}

func TestRasterize_PDFCommandFailure(t *testing.T) {
	runner := &stubRunner{err: errors.New("exit status 1")}
	e := NewExtractorWithRunner(Config{}, runner, nil)

	_, err := e.Rasterize(context.Background(), []byte("not a pdf"), "PDF")
	assert.ErrorIs(t, err, common.ErrUnreadableDocument)
}

func TestRasterize_PDFNoPagesProduced(t *testing.T) {
	e := NewExtractorWithRunner(Config{}, &stubRunner{pages: 0}, nil)

	_, err := e.Rasterize(context.Background(), []byte("%PDF-1.4"), "PDF")
	assert.ErrorIs(t, err, common.ErrUnreadableDocument)
}

func TestRasterize_Image(t *testing.T) {
	e := NewExtractorWithRunner(Config{}, &stubRunner{}, nil)

	set, err := e.Rasterize(context.Background(), []byte("pngbytes"), "IMAGE")
	require.NoError(t, err)

	require.Len(t, set.Images, 1)
	b, err := os.ReadFile(set.Images[0])
	require.NoError(t, err)
	assert.Equal(t, "pngbytes", string(b))

	set.Close()
	_, err = os.Stat(set.Images[0])
	assert.True(t, os.IsNotExist(err))
}

func TestRasterize_UnsupportedFormat(t *testing.T) {
	e := NewExtractorWithRunner(Config{}, &stubRunner{}, nil)

	_, err := e.Rasterize(context.Background(), nil, "DOCX")
	assert.ErrorIs(t, err, common.ErrUnreadableDocument)
}

func TestRecognizeFile(t *testing.T) {
	runner := &stubRunner{stdout: "Ligne une\r\n\r\n\r\n\r\nLigne   deux\t!\n"}
	e := NewExtractorWithRunner(Config{}, runner, nil)

	lines, err := e.RecognizeFile(context.Background(), "page-1.png")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ligne une", "Ligne deux !"}, lines)

	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{"tesseract", "page-1.png", "stdout", "-l", "fra+eng"}, runner.calls[0])
}

func TestRecognizeFile_TessdataDirFlag(t *testing.T) {
	runner := &stubRunner{stdout: "ok"}
	e := NewExtractorWithRunner(Config{TessdataDir: "/opt/tessdata"}, runner, nil)

	_, err := e.RecognizeFile(context.Background(), "p.png")
	require.NoError(t, err)
	assert.Contains(t, runner.calls[0], "--tessdata-dir")
	assert.Contains(t, runner.calls[0], "/opt/tessdata")
}

func TestRecognizeFile_CommandFailure(t *testing.T) {
	e := NewExtractorWithRunner(Config{}, &stubRunner{err: errors.New("exit status 1")}, nil)

	_, err := e.RecognizeFile(context.Background(), "p.png")
	assert.Error(t, err)
}

func TestNormalize(t *testing.T) {
	in := "Nom\tPrénom\r\nAdresse    Rabat\n\n\n\n____\nFin  "
	got := Normalize(in)
	assert.Equal(t, "Nom Prénom\nAdresse Rabat\n\nFin", got)
}

func TestSplitLines(t *testing.T) {
	got := SplitLines("  un  \n\n deux\ntrois ")
	assert.Equal(t, []string{"un", "deux", "trois"}, got)
}

func TestCoerceLine(t *testing.T) {
	assert.Equal(t, "abc", CoerceLine("  abc\xff  "))
	assert.Equal(t, "", CoerceLine("   "))
}
