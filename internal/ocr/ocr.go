package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"github.com/cosumar-digital/docextract/internal/common"
)

type Config struct {
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "fra+eng"
	DPI           int    // rasterization DPI for scanned documents, default 300
	MaxPages      int    // 0 = no limit

	TessdataDir string
}

// Extractor shells out to poppler and tesseract through a Runner. It holds no
// mutable state between calls, so one instance is safe to share; the scoped
// resources (temp rasterization dirs) belong to the returned PageSet.
type Extractor struct {
	cfg    Config
	runner Runner
	logger *zap.Logger
}

func NewExtractor(cfg Config, logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "fra+eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	return &Extractor{cfg: cfg, runner: execRunner{logger: logger}, logger: logger}
}

// NewExtractorWithRunner is for tests.
func NewExtractorWithRunner(cfg Config, r Runner, logger *zap.Logger) *Extractor {
	e := NewExtractor(cfg, logger)
	e.runner = r
	return e
}

// PageSet is the rasterized form of one input document: one PNG per page, in
// page order. Close removes the backing temp directory.
type PageSet struct {
	dir    string
	Images []string
}

func (s *PageSet) Close() {
	if s.dir != "" {
		_ = os.RemoveAll(s.dir)
	}
}

// Rasterize turns raw document bytes into a PageSet. A PDF is rendered to one
// PNG per page at the configured DPI; an image becomes a single-page set.
// Failure here is structural: the caller gets common.ErrUnreadableDocument.
func (e *Extractor) Rasterize(ctx context.Context, data []byte, format string) (*PageSet, error) {
	tmpDir, err := os.MkdirTemp("", "dx-pages-*")
	if err != nil {
		return nil, err
	}
	set := &PageSet{dir: tmpDir}

	switch format {
	case "PDF":
		in := filepath.Join(tmpDir, "input.pdf")
		if err := os.WriteFile(in, data, 0o600); err != nil {
			set.Close()
			return nil, err
		}
		prefix := filepath.Join(tmpDir, "page")
		// pdftoppm -r 300 -png <in.pdf> <tmp/page>
		_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", in, prefix)
		if err != nil {
			e.logger.Error("pdf rasterization failed", zap.Error(err), zap.String("stderr", truncate(string(errb), 2<<10)))
			set.Close()
			return nil, fmt.Errorf("rasterize pdf: %w", common.ErrUnreadableDocument)
		}
		// collect generated pngs (prefix-1.png, prefix-2.png, ...)
		matches, _ := filepath.Glob(prefix + "-*.png")
		sort.Strings(matches)
		if e.cfg.MaxPages > 0 && len(matches) > e.cfg.MaxPages {
			matches = matches[:e.cfg.MaxPages]
		}
		if len(matches) == 0 {
			set.Close()
			return nil, fmt.Errorf("pdftoppm produced no images: %w", common.ErrUnreadableDocument)
		}
		set.Images = matches
	case "IMAGE":
		in := filepath.Join(tmpDir, "page-1.png")
		if err := os.WriteFile(in, data, 0o600); err != nil {
			set.Close()
			return nil, err
		}
		set.Images = []string{in}
	default:
		set.Close()
		return nil, fmt.Errorf("unsupported format %q: %w", format, common.ErrUnreadableDocument)
	}
	return set, nil
}
