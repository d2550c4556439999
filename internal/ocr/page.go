package ocr

import (
	"context"
	"fmt"
	"strings"
)

// RecognizeFile OCRs a single page image and returns the recognized lines in
// detection order. Empty lines are dropped; nothing is merged into paragraphs.
func (e *Extractor) RecognizeFile(ctx context.Context, path string) ([]string, error) {
	args := []string{path, "stdout", "-l", e.cfg.TesseractLang}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}

	// tesseract <file> stdout -l <lang>
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return nil, fmt.Errorf("tesseract: %w (%s)", err, truncate(string(errb), 512))
	}
	return SplitLines(Normalize(string(out))), nil
}

// SplitLines breaks normalized OCR output into trimmed, non-empty lines.
func SplitLines(s string) []string {
	var lines []string
	for _, l := range strings.Split(s, "\n") {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
