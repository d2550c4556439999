package extract

import "context"

// Recognizer is the OCR capability: one page image -> recognized lines in
// detection order.
type Recognizer interface {
	RecognizeFile(ctx context.Context, path string) ([]string, error)
}

// LanguageDetector classifies a block of text. Implementations return
// ("unknown", nil) rather than an error when classification is inconclusive.
type LanguageDetector interface {
	Detect(text string) (string, error)
}

// Translator is the translation capability. May fail per call; callers
// translating line-by-line must catch and keep the original line.
type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// Entity is one named-entity span with its label (e.g. "PERSON").
type Entity struct {
	Text  string
	Label string
}

// EntityRecognizer is the optional NER capability used for name resolution.
type EntityRecognizer interface {
	Entities(text string) ([]Entity, error)
}
