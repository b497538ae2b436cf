package port

import (
	"context"

	"resumelens/internal/domain"
)

// TextExtractor abstracts byte-to-text extraction for one supported upload
// format. Implementations read the file at path and return its plain text.
// Extractors are treated as untrusted: any failure is normalized by the
// caller before reaching a client.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (string, error)
}

// ExtractorFactory resolves the extractor for a file kind.
type ExtractorFactory interface {
	ForKind(kind domain.FileKind) (TextExtractor, error)
}
