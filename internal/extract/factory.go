// Package extract provides text extractors for the supported upload formats.
package extract

import (
	"fmt"

	"resumelens/internal/domain"
	"resumelens/internal/port"
)

// Factory resolves a TextExtractor for a file kind. Extractors are stateless,
// so one instance of each is shared.
type Factory struct {
	extractors map[domain.FileKind]port.TextExtractor
}

// NewFactory creates a Factory with the default extractor per supported kind.
func NewFactory() *Factory {
	return &Factory{
		extractors: map[domain.FileKind]port.TextExtractor{
			domain.FileKindPDF:   NewPDFExtractor(),
			domain.FileKindPlain: NewPlainExtractor(),
		},
	}
}

// ForKind returns the extractor registered for kind.
func (f *Factory) ForKind(kind domain.FileKind) (port.TextExtractor, error) {
	extractor, ok := f.extractors[kind]
	if !ok {
		return nil, fmt.Errorf("no extractor registered for file kind %q", kind)
	}
	return extractor, nil
}
