package extract

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// PlainExtractor reads plain-text uploads as UTF-8.
type PlainExtractor struct{}

// NewPlainExtractor creates a new PlainExtractor.
func NewPlainExtractor() *PlainExtractor {
	return &PlainExtractor{}
}

// Extract reads the file at path and returns its contents with any invalid
// UTF-8 sequences dropped.
func (e *PlainExtractor) Extract(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading text file: %w", err)
	}
	return strings.ToValidUTF8(string(data), ""), nil
}
