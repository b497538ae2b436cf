package extract_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumelens/internal/domain"
	"resumelens/internal/extract"
)

func TestFactory_ForKind(t *testing.T) {
	factory := extract.NewFactory()

	pdfExtractor, err := factory.ForKind(domain.FileKindPDF)
	require.NoError(t, err)
	assert.IsType(t, &extract.PDFExtractor{}, pdfExtractor)

	plainExtractor, err := factory.ForKind(domain.FileKindPlain)
	require.NoError(t, err)
	assert.IsType(t, &extract.PlainExtractor{}, plainExtractor)

	_, err = factory.ForKind(domain.FileKind("docx"))
	assert.Error(t, err)
}

func TestPlainExtractor_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("go and sql experience"), 0o600))

	text, err := extract.NewPlainExtractor().Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "go and sql experience", text)
}

func TestPlainExtractor_DropsInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte{'o', 'k', 0xff, 0xfe, '!'}, 0o600))

	text, err := extract.NewPlainExtractor().Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "ok!", text)
}

func TestPlainExtractor_MissingFile(t *testing.T) {
	_, err := extract.NewPlainExtractor().Extract(context.Background(), filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestPDFExtractor_RejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("this is not a pdf at all"), 0o600))

	_, err := extract.NewPDFExtractor().Extract(context.Background(), path)
	assert.Error(t, err)
}
