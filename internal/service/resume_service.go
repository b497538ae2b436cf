package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"resumelens/internal/analysis"
	"resumelens/internal/config"
	"resumelens/internal/domain"
	"resumelens/internal/port"
	"resumelens/internal/storage/temp"
)

// AnalyzeInput is the DTO for one resume upload.
type AnalyzeInput struct {
	Filename    string
	ContentType string
	Size        int64 // declared by the transport layer
	Reader      io.Reader
	Catalog     []string // optional; empty means the built-in catalog
}

// ResumeService turns one uploaded resume into an analysis result while
// enforcing the ingestion resource bounds.
type ResumeService interface {
	Analyze(ctx context.Context, input AnalyzeInput) (*domain.AnalysisResult, error)
}

type resumeService struct {
	store      *temp.Store
	extractors port.ExtractorFactory
	cfg        *config.UploadConfig
	log        *zap.Logger
}

// NewResumeService creates a new ResumeService implementation.
func NewResumeService(
	store *temp.Store,
	extractors port.ExtractorFactory,
	cfg *config.UploadConfig,
	log *zap.Logger,
) ResumeService {
	return &resumeService{
		store:      store,
		extractors: extractors,
		cfg:        cfg,
		log:        log,
	}
}

func (s *resumeService) Analyze(ctx context.Context, input AnalyzeInput) (*domain.AnalysisResult, error) {
	// Resolve the file kind before reading a single byte.
	kind, err := resolveKind(input.ContentType, input.Filename)
	if err != nil {
		return nil, err
	}

	// Declared-size check. The transport cap and the on-disk cap below each
	// stand on their own; a misconfigured earlier layer must not open a hole.
	maxBytes := s.cfg.MaxUploadBytes()
	if input.Size > maxBytes {
		return nil, domain.ErrPayloadTooLarge
	}

	tmp, err := s.store.Save(input.Reader, maxBytes)
	if err != nil {
		if errors.Is(err, domain.ErrPayloadTooLarge) {
			return nil, domain.ErrPayloadTooLarge
		}
		return nil, fmt.Errorf("saving upload: %w", err)
	}
	defer tmp.Remove()

	if tmp.Size > maxBytes {
		return nil, domain.ErrPayloadTooLarge
	}

	extractor, err := s.extractors.ForKind(kind)
	if err != nil {
		return nil, fmt.Errorf("resolving extractor: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.ProcessTimeout)
	defer cancel()

	text, err := s.runExtraction(ctx, extractor, tmp.Path)
	if err != nil {
		return nil, err
	}

	if len(text) > s.cfg.MaxTextChars {
		return nil, domain.ErrContentTooLarge
	}
	if len(strings.TrimSpace(text)) < s.cfg.MinTextChars {
		return nil, domain.ErrInsufficientContent
	}

	catalog := input.Catalog
	if len(catalog) == 0 {
		catalog = analysis.DefaultCatalog()
	}

	result, err := s.runAnalysis(ctx, text, catalog)
	if err != nil {
		return nil, err
	}

	s.log.Info("resume analyzed",
		zap.String("kind", string(kind)),
		zap.Int64("upload_bytes", tmp.Size),
		zap.Int("text_chars", len(text)),
		zap.Int("ats_score", result.ATSScore),
	)
	return result, nil
}

type extractionResult struct {
	text string
	err  error
}

// runExtraction races the extractor against the context deadline. If the
// deadline wins, the in-flight extraction is abandoned; the buffered channel
// lets its goroutine finish without leaking.
func (s *resumeService) runExtraction(ctx context.Context, extractor port.TextExtractor, path string) (string, error) {
	resultCh := make(chan extractionResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				resultCh <- extractionResult{err: fmt.Errorf("extractor panicked: %v", r)}
			}
		}()
		text, err := extractor.Extract(ctx, path)
		resultCh <- extractionResult{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		s.log.Warn("extraction timed out", zap.String("path", path), zap.Duration("deadline", s.cfg.ProcessTimeout))
		return "", domain.ErrTimeout
	case res := <-resultCh:
		if res.err != nil {
			if errors.Is(res.err, context.DeadlineExceeded) || errors.Is(res.err, context.Canceled) {
				return "", domain.ErrTimeout
			}
			// The extractor error may carry internals from a malformed file;
			// log it server-side and report only the category.
			s.log.Warn("extraction failed", zap.String("path", path), zap.Error(res.err))
			return "", domain.ErrExtractionFailed
		}
		return res.text, nil
	}
}

type analysisResult struct {
	result domain.AnalysisResult
	err    error
}

// runAnalysis races the pure scoring call against the same deadline and turns
// any engine panic into ErrAnalysisFailed instead of tearing down the request.
func (s *resumeService) runAnalysis(ctx context.Context, text string, catalog []string) (*domain.AnalysisResult, error) {
	resultCh := make(chan analysisResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				resultCh <- analysisResult{err: fmt.Errorf("analysis panicked: %v", r)}
			}
		}()
		resultCh <- analysisResult{result: analysis.Analyze(text, catalog)}
	}()

	select {
	case <-ctx.Done():
		return nil, domain.ErrTimeout
	case res := <-resultCh:
		if res.err != nil {
			s.log.Error("analysis failed", zap.Error(res.err))
			return nil, domain.ErrAnalysisFailed
		}
		return &res.result, nil
	}
}

// resolveKind matches the declared content type and the filename extension
// case-insensitively; either signal is sufficient.
func resolveKind(contentType, filename string) (domain.FileKind, error) {
	mediaType := strings.ToLower(strings.TrimSpace(contentType))
	if idx := strings.Index(mediaType, ";"); idx >= 0 {
		mediaType = strings.TrimSpace(mediaType[:idx])
	}
	if kind, ok := domain.AllowedContentTypes[mediaType]; ok {
		return kind, nil
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if kind, ok := domain.AllowedExtensions[ext]; ok {
		return kind, nil
	}

	return "", domain.ErrUnsupportedType
}
