package domain

import "errors"

var (
	ErrUnsupportedType     = errors.New("unsupported file type")
	ErrPayloadTooLarge     = errors.New("upload exceeds maximum allowed size")
	ErrContentTooLarge     = errors.New("extracted text exceeds maximum allowed length")
	ErrExtractionFailed    = errors.New("text extraction failed")
	ErrInsufficientContent = errors.New("not enough text content to analyze")
	ErrTimeout             = errors.New("processing deadline exceeded")
	ErrAnalysisFailed      = errors.New("resume analysis failed")
)
