package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"resumelens/internal/config"
	"resumelens/internal/domain"
	"resumelens/internal/service"
)

// ResumeHandler handles the resume analysis endpoint.
type ResumeHandler struct {
	resumeService service.ResumeService
	cfg           *config.UploadConfig
	log           *zap.Logger
}

// NewResumeHandler creates a new ResumeHandler.
func NewResumeHandler(resumeService service.ResumeService, cfg *config.UploadConfig, log *zap.Logger) *ResumeHandler {
	return &ResumeHandler{resumeService: resumeService, cfg: cfg, log: log}
}

// Analyze handles POST /api/v1/resume/analyze
// @Summary Analyze a resume
// @Description Upload a resume (PDF or plain text) and receive a deterministic ATS-style assessment
// @Tags resume
// @Accept multipart/form-data
// @Produce json
// @Param resume formData file true "Resume file (PDF or TXT)"
// @Param skills formData string false "Comma-separated skill catalog overriding the default"
// @Success 200 {object} APIResponse{data=domain.AnalysisResult} "Analysis result"
// @Failure 400 {object} APIResponse "Missing file or unsupported type"
// @Failure 413 {object} APIResponse "File too large"
// @Failure 422 {object} APIResponse "File could not be analyzed"
// @Failure 504 {object} APIResponse "Processing deadline exceeded"
// @Router /resume/analyze [post]
func (h *ResumeHandler) Analyze(c *gin.Context) {
	// Transport-level size cap. The pipeline re-checks independently.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.cfg.MaxUploadBytes())

	file, header, err := c.Request.FormFile(h.cfg.FormField)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			HandleError(c, h.log, domain.ErrPayloadTooLarge)
			return
		}
		RespondError(c, http.StatusBadRequest, h.cfg.FormField+" file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	input := service.AnalyzeInput{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Reader:      file,
		Catalog:     parseCatalog(c.PostForm("skills")),
	}

	result, err := h.resumeService.Analyze(c.Request.Context(), input)
	if err != nil {
		HandleError(c, h.log, err)
		return
	}

	RespondOK(c, result)
}

// parseCatalog splits a comma-separated skills override into catalog entries.
// An empty value means the default catalog.
func parseCatalog(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var catalog []string
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry != "" {
			catalog = append(catalog, entry)
		}
	}
	return catalog
}
