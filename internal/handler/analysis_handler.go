package handler

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"resumeiq/internal/domain"
	"resumeiq/internal/service"
)

// AnalysisHandler handles the resume analysis endpoints.
type AnalysisHandler struct {
	analysisService service.AnalysisService
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(analysisService service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService}
}

// readUpload pulls the multipart "file" field into an UploadedDocument.
// Returns false if an error response was already written.
func readUpload(c *gin.Context) (*domain.UploadedDocument, bool) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		HandleError(c, domain.ErrMissingFile)
		return nil, false
	}
	defer func() { _ = file.Close() }()

	raw, err := io.ReadAll(file)
	if err != nil {
		HandleError(c, err)
		return nil, false
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(header.Filename), "."))
	return &domain.UploadedDocument{
		Filename: header.Filename,
		Format:   domain.FormatFromExtension(ext),
		Size:     header.Size,
		Raw:      raw,
	}, true
}

// UploadResume handles POST /upload_resume
// @Summary Analyze an uploaded resume
// @Description Runs the 5-category review and project-quality analysis over a PDF or DOCX resume
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Resume (PDF or DOCX)"
// @Success 200 {object} service.ReviewAnalysis
// @Failure 400 {object} ErrorResponse "Unsupported format or unreadable document"
// @Router /upload_resume [post]
func (h *AnalysisHandler) UploadResume(c *gin.Context) {
	doc, ok := readUpload(c)
	if !ok {
		return
	}

	result, err := h.analysisService.ReviewResume(c.Request.Context(), doc)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// PredictJobRole handles POST /predict_job_role
// @Summary Predict the candidate's job role
// @Description Merges the local ML classifier's prediction with Gemini's suitability judgment
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Resume (PDF or DOCX, max 5MB)"
// @Success 200 {object} service.RolePredictionResult
// @Failure 400 {object} ErrorResponse "Unsupported format or oversize upload"
// @Failure 503 {object} ErrorResponse "Classifier bundle unavailable"
// @Router /predict_job_role [post]
func (h *AnalysisHandler) PredictJobRole(c *gin.Context) {
	if !h.analysisService.ClassifierAvailable() {
		HandleError(c, domain.ErrClassifierUnavailable)
		return
	}

	doc, ok := readUpload(c)
	if !ok {
		return
	}

	result, err := h.analysisService.PredictJobRole(c.Request.Context(), doc)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// AnalyzeSkills handles POST /analyze_skills
// @Summary Extract a skills inventory from a resume
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Resume (PDF or DOCX)"
// @Success 200 {object} map[string]any
// @Failure 400 {object} ErrorResponse "Unsupported format or unreadable document"
// @Router /analyze_skills [post]
func (h *AnalysisHandler) AnalyzeSkills(c *gin.Context) {
	doc, ok := readUpload(c)
	if !ok {
		return
	}

	result, err := h.analysisService.AnalyzeSkills(c.Request.Context(), doc)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
