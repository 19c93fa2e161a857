package handlers

import (
	"errors"
	"io"
	"net/http"

	"arogyamitra/models"
	"arogyamitra/services/prescription"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PrescriptionHandler exposes the prescription pipeline over HTTP.
type PrescriptionHandler struct {
	Svc prescription.Service
}

// NewPrescriptionHandler creates a new PrescriptionHandler instance.
func NewPrescriptionHandler(svc prescription.Service) *PrescriptionHandler {
	return &PrescriptionHandler{Svc: svc}
}

// AnalyzeHandler accepts a multipart prescription image, runs the pipeline,
// and returns the saved record.
func (h *PrescriptionHandler) AnalyzeHandler(c *gin.Context) {
	logger := getLogger(c)

	fileHeader, fileErr := c.FormFile("prescriptionImage")
	userID := c.PostForm("userId")
	targetLanguage := c.PostForm("targetLanguage")
	if fileErr != nil || userID == "" || targetLanguage == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image, userId, and targetLanguage are required."})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded image", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read the uploaded image."})
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		logger.Error("Failed to read uploaded image", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read the uploaded image."})
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")

	saved, err := h.Svc.Analyze(c.Request.Context(), image, mimeType, userID, targetLanguage)
	if err != nil {
		h.respondPipelineError(c, err)
		return
	}

	c.JSON(http.StatusCreated, saved)
}

// respondPipelineError maps the pipeline error taxonomy onto HTTP statuses.
func (h *PrescriptionHandler) respondPipelineError(c *gin.Context, err error) {
	logger := getLogger(c)

	var validationErr *prescription.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
		return
	}

	var timeoutErr *prescription.UpstreamTimeoutError
	if errors.As(err, &timeoutErr) {
		logger.Error("OCR service timed out")
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "The OCR server is not responding. Please try again with a clearer image."})
		return
	}

	logger.Error("Prescription pipeline failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// ListByUserHandler returns the user's prescriptions, most recent first.
func (h *PrescriptionHandler) ListByUserHandler(c *gin.Context) {
	logger := getLogger(c)

	userID := c.Param("userId")
	prescriptions, err := h.Svc.ListForUser(userID)
	if err != nil {
		logger.Error("Failed to fetch prescriptions", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch prescriptions."})
		return
	}
	if prescriptions == nil {
		prescriptions = []models.Prescription{}
	}

	c.JSON(http.StatusOK, prescriptions)
}
