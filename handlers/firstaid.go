package handlers

import (
	"errors"
	"net/http"

	firstaidRepo "arogyamitra/database/repository/firstaid"
	"arogyamitra/services/firstaid"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FirstAidHandler exposes the read-only first-aid catalog over HTTP.
type FirstAidHandler struct {
	Svc firstaid.Service
}

// NewFirstAidHandler creates a new FirstAidHandler instance.
func NewFirstAidHandler(svc firstaid.Service) *FirstAidHandler {
	return &FirstAidHandler{Svc: svc}
}

// ListCasesHandler returns the title/case summary of every case.
func (h *FirstAidHandler) ListCasesHandler(c *gin.Context) {
	logger := getLogger(c)

	cases, err := h.Svc.ListCases()
	if err != nil {
		logger.Error("Failed to fetch first-aid cases", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cases."})
		return
	}

	c.JSON(http.StatusOK, cases)
}

// GetCaseHandler returns the full record for one case slug.
func (h *FirstAidHandler) GetCaseHandler(c *gin.Context) {
	logger := getLogger(c)

	caseKey := c.Param("case")
	instructions, err := h.Svc.GetCase(caseKey)
	if errors.Is(err, firstaidRepo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "First-aid case not found."})
		return
	}
	if err != nil {
		logger.Error("Failed to fetch first-aid case", zap.String("case", caseKey), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch instructions."})
		return
	}

	c.JSON(http.StatusOK, instructions)
}
