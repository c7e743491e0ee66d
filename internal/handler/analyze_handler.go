package handler

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"seosik/internal/service"
)

// AnalyzeHandler exposes the form analysis pipeline over HTTP.
type AnalyzeHandler struct {
	svc service.AnalyzeService
}

// NewAnalyzeHandler creates a new AnalyzeHandler.
func NewAnalyzeHandler(svc service.AnalyzeService) *AnalyzeHandler {
	return &AnalyzeHandler{svc: svc}
}

type analyzeRequest struct {
	// Paths are server-local source PDF paths, first one anchors the
	// destination.
	Paths []string `json:"paths" binding:"required,min=1"`
	// FolderHint optionally names the bid folder under the shared root.
	FolderHint string `json:"folder_hint"`
}

// Analyze handles POST /api/v1/analyze.
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "paths is required and must not be empty")
		return
	}
	for _, p := range req.Paths {
		if _, err := os.Stat(p); err != nil {
			RespondError(c, http.StatusNotFound, "DOCUMENT_NOT_FOUND", "source document not found: "+p)
			return
		}
	}

	result, err := h.svc.AnalyzeForms(c.Request.Context(), service.AnalyzeInput{
		Paths:      req.Paths,
		FolderHint: req.FolderHint,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}
