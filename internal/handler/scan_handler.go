package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"drishti/internal/domain"
	"drishti/internal/engine"
)

// ScanHandler handles document scan requests.
type ScanHandler struct {
	engine *engine.Engine
}

// NewScanHandler creates a new ScanHandler.
func NewScanHandler(eng *engine.Engine) *ScanHandler {
	return &ScanHandler{engine: eng}
}

// Scan handles POST /api/v1/scan. The body is the recognized text plus the
// upstream OCR and quality signals; the response is the fully annotated
// extraction result.
func (h *ScanHandler) Scan(c *gin.Context) {
	var input domain.ScanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON scan input")
		return
	}
	if input.DocumentTypeHint != "" && !input.DocumentTypeHint.Valid() {
		HandleError(c, domain.ErrInvalidDocumentType)
		return
	}

	result := h.engine.Process(input)

	RespondOK(c, domain.ScanRecord{
		ScanID:      uuid.New().String(),
		ProcessedAt: time.Now().UTC().Format(time.RFC3339),
		Result:      result,
	})
}
