package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DocsHandler serves a machine-readable description of the API surface.
type DocsHandler struct{}

// NewDocsHandler creates a new DocsHandler.
func NewDocsHandler() *DocsHandler {
	return &DocsHandler{}
}

type endpointDoc struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

var endpoints = []endpointDoc{
	{"POST", "/api/v1/scan", "Classify recognized document text, extract typed fields and score each with a fused confidence."},
	{"POST", "/api/v1/scan/export/csv", "Export a batch of scan results as CSV, one row per field."},
	{"POST", "/api/v1/scan/export/xlsx", "Export a batch of scan results as an XLSX workbook (summary, fields, subjects)."},
	{"GET", "/healthz", "Liveness probe."},
	{"GET", "/docs", "This document."},
}

// Docs handles GET /docs
func (h *DocsHandler) Docs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":      "drishti",
		"endpoints": endpoints,
	})
}
