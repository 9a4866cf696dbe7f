package handler

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"drishti/internal/csvexport"
	"drishti/internal/domain"
	"drishti/internal/xlsxexport"
)

// ExportRequest is the body for the export endpoints: a batch of scan
// records previously returned by the scan endpoint, plus an export name
// used for the download filename.
type ExportRequest struct {
	Name    string              `json:"name"`
	Records []domain.ScanRecord `json:"records"`
}

// ExportHandler handles batch export of scan results.
type ExportHandler struct{}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// ExportCSV handles POST /api/v1/scan/export/csv. One CSV row per field per
// document, streamed with a UTF-8 BOM for Excel.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	req, ok := h.bindExport(c)
	if !ok {
		return
	}

	filename := csvexport.BuildFilename(exportName(req.Name))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Status(http.StatusOK)

	if _, err := c.Writer.Write(csvexport.BOM); err != nil {
		log.Printf("handler.ExportHandler: write BOM: %v", err)
		return
	}
	w := csvexport.NewWriter(c.Writer)
	if err := w.WriteHeader(); err != nil {
		log.Printf("handler.ExportHandler: write header: %v", err)
		return
	}
	if err := w.WriteRecords(req.Records); err != nil {
		log.Printf("handler.ExportHandler: write records: %v", err)
		return
	}
	w.Flush()
	if err := w.Error(); err != nil {
		log.Printf("handler.ExportHandler: flush: %v", err)
	}
}

// ExportXLSX handles POST /api/v1/scan/export/xlsx with a three-sheet
// workbook (summary, fields, subjects).
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	req, ok := h.bindExport(c)
	if !ok {
		return
	}

	f, err := xlsxexport.Build(req.Records)
	if err != nil {
		HandleError(c, err)
		return
	}
	defer func() { _ = f.Close() }()

	filename := xlsxexport.BuildFilename(exportName(req.Name))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Status(http.StatusOK)

	if err := f.Write(c.Writer); err != nil {
		log.Printf("handler.ExportHandler: write workbook: %v", err)
	}
}

func (h *ExportHandler) bindExport(c *gin.Context) (*ExportRequest, bool) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "request body must be a valid export request")
		return nil, false
	}
	if len(req.Records) == 0 {
		HandleError(c, domain.ErrEmptyExport)
		return nil, false
	}
	return &req, true
}

func exportName(name string) string {
	if name == "" {
		return "scans"
	}
	return name
}
