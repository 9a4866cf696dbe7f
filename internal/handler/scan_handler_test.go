package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drishti/internal/domain"
	"drishti/internal/engine"
)

func newScanRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewScanHandler(engine.New(engine.Config{}))
	r.POST("/api/v1/scan", h.Scan)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestScan_OK(t *testing.T) {
	r := newScanRouter()
	w := postJSON(t, r, "/api/v1/scan", domain.ScanInput{
		RawText: "INCOME TAX DEPARTMENT\nPERMANENT ACCOUNT NUMBER\nABCDE1234F",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool              `json:"success"`
		Data    domain.ScanRecord `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Data.ScanID)
	assert.NotEmpty(t, resp.Data.ProcessedAt)
	assert.Equal(t, domain.DocTypePAN, resp.Data.Result.DocumentType)
}

func TestScan_InvalidHint(t *testing.T) {
	r := newScanRouter()
	w := postJSON(t, r, "/api/v1/scan", map[string]string{
		"raw_text":           "some text",
		"document_type_hint": "Passport",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_DOCUMENT_TYPE", resp.Error.Code)
}

func TestScan_UnknownHintAccepted(t *testing.T) {
	r := newScanRouter()
	w := postJSON(t, r, "/api/v1/scan", map[string]string{
		"raw_text":           "some text",
		"document_type_hint": "Unknown",
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestScan_MalformedBody(t *testing.T) {
	r := newScanRouter()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/scan", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportCSV(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewExportHandler()
	r.POST("/api/v1/scan/export/csv", h.ExportCSV)

	value := "ABCDE1234F"
	w := postJSON(t, r, "/api/v1/scan/export/csv", ExportRequest{
		Name: "batch one",
		Records: []domain.ScanRecord{{
			ScanID: "scan-1",
			Result: domain.ExtractionResult{
				DocumentType: domain.DocTypePAN,
				Fields: map[string]domain.AnnotatedField{
					"pan": {Value: &value, Confidence: 94, Threshold: 75, Status: domain.FieldStatusPass},
				},
			},
		}},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "batch_one_")
	// UTF-8 BOM leads the stream for Excel.
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte{0xEF, 0xBB, 0xBF}))
	assert.Contains(t, w.Body.String(), "ABCDE1234F")
}

func TestExportCSV_EmptyBatch(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewExportHandler()
	r.POST("/api/v1/scan/export/csv", h.ExportCSV)

	w := postJSON(t, r, "/api/v1/scan/export/csv", ExportRequest{Name: "empty"})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "EMPTY_EXPORT", resp.Error.Code)
}

func TestExportXLSX(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewExportHandler()
	r.POST("/api/v1/scan/export/xlsx", h.ExportXLSX)

	w := postJSON(t, r, "/api/v1/scan/export/xlsx", ExportRequest{
		Records: []domain.ScanRecord{{ScanID: "scan-1"}},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "scans_")
	assert.NotEmpty(t, w.Body.Bytes())
}
