package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seosik/internal/domain"
	"seosik/internal/service"
)

type stubAnalyzeService struct {
	result *domain.ExtractionResult
	err    error
	got    service.AnalyzeInput
}

func (s *stubAnalyzeService) AnalyzeForms(ctx context.Context, input service.AnalyzeInput) (*domain.ExtractionResult, error) {
	s.got = input
	return s.result, s.err
}

func newAnalyzeRouter(svc service.AnalyzeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAnalyzeHandler(svc)
	r.POST("/api/v1/analyze", h.Analyze)
	return r
}

func TestAnalyze_Success(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "공고문.pdf")
	require.NoError(t, os.WriteFile(src, []byte("%PDF-1.4"), 0o644))

	result := domain.NewExtractionResult("공고문.pdf", nil)
	result.FormsGenerated = 2
	stub := &stubAnalyzeService{result: result}
	r := newAnalyzeRouter(stub)

	body, _ := json.Marshal(map[string]any{
		"paths":       []string{src},
		"folder_hint": "긴급공고-007",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{src}, stub.got.Paths)
	assert.Equal(t, "긴급공고-007", stub.got.FolderHint)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestAnalyze_EmptyPathsRejected(t *testing.T) {
	r := newAnalyzeRouter(&stubAnalyzeService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(`{"paths":[]}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "INVALID_REQUEST", resp.Error.Code)
}

func TestAnalyze_MissingDocument(t *testing.T) {
	r := newAnalyzeRouter(&stubAnalyzeService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze",
		strings.NewReader(`{"paths":["/no/such/file.pdf"]}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "DOCUMENT_NOT_FOUND", resp.Error.Code)
}

func TestAnalyze_ServiceErrorMapped(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "공고문.pdf")
	require.NoError(t, os.WriteFile(src, []byte("%PDF-1.4"), 0o644))

	stub := &stubAnalyzeService{err: domain.ErrNoInputDocuments}
	r := newAnalyzeRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze",
		strings.NewReader(`{"paths":["`+src+`"]}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "NO_INPUT_DOCUMENTS", resp.Error.Code)
}
