package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"summarize-api/api/router"
	"summarize-api/config"
	"summarize-api/dto"
	"summarize-api/fetcher"
	"summarize-api/models"
	"summarize-api/summarizer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubService returns a fixed result or error and records what it was
// called with.
type stubService struct {
	result *models.ModelResult
	err    error

	gotText  string
	gotURL   string
	gotFiles []models.FilePart
	gotMods  models.Modifiers
	calls    int
}

func (s *stubService) SummarizeText(_ context.Context, text string, mods models.Modifiers) (*models.ModelResult, error) {
	s.calls++
	s.gotText, s.gotMods = text, mods
	return s.result, s.err
}

func (s *stubService) SummarizeURL(_ context.Context, url string, mods models.Modifiers) (*models.ModelResult, error) {
	s.calls++
	s.gotURL, s.gotMods = url, mods
	return s.result, s.err
}

func (s *stubService) SummarizePDFs(_ context.Context, files []models.FilePart, mods models.Modifiers) (*models.ModelResult, error) {
	s.calls++
	s.gotFiles, s.gotMods = files, mods
	return s.result, s.err
}

func okResult() *models.ModelResult {
	return &models.ModelResult{
		Title:   "T",
		Summary: "S",
		Usage:   models.Usage{PromptTokens: 10, CandidateTokens: 20, TotalTokens: 30},
	}
}

func newRouter(svc *stubService) http.Handler {
	return router.New(svc, config.ServerConfig{MaxRequestSizeMB: 15})
}

func postForm(t *testing.T, h http.Handler, path string, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestSummarizeTextJSON(t *testing.T) {
	svc := &stubService{result: okResult()}
	w := postForm(t, newRouter(svc), "/api/v1/summarize/text", map[string]string{"text": "hello"})

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.SummaryResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "T", resp.Title)
	assert.Equal(t, "S", resp.Summary)
	assert.EqualValues(t, 30, resp.Usage.TotalTokenCount)
	assert.Equal(t, "hello", svc.gotText)
}

func TestSummarizeTextModifiersParsed(t *testing.T) {
	svc := &stubService{result: okResult()}
	w := postForm(t, newRouter(svc),
		"/api/v1/summarize/text?length=short&tone=professional",
		map[string]string{"text": "hello", "custom_prompt": "do something"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.LengthShort, svc.gotMods.Length)
	assert.Equal(t, models.ToneProfessional, svc.gotMods.Tone)
	assert.Equal(t, "do something", svc.gotMods.CustomPrompt)
}

func TestSummarizeTextRejectsUnknownTone(t *testing.T) {
	svc := &stubService{result: okResult()}
	w := postForm(t, newRouter(svc), "/api/v1/summarize/text?tone=bombastic", map[string]string{"text": "hello"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.calls)
}

func TestSummarizeURLRequiresURLField(t *testing.T) {
	svc := &stubService{result: okResult()}
	w := postForm(t, newRouter(svc), "/api/v1/summarize/url", map[string]string{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.calls)
}

func TestErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"empty input", summarizer.ErrEmptyInput, http.StatusBadRequest},
		{"empty content", fetcher.ErrEmptyContent, http.StatusBadRequest},
		{"invalid url", fetcher.ErrInvalidURL, http.StatusBadRequest},
		{"unsupported type", &fetcher.UnsupportedContentTypeError{ContentType: "image/png"}, http.StatusBadRequest},
		{"oversize", &fetcher.OversizeError{DeclaredSize: 99, Limit: 10}, http.StatusRequestEntityTooLarge},
		{"remote 404 passthrough", &fetcher.RemoteAccessError{URL: "https://x", StatusCode: 404}, http.StatusNotFound},
		{"remote 503 passthrough", &fetcher.RemoteAccessError{URL: "https://x", StatusCode: 503}, http.StatusServiceUnavailable},
		{"fetch failed", &fetcher.FetchFailedError{URL: "https://x"}, http.StatusBadGateway},
		{"quota exhausted", summarizer.ErrQuotaExhausted, http.StatusTooManyRequests},
		{"model failure", &summarizer.ModelInvocationError{}, http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubService{err: tc.err}
			w := postForm(t, newRouter(svc), "/api/v1/summarize/url", map[string]string{"url": "https://example.com"})
			assert.Equal(t, tc.want, w.Code)

			var resp dto.ErrorResponseDTO
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestOutputFormatText(t *testing.T) {
	svc := &stubService{result: okResult()}
	w := postForm(t, newRouter(svc), "/api/v1/summarize/text?output_format=text", map[string]string{"text": "hello"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "S", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Equal(t, "10", w.Header().Get("X-Prompt-Tokens"))
	assert.Equal(t, "20", w.Header().Get("X-Candidates-Tokens"))
	assert.Equal(t, "30", w.Header().Get("X-Total-Tokens"))
}

func TestOutputFormatMarkdown(t *testing.T) {
	svc := &stubService{result: okResult()}
	w := postForm(t, newRouter(svc), "/api/v1/summarize/text?output_format=markdown", map[string]string{"text": "hello"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/markdown")
}

func TestOutputFormatPDF(t *testing.T) {
	svc := &stubService{result: okResult()}
	w := postForm(t, newRouter(svc), "/api/v1/summarize/text?output_format=pdf", map[string]string{"text": "hello"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "summary.pdf")
	assert.Equal(t, "%PDF", w.Body.String()[:4])
}

func TestOutputFormatDOCX(t *testing.T) {
	svc := &stubService{result: okResult()}
	w := postForm(t, newRouter(svc), "/api/v1/summarize/text?output_format=docx", map[string]string{"text": "hello"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "summary.docx")
	assert.Equal(t, "PK", w.Body.String()[:2])
}

func TestUnknownOutputFormat(t *testing.T) {
	svc := &stubService{result: okResult()}
	w := postForm(t, newRouter(svc), "/api/v1/summarize/text?output_format=xlsx", map[string]string{"text": "hello"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.calls)
}

func TestSummarizePDFUpload(t *testing.T) {
	svc := &stubService{result: okResult()}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, name := range []string{"a.pdf", "b.pdf"} {
		fw, err := mw.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = fw.Write([]byte("%PDF-1.7 " + name))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/summarize/pdf", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, svc.gotFiles, 2)
	assert.Equal(t, "application/pdf", svc.gotFiles[0].MIMEType)
	assert.Equal(t, []byte("%PDF-1.7 a.pdf"), svc.gotFiles[0].Data)
}

func TestHealth(t *testing.T) {
	svc := &stubService{result: okResult()}
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
