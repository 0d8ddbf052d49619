package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"summarize-api/dto"
	"summarize-api/exporter"
	"summarize-api/fetcher"
	"summarize-api/models"
	"summarize-api/summarizer"
)

// SummaryService is the orchestration surface the handlers depend on.
type SummaryService interface {
	SummarizeText(ctx context.Context, text string, mods models.Modifiers) (*models.ModelResult, error)
	SummarizeURL(ctx context.Context, url string, mods models.Modifiers) (*models.ModelResult, error)
	SummarizePDFs(ctx context.Context, files []models.FilePart, mods models.Modifiers) (*models.ModelResult, error)
}

// SummarizeURLHandler godoc
// @Summary      Summarize a URL
// @Description  Fetches a webpage or PDF and summarizes it, or applies a custom prompt
// @Tags         summarization
// @Accept       mpfd
// @Param        url            formData  string  true   "URL to a webpage or PDF"
// @Param        custom_prompt  formData  string  false  "Custom prompt instead of summarizing"
// @Param        length         query     string  false  "short | medium | detailed"
// @Param        tone           query     string  false  "professional | casual | simple | technical"
// @Param        output_format  query     string  false  "json | text | markdown | pdf | docx"
// @Produce      json
// @Success      200  {object}  dto.SummaryResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /summarize/url [post]
func SummarizeURLHandler(svc SummaryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		mods, format, ok := parseOptions(c)
		if !ok {
			return
		}
		url := c.PostForm("url")
		if url == "" {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "url form field is required"})
			return
		}

		result, err := svc.SummarizeURL(c.Request.Context(), url, mods)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, result, format)
	}
}

// SummarizeTextHandler godoc
// @Summary      Summarize pasted text
// @Description  Summarizes raw text, or applies a custom prompt to it
// @Tags         summarization
// @Accept       mpfd
// @Param        text           formData  string  true   "Text to summarize"
// @Param        custom_prompt  formData  string  false  "Custom prompt instead of summarizing"
// @Param        length         query     string  false  "short | medium | detailed"
// @Param        tone           query     string  false  "professional | casual | simple | technical"
// @Param        output_format  query     string  false  "json | text | markdown | pdf | docx"
// @Produce      json
// @Success      200  {object}  dto.SummaryResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /summarize/text [post]
func SummarizeTextHandler(svc SummaryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		mods, format, ok := parseOptions(c)
		if !ok {
			return
		}

		result, err := svc.SummarizeText(c.Request.Context(), c.PostForm("text"), mods)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, result, format)
	}
}

// SummarizePDFHandler godoc
// @Summary      Summarize uploaded PDFs
// @Description  Summarizes one or more uploaded PDF files, reconciling across documents
// @Tags         summarization
// @Accept       mpfd
// @Param        files          formData  file    true   "One or more PDF files"
// @Param        custom_prompt  formData  string  false  "Custom prompt instead of summarizing"
// @Param        length         query     string  false  "short | medium | detailed"
// @Param        tone           query     string  false  "professional | casual | simple | technical"
// @Param        output_format  query     string  false  "json | text | markdown | pdf | docx"
// @Produce      json
// @Success      200  {object}  dto.SummaryResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /summarize/pdf [post]
func SummarizePDFHandler(svc SummaryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		mods, format, ok := parseOptions(c)
		if !ok {
			return
		}

		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid multipart form"})
			return
		}

		var files []models.FilePart
		for _, fh := range form.File["files"] {
			f, err := fh.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: fmt.Sprintf("failed to open uploaded file %q", fh.Filename)})
				return
			}
			data, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: fmt.Sprintf("failed to read uploaded file %q", fh.Filename)})
				return
			}
			files = append(files, models.FilePart{Data: data, MIMEType: "application/pdf"})
		}

		result, err := svc.SummarizePDFs(c.Request.Context(), files, mods)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, result, format)
	}
}

// parseOptions reads the shared modifier and format parameters. On a bad
// token it writes the 400 response itself and returns ok=false.
func parseOptions(c *gin.Context) (models.Modifiers, models.OutputFormat, bool) {
	var mods models.Modifiers

	length, _, err := models.ParseLength(c.Query("length"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
		return mods, "", false
	}
	tone, _, err := models.ParseTone(c.Query("tone"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
		return mods, "", false
	}
	format, err := models.ParseOutputFormat(c.Query("output_format"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
		return mods, "", false
	}

	mods.Length = length
	mods.Tone = tone
	mods.CustomPrompt = c.PostForm("custom_prompt")
	return mods, format, true
}

// respond serializes the result in the requested output format. Non-JSON
// responses carry the token counters in headers since they have no body
// field for them.
func respond(c *gin.Context, result *models.ModelResult, format models.OutputFormat) {
	if format == models.FormatJSON {
		c.JSON(http.StatusOK, dto.FromModelResult(result))
		return
	}

	c.Header("X-Prompt-Tokens", strconv.FormatUint(uint64(result.Usage.PromptTokens), 10))
	c.Header("X-Candidates-Tokens", strconv.FormatUint(uint64(result.Usage.CandidateTokens), 10))
	c.Header("X-Total-Tokens", strconv.FormatUint(uint64(result.Usage.TotalTokens), 10))

	switch format {
	case models.FormatText:
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(result.Summary))
	case models.FormatMarkdown:
		c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(result.Summary))
	case models.FormatPDF:
		data, err := exporter.ToPDF(result.Summary)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "failed to render PDF"})
			return
		}
		c.Header("Content-Disposition", `attachment; filename="summary.pdf"`)
		c.Data(http.StatusOK, "application/pdf", data)
	case models.FormatDOCX:
		data, err := exporter.ToDOCX(result.Summary)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "failed to render DOCX"})
			return
		}
		c.Header("Content-Disposition", `attachment; filename="summary.docx"`)
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", data)
	default:
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: fmt.Sprintf("unknown output format %q", format)})
	}
}

// respondError maps the failure taxonomy onto HTTP statuses. Upstream
// error statuses from the fetcher pass through unchanged.
func respondError(c *gin.Context, err error) {
	c.JSON(statusFor(err), dto.ErrorResponseDTO{Error: err.Error()})
}

func statusFor(err error) int {
	var (
		remoteErr      *fetcher.RemoteAccessError
		unsupportedErr *fetcher.UnsupportedContentTypeError
		oversizeErr    *fetcher.OversizeError
		fetchErr       *fetcher.FetchFailedError
		modelErr       *summarizer.ModelInvocationError
	)

	switch {
	case errors.Is(err, summarizer.ErrEmptyInput),
		errors.Is(err, fetcher.ErrEmptyContent),
		errors.Is(err, fetcher.ErrInvalidURL),
		errors.As(err, &unsupportedErr):
		return http.StatusBadRequest
	case errors.As(err, &oversizeErr):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &remoteErr):
		return remoteErr.StatusCode
	case errors.As(err, &fetchErr):
		return http.StatusBadGateway
	case errors.Is(err, summarizer.ErrQuotaExhausted):
		return http.StatusTooManyRequests
	case errors.As(err, &modelErr):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
