package fetcher

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"summarize-api/config"
	"summarize-api/internal/httpclient"
	"summarize-api/internal/logger"
	"summarize-api/models"
	"summarize-api/parser"
	"summarize-api/renderer"
)

// Some hosts reject requests carrying Go's default agent string.
const USER_AGENT = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36"

const mimePDF = "application/pdf"

// Fetcher retrieves a remote resource and normalizes it into a Payload:
// raw bytes for PDFs, extracted plain text for HTML pages.
type Fetcher struct {
	// Client performs full downloads; ProbeClient performs the short HEAD
	// metadata probe. Both are injectable for tests.
	Client      *http.Client
	ProbeClient *http.Client

	// MaxSize rejects resources whose declared Content-Length exceeds it.
	MaxSize int64

	// Extractor names the HTML extraction strategy (see parser package).
	Extractor string

	// RenderJS re-fetches HTML through headless Chrome before extraction.
	RenderJS bool
}

// New builds a Fetcher from the fetch configuration.
func New(cfg config.FetchConfig) *Fetcher {
	return &Fetcher{
		Client:      httpclient.New(httpclient.Config{Timeout: cfg.FetchTimeout()}),
		ProbeClient: httpclient.New(httpclient.Config{Timeout: cfg.ProbeTimeout()}),
		MaxSize:     cfg.MaxRemoteSizeBytes(),
		Extractor:   cfg.Extractor,
		RenderJS:    cfg.RenderJS,
	}
}

// Fetch downloads the resource at rawURL and classifies it by declared
// content type. PDFs come back as a binary payload, HTML pages as
// extracted plain text. Any other declared type fails with
// UnsupportedContentTypeError.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (models.Payload, error) {
	u, err := url.Parse(rawURL)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") {
		return models.Payload{}, ErrInvalidURL
	}

	if err := f.probeSize(ctx, rawURL); err != nil {
		return models.Payload{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return models.Payload{}, &FetchFailedError{URL: rawURL, Err: err}
	}
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := f.Client.Do(req)
	if err != nil {
		return models.Payload{}, &FetchFailedError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return models.Payload{}, &RemoteAccessError{URL: rawURL, StatusCode: resp.StatusCode}
	}

	contentType := strings.ToLower(resp.Header.Get("Content-Type"))
	switch {
	case strings.Contains(contentType, mimePDF):
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return models.Payload{}, &FetchFailedError{URL: rawURL, Err: err}
		}
		return models.BinaryPayload([]models.FilePart{{Data: data, MIMEType: mimePDF}}), nil

	case strings.Contains(contentType, "text/html"):
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return models.Payload{}, &FetchFailedError{URL: rawURL, Err: err}
		}
		return f.extract(ctx, rawURL, string(body))

	default:
		return models.Payload{}, &UnsupportedContentTypeError{ContentType: contentType}
	}
}

// probeSize issues a header-only request and rejects the resource when its
// declared size exceeds the ceiling. When the probe fails or the server
// omits Content-Length, the full fetch proceeds and the size is not
// re-checked afterwards (known limitation).
func (f *Fetcher) probeSize(ctx context.Context, rawURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := f.ProbeClient.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Let the full fetch report the definitive status.
		return nil
	}

	cl := resp.Header.Get("Content-Length")
	if cl == "" {
		return nil
	}
	size, err := strconv.ParseInt(cl, 10, 64)
	if err != nil {
		return nil
	}
	if size > f.MaxSize {
		return &OversizeError{DeclaredSize: size, Limit: f.MaxSize}
	}
	return nil
}

// extract turns an HTML document into plain text using the configured
// strategy, optionally going through the headless renderer first.
func (f *Fetcher) extract(ctx context.Context, rawURL, body string) (models.Payload, error) {
	if f.RenderJS {
		rendered, err := renderer.RenderHTML(ctx, rawURL)
		if err != nil {
			logger.Log.Warnf("render fallback to fetched body for %s: %v", rawURL, err)
		} else {
			body = rendered
		}
	}

	text, err := parser.ExtractWithStrategy(f.Extractor, body)
	if err != nil {
		return models.Payload{}, &FetchFailedError{URL: rawURL, Err: err}
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Payload{}, ErrEmptyContent
	}
	return models.TextPayload(text), nil
}
