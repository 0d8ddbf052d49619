package summarizer

import (
	"context"
	"strings"

	"summarize-api/internal/logger"
	"summarize-api/models"
	"summarize-api/quota"
)

// PDF pipeline strategies. Two-step is the default: single-pass structured
// extraction directly from binary content proved less reliable than
// structuring an intermediate plain-text narrative.
const (
	StrategyTwoStep    = "two_step"
	StrategySinglePass = "single_pass"
)

// freeTextFallbackTitle labels free-text results when no usable custom
// prompt text is available as a title.
const freeTextFallbackTitle = "Custom Prompt Result"

// ContentFetcher is what the orchestrator needs from the fetcher.
type ContentFetcher interface {
	Fetch(ctx context.Context, url string) (models.Payload, error)
}

// Service orchestrates one summarization request: normalize the input,
// build the instruction, invoke the model, shape the result. All fields
// are set once at construction and read-only afterwards; every request
// owns its payload, instruction, and result exclusively.
type Service struct {
	invoker     Invoker
	fetcher     ContentFetcher
	limiter     *quota.Limiter
	pdfStrategy string
}

// NewService wires the orchestrator. limiter may be nil to disable
// quota enforcement. An unknown pdfStrategy falls back to two-step.
func NewService(invoker Invoker, fetcher ContentFetcher, limiter *quota.Limiter, pdfStrategy string) *Service {
	if pdfStrategy != StrategySinglePass {
		pdfStrategy = StrategyTwoStep
	}
	return &Service{
		invoker:     invoker,
		fetcher:     fetcher,
		limiter:     limiter,
		pdfStrategy: pdfStrategy,
	}
}

// SummarizeText summarizes (or, with a custom prompt, transforms) raw
// text. Newlines are collapsed to spaces before the emptiness check.
func (s *Service) SummarizeText(ctx context.Context, text string, mods models.Modifiers) (*models.ModelResult, error) {
	processed := strings.TrimSpace(strings.ReplaceAll(text, "\n", " "))
	if processed == "" {
		return nil, ErrEmptyInput
	}

	mode := mods.Mode()
	instruction, gen := BuildInstruction(mods, 0, mode)

	if err := s.reserve(ctx); err != nil {
		return nil, err
	}

	logger.Log.Debugf("invoking model: input=text mode=%s chars=%d", mode, len(processed))
	result, err := s.invoker.Invoke(ctx, models.TextPayload(processed), instruction, gen)
	if err != nil {
		return nil, err
	}

	if mode == models.ModeFreeText {
		s.fillFreeTextTitle(result, mods)
	}
	return result, nil
}

// SummarizePDFs summarizes one or more PDF blobs. Structured requests run
// the two-step pipeline by default: a free-text narrative pass over the
// binary parts, then a structuring pass over that narrative. The reported
// usage is the sum of both calls. Free-text requests (custom prompt) and
// the single_pass strategy invoke the model once, directly on the binary
// parts.
func (s *Service) SummarizePDFs(ctx context.Context, files []models.FilePart, mods models.Modifiers) (*models.ModelResult, error) {
	if len(files) == 0 {
		return nil, ErrEmptyInput
	}

	mode := mods.Mode()
	if mode == models.ModeFreeText || s.pdfStrategy == StrategySinglePass {
		return s.invokePDFs(ctx, files, mods, mode)
	}

	// Step 1: free-text narrative of the binary content. The custom
	// prompt is blank here (free-text mode would have taken the single
	// pass above), so the base directive is the summarization one.
	narrative, err := s.invokePDFs(ctx, files, mods, models.ModeFreeText)
	if err != nil {
		return nil, err
	}

	// Step 2 depends on step 1's output; the two calls are never issued
	// in parallel.
	result, err := s.SummarizeText(ctx, narrative.Summary, mods)
	if err != nil {
		return nil, err
	}
	result.Usage = narrative.Usage.Add(result.Usage)
	return result, nil
}

// SummarizeURL fetches the resource and routes by its normalized shape:
// binary to the PDF pipeline, text to the text pipeline. Fetcher failures
// propagate unchanged so the API layer can tell a bad upstream resource
// from a model failure.
func (s *Service) SummarizeURL(ctx context.Context, url string, mods models.Modifiers) (*models.ModelResult, error) {
	payload, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	switch payload.Kind {
	case models.PayloadBinary:
		return s.SummarizePDFs(ctx, payload.Parts, mods)
	case models.PayloadText:
		return s.SummarizeText(ctx, payload.Text, mods)
	default:
		return nil, ErrEmptyInput
	}
}

// invokePDFs performs one direct model call over the binary parts.
func (s *Service) invokePDFs(ctx context.Context, files []models.FilePart, mods models.Modifiers, mode models.Mode) (*models.ModelResult, error) {
	instruction, gen := BuildInstruction(mods, len(files), mode)

	if err := s.reserve(ctx); err != nil {
		return nil, err
	}

	logger.Log.Debugf("invoking model: input=pdf mode=%s files=%d", mode, len(files))
	result, err := s.invoker.Invoke(ctx, models.BinaryPayload(files), instruction, gen)
	if err != nil {
		return nil, err
	}

	if mode == models.ModeFreeText && mods.Mode() == models.ModeFreeText {
		s.fillFreeTextTitle(result, mods)
	}
	return result, nil
}

// fillFreeTextTitle sets the title the model was never asked to produce.
func (s *Service) fillFreeTextTitle(result *models.ModelResult, mods models.Modifiers) {
	title := strings.TrimSpace(mods.CustomPrompt)
	if title == "" {
		title = freeTextFallbackTitle
	}
	result.Title = title
}

// reserve applies the model-call quota before an invocation.
func (s *Service) reserve(ctx context.Context) error {
	if s.limiter == nil {
		return nil
	}
	ok, err := s.limiter.WaitAndReserve(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return ErrQuotaExhausted
	}
	return nil
}
