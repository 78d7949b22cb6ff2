package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/agrodesk/docextract/constants"
	"github.com/agrodesk/docextract/internal/common"
	"github.com/agrodesk/docextract/internal/extract"
	"github.com/agrodesk/docextract/internal/language"
	"github.com/agrodesk/docextract/internal/observability/metrics"
	"github.com/agrodesk/docextract/internal/rules"
	"github.com/agrodesk/docextract/internal/scoring"
)

// Request describes one document to run through the pipeline.
type Request struct {
	DocumentID   uuid.UUID
	Text         string
	DeclaredType string // free-form hint, canonicalized before use
	OCRSource    bool
	// Force reprocesses even when a finished extraction already exists;
	// without it the stored result is returned as-is.
	Force bool
	// Model overrides the AI-tier default for this request only.
	Model string
}

// Processor runs the tiered extraction flow: local pattern pass first, then
// a model call only when the local result fails the confidence gate.
type Processor struct {
	logger  *slog.Logger
	cfg     common.ExtractionConfig
	rules   *rules.Extractor
	ai      extract.FieldExtractor
	store   extract.ResultStore
	metrics *metrics.PipelineMetrics
}

func NewProcessor(
	logger *slog.Logger,
	cfg common.ExtractionConfig,
	ruleExtractor *rules.Extractor,
	ai extract.FieldExtractor,
	store extract.ResultStore,
	m *metrics.PipelineMetrics,
) *Processor {
	return &Processor{
		logger:  logger,
		cfg:     cfg,
		rules:   ruleExtractor,
		ai:      ai,
		store:   store,
		metrics: m,
	}
}

// Process runs the full pipeline for one document and persists the outcome.
// Predictable failures (unusable input, model errors) are recorded on the
// returned Result; the error return is reserved for storage failures and the
// duplicate-request guard.
func (p *Processor) Process(ctx context.Context, req Request) (*extract.Result, error) {
	if !req.Force {
		prior, err := p.store.LatestForDocument(ctx, req.DocumentID)
		if err != nil {
			return nil, err
		}
		if prior != nil && prior.Status != constants.StatusRunning {
			p.logger.Info("pipeline.process.cached",
				"document_id", req.DocumentID, "extraction_id", prior.ID)
			return prior, nil
		}
	}

	extractionID, err := p.store.Claim(ctx, req.DocumentID)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyInFlight) {
			p.logger.Warn("pipeline.process.duplicate", "document_id", req.DocumentID)
		}
		return nil, err
	}

	p.metrics.Start()
	ctx = common.WithDocumentID(ctx, req.DocumentID.String())

	docType, _ := constants.CanonicalizeDocumentType(req.DeclaredType)
	res := &extract.Result{
		ID:           extractionID,
		DocumentID:   req.DocumentID,
		DocumentType: docType,
		Status:       constants.StatusRunning,
		SourceText:   req.Text,
		CreatedAt:    time.Now().UTC(),
		Metadata: extract.Metadata{
			TextLength: len(req.Text),
		},
	}

	if err := validateInput(req.Text, p.cfg.MinTextLength, float64(p.cfg.MinLetterRatio)); err != nil {
		p.logger.Info("pipeline.process.unusable_input",
			"document_id", req.DocumentID, "reason", err.Error(), "text_length", len(req.Text))
		res.Status = constants.StatusFailed
		res.Error = err.Error()
		res.Fields = extract.FieldSet{}
		res.Metadata.NeedsReview = true
		return p.finish(ctx, res)
	}

	lang := language.Detect(req.Text)
	res.Metadata.Language = lang

	fields, validationErrs := p.rules.Extract(req.Text, docType)
	overall := scoring.Aggregate(fields)
	res.Fields = fields
	res.Overall = overall
	res.Metadata.ValidationErrors = validationErrs

	reason := scoring.Decision(overall, fields, p.cfg.ConfidenceThreshold, p.cfg.MinFieldCount)
	p.logger.Info("pipeline.process.local_done",
		"document_id", req.DocumentID,
		"language", lang,
		"field_count", len(fields),
		"overall_confidence", overall,
		"escalate_reason", string(reason))

	if reason == scoring.ReasonNone {
		res.Status = constants.StatusLocalOK
		res.Metadata.Tier = constants.TierLocal
		p.markReview(res)
		return p.finish(ctx, res)
	}

	p.metrics.Escalated(string(reason))
	res.Status = constants.StatusEscalated

	ai := p.callModel(ctx, extract.AIRequest{
		Text:         req.Text,
		Language:     lang,
		DocumentType: docType,
		Model:        req.Model,
		OCRSource:    req.OCRSource,
	})
	reconcile(res, fields, ai)
	if res.Status == constants.StatusAIOK {
		p.markReview(res)
	}
	return p.finish(ctx, res)
}

// Retry re-runs the AI tier for an existing extraction, producing a new
// superseding row. The stored source text is reused; the document is not
// re-fetched. A non-empty model overrides the client default, which is how
// "retry with a stronger model" is expressed.
func (p *Processor) Retry(ctx context.Context, extractionID uuid.UUID, model string) (*extract.Result, error) {
	prior, err := p.store.Get(ctx, extractionID)
	if err != nil {
		return nil, err
	}
	if prior.SourceText == "" {
		return nil, common.FailedPreconditionError("extraction has no stored source text")
	}

	newID, err := p.store.Claim(ctx, prior.DocumentID)
	if err != nil {
		return nil, err
	}

	p.metrics.Start()
	ctx = common.WithDocumentID(ctx, prior.DocumentID.String())

	lang := prior.Metadata.Language
	if lang == "" {
		lang = language.Detect(prior.SourceText)
	}

	res := &extract.Result{
		ID:           newID,
		DocumentID:   prior.DocumentID,
		DocumentType: prior.DocumentType,
		Status:       constants.StatusEscalated,
		SourceText:   prior.SourceText,
		CreatedAt:    time.Now().UTC(),
		Metadata: extract.Metadata{
			TextLength: len(prior.SourceText),
			Language:   lang,
			RetryCount: prior.Metadata.RetryCount + 1,
		},
	}

	// The local candidates from the prior run are the fallback if the model
	// fails again.
	local := prior.Metadata.LocalFields
	if local == nil && prior.Metadata.Tier == constants.TierLocal {
		local = prior.Fields
	}

	p.logger.Info("pipeline.retry.start",
		"extraction_id", extractionID, "retry_count", res.Metadata.RetryCount, "model", model)

	ai := p.callModel(ctx, extract.AIRequest{
		Text:         prior.SourceText,
		Language:     lang,
		DocumentType: prior.DocumentType,
		Model:        model,
	})
	reconcile(res, local, ai)
	if res.Status == constants.StatusAIOK {
		p.markReview(res)
	}
	return p.finish(ctx, res)
}

// markReview flags a finished result for human review when confidence is
// below the threshold or when any validation error was recorded.
func (p *Processor) markReview(res *extract.Result) {
	res.Metadata.NeedsReview = res.Overall < p.cfg.ConfidenceThreshold ||
		len(res.Metadata.ValidationErrors) > 0
}

func (p *Processor) callModel(ctx context.Context, req extract.AIRequest) extract.AIResult {
	start := time.Now()
	out := p.ai.ExtractFields(ctx, req)
	p.metrics.ObserveAICall(time.Since(start))
	if out.ErrKind != extract.AIErrNone {
		p.logger.Error("pipeline.process.model_failed",
			"error", out.Err, "kind", string(out.ErrKind))
	}
	return out
}

func (p *Processor) finish(ctx context.Context, res *extract.Result) (*extract.Result, error) {
	if err := p.store.Finish(ctx, res); err != nil {
		p.metrics.Finish(string(res.Metadata.Tier), "store_error")
		return nil, common.WrapError(err, "persisting extraction result")
	}
	p.metrics.Finish(string(res.Metadata.Tier), string(res.Status))
	p.logger.Info("pipeline.process.done",
		"extraction_id", res.ID,
		"status", string(res.Status),
		"tier", string(res.Metadata.Tier),
		"overall_confidence", res.Overall,
		"needs_review", res.Metadata.NeedsReview)
	return res, nil
}
