package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/agrodesk/docextract/internal/extract"
	"github.com/agrodesk/docextract/internal/llm"
)

// ExtractFields implements extract.FieldExtractor against chat/completions.
// It never panics or propagates errors past this boundary: every failure mode
// comes back inside the AIResult, classified as a call or parse failure.
func (c *Client) ExtractFields(ctx context.Context, req extract.AIRequest) extract.AIResult {
	rid := uuid.New().String()
	start := time.Now()

	model := c.cfg.Model
	if req.Model != "" {
		model = req.Model
	}

	sys := llm.BuildSystemPrompt(req.Language, req.DocumentType)
	user, truncated := llm.BuildUserPrompt(req.Text, c.cfg.MaxPromptChars)
	schema := llm.BuildFieldJSONSchema()

	c.logger.Info("llm.extract.start",
		"req_id", rid,
		"model", model,
		"temp", c.cfg.Temperature,
		"text_len", len(req.Text),
		"truncated", truncated,
		"language", string(req.Language),
		"document_type", string(req.DocumentType),
	)

	body := map[string]any{
		"model":           model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": sys},
			{"role": "user", "content": user + "\n\nReturn ONLY JSON that matches the provided schema."},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, callErr := c.postWithRetry(ctx, rid, endpoint, body)
	if callErr != nil {
		c.logger.Error("llm.extract.http_error",
			"req_id", rid, "error", callErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return extract.AIResult{
			Truncated:   truncated,
			ModelName:   model,
			RawResponse: string(raw),
			Err:         callErr.Error(),
			ErrKind:     extract.AIErrCall,
		}
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil || len(cc.Choices) == 0 {
		if err == nil {
			err = fmt.Errorf("no choices in completion response")
		}
		c.logger.Error("llm.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return extract.AIResult{
			Truncated:   truncated,
			ModelName:   model,
			RawResponse: string(raw),
			Err:         fmt.Sprintf("decode completion response: %v", err),
			ErrKind:     extract.AIErrParse,
		}
	}

	content := strings.TrimSpace(cc.Choices[0].Message.Content)
	return c.parseContent(rid, model, content, truncated, req.OCRSource, start)
}

// parseContent is the defensive response path: fence stripping, balanced
// object location, schema validation, then field conversion.
func (c *Client) parseContent(rid, model, content string, truncated, ocrSource bool, start time.Time) extract.AIResult {
	fail := func(msg string) extract.AIResult {
		c.logger.Error("llm.extract.parse_failed",
			"req_id", rid, "error", msg,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return extract.AIResult{
			Truncated:   truncated,
			ModelName:   model,
			RawResponse: content, // preserved verbatim for diagnostics
			Err:         msg,
			ErrKind:     extract.AIErrParse,
		}
	}

	payload := llm.ExtractJSONPayload(content)
	if payload == "" {
		return fail("no balanced JSON object in response")
	}
	if err := llm.ValidateJSONAgainstSchema(llm.BuildFieldJSONSchema(), []byte(payload)); err != nil {
		return fail(fmt.Sprintf("schema validation failed: %v", err))
	}

	fields, advisory, dropped, err := llm.FieldsFromJSON([]byte(payload))
	if err != nil {
		return fail(fmt.Sprintf("convert fields: %v", err))
	}
	if len(dropped) > 0 {
		c.logger.Warn("llm.extract.fields_dropped", "req_id", rid, "dropped", dropped)
	}

	conf := llm.CoverageConfidence(fields, ocrSource)
	for name, f := range fields {
		f.Confidence = conf
		fields[name] = f
	}

	c.logger.Info("llm.extract.ok",
		"req_id", rid,
		"fields", len(fields),
		"confidence", conf,
		"advisory_confidence", advisory,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return extract.AIResult{
		Fields:      fields,
		Confidence:  conf,
		Advisory:    advisory,
		RawResponse: content,
		Truncated:   truncated,
		ModelName:   model,
	}
}

// postWithRetry sends the completion request with the rate limiter, circuit
// breaker, and bounded backoff retry. Retries are idempotent: the identical
// body is resent. Only transport-level failures are retried.
func (c *Client) postWithRetry(ctx context.Context, rid, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	backoff := c.cfg.RetryBackoff
	var lastErr error
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		raw, retryable, err := c.breakerPost(ctx, url, b)
		if err == nil {
			return raw, nil
		}
		lastErr = err
		if !retryable || attempt == c.cfg.MaxRetries {
			break
		}

		c.logger.Warn("llm.http.retry",
			"req_id", rid, "attempt", attempt+1, "max", c.cfg.MaxRetries, "backoff_ms", backoff.Milliseconds(), "error", err,
		)
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
		backoff *= 2
	}
	return nil, lastErr
}

func (c *Client) breakerPost(ctx context.Context, url string, body []byte) ([]byte, bool, error) {
	var retryable bool
	raw, err := c.breaker.Execute(func() ([]byte, error) {
		data, r, err := c.post(ctx, url, body)
		retryable = r
		return data, err
	})
	return raw, retryable, err
}

// post returns (body, retryable, error). 5xx and 429 are retryable; other
// non-2xx statuses are terminal call failures.
func (c *Client) post(ctx context.Context, url string, body []byte) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("completion http error: %w", err)
	}
	defer func(rc io.ReadCloser) {
		if cerr := rc.Close(); cerr != nil {
			c.logger.Warn("llm.http.response_body_close_error", "error", cerr)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		retryable := resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests
		return raw, retryable, fmt.Errorf("completion status %d: %s", resp.StatusCode, firstLine(raw))
	}
	return raw, false, nil
}

func firstLine(b []byte) string {
	s := string(b)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if len(s) > 300 {
		s = s[:300]
	}
	return s
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
