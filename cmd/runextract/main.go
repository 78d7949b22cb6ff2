package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/agrodesk/docextract/gen/ent"
	"github.com/agrodesk/docextract/internal/common"
	"github.com/agrodesk/docextract/internal/extract"
	"github.com/agrodesk/docextract/internal/llm/openai"
	"github.com/agrodesk/docextract/internal/pipeline"
	repo "github.com/agrodesk/docextract/internal/repository"
	"github.com/agrodesk/docextract/internal/rules"
)

// runextract runs the tiered pipeline on one text file against a local
// SQLite database and prints the result as JSON.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 || len(os.Args) > 3 {
		logger.Error("usage", "cmd", "runextract <text-file> [document-type]")
		os.Exit(2)
	}
	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		logger.Error("read input file", "path", os.Args[1], "error", err)
		os.Exit(1)
	}
	declaredType := ""
	if len(os.Args) == 3 {
		declaredType = os.Args[2]
	}

	dsn := os.Getenv("EXTRACT_DB")
	if dsn == "" {
		dsn = "file:docextract.db?_pragma=foreign_keys(1)"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	entc, err := repo.OpenSQLite(dsn, logger)
	if err != nil {
		logger.Error("open sqlite", "error", err)
		os.Exit(1)
	}
	defer func(entc *ent.Client) {
		if cerr := entc.Close(); cerr != nil {
			logger.Error("close ent client", "error", cerr)
		}
	}(entc)

	if err := entc.Schema.Create(ctx); err != nil {
		logger.Error("apply schema", "error", err)
		os.Exit(1)
	}

	cfg := common.LoadConfig()
	documentsRepo := repo.NewDocumentRepository(entc, logger)
	resultsRepo := repo.NewExtractionRepository(entc, logger)

	client := openai.NewClient(openai.Config{
		APIKey:         cfg.LLM.APIKey,
		BaseURL:        cfg.LLM.BaseURL,
		Model:          cfg.LLM.Model,
		Temperature:    cfg.LLM.Temperature,
		Timeout:        cfg.LLM.Timeout,
		MaxPromptChars: cfg.Extraction.MaxPromptChars,
		MaxRetries:     cfg.Extraction.MaxModelRetries,
		RatePerSec:     cfg.LLM.RatePerSec,
	}, logger)

	processor := pipeline.NewProcessor(
		logger, cfg.Extraction, rules.NewExtractor(logger), client, resultsRepo, nil,
	)

	docID, err := documentsRepo.CreateDocument(ctx, &extract.Document{
		RawText:      string(raw),
		DeclaredType: declaredType,
	}, os.Args[1])
	if err != nil {
		logger.Error("ingest document", "error", err)
		os.Exit(1)
	}

	start := time.Now()
	res, err := processor.Process(ctx, pipeline.Request{
		DocumentID:   docID,
		Text:         string(raw),
		DeclaredType: declaredType,
	})
	if err != nil {
		logger.Error("extraction failed", "error", err)
		os.Exit(1)
	}
	logger.Info("extraction finished",
		"extraction_id", res.ID,
		"status", string(res.Status),
		"tier", string(res.Metadata.Tier),
		"overall_confidence", res.Overall,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}
}
