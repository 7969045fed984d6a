package service

import (
	"context"
	"errors"
	"io"

	"golang.org/x/text/language"

	"github.com/paiphyo4f20/Subtitles/internal/config"
	"github.com/paiphyo4f20/Subtitles/internal/memory"
	"github.com/paiphyo4f20/Subtitles/internal/provider"
	"github.com/paiphyo4f20/Subtitles/internal/review"
	"github.com/paiphyo4f20/Subtitles/internal/subtitle"
	"github.com/paiphyo4f20/Subtitles/pkg/file"
	"github.com/paiphyo4f20/Subtitles/pkg/log"
)

// Workflow sequences one full translate run: load, auto-translate,
// optional interactive review, export, persist memory.
type Workflow struct {
	cfg        config.Config
	translator *Translator
	store      *memory.Store
}

// NewWorkflow wires the orchestrator from its collaborators.
func NewWorkflow(cfg config.Config, p provider.Translator, store *memory.Store) *Workflow {
	return &Workflow{
		cfg: cfg,
		translator: NewTranslator(
			p,
			store,
			cfg.Translate.SourceLanguage.String(),
			cfg.Translate.TargetLanguage.String(),
		),
		store: store,
	}
}

// RunOptions controls a single workflow run.
type RunOptions struct {
	InputPath  string
	OutputPath string // empty means translated.srt next to the input
	Review     bool
	ReviewIn   io.Reader
	ReviewOut  io.Writer
}

// RunResult reports what a run produced.
type RunResult struct {
	Document   *subtitle.File
	OutputPath string
	Stats      Statistics
}

// Run executes the workflow. A failing memory persist at the end still
// returns the result alongside the error: the translations themselves
// are intact and the caller may retry Save on the store.
func (w *Workflow) Run(ctx context.Context, opts RunOptions) (*RunResult, error) {
	if opts.InputPath == "" {
		return nil, NewError(ErrValidation, "input subtitle path is required")
	}

	doc, err := subtitle.NewReader(opts.InputPath).Read()
	if err != nil {
		return nil, ClassifyReadError(err, opts.InputPath)
	}
	log.Info("Loaded %d subtitle blocks from %s", len(doc.Entries), opts.InputPath)

	w.checkSourceLanguage(doc)

	w.translator.AutoTranslate(ctx, doc.Entries, w.cfg.Translate.Concurrency)
	log.Info("Auto-translation complete")

	if opts.Review {
		// Session and driver errors are persistence-only: the reviewed
		// translations are already applied in memory. Keep going so the
		// export happens; the end-of-run Save below retries the store.
		session, err := review.NewSession(doc.Entries, w.store)
		if err != nil {
			log.Warn("Failed to persist translation memory after review: %v", err)
		} else {
			driver := review.NewConsoleDriver(opts.ReviewIn, opts.ReviewOut)
			if err := driver.Run(session); err != nil {
				log.Warn("Failed to persist translation memory after review: %v", err)
			}
		}
	}

	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = file.TranslatedPath(opts.InputPath)
	}

	if err := subtitle.NewWriter().Write(outputPath, doc); err != nil {
		return nil, WrapError(err, ErrFileWrite, "failed to export subtitle file").
			WithContext("path", outputPath)
	}
	log.Info("Exported to %s", outputPath)

	result := &RunResult{
		Document:   doc,
		OutputPath: outputPath,
		Stats:      ComputeStatistics(doc.Entries, w.store),
	}

	if err := w.store.Save(); err != nil {
		return result, WrapError(err, ErrFileWrite, "failed to persist translation memory").
			WithContext("store", w.store.Path())
	}

	return result, nil
}

// checkSourceLanguage warns when the detected document language does not
// look like the configured source language.
func (w *Workflow) checkSourceLanguage(doc *subtitle.File) {
	if doc.Language == language.Und {
		return
	}
	detected, _ := doc.Language.Base()
	configured, _ := w.cfg.Translate.SourceLanguage.Base()
	if detected != configured {
		log.Warn("Document language looks like %s but source language is configured as %s",
			detected, configured)
	}
}

// ClassifyReadError maps a subtitle read failure onto the error taxonomy
// so every command reports the same advice for the same failure.
func ClassifyReadError(err error, path string) error {
	switch {
	case errors.Is(err, subtitle.ErrMalformed):
		return WrapError(err, ErrMalformedDocument, "failed to parse subtitle file").
			WithContext("path", path)
	case errors.Is(err, subtitle.ErrNotFound):
		return WrapError(err, ErrFileNotFound, "subtitle file not found").
			WithContext("path", path)
	default:
		return WrapError(err, ErrFileRead, "failed to read subtitle file").
			WithContext("path", path)
	}
}
