package crawler

import (
	"bytes"
	"io"

	"github.com/eurocent/sentimentCrawler/internal/extractor"
	"github.com/eurocent/sentimentCrawler/internal/sink"
	"github.com/eurocent/sentimentCrawler/internal/source"
	"github.com/eurocent/sentimentCrawler/internal/writer"
	"github.com/rs/zerolog/log"
)

// Result describes a successful run
type Result struct {
	DocumentURI string
	Format      writer.Format
	Path        string
	Report      extractor.Report
}

// Runner fetches a document, extracts it and writes the serialized triples
type Runner struct {
	source    source.Source
	engine    *extractor.Engine
	sink      sink.Sink
	newWriter func(f writer.Format, w io.Writer) writer.Handler
}

// NewRunner create a new Runner
func NewRunner(src source.Source, engine *extractor.Engine, snk sink.Sink) *Runner {
	return &Runner{source: src, engine: engine, sink: snk, newWriter: writer.New}
}

// Run executes the run described by cfg. The output is buffered in memory and
// only written once the extraction succeeded, a failed run leaves no file.
func (r *Runner) Run(cfg Config) (Result, error) {
	doc, err := r.source.Fetch(cfg.URI)
	if err != nil {
		log.Err(err).Str("url", cfg.URI).Msg("Unable to fetch document")
		return Result{}, err
	}

	log.Debug().
		Str("url", doc.URI).
		Str("content-type", doc.ContentType).
		Int("size", len(doc.Body)).
		Msg("Document fetched")

	buf := &bytes.Buffer{}
	h := r.newWriter(cfg.Format, buf)

	log.Info().Str("writer", cfg.Format.WriterName()).Msg("Selected output writer")

	report, err := r.engine.Extract(doc, h)
	if err != nil {
		log.Err(err).
			Str("url", doc.URI).
			Str("content-type", doc.ContentType).
			Msg("Unable to extract document")
		return Result{}, err
	}

	// The buffer is written even if the trailer could not be
	if err := h.Close(); err != nil {
		log.Err(err).Str("writer", cfg.Format.WriterName()).Msg("Error while closing output writer")
	}

	log.Info().
		Str("url", doc.URI).
		Int("triples", report.Total()).
		Msg("Extraction done")

	path, err := r.sink.Write(buf.Bytes())
	if err != nil {
		log.Err(err).Str("dir", cfg.OutputDir).Msg("Unable to write output file")
		return Result{}, err
	}

	return Result{
		DocumentURI: doc.URI,
		Format:      cfg.Format,
		Path:        path,
		Report:      report,
	}, nil
}
