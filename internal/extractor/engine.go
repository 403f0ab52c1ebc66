// Package extractor turns a fetched document into triples. The engine runs every
// extractor supporting the document media type, in a fixed order, and pushes the
// produced triples into a writer.
package extractor

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/eurocent/sentimentCrawler/internal/rdf"
	"github.com/eurocent/sentimentCrawler/internal/source"
	"github.com/eurocent/sentimentCrawler/internal/writer"
	"github.com/rs/zerolog/log"
)

// ErrUnsupportedContentType is returned when no extractor handles the document
var ErrUnsupportedContentType = errors.New("unsupported content type")

// Input is the document given to the extractors
type Input struct {
	Document source.Document
	// Base is the parsed document URI, used to resolve relative references
	Base *url.URL
	// DocumentIRI is the IRI the document describes itself as
	DocumentIRI rdf.IRI
	// HTML is the parsed document, nil when the document is not HTML
	HTML *goquery.Document
}

// Output collects the triples produced by one extractor
type Output struct {
	prefix  string
	next    int
	triples []rdf.Triple
}

// Emit adds a triple to the output
func (o *Output) Emit(subject rdf.Term, predicate rdf.IRI, object rdf.Term) {
	o.triples = append(o.triples, rdf.NewTriple(subject, predicate, object))
}

// BlankNode returns a fresh blank node, unique across extractors
func (o *Output) BlankNode() rdf.BlankNode {
	b := rdf.BlankNode(fmt.Sprintf("%s_%d", o.prefix, o.next))
	o.next++
	return b
}

// Triples returns the triples emitted so far
func (o *Output) Triples() []rdf.Triple {
	return o.triples
}

// Extractor extracts triples of a given markup or syntax
type Extractor interface {
	// Name identifies the extractor in logs and reports
	Name() string
	// Supports reports whether documents of given media type can be handled
	Supports(contentType string) bool
	Extract(in *Input, out *Output) error
}

// ReportEntry is the number of triples produced by an extractor
type ReportEntry struct {
	Extractor string
	Triples   int
}

// Report lists the extractors that ran, in order
type Report []ReportEntry

// Total returns the total number of extracted triples
func (r Report) Total() int {
	total := 0
	for _, e := range r {
		total += e.Triples
	}
	return total
}

// Engine runs extractors over documents
type Engine struct {
	extractors []Extractor
}

// NewEngine create a new Engine running given extractors
func NewEngine(extractors ...Extractor) *Engine {
	return &Engine{extractors: extractors}
}

// DefaultExtractors returns the extractors run by the crawler: head metadata,
// embedded JSON-LD, RDFa, microdata, microformats and raw N-Quads
func DefaultExtractors(loader ContextLoader) []Extractor {
	return []Extractor{
		&headTitleExtractor{},
		&headMetaExtractor{},
		&headLinksExtractor{},
		&jsonLDExtractor{loader: loader},
		&rdfaExtractor{},
		&microdataExtractor{},
		&microformatsExtractor{},
		&nquadsExtractor{},
	}
}

// Extract runs the supported extractors over doc and writes the produced
// triples to h. Extraction stops at the first failing extractor.
func (e *Engine) Extract(doc source.Document, h writer.Handler) (Report, error) {
	base, err := url.Parse(doc.URI)
	if err != nil {
		return nil, fmt.Errorf("invalid document URI %s: %w", doc.URI, err)
	}

	in := &Input{
		Document:    doc,
		Base:        base,
		DocumentIRI: rdf.IRI(doc.URI),
	}

	var selected []Extractor
	for _, ex := range e.extractors {
		if ex.Supports(doc.ContentType) {
			selected = append(selected, ex)
		}
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedContentType, doc.ContentType)
	}

	if isHTML(doc.ContentType) {
		in.HTML, err = goquery.NewDocumentFromReader(bytes.NewReader(doc.Body))
		if err != nil {
			return nil, fmt.Errorf("error while parsing HTML: %w", err)
		}
	}

	if err := h.StartDocument(doc.URI); err != nil {
		return nil, err
	}

	var report Report
	for _, ex := range selected {
		out := &Output{prefix: blankNodePrefix(ex.Name())}

		if err := ex.Extract(in, out); err != nil {
			return report, fmt.Errorf("extractor %s failed: %w", ex.Name(), err)
		}

		for _, t := range out.Triples() {
			if err := h.Receive(t); err != nil {
				return report, fmt.Errorf("error while writing triple: %w", err)
			}
		}

		log.Debug().
			Str("extractor", ex.Name()).
			Int("triples", len(out.Triples())).
			Msg("Extractor done")

		report = append(report, ReportEntry{Extractor: ex.Name(), Triples: len(out.Triples())})
	}

	return report, nil
}

func isHTML(contentType string) bool {
	return contentType == "text/html" || contentType == "application/xhtml+xml"
}

func blankNodePrefix(name string) string {
	return strings.Replace(strings.TrimPrefix(name, "html-"), "-", "", -1)
}
