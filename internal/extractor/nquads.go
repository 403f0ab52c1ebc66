package extractor

import (
	"github.com/eurocent/sentimentCrawler/internal/rdf"
	"github.com/piprate/json-gold/ld"
)

// nquadsExtractor reads documents already serialized as N-Triples or N-Quads
type nquadsExtractor struct{}

func (e *nquadsExtractor) Name() string { return "rdf-nq" }

func (e *nquadsExtractor) Supports(contentType string) bool {
	return contentType == "application/n-triples" || contentType == "application/n-quads"
}

func (e *nquadsExtractor) Extract(in *Input, out *Output) error {
	dataset, err := ld.ParseNQuads(string(in.Document.Body))
	if err != nil {
		return err
	}

	triples := datasetTriples(dataset, func(label string) rdf.BlankNode {
		return rdf.BlankNode(out.prefix + "_" + label)
	})
	for _, t := range triples {
		out.Emit(t.Subject, t.Predicate, t.Object)
	}

	return nil
}
