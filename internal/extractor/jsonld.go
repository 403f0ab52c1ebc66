package extractor

import (
	"fmt"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/eurocent/sentimentCrawler/internal/rdf"
	"github.com/piprate/json-gold/ld"
)

// ContextLoader loads the remote @context documents referenced by JSON-LD
type ContextLoader interface {
	ld.DocumentLoader
}

// jsonLDExtractor converts JSON-LD to RDF, either the blocks embedded in HTML
// script elements or a whole JSON-LD document
type jsonLDExtractor struct {
	loader ContextLoader
}

func (e *jsonLDExtractor) Name() string { return "html-embedded-jsonld" }

func (e *jsonLDExtractor) Supports(contentType string) bool {
	return isHTML(contentType) || isJSONLD(contentType)
}

func (e *jsonLDExtractor) Extract(in *Input, out *Output) error {
	if in.HTML == nil {
		return e.extractBlock(in, out, string(in.Document.Body), "_")
	}

	var err error
	in.HTML.Find(`script[type="application/ld+json"]`).EachWithBreak(func(i int, s *goquery.Selection) bool {
		err = e.extractBlock(in, out, s.Text(), fmt.Sprintf("_%d_", i))
		if err != nil {
			err = fmt.Errorf("invalid JSON-LD block #%d: %w", i, err)
			return false
		}
		return true
	})

	return err
}

func (e *jsonLDExtractor) extractBlock(in *Input, out *Output, block, scope string) error {
	if strings.TrimSpace(block) == "" {
		return nil
	}

	doc, err := ld.DocumentFromReader(strings.NewReader(block))
	if err != nil {
		return err
	}

	opts := ld.NewJsonLdOptions(in.Document.URI)
	if e.loader != nil {
		opts.DocumentLoader = e.loader
	}

	res, err := ld.NewJsonLdProcessor().ToRDF(doc, opts)
	if err != nil {
		return err
	}

	dataset, ok := res.(*ld.RDFDataset)
	if !ok {
		return fmt.Errorf("unexpected JSON-LD processor result %T", res)
	}

	triples := datasetTriples(dataset, func(label string) rdf.BlankNode {
		return rdf.BlankNode(out.prefix + scope + label)
	})

	// Sort since the processor output order depends on its internal maps
	rdf.Sort(triples)
	for _, t := range triples {
		out.Emit(t.Subject, t.Predicate, t.Object)
	}

	return nil
}

// datasetTriples flattens every graph of the dataset, graph names are dropped.
// Statements using a generalized (non IRI) predicate are skipped.
func datasetTriples(dataset *ld.RDFDataset, blank func(label string) rdf.BlankNode) []rdf.Triple {
	var names []string
	for name := range dataset.Graphs {
		names = append(names, name)
	}
	sort.Strings(names)

	var triples []rdf.Triple
	for _, name := range names {
		for _, q := range dataset.Graphs[name] {
			s := nodeTerm(q.Subject, blank)
			p, ok := nodeTerm(q.Predicate, blank).(rdf.IRI)
			o := nodeTerm(q.Object, blank)
			if s == nil || !ok || o == nil {
				continue
			}
			triples = append(triples, rdf.NewTriple(s, p, o))
		}
	}

	return triples
}

func nodeTerm(node ld.Node, blank func(label string) rdf.BlankNode) rdf.Term {
	switch n := node.(type) {
	case *ld.IRI:
		return rdf.IRI(n.Value)
	case *ld.BlankNode:
		return blank(strings.TrimPrefix(n.Attribute, "_:"))
	case *ld.Literal:
		if n.Language != "" {
			return rdf.NewLangLiteral(n.Value, n.Language)
		}
		return rdf.NewTypedLiteral(n.Value, rdf.IRI(n.Datatype))
	}
	return nil
}

func isJSONLD(contentType string) bool {
	return contentType == "application/ld+json" || contentType == "application/json"
}
