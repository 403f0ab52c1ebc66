package extractor

import (
	"bytes"
	"net/url"
	"sort"
	"strings"

	"github.com/eurocent/sentimentCrawler/internal/rdf"
	"willnorris.com/go/microformats"
)

const mf2Vocab = "http://microformats.org/profile/"

// microformatsExtractor maps microformats2 items to triples using the
// microformats.org profile vocabulary; every item is a blank node linked from
// the document
type microformatsExtractor struct{}

func (e *microformatsExtractor) Name() string { return "html-mf2" }

func (e *microformatsExtractor) Supports(contentType string) bool { return isHTML(contentType) }

func (e *microformatsExtractor) Extract(in *Input, out *Output) error {
	data := microformats.Parse(bytes.NewReader(in.Document.Body), in.Base)

	for _, item := range data.Items {
		subject := e.item(out, item)
		out.Emit(in.DocumentIRI, mf2Vocab+"item", subject)
	}

	return nil
}

func (e *microformatsExtractor) item(out *Output, item *microformats.Microformat) rdf.Term {
	subject := out.BlankNode()

	for _, t := range item.Type {
		out.Emit(subject, rdf.Type, rdf.IRI(mf2Vocab+localName(t)))
	}

	// map iteration order is random
	var names []string
	for name := range item.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		predicate := rdf.IRI(mf2Vocab + localName(name))
		for _, raw := range item.Properties[name] {
			if object := e.value(out, raw); object != nil {
				out.Emit(subject, predicate, object)
			}
		}
	}

	for _, child := range item.Children {
		out.Emit(subject, mf2Vocab+"child", e.item(out, child))
	}

	return subject
}

func (e *microformatsExtractor) value(out *Output, raw interface{}) rdf.Term {
	switch v := raw.(type) {
	case *microformats.Microformat:
		return e.item(out, v)
	case string:
		return textOrIRI(v)
	case map[string]string:
		return textOrIRI(v["value"])
	case map[string]interface{}:
		if s, ok := v["value"].(string); ok {
			return textOrIRI(s)
		}
	}
	return nil
}

// textOrIRI returns an IRI for absolute http(s) URLs, a literal otherwise
func textOrIRI(value string) rdf.Term {
	value = strings.TrimSpace(value)
	if u, err := url.Parse(value); err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" && !strings.ContainsAny(value, " \t\n") {
		return rdf.IRI(value)
	}
	return rdf.NewLiteral(value)
}
