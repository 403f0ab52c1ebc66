package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/eurocent/sentimentCrawler/internal/rdf"
)

// RDFa initial context prefixes
var rdfaPrefixes = map[string]string{
	"cc":      "http://creativecommons.org/ns#",
	"dc":      rdf.DCTerms,
	"dcterms": rdf.DCTerms,
	"foaf":    "http://xmlns.com/foaf/0.1/",
	"og":      "http://ogp.me/ns#",
	"owl":     "http://www.w3.org/2002/07/owl#",
	"rdf":     rdf.RDFNs,
	"rdfs":    "http://www.w3.org/2000/01/rdf-schema#",
	"schema":  "http://schema.org/",
	"sioc":    "http://rdfs.org/sioc/ns#",
	"skos":    "http://www.w3.org/2004/02/skos/core#",
	"vcard":   "http://www.w3.org/2006/vcard/ns#",
	"xsd":     rdf.XSDNs,
}

type rdfaContext struct {
	subject  rdf.Term
	vocab    string
	prefixes map[string]string
	lang     string
}

// rdfaExtractor implements the RDFa Lite 1.1 attributes (vocab, prefix, typeof,
// property, resource) plus about, content, datatype, href and src
type rdfaExtractor struct{}

func (e *rdfaExtractor) Name() string { return "html-rdfa11" }

func (e *rdfaExtractor) Supports(contentType string) bool { return isHTML(contentType) }

func (e *rdfaExtractor) Extract(in *Input, out *Output) error {
	ctx := rdfaContext{
		subject:  in.DocumentIRI,
		prefixes: rdfaPrefixes,
	}

	in.HTML.Selection.Children().Each(func(i int, s *goquery.Selection) {
		e.walk(in, out, s, ctx)
	})

	return nil
}

func (e *rdfaExtractor) walk(in *Input, out *Output, s *goquery.Selection, ctx rdfaContext) {
	if vocab, exist := s.Attr("vocab"); exist {
		if iri, ok := resolve(in.Base, vocab); ok && strings.TrimSpace(vocab) != "" {
			ctx.vocab = string(iri)
		} else {
			ctx.vocab = ""
		}
	}
	if prefix, exist := s.Attr("prefix"); exist {
		ctx.prefixes = parseRDFaPrefixes(prefix, ctx.prefixes)
	}
	if lang, exist := s.Attr("lang"); exist {
		ctx.lang = strings.TrimSpace(lang)
	}

	about, hasAbout := s.Attr("about")
	typeOf, hasTypeOf := s.Attr("typeof")
	property, hasProperty := s.Attr("property")

	subject := ctx.subject
	if hasAbout {
		if iri, ok := resolve(in.Base, about); ok {
			subject = iri
		}
	}

	var typed rdf.Term
	if hasTypeOf {
		switch {
		case hasAbout:
			typed = subject
		case e.reference(in, s) != nil:
			typed = e.reference(in, s)
		default:
			typed = out.BlankNode()
		}

		for _, token := range strings.Fields(typeOf) {
			if iri, ok := e.expand(token, ctx); ok {
				out.Emit(typed, rdf.Type, iri)
			}
		}
	}

	childSubject := subject
	if hasProperty {
		var object rdf.Term
		switch {
		case typed != nil && !hasAbout:
			object = typed
			childSubject = typed
		case e.reference(in, s) != nil:
			object = e.reference(in, s)
		default:
			object = e.literal(s, ctx)
		}

		for _, token := range strings.Fields(property) {
			if iri, ok := e.expand(token, ctx); ok {
				out.Emit(subject, iri, object)
			}
		}
	} else if typed != nil {
		childSubject = typed
	} else if resource, exist := s.Attr("resource"); exist {
		if iri, ok := resolve(in.Base, resource); ok {
			childSubject = iri
		}
	}

	ctx.subject = childSubject
	s.Children().Each(func(i int, c *goquery.Selection) {
		e.walk(in, out, c, ctx)
	})
}

// reference returns the IRI given by resource, href or src, in that order
func (e *rdfaExtractor) reference(in *Input, s *goquery.Selection) rdf.Term {
	for _, attr := range []string{"resource", "href", "src"} {
		if v, exist := s.Attr(attr); exist {
			if iri, ok := resolve(in.Base, v); ok {
				return iri
			}
		}
	}
	return nil
}

func (e *rdfaExtractor) literal(s *goquery.Selection, ctx rdfaContext) rdf.Term {
	value, exist := s.Attr("content")
	if !exist {
		value, exist = s.Attr("datetime")
	}
	if !exist {
		value = s.Text()
	}

	if datatype, exist := s.Attr("datatype"); exist && datatype != "" {
		if iri, ok := e.expand(datatype, ctx); ok {
			return rdf.NewTypedLiteral(value, iri)
		}
	}

	return literal(value, ctx.lang)
}

// expand turns a term, a CURIE or an absolute IRI into an IRI
func (e *rdfaExtractor) expand(token string, ctx rdfaContext) (rdf.IRI, bool) {
	if idx := strings.Index(token, ":"); idx > 0 {
		if ns, exist := ctx.prefixes[token[:idx]]; exist {
			return rdf.IRI(ns + token[idx+1:]), true
		}
		if isAbsoluteIRI(token) {
			return rdf.IRI(token), true
		}
		return "", false
	}

	if ctx.vocab == "" {
		return "", false
	}
	return rdf.IRI(ctx.vocab + token), true
}

// parseRDFaPrefixes parses "p1: iri1 p2: iri2" into a copy of given mappings
func parseRDFaPrefixes(value string, parent map[string]string) map[string]string {
	prefixes := map[string]string{}
	for k, v := range parent {
		prefixes[k] = v
	}

	fields := strings.Fields(value)
	for i := 0; i+1 < len(fields); i++ {
		if !strings.HasSuffix(fields[i], ":") {
			continue
		}
		prefixes[strings.ToLower(strings.TrimSuffix(fields[i], ":"))] = fields[i+1]
		i++
	}

	return prefixes
}
