package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/eurocent/sentimentCrawler/internal/rdf"
)

const (
	any23Vocab = "http://vocab.sindice.net/any23#"
	xhtmlVocab = "http://www.w3.org/1999/xhtml/vocab#"
)

// documentLang returns the language declared on the root element
func documentLang(doc *goquery.Document) string {
	root := doc.Find("html").First()
	if lang, exist := root.Attr("lang"); exist {
		return strings.TrimSpace(lang)
	}
	lang, _ := root.Attr("xml:lang")
	return strings.TrimSpace(lang)
}

func literal(value, lang string) rdf.Literal {
	if lang != "" {
		return rdf.NewLangLiteral(value, lang)
	}
	return rdf.NewLiteral(value)
}

// headTitleExtractor extracts the document <title> as dcterms:title
type headTitleExtractor struct{}

func (e *headTitleExtractor) Name() string { return "html-head-title" }

func (e *headTitleExtractor) Supports(contentType string) bool { return isHTML(contentType) }

func (e *headTitleExtractor) Extract(in *Input, out *Output) error {
	title := strings.TrimSpace(in.HTML.Find("title").First().Text())
	if title == "" {
		return nil
	}

	out.Emit(in.DocumentIRI, rdf.DCTerms+"title", literal(title, documentLang(in.HTML)))
	return nil
}

// headMetaExtractor extracts <meta name content> pairs. <meta property> is left
// to the RDFa extractor.
type headMetaExtractor struct{}

func (e *headMetaExtractor) Name() string { return "html-head-meta" }

func (e *headMetaExtractor) Supports(contentType string) bool { return isHTML(contentType) }

func (e *headMetaExtractor) Extract(in *Input, out *Output) error {
	lang := documentLang(in.HTML)

	in.HTML.Find("meta[name][content]").Each(func(i int, s *goquery.Selection) {
		name, _ := s.Attr("name")
		content, _ := s.Attr("content")

		name = strings.TrimSpace(name)
		content = strings.TrimSpace(content)
		if name == "" || content == "" {
			return
		}

		var predicate rdf.IRI
		if isAbsoluteIRI(name) {
			predicate = rdf.IRI(name)
		} else {
			predicate = rdf.IRI(any23Vocab + localName(name))
		}

		out.Emit(in.DocumentIRI, predicate, literal(content, lang))
	})

	return nil
}

// headLinksExtractor extracts <link rel href> as xhtml vocabulary relations
type headLinksExtractor struct{}

func (e *headLinksExtractor) Name() string { return "html-head-links" }

func (e *headLinksExtractor) Supports(contentType string) bool { return isHTML(contentType) }

func (e *headLinksExtractor) Extract(in *Input, out *Output) error {
	in.HTML.Find("link[rel][href]").Each(func(i int, s *goquery.Selection) {
		rel, _ := s.Attr("rel")
		href, _ := s.Attr("href")

		target, ok := resolve(in.Base, href)
		if !ok {
			return
		}

		for _, token := range strings.Fields(rel) {
			if isAbsoluteIRI(token) {
				out.Emit(in.DocumentIRI, rdf.IRI(token), target)
				continue
			}
			out.Emit(in.DocumentIRI, rdf.IRI(xhtmlVocab+localName(token)), target)
		}
	})

	return nil
}
