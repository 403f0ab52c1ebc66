package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/eurocent/sentimentCrawler/internal/rdf"
)

// elements whose microdata value is an URL attribute
var microdataURLAttrs = map[string]string{
	"a":      "href",
	"area":   "href",
	"link":   "href",
	"audio":  "src",
	"embed":  "src",
	"iframe": "src",
	"img":    "src",
	"source": "src",
	"track":  "src",
	"video":  "src",
	"object": "data",
}

// microdataExtractor extracts HTML microdata items (itemscope, itemtype, itemid,
// itemprop). Property names which are not absolute IRIs are resolved against the
// vocabulary of the item first type.
type microdataExtractor struct{}

func (e *microdataExtractor) Name() string { return "html-microdata" }

func (e *microdataExtractor) Supports(contentType string) bool { return isHTML(contentType) }

func (e *microdataExtractor) Extract(in *Input, out *Output) error {
	in.HTML.Find("[itemscope]").Not("[itemprop]").Each(func(i int, s *goquery.Selection) {
		e.item(in, out, s)
	})
	return nil
}

// item emits the triples of the item rooted at s and returns its subject
func (e *microdataExtractor) item(in *Input, out *Output, s *goquery.Selection) rdf.Term {
	var subject rdf.Term
	if id, exist := s.Attr("itemid"); exist {
		if iri, ok := resolve(in.Base, id); ok {
			subject = iri
		}
	}
	if subject == nil {
		subject = out.BlankNode()
	}

	vocab := ""
	itemType, _ := s.Attr("itemtype")
	for _, t := range strings.Fields(itemType) {
		if !isAbsoluteIRI(t) {
			continue
		}
		if vocab == "" {
			vocab = vocabulary(t)
		}
		out.Emit(subject, rdf.Type, rdf.IRI(t))
	}

	e.properties(in, out, s.Children(), subject, vocab)

	return subject
}

func (e *microdataExtractor) properties(in *Input, out *Output, children *goquery.Selection, subject rdf.Term, vocab string) {
	children.Each(func(i int, c *goquery.Selection) {
		if prop, exist := c.Attr("itemprop"); exist {
			var value rdf.Term
			if _, scoped := c.Attr("itemscope"); scoped {
				value = e.item(in, out, c)
			} else {
				value = e.value(in, c)
			}

			for _, name := range strings.Fields(prop) {
				switch {
				case isAbsoluteIRI(name):
					out.Emit(subject, rdf.IRI(name), value)
				case vocab != "":
					out.Emit(subject, rdf.IRI(vocab+name), value)
				}
			}
		}

		// nested items own their content
		if _, scoped := c.Attr("itemscope"); scoped {
			return
		}
		e.properties(in, out, c.Children(), subject, vocab)
	})
}

func (e *microdataExtractor) value(in *Input, s *goquery.Selection) rdf.Term {
	tag := goquery.NodeName(s)

	if attr, exist := microdataURLAttrs[tag]; exist {
		if v, exist := s.Attr(attr); exist {
			if iri, ok := resolve(in.Base, v); ok {
				return iri
			}
		}
	}

	switch tag {
	case "meta":
		v, _ := s.Attr("content")
		return rdf.NewLiteral(v)
	case "data", "meter":
		v, _ := s.Attr("value")
		return rdf.NewLiteral(v)
	case "time":
		if v, exist := s.Attr("datetime"); exist {
			return rdf.NewLiteral(v)
		}
	}

	return rdf.NewLiteral(strings.TrimSpace(s.Text()))
}
