package writer

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/eurocent/sentimentCrawler/internal/rdf"
)

const trixNs = "http://www.w3.org/2004/03/trix/trix-1/"

// TriXWriter writes a TriX document holding one graph named after the
// extracted document
type TriXWriter struct {
	w           *bufio.Writer
	documentURI string
	graphOpened bool
	closed      bool
}

// NewTriXWriter creates a TriX writer
func NewTriXWriter(w io.Writer) *TriXWriter {
	return &TriXWriter{w: bufio.NewWriter(w)}
}

// StartDocument records the graph name
func (x *TriXWriter) StartDocument(documentURI string) error {
	x.documentURI = documentURI
	return nil
}

// Receive writes given triple inside the document graph
func (x *TriXWriter) Receive(t rdf.Triple) error {
	if x.closed {
		return ErrClosed
	}

	if err := x.openGraph(); err != nil {
		return err
	}

	if _, err := x.w.WriteString("\t\t<triple>\n"); err != nil {
		return err
	}
	for _, term := range []rdf.Term{t.Subject, t.Predicate, t.Object} {
		if _, err := x.w.WriteString("\t\t\t" + trixTerm(term) + "\n"); err != nil {
			return err
		}
	}
	_, err := x.w.WriteString("\t\t</triple>\n")
	return err
}

// Close terminates the graph and the document
func (x *TriXWriter) Close() error {
	if x.closed {
		return nil
	}
	x.closed = true

	if err := x.openGraph(); err != nil {
		return err
	}
	if _, err := x.w.WriteString("\t</graph>\n</TriX>\n"); err != nil {
		return err
	}

	return x.w.Flush()
}

func (x *TriXWriter) openGraph() error {
	if x.graphOpened {
		return nil
	}
	x.graphOpened = true

	if _, err := fmt.Fprintf(x.w, "%s<TriX xmlns=\"%s\">\n\t<graph>\n", xml.Header, trixNs); err != nil {
		return err
	}
	if x.documentURI != "" {
		if _, err := x.w.WriteString("\t\t<uri>" + escapeXML(x.documentURI) + "</uri>\n"); err != nil {
			return err
		}
	}
	return nil
}

func trixTerm(term rdf.Term) string {
	switch v := term.(type) {
	case rdf.IRI:
		return "<uri>" + escapeXML(string(v)) + "</uri>"
	case rdf.BlankNode:
		return "<id>" + escapeXML(string(v)) + "</id>"
	case rdf.Literal:
		switch {
		case v.Language != "":
			return `<plainLiteral xml:lang="` + escapeXML(v.Language) + `">` + escapeXML(v.Value) + "</plainLiteral>"
		case v.Datatype != "":
			return `<typedLiteral datatype="` + escapeXML(string(v.Datatype)) + `">` + escapeXML(v.Value) + "</typedLiteral>"
		default:
			return "<plainLiteral>" + escapeXML(v.Value) + "</plainLiteral>"
		}
	}
	return ""
}
