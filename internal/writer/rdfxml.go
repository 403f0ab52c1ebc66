package writer

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/eurocent/sentimentCrawler/internal/rdf"
)

// RDFXMLWriter streams RDF/XML. Consecutive triples sharing a subject are written
// in the same rdf:Description, property namespaces are declared on the property
// element itself.
type RDFXMLWriter struct {
	w             *bufio.Writer
	headerWritten bool
	lastSubject   rdf.Term
	prefixes      map[string]string
	closed        bool
}

// NewRDFXMLWriter creates a RDF/XML writer
func NewRDFXMLWriter(w io.Writer) *RDFXMLWriter {
	return &RDFXMLWriter{
		w:        bufio.NewWriter(w),
		prefixes: map[string]string{rdf.RDFNs: "rdf"},
	}
}

// StartDocument writes the rdf:RDF opening element
func (x *RDFXMLWriter) StartDocument(documentURI string) error {
	return x.writeHeader()
}

// Receive writes given triple
func (x *RDFXMLWriter) Receive(t rdf.Triple) error {
	if x.closed {
		return ErrClosed
	}

	ns, local, ok := rdf.SplitIRI(t.Predicate)
	if !ok {
		return fmt.Errorf("predicate %s cannot be serialized as RDF/XML", t.Predicate)
	}

	if err := x.writeHeader(); err != nil {
		return err
	}

	if x.lastSubject != t.Subject {
		if err := x.closeDescription(); err != nil {
			return err
		}
		if err := x.openDescription(t.Subject); err != nil {
			return err
		}
		x.lastSubject = t.Subject
	}

	prefix, declared := x.prefixes[ns]
	if !declared {
		prefix = fmt.Sprintf("ns%d", len(x.prefixes)-1)
		x.prefixes[ns] = prefix
	}

	b := bytes.Buffer{}
	b.WriteString("\t\t<" + prefix + ":" + local)
	if prefix != "rdf" {
		b.WriteString(` xmlns:` + prefix + `="` + escapeXML(ns) + `"`)
	}

	switch o := t.Object.(type) {
	case rdf.IRI:
		b.WriteString(` rdf:resource="` + escapeXML(string(o)) + `"/>`)
	case rdf.BlankNode:
		b.WriteString(` rdf:nodeID="` + escapeXML(string(o)) + `"/>`)
	case rdf.Literal:
		if o.Language != "" {
			b.WriteString(` xml:lang="` + escapeXML(o.Language) + `"`)
		} else if o.Datatype != "" {
			b.WriteString(` rdf:datatype="` + escapeXML(string(o.Datatype)) + `"`)
		}
		b.WriteString(">" + escapeXML(o.Value) + "</" + prefix + ":" + local + ">")
	}
	b.WriteString("\n")

	_, err := x.w.Write(b.Bytes())
	return err
}

// Close terminates the document and flushes the output
func (x *RDFXMLWriter) Close() error {
	if x.closed {
		return nil
	}
	x.closed = true

	if err := x.writeHeader(); err != nil {
		return err
	}
	if err := x.closeDescription(); err != nil {
		return err
	}
	if _, err := x.w.WriteString("</rdf:RDF>\n"); err != nil {
		return err
	}

	return x.w.Flush()
}

func (x *RDFXMLWriter) writeHeader() error {
	if x.headerWritten {
		return nil
	}
	x.headerWritten = true

	_, err := fmt.Fprintf(x.w, "%s<rdf:RDF xmlns:rdf=\"%s\">\n", xml.Header, rdf.RDFNs)
	return err
}

func (x *RDFXMLWriter) openDescription(subject rdf.Term) error {
	var err error
	switch s := subject.(type) {
	case rdf.BlankNode:
		_, err = fmt.Fprintf(x.w, "\t<rdf:Description rdf:nodeID=\"%s\">\n", escapeXML(string(s)))
	default:
		_, err = fmt.Fprintf(x.w, "\t<rdf:Description rdf:about=\"%s\">\n", escapeXML(fmt.Sprint(s)))
	}
	return err
}

func (x *RDFXMLWriter) closeDescription() error {
	if x.lastSubject == nil {
		return nil
	}
	_, err := x.w.WriteString("\t</rdf:Description>\n")
	return err
}

func escapeXML(s string) string {
	b := bytes.Buffer{}
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
