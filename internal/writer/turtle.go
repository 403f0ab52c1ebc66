package writer

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/eurocent/sentimentCrawler/internal/rdf"
)

var turtlePrefixes = []struct {
	prefix    string
	namespace string
}{
	{prefix: "rdf", namespace: rdf.RDFNs},
	{prefix: "xsd", namespace: rdf.XSDNs},
}

// TurtleWriter writes Turtle, grouping consecutive triples sharing a subject
// (with ';') or a subject and a predicate (with ',')
type TurtleWriter struct {
	w             *bufio.Writer
	headerWritten bool
	lastSubject   rdf.Term
	lastPredicate rdf.IRI
	closed        bool
}

// NewTurtleWriter creates a Turtle writer
func NewTurtleWriter(w io.Writer) *TurtleWriter {
	return &TurtleWriter{w: bufio.NewWriter(w)}
}

// StartDocument writes the prefix header
func (t *TurtleWriter) StartDocument(documentURI string) error {
	return t.writeHeader()
}

// Receive writes given triple
func (t *TurtleWriter) Receive(triple rdf.Triple) error {
	if t.closed {
		return ErrClosed
	}

	if err := t.writeHeader(); err != nil {
		return err
	}

	var err error
	switch {
	case t.lastSubject == nil:
		_, err = fmt.Fprintf(t.w, "%s %s %s",
			t.encode(triple.Subject), t.encodePredicate(triple.Predicate), t.encode(triple.Object))
	case t.lastSubject == triple.Subject && t.lastPredicate == triple.Predicate:
		_, err = fmt.Fprintf(t.w, " ,\n\t\t%s", t.encode(triple.Object))
	case t.lastSubject == triple.Subject:
		_, err = fmt.Fprintf(t.w, " ;\n\t%s %s", t.encodePredicate(triple.Predicate), t.encode(triple.Object))
	default:
		_, err = fmt.Fprintf(t.w, " .\n\n%s %s %s",
			t.encode(triple.Subject), t.encodePredicate(triple.Predicate), t.encode(triple.Object))
	}

	t.lastSubject = triple.Subject
	t.lastPredicate = triple.Predicate

	return err
}

// Close terminates the last statement and flushes the output
func (t *TurtleWriter) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true

	if err := t.writeHeader(); err != nil {
		return err
	}

	if t.lastSubject != nil {
		if _, err := t.w.WriteString(" .\n"); err != nil {
			return err
		}
	}

	return t.w.Flush()
}

func (t *TurtleWriter) writeHeader() error {
	if t.headerWritten {
		return nil
	}
	t.headerWritten = true

	for _, p := range turtlePrefixes {
		if _, err := fmt.Fprintf(t.w, "@prefix %s: <%s> .\n", p.prefix, p.namespace); err != nil {
			return err
		}
	}

	_, err := t.w.WriteString("\n")
	return err
}

func (t *TurtleWriter) encodePredicate(p rdf.IRI) string {
	if p == rdf.Type {
		return "a"
	}
	return t.encodeIRI(p)
}

func (t *TurtleWriter) encode(term rdf.Term) string {
	switch v := term.(type) {
	case rdf.IRI:
		return t.encodeIRI(v)
	case rdf.Literal:
		if v.Language == "" && v.Datatype != "" {
			return `"` + rdf.EscapeString(v.Value) + `"^^` + t.encodeIRI(v.Datatype)
		}
		return v.NTriples()
	default:
		return term.NTriples()
	}
}

func (t *TurtleWriter) encodeIRI(iri rdf.IRI) string {
	// a prefixed name cannot end with '.'
	ns, local, ok := rdf.SplitIRI(iri)
	if ok && !strings.HasSuffix(local, ".") {
		for _, p := range turtlePrefixes {
			if p.namespace == ns {
				return p.prefix + ":" + local
			}
		}
	}
	return iri.NTriples()
}
