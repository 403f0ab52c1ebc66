package writer

import (
	"bufio"
	"io"

	"github.com/eurocent/sentimentCrawler/internal/rdf"
)

// NTriplesWriter writes one triple per line.
// Its graph aware variant (NQuadsWriter) appends the document URI to each line.
type NTriplesWriter struct {
	w      *bufio.Writer
	graph  rdf.Term
	quads  bool
	closed bool
}

// NewNTriplesWriter creates a N-Triples writer
func NewNTriplesWriter(w io.Writer) *NTriplesWriter {
	return &NTriplesWriter{w: bufio.NewWriter(w)}
}

// NewNQuadsWriter creates a N-Quads writer using the document URI as graph label
func NewNQuadsWriter(w io.Writer) *NTriplesWriter {
	return &NTriplesWriter{w: bufio.NewWriter(w), quads: true}
}

// StartDocument records the document URI, used as graph label by N-Quads
func (n *NTriplesWriter) StartDocument(documentURI string) error {
	if n.quads && documentURI != "" {
		n.graph = rdf.IRI(documentURI)
	}
	return nil
}

// Receive writes the triple as a single statement line
func (n *NTriplesWriter) Receive(t rdf.Triple) error {
	if n.closed {
		return ErrClosed
	}

	line := t.Subject.NTriples() + " " + t.Predicate.NTriples() + " " + t.Object.NTriples()
	if n.graph != nil {
		line += " " + n.graph.NTriples()
	}

	_, err := n.w.WriteString(line + " .\n")
	return err
}

// Close flushes pending lines
func (n *NTriplesWriter) Close() error {
	if n.closed {
		return nil
	}
	n.closed = true
	return n.w.Flush()
}
