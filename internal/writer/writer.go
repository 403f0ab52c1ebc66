// Package writer contains the triple serializers a run can write its output with
package writer

import (
	"errors"

	"github.com/eurocent/sentimentCrawler/internal/rdf"
)

// ErrClosed is returned when a triple is received after Close
var ErrClosed = errors.New("writer is closed")

// Handler receives the triples extracted from a document and serializes them
type Handler interface {
	// StartDocument is called once before any triple with the URI of the
	// document the triples are extracted from
	StartDocument(documentURI string) error
	// Receive serialize given triple
	Receive(t rdf.Triple) error
	// Close writes any trailer and flushes buffered output
	Close() error
}
