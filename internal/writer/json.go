package writer

import (
	"bufio"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/eurocent/sentimentCrawler/internal/rdf"
)

var jsonAPI = jsoniter.Config{
	EscapeHTML:  false,
	SortMapKeys: true,
}.Froze()

// JSONTerm is the JSON representation of a term
type JSONTerm struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Lang     string `json:"lang,omitempty"`
	Datatype string `json:"datatype,omitempty"`
}

// JSONQuad is the JSON representation of an extracted statement
type JSONQuad struct {
	Subject   JSONTerm `json:"s"`
	Predicate string   `json:"p"`
	Object    JSONTerm `json:"o"`
	Graph     string   `json:"g,omitempty"`
}

// JSONDocument is the whole JSON output
type JSONDocument struct {
	Quads []JSONQuad `json:"quads"`
}

// JSONWriter streams a JSONDocument, one quad per line
type JSONWriter struct {
	w           *bufio.Writer
	documentURI string
	opened      bool
	count       int
	closed      bool
}

// NewJSONWriter creates a JSON writer
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: bufio.NewWriter(w)}
}

// StartDocument records the graph name of the following quads
func (j *JSONWriter) StartDocument(documentURI string) error {
	j.documentURI = documentURI
	return j.open()
}

// Receive writes given triple as a quad
func (j *JSONWriter) Receive(t rdf.Triple) error {
	if j.closed {
		return ErrClosed
	}

	if err := j.open(); err != nil {
		return err
	}

	b, err := jsonAPI.Marshal(JSONQuad{
		Subject:   toJSONTerm(t.Subject),
		Predicate: string(t.Predicate),
		Object:    toJSONTerm(t.Object),
		Graph:     j.documentURI,
	})
	if err != nil {
		return err
	}

	if j.count > 0 {
		if _, err := j.w.WriteString(",\n"); err != nil {
			return err
		}
	}
	j.count++

	_, err = j.w.Write(b)
	return err
}

// Close terminates the quads array and flushes the output
func (j *JSONWriter) Close() error {
	if j.closed {
		return nil
	}
	j.closed = true

	if err := j.open(); err != nil {
		return err
	}
	if _, err := j.w.WriteString("\n]}\n"); err != nil {
		return err
	}

	return j.w.Flush()
}

func (j *JSONWriter) open() error {
	if j.opened {
		return nil
	}
	j.opened = true

	_, err := j.w.WriteString("{\"quads\":[\n")
	return err
}

func toJSONTerm(term rdf.Term) JSONTerm {
	switch v := term.(type) {
	case rdf.IRI:
		return JSONTerm{Type: "uri", Value: string(v)}
	case rdf.BlankNode:
		return JSONTerm{Type: "bnode", Value: string(v)}
	case rdf.Literal:
		return JSONTerm{Type: "literal", Value: v.Value, Lang: v.Language, Datatype: string(v.Datatype)}
	}
	return JSONTerm{}
}
