package writer

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"

	"github.com/eurocent/sentimentCrawler/internal/rdf"
)

const docURI = "http://example.org/doc.html"

var sample = []rdf.Triple{
	rdf.NewTriple(rdf.IRI("http://example.org/a"), rdf.Type, rdf.IRI("http://schema.org/Article")),
	rdf.NewTriple(rdf.IRI("http://example.org/a"), rdf.IRI("http://schema.org/name"), rdf.NewLangLiteral("Hello <world>", "en")),
	rdf.NewTriple(rdf.IRI("http://example.org/a"), rdf.IRI("http://schema.org/name"), rdf.NewLiteral("Salut")),
	rdf.NewTriple(rdf.IRI("http://example.org/a"), rdf.IRI("http://schema.org/hasPart"), rdf.BlankNode("b0")),
	rdf.NewTriple(rdf.BlankNode("b0"), rdf.IRI("http://schema.org/wordCount"), rdf.NewTypedLiteral("12", rdf.XSDNs+"integer")),
}

func write(t *testing.T, h Handler, triples []rdf.Triple) {
	if err := h.StartDocument(docURI); err != nil {
		t.Fatalf("error while starting document: %s", err)
	}
	for _, tr := range triples {
		if err := h.Receive(tr); err != nil {
			t.Fatalf("error while writing triple: %s", err)
		}
	}
	if err := h.Close(); err != nil {
		t.Fatalf("error while closing writer: %s", err)
	}
}

func TestNTriplesWriter(t *testing.T) {
	b := bytes.Buffer{}
	write(t, NewNTriplesWriter(&b), sample[:2])

	want := `<http://example.org/a> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://schema.org/Article> .
<http://example.org/a> <http://schema.org/name> "Hello <world>"@en .
`
	if b.String() != want {
		t.Errorf("got: %s, want: %s", b.String(), want)
	}
}

func TestNQuadsWriter(t *testing.T) {
	b := bytes.Buffer{}
	write(t, NewNQuadsWriter(&b), sample[3:])

	want := `<http://example.org/a> <http://schema.org/hasPart> _:b0 <http://example.org/doc.html> .
_:b0 <http://schema.org/wordCount> "12"^^<http://www.w3.org/2001/XMLSchema#integer> <http://example.org/doc.html> .
`
	if b.String() != want {
		t.Errorf("got: %s, want: %s", b.String(), want)
	}
}

func TestTurtleWriter(t *testing.T) {
	b := bytes.Buffer{}
	write(t, NewTurtleWriter(&b), sample)

	want := `@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .
@prefix xsd: <http://www.w3.org/2001/XMLSchema#> .

<http://example.org/a> a <http://schema.org/Article> ;
	<http://schema.org/name> "Hello <world>"@en ,
		"Salut" ;
	<http://schema.org/hasPart> _:b0 .

_:b0 <http://schema.org/wordCount> "12"^^xsd:integer .
`
	if b.String() != want {
		t.Errorf("got: %s, want: %s", b.String(), want)
	}
}

func TestTurtleWriter_LocalNameEndingWithDot(t *testing.T) {
	b := bytes.Buffer{}
	write(t, NewTurtleWriter(&b), []rdf.Triple{
		rdf.NewTriple(rdf.IRI("http://example.org/a"), rdf.RDFNs+"value.", rdf.NewTypedLiteral("1", rdf.XSDNs+"v1.")),
	})

	want := "<http://example.org/a> <http://www.w3.org/1999/02/22-rdf-syntax-ns#value.> \"1\"^^<http://www.w3.org/2001/XMLSchema#v1.> .\n"
	if !strings.HasSuffix(b.String(), want) {
		t.Errorf("got: %s, want suffix: %s", b.String(), want)
	}
	if strings.Contains(b.String(), "rdf:value.") {
		t.Errorf("invalid prefixed name in %s", b.String())
	}
}

func TestTurtleWriter_Empty(t *testing.T) {
	b := bytes.Buffer{}
	write(t, NewTurtleWriter(&b), nil)

	if !strings.HasPrefix(b.String(), "@prefix rdf:") || strings.Contains(b.String(), " .\n\n.") {
		t.Errorf("unexpected empty output: %s", b.String())
	}
}

func TestRDFXMLWriter(t *testing.T) {
	b := bytes.Buffer{}
	write(t, NewRDFXMLWriter(&b), sample)

	out := b.String()
	for _, want := range []string{
		`<rdf:Description rdf:about="http://example.org/a">`,
		`<rdf:type rdf:resource="http://schema.org/Article"/>`,
		`<ns0:name xmlns:ns0="http://schema.org/" xml:lang="en">Hello &lt;world&gt;</ns0:name>`,
		`<ns0:hasPart xmlns:ns0="http://schema.org/" rdf:nodeID="b0"/>`,
		`<rdf:Description rdf:nodeID="b0">`,
		`rdf:datatype="http://www.w3.org/2001/XMLSchema#integer">12</ns0:wordCount>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %s, got: %s", want, out)
		}
	}

	if strings.Count(out, "<rdf:Description ") != 2 || strings.Count(out, "</rdf:Description>") != 2 {
		t.Errorf("descriptions not grouped by subject: %s", out)
	}

	checkWellFormed(t, out)
}

func TestRDFXMLWriter_InvalidPredicate(t *testing.T) {
	w := NewRDFXMLWriter(&bytes.Buffer{})
	err := w.Receive(rdf.NewTriple(rdf.IRI("http://example.org/a"), rdf.IRI("http://example.org/"), rdf.NewLiteral("x")))
	if err == nil {
		t.Error("predicate without local name should be rejected")
	}
}

func TestTriXWriter(t *testing.T) {
	b := bytes.Buffer{}
	write(t, NewTriXWriter(&b), sample)

	out := b.String()
	for _, want := range []string{
		`<TriX xmlns="http://www.w3.org/2004/03/trix/trix-1/">`,
		`<uri>http://example.org/doc.html</uri>`,
		`<plainLiteral xml:lang="en">Hello &lt;world&gt;</plainLiteral>`,
		`<plainLiteral>Salut</plainLiteral>`,
		`<id>b0</id>`,
		`<typedLiteral datatype="http://www.w3.org/2001/XMLSchema#integer">12</typedLiteral>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %s, got: %s", want, out)
		}
	}

	if strings.Count(out, "<triple>") != len(sample) {
		t.Errorf("got %d triples, want %d", strings.Count(out, "<triple>"), len(sample))
	}

	checkWellFormed(t, out)
}

func TestJSONWriter(t *testing.T) {
	b := bytes.Buffer{}
	write(t, NewJSONWriter(&b), sample)

	var doc JSONDocument
	if err := jsoniter.Unmarshal(b.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON output: %s", err)
	}

	if len(doc.Quads) != len(sample) {
		t.Fatalf("got %d quads, want %d", len(doc.Quads), len(sample))
	}

	q := doc.Quads[1]
	if q.Subject.Type != "uri" || q.Subject.Value != "http://example.org/a" {
		t.Errorf("wrong subject: %+v", q.Subject)
	}
	if q.Predicate != "http://schema.org/name" {
		t.Errorf("wrong predicate: %s", q.Predicate)
	}
	if q.Object.Type != "literal" || q.Object.Value != "Hello <world>" || q.Object.Lang != "en" {
		t.Errorf("wrong object: %+v", q.Object)
	}
	if q.Graph != docURI {
		t.Errorf("wrong graph: %s", q.Graph)
	}
	if doc.Quads[3].Object.Type != "bnode" {
		t.Errorf("wrong object: %+v", doc.Quads[3].Object)
	}
	if doc.Quads[4].Object.Datatype != rdf.XSDNs+"integer" {
		t.Errorf("wrong datatype: %+v", doc.Quads[4].Object)
	}
}

func TestJSONWriter_Empty(t *testing.T) {
	b := bytes.Buffer{}
	write(t, NewJSONWriter(&b), nil)

	var doc JSONDocument
	if err := jsoniter.Unmarshal(b.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON output: %s", err)
	}
	if len(doc.Quads) != 0 {
		t.Fail()
	}
}

func TestReceiveAfterClose(t *testing.T) {
	for _, f := range Formats() {
		h := New(f, &bytes.Buffer{})
		if err := h.Close(); err != nil {
			t.Errorf("%s: error while closing: %s", f, err)
		}
		if err := h.Receive(sample[0]); !errors.Is(err, ErrClosed) {
			t.Errorf("%s: got: %v, want: %v", f, err, ErrClosed)
		}
		if err := h.Close(); err != nil {
			t.Errorf("%s: second close should be a no-op: %s", f, err)
		}
	}
}

func checkWellFormed(t *testing.T, doc string) {
	dec := xml.NewDecoder(strings.NewReader(doc))
	for {
		_, err := dec.Token()
		if err != nil {
			if err != io.EOF {
				t.Errorf("output is not well formed XML: %s", err)
			}
			return
		}
	}
}
