package rdf

import (
	"strings"
)

// Well known vocabularies
const (
	RDFNs   = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	XSDNs   = "http://www.w3.org/2001/XMLSchema#"
	DCTerms = "http://purl.org/dc/terms/"
)

// Common IRIs
var (
	Type       = IRI(RDFNs + "type")
	LangString = IRI(RDFNs + "langString")
	XSDString  = IRI(XSDNs + "string")
)

// TermKind identifies the kind of a Term
type TermKind int

const (
	// KindIRI is an IRI reference
	KindIRI TermKind = iota
	// KindBlankNode is a document scoped anonymous node
	KindBlankNode
	// KindLiteral is a plain, language tagged or typed literal
	KindLiteral
)

// Term is a node of the RDF graph: IRI, BlankNode or Literal
type Term interface {
	Kind() TermKind
	// NTriples return the term encoded as N-Triples
	NTriples() string
}

// IRI is an absolute IRI reference
type IRI string

// Kind returns KindIRI
func (i IRI) Kind() TermKind { return KindIRI }

// NTriples returns <iri>
func (i IRI) NTriples() string {
	return "<" + escapeIRI(string(i)) + ">"
}

// String returns the raw IRI
func (i IRI) String() string { return string(i) }

// BlankNode is identified by its label, without the _: prefix
type BlankNode string

// Kind returns KindBlankNode
func (b BlankNode) Kind() TermKind { return KindBlankNode }

// NTriples returns _:label
func (b BlankNode) NTriples() string {
	return "_:" + string(b)
}

// Literal is a lexical value with an optional language tag or datatype.
// A literal with a language never carries a datatype.
type Literal struct {
	Value    string
	Language string
	Datatype IRI
}

// NewLiteral creates a plain literal
func NewLiteral(value string) Literal {
	return Literal{Value: value}
}

// NewLangLiteral creates a language tagged literal
func NewLangLiteral(value, lang string) Literal {
	return Literal{Value: value, Language: lang}
}

// NewTypedLiteral creates a literal with given datatype.
// xsd:string is dropped since it is the implicit datatype.
func NewTypedLiteral(value string, datatype IRI) Literal {
	if datatype == XSDString || datatype == LangString {
		return Literal{Value: value}
	}
	return Literal{Value: value, Datatype: datatype}
}

// Kind returns KindLiteral
func (l Literal) Kind() TermKind { return KindLiteral }

// NTriples returns "value"@lang, "value"^^<datatype> or "value"
func (l Literal) NTriples() string {
	b := strings.Builder{}
	b.WriteRune('"')
	b.WriteString(EscapeString(l.Value))
	b.WriteRune('"')

	switch {
	case l.Language != "":
		b.WriteRune('@')
		b.WriteString(l.Language)
	case l.Datatype != "":
		b.WriteString("^^")
		b.WriteString(l.Datatype.NTriples())
	}

	return b.String()
}

// EscapeString escapes a literal lexical form following the N-Triples grammar
func EscapeString(s string) string {
	b := strings.Builder{}
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func escapeIRI(s string) string {
	if !strings.ContainsAny(s, "<>\"{}|^`\\ ") {
		return s
	}

	b := strings.Builder{}
	for _, r := range s {
		switch r {
		case '<', '>', '"', '{', '}', '|', '^', '`', '\\', ' ':
			b.WriteString(percentEncode(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func percentEncode(r rune) string {
	const hex = "0123456789ABCDEF"
	return string([]byte{'%', hex[r>>4], hex[r&0xF]})
}
