package rdf

import (
	"sort"
	"strings"
)

// Triple is a subject, predicate, object statement
type Triple struct {
	Subject   Term
	Predicate IRI
	Object    Term
}

// NewTriple creates a new triple
func NewTriple(subject Term, predicate IRI, object Term) Triple {
	return Triple{Subject: subject, Predicate: predicate, Object: object}
}

// NTriples returns the triple as a N-Triples statement, without line terminator
func (t Triple) NTriples() string {
	b := strings.Builder{}
	b.WriteString(t.Subject.NTriples())
	b.WriteRune(' ')
	b.WriteString(t.Predicate.NTriples())
	b.WriteRune(' ')
	b.WriteString(t.Object.NTriples())
	b.WriteString(" .")
	return b.String()
}

// Sort orders triples by their N-Triples encoding so that output built from
// unordered sources (maps, datasets) is stable between runs
func Sort(triples []Triple) {
	sort.SliceStable(triples, func(i, j int) bool {
		return triples[i].NTriples() < triples[j].NTriples()
	})
}

// SplitIRI splits an IRI into namespace and local name at the last '#' or '/'.
// ok is false when no usable local name exists.
func SplitIRI(iri IRI) (namespace, local string, ok bool) {
	s := string(iri)
	idx := strings.LastIndexAny(s, "#/")
	if idx < 0 || idx == len(s)-1 {
		return "", "", false
	}

	namespace, local = s[:idx+1], s[idx+1:]
	if !isNCName(local) {
		return "", "", false
	}

	return namespace, local, true
}

// isNCName reports whether s can be used as an XML local name
func isNCName(s string) bool {
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r == '-' || r == '.' || r >= '0' && r <= '9'):
		default:
			return false
		}
	}
	return s != ""
}
