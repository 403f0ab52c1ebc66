package writer

import (
	"io"

	"github.com/rs/zerolog/log"
)

// Format is a triple serialization format
type Format int

const (
	// Turtle is the Terse RDF Triple Language, the default format
	Turtle Format = iota
	// NTriples is the line based N-Triples format
	NTriples
	// RDFXML is the RDF/XML format
	RDFXML
	// NQuads is N-Triples with a graph label
	NQuads
	// TriX is the Triples in XML format
	TriX
	// JSON is the JSON quads format
	JSON
)

// DefaultFormat is used when no (or an unknown) format is requested
const DefaultFormat = Turtle

type constructor func(w io.Writer) Handler

type formatDef struct {
	name       string
	writerName string
	new        constructor
}

var formats = map[Format]formatDef{
	Turtle:   {name: "turtle", writerName: "TurtleWriter", new: func(w io.Writer) Handler { return NewTurtleWriter(w) }},
	NTriples: {name: "ntriples", writerName: "NTriplesWriter", new: func(w io.Writer) Handler { return NewNTriplesWriter(w) }},
	RDFXML:   {name: "rdfxml", writerName: "RDFXMLWriter", new: func(w io.Writer) Handler { return NewRDFXMLWriter(w) }},
	NQuads:   {name: "nquads", writerName: "NQuadsWriter", new: func(w io.Writer) Handler { return NewNQuadsWriter(w) }},
	TriX:     {name: "trix", writerName: "TriXWriter", new: func(w io.Writer) Handler { return NewTriXWriter(w) }},
	JSON:     {name: "json", writerName: "JSONWriter", new: func(w io.Writer) Handler { return NewJSONWriter(w) }},
}

// Formats returns every supported format, in declaration order
func Formats() []Format {
	return []Format{Turtle, NTriples, RDFXML, NQuads, TriX, JSON}
}

// String returns the format name as accepted on the command line
func (f Format) String() string {
	if def, exist := formats[f]; exist {
		return def.name
	}
	return "unknown"
}

// WriterName returns the name of the writer serializing this format
func (f Format) WriterName() string {
	return formats[f].writerName
}

// Valid reports whether f is one of the supported formats
func (f Format) Valid() bool {
	_, exist := formats[f]
	return exist
}

// ParseFormat returns the format matching given name (case sensitive)
func ParseFormat(name string) (Format, bool) {
	for _, f := range Formats() {
		if formats[f].name == name {
			return f, true
		}
	}
	return DefaultFormat, false
}

// New returns the writer for given format, falling back to DefaultFormat
func New(f Format, w io.Writer) Handler {
	if !f.Valid() {
		f = DefaultFormat
	}
	return formats[f].new(w)
}

// Resolve returns the format named name. An empty or unknown name resolves to
// the Turtle format, a warning naming the unknown value is logged.
func Resolve(name string) Format {
	f, ok := ParseFormat(name)
	if !ok && name != "" {
		log.Warn().
			Str("format", name).
			Stringer("default", DefaultFormat).
			Msg("No output writer found for format, using default serialization")
	}
	return f
}
