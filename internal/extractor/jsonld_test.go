package extractor

import (
	"errors"
	"testing"

	"github.com/eurocent/sentimentCrawler/internal/source"
	"github.com/piprate/json-gold/ld"
)

type staticLoader struct {
	contexts map[string]interface{}
	loaded   []string
}

func (l *staticLoader) LoadDocument(u string) (*ld.RemoteDocument, error) {
	l.loaded = append(l.loaded, u)

	context, exist := l.contexts[u]
	if !exist {
		return nil, ld.NewJsonLdError(ld.LoadingDocumentFailed, errors.New("not found"))
	}

	return &ld.RemoteDocument{DocumentURL: u, Document: map[string]interface{}{"@context": context}}, nil
}

func TestJSONLDExtractor_Supports(t *testing.T) {
	e := &jsonLDExtractor{}

	for _, contentType := range []string{"text/html", "application/xhtml+xml", "application/ld+json", "application/json"} {
		if !e.Supports(contentType) {
			t.Errorf("%s should be supported", contentType)
		}
	}
	if e.Supports("text/plain") {
		t.Error("text/plain should not be supported")
	}
}

func TestJSONLDExtractor_EmbeddedBlocks(t *testing.T) {
	body := `<html><head>
<script type="application/ld+json">
{"@context":{"@vocab":"http://schema.org/"},"@id":"http://example.org/a","hasPart":{"@id":"http://example.org/b"}}
</script>
<script type="text/javascript">var a = 1;</script>
</head><body>
<script type="application/ld+json">
{"@context":{"@vocab":"http://schema.org/","@language":"en"},"name":"Anonymous"}
</script>
</body></html>`

	checkTriples(t, extract(t, &jsonLDExtractor{}, "text/html", body), []string{
		`<http://example.org/a> <http://schema.org/hasPart> <http://example.org/b> .`,
		`_:embeddedjsonld_1_b0 <http://schema.org/name> "Anonymous"@en .`,
	})
}

func TestJSONLDExtractor_Document(t *testing.T) {
	body := `{
	"@context": {"name": "http://schema.org/name", "age": {"@id": "http://schema.org/age", "@type": "http://www.w3.org/2001/XMLSchema#integer"}},
	"@id": "#me",
	"name": "Bob",
	"age": "42"
}`

	checkTriples(t, extract(t, &jsonLDExtractor{}, "application/ld+json", body), []string{
		`<http://example.org/page#me> <http://schema.org/age> "42"^^<http://www.w3.org/2001/XMLSchema#integer> .`,
		`<http://example.org/page#me> <http://schema.org/name> "Bob" .`,
	})
}

func TestJSONLDExtractor_RemoteContext(t *testing.T) {
	loader := &staticLoader{contexts: map[string]interface{}{
		"http://example.org/context.jsonld": map[string]interface{}{"@vocab": "http://schema.org/"},
	}}

	body := `{"@context":"http://example.org/context.jsonld","@id":"http://example.org/a","name":"A"}`

	checkTriples(t, extract(t, &jsonLDExtractor{loader: loader}, "application/ld+json", body), []string{
		`<http://example.org/a> <http://schema.org/name> "A" .`,
	})

	if len(loader.loaded) == 0 || loader.loaded[0] != "http://example.org/context.jsonld" {
		t.Errorf("context not loaded: %v", loader.loaded)
	}
}

func TestJSONLDExtractor_Errors(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
	}{
		{"invalid embedded JSON", "text/html", `<script type="application/ld+json">{"@id":</script>`},
		{"invalid document", "application/ld+json", `not json`},
		{"unreachable context", "application/ld+json", `{"@context":"http://example.org/missing","name":"A"}`},
	}

	for _, test := range tests {
		loader := &staticLoader{}
		doc := source.Document{URI: pageURI, ContentType: test.contentType, Body: []byte(test.body)}

		if _, err := NewEngine(&jsonLDExtractor{loader: loader}).Extract(doc, &collector{}); err == nil {
			t.Errorf("%s: expected an error", test.name)
		}
	}
}

func TestJSONLDExtractor_EmptyBlock(t *testing.T) {
	body := `<script type="application/ld+json">   </script>`
	checkTriples(t, extract(t, &jsonLDExtractor{}, "text/html", body), nil)
}
