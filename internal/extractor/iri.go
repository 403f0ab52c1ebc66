package extractor

import (
	"net/url"
	"strings"

	"github.com/eurocent/sentimentCrawler/internal/rdf"
)

// resolve resolves ref against the document base. ok is false when ref cannot be parsed.
func resolve(base *url.URL, ref string) (rdf.IRI, bool) {
	ref = strings.TrimSpace(ref)

	u, err := url.Parse(ref)
	if err != nil {
		return "", false
	}

	return rdf.IRI(base.ResolveReference(u).String()), true
}

// isAbsoluteIRI reports whether s has a scheme
func isAbsoluteIRI(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && (u.Host != "" || u.Opaque != "")
}

// localName turns a free form name into a string usable as the local part of an
// IRI and as an XML local name: lower cased, invalid characters replaced by '-'
func localName(name string) string {
	b := strings.Builder{}
	for i, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r == '_', r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r == '-' || r == '.' || r >= '0' && r <= '9':
			if i == 0 {
				b.WriteRune('_')
			}
			b.WriteRune(r)
		default:
			if i == 0 {
				b.WriteRune('_')
			} else {
				b.WriteRune('-')
			}
		}
	}
	return b.String()
}

// vocabulary returns the namespace of a type IRI: up to and including the
// '#' if any, the last '/' otherwise
func vocabulary(typeIRI string) string {
	if idx := strings.LastIndex(typeIRI, "#"); idx >= 0 {
		return typeIRI[:idx+1]
	}
	if idx := strings.LastIndex(typeIRI, "/"); idx >= 0 {
		return typeIRI[:idx+1]
	}
	return ""
}
