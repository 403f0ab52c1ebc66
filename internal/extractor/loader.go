package extractor

import (
	"bytes"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/piprate/json-gold/ld"
	"github.com/rs/zerolog/log"
)

const acceptJSONLD = "application/ld+json, application/json;q=0.9"

// <target>; rel="alternate"; type="application/ld+json"
var linkAlternateRegex = regexp.MustCompile(`<([^>]+)>\s*;[^,]*rel="?alternate"?[^,]*type="?application/ld\+json"?`)

type restyLoader struct {
	httpClient *resty.Client
	cache      map[string]*ld.RemoteDocument
}

// NewContextLoader create a new ContextLoader fetching remote contexts over HTTP.
// Loaded contexts are cached for the lifetime of the loader.
func NewContextLoader(userAgent string, timeout time.Duration) ContextLoader {
	c := resty.New().
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", acceptJSONLD)
	if timeout > 0 {
		c.SetTimeout(timeout)
	}

	return newRestyLoader(c)
}

func newRestyLoader(c *resty.Client) *restyLoader {
	return &restyLoader{httpClient: c, cache: map[string]*ld.RemoteDocument{}}
}

func (l *restyLoader) LoadDocument(u string) (*ld.RemoteDocument, error) {
	if doc, exist := l.cache[u]; exist {
		return doc, nil
	}

	doc, err := l.load(u, true)
	if err != nil {
		return nil, ld.NewJsonLdError(ld.LoadingDocumentFailed, err)
	}

	l.cache[u] = doc
	return doc, nil
}

func (l *restyLoader) load(u string, followAlternate bool) (*ld.RemoteDocument, error) {
	log.Debug().Str("url", u).Msg("Loading JSON-LD context")

	res, err := l.httpClient.R().Get(u)
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, fmt.Errorf("error while loading context %s: status %d", u, res.StatusCode())
	}

	contentType := res.Header().Get("Content-Type")
	if !strings.Contains(contentType, "json") && followAlternate {
		// e.g. schema.org serves HTML and links its context document
		if alternate := alternateLink(u, res.Header().Get("Link")); alternate != "" {
			return l.load(alternate, false)
		}
	}

	document, err := ld.DocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		return nil, fmt.Errorf("error while parsing context %s: %w", u, err)
	}

	return &ld.RemoteDocument{DocumentURL: u, Document: document}, nil
}

func alternateLink(base, header string) string {
	m := linkAlternateRegex.FindStringSubmatch(header)
	if m == nil {
		return ""
	}

	b, err := url.Parse(base)
	if err != nil {
		return ""
	}
	ref, err := url.Parse(m[1])
	if err != nil {
		return ""
	}

	return b.ResolveReference(ref).String()
}
