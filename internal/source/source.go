// Package source resolves a document URI and fetches the document content,
// either over HTTP or from the local filesystem.
package source

//go:generate mockgen -destination=../source_mock/source_mock.go -package=source_mock . Source

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/purell"
	chttp "github.com/eurocent/sentimentCrawler/internal/http"
	"github.com/rs/zerolog/log"
)

var (
	// ErrMissingURI is returned when no URI has been given
	ErrMissingURI = errors.New("missing document URI")
	// ErrUnsupportedScheme is returned when the URI is neither http(s) nor file
	ErrUnsupportedScheme = errors.New("unsupported URI scheme")
)

// content types by file extension, checked before the mime package
var extensions = map[string]string{
	".html":   "text/html",
	".htm":    "text/html",
	".xhtml":  "application/xhtml+xml",
	".jsonld": "application/ld+json",
	".json":   "application/json",
	".nt":     "application/n-triples",
	".nq":     "application/n-quads",
}

// Document is a fetched resource
type Document struct {
	// URI is the document URI, used as base IRI during extraction
	URI string
	// ContentType is the media type, without parameters
	ContentType string
	Body        []byte
}

// Source fetches documents
type Source interface {
	// Fetch returns the document located at given URI
	Fetch(uri string) (Document, error)
}

type source struct {
	httpClient chttp.Client
}

// NewSource create a new Source fetching http(s) URIs using given client
func NewSource(httpClient chttp.Client) Source {
	return &source{httpClient: httpClient}
}

func (s *source) Fetch(uri string) (Document, error) {
	if strings.TrimSpace(uri) == "" {
		return Document{}, ErrMissingURI
	}

	u, err := url.Parse(uri)
	if err != nil {
		return Document{}, fmt.Errorf("invalid document URI %s: %w", uri, err)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return s.fetchHTTP(u)
	case "file":
		return fetchFile(uri, u)
	default:
		return Document{}, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
}

func (s *source) fetchHTTP(u *url.URL) (Document, error) {
	if u.Host == "" {
		return Document{}, fmt.Errorf("invalid document URI %s: missing host", u)
	}

	normalized := purell.NormalizeURL(u, purell.FlagsSafe)

	log.Debug().Str("url", normalized).Msg("Fetching document")

	resp, err := s.httpClient.Get(normalized)
	if err != nil {
		return Document{}, fmt.Errorf("error while fetching %s: %w", normalized, err)
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return Document{}, fmt.Errorf("error while reading %s: %w", normalized, err)
	}

	documentURI := resp.URL()
	if documentURI == "" {
		documentURI = normalized
	}

	return Document{
		URI:         documentURI,
		ContentType: mediaType(resp.ContentType(), body),
		Body:        body,
	}, nil
}

func fetchFile(uri string, u *url.URL) (Document, error) {
	path := u.Path
	if path == "" {
		path = u.Opaque
	}
	if path == "" {
		return Document{}, fmt.Errorf("invalid document URI %s: missing path", uri)
	}

	log.Debug().Str("path", path).Msg("Reading document")

	body, err := os.ReadFile(filepath.FromSlash(path))
	if err != nil {
		return Document{}, fmt.Errorf("error while reading %s: %w", uri, err)
	}

	contentType := extensions[strings.ToLower(filepath.Ext(path))]
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(path))
	}

	return Document{
		URI:         uri,
		ContentType: mediaType(contentType, body),
		Body:        body,
	}, nil
}

// mediaType strips the parameters of given content type, sniffing the body
// when no content type is known
func mediaType(contentType string, body []byte) string {
	if contentType == "" {
		contentType = http.DetectContentType(body)
	}

	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	}

	return mt
}
