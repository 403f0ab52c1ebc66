package source

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eurocent/sentimentCrawler/internal/http"
	"github.com/eurocent/sentimentCrawler/internal/http_mock"
	"github.com/golang/mock/gomock"
)

func TestSource_FetchHTTP(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	httpClientMock := http_mock.NewMockClient(mockCtrl)
	httpResponseMock := http_mock.NewMockResponse(mockCtrl)

	httpClientMock.EXPECT().Get("http://example.org/page.html").Return(httpResponseMock, nil)
	httpResponseMock.EXPECT().Body().Return(strings.NewReader("<title>Hello</title>"))
	httpResponseMock.EXPECT().URL().Return("http://example.org/page.html")
	httpResponseMock.EXPECT().ContentType().Return("text/html; charset=utf-8")

	s := NewSource(httpClientMock)

	doc, err := s.Fetch("HTTP://Example.ORG:80/page.html")
	if err != nil {
		t.Fatalf("error while fetching: %s", err)
	}

	if doc.URI != "http://example.org/page.html" {
		t.Errorf("got: %s, want: %s", doc.URI, "http://example.org/page.html")
	}
	if doc.ContentType != "text/html" {
		t.Errorf("got: %s, want: %s", doc.ContentType, "text/html")
	}
	if string(doc.Body) != "<title>Hello</title>" {
		t.Errorf("got: %s, want: %s", doc.Body, "<title>Hello</title>")
	}
}

func TestSource_FetchHTTPRedirected(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	httpClientMock := http_mock.NewMockClient(mockCtrl)
	httpResponseMock := http_mock.NewMockResponse(mockCtrl)

	httpClientMock.EXPECT().Get("https://example.org/old").Return(httpResponseMock, nil)
	httpResponseMock.EXPECT().Body().Return(strings.NewReader(`{"@id": "http://example.org/a"}`))
	httpResponseMock.EXPECT().URL().Return("https://example.org/new")
	httpResponseMock.EXPECT().ContentType().Return("")

	doc, err := NewSource(httpClientMock).Fetch("https://example.org/old")
	if err != nil {
		t.Fatalf("error while fetching: %s", err)
	}

	// the base URI is the one the document has been served from
	if doc.URI != "https://example.org/new" {
		t.Errorf("got: %s, want: %s", doc.URI, "https://example.org/new")
	}
	// sniffed from the body
	if doc.ContentType != "text/plain" {
		t.Errorf("got: %s, want: %s", doc.ContentType, "text/plain")
	}
}

func TestSource_FetchHTTPError(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	httpClientMock := http_mock.NewMockClient(mockCtrl)
	httpClientMock.EXPECT().Get("http://down.example.org").Return(nil, http.ErrTimeout)

	_, err := NewSource(httpClientMock).Fetch("http://down.example.org")
	if !errors.Is(err, http.ErrTimeout) {
		t.Errorf("got: %v, want: %v", err, http.ErrTimeout)
	}
}

func TestSource_FetchInvalid(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	// no call to the client is expected
	s := NewSource(http_mock.NewMockClient(mockCtrl))

	type test struct {
		uri string
		err error
	}

	tests := []test{
		{uri: "", err: ErrMissingURI},
		{uri: "   ", err: ErrMissingURI},
		{uri: "ftp://example.org/file", err: ErrUnsupportedScheme},
		{uri: "example.org/page", err: ErrUnsupportedScheme},
		{uri: "http://[::1", err: nil},
		{uri: "http:///page", err: nil},
	}

	for _, test := range tests {
		_, err := s.Fetch(test.uri)
		if err == nil {
			t.Errorf("Fetch(%q) should have failed", test.uri)
			continue
		}
		if test.err != nil && !errors.Is(err, test.err) {
			t.Errorf("Fetch(%q) got: %v, want: %v", test.uri, err, test.err)
		}
	}
}

func TestSource_FetchFile(t *testing.T) {
	d := t.TempDir()

	type test struct {
		name        string
		body        string
		contentType string
	}

	tests := []test{
		{name: "page.html", body: "<p>Hello</p>", contentType: "text/html"},
		{name: "data.jsonld", body: "{}", contentType: "application/ld+json"},
		{name: "data.nt", body: "", contentType: "application/n-triples"},
		{name: "noext", body: "<!DOCTYPE html><html></html>", contentType: "text/html"},
	}

	for _, test := range tests {
		p := filepath.Join(d, test.name)
		if err := os.WriteFile(p, []byte(test.body), 0640); err != nil {
			t.FailNow()
		}

		uri := "file://" + filepath.ToSlash(p)
		doc, err := NewSource(nil).Fetch(uri)
		if err != nil {
			t.Errorf("error while reading %s: %s", uri, err)
			continue
		}

		if doc.URI != uri {
			t.Errorf("got: %s, want: %s", doc.URI, uri)
		}
		if doc.ContentType != test.contentType {
			t.Errorf("%s: got: %s, want: %s", test.name, doc.ContentType, test.contentType)
		}
		if string(doc.Body) != test.body {
			t.Errorf("got: %s, want: %s", doc.Body, test.body)
		}
	}

	if _, err := NewSource(nil).Fetch("file://" + filepath.ToSlash(filepath.Join(d, "missing.html"))); err == nil {
		t.Error("missing file should be an error")
	}
}
