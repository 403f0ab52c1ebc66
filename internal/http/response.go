package http

//go:generate mockgen -destination=../http_mock/response_mock.go -package=http_mock . Response

import (
	"bytes"
	"io"

	"github.com/valyala/fasthttp"
)

// Response is an HTTP response
type Response interface {
	// URL returns the URL the response has been served from, after redirects
	URL() string
	// ContentType returns the value of the Content-Type header
	ContentType() string
	// Body return the response body
	Body() io.Reader
}

type response struct {
	url string
	raw fasthttp.Response
}

func (r *response) URL() string {
	return r.url
}

func (r *response) ContentType() string {
	return string(r.raw.Header.ContentType())
}

func (r *response) Body() io.Reader {
	return bytes.NewReader(r.raw.Body())
}
