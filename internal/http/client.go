package http

//go:generate mockgen -destination=../http_mock/client_mock.go -package=http_mock . Client

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"
)

// MaxRedirects is the maximum number of redirections followed by Get
const MaxRedirects = 10

var (
	// ErrTimeout is returned when the fetch failed because of timeout issue
	ErrTimeout = errors.New("timeout has occurred")
	// ErrTooManyRedirects is returned when MaxRedirects has been reached
	ErrTooManyRedirects = errors.New("too many redirects")
)

// Client is an HTTP client
type Client interface {
	// Get the corresponding URL
	// this methods follows redirections
	Get(URL string) (Response, error)
}

type client struct {
	c       *fasthttp.Client
	timeout time.Duration
}

// NewFastHTTPClient create a new Client using fasthttp.Client as backend.
// A zero timeout means the request is not bounded in time.
func NewFastHTTPClient(c *fasthttp.Client, timeout time.Duration) Client {
	return &client{c: c, timeout: timeout}
}

// NewDefaultClient create a new Client identifying itself with given user agent
func NewDefaultClient(userAgent string, timeout time.Duration) Client {
	return NewFastHTTPClient(&fasthttp.Client{Name: userAgent}, timeout)
}

func (c *client) Get(URL string) (Response, error) {
	return c.get(URL, 0)
}

func (c *client) get(URL string, redirects int) (Response, error) {
	if redirects > MaxRedirects {
		return nil, ErrTooManyRedirects
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(URL)

	var err error
	if c.timeout > 0 {
		err = c.c.DoTimeout(req, resp, c.timeout)
	} else {
		err = c.c.Do(req, resp)
	}
	if err != nil {
		if errors.Is(err, fasthttp.ErrTimeout) {
			return nil, ErrTimeout
		}

		return nil, err
	}

	switch code := resp.StatusCode(); {
	// follow redirect
	case code == 301 || code == 302 || code == 303 || code == 307 || code == 308:
		location := string(resp.Header.Peek("Location"))
		if location == "" {
			return nil, fmt.Errorf("redirect (%d) without location", code)
		}

		next, err := resolve(URL, location)
		if err != nil {
			return nil, err
		}

		log.Debug().Int("code", code).Str("location", next).Msg("Following redirect")
		return c.get(next, redirects+1)
	case code >= 400:
		return nil, fmt.Errorf("non-managed error code %d", code)
	}

	r := &response{url: URL}
	resp.CopyTo(&r.raw)

	return r, nil
}

func resolve(base, location string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	l, err := url.Parse(location)
	if err != nil {
		return "", err
	}

	return b.ResolveReference(l).String(), nil
}
