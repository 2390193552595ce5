package imagefetch

import (
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/castbridge/castbridge/caststate"
	"github.com/h2non/filetype"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
)

// ErrBadStatus - the image URL answered with a non-2xx/3xx status code.
var ErrBadStatus = errors.New("imagefetch bad status code")

const (
	fetchHTTPClientTimeout         = 20 * time.Second
	fetchHTTPDialTimeout           = 5 * time.Second
	fetchHTTPKeepAlive             = 30 * time.Second
	fetchHTTPTLSHandshakeTimeout   = 5 * time.Second
	fetchHTTPResponseHeaderTimeout = 10 * time.Second
	fetchHTTPExpectContinueTimeout = 1 * time.Second
	fetchHTTPIdleConnTimeout       = 90 * time.Second

	// Cover art endpoints occasionally serve very large originals; anything
	// beyond this is not worth pushing through a channel.
	maxImageBytes = 8 << 20

	// filetype only ever inspects the first 261 bytes.
	sniffLen = 261
)

var fetchHTTPTransport = &http.Transport{
	Proxy: http.ProxyFromEnvironment,
	DialContext: (&net.Dialer{
		Timeout:   fetchHTTPDialTimeout,
		KeepAlive: fetchHTTPKeepAlive,
	}).DialContext,
	TLSHandshakeTimeout:   fetchHTTPTLSHandshakeTimeout,
	ResponseHeaderTimeout: fetchHTTPResponseHeaderTimeout,
	ExpectContinueTimeout: fetchHTTPExpectContinueTimeout,
	IdleConnTimeout:       fetchHTTPIdleConnTimeout,
}

// Client resolves image URLs into their binary content. It implements
// caststate.Fetcher.
type Client struct {
	hc *http.Client
}

// New returns a Client retrying transient HTTP failures up to retryMax
// times.
func New(retryMax int) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = retryMax
	retryClient.Logger = nil
	retryClient.HTTPClient = &http.Client{
		Timeout:   fetchHTTPClientTimeout,
		Transport: fetchHTTPTransport,
	}

	return &Client{hc: retryClient.StandardClient()}
}

// Fetch downloads the image at s. The MIME type is sniffed from the content
// itself, falling back to the Content-Type response header.
func (c *Client) Fetch(s string) (*caststate.Image, error) {
	if _, err := url.ParseRequestURI(s); err != nil {
		return nil, fmt.Errorf("imagefetch failed to parse url: %w", err)
	}

	req, err := http.NewRequest(http.MethodGet, s, nil)
	if err != nil {
		return nil, fmt.Errorf("imagefetch failed to call NewRequest: %w", err)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("imagefetch failed to client.Do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, ErrBadStatus
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("imagefetch failed to read body: %w", err)
	}

	return &caststate.Image{
		Data:     data,
		MIMEType: detectMIME(data, resp.Header.Get("Content-Type")),
	}, nil
}

func detectMIME(data []byte, header string) string {
	head := data
	if len(head) > sniffLen {
		head = head[:sniffLen]
	}

	kind, err := filetype.Match(head)
	if err == nil && kind != filetype.Unknown {
		return fmt.Sprintf("%s/%s", kind.MIME.Type, kind.MIME.Subtype)
	}

	return normalizeContentType(header)
}

func normalizeContentType(v string) string {
	if v == "" {
		return ""
	}

	mt, _, err := mime.ParseMediaType(v)
	if err == nil {
		return strings.ToLower(strings.TrimSpace(mt))
	}

	parts := strings.Split(v, ";")
	return strings.ToLower(strings.TrimSpace(parts[0]))
}
