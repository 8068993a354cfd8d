package http

import (
	"bytes"
	"errors"
	"fmt"
	nethttp "net/http"
	"net/url"
)

// Build error categories. Callers distinguish them with errors.Is.
var (
	// ErrInvalidURL means the resolved base URL lacks a scheme or host.
	ErrInvalidURL = errors.New("http: URL missing scheme or host")

	// ErrEncoding means the active encoding's serializer failed.
	ErrEncoding = errors.New("http: parameter encoding failed")
)

// DefaultBaseURL is the target used by Build when a request never had a base
// URL assigned.
const DefaultBaseURL = "http://localhost"

// Requestable describes an HTTP request before it is sent. Build resolves
// the description into a transport-ready net/http request, or fails; it must
// be deterministic with respect to the description's current field values.
type Requestable interface {
	Headers() HeaderSet
	Method() Method
	Parameters() Parameters
	ParameterEncoding() Encoding
	Build() (*nethttp.Request, error)
}

// MutableRequestable is a Requestable whose target base URL can be assigned
// after construction.
type MutableRequestable interface {
	Requestable
	BaseURL() string
	SetBaseURL(string)
}

// IsMultipart reports whether the description announces a multipart form
// body: some header whose key equals "Content-Type" case-insensitively and
// whose value contains "multipart/form-data" case-insensitively.
func IsMultipart(r Requestable) bool {
	for h := range r.Headers() {
		if h.multipartContentType() {
			return true
		}
	}
	return false
}

// RawMethod returns the description's raw method token.
func RawMethod(r Requestable) string {
	return r.Method().String()
}

// Native adapts an existing net/http request to the Requestable contract.
// Build is the identity transform: the wrapped request is returned as-is.
type Native struct {
	Req *nethttp.Request
}

func (n Native) Headers() HeaderSet {
	s := make(HeaderSet)
	for key, values := range n.Req.Header {
		for _, value := range values {
			s.Add(Header{Key: key, Value: value})
		}
	}
	return s
}

func (n Native) Method() Method {
	return Method(n.Req.Method)
}

func (n Native) Parameters() Parameters { return nil }

func (n Native) ParameterEncoding() Encoding { return DefaultEncoding }

func (n Native) Build() (*nethttp.Request, error) { return n.Req, nil }

// Request is the mutable request description. The zero value is not usable;
// construct with NewRequest. Fluent With* mutators return the receiver for
// chaining; request builders that must leave their input intact work on a
// Clone instead.
type Request struct {
	method   Method
	path     string
	headers  HeaderSet
	params   Parameters
	encoding Encoding
	baseURL  string
	encoder  EncoderFunc
}

// NewRequest creates a request description for the given method and path.
// The path is joined onto the base URL at build time; it may be empty.
func NewRequest(method Method, path string) *Request {
	return &Request{
		method:  method,
		path:    path,
		headers: make(HeaderSet),
		params:  make(Parameters),
	}
}

// WithHeader inserts a header pair into the description.
func (r *Request) WithHeader(h Header) *Request {
	r.headers.Add(h)
	return r
}

// WithParam sets one body parameter.
func (r *Request) WithParam(key string, value interface{}) *Request {
	r.params[key] = value
	return r
}

// WithParams merges params into the description's parameter map.
func (r *Request) WithParams(params Parameters) *Request {
	for key, value := range params {
		r.params[key] = value
	}
	return r
}

// WithEncoding overrides the parameter encoding.
func (r *Request) WithEncoding(e Encoding) *Request {
	r.encoding = e
	return r
}

// WithEncoder installs a custom serializer used in place of the encoding's
// built-in one. The encoding token still supplies the Content-Type.
func (r *Request) WithEncoder(fn EncoderFunc) *Request {
	r.encoder = fn
	return r
}

// WithBaseURL assigns the base URL and returns the receiver.
func (r *Request) WithBaseURL(baseURL string) *Request {
	r.baseURL = baseURL
	return r
}

// Clone returns a deep enough copy for copy-on-write use: headers and
// parameters are copied, so mutating the clone never touches the original.
func (r *Request) Clone() *Request {
	c := *r
	c.headers = r.headers.Clone()
	c.params = make(Parameters, len(r.params))
	for key, value := range r.params {
		c.params[key] = value
	}
	return &c
}

func (r *Request) Headers() HeaderSet { return r.headers }

func (r *Request) Method() Method { return r.method }

func (r *Request) Parameters() Parameters { return r.params }

// ParameterEncoding returns the active encoding, falling back to JSON when
// none was set.
func (r *Request) ParameterEncoding() Encoding {
	if r.encoding == "" {
		return DefaultEncoding
	}
	return r.encoding
}

// Path returns the request path joined onto the base URL at build time.
func (r *Request) Path() string { return r.path }

func (r *Request) BaseURL() string { return r.baseURL }

func (r *Request) SetBaseURL(baseURL string) { r.baseURL = baseURL }

// Build resolves the description into a transport-ready request. The target
// comes from the base URL (DefaultBaseURL when unset) joined with the path
// and must carry both a scheme and a host. Headers flatten onto the request
// last-write-wins by key, the method is set from the typed token, and
// parameters serialize through the active encoding into the body. A failed
// build returns no partial request.
func (r *Request) Build() (*nethttp.Request, error) {
	base := r.baseURL
	if base == "" {
		base = DefaultBaseURL
	}
	target, err := resolveURL(base, r.path)
	if err != nil {
		return nil, err
	}

	var body *bytes.Reader
	if len(r.params) > 0 {
		encoded, err := r.encodeParams()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
		}
		body = bytes.NewReader(encoded)
	}

	var req *nethttp.Request
	if body != nil {
		req, err = nethttp.NewRequest(r.method.String(), target, body)
	} else {
		req, err = nethttp.NewRequest(r.method.String(), target, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	r.headers.Apply(req.Header)
	if body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", r.ParameterEncoding().ContentType())
	}
	return req, nil
}

func (r *Request) encodeParams() ([]byte, error) {
	if r.encoder != nil {
		return r.encoder(r.params)
	}
	return r.ParameterEncoding().Encode(r.params)
}

// resolveURL joins base and path and rejects targets without a scheme or
// host.
func resolveURL(base, path string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidURL, base)
	}
	if path != "" {
		joined, err := url.JoinPath(u.String(), path)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
		}
		return joined, nil
	}
	return u.String(), nil
}
