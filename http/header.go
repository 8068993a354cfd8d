package http

import (
	nethttp "net/http"
	"sort"
	"strconv"
	"strings"
)

// Header is a single HTTP header field. Two headers are equal only when both
// key and value match, so a collection may hold several headers that share a
// key but carry different values.
type Header struct {
	Key   string
	Value string
}

// Named constructors for common headers.

func Accept(value string) Header        { return Header{Key: "Accept", Value: value} }
func Authorization(value string) Header { return Header{Key: "Authorization", Value: value} }
func CacheControl(value string) Header  { return Header{Key: "Cache-Control", Value: value} }
func ContentType(value string) Header   { return Header{Key: "Content-Type", Value: value} }
func Cookie(value string) Header        { return Header{Key: "Cookie", Value: value} }
func Host(value string) Header          { return Header{Key: "Host", Value: value} }
func IfMatch(value string) Header       { return Header{Key: "If-Match", Value: value} }
func IfNoneMatch(value string) Header   { return Header{Key: "If-None-Match", Value: value} }
func Origin(value string) Header        { return Header{Key: "Origin", Value: value} }
func Referer(value string) Header       { return Header{Key: "Referer", Value: value} }
func UserAgent(value string) Header     { return Header{Key: "User-Agent", Value: value} }

func IfModifiedSince(value string) Header {
	return Header{Key: "If-Modified-Since", Value: value}
}

func IfUnmodifiedSince(value string) Header {
	return Header{Key: "If-Unmodified-Since", Value: value}
}

// AuthorizationBearer builds an Authorization header carrying a bearer token.
func AuthorizationBearer(token string) Header {
	return Authorization("Bearer " + token)
}

// ContentLength builds a Content-Length header from a byte count.
func ContentLength(n int64) Header {
	return Header{Key: "Content-Length", Value: strconv.FormatInt(n, 10)}
}

// HeaderSet is an unordered collection of headers with set semantics on the
// full (key, value) pair: inserting the same pair twice is a no-op, while two
// entries sharing a key but differing in value coexist.
type HeaderSet map[Header]struct{}

// NewHeaderSet builds a set from the given headers, collapsing duplicates.
func NewHeaderSet(headers ...Header) HeaderSet {
	s := make(HeaderSet, len(headers))
	for _, h := range headers {
		s[h] = struct{}{}
	}
	return s
}

// Add inserts a header. Inserting an identical (key, value) pair again leaves
// the set unchanged.
func (s HeaderSet) Add(h Header) {
	s[h] = struct{}{}
}

// Set inserts a header after removing every existing entry that shares its
// key, making it a replace-by-key operation.
func (s HeaderSet) Set(h Header) {
	for existing := range s {
		if existing.Key == h.Key {
			delete(s, existing)
		}
	}
	s[h] = struct{}{}
}

// Remove deletes the exact (key, value) pair if present.
func (s HeaderSet) Remove(h Header) {
	delete(s, h)
}

// Contains reports whether the exact (key, value) pair is present.
func (s HeaderSet) Contains(h Header) bool {
	_, ok := s[h]
	return ok
}

// Len returns the number of distinct (key, value) pairs.
func (s HeaderSet) Len() int {
	return len(s)
}

// Clone returns an independent copy of the set.
func (s HeaderSet) Clone() HeaderSet {
	c := make(HeaderSet, len(s))
	for h := range s {
		c[h] = struct{}{}
	}
	return c
}

// Slice returns the headers sorted by key then value. The order is for
// stable display only; it carries no protocol meaning.
func (s HeaderSet) Slice() []Header {
	out := make([]Header, 0, len(s))
	for h := range s {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Key != out[j].Key {
			return out[i].Key < out[j].Key
		}
		return out[i].Value < out[j].Value
	})
	return out
}

// Apply flattens the set onto a net/http header table. The table is keyed by
// name only, so entries sharing a key collapse to a single value. The set is
// unordered, which makes the surviving value among same-key entries
// unspecified; callers that need a particular value to win should use Set so
// the key holds a single pair.
func (s HeaderSet) Apply(h nethttp.Header) {
	for header := range s {
		h.Set(header.Key, header.Value)
	}
}

// multipartContentType reports whether h is a Content-Type header announcing
// a multipart form body. Both checks are case-insensitive.
func (h Header) multipartContentType() bool {
	return strings.EqualFold(h.Key, "Content-Type") &&
		strings.Contains(strings.ToLower(h.Value), "multipart/form-data")
}
