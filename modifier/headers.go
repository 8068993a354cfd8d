// Package modifier carries ready-made request builders and response
// modifiers for common cross-cutting concerns: header injection, auth,
// request correlation, and transcript logging. Each one is a pure value
// transformer that composes through http.ApplyBuilders and
// http.ApplyModifiers.
package modifier

import (
	"github.com/wesleyorama2/courier/http"
)

// SetHeader is a request builder that replaces any header sharing its key.
type SetHeader struct {
	Header http.Header
}

func (s SetHeader) Mutate(r http.MutableRequestable) http.MutableRequestable {
	out := http.CloneMutable(r)
	out.Headers().Set(s.Header)
	return out
}

// AddHeader is a request builder that inserts a (key, value) pair, keeping
// any existing pairs for the same key.
type AddHeader struct {
	Header http.Header
}

func (a AddHeader) Mutate(r http.MutableRequestable) http.MutableRequestable {
	out := http.CloneMutable(r)
	out.Headers().Add(a.Header)
	return out
}

// UserAgent returns a builder setting the User-Agent header.
func UserAgent(agent string) http.RequestBuilder {
	return SetHeader{Header: http.UserAgent(agent)}
}
