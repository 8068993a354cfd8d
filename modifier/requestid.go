package modifier

import (
	"github.com/google/uuid"

	"github.com/wesleyorama2/courier/http"
)

const defaultRequestIDHeader = "X-Request-Id"

// RequestID is a request builder stamping each description with a fresh
// UUIDv4 correlation ID. Header names the header to use; when empty,
// X-Request-Id.
type RequestID struct {
	Header string
}

func (ri RequestID) Mutate(r http.MutableRequestable) http.MutableRequestable {
	key := ri.Header
	if key == "" {
		key = defaultRequestIDHeader
	}
	out := http.CloneMutable(r)
	out.Headers().Set(http.Header{Key: key, Value: uuid.NewString()})
	return out
}
