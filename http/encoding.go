package http

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// Encoding identifies how a parameter map is serialized into a request body.
// The token doubles as the Content-Type value for the encoded payload.
type Encoding string

const (
	// EncodingJSON serializes parameters with encoding/json. It is the
	// default for any request that does not override its encoding.
	EncodingJSON Encoding = "application/json"

	// EncodingForm serializes parameters as a URL-encoded form.
	EncodingForm Encoding = "application/x-www-form-urlencoded"
)

// DefaultEncoding is the fallback used when a request leaves its encoding
// unset.
const DefaultEncoding = EncodingJSON

// EncoderFunc serializes a parameter map into a request body.
type EncoderFunc func(Parameters) ([]byte, error)

// Parameters is an unencoded request payload: string keys mapping to
// arbitrary JSON-like values (scalars, nested maps, sequences).
type Parameters map[string]interface{}

// ContentType returns the MIME token for the encoding.
func (e Encoding) ContentType() string {
	return string(e)
}

// Encode serializes params with the encoder matching the encoding token.
// Unknown tokens fail; callers needing a custom serialization supply their
// own EncoderFunc on the request instead.
func (e Encoding) Encode(params Parameters) ([]byte, error) {
	switch e {
	case EncodingJSON:
		return encodeJSON(params)
	case EncodingForm:
		return encodeForm(params)
	default:
		return nil, fmt.Errorf("no encoder for content type %q", string(e))
	}
}

func encodeJSON(params Parameters) ([]byte, error) {
	return json.Marshal(params)
}

func encodeForm(params Parameters) ([]byte, error) {
	values := make(url.Values, len(params))
	for key, value := range params {
		switch v := value.(type) {
		case []interface{}:
			for _, item := range v {
				values.Add(key, fmt.Sprintf("%v", item))
			}
		default:
			values.Set(key, fmt.Sprintf("%v", v))
		}
	}
	return []byte(values.Encode()), nil
}
