package modifier

import (
	"encoding/base64"

	"github.com/wesleyorama2/courier/http"
)

// BearerAuth returns a builder setting an Authorization header carrying the
// bearer token.
func BearerAuth(token string) http.RequestBuilder {
	return SetHeader{Header: http.AuthorizationBearer(token)}
}

// BasicAuth returns a builder setting an Authorization header with HTTP
// Basic credentials. The username and password travel base64-encoded, not
// encrypted.
func BasicAuth(username, password string) http.RequestBuilder {
	creds := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
	return SetHeader{Header: http.Authorization("Basic " + creds)}
}
