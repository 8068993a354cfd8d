package http

// Method is an HTTP method token. Tokens are case-sensitive and compared
// byte-for-byte; arbitrary tokens are allowed and are not validated.
type Method string

// Standard method tokens.
const (
	MethodGet     Method = "GET"
	MethodHead    Method = "HEAD"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodPatch   Method = "PATCH"
	MethodDelete  Method = "DELETE"
	MethodOptions Method = "OPTIONS"
	MethodTrace   Method = "TRACE"
	MethodConnect Method = "CONNECT"
)

// String returns the raw method token.
func (m Method) String() string {
	return string(m)
}
