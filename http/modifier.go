package http

// RequestBuilder transforms a request description before it is built. A
// builder must treat its input as immutable: it returns a new or cloned
// description carrying the change, leaving the original untouched.
type RequestBuilder interface {
	Mutate(MutableRequestable) MutableRequestable
}

// RequestBuilderFunc adapts an ordinary function to the RequestBuilder
// interface.
type RequestBuilderFunc func(MutableRequestable) MutableRequestable

// Mutate calls f(r).
func (f RequestBuilderFunc) Mutate(r MutableRequestable) MutableRequestable {
	return f(r)
}

// ApplyBuilders runs builders over r in order. Builders are not commutative
// in general: two builders writing the same header key leave the
// last-applied one's value after header flattening. An empty chain returns r
// unchanged.
func ApplyBuilders(r MutableRequestable, builders ...RequestBuilder) MutableRequestable {
	for _, b := range builders {
		r = b.Mutate(r)
	}
	return r
}

// CloneMutable returns a copy-on-write duplicate of r when the concrete
// description supports cloning, and r itself otherwise. Builders use it so
// their change never leaks into the caller's description.
func CloneMutable(r MutableRequestable) MutableRequestable {
	if c, ok := r.(interface{ Clone() *Request }); ok {
		return c.Clone()
	}
	return r
}

// ResponseModifier transforms a response envelope after execution. A
// modifier returns a new envelope rather than editing its input, and leaves
// the request field intact unless replacing it is the modifier's purpose.
type ResponseModifier interface {
	Mutate(*Response) *Response
}

// ResponseModifierFunc adapts an ordinary function to the ResponseModifier
// interface.
type ResponseModifierFunc func(*Response) *Response

// Mutate calls f(resp).
func (f ResponseModifierFunc) Mutate(resp *Response) *Response {
	return f(resp)
}

// ApplyModifiers runs modifiers over resp in order. An empty chain returns
// resp unchanged.
func ApplyModifiers(resp *Response, modifiers ...ResponseModifier) *Response {
	for _, m := range modifiers {
		resp = m.Mutate(resp)
	}
	return resp
}
