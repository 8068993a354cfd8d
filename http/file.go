package http

// File is a raw byte payload destined for multipart assembly: the bytes plus
// an optional filename, MIME type, and auxiliary form parameters. A File is
// immutable once constructed.
type File struct {
	data     []byte
	name     string
	mimeType string
	params   Parameters
}

// NewFile builds a File, copying data so later mutation of the caller's
// slice cannot leak into the payload.
func NewFile(data []byte, name, mimeType string, params Parameters) File {
	buf := make([]byte, len(data))
	copy(buf, data)
	return File{data: buf, name: name, mimeType: mimeType, params: params}
}

// Data returns the payload bytes. The returned slice must not be modified.
func (f File) Data() []byte { return f.data }

// Name returns the filename, or "" when none was given.
func (f File) Name() string { return f.name }

// MIMEType returns the payload's MIME type, or "" when none was given.
func (f File) MIMEType() string { return f.mimeType }

// Params returns the auxiliary form parameters, or nil.
func (f File) Params() Parameters { return f.params }
