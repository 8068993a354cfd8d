package modifier

import (
	"io"

	"github.com/wesleyorama2/courier/http"
	"github.com/wesleyorama2/courier/output"
)

// Transcript is a response modifier that writes a formatted transcript of
// each envelope to W and passes the envelope through untouched. The writer
// is the modifier's own resource; use one Transcript per writer when
// executions run concurrently.
type Transcript struct {
	W io.Writer
	F *output.Formatter
}

func (t Transcript) Mutate(resp *http.Response) *http.Response {
	f := t.F
	if f == nil {
		f = output.NewFormatter(false, true)
	}
	io.WriteString(t.W, f.FormatResponse(resp))
	return resp
}
