// Package json renders results for scripts, laid out like karabiner.json
package json

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/arthur-debert/karabuild/pkg/errors"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// Renderer writes one pretty-printed JSON document per call
type Renderer struct {
	output io.Writer
}

// New creates a new JSON renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult encodes any display type
func (r *Renderer) RenderResult(result interface{}) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(result); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode result")
	}
	return r.write(buf.Bytes())
}

// RenderError writes {"error", "code", "details"}; code and details only
// when the error carries them.
func (r *Renderer) RenderError(err error) error {
	doc, setErr := sjson.SetBytes([]byte(`{}`), "error", err.Error())
	if code := errors.GetErrorCode(err); setErr == nil && code != errors.ErrUnknown {
		doc, setErr = sjson.SetBytes(doc, "code", string(code))
	}
	if details := errors.GetErrorDetails(err); setErr == nil && len(details) > 0 {
		doc, setErr = sjson.SetBytes(doc, "details", details)
	}
	if setErr != nil {
		return errors.Wrap(setErr, errors.ErrInternal, "failed to encode error")
	}
	return r.write(doc)
}

// RenderMessage writes {"message": msg}
func (r *Renderer) RenderMessage(msg string) error {
	doc, err := sjson.SetBytes([]byte(`{}`), "message", msg)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode message")
	}
	return r.write(doc)
}

func (r *Renderer) write(doc []byte) error {
	_, err := r.output.Write(pretty.Pretty(doc))
	return err
}
