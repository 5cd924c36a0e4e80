package uri

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"braces.dev/errtrace"

	"github.com/paycodes/bip21/internal/grammar"
	"github.com/paycodes/bip21/internal/ioutil"
	"github.com/paycodes/bip21/internal/util"
)

// keyGuard passes writes through to w and panics if they contain "=".
type keyGuard struct {
	w   io.Writer
	key any
}

func (g keyGuard) Write(p []byte) (int, error) {
	if bytes.IndexByte(p, '=') >= 0 {
		panic(newKeyErr(g.key))
	}
	return errtrace.Wrap2(g.w.Write(p))
}

func (g keyGuard) WriteString(s string) (int, error) {
	if strings.IndexByte(s, '=') >= 0 {
		panic(newKeyErr(g.key))
	}
	return errtrace.Wrap2(io.WriteString(g.w, s))
}

// fieldWriter writes the query part of the URI field by field.
// The first field is prefixed with "?", the rest with "&".
type fieldWriter struct {
	cw       *ioutil.CountingWriter
	noFields bool
}

func newFieldWriter(cw *ioutil.CountingWriter) *fieldWriter {
	return &fieldWriter{cw: cw, noFields: true}
}

// writeField writes key=value. The value is written as is, it must be escaped by the caller.
// The key is checked before anything of the field reaches the output.
func (fw *fieldWriter) writeField(key any, value func(io.Writer) (int, error)) {
	if fw.cw.Err() != nil {
		return
	}

	buf := util.GetBytesBuffer()
	defer util.FreeBytesBuffer(buf)

	g := keyGuard{w: buf, key: key}
	switch k := key.(type) {
	case string:
		g.WriteString(k) //nolint:errcheck
	default:
		fmt.Fprint(g, k) //nolint:errcheck
	}

	if fw.noFields {
		fw.cw.WriteByte('?') //nolint:errcheck
		fw.noFields = false
	} else {
		fw.cw.WriteByte('&') //nolint:errcheck
	}
	fw.cw.Write(buf.Bytes()) //nolint:errcheck
	fw.cw.WriteByte('=')     //nolint:errcheck
	fw.cw.Call(value)
}

// maybeWriteParam writes the field only if the value is present.
func (fw *fieldWriter) maybeWriteParam(key string, value *Param) {
	if value == nil {
		return
	}
	fw.writeField(key, func(w io.Writer) (int, error) {
		return errtrace.Wrap2(value.RenderTo(w, nil))
	})
}

// escapeDisplay returns a renderer writing v percent-encoded.
// A nil value renders as an empty value.
func escapeDisplay(v any) func(io.Writer) (int, error) {
	return func(w io.Writer) (int, error) {
		switch v := v.(type) {
		case nil:
			return 0, nil
		case string:
			return errtrace.Wrap2(ioutil.EscapeTo(w, v, grammar.ShouldEscapeQueryChar))
		case []byte:
			return errtrace.Wrap2(ioutil.EscapeTo(w, v, grammar.ShouldEscapeQueryChar))
		case *Param:
			return errtrace.Wrap2(v.RenderTo(w, nil))
		case Param:
			return errtrace.Wrap2(v.RenderTo(w, nil))
		}

		cw := ioutil.GetCountingWriter(w)
		defer ioutil.FreeCountingWriter(cw)
		fmt.Fprint(ioutil.NewEscapingWriter(cw, grammar.ShouldEscapeQueryChar), v) //nolint:errcheck
		return errtrace.Wrap2(cw.Result())
	}
}
