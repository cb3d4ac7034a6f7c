// Package charset maps subtitle charset names to x/text codecs.
//
// Subtitle files are read and written in the same charset so that cue text
// survives a run unchanged; only the fixed-width timing columns are touched,
// and those are ASCII in every supported charset.
package charset

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Default is the charset used when none is configured.
const Default = "utf-8"

// ErrUnknownCharset reports a charset name outside the supported set.
var ErrUnknownCharset = errors.New("unknown charset")

var codecs = map[string]encoding.Encoding{
	"utf-8":        nil,
	"utf-16":       unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM),
	"utf-16le":     unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"utf-16be":     unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"windows-1252": charmap.Windows1252,
	"iso-8859-1":   charmap.ISO8859_1,
}

var aliases = map[string]string{
	"utf8":    "utf-8",
	"cp1252":  "windows-1252",
	"latin1":  "iso-8859-1",
	"latin-1": "iso-8859-1",
}

// Codec converts between a file charset and UTF-8.
type Codec struct {
	name string
	enc  encoding.Encoding
}

// Lookup resolves a charset name. Empty means Default.
func Lookup(name string) (Codec, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = Default
	}
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	enc, ok := codecs[key]
	if !ok {
		return Codec{}, fmt.Errorf("%w: %q (supported: %s)", ErrUnknownCharset, name, strings.Join(Names(), ", "))
	}
	return Codec{name: key, enc: enc}, nil
}

// Names lists the canonical charset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(codecs))
	for name := range codecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Name returns the canonical charset name.
func (c Codec) Name() string {
	if c.name == "" {
		return Default
	}
	return c.name
}

// NewReader decodes r into UTF-8.
func (c Codec) NewReader(r io.Reader) io.Reader {
	if c.enc == nil {
		return r
	}
	return transform.NewReader(r, c.enc.NewDecoder())
}

// NewWriter encodes UTF-8 written to it into the codec's charset. Close
// flushes buffered output but does not close w.
func (c Codec) NewWriter(w io.Writer) io.WriteCloser {
	if c.enc == nil {
		return nopWriteCloser{w}
	}
	return transform.NewWriter(w, c.enc.NewEncoder())
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
