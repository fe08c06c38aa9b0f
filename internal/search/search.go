// Package search implements the byte/text search external interface of
// spec.md §6: a read-only scan over a project's immutable image, returning
// every address a needle occurs at under the chosen encoding. It never
// mutates a Project and is safe to call between commands per the §5
// concurrency model.
package search

import (
	"bytes"

	"github.com/dpeek64/retrodisasm/internal/project"
	"github.com/dpeek64/retrodisasm/internal/textenc"
)

// Address is re-exported so callers rarely need to import project directly.
type Address = project.Address

// Encoding selects how a text needle is turned into raw bytes before
// scanning. Raw treats the needle as already being raw bytes.
type Encoding int

const (
	Raw Encoding = iota
	Petscii
	Screencode
)

// ErrEmptyNeedle is returned for a zero-length search request.
type ErrEmptyNeedle struct{}

func (ErrEmptyNeedle) Error() string { return "search: needle is empty" }

// ErrUnencodable is returned when a text needle contains a rune with no
// representation in the requested encoding.
type ErrUnencodable struct {
	Text string
	Enc  Encoding
}

func (e ErrUnencodable) Error() string {
	return "search: \"" + e.Text + "\" has no representation in the requested encoding"
}

// FindBytes scans p's image for every occurrence of needle, treated as raw
// bytes regardless of encoding.
func FindBytes(p *project.Project, needle []byte) ([]Address, error) {
	if len(needle) == 0 {
		return nil, ErrEmptyNeedle{}
	}
	var hits []Address
	buf := p.Bytes
	for offset := 0; ; {
		idx := bytes.Index(buf[offset:], needle)
		if idx < 0 {
			break
		}
		hits = append(hits, p.Origin+Address(offset+idx))
		offset += idx + 1
	}
	return hits, nil
}

// FindText scans p's image for text, encoded per enc before scanning. Raw
// scans for the string's own bytes unchanged, exactly as FindBytes would; it
// exists so a caller can thread a single Encoding value through from a CLI
// flag or UI dropdown without a separate branch for "no encoding".
func FindText(p *project.Project, text string, enc Encoding) ([]Address, error) {
	if text == "" {
		return nil, ErrEmptyNeedle{}
	}
	var needle []byte
	switch enc {
	case Petscii:
		b, ok := textenc.Encode(textenc.Petscii, text)
		if !ok {
			return nil, ErrUnencodable{Text: text, Enc: enc}
		}
		needle = b
	case Screencode:
		b, ok := textenc.Encode(textenc.Screencode, text)
		if !ok {
			return nil, ErrUnencodable{Text: text, Enc: enc}
		}
		needle = b
	default:
		needle = []byte(text)
	}
	return FindBytes(p, needle)
}
