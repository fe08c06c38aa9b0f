// Package project owns the single root handle for everything described in
// spec.md §3: the immutable raw image, the block map, labels, comments,
// operand-format overrides, bookmarks and per-project settings. It is
// mutated only by internal/command; everything here is plain data plus the
// bookkeeping needed to snapshot/restore it exactly (undo fidelity,
// property #7).
package project

import (
	"fmt"

	"github.com/dpeek64/retrodisasm/internal/blockmap"
	"github.com/dpeek64/retrodisasm/internal/platform"
)

// Address is an absolute 16-bit memory address, re-exported from blockmap
// so callers of this package rarely need to import it directly.
type Address = blockmap.Address

// Project is the root handle for one loaded binary.
type Project struct {
	Origin Address
	Bytes  []byte // immutable for the project's lifetime

	Blocks *blockmap.Map

	Labels    *LabelTable
	Comments  *CommentTable
	Operands  *OperandTable
	Bookmarks *BookmarkSet

	Settings Settings

	// Xrefs is the analyzer's most recently computed cross-reference
	// index. It is derived state, never hand-edited (spec.md §3).
	Xrefs *XrefIndex

	// version increments on every committed mutation; pipeline caches key
	// off it per spec.md §4.4.
	version uint64
}

// SetAnalysis installs the analyzer's output: a fresh Auto label set and a
// fresh cross-reference index. Called once per analyzer pass by the
// command layer, never by readers.
func (p *Project) SetAnalysis(auto map[Address]string, xrefs *XrefIndex) {
	p.Labels.ReplaceAuto(auto)
	p.Xrefs = xrefs
}

// New creates a project for a freshly loaded binary. origin and bytes come
// from the (out of scope) file-ingest collaborator.
func New(origin uint16, bytes []byte, plat platform.ID) *Project {
	p := &Project{
		Origin:    Address(origin),
		Bytes:     append([]byte(nil), bytes...),
		Blocks:    blockmap.New(Address(origin), Address(len(bytes))),
		Labels:    newLabelTable(),
		Comments:  newCommentTable(),
		Operands:  newOperandTable(),
		Bookmarks: newBookmarkSet(),
		Settings:  DefaultSettings(plat),
	}
	for _, l := range platform.Table(plat) {
		p.Labels.setExternal(Address(l.Address), l.Name)
	}
	return p
}

// End returns the address one past the last byte of the image.
func (p *Project) End() Address { return p.Origin + Address(len(p.Bytes)) }

// InRange reports whether a falls inside [Origin, End()).
func (p *Project) InRange(a Address) bool { return a >= p.Origin && a < p.End() }

// ByteAt returns the raw byte at absolute address a.
func (p *Project) ByteAt(a Address) (byte, error) {
	if !p.InRange(a) {
		return 0, fmt.Errorf("project: address %#04x outside binary [%#04x,%#04x)", a, p.Origin, p.End())
	}
	return p.Bytes[int(a-p.Origin)], nil
}

// Word16 reads a little-endian 16-bit value starting at a.
func (p *Project) Word16(a Address) (uint16, error) {
	lo, err := p.ByteAt(a)
	if err != nil {
		return 0, err
	}
	hi, err := p.ByteAt(a + 1)
	if err != nil {
		return 0, err
	}
	return uint16(lo) | uint16(hi)<<8, nil
}

// Version returns the current state version, bumped by Touch.
func (p *Project) Version() uint64 { return p.version }

// Touch bumps the state version. Called once per committed command by the
// command layer; never called by readers.
func (p *Project) Touch() { p.version++ }

// Clone deep-copies everything the command layer needs to snapshot for
// undo. Bytes are shared (immutable for the project's lifetime) rather than
// copied.
func (p *Project) Clone() *Project {
	return &Project{
		Origin:    p.Origin,
		Bytes:     p.Bytes,
		Blocks:    p.Blocks.Clone(),
		Labels:    p.Labels.clone(),
		Comments:  p.Comments.clone(),
		Operands:  p.Operands.clone(),
		Bookmarks: p.Bookmarks.clone(),
		Settings:  p.Settings,
		version:   p.version,
	}
}
