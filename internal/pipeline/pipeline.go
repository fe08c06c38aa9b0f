// Package pipeline implements the deterministic translation from (bytes,
// block map, settings) to an ordered sequence of render lines, plus the
// address<->line-index maps derived from that sequence (spec.md §4.4).
package pipeline

import (
	"fmt"
	"strings"

	"github.com/dpeek64/retrodisasm/internal/blockmap"
	"github.com/dpeek64/retrodisasm/internal/cputable"
	"github.com/dpeek64/retrodisasm/internal/formatter"
	"github.com/dpeek64/retrodisasm/internal/project"
	"github.com/dpeek64/retrodisasm/internal/textenc"
)

type Address = project.Address

// Kind tags what a render line represents (spec.md §4.4).
type Kind int

const (
	Blank Kind = iota
	Label
	LineComment
	Instruction
	DataByte
	DataWord
	DataAddress
	DataLoHiPair
	DataHiLoPair
	Text
	ExternalInclude
	CollapsedSummary
)

// Line is one entry of the render-line sequence.
type Line struct {
	Address     Address
	SubIndex    int
	Kind        Kind
	Text        string
	SideComment string
	Bytes       []byte
	Xrefs       []Address
}

// Result is one full pipeline render pass.
type Result struct {
	Lines         []Line
	AddressToLine map[Address]int // primary lines only
	LineToAddress []Address       // one entry per line, including virtual ones
}

func isPrimary(k Kind) bool {
	switch k {
	case Blank, Label, LineComment:
		return false
	default:
		return true
	}
}

// Render performs one full pipeline pass over p using the formatter
// selected by p.Settings.Assembler. Callers that render often should go
// through a Cache instead of calling Render on every read.
func Render(p *project.Project) Result {
	f := formatter.For(p.Settings.Assembler)
	b := &builder{p: p, f: f}

	for _, r := range p.Blocks.AllRuns() {
		b.emitRunPrefix(r)
		if r.Collapsed {
			b.emitCollapsedSummary(r)
			continue
		}
		switch r.Type {
		case blockmap.Code:
			b.emitCodeRun(r)
		case blockmap.ByteData:
			b.emitByteDataRun(r)
		case blockmap.WordData:
			b.emitWordRun(r, DataWord, false)
		case blockmap.AddressRef:
			b.emitWordRun(r, DataAddress, true)
		case blockmap.LoHiAddress, blockmap.LoHiWord, blockmap.HiLoAddress, blockmap.HiLoWord:
			b.emitSplitRun(r)
		case blockmap.PetsciiText:
			b.emitTextRun(r, formatter.EncodingPetscii)
		case blockmap.ScreencodeText:
			b.emitTextRun(r, formatter.EncodingScreencode)
		case blockmap.ExternalFile:
			b.emitExternalFileRun(r)
		case blockmap.Undefined:
			b.emitUndefinedRun(r)
		}
	}

	lineToAddr := make([]Address, len(b.lines))
	for i, l := range b.lines {
		lineToAddr[i] = l.Address
	}
	return Result{Lines: b.lines, AddressToLine: b.addrToLine, LineToAddress: lineToAddr}
}

// Cache memoizes the last Render result, keyed on project version and
// settings (spec.md §4.4 "keep a cached sequence keyed by (state-version,
// settings-version)"); Settings is a plain comparable struct so equality is
// a cheap stand-in for a settings-version counter.
type Cache struct {
	valid    bool
	version  uint64
	settings project.Settings
	result   Result
}

// Get returns the cached render if p is unchanged since the last call,
// otherwise re-renders and refreshes the cache.
func (c *Cache) Get(p *project.Project) Result {
	if c.valid && c.version == p.Version() && c.settings == p.Settings {
		return c.result
	}
	c.result = Render(p)
	c.version = p.Version()
	c.settings = p.Settings
	c.valid = true
	return c.result
}

type builder struct {
	p          *project.Project
	f          formatter.Formatter
	lines      []Line
	addrToLine map[Address]int
}

func (b *builder) emit(l Line) {
	if b.addrToLine == nil {
		b.addrToLine = make(map[Address]int)
	}
	if isPrimary(l.Kind) {
		if _, exists := b.addrToLine[l.Address]; !exists {
			b.addrToLine[l.Address] = len(b.lines)
		}
	}
	b.lines = append(b.lines, l)
}

// emitRunPrefix emits, in spec.md §4.4 order, the line-comment, label and
// splitter-blank that precede the first line of a run.
func (b *builder) emitRunPrefix(r blockmap.Run) {
	sub := 1
	if text, ok := b.p.Comments.Line(r.Start); ok {
		for _, part := range strings.Split(text, "\n") {
			b.emit(Line{Address: r.Start, SubIndex: sub, Kind: LineComment, Text: b.f.CommentPrefix() + " " + part})
			sub++
		}
	}
	if name, _, ok := b.p.Labels.Resolve(r.Start); ok {
		b.emit(Line{Address: r.Start, SubIndex: sub, Kind: Label, Text: b.f.FormatLabelDef(name)})
		sub++
	}
	if b.p.Blocks.HasSplitterBefore(r.Start) && r.Start != b.p.Origin {
		b.emit(Line{Address: r.Start, SubIndex: sub, Kind: Blank})
	}
}

func (b *builder) emitCollapsedSummary(r blockmap.Run) {
	b.emit(Line{
		Address: r.Start,
		Kind:    CollapsedSummary,
		Text:    fmt.Sprintf("; collapsed %#04x-%#04x (%s)", r.Start, r.End()-1, r.Type),
	})
}

func (b *builder) byteAt(a Address) byte {
	v, _ := b.p.ByteAt(a)
	return v
}

func (b *builder) xrefsAt(a Address, max int) []Address {
	xs := b.p.Xrefs.Of(a)
	if len(xs) == 0 {
		return nil
	}
	if max <= 0 || len(xs) <= max {
		out := make([]Address, len(xs))
		for i, x := range xs {
			out[i] = x.Referrer
		}
		return out
	}
	out := make([]Address, max)
	for i := 0; i < max; i++ {
		out[i] = xs[i].Referrer
	}
	return out
}

// --- Code ---

func (b *builder) emitCodeRun(r blockmap.Run) {
	s := b.p.Settings
	addr := r.Start
	for addr < r.End() {
		raw := b.byteAt(addr)
		entry, ok := cputable.Lookup(raw)
		if !ok || (entry.IsIllegal && !s.UseIllegalOpcodes) {
			b.emitDataByte(addr, raw, "illegal opcode, rendered as data")
			addr++
			continue
		}

		length := Address(cputable.EffectiveLength(entry, s.BrkSingleByte))
		if addr+length > r.End() || int(addr-b.p.Origin)+int(length) > len(b.p.Bytes) {
			for addr < r.End() {
				b.emitDataByte(addr, b.byteAt(addr), "")
				addr++
			}
			return
		}

		if entry.IsBreak && length == 2 && s.PatchBrk {
			b.emitInstruction(addr, entry, 1)
			addr++
			b.emitDataByte(addr, b.byteAt(addr), "BRK padding byte")
			addr++
			continue
		}

		b.emitInstruction(addr, entry, length)
		addr += length
	}
}

func (b *builder) emitInstruction(addr Address, entry cputable.Entry, length Address) {
	op := buildOperand(b.p, entry, addr, int(length))
	token := b.f.FormatOperand(op)

	text := entry.Mnemonic
	if token != "" {
		text += " " + token
	}

	offset := int(addr - b.p.Origin)
	bytes := append([]byte(nil), b.p.Bytes[offset:offset+int(length)]...)

	b.emit(Line{
		Address: addr,
		Kind:    Instruction,
		Text:    text,
		Bytes:   bytes,
		Xrefs:   b.xrefsAt(addr, b.p.Settings.MaxXrefs),
	})
}

func buildOperand(p *project.Project, entry cputable.Entry, addr Address, length int) formatter.Operand {
	mode := formatter.AddressingMode(entry.Mode)
	op := formatter.Operand{Mode: mode}

	resolve := func(target Address) {
		if name, _, ok := p.Labels.Resolve(target); ok {
			op.Symbol = name
		}
	}

	switch entry.Mode {
	case cputable.Implied, cputable.Accumulator:
		return op

	case cputable.Immediate:
		v, _ := p.ByteAt(addr + 1)
		op.Numeric = uint16(v)
		switch ov := p.Operands.At(addr); ov.Kind {
		case project.FormatLoHiOf:
			op.LoHiOf = ov.Label
		case project.FormatHiLoOf:
			op.HiLoOf = ov.Label
		}
		return op

	case cputable.ZeroPage, cputable.ZeroPageX, cputable.ZeroPageY, cputable.IndirectX, cputable.IndirectY:
		v, _ := p.ByteAt(addr + 1)
		op.Numeric = uint16(v)
		resolve(Address(v))
		return op

	case cputable.Relative:
		raw, _ := p.ByteAt(addr + 1)
		off := int(int8(raw))
		target := addr + Address(length) + Address(off)
		op.Numeric = uint16(target)
		resolve(target)
		return op

	case cputable.Absolute, cputable.AbsoluteX, cputable.AbsoluteY, cputable.Indirect:
		w, _ := p.Word16(addr + 1)
		op.Numeric = w
		resolve(Address(w))
		if entry.Mode == cputable.Absolute && w <= 0xFF && p.Settings.PreserveLongBytes {
			op.WidthHint = true
		}
		return op
	}
	return op
}

// --- data blocks ---

func (b *builder) emitDataByte(addr Address, v byte, note string) {
	b.emit(Line{
		Address:     addr,
		Kind:        DataByte,
		Text:        b.f.DirectiveByte() + " " + b.f.FormatByteLiteral(v),
		Bytes:       []byte{v},
		SideComment: note,
	})
}

func (b *builder) emitByteDataRun(r blockmap.Run) {
	n := lineWidth(b.p.Settings.BytesPerLine)
	addr := r.Start
	for addr < r.End() {
		count := n
		if remaining := int(r.End() - addr); count > remaining {
			count = remaining
		}
		toks := make([]string, count)
		bytes := make([]byte, count)
		for i := 0; i < count; i++ {
			v := b.byteAt(addr + Address(i))
			bytes[i] = v
			toks[i] = b.f.FormatByteLiteral(v)
		}
		b.emit(Line{
			Address: addr,
			Kind:    DataByte,
			Text:    b.f.DirectiveByte() + " " + strings.Join(toks, ","),
			Bytes:   bytes,
		})
		addr += Address(count)
	}
}

// emitWordRun handles WordData (resolveSymbols=false) and Address
// (resolveSymbols=true), both packed at words-per-line entries per line.
// blockmap does not require these two types to have even length (only the
// four split-table types are length-validated), so a trailing odd byte is
// possible and falls back to a single data-byte line.
func (b *builder) emitWordRun(r blockmap.Run, kind Kind, resolveSymbols bool) {
	n := lineWidth(b.p.Settings.WordsPerLine)
	addr := r.Start
	for addr < r.End() {
		if r.End()-addr < 2 {
			b.emitDataByte(addr, b.byteAt(addr), "trailing odd byte of a word table")
			addr++
			break
		}
		count := n
		if remaining := int(r.End()-addr) / 2; count > remaining {
			count = remaining
		}
		if count == 0 {
			break
		}
		toks := make([]string, count)
		bytes := make([]byte, 0, count*2)
		for i := 0; i < count; i++ {
			w, _ := b.p.Word16(addr + Address(i*2))
			bytes = append(bytes, byte(w), byte(w>>8))
			if resolveSymbols {
				if name, _, ok := b.p.Labels.Resolve(Address(w)); ok {
					toks[i] = b.f.FormatLabelRef(name)
					continue
				}
			}
			toks[i] = b.f.FormatWordLiteral(w)
		}
		b.emit(Line{
			Address: addr,
			Kind:    kind,
			Text:    b.f.DirectiveWord() + " " + strings.Join(toks, ","),
			Bytes:   bytes,
		})
		addr += Address(count * 2)
	}
}

// emitSplitRun renders a LoHi*/HiLo* run as two groups of lines: the first
// half of the run, then the second half, each packed at words-per-line raw
// bytes per line (DESIGN.md Open Question addendum on split-table layout).
func (b *builder) emitSplitRun(r blockmap.Run) {
	kind := DataLoHiPair
	if r.Type == blockmap.HiLoAddress || r.Type == blockmap.HiLoWord {
		kind = DataHiLoPair
	}
	half := r.Length / 2
	n := lineWidth(b.p.Settings.WordsPerLine)

	emitHalf := func(start Address) {
		addr := start
		end := start + half
		for addr < end {
			count := n
			if remaining := int(end - addr); count > remaining {
				count = remaining
			}
			toks := make([]string, count)
			bytes := make([]byte, count)
			for i := 0; i < count; i++ {
				v := b.byteAt(addr + Address(i))
				bytes[i] = v
				toks[i] = b.f.FormatByteLiteral(v)
			}
			b.emit(Line{
				Address: addr,
				Kind:    kind,
				Text:    b.f.DirectiveByte() + " " + strings.Join(toks, ","),
				Bytes:   bytes,
			})
			addr += Address(count)
		}
	}

	emitHalf(r.Start)
	emitHalf(r.Start + half)
}

func (b *builder) emitTextRun(r blockmap.Run, enc formatter.Encoding) {
	limit := b.p.Settings.TextLineLimit
	if limit <= 0 {
		limit = len(b.p.Bytes)
	}
	tEnc := textenc.Petscii
	if enc == formatter.EncodingScreencode {
		tEnc = textenc.Screencode
	}

	pushed := false
	pos := r.Start
	for pos < r.End() {
		remaining := int(r.End() - pos)
		width := remaining
		if width > limit {
			width = limit
		}
		offset := int(pos - b.p.Origin)
		chunk := b.p.Bytes[offset : offset+width]

		text, consumed := textenc.DecodeRun(tEnc, chunk)
		if consumed == 0 {
			b.emitDataByte(pos, chunk[0], "unprintable byte inside text block")
			pos++
			continue
		}

		if !pushed {
			if push := b.f.EncodingPush(enc); push != "" {
				b.emit(Line{Address: pos, Kind: Text, Text: push})
			}
			pushed = true
		}

		b.emit(Line{
			Address: pos,
			Kind:    Text,
			Text:    b.f.DirectiveText(enc) + " " + b.f.FormatTextLiteral(text),
			Bytes:   append([]byte(nil), chunk[:consumed]...),
		})
		pos += Address(consumed)
	}
	if pushed {
		if pop := b.f.EncodingPop(enc); pop != "" {
			b.emit(Line{Address: r.End() - 1, Kind: Text, Text: pop})
		}
	}
}

func (b *builder) emitExternalFileRun(r blockmap.Run) {
	filename := fmt.Sprintf("%04X-%04X.bin", r.Start, r.End()-1)
	b.emit(Line{
		Address: r.Start,
		Kind:    ExternalInclude,
		Text:    b.f.DirectiveInclude() + ` "` + filename + `"`,
	})
}

func (b *builder) emitUndefinedRun(r blockmap.Run) {
	addr := r.Start
	for addr < r.End() {
		b.emitDataByte(addr, b.byteAt(addr), "")
		addr++
	}
}

func lineWidth(configured int) int {
	if configured <= 0 {
		return 1
	}
	return configured
}
