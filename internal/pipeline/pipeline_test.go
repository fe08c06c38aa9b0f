package pipeline

import (
	"strings"
	"testing"

	"github.com/dpeek64/retrodisasm/internal/blockmap"
	"github.com/dpeek64/retrodisasm/internal/platform"
	"github.com/dpeek64/retrodisasm/internal/project"
)

// TestLineAddressMapIsBijectiveOnPrimaries checks spec.md §8 property #6:
// for every primary line, looking its address up in AddressToLine and then
// indexing LineToAddress at that index returns the same address back.
func TestLineAddressMapIsBijectiveOnPrimaries(t *testing.T) {
	bytes := []byte{
		0x20, 0x06, 0x10, // JSR $1006
		0xAD, 0x20, 0xD0, // LDA $D020
		0xD0, 0xFE, // BNE $1006
		0x60, // RTS
	}
	p := project.New(0x1000, bytes, platform.C64)
	if err := p.Blocks.Assign(0x1000, project.Address(len(bytes)), blockmap.Code); err != nil {
		t.Fatal(err)
	}

	res := Render(p)
	if len(res.Lines) != len(res.LineToAddress) {
		t.Fatalf("Lines and LineToAddress length mismatch: %d vs %d", len(res.Lines), len(res.LineToAddress))
	}
	for addr, idx := range res.AddressToLine {
		if res.LineToAddress[idx] != addr {
			t.Fatalf("address->line->address round-trip broken at %#04x: line %d holds %#04x", addr, idx, res.LineToAddress[idx])
		}
		if !isPrimary(res.Lines[idx].Kind) {
			t.Fatalf("AddressToLine pointed at a non-primary line kind %v at %#04x", res.Lines[idx].Kind, addr)
		}
	}
}

// TestCodeRunProducesOneInstructionLinePerInstruction mirrors the JSR/LDA/
// BNE/RTS image used by the analyzer's own tests and checks every decoded
// instruction gets exactly one Instruction line, at its own start address.
func TestCodeRunProducesOneInstructionLinePerInstruction(t *testing.T) {
	bytes := []byte{
		0x20, 0x06, 0x10,
		0xAD, 0x20, 0xD0,
		0xD0, 0xFE,
		0x60,
	}
	p := project.New(0x1000, bytes, platform.C64)
	if err := p.Blocks.Assign(0x1000, project.Address(len(bytes)), blockmap.Code); err != nil {
		t.Fatal(err)
	}

	res := Render(p)
	wantStarts := []project.Address{0x1000, 0x1003, 0x1006, 0x1008}
	var gotStarts []project.Address
	for _, l := range res.Lines {
		if l.Kind == Instruction {
			gotStarts = append(gotStarts, l.Address)
		}
	}
	if len(gotStarts) != len(wantStarts) {
		t.Fatalf("expected %d instruction lines, got %d: %+v", len(wantStarts), len(gotStarts), gotStarts)
	}
	for i, want := range wantStarts {
		if gotStarts[i] != want {
			t.Fatalf("instruction %d: expected start %#04x, got %#04x", i, want, gotStarts[i])
		}
	}
}

// TestSplitTableEmitsLowHalfThenHighHalf exercises spec.md §8 scenario 2's
// worked numeric example directly against the render output: words-per-line
// 4 over a 4-entry (8-byte) LoHiAddress table produces exactly one data line
// per half, low half first.
func TestSplitTableEmitsLowHalfThenHighHalf(t *testing.T) {
	bytes := []byte{0x00, 0x01, 0x02, 0x03, 0xC0, 0xD1, 0xE2, 0xF3}
	p := project.New(0x2000, bytes, platform.C64)
	if err := p.Blocks.Assign(0x2000, 8, blockmap.LoHiAddress); err != nil {
		t.Fatal(err)
	}
	p.Settings.WordsPerLine = 4

	res := Render(p)
	var dataLines []Line
	for _, l := range res.Lines {
		if l.Kind == DataLoHiPair {
			dataLines = append(dataLines, l)
		}
	}
	if len(dataLines) != 2 {
		t.Fatalf("expected 2 data lines (one per half), got %d: %+v", len(dataLines), dataLines)
	}
	if dataLines[0].Address != 0x2000 {
		t.Fatalf("expected low half to start at $2000, got %#04x", dataLines[0].Address)
	}
	if dataLines[1].Address != 0x2004 {
		t.Fatalf("expected high half to start at $2004, got %#04x", dataLines[1].Address)
	}
	if string(dataLines[0].Bytes) != "\x00\x01\x02\x03" {
		t.Fatalf("expected low half bytes 00 01 02 03, got %x", dataLines[0].Bytes)
	}
	if string(dataLines[1].Bytes) != "\xC0\xD1\xE2\xF3" {
		t.Fatalf("expected high half bytes C0 D1 E2 F3, got %x", dataLines[1].Bytes)
	}
}

// TestWordTableOddLengthFallsBackToDataByte covers the case blockmap
// permits (WordData/Address are not length-validated) but the pipeline must
// still account for every byte.
func TestWordTableOddLengthFallsBackToDataByte(t *testing.T) {
	bytes := []byte{0x00, 0x10, 0x42} // one word, plus a trailing orphan byte
	p := project.New(0x3000, bytes, platform.C64)
	if err := p.Blocks.Assign(0x3000, 3, blockmap.WordData); err != nil {
		t.Fatal(err)
	}

	res := Render(p)
	var sawTrailing bool
	for _, l := range res.Lines {
		if l.Kind == DataByte && l.Address == 0x3002 {
			sawTrailing = true
		}
	}
	if !sawTrailing {
		t.Fatalf("expected the trailing odd byte at $3002 to surface as its own data-byte line, lines: %+v", res.Lines)
	}
}

// TestIllegalOpcodeRendersAsDataInsideCodeRun checks that with illegal
// opcodes disabled, a byte that decodes to an undocumented instruction
// renders as a one-byte data line rather than aborting the whole run.
func TestIllegalOpcodeRendersAsDataInsideCodeRun(t *testing.T) {
	bytes := []byte{0xA7, 0x10, 0x60} // LAX $10 (illegal); RTS
	p := project.New(0x4000, bytes, platform.C64)
	if err := p.Blocks.Assign(0x4000, 3, blockmap.Code); err != nil {
		t.Fatal(err)
	}
	p.Settings.UseIllegalOpcodes = false

	res := Render(p)
	if len(res.Lines) == 0 || res.Lines[0].Kind != DataByte || res.Lines[0].Address != 0x4000 {
		t.Fatalf("expected $4000 to render as data (illegal opcode disabled), got %+v", res.Lines)
	}

	var covered int
	for _, l := range res.Lines {
		covered += len(l.Bytes)
	}
	if covered != len(bytes) {
		t.Fatalf("expected every byte of the run accounted for exactly once, covered %d of %d", covered, len(bytes))
	}
}

// TestBrkPatchSplitsInstructionAndPaddingByte covers patch-brk: a two-byte
// BRK with patch-brk enabled renders as a one-byte BRK instruction line
// followed by a one-byte data line for the padding byte, never losing it.
func TestBrkPatchSplitsInstructionAndPaddingByte(t *testing.T) {
	bytes := []byte{0x00, 0xEA} // BRK; NOP (the NOP byte becomes BRK's padding slot)
	p := project.New(0x5000, bytes, platform.C64)
	if err := p.Blocks.Assign(0x5000, 2, blockmap.Code); err != nil {
		t.Fatal(err)
	}
	p.Settings.PatchBrk = true
	p.Settings.BrkSingleByte = false

	res := Render(p)
	var instr, data bool
	for _, l := range res.Lines {
		if l.Kind == Instruction && l.Address == 0x5000 {
			instr = true
			if len(l.Bytes) != 1 {
				t.Fatalf("expected patched BRK instruction line to carry only 1 byte, got %d", len(l.Bytes))
			}
		}
		if l.Kind == DataByte && l.Address == 0x5001 {
			data = true
		}
	}
	if !instr || !data {
		t.Fatalf("expected both a BRK instruction line and a padding data line, got %+v", res.Lines)
	}
}

// TestLabelAndCommentPrecedeFirstRunLine checks the §4.4 prefix ordering:
// line-comment, then label, then (if a splitter sits there) blank, all
// before the run's first content line, and all sharing the line-comment/
// label's own sub-index sequence at that address.
func TestLabelAndCommentPrecedeFirstRunLine(t *testing.T) {
	bytes := []byte{0xEA, 0x60} // NOP; RTS
	p := project.New(0x6000, bytes, platform.C64)
	if err := p.Blocks.Assign(0x6000, 2, blockmap.Code); err != nil {
		t.Fatal(err)
	}
	if _, _, err := p.Labels.SetUser(0x6000, "start"); err != nil {
		t.Fatal(err)
	}
	p.Comments.SetLine(0x6000, "entry point")

	res := Render(p)
	if len(res.Lines) < 3 {
		t.Fatalf("expected at least 3 lines (comment, label, instruction), got %+v", res.Lines)
	}
	if res.Lines[0].Kind != LineComment {
		t.Fatalf("expected line-comment first, got %v", res.Lines[0].Kind)
	}
	if res.Lines[1].Kind != Label || !strings.Contains(res.Lines[1].Text, "start") {
		t.Fatalf("expected label second, got %+v", res.Lines[1])
	}
	if res.Lines[2].Kind != Instruction {
		t.Fatalf("expected instruction third, got %v", res.Lines[2].Kind)
	}
}

// TestCollapsedRunEmitsSingleSummaryLine checks that a collapsed run, no
// matter its length or type, renders as exactly one CollapsedSummary line.
func TestCollapsedRunEmitsSingleSummaryLine(t *testing.T) {
	bytes := make([]byte, 64)
	p := project.New(0x7000, bytes, platform.C64)
	if err := p.Blocks.Assign(0x7000, 64, blockmap.ByteData); err != nil {
		t.Fatal(err)
	}
	if err := p.Blocks.SetCollapsed(0x7000, 64, true); err != nil {
		t.Fatal(err)
	}

	res := Render(p)
	var summaries int
	for _, l := range res.Lines {
		if l.Kind == CollapsedSummary {
			summaries++
		}
		if l.Kind == DataByte {
			t.Fatalf("did not expect any data-byte lines inside a collapsed run, got %+v", l)
		}
	}
	if summaries != 1 {
		t.Fatalf("expected exactly 1 collapsed-summary line, got %d", summaries)
	}
}

// TestTextRunWrapsAtUnprintableByte exercises the PETSCII decode integration
// and the "wrap at the next unprintable byte" rule: an unprintable byte
// mid-run ends the text line there and surfaces as its own data-byte line.
func TestTextRunWrapsAtUnprintableByte(t *testing.T) {
	bytes := []byte{'H', 'I', 0xFF, '!'} // 0xFF is unprintable PETSCII
	p := project.New(0x8000, bytes, platform.C64)
	if err := p.Blocks.Assign(0x8000, 4, blockmap.PetsciiText); err != nil {
		t.Fatal(err)
	}

	res := Render(p)
	var text, data bool
	for _, l := range res.Lines {
		// The dialect's encoding pragma line is also a Text line at $8000,
		// but it carries no bytes; the string literal line is the one that does.
		if l.Kind == Text && l.Address == 0x8000 && l.Bytes != nil {
			text = true
			if len(l.Bytes) != 2 {
				t.Fatalf("expected the printable prefix to be 2 bytes (H, I), got %d", len(l.Bytes))
			}
		}
		if l.Kind == DataByte && l.Address == 0x8002 {
			data = true
		}
	}
	if !text || !data {
		t.Fatalf("expected a text line for the printable prefix and a data line for the unprintable byte, got %+v", res.Lines)
	}
}

// TestRenderIsDeterministic covers spec.md §8 property #10: the same
// project state renders to byte-identical line text on every pass.
func TestRenderIsDeterministic(t *testing.T) {
	bytes := []byte{0x20, 0x06, 0x10, 0xAD, 0x20, 0xD0, 0xD0, 0xFE, 0x60}
	p := project.New(0x1000, bytes, platform.C64)
	if err := p.Blocks.Assign(0x1000, project.Address(len(bytes)), blockmap.Code); err != nil {
		t.Fatal(err)
	}

	first := Render(p)
	second := Render(p)
	if len(first.Lines) != len(second.Lines) {
		t.Fatalf("non-deterministic line count: %d vs %d", len(first.Lines), len(second.Lines))
	}
	for i := range first.Lines {
		if first.Lines[i].Text != second.Lines[i].Text {
			t.Fatalf("non-deterministic text at line %d: %q vs %q", i, first.Lines[i].Text, second.Lines[i].Text)
		}
	}
}

// TestCacheInvalidatesOnSettingsChange checks the pipeline cache keys on
// settings as well as version: flipping a setting without touching the
// project must still produce a fresh render.
func TestCacheInvalidatesOnSettingsChange(t *testing.T) {
	bytes := []byte{0x4C, 0x50, 0x00} // JMP $0050, operand within zero-page width
	p := project.New(0x1000, bytes, platform.C64)
	if err := p.Blocks.Assign(0x1000, 3, blockmap.Code); err != nil {
		t.Fatal(err)
	}
	p.Settings.PreserveLongBytes = false

	var c Cache
	first := c.Get(p)

	p.Settings.PreserveLongBytes = true
	second := c.Get(p)

	if first.Lines[0].Text == second.Lines[0].Text {
		t.Fatalf("expected cache to invalidate on settings change, both renders produced %q", first.Lines[0].Text)
	}
}

// TestExternalLabelResolvesInOperand checks that a platform External label
// (never written by the user) shows up as the operand's symbol.
func TestExternalLabelResolvesInOperand(t *testing.T) {
	bytes := []byte{0xAD, 0x20, 0xD0} // LDA $D020 (VIC_BORDER)
	p := project.New(0x9000, bytes, platform.C64)
	if err := p.Blocks.Assign(0x9000, 3, blockmap.Code); err != nil {
		t.Fatal(err)
	}

	res := Render(p)
	if len(res.Lines) == 0 || !strings.Contains(res.Lines[0].Text, "VIC_BORDER") {
		t.Fatalf("expected operand to resolve to VIC_BORDER, got %+v", res.Lines)
	}
}
