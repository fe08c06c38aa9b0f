package analyzer

import (
	"testing"

	"github.com/dpeek64/retrodisasm/internal/blockmap"
	"github.com/dpeek64/retrodisasm/internal/platform"
	"github.com/dpeek64/retrodisasm/internal/project"
)

// newAnalyzerProject builds:
//
//	$1000  JSR $1006
//	$1003  LDA $D020
//	$1006  BNE $1006   (subroutine entry, self branch)
//	$1008  RTS
func newAnalyzerProject() *project.Project {
	bytes := []byte{
		0x20, 0x06, 0x10, // JSR $1006
		0xAD, 0x20, 0xD0, // LDA $D020
		0xD0, 0xFE, // BNE $1006 (offset -2 from $1008)
		0x60, // RTS
	}
	p := project.New(0x1000, bytes, platform.C64)
	if err := p.Blocks.Assign(0x1000, project.Address(len(bytes)), blockmap.Code); err != nil {
		panic(err)
	}
	return p
}

func TestAnalyzeFromKnownEntryPoint(t *testing.T) {
	p := newAnalyzerProject()
	res := Run(p)

	if len(res.FallbackToUndefined) != 0 {
		t.Fatalf("expected no decode failures, got %v", res.FallbackToUndefined)
	}

	if xs := res.Xrefs.Of(0x1006); len(xs) != 2 {
		t.Fatalf("expected two referrers at $1006 (JSR + BNE), got %d: %+v", len(xs), xs)
	}

	name, ok := res.AutoLabels[0x1006]
	if !ok || name != "sub_1006" {
		t.Fatalf("expected sub_1006 (JSR beats branch in the collision policy), got %q ok=%v", name, ok)
	}

	if xs := res.Xrefs.Of(0xD020); len(xs) != 1 || xs[0].Relation != project.RelLoadStore {
		t.Fatalf("expected one load/store xref at $D020, got %+v", xs)
	}
	if name := res.AutoLabels[0xD020]; name != "" {
		t.Fatalf("expected no Auto label at $D020: an External platform label already resolves there, got %q", name)
	}
}

func TestIllegalOpcodeTogglesReachability(t *testing.T) {
	bytes := []byte{0xA7, 0x10, 0x60} // LAX $10 (illegal); RTS
	p := project.New(0x2000, bytes, platform.C64)
	if err := p.Blocks.Assign(0x2000, 3, blockmap.Code); err != nil {
		t.Fatal(err)
	}

	p.Settings.UseIllegalOpcodes = false
	res := Run(p)
	if len(res.FallbackToUndefined) != 1 || res.FallbackToUndefined[0] != 0x2000 {
		t.Fatalf("expected LAX at $2000 to fall back to Undefined, got %v", res.FallbackToUndefined)
	}

	p.Settings.UseIllegalOpcodes = true
	res = Run(p)
	if len(res.FallbackToUndefined) != 0 {
		t.Fatalf("expected LAX to decode once illegal opcodes are enabled, got %v", res.FallbackToUndefined)
	}
}

func TestIndirectJumpXrefAnchorsAtPointerNotTarget(t *testing.T) {
	// JMP ($3004); the word at $3004 points at $4000, which is never walked.
	bytes := []byte{
		0x6C, 0x04, 0x30, // JMP ($3004)
		0x00, 0x40, // pointer value: $4000
	}
	p := project.New(0x3000, bytes, platform.C64)
	if err := p.Blocks.Assign(0x3000, 3, blockmap.Code); err != nil {
		t.Fatal(err)
	}
	if err := p.Blocks.Assign(0x3003, 2, blockmap.AddressRef); err != nil {
		t.Fatal(err)
	}

	res := Run(p)

	xs := res.Xrefs.Of(0x3004)
	if len(xs) != 1 || xs[0].Relation != project.RelIndirect {
		t.Fatalf("expected one indirect xref anchored at the pointer address $3004, got %+v", xs)
	}
	if got := res.Xrefs.Of(0x4000); len(got) != 0 {
		t.Fatalf("expected no xref at the computed target $4000 (never followed), got %+v", got)
	}
}

func TestBrkNeverFallsThroughRegardlessOfSingleByteSetting(t *testing.T) {
	bytes := []byte{0x00, 0xEA, 0xEA} // BRK; NOP; NOP
	p := project.New(0x4000, bytes, platform.C64)
	if err := p.Blocks.Assign(0x4000, 3, blockmap.Code); err != nil {
		t.Fatal(err)
	}

	for _, single := range []bool{false, true} {
		p.Settings.BrkSingleByte = single
		res := Run(p)
		if len(res.FallbackToUndefined) != 0 {
			t.Fatalf("brkSingleByte=%v: unexpected fallback %v", single, res.FallbackToUndefined)
		}
		// The NOPs after BRK are never reached: BRK is a dead end either way.
		if _, ok := res.AutoLabels[0x4001]; ok {
			t.Fatalf("brkSingleByte=%v: did not expect $4001 to be treated as reached", single)
		}
	}
}

func TestSplitAddressTableProducesPairedXrefs(t *testing.T) {
	// LoHiAddress table of 4 entries: lo halves then hi halves.
	bytes := []byte{0x00, 0x01, 0x02, 0x03, 0xC0, 0xD1, 0xE2, 0xF3}
	p := project.New(0x2000, bytes, platform.C64)
	if err := p.Blocks.Assign(0x2000, 8, blockmap.LoHiAddress); err != nil {
		t.Fatal(err)
	}

	res := Run(p)
	wantTargets := []project.Address{0xC000, 0xD101, 0xE202, 0xF303}
	for _, target := range wantTargets {
		xs := res.Xrefs.Of(target)
		if len(xs) != 2 {
			t.Fatalf("expected 2 split-table xrefs (lo half + hi half) at %#04x, got %d: %+v", target, len(xs), xs)
		}
		for _, x := range xs {
			if x.Relation != project.RelSplitEntry {
				t.Fatalf("expected RelSplitEntry at %#04x, got %v", target, x.Relation)
			}
		}
	}
}

func TestAnalyzerIsDeterministic(t *testing.T) {
	p := newAnalyzerProject()
	first := Run(p)
	second := Run(p)

	if len(first.AutoLabels) != len(second.AutoLabels) {
		t.Fatalf("non-deterministic Auto label count: %d vs %d", len(first.AutoLabels), len(second.AutoLabels))
	}
	for a, n := range first.AutoLabels {
		if second.AutoLabels[a] != n {
			t.Fatalf("non-deterministic label at %#04x: %q vs %q", a, n, second.AutoLabels[a])
		}
	}
}

func TestGenerateAllLabelsEmitsPlainCodeLabels(t *testing.T) {
	bytes := []byte{0xEA, 0xEA, 0x60} // NOP; NOP; RTS, no xrefs at all
	p := project.New(0x5000, bytes, platform.C64)
	if err := p.Blocks.Assign(0x5000, 3, blockmap.Code); err != nil {
		t.Fatal(err)
	}

	p.Settings.GenerateAllLabels = false
	if res := Run(p); len(res.AutoLabels) != 0 {
		t.Fatalf("expected no labels with generate-all-labels off, got %v", res.AutoLabels)
	}

	p.Settings.GenerateAllLabels = true
	res := Run(p)
	if name, ok := res.AutoLabels[0x5000]; !ok || name != "l5000" {
		t.Fatalf("expected l5000 with generate-all-labels on, got %q ok=%v", name, ok)
	}
}
