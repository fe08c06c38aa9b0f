package blockmap

import "testing"

func TestNewIsEntirelyUndefined(t *testing.T) {
	m := New(0x1000, 0x10)
	typ, ok := m.Get(0x1000)
	if !ok || typ != Undefined {
		t.Fatalf("expected Undefined, got %v ok=%v", typ, ok)
	}
	if len(m.AllRuns()) != 1 {
		t.Fatalf("expected one run, got %d", len(m.AllRuns()))
	}
}

func TestAssignAndAutoMerge(t *testing.T) {
	m := New(0x1000, 0x10)
	if err := m.Assign(0x1000, 4, Code); err != nil {
		t.Fatal(err)
	}
	if err := m.Assign(0x1004, 4, Code); err != nil {
		t.Fatal(err)
	}
	runs := m.AllRuns()
	if len(runs) != 2 {
		t.Fatalf("expected merge into one Code run plus the Undefined tail, got %d: %+v", len(runs), runs)
	}
	if runs[0].Type != Code || runs[0].Start != 0x1000 || runs[0].Length != 8 {
		t.Fatalf("unexpected merged run: %+v", runs[0])
	}
}

func TestSplitterPreventsMerge(t *testing.T) {
	// Scenario 3: two adjacent LoHiAddress tables must stay distinct once a
	// splitter separates them, or reference resolution mis-indexes.
	m := New(0x3000, 0x200)
	if err := m.Assign(0x3000, 0x100, LoHiAddress); err != nil {
		t.Fatal(err)
	}
	if err := m.Assign(0x3100, 0x100, LoHiAddress); err != nil {
		t.Fatal(err)
	}
	runs := m.AllRuns()
	if len(runs) != 1 || runs[0].Length != 0x200 {
		t.Fatalf("expected the two tables to merge without a splitter, got %+v", runs)
	}

	m2 := New(0x3000, 0x200)
	if err := m2.Assign(0x3000, 0x100, LoHiAddress); err != nil {
		t.Fatal(err)
	}
	m2.ToggleSplitter(0x3100)
	if err := m2.Assign(0x3100, 0x100, LoHiAddress); err != nil {
		t.Fatal(err)
	}
	runs2 := m2.AllRuns()
	if len(runs2) != 2 {
		t.Fatalf("expected splitter to keep two distinct runs, got %+v", runs2)
	}
	if runs2[0].Start != 0x3000 || runs2[0].Length != 0x100 {
		t.Fatalf("unexpected first run: %+v", runs2[0])
	}
	if runs2[1].Start != 0x3100 || runs2[1].Length != 0x100 {
		t.Fatalf("unexpected second run: %+v", runs2[1])
	}
}

func TestToggleSplitterTwiceIsNoOp(t *testing.T) {
	m := New(0x1000, 0x10)
	m.Assign(0x1000, 0x10, ByteData)
	before := m.AllRuns()
	m.ToggleSplitter(0x1008)
	m.ToggleSplitter(0x1008)
	after := m.AllRuns()
	if len(before) != len(after) || before[0] != after[0] {
		t.Fatalf("double toggle should be a no-op: before=%+v after=%+v", before, after)
	}
}

func TestSplitSizeValidationRejectsOddLoHi(t *testing.T) {
	m := New(0x2000, 0x10)
	if err := m.Assign(0x2000, 3, LoHiAddress); err != ErrSplitSizeInvalid {
		t.Fatalf("expected ErrSplitSizeInvalid, got %v", err)
	}
	// Must not have mutated state.
	if typ, _ := m.Get(0x2000); typ != Undefined {
		t.Fatalf("failed assign must not mutate state, got %v", typ)
	}
}

func TestSplitSizeValidationRejectsNonQuadWord(t *testing.T) {
	m := New(0x2000, 0x10)
	if err := m.Assign(0x2000, 6, LoHiWord); err != ErrSplitSizeInvalid {
		t.Fatalf("expected ErrSplitSizeInvalid, got %v", err)
	}
}

func TestAssignOutsideBinaryRejected(t *testing.T) {
	m := New(0x1000, 0x10)
	if err := m.Assign(0x1000, 0x11, ByteData); err != ErrInvalidRange {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
	if err := m.Assign(0x1010, 1, ByteData); err != ErrInvalidRange {
		t.Fatalf("expected ErrInvalidRange for address just past the end, got %v", err)
	}
}

func TestCollapsedRunsMergeAcrossNoSplitter(t *testing.T) {
	// Open Question 1: collapse is run metadata, not a splitter; two
	// adjacent same-type collapsed runs merge like any other pair, keeping
	// the left run's Collapsed flag.
	m2 := New(0x4000, 0x10)
	m2.ToggleSplitter(0x4008)
	m2.Assign(0x4000, 8, ByteData)
	m2.Assign(0x4008, 8, ByteData)
	m2.SetCollapsed(0x4000, 8, true)
	m2.SetCollapsed(0x4008, 8, true)
	runs := m2.AllRuns()
	if len(runs) != 2 {
		t.Fatalf("splitter must keep runs distinct, got %+v", runs)
	}
	// Now remove the splitter: the merge check at that boundary should fire
	// and collapse the two collapsed runs into one, keeping Start=0x4000's
	// Collapsed flag (true either way here since both were true).
	m2.ToggleSplitter(0x4008)
	merged := m2.AllRuns()
	if len(merged) != 1 || !merged[0].Collapsed || merged[0].Length != 0x10 {
		t.Fatalf("expected one collapsed merged run, got %+v", merged)
	}
}

func TestIterRunsClipsToWindow(t *testing.T) {
	m := New(0, 0x20)
	m.Assign(0, 0x10, Code)
	m.Assign(0x10, 0x10, ByteData)
	runs := m.IterRuns(0x8, 0x18)
	if len(runs) != 2 {
		t.Fatalf("expected 2 clipped runs, got %+v", runs)
	}
	if runs[0].Start != 0x8 || runs[0].Length != 0x8 {
		t.Fatalf("unexpected clipped first run: %+v", runs[0])
	}
	if runs[1].Start != 0x10 || runs[1].Length != 0x8 {
		t.Fatalf("unexpected clipped second run: %+v", runs[1])
	}
}
