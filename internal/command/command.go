// Package command implements the single mutation surface of spec.md §4.6:
// every edit to a Project goes through Do, which validates, applies and
// records an inverse command on the undo stack. Apply/Undo/Redo are all
// the same dispatch over one tagged Command type, not virtual methods, per
// spec.md §9.
package command

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/dpeek64/retrodisasm/internal/analyzer"
	"github.com/dpeek64/retrodisasm/internal/blockmap"
	"github.com/dpeek64/retrodisasm/internal/formatter"
	"github.com/dpeek64/retrodisasm/internal/project"
)

type Address = project.Address

// Kind tags which mutation a Command performs.
type Kind int

const (
	SetBlockType Kind = iota
	ToggleSplitter
	SetLabel
	SetSideComment
	SetLineComment
	SetOperandFormat
	ToggleBookmark
	Analyze

	// restoreWindow and batchKind are never issued by a caller; Apply
	// synthesizes them as inverses (a block-map range restore, and the
	// reverse-order replay of a Batch).
	restoreWindow
	batchKind
)

func (k Kind) String() string {
	switch k {
	case SetBlockType:
		return "SetBlockType"
	case ToggleSplitter:
		return "ToggleSplitter"
	case SetLabel:
		return "SetLabel"
	case SetSideComment:
		return "SetSideComment"
	case SetLineComment:
		return "SetLineComment"
	case SetOperandFormat:
		return "SetOperandFormat"
	case ToggleBookmark:
		return "ToggleBookmark"
	case Analyze:
		return "Analyze"
	case restoreWindow:
		return "restoreWindow"
	default:
		return "batch"
	}
}

// Command is one tagged mutation. Only the fields relevant to Kind are
// read; the rest are zero.
type Command struct {
	Kind Kind

	Start     Address
	Length    Address
	BlockType blockmap.Type

	Addr Address

	Name string // SetLabel

	Text string // SetSideComment / SetLineComment

	Format project.OperandFormat // SetOperandFormat

	window   windowSnapshot    // restoreWindow
	analysis *analysisRestore  // Analyze
	batch    []Command         // batchKind
}

// Typed errors, per spec.md §7. SplitSizeInvalid and InvalidRange surface
// directly as blockmap.ErrSplitSizeInvalid/blockmap.ErrInvalidRange;
// LabelCollision/LabelNameInvalid surface directly as the project package's
// own typed errors. This package adds the two conditions specific to the
// command boundary itself.
var (
	ErrUnknownAddress = fmt.Errorf("command: address outside the project's range")
	ErrNotApplicable  = fmt.Errorf("command: not applicable in the current state")
)

// SerializationError wraps a settings/label codec failure (§7), for callers
// that need to distinguish it from a validation error.
type SerializationError struct {
	Op  string
	Err error
}

func (e *SerializationError) Error() string { return fmt.Sprintf("command: %s: %v", e.Op, e.Err) }
func (e *SerializationError) Unwrap() error { return e.Err }

// windowSnapshot captures the exact prior run layout and splitter state of
// a block-map range, restorable regardless of whether the forward command
// was a reclassification or a merge-triggering splitter removal (see
// DESIGN.md).
type windowSnapshot struct {
	runs      []blockmap.Run
	junctions map[Address]bool
}

func snapshotWindow(m *blockmap.Map, start, end Address) windowSnapshot {
	runs := m.IterRuns(start, end)
	junctions := make(map[Address]bool, len(runs))
	for i := 1; i < len(runs); i++ {
		addr := runs[i].Start
		junctions[addr] = m.HasSplitterBefore(addr)
	}
	return windowSnapshot{runs: runs, junctions: junctions}
}

// applyRestoreWindow pins every interior junction's splitter on first (so
// Assign can't prematurely re-merge pieces it hasn't reassigned yet), lays
// down every run in left-to-right order, then relaxes each junction back to
// its exact prior state (which may itself trigger the correct re-merge).
func applyRestoreWindow(m *blockmap.Map, w windowSnapshot) error {
	for addr := range w.junctions {
		m.SetSplitter(addr, true)
	}
	for _, r := range w.runs {
		if err := m.Assign(r.Start, r.Length, r.Type); err != nil {
			return err
		}
		if r.Collapsed {
			if err := m.SetCollapsed(r.Start, r.Length, true); err != nil {
				return err
			}
		}
	}
	for addr, had := range w.junctions {
		m.SetSplitter(addr, had)
	}
	return nil
}

// analysisRestore carries the prior analyzer output for Analyze's inverse.
type analysisRestore struct {
	auto  map[Address]string
	xrefs *project.XrefIndex
}

// runAnalyzerFixedPoint runs the analyzer, reclassifies any address it
// could not decode as Undefined, and repeats until no further fallback
// addresses appear. Each iteration strictly shrinks the set of Code bytes
// (a byte reclassified Undefined is never reclassified Code by the
// analyzer itself), so the loop terminates.
func runAnalyzerFixedPoint(p *project.Project) {
	for {
		res := analyzer.Run(p)
		p.SetAnalysis(res.AutoLabels, res.Xrefs)
		if len(res.FallbackToUndefined) == 0 {
			return
		}
		for _, a := range res.FallbackToUndefined {
			_ = p.Blocks.Assign(a, 1, blockmap.Undefined)
		}
	}
}

func formatterFor(p *project.Project) formatter.Formatter { return formatter.For(p.Settings.Assembler) }

// Apply performs cmd against p and returns the command that exactly undoes
// it. It never touches the undo/redo stacks; callers that want stack
// bookkeeping use Do/Undo/Redo.
func Apply(p *project.Project, cmd Command) (Command, error) {
	switch cmd.Kind {
	case SetBlockType:
		if cmd.Length == 0 || cmd.Start < p.Origin || cmd.Start+cmd.Length > p.End() {
			return Command{}, blockmap.ErrInvalidRange
		}
		snap := snapshotWindow(p.Blocks, cmd.Start, cmd.Start+cmd.Length)
		if err := p.Blocks.Assign(cmd.Start, cmd.Length, cmd.BlockType); err != nil {
			return Command{}, err
		}
		return Command{Kind: restoreWindow, window: snap}, nil

	case restoreWindow:
		w := cmd.window
		if len(w.runs) == 0 {
			return Command{}, ErrNotApplicable
		}
		start, end := w.runs[0].Start, w.runs[len(w.runs)-1].End()
		before := snapshotWindow(p.Blocks, start, end)
		if err := applyRestoreWindow(p.Blocks, w); err != nil {
			return Command{}, err
		}
		return Command{Kind: restoreWindow, window: before}, nil

	case ToggleSplitter:
		if !p.InRange(cmd.Addr) {
			return Command{}, ErrUnknownAddress
		}
		if p.Blocks.HasSplitterBefore(cmd.Addr) {
			// Removing a splitter may trigger an immediate merge; capture
			// the pre-toggle two-run window so undo can restore it exactly
			// rather than relying on re-adding the splitter alone.
			left, leftOK := p.Blocks.RunAt(cmd.Addr - 1)
			right, rightOK := p.Blocks.RunAt(cmd.Addr)
			if !leftOK || !rightOK {
				return Command{}, ErrNotApplicable
			}
			snap := snapshotWindow(p.Blocks, left.Start, right.End())
			snap.junctions[cmd.Addr] = true
			p.Blocks.ToggleSplitter(cmd.Addr)
			return Command{Kind: restoreWindow, window: snap}, nil
		}
		p.Blocks.ToggleSplitter(cmd.Addr)
		return Command{Kind: ToggleSplitter, Addr: cmd.Addr}, nil

	case SetLabel:
		if !p.InRange(cmd.Addr) {
			return Command{}, ErrUnknownAddress
		}
		name := cmd.Name
		if name != "" {
			validated, err := formatterFor(p).ValidateLabel(name)
			if err != nil {
				return Command{}, err
			}
			name = validated
		}
		prev, _, err := p.Labels.SetUser(cmd.Addr, name)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: SetLabel, Addr: cmd.Addr, Name: prev}, nil

	case SetSideComment:
		if !p.InRange(cmd.Addr) {
			return Command{}, ErrUnknownAddress
		}
		prev, _ := p.Comments.SetSide(cmd.Addr, cmd.Text)
		return Command{Kind: SetSideComment, Addr: cmd.Addr, Text: prev}, nil

	case SetLineComment:
		if !p.InRange(cmd.Addr) {
			return Command{}, ErrUnknownAddress
		}
		prev, _ := p.Comments.SetLine(cmd.Addr, cmd.Text)
		return Command{Kind: SetLineComment, Addr: cmd.Addr, Text: prev}, nil

	case SetOperandFormat:
		if !p.InRange(cmd.Addr) {
			return Command{}, ErrUnknownAddress
		}
		prev, _ := p.Operands.Set(cmd.Addr, cmd.Format)
		return Command{Kind: SetOperandFormat, Addr: cmd.Addr, Format: prev}, nil

	case ToggleBookmark:
		if !p.InRange(cmd.Addr) {
			return Command{}, ErrUnknownAddress
		}
		p.Bookmarks.Toggle(cmd.Addr)
		return Command{Kind: ToggleBookmark, Addr: cmd.Addr}, nil

	case Analyze:
		prevAuto, prevXrefs := p.Labels.AllAuto(), p.Xrefs
		if cmd.analysis != nil {
			// Replaying a previously-recorded inverse: restore the carried
			// state directly rather than running the analyzer forward again.
			p.SetAnalysis(cmd.analysis.auto, cmd.analysis.xrefs)
		} else {
			runAnalyzerFixedPoint(p)
		}
		return Command{Kind: Analyze, analysis: &analysisRestore{auto: prevAuto, xrefs: prevXrefs}}, nil

	case batchKind:
		applied := make([]Command, 0, len(cmd.batch))
		for _, sub := range cmd.batch {
			inv, err := Apply(p, sub)
			if err != nil {
				for i := len(applied) - 1; i >= 0; i-- {
					_, _ = Apply(p, applied[i])
				}
				return Command{}, err
			}
			applied = append(applied, inv)
		}
		reverseCommands(applied)
		return Command{Kind: batchKind, batch: applied}, nil

	default:
		return Command{}, ErrNotApplicable
	}
}

func reverseCommands(cs []Command) {
	for i, j := 0, len(cs)-1; i < j; i, j = i+1, j-1 {
		cs[i], cs[j] = cs[j], cs[i]
	}
}

// History owns the undo/redo stacks for one project. Not safe for
// concurrent use; the serial command-queue model of spec.md §5 owns
// serialization externally.
type History struct {
	undo []Command
	redo []Command
	Log  *log.Logger
}

func (h *History) logger() *log.Logger {
	if h.Log != nil {
		return h.Log
	}
	return log.Default()
}

// Do applies cmd, and on success pushes its inverse onto the undo stack
// and clears the redo stack (a fresh command invalidates any redo history).
func (h *History) Do(p *project.Project, cmd Command) error {
	inverse, err := Apply(p, cmd)
	if err != nil {
		h.logger().Warn("command rejected", "kind", cmd.Kind, "err", err)
		return err
	}
	p.Touch()
	h.undo = append(h.undo, inverse)
	h.redo = nil
	h.logger().Info("command applied", "kind", cmd.Kind)
	return nil
}

// Undo applies the most recently pushed inverse, moving its own inverse to
// the redo stack. Returns false if there is nothing to undo.
func (h *History) Undo(p *project.Project) (bool, error) {
	if len(h.undo) == 0 {
		return false, nil
	}
	top := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	inverse, err := Apply(p, top)
	if err != nil {
		return false, err
	}
	p.Touch()
	h.redo = append(h.redo, inverse)
	h.logger().Info("command undone", "kind", top.Kind)
	return true, nil
}

// Redo re-applies the most recently undone command. Returns false if there
// is nothing to redo.
func (h *History) Redo(p *project.Project) (bool, error) {
	if len(h.redo) == 0 {
		return false, nil
	}
	top := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	inverse, err := Apply(p, top)
	if err != nil {
		return false, err
	}
	p.Touch()
	h.undo = append(h.undo, inverse)
	h.logger().Info("command redone", "kind", top.Kind)
	return true, nil
}

// Batch applies cmds in order; if any fails, every already-applied command
// in the batch is rolled back via its inverse and the batch leaves p
// unchanged (and pushes nothing to the undo stack).
func (h *History) Batch(p *project.Project, cmds []Command) error {
	inverses := make([]Command, 0, len(cmds))
	for _, c := range cmds {
		inv, err := Apply(p, c)
		if err != nil {
			for i := len(inverses) - 1; i >= 0; i-- {
				_, _ = Apply(p, inverses[i])
			}
			h.logger().Warn("batch rolled back", "failed_kind", c.Kind, "err", err)
			return err
		}
		inverses = append(inverses, inv)
	}
	p.Touch()
	reverseCommands(inverses)
	h.undo = append(h.undo, Command{Kind: batchKind, batch: inverses})
	h.redo = nil
	h.logger().Info("batch applied", "count", len(cmds))
	return nil
}
