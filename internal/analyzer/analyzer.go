// Package analyzer implements the code-reachability walk, cross-reference
// construction and auto-labeling of spec.md §4.3. Run is a pure function
// of (block map, labels, settings): identical inputs always produce an
// identical Result (§4.3 consistency guarantee, property #8).
package analyzer

import (
	"sort"

	"github.com/dpeek64/retrodisasm/internal/blockmap"
	"github.com/dpeek64/retrodisasm/internal/cputable"
	"github.com/dpeek64/retrodisasm/internal/platform"
	"github.com/dpeek64/retrodisasm/internal/project"
)

type Address = project.Address

// Result is everything one analyzer pass produces.
type Result struct {
	AutoLabels map[Address]string
	Xrefs      *project.XrefIndex

	// FallbackToUndefined lists Code instruction starts that could not be
	// decoded under the active settings (e.g. an illegal opcode with
	// use-illegal-opcodes disabled, or an instruction that would cross the
	// end of the image). Per §7 these are fatal diagnostics: the command
	// layer must reclassify them Undefined and re-run the analyzer to reach
	// a fixed point; the analyzer itself never mutates state.
	FallbackToUndefined []Address
}

// Run performs one full analyzer pass over p.
func Run(p *project.Project) Result {
	s := p.Settings

	xrefPairs := make(map[Address][]project.Xref)
	addXref := func(target, referrer Address, rel project.Relation) {
		xrefPairs[target] = append(xrefPairs[target], project.Xref{Referrer: referrer, Relation: rel})
	}

	seeds := make(map[Address]bool)
	for _, r := range p.Blocks.AllRuns() {
		if r.Type == blockmap.Code {
			seeds[r.Start] = true
		}
	}

	// Data-pointer tables seed additional entry points when their resolved
	// target already carries the Code classification (spec.md §4.3: "by
	// user or by Address block pointing to it").
	reachableFromData := scanDataPointers(p, addXref)
	for a := range reachableFromData {
		if typ, ok := p.Blocks.Get(a); ok && typ == blockmap.Code {
			seeds[a] = true
		}
	}

	visited := make(map[Address]bool)
	reachable := make(map[Address]bool)
	var fallback []Address

	queue := sortedAddresses(seeds)
	for len(queue) > 0 {
		addr := queue[0]
		queue = queue[1:]
		if visited[addr] || !p.InRange(addr) {
			continue
		}
		typ, ok := p.Blocks.Get(addr)
		if !ok || typ != blockmap.Code {
			continue
		}
		visited[addr] = true

		rel := int(addr - p.Origin)
		entry, length, err := cputable.Decode(p.Bytes, rel, s.UseIllegalOpcodes, s.BrkSingleByte)
		if err != nil {
			fallback = append(fallback, addr)
			continue
		}
		reachable[addr] = true
		nextPC := addr + Address(length)

		switch {
		case entry.IsCall:
			target, _ := p.Word16(addr + 1)
			ta := Address(target)
			addXref(ta, addr, project.RelCall)
			queue = append(queue, ta, nextPC)

		case entry.IsJump && entry.Mode == cputable.Indirect:
			// The operand encodes the address of the 2-byte pointer, not
			// the eventual target. The analyzer never follows the
			// computed target, so the xref anchors at the pointer address
			// itself (DESIGN.md Open Question 4).
			pointerAddr, _ := p.Word16(addr + 1)
			addXref(Address(pointerAddr), addr, project.RelIndirect)

		case entry.IsJump:
			target, _ := p.Word16(addr + 1)
			ta := Address(target)
			addXref(ta, addr, project.RelJump)
			queue = append(queue, ta)

		case entry.IsBranch:
			operand, _ := p.ByteAt(addr + 1)
			target := branchTarget(addr, length, operand)
			addXref(target, addr, project.RelBranch)
			queue = append(queue, target, nextPC)

		default:
			if isAbsoluteFamily(entry.Mode) {
				target, _ := p.Word16(addr + 1)
				addXref(Address(target), addr, project.RelLoadStore)
			}
			if entry.FallsThrough() {
				queue = append(queue, nextPC)
			}
		}
	}

	// Reject branch/jump targets that never landed on a reachable
	// instruction start (teacher's "iloc" filter in findBranchTargets):
	// an operand that happens to decode to a branch opcode inside a data
	// stream should not manufacture a cross-reference into nowhere.
	for target, xs := range xrefPairs {
		var kept []project.Xref
		for _, x := range xs {
			if x.Relation == project.RelBranch || x.Relation == project.RelJump {
				if !reachable[target] {
					continue
				}
			}
			kept = append(kept, x)
		}
		if len(kept) == 0 {
			delete(xrefPairs, target)
		} else {
			xrefPairs[target] = kept
		}
	}

	for t := range xrefPairs {
		sort.Slice(xrefPairs[t], func(i, j int) bool {
			return xrefPairs[t][i].Referrer < xrefPairs[t][j].Referrer
		})
	}

	xrefs := project.NewXrefIndex(xrefPairs)
	auto := autoLabels(p, xrefs, reachable, s.GenerateAllLabels)

	return Result{AutoLabels: auto, Xrefs: xrefs, FallbackToUndefined: fallback}
}

func sortedAddresses(set map[Address]bool) []Address {
	out := make([]Address, 0, len(set))
	for a := range set {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func isAbsoluteFamily(m cputable.AddressingMode) bool {
	switch m {
	case cputable.Absolute, cputable.AbsoluteX, cputable.AbsoluteY:
		return true
	default:
		return false
	}
}

// branchTarget applies the standard 6502 relative-branch arithmetic: the
// offset is measured from the address immediately after the branch
// instruction.
func branchTarget(addr Address, length int, operand byte) Address {
	off := int(int8(operand))
	return addr + Address(length) + Address(off)
}

// scanDataPointers walks every AddressRef/LoHi*/HiLo* run, emitting xrefs
// for each synthesized 16-bit value and returning the set of synthesized
// targets of Address blocks and of the two split address-table types (used
// to seed the reachability walk; split word tables add xrefs only).
func scanDataPointers(p *project.Project, addXref func(target, referrer Address, rel project.Relation)) map[Address]bool {
	out := make(map[Address]bool)
	for _, r := range p.Blocks.AllRuns() {
		switch r.Type {
		case blockmap.AddressRef:
			for i := Address(0); i+1 < r.Length; i += 2 {
				entryAddr := r.Start + i
				v, err := p.Word16(entryAddr)
				if err != nil {
					continue
				}
				addXref(Address(v), entryAddr, project.RelLoadStore)
				out[Address(v)] = true
			}
		case blockmap.LoHiAddress, blockmap.HiLoAddress, blockmap.LoHiWord, blockmap.HiLoWord:
			scanSplitTable(p, r, addXref, out, r.Type == blockmap.LoHiAddress || r.Type == blockmap.HiLoAddress)
		}
	}
	return out
}

func scanSplitTable(p *project.Project, r blockmap.Run, addXref func(target, referrer Address, rel project.Relation), seedTargets map[Address]bool, isAddressVariant bool) {
	halfLen := r.Length / 2
	loFirst := r.Type == blockmap.LoHiAddress || r.Type == blockmap.LoHiWord
	for i := Address(0); i < halfLen; i++ {
		var loAddr, hiAddr Address
		if loFirst {
			loAddr = r.Start + i
			hiAddr = r.Start + halfLen + i
		} else {
			hiAddr = r.Start + i
			loAddr = r.Start + halfLen + i
		}
		lo, errLo := p.ByteAt(loAddr)
		hi, errHi := p.ByteAt(hiAddr)
		if errLo != nil || errHi != nil {
			continue
		}
		target := Address(uint16(lo) | uint16(hi)<<8)
		addXref(target, loAddr, project.RelSplitEntry)
		addXref(target, hiAddr, project.RelSplitEntry)
		if isAddressVariant {
			seedTargets[target] = true
		}
	}
}

// autoLabels synthesizes the deterministic Auto label set per the
// collision policy of spec.md §4.3 (subroutine > jump > branch > data),
// ties among xrefs for the same target broken by lowest referrer address
// (already the index's iteration order; see NewXrefIndex).
func autoLabels(p *project.Project, xrefs *project.XrefIndex, reachable map[Address]bool, generateAll bool) map[Address]string {
	out := make(map[Address]string)

	assign := func(a Address, name string) {
		if _, ok := p.Labels.At(a, project.User); ok {
			return
		}
		if _, ok := p.Labels.At(a, project.External); ok {
			return
		}
		out[a] = name
	}

	for _, target := range xrefs.Targets() {
		name := nameFor(p, target, xrefs.Of(target))
		assign(target, name)
	}

	if generateAll {
		for addr := range reachable {
			if _, already := out[addr]; already {
				continue
			}
			if len(xrefs.Of(addr)) > 0 {
				continue
			}
			assign(addr, formatLabel("l", addr))
		}
	}

	return out
}

func nameFor(p *project.Project, target Address, xs []project.Xref) string {
	has := func(r project.Relation) bool {
		for _, x := range xs {
			if x.Relation == r {
				return true
			}
		}
		return false
	}
	switch {
	case has(project.RelCall):
		return "sub_" + hex4(target)
	case has(project.RelJump):
		return formatLabel("j", target)
	case has(project.RelBranch):
		return formatLabel("b", target)
	case has(project.RelSplitEntry), has(project.RelIndirect):
		return formatLabel("p", target)
	case has(project.RelLoadStore):
		return formatLabel("a", target)
	default:
		return formatLabel("d", target)
	}
}

func formatLabel(prefix string, a Address) string { return prefix + hex4(a) }

func hex4(a Address) string {
	const digits = "0123456789ABCDEF"
	v := uint16(a)
	b := [4]byte{
		digits[(v>>12)&0xF],
		digits[(v>>8)&0xF],
		digits[(v>>4)&0xF],
		digits[v&0xF],
	}
	return string(b[:])
}

// ExternalLabelsFor re-exports platform.Table so callers that only import
// analyzer (e.g. tests) do not need a separate import for a one-line call.
func ExternalLabelsFor(p platform.ID) []platform.Label { return platform.Table(p) }
