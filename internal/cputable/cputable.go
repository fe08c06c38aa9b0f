// Package cputable is the byte-indexed opcode table for the NMOS 6502/6510
// CPU used by Commodore 8-bit machines, including the undocumented
// ("illegal") opcodes that commonly appear in real C64 binaries.
package cputable

import "fmt"

// AddressingMode enumerates the 6502 addressing modes.
type AddressingMode int

const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX
	IndirectY
	Relative
)

// Entry describes one byte encoding of the instruction set.
type Entry struct {
	Opcode    byte
	Mnemonic  string
	Mode      AddressingMode
	Length    uint8 // instruction length in bytes, including the opcode byte
	IsBranch  bool  // conditional relative branch
	IsJump    bool  // unconditional transfer of control (JMP)
	IsCall    bool  // subroutine call (JSR)
	IsReturn  bool  // RTS/RTI
	IsIllegal bool  // undocumented opcode
	IsBreak   bool  // BRK
}

// FallsThrough reports whether control continues to the next address after
// this instruction executes, absent a taken branch. BRK never falls
// through regardless of the brk-single-byte setting: that setting only
// changes how many bytes BRK consumes (see Length below), not whether
// execution continues past it.
func (e Entry) FallsThrough() bool {
	if e.IsBreak || e.IsJump || e.IsReturn {
		return false
	}
	return true
}

// table is populated by init from opcodes.
var table [256]*Entry

// Lookup returns the entry for a byte value and whether the table has one.
// No settings are applied here: illegal opcodes are returned like any other
// (callers mask them out themselves), and BRK's effective length comes from
// EffectiveLength.
func Lookup(b byte) (Entry, bool) {
	e := table[b]
	if e == nil {
		return Entry{}, false
	}
	return *e, true
}

// EffectiveLength returns the instruction length for e, honoring the
// brk-single-byte setting (§6). All other opcodes are unaffected.
func EffectiveLength(e Entry, brkSingleByte bool) uint8 {
	if e.IsBreak {
		if brkSingleByte {
			return 1
		}
		return 2
	}
	return e.Length
}

// Decode returns the entry for program[offset], and the effective length
// of the instruction given settings. It is the sole decode entry point
// used by the analyzer and pipeline so the brk-single-byte and
// use-illegal-opcodes rules are applied in exactly one place.
func Decode(program []byte, offset int, useIllegal, brkSingleByte bool) (Entry, int, error) {
	if offset < 0 || offset >= len(program) {
		return Entry{}, 0, fmt.Errorf("cputable: offset %d out of range [0,%d)", offset, len(program))
	}
	b := program[offset]
	e := table[b]
	if e == nil {
		return Entry{}, 0, fmt.Errorf("cputable: no entry for opcode %#02x", b)
	}
	if e.IsIllegal && !useIllegal {
		return Entry{}, 0, fmt.Errorf("cputable: opcode %#02x (%s) is illegal and illegal decoding is disabled", b, e.Mnemonic)
	}
	length := int(EffectiveLength(*e, brkSingleByte))
	if offset+length > len(program) {
		return *e, 0, fmt.Errorf("cputable: instruction at %d of length %d crosses end of image", offset, length)
	}
	return *e, length, nil
}

func init() {
	for _, e := range entries {
		e := e
		table[e.Opcode] = &e
	}
}

// entries is the full 256-byte NMOS 6502 table, documented and
// undocumented opcodes alike. Entries absent here decode as true JAM/KIL
// (processor lock-up) and are reported as undecodable illegal opcodes.
var entries = []Entry{
	// ADC
	{Opcode: 0x69, Mnemonic: "ADC", Mode: Immediate, Length: 2},
	{Opcode: 0x65, Mnemonic: "ADC", Mode: ZeroPage, Length: 2},
	{Opcode: 0x75, Mnemonic: "ADC", Mode: ZeroPageX, Length: 2},
	{Opcode: 0x6D, Mnemonic: "ADC", Mode: Absolute, Length: 3},
	{Opcode: 0x7D, Mnemonic: "ADC", Mode: AbsoluteX, Length: 3},
	{Opcode: 0x79, Mnemonic: "ADC", Mode: AbsoluteY, Length: 3},
	{Opcode: 0x61, Mnemonic: "ADC", Mode: IndirectX, Length: 2},
	{Opcode: 0x71, Mnemonic: "ADC", Mode: IndirectY, Length: 2},

	// AND
	{Opcode: 0x29, Mnemonic: "AND", Mode: Immediate, Length: 2},
	{Opcode: 0x25, Mnemonic: "AND", Mode: ZeroPage, Length: 2},
	{Opcode: 0x35, Mnemonic: "AND", Mode: ZeroPageX, Length: 2},
	{Opcode: 0x2D, Mnemonic: "AND", Mode: Absolute, Length: 3},
	{Opcode: 0x3D, Mnemonic: "AND", Mode: AbsoluteX, Length: 3},
	{Opcode: 0x39, Mnemonic: "AND", Mode: AbsoluteY, Length: 3},
	{Opcode: 0x21, Mnemonic: "AND", Mode: IndirectX, Length: 2},
	{Opcode: 0x31, Mnemonic: "AND", Mode: IndirectY, Length: 2},

	// ASL
	{Opcode: 0x0A, Mnemonic: "ASL", Mode: Accumulator, Length: 1},
	{Opcode: 0x06, Mnemonic: "ASL", Mode: ZeroPage, Length: 2},
	{Opcode: 0x16, Mnemonic: "ASL", Mode: ZeroPageX, Length: 2},
	{Opcode: 0x0E, Mnemonic: "ASL", Mode: Absolute, Length: 3},
	{Opcode: 0x1E, Mnemonic: "ASL", Mode: AbsoluteX, Length: 3},

	// branches (relative)
	{Opcode: 0x90, Mnemonic: "BCC", Mode: Relative, Length: 2, IsBranch: true},
	{Opcode: 0xB0, Mnemonic: "BCS", Mode: Relative, Length: 2, IsBranch: true},
	{Opcode: 0xF0, Mnemonic: "BEQ", Mode: Relative, Length: 2, IsBranch: true},
	{Opcode: 0x30, Mnemonic: "BMI", Mode: Relative, Length: 2, IsBranch: true},
	{Opcode: 0xD0, Mnemonic: "BNE", Mode: Relative, Length: 2, IsBranch: true},
	{Opcode: 0x10, Mnemonic: "BPL", Mode: Relative, Length: 2, IsBranch: true},
	{Opcode: 0x50, Mnemonic: "BVC", Mode: Relative, Length: 2, IsBranch: true},
	{Opcode: 0x70, Mnemonic: "BVS", Mode: Relative, Length: 2, IsBranch: true},

	{Opcode: 0x24, Mnemonic: "BIT", Mode: ZeroPage, Length: 2},
	{Opcode: 0x2C, Mnemonic: "BIT", Mode: Absolute, Length: 3},

	{Opcode: 0x00, Mnemonic: "BRK", Mode: Implied, Length: 2, IsBreak: true},

	{Opcode: 0x18, Mnemonic: "CLC", Mode: Implied, Length: 1},
	{Opcode: 0xD8, Mnemonic: "CLD", Mode: Implied, Length: 1},
	{Opcode: 0x58, Mnemonic: "CLI", Mode: Implied, Length: 1},
	{Opcode: 0xB8, Mnemonic: "CLV", Mode: Implied, Length: 1},

	{Opcode: 0xC9, Mnemonic: "CMP", Mode: Immediate, Length: 2},
	{Opcode: 0xC5, Mnemonic: "CMP", Mode: ZeroPage, Length: 2},
	{Opcode: 0xD5, Mnemonic: "CMP", Mode: ZeroPageX, Length: 2},
	{Opcode: 0xCD, Mnemonic: "CMP", Mode: Absolute, Length: 3},
	{Opcode: 0xDD, Mnemonic: "CMP", Mode: AbsoluteX, Length: 3},
	{Opcode: 0xD9, Mnemonic: "CMP", Mode: AbsoluteY, Length: 3},
	{Opcode: 0xC1, Mnemonic: "CMP", Mode: IndirectX, Length: 2},
	{Opcode: 0xD1, Mnemonic: "CMP", Mode: IndirectY, Length: 2},

	{Opcode: 0xE0, Mnemonic: "CPX", Mode: Immediate, Length: 2},
	{Opcode: 0xE4, Mnemonic: "CPX", Mode: ZeroPage, Length: 2},
	{Opcode: 0xEC, Mnemonic: "CPX", Mode: Absolute, Length: 3},

	{Opcode: 0xC0, Mnemonic: "CPY", Mode: Immediate, Length: 2},
	{Opcode: 0xC4, Mnemonic: "CPY", Mode: ZeroPage, Length: 2},
	{Opcode: 0xCC, Mnemonic: "CPY", Mode: Absolute, Length: 3},

	{Opcode: 0xC6, Mnemonic: "DEC", Mode: ZeroPage, Length: 2},
	{Opcode: 0xD6, Mnemonic: "DEC", Mode: ZeroPageX, Length: 2},
	{Opcode: 0xCE, Mnemonic: "DEC", Mode: Absolute, Length: 3},
	{Opcode: 0xDE, Mnemonic: "DEC", Mode: AbsoluteX, Length: 3},

	{Opcode: 0xCA, Mnemonic: "DEX", Mode: Implied, Length: 1},
	{Opcode: 0x88, Mnemonic: "DEY", Mode: Implied, Length: 1},

	{Opcode: 0x49, Mnemonic: "EOR", Mode: Immediate, Length: 2},
	{Opcode: 0x45, Mnemonic: "EOR", Mode: ZeroPage, Length: 2},
	{Opcode: 0x55, Mnemonic: "EOR", Mode: ZeroPageX, Length: 2},
	{Opcode: 0x4D, Mnemonic: "EOR", Mode: Absolute, Length: 3},
	{Opcode: 0x5D, Mnemonic: "EOR", Mode: AbsoluteX, Length: 3},
	{Opcode: 0x59, Mnemonic: "EOR", Mode: AbsoluteY, Length: 3},
	{Opcode: 0x41, Mnemonic: "EOR", Mode: IndirectX, Length: 2},
	{Opcode: 0x51, Mnemonic: "EOR", Mode: IndirectY, Length: 2},

	{Opcode: 0xE6, Mnemonic: "INC", Mode: ZeroPage, Length: 2},
	{Opcode: 0xF6, Mnemonic: "INC", Mode: ZeroPageX, Length: 2},
	{Opcode: 0xEE, Mnemonic: "INC", Mode: Absolute, Length: 3},
	{Opcode: 0xFE, Mnemonic: "INC", Mode: AbsoluteX, Length: 3},

	{Opcode: 0xE8, Mnemonic: "INX", Mode: Implied, Length: 1},
	{Opcode: 0xC8, Mnemonic: "INY", Mode: Implied, Length: 1},

	{Opcode: 0x4C, Mnemonic: "JMP", Mode: Absolute, Length: 3, IsJump: true},
	{Opcode: 0x6C, Mnemonic: "JMP", Mode: Indirect, Length: 3, IsJump: true},

	{Opcode: 0x20, Mnemonic: "JSR", Mode: Absolute, Length: 3, IsCall: true},

	{Opcode: 0xA9, Mnemonic: "LDA", Mode: Immediate, Length: 2},
	{Opcode: 0xA5, Mnemonic: "LDA", Mode: ZeroPage, Length: 2},
	{Opcode: 0xB5, Mnemonic: "LDA", Mode: ZeroPageX, Length: 2},
	{Opcode: 0xAD, Mnemonic: "LDA", Mode: Absolute, Length: 3},
	{Opcode: 0xBD, Mnemonic: "LDA", Mode: AbsoluteX, Length: 3},
	{Opcode: 0xB9, Mnemonic: "LDA", Mode: AbsoluteY, Length: 3},
	{Opcode: 0xA1, Mnemonic: "LDA", Mode: IndirectX, Length: 2},
	{Opcode: 0xB1, Mnemonic: "LDA", Mode: IndirectY, Length: 2},

	{Opcode: 0xA2, Mnemonic: "LDX", Mode: Immediate, Length: 2},
	{Opcode: 0xA6, Mnemonic: "LDX", Mode: ZeroPage, Length: 2},
	{Opcode: 0xB6, Mnemonic: "LDX", Mode: ZeroPageY, Length: 2},
	{Opcode: 0xAE, Mnemonic: "LDX", Mode: Absolute, Length: 3},
	{Opcode: 0xBE, Mnemonic: "LDX", Mode: AbsoluteY, Length: 3},

	{Opcode: 0xA0, Mnemonic: "LDY", Mode: Immediate, Length: 2},
	{Opcode: 0xA4, Mnemonic: "LDY", Mode: ZeroPage, Length: 2},
	{Opcode: 0xB4, Mnemonic: "LDY", Mode: ZeroPageX, Length: 2},
	{Opcode: 0xAC, Mnemonic: "LDY", Mode: Absolute, Length: 3},
	{Opcode: 0xBC, Mnemonic: "LDY", Mode: AbsoluteX, Length: 3},

	{Opcode: 0x4A, Mnemonic: "LSR", Mode: Accumulator, Length: 1},
	{Opcode: 0x46, Mnemonic: "LSR", Mode: ZeroPage, Length: 2},
	{Opcode: 0x56, Mnemonic: "LSR", Mode: ZeroPageX, Length: 2},
	{Opcode: 0x4E, Mnemonic: "LSR", Mode: Absolute, Length: 3},
	{Opcode: 0x5E, Mnemonic: "LSR", Mode: AbsoluteX, Length: 3},

	{Opcode: 0xEA, Mnemonic: "NOP", Mode: Implied, Length: 1},

	{Opcode: 0x09, Mnemonic: "ORA", Mode: Immediate, Length: 2},
	{Opcode: 0x05, Mnemonic: "ORA", Mode: ZeroPage, Length: 2},
	{Opcode: 0x15, Mnemonic: "ORA", Mode: ZeroPageX, Length: 2},
	{Opcode: 0x0D, Mnemonic: "ORA", Mode: Absolute, Length: 3},
	{Opcode: 0x1D, Mnemonic: "ORA", Mode: AbsoluteX, Length: 3},
	{Opcode: 0x19, Mnemonic: "ORA", Mode: AbsoluteY, Length: 3},
	{Opcode: 0x01, Mnemonic: "ORA", Mode: IndirectX, Length: 2},
	{Opcode: 0x11, Mnemonic: "ORA", Mode: IndirectY, Length: 2},

	{Opcode: 0x48, Mnemonic: "PHA", Mode: Implied, Length: 1},
	{Opcode: 0x08, Mnemonic: "PHP", Mode: Implied, Length: 1},
	{Opcode: 0x68, Mnemonic: "PLA", Mode: Implied, Length: 1},
	{Opcode: 0x28, Mnemonic: "PLP", Mode: Implied, Length: 1},

	{Opcode: 0x2A, Mnemonic: "ROL", Mode: Accumulator, Length: 1},
	{Opcode: 0x26, Mnemonic: "ROL", Mode: ZeroPage, Length: 2},
	{Opcode: 0x36, Mnemonic: "ROL", Mode: ZeroPageX, Length: 2},
	{Opcode: 0x2E, Mnemonic: "ROL", Mode: Absolute, Length: 3},
	{Opcode: 0x3E, Mnemonic: "ROL", Mode: AbsoluteX, Length: 3},

	{Opcode: 0x6A, Mnemonic: "ROR", Mode: Accumulator, Length: 1},
	{Opcode: 0x66, Mnemonic: "ROR", Mode: ZeroPage, Length: 2},
	{Opcode: 0x76, Mnemonic: "ROR", Mode: ZeroPageX, Length: 2},
	{Opcode: 0x6E, Mnemonic: "ROR", Mode: Absolute, Length: 3},
	{Opcode: 0x7E, Mnemonic: "ROR", Mode: AbsoluteX, Length: 3},

	{Opcode: 0x40, Mnemonic: "RTI", Mode: Implied, Length: 1, IsReturn: true},
	{Opcode: 0x60, Mnemonic: "RTS", Mode: Implied, Length: 1, IsReturn: true},

	{Opcode: 0xE9, Mnemonic: "SBC", Mode: Immediate, Length: 2},
	{Opcode: 0xE5, Mnemonic: "SBC", Mode: ZeroPage, Length: 2},
	{Opcode: 0xF5, Mnemonic: "SBC", Mode: ZeroPageX, Length: 2},
	{Opcode: 0xED, Mnemonic: "SBC", Mode: Absolute, Length: 3},
	{Opcode: 0xFD, Mnemonic: "SBC", Mode: AbsoluteX, Length: 3},
	{Opcode: 0xF9, Mnemonic: "SBC", Mode: AbsoluteY, Length: 3},
	{Opcode: 0xE1, Mnemonic: "SBC", Mode: IndirectX, Length: 2},
	{Opcode: 0xF1, Mnemonic: "SBC", Mode: IndirectY, Length: 2},

	{Opcode: 0x38, Mnemonic: "SEC", Mode: Implied, Length: 1},
	{Opcode: 0xF8, Mnemonic: "SED", Mode: Implied, Length: 1},
	{Opcode: 0x78, Mnemonic: "SEI", Mode: Implied, Length: 1},

	{Opcode: 0x85, Mnemonic: "STA", Mode: ZeroPage, Length: 2},
	{Opcode: 0x95, Mnemonic: "STA", Mode: ZeroPageX, Length: 2},
	{Opcode: 0x8D, Mnemonic: "STA", Mode: Absolute, Length: 3},
	{Opcode: 0x9D, Mnemonic: "STA", Mode: AbsoluteX, Length: 3},
	{Opcode: 0x99, Mnemonic: "STA", Mode: AbsoluteY, Length: 3},
	{Opcode: 0x81, Mnemonic: "STA", Mode: IndirectX, Length: 2},
	{Opcode: 0x91, Mnemonic: "STA", Mode: IndirectY, Length: 2},

	{Opcode: 0x86, Mnemonic: "STX", Mode: ZeroPage, Length: 2},
	{Opcode: 0x96, Mnemonic: "STX", Mode: ZeroPageY, Length: 2},
	{Opcode: 0x8E, Mnemonic: "STX", Mode: Absolute, Length: 3},

	{Opcode: 0x84, Mnemonic: "STY", Mode: ZeroPage, Length: 2},
	{Opcode: 0x94, Mnemonic: "STY", Mode: ZeroPageX, Length: 2},
	{Opcode: 0x8C, Mnemonic: "STY", Mode: Absolute, Length: 3},

	{Opcode: 0xAA, Mnemonic: "TAX", Mode: Implied, Length: 1},
	{Opcode: 0xA8, Mnemonic: "TAY", Mode: Implied, Length: 1},
	{Opcode: 0xBA, Mnemonic: "TSX", Mode: Implied, Length: 1},
	{Opcode: 0x8A, Mnemonic: "TXA", Mode: Implied, Length: 1},
	{Opcode: 0x9A, Mnemonic: "TXS", Mode: Implied, Length: 1},
	{Opcode: 0x98, Mnemonic: "TYA", Mode: Implied, Length: 1},

	// --- undocumented/illegal opcodes ---
	{Opcode: 0x4B, Mnemonic: "ALR", Mode: Immediate, Length: 2, IsIllegal: true},
	{Opcode: 0x0B, Mnemonic: "ANC", Mode: Immediate, Length: 2, IsIllegal: true},
	{Opcode: 0x2B, Mnemonic: "ANC", Mode: Immediate, Length: 2, IsIllegal: true},
	{Opcode: 0x8B, Mnemonic: "ANE", Mode: Immediate, Length: 2, IsIllegal: true},
	{Opcode: 0x6B, Mnemonic: "ARR", Mode: Immediate, Length: 2, IsIllegal: true},
	{Opcode: 0xCB, Mnemonic: "SBX", Mode: Immediate, Length: 2, IsIllegal: true},
	{Opcode: 0xEB, Mnemonic: "SBC", Mode: Immediate, Length: 2, IsIllegal: true},

	{Opcode: 0x93, Mnemonic: "SHA", Mode: IndirectY, Length: 2, IsIllegal: true},
	{Opcode: 0x9F, Mnemonic: "SHA", Mode: AbsoluteY, Length: 3, IsIllegal: true},
	{Opcode: 0x9E, Mnemonic: "SHX", Mode: AbsoluteY, Length: 3, IsIllegal: true},
	{Opcode: 0x9C, Mnemonic: "SHY", Mode: AbsoluteX, Length: 3, IsIllegal: true},
	{Opcode: 0x9B, Mnemonic: "TAS", Mode: AbsoluteY, Length: 3, IsIllegal: true},
	{Opcode: 0xBB, Mnemonic: "LAS", Mode: AbsoluteY, Length: 3, IsIllegal: true},

	{Opcode: 0xC7, Mnemonic: "DCP", Mode: ZeroPage, Length: 2, IsIllegal: true},
	{Opcode: 0xD7, Mnemonic: "DCP", Mode: ZeroPageX, Length: 2, IsIllegal: true},
	{Opcode: 0xCF, Mnemonic: "DCP", Mode: Absolute, Length: 3, IsIllegal: true},
	{Opcode: 0xDF, Mnemonic: "DCP", Mode: AbsoluteX, Length: 3, IsIllegal: true},
	{Opcode: 0xDB, Mnemonic: "DCP", Mode: AbsoluteY, Length: 3, IsIllegal: true},
	{Opcode: 0xC3, Mnemonic: "DCP", Mode: IndirectX, Length: 2, IsIllegal: true},
	{Opcode: 0xD3, Mnemonic: "DCP", Mode: IndirectY, Length: 2, IsIllegal: true},

	{Opcode: 0xE7, Mnemonic: "ISC", Mode: ZeroPage, Length: 2, IsIllegal: true},
	{Opcode: 0xF7, Mnemonic: "ISC", Mode: ZeroPageX, Length: 2, IsIllegal: true},
	{Opcode: 0xEF, Mnemonic: "ISC", Mode: Absolute, Length: 3, IsIllegal: true},
	{Opcode: 0xFF, Mnemonic: "ISC", Mode: AbsoluteX, Length: 3, IsIllegal: true},
	{Opcode: 0xFB, Mnemonic: "ISC", Mode: AbsoluteY, Length: 3, IsIllegal: true},
	{Opcode: 0xE3, Mnemonic: "ISC", Mode: IndirectX, Length: 2, IsIllegal: true},
	{Opcode: 0xF3, Mnemonic: "ISC", Mode: IndirectY, Length: 2, IsIllegal: true},

	{Opcode: 0xA7, Mnemonic: "LAX", Mode: ZeroPage, Length: 2, IsIllegal: true},
	{Opcode: 0xB7, Mnemonic: "LAX", Mode: ZeroPageY, Length: 2, IsIllegal: true},
	{Opcode: 0xAF, Mnemonic: "LAX", Mode: Absolute, Length: 3, IsIllegal: true},
	{Opcode: 0xBF, Mnemonic: "LAX", Mode: AbsoluteY, Length: 3, IsIllegal: true},
	{Opcode: 0xA3, Mnemonic: "LAX", Mode: IndirectX, Length: 2, IsIllegal: true},
	{Opcode: 0xB3, Mnemonic: "LAX", Mode: IndirectY, Length: 2, IsIllegal: true},
	{Opcode: 0xAB, Mnemonic: "LAX", Mode: Immediate, Length: 2, IsIllegal: true},

	{Opcode: 0x27, Mnemonic: "RLA", Mode: ZeroPage, Length: 2, IsIllegal: true},
	{Opcode: 0x37, Mnemonic: "RLA", Mode: ZeroPageX, Length: 2, IsIllegal: true},
	{Opcode: 0x2F, Mnemonic: "RLA", Mode: Absolute, Length: 3, IsIllegal: true},
	{Opcode: 0x3F, Mnemonic: "RLA", Mode: AbsoluteX, Length: 3, IsIllegal: true},
	{Opcode: 0x3B, Mnemonic: "RLA", Mode: AbsoluteY, Length: 3, IsIllegal: true},
	{Opcode: 0x23, Mnemonic: "RLA", Mode: IndirectX, Length: 2, IsIllegal: true},
	{Opcode: 0x33, Mnemonic: "RLA", Mode: IndirectY, Length: 2, IsIllegal: true},

	{Opcode: 0x67, Mnemonic: "RRA", Mode: ZeroPage, Length: 2, IsIllegal: true},
	{Opcode: 0x77, Mnemonic: "RRA", Mode: ZeroPageX, Length: 2, IsIllegal: true},
	{Opcode: 0x6F, Mnemonic: "RRA", Mode: Absolute, Length: 3, IsIllegal: true},
	{Opcode: 0x7F, Mnemonic: "RRA", Mode: AbsoluteX, Length: 3, IsIllegal: true},
	{Opcode: 0x7B, Mnemonic: "RRA", Mode: AbsoluteY, Length: 3, IsIllegal: true},
	{Opcode: 0x63, Mnemonic: "RRA", Mode: IndirectX, Length: 2, IsIllegal: true},
	{Opcode: 0x73, Mnemonic: "RRA", Mode: IndirectY, Length: 2, IsIllegal: true},

	{Opcode: 0x87, Mnemonic: "SAX", Mode: ZeroPage, Length: 2, IsIllegal: true},
	{Opcode: 0x97, Mnemonic: "SAX", Mode: ZeroPageY, Length: 2, IsIllegal: true},
	{Opcode: 0x8F, Mnemonic: "SAX", Mode: Absolute, Length: 3, IsIllegal: true},
	{Opcode: 0x83, Mnemonic: "SAX", Mode: IndirectX, Length: 2, IsIllegal: true},

	{Opcode: 0x07, Mnemonic: "SLO", Mode: ZeroPage, Length: 2, IsIllegal: true},
	{Opcode: 0x17, Mnemonic: "SLO", Mode: ZeroPageX, Length: 2, IsIllegal: true},
	{Opcode: 0x0F, Mnemonic: "SLO", Mode: Absolute, Length: 3, IsIllegal: true},
	{Opcode: 0x1F, Mnemonic: "SLO", Mode: AbsoluteX, Length: 3, IsIllegal: true},
	{Opcode: 0x1B, Mnemonic: "SLO", Mode: AbsoluteY, Length: 3, IsIllegal: true},
	{Opcode: 0x03, Mnemonic: "SLO", Mode: IndirectX, Length: 2, IsIllegal: true},
	{Opcode: 0x13, Mnemonic: "SLO", Mode: IndirectY, Length: 2, IsIllegal: true},

	{Opcode: 0x47, Mnemonic: "SRE", Mode: ZeroPage, Length: 2, IsIllegal: true},
	{Opcode: 0x57, Mnemonic: "SRE", Mode: ZeroPageX, Length: 2, IsIllegal: true},
	{Opcode: 0x4F, Mnemonic: "SRE", Mode: Absolute, Length: 3, IsIllegal: true},
	{Opcode: 0x5F, Mnemonic: "SRE", Mode: AbsoluteX, Length: 3, IsIllegal: true},
	{Opcode: 0x5B, Mnemonic: "SRE", Mode: AbsoluteY, Length: 3, IsIllegal: true},
	{Opcode: 0x43, Mnemonic: "SRE", Mode: IndirectX, Length: 2, IsIllegal: true},
	{Opcode: 0x53, Mnemonic: "SRE", Mode: IndirectY, Length: 2, IsIllegal: true},

	// undocumented NOPs (various widths, no side effects worth modeling)
	{Opcode: 0x1A, Mnemonic: "NOP", Mode: Implied, Length: 1, IsIllegal: true},
	{Opcode: 0x3A, Mnemonic: "NOP", Mode: Implied, Length: 1, IsIllegal: true},
	{Opcode: 0x5A, Mnemonic: "NOP", Mode: Implied, Length: 1, IsIllegal: true},
	{Opcode: 0x7A, Mnemonic: "NOP", Mode: Implied, Length: 1, IsIllegal: true},
	{Opcode: 0xDA, Mnemonic: "NOP", Mode: Implied, Length: 1, IsIllegal: true},
	{Opcode: 0xFA, Mnemonic: "NOP", Mode: Implied, Length: 1, IsIllegal: true},
	{Opcode: 0x80, Mnemonic: "NOP", Mode: Immediate, Length: 2, IsIllegal: true},
	{Opcode: 0x82, Mnemonic: "NOP", Mode: Immediate, Length: 2, IsIllegal: true},
	{Opcode: 0x89, Mnemonic: "NOP", Mode: Immediate, Length: 2, IsIllegal: true},
	{Opcode: 0xC2, Mnemonic: "NOP", Mode: Immediate, Length: 2, IsIllegal: true},
	{Opcode: 0xE2, Mnemonic: "NOP", Mode: Immediate, Length: 2, IsIllegal: true},
	{Opcode: 0x04, Mnemonic: "NOP", Mode: ZeroPage, Length: 2, IsIllegal: true},
	{Opcode: 0x44, Mnemonic: "NOP", Mode: ZeroPage, Length: 2, IsIllegal: true},
	{Opcode: 0x64, Mnemonic: "NOP", Mode: ZeroPage, Length: 2, IsIllegal: true},
	{Opcode: 0x14, Mnemonic: "NOP", Mode: ZeroPageX, Length: 2, IsIllegal: true},
	{Opcode: 0x34, Mnemonic: "NOP", Mode: ZeroPageX, Length: 2, IsIllegal: true},
	{Opcode: 0x54, Mnemonic: "NOP", Mode: ZeroPageX, Length: 2, IsIllegal: true},
	{Opcode: 0x74, Mnemonic: "NOP", Mode: ZeroPageX, Length: 2, IsIllegal: true},
	{Opcode: 0xD4, Mnemonic: "NOP", Mode: ZeroPageX, Length: 2, IsIllegal: true},
	{Opcode: 0xF4, Mnemonic: "NOP", Mode: ZeroPageX, Length: 2, IsIllegal: true},
	{Opcode: 0x0C, Mnemonic: "NOP", Mode: Absolute, Length: 3, IsIllegal: true},
	{Opcode: 0x1C, Mnemonic: "NOP", Mode: AbsoluteX, Length: 3, IsIllegal: true},
	{Opcode: 0x3C, Mnemonic: "NOP", Mode: AbsoluteX, Length: 3, IsIllegal: true},
	{Opcode: 0x5C, Mnemonic: "NOP", Mode: AbsoluteX, Length: 3, IsIllegal: true},
	{Opcode: 0x7C, Mnemonic: "NOP", Mode: AbsoluteX, Length: 3, IsIllegal: true},
	{Opcode: 0xDC, Mnemonic: "NOP", Mode: AbsoluteX, Length: 3, IsIllegal: true},
	{Opcode: 0xFC, Mnemonic: "NOP", Mode: AbsoluteX, Length: 3, IsIllegal: true},
}
