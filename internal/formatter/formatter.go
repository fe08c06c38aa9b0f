// Package formatter implements the four dialect-specific token renderers
// behind the single Formatter contract of spec.md §4.5. The pipeline never
// branches on dialect; it only calls through this contract.
package formatter

import "fmt"

// Dialect identifies one of the four supported cross-assemblers.
type Dialect int

const (
	TASS64 Dialect = iota // 64tass
	ACME
	KickAssembler
	DASM
)

func (d Dialect) String() string {
	switch d {
	case TASS64:
		return "64tass"
	case ACME:
		return "ACME"
	case KickAssembler:
		return "KickAssembler"
	case DASM:
		return "DASM"
	default:
		return "unknown"
	}
}

// Encoding selects a text pragma pushed/popped around PETSCII/Screencode
// runs (§4.5 encoding_push/encoding_pop).
type Encoding int

const (
	EncodingPetscii Encoding = iota
	EncodingScreencode
)

// AddressingMode mirrors cputable.AddressingMode without importing it, so
// formatter stays a leaf package with no dependency on the CPU table.
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

// Operand is what the pipeline resolved an instruction's operand to: a raw
// numeric value, optionally a symbol name (User/Auto/External label or a
// branch-target synthetic name), and whether the caller wants the
// "force absolute width" hint applied (preserve-long-bytes, §4.4).
type Operand struct {
	Mode        AddressingMode
	Numeric     uint16
	Symbol      string // "" if none resolved
	WidthHint   bool   // true => absolute-width forced even though value fits zero page
	LoHiOf      string // set instead of Symbol for the lohi-of(label)/hilo-of(label) overrides
	HiLoOf      string
}

// ErrReservedWord is returned by ValidateLabel when name collides with a
// dialect keyword or reserved mnemonic.
type ErrReservedWord struct {
	Name    string
	Dialect Dialect
}

func (e *ErrReservedWord) Error() string {
	return fmt.Sprintf("formatter: %q is a reserved word in %s", e.Name, e.Dialect)
}

// Formatter is the contract the pipeline drives; one implementation per
// Dialect, selected once at project-settings boundaries (never per line,
// per spec.md §9 "no dynamic dispatch in hot loops" — the concrete type is
// fixed for the lifetime of a render pass).
type Formatter interface {
	Dialect() Dialect

	CommentPrefix() string

	DirectiveByte() string
	DirectiveWord() string
	DirectiveText(enc Encoding) string
	DirectiveInclude() string

	// EncodingPush/EncodingPop bracket a text run needing enc; some
	// dialects emit a pragma line, others fold the encoding into the text
	// directive itself and return "".
	EncodingPush(enc Encoding) string
	EncodingPop(enc Encoding) string

	FormatOperand(op Operand) string
	FormatLabelDef(name string) string
	FormatLabelRef(name string) string
	FormatLoByte(name string) string
	FormatHiByte(name string) string

	// ValidateLabel returns the name as it should be stored (dialects may
	// require escaping/case folding) or an error if name is reserved.
	ValidateLabel(name string) (string, error)

	// FormatByteLiteral/FormatWordLiteral render one data value in this
	// dialect's numeric literal syntax (used by data-byte/data-word lines
	// that have no symbol to resolve).
	FormatByteLiteral(b byte) string
	FormatWordLiteral(w uint16) string

	// FormatTextLiteral renders one printable run of text bytes as the
	// dialect's string literal (already decoded to host runes by the
	// caller per the PETSCII/Screencode table).
	FormatTextLiteral(s string) string
}

// For returns the Formatter implementation for d.
func For(d Dialect) Formatter {
	switch d {
	case TASS64:
		return tass64{}
	case ACME:
		return acme{}
	case KickAssembler:
		return kickAssembler{}
	case DASM:
		return dasm{}
	default:
		return tass64{}
	}
}

var reservedMnemonics = map[string]bool{
	"ADC": true, "AND": true, "ASL": true, "BCC": true, "BCS": true, "BEQ": true,
	"BIT": true, "BMI": true, "BNE": true, "BPL": true, "BRK": true, "BVC": true,
	"BVS": true, "CLC": true, "CLD": true, "CLI": true, "CLV": true, "CMP": true,
	"CPX": true, "CPY": true, "DEC": true, "DEX": true, "DEY": true, "EOR": true,
	"INC": true, "INX": true, "INY": true, "JMP": true, "JSR": true, "LDA": true,
	"LDX": true, "LDY": true, "LSR": true, "NOP": true, "ORA": true, "PHA": true,
	"PHP": true, "PLA": true, "PLP": true, "ROL": true, "ROR": true, "RTI": true,
	"RTS": true, "SBC": true, "SEC": true, "SED": true, "SEI": true, "STA": true,
	"STX": true, "STY": true, "TAX": true, "TAY": true, "TSX": true, "TXA": true,
	"TXS": true, "TYA": true, "A": true, "X": true, "Y": true,
}

func validateAgainstMnemonics(name string, d Dialect) (string, error) {
	if name == "" {
		return "", fmt.Errorf("formatter: empty label name")
	}
	if reservedMnemonics[name] {
		return "", &ErrReservedWord{Name: name, Dialect: d}
	}
	return name, nil
}

func formatOperandNumeric(op Operand, width4 bool) string {
	if width4 {
		return fmt.Sprintf("$%04X", op.Numeric)
	}
	return fmt.Sprintf("$%02X", op.Numeric)
}

func operandIsByteSized(mode AddressingMode) bool {
	switch mode {
	case Immediate, ZeroPage, ZeroPageX, ZeroPageY, IndirectX, IndirectY, Relative:
		return true
	default:
		return false
	}
}

// renderOperand implements the shared operand-token logic every dialect
// needs (§4.5 format_operand): symbol vs. numeric, lohi/hilo overrides, and
// a dialect-supplied sigil appended after a forced-width absolute operand.
// widthSigil == "" means the dialect has no inline sigil at all.
func renderOperand(f Formatter, op Operand, widthSigil string) string {
	switch op.Mode {
	case Implied:
		return ""
	case Accumulator:
		return "A"
	case Immediate:
		if op.LoHiOf != "" {
			return "#" + f.FormatLoByte(op.LoHiOf)
		}
		if op.HiLoOf != "" {
			return "#" + f.FormatHiByte(op.HiLoOf)
		}
		if op.Symbol != "" {
			return "#" + f.FormatLabelRef(op.Symbol)
		}
		return "#" + formatOperandNumeric(op, false)
	case ZeroPage:
		return symbolOrNumeric(f, op, false)
	case ZeroPageX:
		return symbolOrNumeric(f, op, false) + ",X"
	case ZeroPageY:
		return symbolOrNumeric(f, op, false) + ",Y"
	case Absolute:
		tok := symbolOrNumeric(f, op, true)
		if op.WidthHint && widthSigil != "" {
			tok += widthSigil
		}
		return tok
	case AbsoluteX:
		return symbolOrNumeric(f, op, true) + ",X"
	case AbsoluteY:
		return symbolOrNumeric(f, op, true) + ",Y"
	case Indirect:
		return "(" + symbolOrNumeric(f, op, true) + ")"
	case IndirectX:
		return "(" + symbolOrNumeric(f, op, false) + ",X)"
	case IndirectY:
		return "(" + symbolOrNumeric(f, op, false) + "),Y"
	case Relative:
		return symbolOrNumeric(f, op, true)
	default:
		return fmt.Sprintf("?mode(%d)?", op.Mode)
	}
}

func symbolOrNumeric(f Formatter, op Operand, wide bool) string {
	if op.Symbol != "" {
		return f.FormatLabelRef(op.Symbol)
	}
	return formatOperandNumeric(op, wide)
}
