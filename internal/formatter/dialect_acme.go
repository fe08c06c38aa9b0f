package formatter

import "fmt"

// acme implements the ACME cross-assembler dialect: "!"-prefixed
// pseudo-opcodes, a dedicated !scr directive for screencode text instead of
// an encoding pragma, and a "+2" forced-width suffix.
type acme struct{}

func (acme) Dialect() Dialect { return ACME }

func (acme) CommentPrefix() string { return ";" }

func (acme) DirectiveByte() string { return "!byte" }
func (acme) DirectiveWord() string { return "!word" }

func (acme) DirectiveText(enc Encoding) string {
	if enc == EncodingScreencode {
		return "!scr"
	}
	return "!text"
}

func (acme) DirectiveInclude() string { return "!binary" }

func (acme) EncodingPush(enc Encoding) string { return "" }
func (acme) EncodingPop(enc Encoding) string  { return "" }

func (f acme) FormatOperand(op Operand) string { return renderOperand(f, op, "+2") }

func (acme) FormatLabelDef(name string) string { return name }
func (acme) FormatLabelRef(name string) string { return name }
func (acme) FormatLoByte(name string) string    { return "<" + name }
func (acme) FormatHiByte(name string) string    { return ">" + name }

func (acme) ValidateLabel(name string) (string, error) {
	return validateAgainstMnemonics(name, ACME)
}

func (acme) FormatByteLiteral(b byte) string  { return fmt.Sprintf("$%02X", b) }
func (acme) FormatWordLiteral(w uint16) string { return fmt.Sprintf("$%04X", w) }

func (acme) FormatTextLiteral(s string) string { return fmt.Sprintf("%q", s) }
