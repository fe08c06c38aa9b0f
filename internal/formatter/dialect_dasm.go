package formatter

import "fmt"

// dasm implements the DASM dialect: ";" comments, plain ".byte"/".word",
// string literals fed straight to .byte for PETSCII text, a community
// "scrcode" macro for screencode text, ".incbin" for includes, and a ".w"
// suffix to force DASM's size-inference past a zero-page-fitting value
// onto the wider absolute encoding.
type dasm struct{}

func (dasm) Dialect() Dialect { return DASM }

func (dasm) CommentPrefix() string { return ";" }

func (dasm) DirectiveByte() string { return ".byte" }
func (dasm) DirectiveWord() string { return ".word" }

func (dasm) DirectiveText(enc Encoding) string {
	if enc == EncodingScreencode {
		return "scrcode"
	}
	return ".byte"
}

func (dasm) DirectiveInclude() string { return ".incbin" }

func (dasm) EncodingPush(enc Encoding) string { return "" }
func (dasm) EncodingPop(enc Encoding) string  { return "" }

func (f dasm) FormatOperand(op Operand) string { return renderOperand(f, op, ".w") }

func (dasm) FormatLabelDef(name string) string { return name }
func (dasm) FormatLabelRef(name string) string { return name }
func (dasm) FormatLoByte(name string) string    { return "<" + name }
func (dasm) FormatHiByte(name string) string    { return ">" + name }

func (dasm) ValidateLabel(name string) (string, error) {
	return validateAgainstMnemonics(name, DASM)
}

func (dasm) FormatByteLiteral(b byte) string  { return fmt.Sprintf("$%02X", b) }
func (dasm) FormatWordLiteral(w uint16) string { return fmt.Sprintf("$%04X", w) }

func (dasm) FormatTextLiteral(s string) string { return fmt.Sprintf("%q", s) }
