package formatter

import "fmt"

// kickAssembler implements the KickAssembler dialect: "//" line comments,
// an explicit .encoding pragma (like 64tass, but with KickAss's own
// encoding names), ".import binary" for includes and a ".abs" forced-width
// suffix.
type kickAssembler struct{}

func (kickAssembler) Dialect() Dialect { return KickAssembler }

func (kickAssembler) CommentPrefix() string { return "//" }

func (kickAssembler) DirectiveByte() string { return ".byte" }
func (kickAssembler) DirectiveWord() string { return ".word" }

func (kickAssembler) DirectiveText(enc Encoding) string { return ".text" }

func (kickAssembler) DirectiveInclude() string { return ".import binary" }

func (kickAssembler) EncodingPush(enc Encoding) string {
	if enc == EncodingScreencode {
		return `.encoding "screencode_mixed"`
	}
	return `.encoding "petscii_upper"`
}

func (kickAssembler) EncodingPop(enc Encoding) string { return "" }

func (f kickAssembler) FormatOperand(op Operand) string { return renderOperand(f, op, ".abs") }

func (kickAssembler) FormatLabelDef(name string) string { return name + ":" }
func (kickAssembler) FormatLabelRef(name string) string { return name }
func (kickAssembler) FormatLoByte(name string) string    { return "<" + name }
func (kickAssembler) FormatHiByte(name string) string    { return ">" + name }

func (kickAssembler) ValidateLabel(name string) (string, error) {
	return validateAgainstMnemonics(name, KickAssembler)
}

func (kickAssembler) FormatByteLiteral(b byte) string  { return fmt.Sprintf("$%02X", b) }
func (kickAssembler) FormatWordLiteral(w uint16) string { return fmt.Sprintf("$%04X", w) }

func (kickAssembler) FormatTextLiteral(s string) string { return fmt.Sprintf("%q", s) }
