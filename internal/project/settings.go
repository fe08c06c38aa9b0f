package project

import (
	"github.com/dpeek64/retrodisasm/internal/formatter"
	"github.com/dpeek64/retrodisasm/internal/platform"
)

// Settings is the per-project document settings table of spec.md §6.
type Settings struct {
	Assembler         formatter.Dialect `toml:"assembler"`
	Platform          platform.ID       `toml:"platform"`
	GenerateAllLabels bool              `toml:"generate_all_labels"`
	PreserveLongBytes bool              `toml:"preserve_long_bytes"`
	BrkSingleByte     bool              `toml:"brk_single_byte"`
	PatchBrk          bool              `toml:"patch_brk"`
	UseIllegalOpcodes bool              `toml:"use_illegal_opcodes"`
	MaxXrefs          int               `toml:"max_xrefs"`
	ArrowColumns      int               `toml:"arrow_columns"`
	TextLineLimit     int               `toml:"text_line_limit"`
	WordsPerLine      int               `toml:"words_per_line"`
	BytesPerLine      int               `toml:"bytes_per_line"`
}

// DefaultSettings returns the engine's out-of-the-box settings for a newly
// loaded project targeting platform p.
func DefaultSettings(p platform.ID) Settings {
	return Settings{
		Assembler:         formatter.TASS64,
		Platform:          p,
		GenerateAllLabels: false,
		PreserveLongBytes: true,
		BrkSingleByte:     false,
		PatchBrk:          true,
		UseIllegalOpcodes: false,
		MaxXrefs:          8,
		ArrowColumns:      4,
		TextLineLimit:     32,
		WordsPerLine:      4,
		BytesPerLine:      8,
	}
}
