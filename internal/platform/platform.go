// Package platform supplies the well-known External label tables that
// spec.md §6 ("Platform awareness") loads at project creation: KERNAL/BASIC
// entry points and the common hardware register aliases for each supported
// Commodore 8-bit machine.
package platform

// ID identifies one of the platforms spec.md §6 enumerates.
type ID int

const (
	C64 ID = iota
	C128
	VIC20
	Plus4
	PET
	Drive1541
)

func (p ID) String() string {
	switch p {
	case C64:
		return "C64"
	case C128:
		return "C128"
	case VIC20:
		return "VIC-20"
	case Plus4:
		return "Plus/4"
	case PET:
		return "PET"
	case Drive1541:
		return "1541"
	default:
		return "unknown"
	}
}

// Label is one External symbol: a well-known address outside (or inside)
// the binary's own range that always resolves regardless of settings.
type Label struct {
	Address uint16
	Name    string
}

// Table returns the External label set for platform p. Callers must not
// mutate the returned slice; it is shared backing data.
func Table(p ID) []Label {
	switch p {
	case C64:
		return c64Labels
	case C128:
		return c128Labels
	case VIC20:
		return vic20Labels
	case Plus4:
		return plus4Labels
	case PET:
		return petLabels
	case Drive1541:
		return drive1541Labels
	default:
		return nil
	}
}

var c64Labels = []Label{
	// KERNAL entry points
	{0xFFD2, "CHROUT"}, {0xFFCF, "CHRIN"}, {0xFFE4, "GETIN"},
	{0xFFC0, "OPEN"}, {0xFFC3, "CLOSE"}, {0xFFC6, "CHKIN"}, {0xFFC9, "CHKOUT"},
	{0xFFCC, "CLRCHN"}, {0xFFD5, "LOAD"}, {0xFFD8, "SAVE"}, {0xFFDB, "SETTIM"},
	{0xFFDE, "RDTIM"}, {0xFFE1, "STOP"}, {0xFFE7, "CLALL"}, {0xFFEA, "UDTIM"},
	{0xFFED, "SCREEN"}, {0xFFF0, "PLOT"}, {0xFFF3, "IOBASE"},
	{0xFF81, "CINT"}, {0xFF84, "IOINIT"}, {0xFF87, "RAMTAS"}, {0xFF8A, "RESTOR"},
	{0xFF8D, "VECTOR"}, {0xFF90, "SETMSG"}, {0xFF93, "SECOND"}, {0xFF96, "TKSA"},
	{0xFF99, "MEMTOP"}, {0xFF9C, "MEMBOT"}, {0xFF9F, "SCNKEY"}, {0xFFA2, "SETTMO"},
	{0xFFA5, "ACPTR"}, {0xFFA8, "CIOUT"}, {0xFFAB, "UNTLK"}, {0xFFAE, "UNLSN"},
	{0xFFB1, "LISTEN"}, {0xFFB4, "TALK"}, {0xFFB7, "READST"},
	// VIC-II
	{0xD000, "VIC_SP0X"}, {0xD001, "VIC_SP0Y"}, {0xD011, "VIC_CR1"},
	{0xD012, "VIC_RASTER"}, {0xD016, "VIC_CR2"}, {0xD018, "VIC_MEMPTR"},
	{0xD019, "VIC_IRQ"}, {0xD01A, "VIC_IMR"}, {0xD020, "VIC_BORDER"},
	{0xD021, "VIC_BGCOL0"},
	// SID
	{0xD400, "SID_V1FREQ"}, {0xD401, "SID_V1FREQHI"}, {0xD404, "SID_V1CTRL"},
	{0xD415, "SID_FILTFREQ"}, {0xD418, "SID_VOLUME"},
	// CIA 1/2
	{0xDC00, "CIA1_PRA"}, {0xDC01, "CIA1_PRB"}, {0xDC0D, "CIA1_ICR"},
	{0xDD00, "CIA2_PRA"}, {0xDD01, "CIA2_PRB"}, {0xDD0D, "CIA2_ICR"},
	// page-3 RAM vectors commonly referenced via indirect jump tables
	{0x0314, "IRQ_VEC"}, {0x0316, "BRK_VEC"}, {0x0318, "NMI_VEC"},
}

var c128Labels = append(append([]Label{}, c64Labels...), []Label{
	{0xFF4A, "CINT128"}, {0xFF47, "BANK128"}, {0xD030, "VIC_CLKRATE"},
	{0xFF00, "MMU_CR"}, {0xFF01, "MMU_PCRA"},
}...)

var vic20Labels = []Label{
	{0xFFD2, "CHROUT"}, {0xFFCF, "CHRIN"}, {0xFFE4, "GETIN"},
	{0xFFD5, "LOAD"}, {0xFFD8, "SAVE"},
	{0x9000, "VIA1_PORTB"}, {0x9001, "VIA1_PORTA"}, {0x900F, "VIC_CR"},
	{0x9001, "VIA1_PA"}, {0x900E, "VIC_AUXCOL"},
}

var plus4Labels = []Label{
	{0xFFD2, "CHROUT"}, {0xFFCF, "CHRIN"}, {0xFFE4, "GETIN"},
	{0xFFD5, "LOAD"}, {0xFFD8, "SAVE"},
	{0xFF00, "TED_FREQ1LO"}, {0xFF06, "TED_CTRL1"}, {0xFF19, "TED_CTRL2"},
	{0xFF15, "TED_BGCOL0"},
}

var petLabels = []Label{
	{0xFFD2, "CHROUT"}, {0xFFCF, "CHRIN"}, {0xFFE4, "GETIN"},
	{0xFFD5, "LOAD"}, {0xFFD8, "SAVE"},
	{0xE810, "PIA1_PA"}, {0xE812, "PIA1_PB"}, {0xE820, "PIA2_PA"},
}

var drive1541Labels = []Label{
	{0x1800, "VIA1_PB"}, {0x1801, "VIA1_PA"}, {0x1C00, "VIA2_PB"}, {0x1C01, "VIA2_PA"},
	{0xEA7E, "IRQ_VEC"}, {0xEAA0, "JOB_LOOP"},
}
