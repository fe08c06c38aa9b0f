package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dpeek64/retrodisasm/internal/formatter"
	"github.com/dpeek64/retrodisasm/internal/platform"
)

func TestParsePlatformAcceptsAliases(t *testing.T) {
	cases := map[string]platform.ID{
		"c64":       platform.C64,
		"C64":       platform.C64,
		"vic-20":    platform.VIC20,
		"plus4":     platform.Plus4,
		"1541":      platform.Drive1541,
		"pet":       platform.PET,
		"c128":      platform.C128,
		"vic20":     platform.VIC20,
		"plus/4":    platform.Plus4,
		"drive1541": platform.Drive1541,
	}
	for in, want := range cases {
		got, err := parsePlatform(in)
		require.NoError(t, err, "parsePlatform(%q)", in)
		require.Equal(t, want, got, "parsePlatform(%q)", in)
	}
}

func TestParsePlatformRejectsUnknown(t *testing.T) {
	_, err := parsePlatform("amiga")
	require.Error(t, err)
}

func TestParseAssemblerAcceptsAliases(t *testing.T) {
	cases := map[string]formatter.Dialect{
		"64tass": formatter.TASS64,
		"tass":   formatter.TASS64,
		"acme":   formatter.ACME,
		"kick":   formatter.KickAssembler,
		"dasm":   formatter.DASM,
	}
	for in, want := range cases {
		got, err := parseAssembler(in)
		require.NoError(t, err, "parseAssembler(%q)", in)
		require.Equal(t, want, got, "parseAssembler(%q)", in)
	}
}

func TestParseAssemblerRejectsUnknown(t *testing.T) {
	_, err := parseAssembler("masm")
	require.Error(t, err)
}
