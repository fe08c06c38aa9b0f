package search

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dpeek64/retrodisasm/internal/platform"
	"github.com/dpeek64/retrodisasm/internal/project"
)

func TestFindBytesLocatesAllOccurrences(t *testing.T) {
	bytes := []byte{0xA9, 0x00, 0xA9, 0x00, 0x60, 0xA9, 0x00}
	p := project.New(0x1000, bytes, platform.C64)

	hits, err := FindBytes(p, []byte{0xA9, 0x00})
	require.NoError(t, err)
	require.Equal(t, []Address{0x1000, 0x1002, 0x1005}, hits)
}

func TestFindBytesOverlappingOccurrences(t *testing.T) {
	bytes := []byte{0xAA, 0xAA, 0xAA}
	p := project.New(0x2000, bytes, platform.C64)

	hits, err := FindBytes(p, []byte{0xAA, 0xAA})
	require.NoError(t, err)
	require.Equal(t, []Address{0x2000, 0x2001}, hits)
}

func TestFindBytesNoMatch(t *testing.T) {
	p := project.New(0x1000, []byte{0x01, 0x02, 0x03}, platform.C64)
	hits, err := FindBytes(p, []byte{0xFF})
	require.NoError(t, err)
	require.Nil(t, hits)
}

func TestFindBytesRejectsEmptyNeedle(t *testing.T) {
	p := project.New(0x1000, []byte{0x01}, platform.C64)
	_, err := FindBytes(p, nil)
	require.Error(t, err)
}

func TestFindTextPetsciiEncodesNeedleBeforeScanning(t *testing.T) {
	// "HI" in the PETSCII printable band is identical to ASCII.
	bytes := []byte{0x00, 'H', 'I', 0x00, 'H', 'I'}
	p := project.New(0x4000, bytes, platform.C64)

	hits, err := FindText(p, "HI", Petscii)
	require.NoError(t, err)
	require.Equal(t, []Address{0x4001, 0x4004}, hits)
}

func TestFindTextScreencodeEncodesLetters(t *testing.T) {
	// Screencode 'H' is $08, 'I' is $09 (code 0 = '@', 1 = 'A', ...).
	bytes := []byte{0x08, 0x09}
	p := project.New(0x5000, bytes, platform.C64)

	hits, err := FindText(p, "HI", Screencode)
	require.NoError(t, err)
	require.Equal(t, []Address{0x5000}, hits)
}

func TestFindTextRejectsUnencodableRune(t *testing.T) {
	p := project.New(0x1000, []byte{0x00}, platform.C64)
	_, err := FindText(p, "日本語", Petscii)
	require.Error(t, err)
}
