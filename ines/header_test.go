package ines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHeaderInvalidMagic(t *testing.T) {
	b := []byte{'B', 'O', 'B', 0x1A, 2, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	_, err := ParseHeader(b)
	require.Error(t, err)
	var he *HeaderError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, InvalidMagic, he.Kind)
}

func TestParseHeaderShort(t *testing.T) {
	_, err := ParseHeader([]byte{'N', 'E', 'S', 0x1A})
	require.Error(t, err)
	var he *HeaderError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, ShortHeader, he.Kind)
}

func TestParseHeaderFields(t *testing.T) {
	b := []byte{'N', 'E', 'S', 0x1A, 2, 1, 0x01, 0x00, 0x00, 0x00, 0x00, 0, 0, 0, 0, 0}
	h, err := ParseHeader(b)
	require.NoError(t, err)
	assert.Equal(t, uint8(2), h.PrgSize16k())
	assert.Equal(t, uint8(1), h.ChrSize8k())
	assert.Equal(t, 32768, h.PrgBytes())
	assert.Equal(t, 8192, h.ChrBytes())
	assert.Equal(t, MirrorVertical, h.Mirroring())
}

func TestMirroring(t *testing.T) {
	cases := []struct {
		flags6 uint8
		want   Mirroring
	}{
		{0x00, MirrorHorizontal},
		{0x01, MirrorVertical},
		{0x08, MirrorFourScreen},
		{0x09, MirrorFourScreen},
	}
	for _, tc := range cases {
		h := &Header{flags6: tc.flags6}
		assert.Equalf(t, tc.want, h.Mirroring(), "flags6=%#02x", tc.flags6)
	}
}

func TestHasTrainer(t *testing.T) {
	assert.True(t, (&Header{flags6: 0xFF}).HasTrainer())
	assert.True(t, (&Header{flags6: 0x04}).HasTrainer())
	assert.False(t, (&Header{flags6: 0x0A}).HasTrainer())
}

func TestHasPlayChoice10(t *testing.T) {
	assert.True(t, (&Header{flags7: 0xFF}).HasPlayChoice10())
	assert.True(t, (&Header{flags7: 0x02}).HasPlayChoice10())
	assert.False(t, (&Header{flags7: 0x01}).HasPlayChoice10())
}

func TestIsNES2Format(t *testing.T) {
	assert.True(t, (&Header{flags7: 0x08}).IsNES2Format())
	assert.False(t, (&Header{flags7: 0x0C}).IsNES2Format())
	assert.False(t, (&Header{flags7: 0x00}).IsNES2Format())
}

func TestMapper(t *testing.T) {
	cases := []struct {
		flags6, flags7 uint8
		want           uint8
	}{
		{0x10, 0x00, 0x01},
		{0x00, 0x10, 0x10},
		{0xF0, 0xF0, 0xFF},
	}
	for _, tc := range cases {
		h := &Header{flags6: tc.flags6, flags7: tc.flags7}
		assert.Equalf(t, tc.want, h.Mapper(), "flags6=%#02x flags7=%#02x", tc.flags6, tc.flags7)
	}
}

func TestPRGRAM(t *testing.T) {
	h := &Header{flags6: flag6BatteryRAM, flags8: 4}
	assert.True(t, h.HasBatteryBackedPRGRAM())
	assert.Equal(t, uint8(4), h.PrgRAMSize8k())
}

func TestTVSystem(t *testing.T) {
	cases := []struct {
		flags10 uint8
		want    TVSystem
	}{
		{0x00, TVNTSC},
		{0x02, TVPAL},
		{0x01, TVDual},
		{0x03, TVDual},
	}
	for _, tc := range cases {
		h := &Header{flags10: tc.flags10}
		assert.Equalf(t, tc.want, h.TVSystem(), "flags10=%#02x", tc.flags10)
	}
}

func TestHasPRGRAMAndBoardConflicts(t *testing.T) {
	h := &Header{flags10: flag10HasPRGRAM | flag10BoardConflict}
	assert.True(t, h.HasPRGRAM())
	assert.True(t, h.HasBoardConflicts())

	h2 := &Header{}
	assert.False(t, h2.HasPRGRAM())
	assert.False(t, h2.HasBoardConflicts())
}
