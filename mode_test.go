package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModeControllerAffordance(t *testing.T) {
	cases := map[Mode]CursorKind{
		ModePlaceRed:  CursorDefault,
		ModePlaceBlue: CursorDefault,
		ModeDraw:      CursorCrosshair,
		ModeErase:     CursorCrosshair,
	}
	mc := newModeController(ModePlaceRed)
	for mode, cursor := range cases {
		mc.setMode(mode)
		assert.Equal(t, mode, mc.Mode())
		assert.Equal(t, Affordance{Active: mode, Cursor: cursor}, mc.Affordance())
	}
}

func TestModeControllerReselectIsStable(t *testing.T) {
	mc := newModeController(ModeDraw)
	before := mc.Affordance()

	mc.setMode(ModeDraw)

	assert.Equal(t, ModeDraw, mc.Mode())
	assert.Equal(t, before, mc.Affordance())
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "ERASE", ModeErase.String())
	assert.Equal(t, "UNKNOWN", Mode(42).String())
}
