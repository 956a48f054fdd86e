package picker

import (
	"testing"

	"rgbctl/internal/colormodel"

	"github.com/stretchr/testify/assert"
)

func TestDispatch_Sliders(t *testing.T) {
	c, surface := newTestController(t, nil)

	assert.True(t, c.Dispatch(SourceRedSlider, "200"))
	assert.True(t, c.Dispatch(SourceGreenSlider, 100))
	assert.True(t, c.Dispatch(SourceBlueSlider, "999"))

	assertConsistent(t, surface, colormodel.RGB{R: 200, G: 100, B: 255})
}

func TestDispatch_NumericFields(t *testing.T) {
	c, surface := newTestController(t, nil)
	c.ApplyColor(10, 20, 30)
	surface.reset()

	assert.False(t, c.Dispatch(SourceRedField, ""), "empty live input is ignored")
	assert.Empty(t, surface.calls)

	assert.True(t, c.Dispatch(SourceRedField, "-7"))
	assertConsistent(t, surface, colormodel.RGB{R: 0, G: 20, B: 30})

	assert.True(t, c.Dispatch(SourceGreenField, "12.6"))
	assertConsistent(t, surface, colormodel.RGB{R: 0, G: 13, B: 30})

	assert.True(t, c.Dispatch(SourceBlueField, "abc"))
	assertConsistent(t, surface, colormodel.RGB{R: 0, G: 13, B: 0})
}

func TestCommit_EmptyFieldBecomesZero(t *testing.T) {
	c, surface := newTestController(t, nil)
	c.ApplyColor(10, 20, 30)

	assert.True(t, c.Commit(SourceGreenField, "  "))
	assertConsistent(t, surface, colormodel.RGB{R: 10, G: 0, B: 30})

	assert.True(t, c.Commit(SourceBlueField, "400"))
	assertConsistent(t, surface, colormodel.RGB{R: 10, G: 0, B: 255})
}

func TestDispatch_HexFieldIncompleteTyping(t *testing.T) {
	c, surface := newTestController(t, nil)
	c.ApplyColor(1, 2, 3)
	surface.reset()

	for _, partial := range []string{"a", "ab", "abcd", "abcde"} {
		assert.False(t, c.Dispatch(SourceHexField, partial), "input %q", partial)
	}
	assert.Empty(t, surface.calls)
	assert.Equal(t, colormodel.RGB{R: 1, G: 2, B: 3}, c.Color())

	assert.True(t, c.Dispatch(SourceHexField, "abc"))
	assertConsistent(t, surface, colormodel.RGB{R: 0xAA, G: 0xBB, B: 0xCC})

	assert.True(t, c.Dispatch(SourceHexField, "abcdef"))
	assertConsistent(t, surface, colormodel.RGB{R: 0xAB, G: 0xCD, B: 0xEF})
}

func TestCommit_HexFieldPads(t *testing.T) {
	c, surface := newTestController(t, nil)

	assert.False(t, c.Commit(SourceHexField, ""))
	assert.True(t, c.Commit(SourceHexField, "ab"))
	assertConsistent(t, surface, colormodel.RGB{B: 0xAB})
}

func TestDispatch_PickerAndDecimal(t *testing.T) {
	c, surface := newTestController(t, nil)

	assert.True(t, c.Dispatch(SourcePicker, "#336699"))
	assertConsistent(t, surface, colormodel.RGB{R: 0x33, G: 0x66, B: 0x99})

	assert.False(t, c.Dispatch(SourcePicker, nil))

	assert.True(t, c.Dispatch(SourceDecimalField, "255"))
	assertConsistent(t, surface, colormodel.RGB{B: 255})

	assert.False(t, c.Commit(SourceDecimalField, ""))
}

func TestDispatch_UnknownSource(t *testing.T) {
	c, surface := newTestController(t, nil)
	assert.False(t, c.Dispatch(Source(99), "1"))
	assert.Empty(t, surface.calls)
	assert.Equal(t, "source(99)", Source(99).String())
	assert.Equal(t, "hex-field", SourceHexField.String())
}
