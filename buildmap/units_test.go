package buildmap

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/milk9111/vectorbuild/ecs/component"
)

func TestToOutputUnits(t *testing.T) {
	assert.Equal(t, Point{X: 150, Y: 200}, ToOutputUnits(1.5, -2))
	assert.Equal(t, Point{X: -300, Y: -50}, ToOutputUnits(-3, 0.5))

	p := ToOutputUnits(0, 0)
	assert.Equal(t, "0", FormatFloat(p.X))
	assert.Equal(t, "0", FormatFloat(p.Y))
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float32
		want string
	}{
		{0, "0"},
		{100, "100"},
		{-12.5, "-12.5"},
		{float32(0.1) * 100, "10"},
		{0.8, "0.8"},
		{1e7, "10000000"},
		{0.000125, "0.000125"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatFloat(tc.in), "%v", tc.in)
	}
}

func TestPlatformRounding(t *testing.T) {
	assert.Equal(t, "12.00", formatPlatformCoord(12.5))
	assert.Equal(t, "14.00", formatPlatformCoord(13.5))
	assert.Equal(t, "0.00", formatPlatformCoord(-0.4))
	assert.Equal(t, "-300.00", formatPlatformCoord(-300))

	assert.Equal(t, "4000", formatRoundedInt(4000))
	assert.Equal(t, "2", formatRoundedInt(2.5))
	assert.Equal(t, "4", formatRoundedInt(3.5))
}

func TestFrames(t *testing.T) {
	assert.Equal(t, 150, Frames(2.5))
	assert.Equal(t, 48, Frames(0.8))
	assert.Equal(t, 0, Frames(0))
	assert.Equal(t, "120", formatFrames(2))
}

func TestNeedsMatrix(t *testing.T) {
	assert.False(t, NeedsMatrix(0, false, false))
	assert.False(t, NeedsMatrix(360, false, false))
	assert.False(t, NeedsMatrix(-720, false, false))
	assert.True(t, NeedsMatrix(90, false, false))
	assert.True(t, NeedsMatrix(-45, false, false))
	assert.True(t, NeedsMatrix(0, true, false))
	assert.True(t, NeedsMatrix(0, false, true))
}

func TestAffineMatrix(t *testing.T) {
	m := AffineMatrix(90, 200, 100, false, false)
	assert.Equal(t, "0", formatMatrixEntry(m.A))
	assert.Equal(t, "-200", formatMatrixEntry(m.B))
	assert.Equal(t, "100", formatMatrixEntry(m.C))
	assert.Equal(t, "0", formatMatrixEntry(m.D))
	assert.Equal(t, "0", formatMatrixEntry(m.Tx))
	assert.Equal(t, "0", formatMatrixEntry(m.Ty))

	flipped := AffineMatrix(0, 200, 100, true, true)
	assert.Equal(t, Matrix{A: -200, D: -100}, Matrix{A: flipped.A, D: flipped.D})
	assert.Equal(t, "0", formatMatrixEntry(flipped.B))
	assert.Equal(t, "0", formatMatrixEntry(flipped.C))

	// 450 degrees is a quarter turn
	wrapped := AffineMatrix(450, 200, 100, false, false)
	assert.Equal(t, "-200", formatMatrixEntry(wrapped.B))
}

func TestSpriteSizeAndColor(t *testing.T) {
	tr := component.Transform{ScaleX: 2, ScaleY: 1}
	s := &component.Sprite{Width: 1, Height: 1, Color: color.NRGBA{R: 0xff, G: 0xcc, A: 0x80}}

	assert.Equal(t, Size{Width: 200, Height: 100, NativeWidth: 100, NativeHeight: 100}, spriteSize(tr, s))
	assert.Equal(t, "#FFCC0080", formatColor(s))
}
