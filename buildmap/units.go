package buildmap

import (
	"fmt"
	"math"
	"strconv"

	"github.com/milk9111/vectorbuild/ecs/component"
)

const (
	// UnitScale converts scene units to runtime pixels.
	UnitScale = 100
	// FramesPerSecond is the fixed runtime tick rate used for every duration.
	FramesPerSecond = 60

	matrixEpsilon   = 1e-6
	rotationEpsilon = 1e-6
)

// Point is a position in runtime units.
type Point struct {
	X, Y float32
}

// ToOutputUnits maps a scene position to runtime units: scaled by 100 with
// the Y axis flipped.
func ToOutputUnits(x, y float64) Point {
	return Point{X: float32(x) * UnitScale, Y: -float32(y) * UnitScale}
}

// Size is a sprite footprint in runtime units. Native is the unscaled size.
type Size struct {
	Width, Height             float32
	NativeWidth, NativeHeight float32
}

func spriteSize(t component.Transform, s *component.Sprite) Size {
	nw := float32(s.Width) * UnitScale
	nh := float32(s.Height) * UnitScale
	return Size{
		Width:        nw * float32(t.ScaleX),
		Height:       nh * float32(t.ScaleY),
		NativeWidth:  nw,
		NativeHeight: nh,
	}
}

// Matrix is the runtime's 2D affine transform. Tx and Ty are always zero
// because position is carried separately.
type Matrix struct {
	A, B, C, D, Tx, Ty float32
}

// NeedsMatrix reports whether an image must carry a Matrix element.
func NeedsMatrix(rotation float64, flipX, flipY bool) bool {
	return math.Abs(math.Remainder(rotation, 360)) > rotationEpsilon || flipX || flipY
}

// AffineMatrix builds the rotation and flip matrix for a sprite of the given
// scaled size.
func AffineMatrix(rotation float64, width, height float32, flipX, flipY bool) Matrix {
	theta := math.Mod(rotation, 360) * math.Pi / 180
	cos := float32(math.Cos(theta))
	sin := float32(math.Sin(theta))

	fx, fy := float32(1), float32(1)
	if flipX {
		fx = -1
	}
	if flipY {
		fy = -1
	}
	return Matrix{
		A: cos * width * fx,
		B: -sin * width * fx,
		C: sin * height * fy,
		D: cos * height * fy,
	}
}

// FormatFloat prints v in the shortest form that round-trips a float32,
// never in exponent notation. Negative zero prints as "0".
func FormatFloat(v float32) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

func formatMatrixEntry(v float32) string {
	if math.Abs(float64(v)) < matrixEpsilon {
		return "0"
	}
	return FormatFloat(v)
}

// formatPlatformCoord rounds half to even and prints two decimals.
func formatPlatformCoord(v float32) string {
	r := math.RoundToEven(float64(v))
	if r == 0 {
		r = 0
	}
	return strconv.FormatFloat(r, 'f', 2, 64)
}

func formatRoundedInt(v float32) string {
	return strconv.Itoa(int(math.RoundToEven(float64(v))))
}

// Frames converts seconds to runtime frames.
func Frames(seconds float64) int {
	return int(math.Round(seconds * FramesPerSecond))
}

func formatFrames(seconds float64) string {
	return strconv.Itoa(Frames(seconds))
}

func formatColor(s *component.Sprite) string {
	c := s.Color
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}
