package sheet

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegenerateBounds indicates bounds with zero or negative extent.
var ErrDegenerateBounds = errors.New("sheet: bounds must have positive width and height")

type Point struct {
	X, Y float64
}

// Bounds is an axis-aligned rectangle in sheet coordinates.
type Bounds struct {
	Left   float64 `yaml:"left"`
	Bottom float64 `yaml:"bottom"`
	Right  float64 `yaml:"right"`
	Top    float64 `yaml:"top"`
}

func NewBounds(left, bottom, right, top float64) Bounds {
	return Bounds{Left: left, Bottom: bottom, Right: right, Top: top}
}

// Radius returns bounds centred on the origin with the given half-width.
func Radius(r float64) Bounds {
	return Bounds{Left: -r, Bottom: -r, Right: r, Top: r}
}

func (b Bounds) LBRT() (l, bottom, r, t float64) {
	return b.Left, b.Bottom, b.Right, b.Top
}

func (b Bounds) Width() float64  { return b.Right - b.Left }
func (b Bounds) Height() float64 { return b.Top - b.Bottom }

func (b Bounds) Validate() error {
	for _, v := range []float64{b.Left, b.Bottom, b.Right, b.Top} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite edge in %v", ErrDegenerateBounds, b)
		}
	}
	if b.Width() <= 0 || b.Height() <= 0 {
		return fmt.Errorf("%w: got %v", ErrDegenerateBounds, b)
	}
	return nil
}

// Contains reports whether p lies inside b, edges included.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.Left && p.X <= b.Right && p.Y >= b.Bottom && p.Y <= b.Top
}

func (b Bounds) String() string {
	return fmt.Sprintf("lbrt(%g, %g, %g, %g)", b.Left, b.Bottom, b.Right, b.Top)
}
