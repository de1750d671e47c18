// Package daycolor derives a stable colour for each calendar date
package daycolor

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// stream is the fixed PCG increment paired with the per-date seed.
const stream = 0x9e3779b97f4a7c15

// Color is an sRGB colour with 8 bits per channel.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Seed returns the generator seed for a date: year*10000 + month*100 + day.
// The time of day is ignored.
func Seed(date time.Time) uint64 {
	y, m, d := date.Date()

	return uint64(int64(y)*10000 + int64(m)*100 + int64(d))
}

// For returns the colour of the calendar date t falls on. The colour is a
// pure function of the date: a PCG-DXSM generator keyed by Seed(t) yields one
// byte each for red, green and blue, in that order.
func For(t time.Time) Color {
	rng := rand.New(rand.NewPCG(Seed(t), stream))

	return Color{
		R: draw(rng),
		G: draw(rng),
		B: draw(rng),
	}
}

func draw(rng *rand.Rand) uint8 {
	return uint8(rng.Uint64() >> 56)
}

// Hex returns the colour as "#RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

// Colorful converts c for colour-space operations.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// FromColorful converts back, clamping out-of-gamut values.
func FromColorful(cc colorful.Color) Color {
	r, g, b := cc.Clamped().RGB255()

	return Color{R: r, G: g, B: b}
}

// Dark reports whether light text reads better on top of c.
func (c Color) Dark() bool {
	_, _, l := c.Colorful().Hcl()

	return l < 0.6
}

// Foreground returns black or white, whichever contrasts with c.
func (c Color) Foreground() Color {
	if c.Dark() {
		return Color{R: 0xFF, G: 0xFF, B: 0xFF}
	}

	return Color{}
}

// Fill blends from base towards c by fraction, which is clamped to [0, 1].
// It shades the portion of the current day that has already passed.
func (c Color) Fill(base Color, fraction float64) Color {
	fraction = min(max(fraction, 0), 1)

	return FromColorful(base.Colorful().BlendLab(c.Colorful(), fraction))
}

// DayFraction returns the share of t's day that has elapsed, by hour as the
// web view draws it.
func DayFraction(t time.Time) float64 {
	return float64(t.Hour()) / 24
}
