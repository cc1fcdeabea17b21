package curves

import "math"

// Curve maps a parameter and a viewport size to a point on the curve.
type Curve func(t, width, height float64) (x, y float64)

const scaleFactor = 0.3

// Scale is the shared radius of every curve: 30% of the smaller viewport side.
func Scale(width, height float64) float64 {
	return math.Min(width, height) * scaleFactor
}

func Lissajous(t, width, height float64) (float64, float64) {
	s := Scale(width, height)
	const a, b = 3.0, 2.0
	return width/2 + s*math.Sin(a*t), height/2 + s*math.Sin(b*t+math.Pi/2)
}

func Rose(t, width, height float64) (float64, float64) {
	s := Scale(width, height)
	const k = 3.0
	r := s * math.Sin(k*t)
	return width/2 + r*math.Cos(t), height/2 + r*math.Sin(t)
}

// Hypocycloid traces a four-cusp hypocycloid (astroid) with R = s, r = R/4.
func Hypocycloid(t, width, height float64) (float64, float64) {
	R := Scale(width, height)
	return trochoid(t, width, height, R, 0.25, 1)
}

// Butterfly is Fay's butterfly curve at half scale.
func Butterfly(t, width, height float64) (float64, float64) {
	half := Scale(width, height) / 2
	r := math.Exp(math.Cos(t)) - 2*math.Cos(4*t) + math.Pow(math.Sin(t/12), 5)
	return width/2 + half*math.Sin(t)*r, height/2 + half*math.Cos(t)*r
}

// MaurerRose walks a rose with n = 7 in steps of d = 71 degrees.
func MaurerRose(t, width, height float64) (float64, float64) {
	scale := Scale(width, height) * 1.5
	const n, d = 7.0, 71.0
	k := t * d
	rad := k * math.Pi / 180
	r := scale * (0.8 + 0.2*math.Sin(n*rad))
	return width/2 + r*math.Cos(rad), height/2 + r*math.Sin(rad)
}

func Spirograph(t, width, height float64) (float64, float64) {
	R := Scale(width, height) * 0.8
	return trochoid(t, width, height, R, 0.4, 0.8)
}

// FermatSpiral treats negative t as 0.
func FermatSpiral(t, width, height float64) (float64, float64) {
	a := Scale(width, height) * 0.5
	r := a * math.Sqrt(math.Max(t, 0))
	angle := t * 5
	return width/2 + r*math.Cos(angle), height/2 + r*math.Sin(angle)
}

func Cardioid(t, width, height float64) (float64, float64) {
	a := Scale(width, height) * 0.9
	r := a * (1 + math.Cos(t))
	return width/2 + r*math.Cos(t), height/2 + r*math.Sin(t)
}

// trochoid evaluates the hypotrochoid with rolling radius r = R*rf and pen
// offset d = r*df. The rolling ratio (R-r)/r only depends on rf, so a
// degenerate viewport never divides by zero.
func trochoid(t, width, height, R, rf, df float64) (float64, float64) {
	r := R * rf
	d := r * df
	ratio := (1 - rf) / rf
	return width/2 + (R-r)*math.Cos(t) + d*math.Cos(ratio*t),
		height/2 + (R-r)*math.Sin(t) - d*math.Sin(ratio*t)
}
