// Package xshapes defines the cross-section shape variants referenced by
// swmming XSection records.
package xshapes

import "fmt"

// Shape is one cross-section shape. Geometric shapes render their own
// Geom1..Geom4 cells; Custom, Irregular and Street defer to a curve,
// transect or street record named on the XSection line.
type Shape interface {
	InpFields() string
}

func geoms(name string, g1, g2, g3, g4 float64) string {
	return fmt.Sprintf("%-12s %-16.2f %-10.2f %-10.2f %-10.2f", name, g1, g2, g3, g4)
}

// Circular is a closed circular pipe.
type Circular struct {
	Diameter float64
}

func (s Circular) InpFields() string { return geoms("CIRCULAR", s.Diameter, 0, 0, 0) }

// ForceMain is a circular pipe under pressurized flow, using the force
// main friction equation selected in the run options.
type ForceMain struct {
	Diameter  float64
	Roughness float64 // Hazen-Williams C or Darcy-Weisbach roughness height
}

func (s ForceMain) InpFields() string { return geoms("FORCE_MAIN", s.Diameter, s.Roughness, 0, 0) }

// Egg is a closed egg-shaped pipe.
type Egg struct {
	FullHeight float64
}

func (s Egg) InpFields() string { return geoms("EGG", s.FullHeight, 0, 0, 0) }

// RectClosed is a closed rectangular box.
type RectClosed struct {
	FullHeight float64
	TopWidth   float64
}

func (s RectClosed) InpFields() string { return geoms("RECT_CLOSED", s.FullHeight, s.TopWidth, 0, 0) }

// RectOpen is an open rectangular channel.
type RectOpen struct {
	FullHeight float64
	TopWidth   float64
}

func (s RectOpen) InpFields() string { return geoms("RECT_OPEN", s.FullHeight, s.TopWidth, 0, 0) }

// Trapezoidal is an open trapezoidal channel. The side slopes are
// expressed as horizontal run per unit of vertical rise.
type Trapezoidal struct {
	FullHeight float64
	BaseWidth  float64
	LeftSlope  float64
	RightSlope float64
}

func (s Trapezoidal) InpFields() string {
	return geoms("TRAPEZOIDAL", s.FullHeight, s.BaseWidth, s.LeftSlope, s.RightSlope)
}

// Triangular is an open triangular channel.
type Triangular struct {
	FullHeight float64
	TopWidth   float64
}

func (s Triangular) InpFields() string { return geoms("TRIANGULAR", s.FullHeight, s.TopWidth, 0, 0) }

// Parabolic is an open parabolic channel.
type Parabolic struct {
	FullHeight float64
	TopWidth   float64
}

func (s Parabolic) InpFields() string { return geoms("PARABOLIC", s.FullHeight, s.TopWidth, 0, 0) }

// HorizEllipse is a closed horizontal elliptical pipe.
type HorizEllipse struct {
	FullHeight float64
	MaxWidth   float64
}

func (s HorizEllipse) InpFields() string {
	return geoms("HORIZ_ELLIPSE", s.FullHeight, s.MaxWidth, 0, 0)
}

// VertEllipse is a closed vertical elliptical pipe.
type VertEllipse struct {
	FullHeight float64
	MaxWidth   float64
}

func (s VertEllipse) InpFields() string { return geoms("VERT_ELLIPSE", s.FullHeight, s.MaxWidth, 0, 0) }

// Custom is a closed shape whose width-depth relation comes from a shape
// curve named on the XSection line.
type Custom struct{}

func (Custom) InpFields() string { return fmt.Sprintf("%-12s", "CUSTOM") }

// Irregular is a natural channel described by a transect named on the
// XSection line.
type Irregular struct{}

func (Irregular) InpFields() string { return fmt.Sprintf("%-12s", "IRREGULAR") }

// Street is a street cross-section described by a street record named on
// the XSection line.
type Street struct{}

func (Street) InpFields() string { return fmt.Sprintf("%-12s", "STREET") }
