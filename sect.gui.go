package swmming

import (
	"fmt"
	"io"
	"strings"
)

// Map provides dimensions and distance units for the study area map.
// Dimensions are the lower-left and upper-right corners of the full map
// extent, in the order X1, Y1, X2, Y2.
type Map struct {
	Dimensions []float64
	Units      string // FEET, METERS, DEGREES or NONE
}

func NewMap(m Map) (*Map, error) {
	if len(m.Dimensions) != 4 {
		return nil, invalid("Map", "", "dimensions must be a 4-element list")
	}
	if m.Units == "" {
		m.Units = "NONE"
	}
	switch m.Units {
	case "FEET", "METERS", "DEGREES", "NONE":
	default:
		return nil, invalid("Map", "", "units must be one of FEET, METERS, DEGREES, NONE")
	}
	return &m, nil
}

func (m *Map) writeInp(iw *inpWriter) {
	ds := make([]string, len(m.Dimensions))
	for i, d := range m.Dimensions {
		ds[i] = fmt.Sprintf("%.2f", d)
	}
	iw.print("[MAP]\n")
	iw.print("DIMENSIONS " + strings.Join(ds, " ") + "\n")
	iw.printf("UNITS     %s\n", m.Units)
}

// WriteMap writes the [MAP] section.
func WriteMap(w io.Writer, m *Map) error {
	iw := &inpWriter{w: w}
	m.writeInp(iw)
	return iw.err
}

// Coordinate assigns X,Y coordinates to a drainage system node.
type Coordinate struct {
	Node  Node
	Coord []float64
}

func NewCoordinate(c Coordinate) (*Coordinate, error) {
	if c.Node == nil {
		return nil, invalid("Coordinate", "", "node must be a node, like a Junction or an Outfall")
	}
	if len(c.Coord) != 2 {
		return nil, invalid("Coordinate", c.Node.NodeName(), "coord must be a 2-element list")
	}
	return &c, nil
}

func (c *Coordinate) inpLine() string {
	return fmt.Sprintf("%-16s %-18.3f %-18.3f", c.Node.NodeName(), c.Coord[0], c.Coord[1])
}

func writeCoordinates(iw *inpWriter, cs []*Coordinate) {
	iw.print("[COORDINATES]\n" +
		";;Node           X-Coord            Y-Coord           \n" +
		";;-------------- ------------------ ------------------\n")
	for _, c := range cs {
		iw.print(c.inpLine() + "\n")
	}
}

// WriteCoordinates writes the [COORDINATES] section.
func WriteCoordinates(w io.Writer, cs []*Coordinate) error {
	iw := &inpWriter{w: w}
	writeCoordinates(iw, cs)
	return iw.err
}

// SymbolPoint assigns X,Y coordinates to a rain gage symbol.
type SymbolPoint struct {
	Gage  *Raingage
	Coord []float64
}

func NewSymbolPoint(s SymbolPoint) (*SymbolPoint, error) {
	if s.Gage == nil {
		return nil, invalid("SymbolPoint", "", "gage must be a Raingage")
	}
	if len(s.Coord) != 2 {
		return nil, invalid("SymbolPoint", s.Gage.Name, "coord must be a 2-element list")
	}
	return &s, nil
}

func (s *SymbolPoint) inpLine() string {
	return fmt.Sprintf("%-16s %-18.3f %-18.3f", s.Gage.Name, s.Coord[0], s.Coord[1])
}

// WriteSymbolPoints writes the [SYMBOLS] section.
func WriteSymbolPoints(w io.Writer, ss []*SymbolPoint) error {
	iw := &inpWriter{w: w}
	iw.print("[SYMBOLS]\n" +
		";;Rain Gage      X-Coord            Y-Coord           \n" +
		";;-------------- ------------------ ------------------\n")
	for _, s := range ss {
		iw.print(s.inpLine() + "\n")
	}
	return iw.err
}

// LinkVertex assigns X,Y coordinates to one interior vertex of a curved
// link, ordered from the inlet node to the outlet node. Straight links
// have no interior vertices.
type LinkVertex struct {
	Link  *Conduit
	Coord []float64
}

func NewLinkVertex(v LinkVertex) (*LinkVertex, error) {
	if v.Link == nil {
		return nil, invalid("LinkVertex", "", "link must be a Conduit")
	}
	if len(v.Coord) != 2 {
		return nil, invalid("LinkVertex", v.Link.Name, "coord must be a 2-element list")
	}
	return &v, nil
}

func (v *LinkVertex) inpLine() string {
	return fmt.Sprintf("%-16s %-18.3f %-18.3f", v.Link.Name, v.Coord[0], v.Coord[1])
}

func writeVertices(iw *inpWriter, vs []*LinkVertex) {
	iw.print("[VERTICES]\n" +
		";;Link           X-Coord            Y-Coord           \n" +
		";;-------------- ------------------ ------------------\n")
	for _, v := range vs {
		iw.print(v.inpLine() + "\n")
	}
}

// WriteVertices writes the [VERTICES] section.
func WriteVertices(w io.Writer, vs []*LinkVertex) error {
	iw := &inpWriter{w: w}
	writeVertices(iw, vs)
	return iw.err
}

// PolygonVertex assigns X,Y coordinates to one vertex of a subcatchment
// boundary polygon, listed in a consistent clockwise or counterclockwise
// order.
type PolygonVertex struct {
	Subcatchment *Subcatchment
	Coord        []float64
}

func NewPolygonVertex(v PolygonVertex) (*PolygonVertex, error) {
	if v.Subcatchment == nil {
		return nil, invalid("PolygonVertex", "", "subcatchment must be a Subcatchment")
	}
	if len(v.Coord) != 2 {
		return nil, invalid("PolygonVertex", v.Subcatchment.Name, "coord must be a 2-element list")
	}
	return &v, nil
}

func (v *PolygonVertex) inpLine() string {
	return fmt.Sprintf("%-16s %-18.3f %-18.3f", v.Subcatchment.Name, v.Coord[0], v.Coord[1])
}

func writePolygons(iw *inpWriter, vs []*PolygonVertex) {
	iw.print("[POLYGONS]\n" +
		";;Subcatchment   X-Coord            Y-Coord           \n" +
		";;-------------- ------------------ ------------------\n")
	for _, v := range vs {
		iw.print(v.inpLine() + "\n")
	}
}

// WritePolygons writes the [POLYGONS] section.
func WritePolygons(w io.Writer, vs []*PolygonVertex) error {
	iw := &inpWriter{w: w}
	writePolygons(iw, vs)
	return iw.err
}
