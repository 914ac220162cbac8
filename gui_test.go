package swmming

import (
	"strings"
	"testing"
)

func TestWriteMap(t *testing.T) {
	m, err := NewMap(Map{Dimensions: []float64{-50, -50, 300, 150}, Units: "METERS"})
	if err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	if err := WriteMap(&b, m); err != nil {
		t.Fatal(err)
	}
	want := "[MAP]\nDIMENSIONS -50.00 -50.00 300.00 150.00\nUNITS     METERS\n"
	if got := b.String(); got != want {
		t.Errorf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestMapValidation(t *testing.T) {
	if _, err := NewMap(Map{Dimensions: []float64{0, 0, 1}}); err == nil {
		t.Error("expected error for 3-element dimensions")
	}
	if _, err := NewMap(Map{Dimensions: []float64{0, 0, 1, 1}, Units: "FURLONGS"}); err == nil {
		t.Error("expected error for bad units")
	}
	m, err := NewMap(Map{Dimensions: []float64{0, 0, 1, 1}})
	if err != nil {
		t.Fatal(err)
	}
	if m.Units != "NONE" {
		t.Errorf("units default: got %q", m.Units)
	}
}

func TestWriteCoordinates(t *testing.T) {
	j1 := mustJunction(t, Junction{Name: "j1", Elevation: 10})
	j2 := mustJunction(t, Junction{Name: "j2", Elevation: 9})
	out1 := mustOutfall(t, Outfall{Name: "out1", Elevation: 8, Type: OutfallFree})

	var cs []*Coordinate
	for _, c := range []Coordinate{
		{Node: j1, Coord: []float64{0, 0}},
		{Node: j2, Coord: []float64{100, 0}},
		{Node: out1, Coord: []float64{250, 100}},
	} {
		cc, err := NewCoordinate(c)
		if err != nil {
			t.Fatal(err)
		}
		cs = append(cs, cc)
	}

	var b strings.Builder
	if err := WriteCoordinates(&b, cs); err != nil {
		t.Fatal(err)
	}
	want := "[COORDINATES]\n" +
		";;Node           X-Coord            Y-Coord           \n" +
		";;-------------- ------------------ ------------------\n" +
		"j1               0.000              0.000             \n" +
		"j2               100.000            0.000             \n" +
		"out1             250.000            100.000           \n"
	if got := b.String(); got != want {
		t.Errorf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestWriteVertices(t *testing.T) {
	j1 := mustJunction(t, Junction{Name: "j1", Elevation: 10})
	j2 := mustJunction(t, Junction{Name: "j2", Elevation: 9})
	c1 := mustConduit(t, Conduit{Name: "c1", FromNode: j1, ToNode: j2, Length: 100, Roughness: 0.015})

	v, err := NewLinkVertex(LinkVertex{Link: c1, Coord: []float64{150, 50}})
	if err != nil {
		t.Fatal(err)
	}

	var b strings.Builder
	if err := WriteVertices(&b, []*LinkVertex{v}); err != nil {
		t.Fatal(err)
	}
	want := "[VERTICES]\n" +
		";;Link           X-Coord            Y-Coord           \n" +
		";;-------------- ------------------ ------------------\n" +
		"c1               150.000            50.000            \n"
	if got := b.String(); got != want {
		t.Errorf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestWritePolygons(t *testing.T) {
	s1 := testSubcatchment(t, "s1")

	var vs []*PolygonVertex
	for _, xy := range [][2]float64{{0, 0}, {10, 0}, {10, 10}} {
		v, err := NewPolygonVertex(PolygonVertex{Subcatchment: s1, Coord: []float64{xy[0], xy[1]}})
		if err != nil {
			t.Fatal(err)
		}
		vs = append(vs, v)
	}

	var b strings.Builder
	if err := WritePolygons(&b, vs); err != nil {
		t.Fatal(err)
	}
	want := "[POLYGONS]\n" +
		";;Subcatchment   X-Coord            Y-Coord           \n" +
		";;-------------- ------------------ ------------------\n" +
		"s1               0.000              0.000             \n" +
		"s1               10.000             0.000             \n" +
		"s1               10.000             10.000            \n"
	if got := b.String(); got != want {
		t.Errorf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestWriteSymbolPoints(t *testing.T) {
	ts := mustTimeseries(t, Timeseries{Name: "ts1", Times: []float64{0}, Values: []float64{0}})
	rg := mustRaingage(t, Raingage{Name: "rg1", Form: "INTENSITY", Interval: "1:00", TSeries: ts})
	sp, err := NewSymbolPoint(SymbolPoint{Gage: rg, Coord: []float64{5, 15}})
	if err != nil {
		t.Fatal(err)
	}

	var b strings.Builder
	if err := WriteSymbolPoints(&b, []*SymbolPoint{sp}); err != nil {
		t.Fatal(err)
	}
	want := "[SYMBOLS]\n" +
		";;Rain Gage      X-Coord            Y-Coord           \n" +
		";;-------------- ------------------ ------------------\n" +
		"rg1              5.000              15.000            \n"
	if got := b.String(); got != want {
		t.Errorf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestCoordinatePairValidation(t *testing.T) {
	j := mustJunction(t, Junction{Name: "j1", Elevation: 1})
	if _, err := NewCoordinate(Coordinate{Node: j, Coord: []float64{1}}); err == nil {
		t.Error("expected error for 1-element coord")
	}
	if _, err := NewCoordinate(Coordinate{Coord: []float64{1, 2}}); err == nil {
		t.Error("expected error for missing node")
	}
	if _, err := NewLinkVertex(LinkVertex{Coord: []float64{1, 2}}); err == nil {
		t.Error("expected error for missing link")
	}
	if _, err := NewPolygonVertex(PolygonVertex{Coord: []float64{1, 2}}); err == nil {
		t.Error("expected error for missing subcatchment")
	}
	if _, err := NewSymbolPoint(SymbolPoint{Coord: []float64{1, 2}}); err == nil {
		t.Error("expected error for missing gage")
	}
}
