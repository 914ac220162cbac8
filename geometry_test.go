package swmming

import (
	"errors"
	"strings"
	"testing"

	"github.com/maseology/swmming/xshapes"
)

func mustStreet(t *testing.T, s Street) *Street {
	t.Helper()
	out, err := NewStreet(s)
	if err != nil {
		t.Fatalf("NewStreet(%s): %v", s.Name, err)
	}
	return out
}

func mustTransect(t *testing.T, tr Transect) *Transect {
	t.Helper()
	out, err := NewTransect(tr)
	if err != nil {
		t.Fatalf("NewTransect(%s): %v", tr.Name, err)
	}
	return out
}

func mustXSection(t *testing.T, x XSection) *XSection {
	t.Helper()
	out, err := NewXSection(x)
	if err != nil {
		t.Fatalf("NewXSection: %v", err)
	}
	return out
}

func mustInlet(t *testing.T, n Inlet) *Inlet {
	t.Helper()
	out, err := NewInlet(n)
	if err != nil {
		t.Fatalf("NewInlet(%s): %v", n.Name, err)
	}
	return out
}

func testConduitPair(t *testing.T) (*Conduit, *Conduit) {
	t.Helper()
	j1 := mustJunction(t, Junction{Name: "j1", Elevation: 5})
	j2 := mustJunction(t, Junction{Name: "j2", Elevation: 0})
	out1 := mustOutfall(t, Outfall{Name: "out1", Elevation: -1})
	c1 := mustConduit(t, Conduit{Name: "c1", FromNode: j1, ToNode: j2, Length: 100, Roughness: 0.015})
	c2 := mustConduit(t, Conduit{Name: "c2", FromNode: j1, ToNode: out1, Length: 120, Roughness: 0.010})
	return c1, c2
}

func TestWriteStreets(t *testing.T) {
	s := mustStreet(t, Street{Name: "street1", TCrown: 0.2, HCurb: 0.1, Sx: 0.1, NRoad: 0.05})

	var b strings.Builder
	if err := WriteStreets(&b, []*Street{s}); err != nil {
		t.Fatal(err)
	}
	want := "[STREETS]\n" +
		";;Name           Tcrown   Hcurb    Sx       nRoad    a        W        Sides    Tback    Sback    nBack   \n" +
		";;-------------- -------- -------- -------- -------- -------- -------- -------- -------- -------- --------\n" +
		"street1          0.20     0.10     0.1000   0.0500   0.00     0.00     1        0.00     0.0000   0.0000  \n"
	if got := b.String(); got != want {
		t.Errorf("got:\n%q\nwant:\n%q", got, want)
	}
}

func testTransect1(t *testing.T) *Transect {
	t.Helper()
	station := make([]float64, 11)
	for i := range station {
		station[i] = float64(i)
	}
	elevation := []float64{10, 9, 8, 7, 6, 5, 6, 7, 8, 9, 10}
	return mustTransect(t, Transect{
		Name: "transect1", Station: station, Elevation: elevation,
		NLeft: 0.020, NRight: 0.020, NChannel: 0.010,
		XLeft: 1, XRight: 3, StationModifier: 0.80,
	})
}

func TestWriteTransects(t *testing.T) {
	tr := testTransect1(t)

	var b strings.Builder
	if err := WriteTransects(&b, []*Transect{tr}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(b.String(), "\n")

	if lines[0] != "[TRANSECTS]" {
		t.Errorf("header: got %q", lines[0])
	}
	if got := strings.TrimRight(lines[3], " "); got != "NC 0.0200      0.0200     0.0100" {
		t.Errorf("NC line: got %q", got)
	}
	if got := strings.TrimRight(lines[4], " "); got != "X1 transect1         11       1.00     3.00     0.0      0.0      0.00     0.80     0.0" {
		t.Errorf("X1 line: got %q", got)
	}

	var gr []string
	for _, ln := range lines {
		if strings.HasPrefix(ln, "GR ") {
			gr = append(gr, ln)
		}
	}
	if len(gr) != 3 {
		t.Fatalf("expected 3 GR lines for 11 stations, got %d", len(gr))
	}
	if got := strings.TrimRight(gr[0], " "); got != "GR 10.00    0.00     9.00     1.00     8.00     2.00     7.00     3.00     6.00     4.00" {
		t.Errorf("first GR line: got %q", got)
	}
	if got := strings.TrimRight(gr[2], " "); got != "GR 10.00    10.00" {
		t.Errorf("last GR line: got %q", got)
	}
}

func TestTransectValidation(t *testing.T) {
	if _, err := NewTransect(Transect{Name: "t1", Station: []float64{0, 1}, Elevation: []float64{5}, XLeft: 0, XRight: 1}); err == nil {
		t.Error("expected error for length mismatch")
	}
	if _, err := NewTransect(Transect{Name: "t1", Station: []float64{0, 1, 2}, Elevation: []float64{5, 4, 5}, XLeft: 7, XRight: 2}); err == nil {
		t.Error("expected error for xleft not a station")
	}
	if _, err := NewTransect(Transect{Name: "t1", Station: []float64{0, 1, 2}, Elevation: []float64{5, 4, 5}, XLeft: 0, XRight: 9}); err == nil {
		t.Error("expected error for xright not a station")
	}
}

func TestWriteXSectionsIrregular(t *testing.T) {
	c1, c2 := testConduitPair(t)
	tr := testTransect1(t)

	x1 := mustXSection(t, XSection{Link: c1, Shape: xshapes.Irregular{}, TSect: tr})
	x2 := mustXSection(t, XSection{Link: c2, Shape: xshapes.Irregular{}, TSect: tr})

	var b strings.Builder
	if err := WriteXSections(&b, []*XSection{x1, x2}); err != nil {
		t.Fatal(err)
	}
	want := "[XSECTIONS]\n" +
		";;Link           Shape        Geom1            Geom2      Geom3      Geom4      Barrels    Culvert   \n" +
		";;-------------- ------------ ---------------- ---------- ---------- ---------- ---------- ----------\n" +
		"c1               IRREGULAR    transect1       \n" +
		"c2               IRREGULAR    transect1       \n"
	if got := b.String(); got != want {
		t.Errorf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestXSectionStreetLine(t *testing.T) {
	c1, _ := testConduitPair(t)
	s := mustStreet(t, Street{Name: "street1", TCrown: 0.2, HCurb: 0.1, Sx: 0.1, NRoad: 0.05})
	x := mustXSection(t, XSection{Link: c1, Shape: xshapes.Street{}, Street: s})
	want := "c1               STREET       street1         "
	if got := x.inpLine(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestXSectionGeometricLines(t *testing.T) {
	c1, c2 := testConduitPair(t)

	circ := mustXSection(t, XSection{Link: c1, Shape: xshapes.Circular{Diameter: 10}})
	want := "c1               CIRCULAR     10.00            0.00       0.00       0.00       1                    "
	if got := circ.inpLine(); got != want {
		t.Errorf("circular: got %q, want %q", got, want)
	}

	trap := mustXSection(t, XSection{Link: c2, Shape: xshapes.Trapezoidal{FullHeight: 10, BaseWidth: 5, LeftSlope: 2, RightSlope: 2.5}, Barrels: 2, Culvert: "3"})
	want = "c2               TRAPEZOIDAL  10.00            5.00       2.00       2.50       2          3         "
	if got := trap.inpLine(); got != want {
		t.Errorf("trapezoidal: got %q, want %q", got, want)
	}
}

func TestXSectionCustomLine(t *testing.T) {
	c1, _ := testConduitPair(t)
	x := mustXSection(t, XSection{Link: c1, Shape: xshapes.Custom{}, Curve: &Curve{Name: "shape1"}})
	want := "c1               CUSTOM       shape1           1         "
	if got := x.inpLine(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestXSectionReferenceValidation(t *testing.T) {
	c1, _ := testConduitPair(t)
	if _, err := NewXSection(XSection{Link: c1, Shape: xshapes.Custom{}}); err == nil {
		t.Error("expected error for Custom without curve")
	}
	if _, err := NewXSection(XSection{Link: c1, Shape: xshapes.Irregular{}}); err == nil {
		t.Error("expected error for Irregular without transect")
	}
	if _, err := NewXSection(XSection{Link: c1, Shape: xshapes.Street{}}); err == nil {
		t.Error("expected error for Street without street")
	}
	if _, err := NewXSection(XSection{Shape: xshapes.Circular{Diameter: 1}}); err == nil {
		t.Error("expected error for missing link")
	}
}

func TestWriteInlets(t *testing.T) {
	in1 := mustInlet(t, Inlet{Name: "inlet1", Type: "GRATE", Length: Float(2), Width: Float(0.75), GrateType: "P_BAR-50"})
	in2 := mustInlet(t, Inlet{Name: "inlet2", Type: "CURB", Length: Float(1.2), Height: Float(4.8), Throat: "HORIZONTAL"})

	var b strings.Builder
	if err := WriteInlets(&b, []*Inlet{in1, in2}); err != nil {
		t.Fatal(err)
	}
	want := "[INLETS]\n" +
		";;Name           Type             Parameters:\n" +
		";;-------------- ---------------- -----------\n" +
		"inlet1           GRATE            2.00      0.75      P_BAR-50    \n" +
		"inlet2           CURB             1.20      4.80      HORIZONTAL  \n"
	if got := b.String(); got != want {
		t.Errorf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestInletVariants(t *testing.T) {
	generic := mustInlet(t, Inlet{Name: "g1", Type: "GRATE", Length: Float(2), Width: Float(1),
		GrateType: "GENERIC", AOpen: Float(0.5), VSplash: Float(3)})
	if got := generic.inpLine(); got != "g1               GRATE            2.00      1.00      GENERIC      0.50      3.00     " {
		t.Errorf("generic grate: got %q", got)
	}

	drop := mustInlet(t, Inlet{Name: "d1", Type: "DROP_CURB", Length: Float(1.5), Height: Float(2)})
	if got := drop.inpLine(); got != "d1               DROP_CURB        1.50      2.00     " {
		t.Errorf("drop curb: got %q", got)
	}

	slot := mustInlet(t, Inlet{Name: "sl1", Type: "SLOTTED", Length: Float(3), Width: Float(0.5)})
	if got := slot.inpLine(); got != "sl1              SLOTTED          3.00      0.50     " {
		t.Errorf("slotted: got %q", got)
	}

	custom := mustInlet(t, Inlet{Name: "cu1", Type: "CUSTOM", RCurve: &Curve{Name: "rc1"}})
	if got := custom.inpLine(); got != "cu1              CUSTOM           rc1             " {
		t.Errorf("custom: got %q", got)
	}
}

func TestInletValidation(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   Inlet
	}{
		{"grate missing length", Inlet{Name: "i", Type: "GRATE", Width: Float(1), GrateType: "RETICULINE"}},
		{"grate missing width", Inlet{Name: "i", Type: "GRATE", Length: Float(1), GrateType: "RETICULINE"}},
		{"grate missing grate type", Inlet{Name: "i", Type: "DROP_GRATE", Length: Float(1), Width: Float(1)}},
		{"generic missing aopen", Inlet{Name: "i", Type: "GRATE", Length: Float(1), Width: Float(1), GrateType: "GENERIC", VSplash: Float(1)}},
		{"generic missing vsplash", Inlet{Name: "i", Type: "GRATE", Length: Float(1), Width: Float(1), GrateType: "GENERIC", AOpen: Float(1)}},
		{"curb missing height", Inlet{Name: "i", Type: "CURB", Length: Float(1), Throat: "VERTICAL"}},
		{"curb missing throat", Inlet{Name: "i", Type: "CURB", Length: Float(1), Height: Float(1)}},
		{"slotted missing width", Inlet{Name: "i", Type: "SLOTTED", Length: Float(1)}},
		{"custom no curve", Inlet{Name: "i", Type: "CUSTOM"}},
		{"custom both curves", Inlet{Name: "i", Type: "CUSTOM", DCurve: &Curve{Name: "d"}, RCurve: &Curve{Name: "r"}}},
		{"unknown type", Inlet{Name: "i", Type: "MANHOLE"}},
	} {
		if _, err := NewInlet(tc.in); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}

	if _, err := NewInlet(Inlet{Name: "i", Type: "DROP_CURB", Length: Float(1), Height: Float(1)}); err != nil {
		t.Errorf("drop curb without throat: %v", err)
	}
}

func TestWriteInletUsages(t *testing.T) {
	j1 := mustJunction(t, Junction{Name: "j1", Elevation: 100})
	j2 := mustJunction(t, Junction{Name: "j2", Elevation: 99.5})
	c1 := mustConduit(t, Conduit{Name: "conduit1", FromNode: j1, ToNode: j2, Length: 100, Roughness: 0.015})
	in1 := mustInlet(t, Inlet{Name: "inlet1", Type: "GRATE", Length: Float(2), Width: Float(0.75), GrateType: "P_BAR-50"})
	in2 := mustInlet(t, Inlet{Name: "inlet2", Type: "CURB", Length: Float(1.2), Height: Float(4.8), Throat: "HORIZONTAL"})

	u1, err := NewInletUsage(InletUsage{Conduit: c1, Inlet: in1, Node: j2, PercentClogged: 25})
	if err != nil {
		t.Fatal(err)
	}
	u2, err := NewInletUsage(InletUsage{Conduit: c1, Inlet: in2, Node: j2})
	if err != nil {
		t.Fatal(err)
	}

	var b strings.Builder
	if err := WriteInletUsages(&b, []*InletUsage{u1, u2}); err != nil {
		t.Fatal(err)
	}
	want := "[INLET_USAGE]\n" +
		";;Conduit        Inlet            Node             Number    %Clogged  Qmax      aLocal    wLocal    Placement\n" +
		";;-------------- ---------------- ---------------- --------- --------- --------- --------- --------- --------- ---------\n" +
		"conduit1         inlet1           j2               1         25.00     0.00      0.00      0.00      AUTOMATIC          \n" +
		"conduit1         inlet2           j2               1         0.00      0.00      0.00      0.00      AUTOMATIC          \n"
	if got := b.String(); got != want {
		t.Errorf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestInletUsageValidation(t *testing.T) {
	j := mustJunction(t, Junction{Name: "j1", Elevation: 1})
	in := mustInlet(t, Inlet{Name: "i1", Type: "SLOTTED", Length: Float(1), Width: Float(1)})

	if _, err := NewInletUsage(InletUsage{Inlet: in, Node: j}); err == nil {
		t.Error("expected error for missing conduit")
	}
	c := mustConduit(t, Conduit{Name: "c1", FromNode: j, ToNode: mustJunction(t, Junction{Name: "j2"}), Length: 1, Roughness: 0.01})
	if _, err := NewInletUsage(InletUsage{Conduit: c, Node: j}); err == nil {
		t.Error("expected error for missing inlet")
	}
	if _, err := NewInletUsage(InletUsage{Conduit: c, Inlet: in}); err == nil {
		t.Error("expected error for missing node")
	}
	if _, err := NewInletUsage(InletUsage{Conduit: c, Inlet: in, Node: j, Placement: "SIDEWAYS"}); err == nil {
		t.Error("expected error for bad placement")
	}
}

func TestLossControlUnsupported(t *testing.T) {
	if _, err := NewLoss(); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("NewLoss: got %v", err)
	}
	if _, err := NewControl(); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("NewControl: got %v", err)
	}
}
