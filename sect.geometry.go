package swmming

import (
	"fmt"
	"io"

	"github.com/maseology/swmming/xshapes"
)

// Street describes the cross-section geometry of conduits that represent
// streets. With no depressed gutter (A = 0) the gutter width is ignored;
// with no backing the three backing parameters stay 0.
type Street struct {
	Name   string
	TCrown float64 // curb to crown distance
	HCurb  float64 // curb height
	Sx     float64 // cross slope, percent
	NRoad  float64 // Manning's n of the road surface
	A      float64 // gutter depression height
	W      float64 // depressed gutter width
	Sides  int     // 1 or 2
	TBack  float64 // backing width
	SBack  float64 // backing slope, percent
	NBack  float64 // backing Manning's n
}

func NewStreet(s Street) (*Street, error) {
	if s.Name == "" {
		return nil, invalid("Street", s.Name, "name must not be empty")
	}
	if s.Sides == 0 {
		s.Sides = 1
	}
	if s.Sides != 1 && s.Sides != 2 {
		return nil, invalid("Street", s.Name, "sides must be 1 or 2")
	}
	return &s, nil
}

func (s *Street) inpLine() string {
	return fmt.Sprintf("%-16s %-8.2f %-8.2f %-8.4f %-8.4f %-8.2f %-8.2f %-8d %-8.2f %-8.4f %-8.4f",
		s.Name, s.TCrown, s.HCurb, s.Sx, s.NRoad, s.A, s.W, s.Sides, s.TBack, s.SBack, s.NBack)
}

func writeStreets(iw *inpWriter, ss []*Street) {
	iw.print("[STREETS]\n" +
		";;Name           Tcrown   Hcurb    Sx       nRoad    a        W        Sides    Tback    Sback    nBack   \n" +
		";;-------------- -------- -------- -------- -------- -------- -------- -------- -------- -------- --------\n")
	for _, s := range ss {
		iw.print(s.inpLine() + "\n")
	}
}

// WriteStreets writes the [STREETS] section.
func WriteStreets(w io.Writer, ss []*Street) error {
	iw := &inpWriter{w: w}
	writeStreets(iw, ss)
	return iw.err
}

// Transect describes the cross-section geometry of a natural channel in
// the HEC-2 data format. XLeft and XRight mark the stations ending the
// left overbank and beginning the right overbank.
type Transect struct {
	Name            string
	Station         []float64
	Elevation       []float64
	NLeft           float64
	NRight          float64
	NChannel        float64
	XLeft           float64
	XRight          float64
	MeanderModifier float64
	StationModifier float64
	ElevOffset      float64

	nStations int
}

func NewTransect(t Transect) (*Transect, error) {
	if t.Name == "" {
		return nil, invalid("Transect", t.Name, "name must not be empty")
	}
	if len(t.Elevation) != len(t.Station) {
		return nil, invalid("Transect", t.Name, "elevation and station must be the same length")
	}
	if !containsFloat(t.Station, t.XLeft) {
		return nil, invalid("Transect", t.Name, "xleft must be in station")
	}
	if !containsFloat(t.Station, t.XRight) {
		return nil, invalid("Transect", t.Name, "xright must be in station")
	}
	t.nStations = len(t.Elevation)
	return &t, nil
}

func containsFloat(vs []float64, v float64) bool {
	for _, u := range vs {
		if u == v {
			return true
		}
	}
	return false
}

func writeTransects(iw *inpWriter, ts []*Transect) {
	iw.print("[TRANSECTS]\n;;Transect Data in HEC-2 format\n")
	for _, tr := range ts {
		iw.print(";\n")
		iw.printf("NC %-11.4f %-10.4f %-10.4f\n", tr.NLeft, tr.NRight, tr.NChannel)
		iw.printf("X1 %-17s %-8d %-8.2f %-8.2f 0.0      0.0      %-8.2f %-8.2f %-8s\n",
			tr.Name, tr.nStations, tr.XLeft, tr.XRight,
			tr.MeanderModifier, tr.StationModifier, pyfloat(tr.ElevOffset))
		for i := 0; i < tr.nStations; i += 5 {
			end := i + 5
			if end > tr.nStations {
				end = tr.nStations
			}
			iw.print("GR ")
			for j := i; j < end; j++ {
				iw.printf("%-8.2f %-8.2f ", tr.Elevation[j], tr.Station[j])
			}
			iw.print("\n")
		}
	}
}

// WriteTransects writes the [TRANSECTS] section.
func WriteTransects(w io.Writer, ts []*Transect) error {
	iw := &inpWriter{w: w}
	writeTransects(iw, ts)
	return iw.err
}

// XSection provides cross-section geometric data for a conduit or
// regulator link. The shape decides which reference is required: Custom
// needs a shape Curve, Irregular a Transect, Street a Street record;
// the geometric shapes carry their own dimensions.
type XSection struct {
	Link    Link
	Shape   xshapes.Shape
	Barrels int
	Culvert string // culvert inlet geometry code, blank otherwise
	Curve   *Curve
	TSect   *Transect
	Street  *Street
}

func NewXSection(x XSection) (*XSection, error) {
	if x.Link == nil {
		return nil, invalid("XSection", "", "link must be a link, like a Conduit")
	}
	if x.Shape == nil {
		return nil, invalid("XSection", x.Link.LinkName(), "shape must be a cross-section shape")
	}
	switch x.Shape.(type) {
	case xshapes.Custom:
		if x.Curve == nil {
			return nil, invalid("XSection", x.Link.LinkName(), "curve must be a Curve if the shape is Custom")
		}
	case xshapes.Street:
		if x.Street == nil {
			return nil, invalid("XSection", x.Link.LinkName(), "street must be a Street if the shape is Street")
		}
	case xshapes.Irregular:
		if x.TSect == nil {
			return nil, invalid("XSection", x.Link.LinkName(), "tsect must be a Transect if the shape is Irregular")
		}
	}
	if x.Barrels == 0 {
		x.Barrels = 1
	}
	return &x, nil
}

func (x *XSection) inpLine() string {
	switch x.Shape.(type) {
	case xshapes.Custom:
		return fmt.Sprintf("%-16s %s %-16s %-10d", x.Link.LinkName(), x.Shape.InpFields(), x.Curve.Name, x.Barrels)
	case xshapes.Irregular:
		return fmt.Sprintf("%-16s %s %-16s", x.Link.LinkName(), x.Shape.InpFields(), x.TSect.Name)
	case xshapes.Street:
		return fmt.Sprintf("%-16s %s %-16s", x.Link.LinkName(), x.Shape.InpFields(), x.Street.Name)
	}
	return fmt.Sprintf("%-16s %s %-10d %-10s", x.Link.LinkName(), x.Shape.InpFields(), x.Barrels, x.Culvert)
}

func writeXSections(iw *inpWriter, xs []*XSection) {
	iw.print("[XSECTIONS]\n" +
		";;Link           Shape        Geom1            Geom2      Geom3      Geom4      Barrels    Culvert   \n" +
		";;-------------- ------------ ---------------- ---------- ---------- ---------- ---------- ----------\n")
	for _, x := range xs {
		iw.print(x.inpLine() + "\n")
	}
}

// WriteXSections writes the [XSECTIONS] section.
func WriteXSections(w io.Writer, xs []*XSection) error {
	iw := &inpWriter{w: w}
	writeXSections(iw, xs)
	return iw.err
}

// Inlet defines an inlet structure design that captures street or
// channel flow into below-ground sewers. GRATE, CURB and SLOTTED inlets
// go with STREET conduits, DROP_GRATE and DROP_CURB with open channels,
// CUSTOM with any conduit.
type Inlet struct {
	Name      string
	Type      string // GRATE, DROP_GRATE, CURB, DROP_CURB, SLOTTED or CUSTOM
	Length    *float64
	Width     *float64
	Height    *float64
	GrateType string   // P_BAR-50, P_BAR-50X100, P_BAR-30, CURVED_VANE, TILT_BAR-45, TILT_BAR-30, RETICULINE or GENERIC
	AOpen     *float64 // open area fraction of a GENERIC grate
	VSplash   *float64 // splash-over velocity of a GENERIC grate
	Throat    string   // HORIZONTAL, INCLINED or VERTICAL
	DCurve    *Curve   // diversion curve for a CUSTOM inlet
	RCurve    *Curve   // rating curve for a CUSTOM inlet
}

func NewInlet(n Inlet) (*Inlet, error) {
	if n.Name == "" {
		return nil, invalid("Inlet", n.Name, "name must not be empty")
	}
	switch n.Type {
	case "GRATE", "DROP_GRATE":
		if n.Length == nil {
			return nil, invalid("Inlet", n.Name, "length must be specified for GRATE and DROP_GRATE inlets")
		}
		if n.Width == nil {
			return nil, invalid("Inlet", n.Name, "width must be specified for GRATE and DROP_GRATE inlets")
		}
		if n.GrateType == "" {
			return nil, invalid("Inlet", n.Name, "grate type must be specified for GRATE and DROP_GRATE inlets")
		}
		if n.GrateType == "GENERIC" {
			if n.AOpen == nil {
				return nil, invalid("Inlet", n.Name, "aopen must be specified for GENERIC grates")
			}
			if n.VSplash == nil {
				return nil, invalid("Inlet", n.Name, "vsplash must be specified for GENERIC grates")
			}
		}
	case "CURB", "DROP_CURB":
		if n.Length == nil {
			return nil, invalid("Inlet", n.Name, "length must be specified for CURB and DROP_CURB inlets")
		}
		if n.Height == nil {
			return nil, invalid("Inlet", n.Name, "height must be specified for CURB and DROP_CURB inlets")
		}
		if n.Throat == "" && n.Type == "CURB" {
			return nil, invalid("Inlet", n.Name, "throat must be specified for CURB inlets")
		}
	case "SLOTTED":
		if n.Length == nil {
			return nil, invalid("Inlet", n.Name, "length must be specified for SLOTTED inlets")
		}
		if n.Width == nil {
			return nil, invalid("Inlet", n.Name, "width must be specified for SLOTTED inlets")
		}
	case "CUSTOM":
		if n.DCurve == nil && n.RCurve == nil {
			return nil, invalid("Inlet", n.Name, "a dcurve or rcurve must be specified for CUSTOM inlets")
		}
		if n.DCurve != nil && n.RCurve != nil {
			return nil, invalid("Inlet", n.Name, "specify only one of dcurve or rcurve for CUSTOM inlets")
		}
	default:
		return nil, invalid("Inlet", n.Name, "type must be one of GRATE, DROP_GRATE, CURB, DROP_CURB, SLOTTED, CUSTOM")
	}
	return &n, nil
}

func (n *Inlet) inpLine() string {
	switch n.Type {
	case "GRATE", "DROP_GRATE":
		if n.GrateType == "GENERIC" {
			return fmt.Sprintf("%-16s %-16s %-9.2f %-9.2f %-12s %-9.2f %-9.2f",
				n.Name, n.Type, *n.Length, *n.Width, n.GrateType, *n.AOpen, *n.VSplash)
		}
		return fmt.Sprintf("%-16s %-16s %-9.2f %-9.2f %-12s", n.Name, n.Type, *n.Length, *n.Width, n.GrateType)
	case "CURB":
		return fmt.Sprintf("%-16s %-16s %-9.2f %-9.2f %-12s", n.Name, n.Type, *n.Length, *n.Height, n.Throat)
	case "DROP_CURB":
		return fmt.Sprintf("%-16s %-16s %-9.2f %-9.2f", n.Name, n.Type, *n.Length, *n.Height)
	case "SLOTTED":
		return fmt.Sprintf("%-16s %-16s %-9.2f %-9.2f", n.Name, n.Type, *n.Length, *n.Width)
	}
	curve := n.DCurve
	if curve == nil {
		curve = n.RCurve
	}
	return fmt.Sprintf("%-16s %-16s %-16s", n.Name, n.Type, curve.Name)
}

func writeInlets(iw *inpWriter, ns []*Inlet) {
	iw.print("[INLETS]\n" +
		";;Name           Type             Parameters:\n" +
		";;-------------- ---------------- -----------\n")
	for _, n := range ns {
		iw.print(n.inpLine() + "\n")
	}
}

// WriteInlets writes the [INLETS] section.
func WriteInlets(w io.Writer, ns []*Inlet) error {
	iw := &inpWriter{w: w}
	writeInlets(iw, ns)
	return iw.err
}

// InletUsage assigns an inlet structure to a street or open channel
// conduit, sending the captured flow to a receiver node.
type InletUsage struct {
	Conduit        Link
	Inlet          *Inlet
	Node           Node
	Number         int // replicate inlets per street side
	PercentClogged float64
	QMax           float64 // 0 means no capture restriction
	ALocal         float64 // local gutter depression height
	WLocal         float64 // local gutter depression width
	Placement      string  // AUTOMATIC, ON_GRADE or ON_SAG
}

func NewInletUsage(u InletUsage) (*InletUsage, error) {
	if u.Conduit == nil {
		return nil, invalid("InletUsage", "", "conduit must be a link, like a Conduit")
	}
	if u.Inlet == nil {
		return nil, invalid("InletUsage", u.Conduit.LinkName(), "inlet must be an Inlet")
	}
	if u.Node == nil {
		return nil, invalid("InletUsage", u.Conduit.LinkName(), "node must be a node, like a Junction")
	}
	if u.Number == 0 {
		u.Number = 1
	}
	if u.Placement == "" {
		u.Placement = "AUTOMATIC"
	}
	switch u.Placement {
	case "AUTOMATIC", "ON_GRADE", "ON_SAG":
	default:
		return nil, invalid("InletUsage", u.Conduit.LinkName(), "placement must be one of AUTOMATIC, ON_GRADE, ON_SAG")
	}
	return &u, nil
}

func (u *InletUsage) inpLine() string {
	return fmt.Sprintf("%-16s %-16s %-16s %-9d %-9.2f %-9.2f %-9.2f %-9.2f %-19s",
		u.Conduit.LinkName(), u.Inlet.Name, u.Node.NodeName(),
		u.Number, u.PercentClogged, u.QMax, u.ALocal, u.WLocal, u.Placement)
}

func writeInletUsages(iw *inpWriter, us []*InletUsage) {
	iw.print("[INLET_USAGE]\n" +
		";;Conduit        Inlet            Node             Number    %Clogged  Qmax      aLocal    wLocal    Placement\n" +
		";;-------------- ---------------- ---------------- --------- --------- --------- --------- --------- --------- ---------\n")
	for _, u := range us {
		iw.print(u.inpLine() + "\n")
	}
}

// WriteInletUsages writes the [INLET_USAGE] section.
func WriteInletUsages(w io.Writer, us []*InletUsage) error {
	iw := &inpWriter{w: w}
	writeInletUsages(iw, us)
	return iw.err
}

// Loss sets minor losses on a conduit. Recognized by the .inp format but
// not yet buildable.
type Loss struct{}

func NewLoss() (*Loss, error) {
	return nil, notImplemented("Loss")
}

// Control is a rule-based control statement. Recognized by the .inp
// format but not yet buildable.
type Control struct{}

func NewControl() (*Control, error) {
	return nil, notImplemented("Control")
}
