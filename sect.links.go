package swmming

import (
	"fmt"
	"io"
	"strings"
)

// Conduit is a pipe or channel conveying water between two nodes.
type Conduit struct {
	Name      string
	FromNode  Node
	ToNode    Node
	Length    float64
	Roughness float64 // Manning's n
	InOffset  float64
	OutOffset float64
	InitFlow  float64
	MaxFlow   *float64 // nil renders as a blank column (no limit)
}

func (c *Conduit) LinkName() string { return c.Name }

func NewConduit(c Conduit) (*Conduit, error) {
	if c.Name == "" {
		return nil, invalid("Conduit", c.Name, "name must not be empty")
	}
	if c.FromNode == nil {
		return nil, invalid("Conduit", c.Name, "from node must be a node, like a Junction or an Outfall")
	}
	if c.ToNode == nil {
		return nil, invalid("Conduit", c.Name, "to node must be a node, like a Junction or an Outfall")
	}
	return &c, nil
}

func (c *Conduit) inpLine() string {
	mf := strings.Repeat(" ", 10)
	if c.MaxFlow != nil {
		mf = fmt.Sprintf("%-10.2f", *c.MaxFlow)
	}
	return fmt.Sprintf("%-16s %-16s %-16s %-10.2f %-10.5f %-10.2f %-10.2f %-10.2f %s",
		c.Name, c.FromNode.NodeName(), c.ToNode.NodeName(),
		c.Length, c.Roughness, c.InOffset, c.OutOffset, c.InitFlow, mf)
}

func writeConduits(iw *inpWriter, cs []*Conduit) {
	iw.print("[CONDUITS]\n" +
		";;Name           From Node        To Node          Length     Roughness  InOffset   OutOffset  InitFlow   MaxFlow   \n" +
		";;-------------- ---------------- ---------------- ---------- ---------- ---------- ---------- ---------- ----------\n")
	for _, c := range cs {
		iw.print(c.inpLine() + "\n")
	}
}

// WriteConduits writes the [CONDUITS] section.
func WriteConduits(w io.Writer, cs []*Conduit) error {
	iw := &inpWriter{w: w}
	writeConduits(iw, cs)
	return iw.err
}

// Pump lifts water between two nodes following a pump Curve.
type Pump struct {
	Name          string
	FromNode      Node
	ToNode        Node
	PCurve        *Curve
	Status        string // ON or OFF
	StartupDepth  float64
	ShutdownDepth float64
}

func (p *Pump) LinkName() string { return p.Name }

func NewPump(p Pump) (*Pump, error) {
	if p.Name == "" {
		return nil, invalid("Pump", p.Name, "name must not be empty")
	}
	if p.FromNode == nil {
		return nil, invalid("Pump", p.Name, "from node must be a node, like a Junction or an Outfall")
	}
	if p.ToNode == nil {
		return nil, invalid("Pump", p.Name, "to node must be a node, like a Junction or an Outfall")
	}
	if p.PCurve == nil {
		return nil, invalid("Pump", p.Name, "pump curve must be a Curve")
	}
	if p.Status == "" {
		p.Status = "ON"
	}
	if p.Status != "ON" && p.Status != "OFF" {
		return nil, invalid("Pump", p.Name, "status must be one of ON, OFF")
	}
	return &p, nil
}

// Orifice is an orifice link. Recognized by the .inp format but not yet
// buildable.
type Orifice struct {
	Name      string
	FromNode  Node
	ToNode    Node
	Type      string // SIDE or BOTTOM
	Offset    float64
	Cd        float64
	FlapGate  string
	CloseTime float64
}

func (o *Orifice) LinkName() string { return o.Name }

func NewOrifice(o Orifice) (*Orifice, error) {
	return nil, notImplemented("Orifice")
}

// Weir is a weir link. A ROADWAY weir models roadway overtopping and
// overrides the flap gate, end contractions, secondary coefficient and
// surcharge settings.
type Weir struct {
	Name            string
	FromNode        Node
	ToNode          Node
	Type            string // TRANSVERSE, SIDEFLOW, V-NOTCH, TRAPEZOIDAL or ROADWAY
	CrestHeight     float64
	Cd              float64
	FlapGate        string
	EndContractions int
	Cd2             *float64 // defaults to Cd
	Surcharge       string
	RoadWidth       *float64
	RoadSurface     string // PAVED or GRAVEL
}

func (w *Weir) LinkName() string { return w.Name }

func NewWeir(w Weir) (*Weir, error) {
	if w.Name == "" {
		return nil, invalid("Weir", w.Name, "name must not be empty")
	}
	if w.FromNode == nil {
		return nil, invalid("Weir", w.Name, "from node must be a node, like a Junction or an Outfall")
	}
	if w.ToNode == nil {
		return nil, invalid("Weir", w.Name, "to node must be a node, like a Junction or an Outfall")
	}
	switch w.Type {
	case "TRANSVERSE", "SIDEFLOW", "V-NOTCH", "TRAPEZOIDAL", "ROADWAY":
	default:
		return nil, invalid("Weir", w.Name, "type must be one of TRANSVERSE, SIDEFLOW, V-NOTCH, TRAPEZOIDAL, ROADWAY")
	}
	if w.FlapGate == "" {
		w.FlapGate = "NO"
	}
	if w.Surcharge == "" {
		w.Surcharge = "YES"
	}
	if w.Cd2 == nil {
		w.Cd2 = Float(w.Cd)
	}
	if w.Type == "ROADWAY" {
		w.FlapGate = "NO"
		w.EndContractions = 0
		w.Cd2 = Float(0)
		w.Surcharge = "NO"
		if w.RoadWidth == nil || w.RoadSurface == "" {
			return nil, invalid("Weir", w.Name, "both road width and road surface must be specified for a ROADWAY weir")
		}
		if w.RoadSurface != "PAVED" && w.RoadSurface != "GRAVEL" {
			return nil, invalid("Weir", w.Name, "road surface must be one of PAVED, GRAVEL")
		}
	}
	if !yesno(w.FlapGate) {
		return nil, invalid("Weir", w.Name, "flap gate must be one of YES, NO")
	}
	if !yesno(w.Surcharge) {
		return nil, invalid("Weir", w.Name, "surcharge must be one of YES, NO")
	}
	return &w, nil
}

// Outlet is an outlet link with a rating relation. FUNCTIONAL types use
// a coefficient/exponent pair, TABULAR types a rating Curve.
type Outlet struct {
	Name     string
	FromNode Node
	ToNode   Node
	Offset   float64
	Type     string // TABULAR/DEPTH, TABULAR/HEAD, FUNCTIONAL/DEPTH or FUNCTIONAL/HEAD
	QCurve   *Curve
	Coeffs   []float64 // coefficient and exponent for a FUNCTIONAL outlet
	FlapGate string
}

func (o *Outlet) LinkName() string { return o.Name }

func NewOutlet(o Outlet) (*Outlet, error) {
	if o.Name == "" {
		return nil, invalid("Outlet", o.Name, "name must not be empty")
	}
	if o.FromNode == nil {
		return nil, invalid("Outlet", o.Name, "from node must be a node, like a Junction or an Outfall")
	}
	if o.ToNode == nil {
		return nil, invalid("Outlet", o.Name, "to node must be a node, like a Junction or an Outfall")
	}
	switch o.Type {
	case "FUNCTIONAL/DEPTH", "FUNCTIONAL/HEAD":
		if len(o.Coeffs) != 2 {
			return nil, invalid("Outlet", o.Name, "a coefficient and exponent pair must be specified for a FUNCTIONAL outlet")
		}
	case "TABULAR/DEPTH", "TABULAR/HEAD":
		if o.QCurve == nil {
			return nil, invalid("Outlet", o.Name, "rating curve must be a Curve for a TABULAR outlet")
		}
	default:
		return nil, invalid("Outlet", o.Name, "type must be one of TABULAR/DEPTH, TABULAR/HEAD, FUNCTIONAL/DEPTH, FUNCTIONAL/HEAD")
	}
	if o.FlapGate == "" {
		o.FlapGate = "NO"
	}
	if !yesno(o.FlapGate) {
		return nil, invalid("Outlet", o.Name, "flap gate must be one of YES, NO")
	}
	return &o, nil
}
