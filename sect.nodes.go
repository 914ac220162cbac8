package swmming

import (
	"fmt"
	"io"
	"strings"
)

// Junction is a point where channels and pipes connect.
type Junction struct {
	Name      string
	Elevation float64
	MaxDepth  float64
	InitDepth float64
	SurDepth  float64
	Aponded   float64
}

func (j *Junction) NodeName() string         { return j.Name }
func (j *Junction) InvertElevation() float64 { return j.Elevation }
func (j *Junction) OutletName() string       { return j.Name }

func NewJunction(j Junction) (*Junction, error) {
	if j.Name == "" {
		return nil, invalid("Junction", j.Name, "name must not be empty")
	}
	return &j, nil
}

func (j *Junction) inpLine() string {
	return fmt.Sprintf("%-16s %-10.3f %-10.2f %-10.2f %-10.2f %-11s",
		j.Name, j.Elevation, j.MaxDepth, j.InitDepth, j.SurDepth, trimFloat(j.Aponded))
}

func writeJunctions(iw *inpWriter, js []*Junction) {
	iw.print("[JUNCTIONS]\n" +
		";;Name           Elevation  MaxDepth   InitDepth  SurDepth   Aponded    \n" +
		";;-------------- ---------- ---------- ---------- ---------- ---------- \n")
	for _, j := range js {
		iw.print(j.inpLine() + "\n")
	}
}

// WriteJunctions writes the [JUNCTIONS] section.
func WriteJunctions(w io.Writer, js []*Junction) error {
	iw := &inpWriter{w: w}
	writeJunctions(iw, js)
	return iw.err
}

// StageData is the stage value of an outfall. Which implementation is
// allowed follows from the outfall type: FixedStage for FIXED, *Curve
// for TIDAL, *Timeseries for TIMESERIES; FREE and NORMAL carry none.
type StageData interface {
	stageField() string
}

// FixedStage is the fixed stage elevation of a FIXED outfall.
type FixedStage float64

func (f FixedStage) stageField() string { return fmt.Sprintf("%-16.3f", float64(f)) }

// Outfall is a terminal node of the drainage system defining the final
// downstream boundary.
type Outfall struct {
	Name      string
	Elevation float64
	Type      OutfallType
	Stage     StageData
	Gated     string // YES or NO
	RouteTo   Area   // optional subcatchment receiving the outflow
}

func (o *Outfall) NodeName() string         { return o.Name }
func (o *Outfall) InvertElevation() float64 { return o.Elevation }
func (o *Outfall) OutletName() string       { return o.Name }

func NewOutfall(o Outfall) (*Outfall, error) {
	if o.Name == "" {
		return nil, invalid("Outfall", o.Name, "name must not be empty")
	}
	if o.Type == "" {
		o.Type = OutfallFree
	}
	switch o.Type {
	case OutfallFree, OutfallNormal:
		if o.Stage != nil {
			return nil, invalid("Outfall", o.Name, "stage data must be empty for a FREE or NORMAL outfall")
		}
	case OutfallFixed:
		if _, ok := o.Stage.(FixedStage); !ok {
			return nil, invalid("Outfall", o.Name, "stage data must be a fixed elevation for a FIXED outfall")
		}
	case OutfallTidal:
		if _, ok := o.Stage.(*Curve); !ok {
			return nil, invalid("Outfall", o.Name, "stage data must be a tidal Curve for a TIDAL outfall")
		}
	case OutfallTimeseries:
		if _, ok := o.Stage.(*Timeseries); !ok {
			return nil, invalid("Outfall", o.Name, "stage data must be a Timeseries for a TIMESERIES outfall")
		}
	default:
		return nil, invalid("Outfall", o.Name, "type must be one of FREE, NORMAL, FIXED, TIDAL, TIMESERIES")
	}
	if o.Gated == "" {
		o.Gated = "NO"
	}
	if !yesno(o.Gated) {
		return nil, invalid("Outfall", o.Name, "gated must be one of YES, NO")
	}
	return &o, nil
}

func (o *Outfall) inpLine() string {
	stage := strings.Repeat(" ", 16)
	if o.Stage != nil {
		stage = o.Stage.stageField()
	}
	route := ""
	if o.RouteTo != nil {
		route = fmt.Sprintf("%-16s", o.RouteTo.AreaName())
	}
	return fmt.Sprintf("%-16s %-10.3f %-10s %s %-8s %s",
		o.Name, o.Elevation, o.Type, stage, o.Gated, route)
}

func writeOutfalls(iw *inpWriter, os []*Outfall) {
	iw.print("[OUTFALLS]\n" +
		";;Name           Elevation  Type       Stage Data       Gated    Route To        \n" +
		";;-------------- ---------- ---------- ---------------- -------- ----------------\n")
	for _, o := range os {
		iw.print(o.inpLine() + "\n")
	}
}

// WriteOutfalls writes the [OUTFALLS] section.
func WriteOutfalls(w io.Writer, os []*Outfall) error {
	iw := &inpWriter{w: w}
	writeOutfalls(iw, os)
	return iw.err
}

// Divider is a flow-divider node diverting inflow to a second link.
// Recognized by the .inp format but not yet buildable.
type Divider struct {
	Name        string
	Elevation   float64
	DividedLink Link
	DividerType string // OVERFLOW, CUTOFF, TABULAR or WEIR
	Qmin        float64
	DCurve      *Curve
	Ht          float64
	Cd          float64
	MaxDepth    float64
	InitDepth   float64
	SurDepth    float64
	Aponded     float64
}

func (d *Divider) NodeName() string         { return d.Name }
func (d *Divider) InvertElevation() float64 { return d.Elevation }

func NewDivider(d Divider) (*Divider, error) {
	return nil, notImplemented("Divider")
}

// Storage is a storage-unit node. Recognized by the .inp format but not
// yet buildable.
type Storage struct {
	Name      string
	Elevation float64
	MaxDepth  float64
	InitDepth float64
}

func (s *Storage) NodeName() string         { return s.Name }
func (s *Storage) InvertElevation() float64 { return s.Elevation }

func NewStorage(s Storage) (*Storage, error) {
	return nil, notImplemented("Storage")
}
