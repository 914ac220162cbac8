package swmming

import (
	"fmt"
	"io"
	"strings"
)

// Subcatchment is a land area unit whose runoff drains to a single
// outlet: a node, or another subcatchment.
type Subcatchment struct {
	Name          string
	RainGage      *Raingage
	Outlet        OutletTarget
	Area          float64
	PercentImperv float64
	Width         float64
	Slope         float64
	CurbLength    float64
	SnowPack      *Snowpack
}

func (s *Subcatchment) AreaName() string   { return s.Name }
func (s *Subcatchment) OutletName() string { return s.Name }

func NewSubcatchment(s Subcatchment) (*Subcatchment, error) {
	if s.Name == "" {
		return nil, invalid("Subcatchment", s.Name, "name must not be empty")
	}
	if s.RainGage == nil {
		return nil, invalid("Subcatchment", s.Name, "rain gage must be a Raingage")
	}
	if s.Outlet == nil {
		return nil, invalid("Subcatchment", s.Name, "outlet must be a node or another subcatchment")
	}
	if s.Outlet.OutletName() == s.Name {
		return nil, invalid("Subcatchment", s.Name, "outlet cannot be itself")
	}
	if s.SnowPack != nil {
		return nil, notImplemented("Subcatchment snow pack")
	}
	return &s, nil
}

func (s *Subcatchment) inpLine() string {
	return fmt.Sprintf("%-16s %-16s %-16s %-8.2f %-8.2f %-8.2f %-8.4f %-8.2f %-16s",
		s.Name, s.RainGage.Name, s.Outlet.OutletName(),
		s.Area, s.PercentImperv, s.Width, s.Slope, s.CurbLength, "")
}

func writeSubcatchments(iw *inpWriter, ss []*Subcatchment) {
	iw.print("[SUBCATCHMENTS]\n" +
		";;Name           Rain Gage        Outlet           Area     %Imperv  Width    %Slope   CurbLen  SnowPack        \n" +
		";;-------------- ---------------- ---------------- -------- -------- -------- -------- -------- ----------------\n")
	for _, s := range ss {
		iw.print(s.inpLine() + "\n")
	}
}

// WriteSubcatchments writes the [SUBCATCHMENTS] section.
func WriteSubcatchments(w io.Writer, ss []*Subcatchment) error {
	iw := &inpWriter{w: w}
	writeSubcatchments(iw, ss)
	return iw.err
}

// Subarea splits a subcatchment into its pervious and impervious
// fractions and sets their overland flow parameters.
type Subarea struct {
	Subcatchment *Subcatchment
	NImperv      float64
	NPerv        float64
	SImperv      float64
	SPerv        float64
	PercentZero  float64
	RouteTo      string  // OUTLET, IMPERVIOUS or PERVIOUS
	PctRouted    float64 // defaults to 100
}

func NewSubarea(s Subarea) (*Subarea, error) {
	if s.Subcatchment == nil {
		return nil, invalid("Subarea", "", "subcatchment must be a Subcatchment")
	}
	if s.RouteTo == "" {
		s.RouteTo = "OUTLET"
	}
	switch s.RouteTo {
	case "OUTLET", "IMPERVIOUS", "PERVIOUS":
	default:
		return nil, invalid("Subarea", s.Subcatchment.Name, "route to must be one of OUTLET, IMPERVIOUS, PERVIOUS")
	}
	if s.PctRouted == 0 {
		s.PctRouted = 100
	}
	return &s, nil
}

func (s *Subarea) inpLine() string {
	return fmt.Sprintf("%-16s %-10.4f %-10.4f %-10.4f %-10.4f %-10.2f %-10s %-10.2f",
		s.Subcatchment.Name, s.NImperv, s.NPerv, s.SImperv, s.SPerv,
		s.PercentZero, s.RouteTo, s.PctRouted)
}

func writeSubareas(iw *inpWriter, ss []*Subarea) {
	iw.print("[SUBAREAS]\n" +
		";;Subcatchment   N-Imperv   N-Perv     S-Imperv   S-Perv     PctZero    RouteTo    PctRouted \n" +
		";;-------------- ---------- ---------- ---------- ---------- ---------- ---------- ----------\n")
	for _, s := range ss {
		iw.print(s.inpLine() + "\n")
	}
}

// WriteSubareas writes the [SUBAREAS] section.
func WriteSubareas(w io.Writer, ss []*Subarea) error {
	iw := &inpWriter{w: w}
	writeSubareas(iw, ss)
	return iw.err
}

// Infiltration sets a subcatchment's infiltration parameters. The
// HORTON family takes five parameters, the GREEN_AMPT and CURVE_NUMBER
// families three.
type Infiltration struct {
	Subcatchment *Subcatchment
	Parameters   []float64
	Method       InfiltrationMethod
}

func NewInfiltration(i Infiltration) (*Infiltration, error) {
	if i.Subcatchment == nil {
		return nil, invalid("Infiltration", "", "subcatchment must be a Subcatchment")
	}
	if !i.Method.valid() {
		return nil, invalid("Infiltration", i.Subcatchment.Name, "method must be one of HORTON, MODIFIED_HORTON, GREEN_AMPT, MODIFIED_GREEN_AMPT, CURVE_NUMBER")
	}
	want := 3
	if i.Method == Horton || i.Method == ModifiedHorton {
		want = 5
	}
	if len(i.Parameters) != want {
		return nil, invalid("Infiltration", i.Subcatchment.Name,
			fmt.Sprintf("%d parameters must be specified for the %s method", want, i.Method))
	}
	return &i, nil
}

func (i *Infiltration) inpLine() string {
	ps := make([]string, len(i.Parameters))
	for j, p := range i.Parameters {
		ps[j] = fmt.Sprintf("%-10.2f", p)
	}
	return fmt.Sprintf("%-16s %-54s %s", i.Subcatchment.Name, strings.Join(ps, " "), i.Method)
}

func writeInfiltration(iw *inpWriter, is []*Infiltration) {
	iw.print("[INFILTRATION]\n" +
		";;Subcatchment   Param1     Param2     Param3     Param4     Param5    \n" +
		";;-------------- ---------- ---------- ---------- ---------- ----------\n")
	for _, i := range is {
		iw.print(i.inpLine() + "\n")
	}
}

// WriteInfiltration writes the [INFILTRATION] section.
func WriteInfiltration(w io.Writer, is []*Infiltration) error {
	iw := &inpWriter{w: w}
	writeInfiltration(iw, is)
	return iw.err
}

// LIDControl is a low-impact development control. Recognized by the
// .inp format but not yet buildable.
type LIDControl struct {
	Name string
	Type string
}

func NewLIDControl(c LIDControl) (*LIDControl, error) {
	return nil, notImplemented("LIDControl")
}

// LIDUse places a LID control on a subcatchment. Recognized by the
// .inp format but not yet buildable.
type LIDUse struct {
	Subcatchment *Subcatchment
	Control      *LIDControl
	Number       int
}

func NewLIDUse(u LIDUse) (*LIDUse, error) {
	return nil, notImplemented("LIDUse")
}
