package swmming

import (
	"fmt"
	"io"
	"strings"
)

// Title is the [TITLE] block: a project header line plus a free-form
// description.
type Title struct {
	Header      string
	Description string
}

// DefaultTitle returns the placeholder title written when a project
// carries none.
func DefaultTitle() *Title {
	return &Title{Header: "Project Title", Description: "Project Description"}
}

func (t *Title) writeInp(iw *inpWriter) {
	iw.print("[TITLE]\n;;Project Title/Notes\n")
	iw.print(t.Header + "\n")
	iw.print(t.Description)
}

// WriteTitle writes the [TITLE] section. The description carries no
// trailing newline; the document assembler adds the section separator.
func WriteTitle(w io.Writer, t *Title) error {
	iw := &inpWriter{w: w}
	t.writeInp(iw)
	return iw.err
}

// Options holds the analysis options of the [OPTIONS] section. Zero
// values are replaced with the engine defaults by NewOptions.
type Options struct {
	FlowUnits         FlowUnits
	Infiltration      InfiltrationMethod
	FlowRouting       RoutingMethod
	LinkOffsets       string // DEPTH or ELEVATION
	ForceMainEquation string // H-W or D-W
	IgnoreRainfall    string
	IgnoreSnowmelt    string
	IgnoreGroundwater string
	IgnoreRDII        string
	IgnoreRouting     string
	IgnoreQuality     string
	AllowPonding      string
	SkipSteadyState   string
	SysFlowTol        int
	LatFlowTol        int
	StartDate         string
	StartTime         string
	EndDate           string
	EndTime           string
	ReportStartDate   string
	ReportStartTime   string
	SweepStart        string
	SweepEnd          string
	DryDays           int
	ReportStep        string
	WetStep           string
	DryStep           string
	RoutingStep       float64 // seconds
	LengtheningStep   float64
	VariableStep      float64
	MinimumStep       float64
	InertialDamping   string // NONE, PARTIAL or FULL
	NormalFlowLimited string // SLOPE, FROUDE or BOTH
	SurchargeMethod   string // EXTRAN or SLOT
	MinSurfArea       float64
	MinSlope          float64
	MaxTrials         int
	HeadTolerance     float64
	Threads           int
}

// DefaultOptions returns the engine defaults for every option.
func DefaultOptions() *Options {
	return &Options{
		FlowUnits:         CFS,
		Infiltration:      Horton,
		FlowRouting:       DynWave,
		LinkOffsets:       "DEPTH",
		ForceMainEquation: "H-W",
		IgnoreRainfall:    "NO",
		IgnoreSnowmelt:    "NO",
		IgnoreGroundwater: "NO",
		IgnoreRDII:        "NO",
		IgnoreRouting:     "NO",
		IgnoreQuality:     "NO",
		AllowPonding:      "NO",
		SkipSteadyState:   "NO",
		SysFlowTol:        5,
		LatFlowTol:        5,
		StartDate:         "1/1/2004",
		StartTime:         "0:00:00",
		EndDate:           "1/1/2004",
		EndTime:           "23:59:59",
		ReportStartDate:   "1/1/2004",
		ReportStartTime:   "0:00:00",
		SweepStart:        "1/1",
		SweepEnd:          "12/31",
		DryDays:           0,
		ReportStep:        "0:15:00",
		WetStep:           "0:05:00",
		DryStep:           "1:00:00",
		RoutingStep:       20,
		LengtheningStep:   0,
		VariableStep:      0,
		MinimumStep:       0.5,
		InertialDamping:   "PARTIAL",
		NormalFlowLimited: "BOTH",
		SurchargeMethod:   "EXTRAN",
		MinSurfArea:       0,
		MinSlope:          0,
		MaxTrials:         8,
		HeadTolerance:     0.005,
		Threads:           8,
	}
}

// NewOptions validates o, first replacing zero-valued fields with the
// engine defaults.
func NewOptions(o Options) (*Options, error) {
	d := DefaultOptions()
	if o.FlowUnits == "" {
		o.FlowUnits = d.FlowUnits
	}
	if o.Infiltration == "" {
		o.Infiltration = d.Infiltration
	}
	if o.FlowRouting == "" {
		o.FlowRouting = d.FlowRouting
	}
	for _, sp := range []struct {
		f *string
		d string
	}{
		{&o.LinkOffsets, d.LinkOffsets},
		{&o.ForceMainEquation, d.ForceMainEquation},
		{&o.IgnoreRainfall, d.IgnoreRainfall},
		{&o.IgnoreSnowmelt, d.IgnoreSnowmelt},
		{&o.IgnoreGroundwater, d.IgnoreGroundwater},
		{&o.IgnoreRDII, d.IgnoreRDII},
		{&o.IgnoreRouting, d.IgnoreRouting},
		{&o.IgnoreQuality, d.IgnoreQuality},
		{&o.AllowPonding, d.AllowPonding},
		{&o.SkipSteadyState, d.SkipSteadyState},
		{&o.StartDate, d.StartDate},
		{&o.StartTime, d.StartTime},
		{&o.EndDate, d.EndDate},
		{&o.EndTime, d.EndTime},
		{&o.ReportStartDate, d.ReportStartDate},
		{&o.ReportStartTime, d.ReportStartTime},
		{&o.SweepStart, d.SweepStart},
		{&o.SweepEnd, d.SweepEnd},
		{&o.ReportStep, d.ReportStep},
		{&o.WetStep, d.WetStep},
		{&o.DryStep, d.DryStep},
		{&o.InertialDamping, d.InertialDamping},
		{&o.NormalFlowLimited, d.NormalFlowLimited},
		{&o.SurchargeMethod, d.SurchargeMethod},
	} {
		if *sp.f == "" {
			*sp.f = sp.d
		}
	}
	if o.SysFlowTol == 0 {
		o.SysFlowTol = d.SysFlowTol
	}
	if o.LatFlowTol == 0 {
		o.LatFlowTol = d.LatFlowTol
	}
	if o.RoutingStep == 0 {
		o.RoutingStep = d.RoutingStep
	}
	if o.MinimumStep == 0 {
		o.MinimumStep = d.MinimumStep
	}
	if o.MaxTrials == 0 {
		o.MaxTrials = d.MaxTrials
	}
	if o.HeadTolerance == 0 {
		o.HeadTolerance = d.HeadTolerance
	}
	if o.Threads == 0 {
		o.Threads = d.Threads
	}

	if !o.FlowUnits.valid() {
		return nil, invalid("Options", "", "flow units must be one of CFS, GPM, MGD, CMS, LPS, MLD")
	}
	if !o.Infiltration.valid() {
		return nil, invalid("Options", "", "infiltration must be one of HORTON, MODIFIED_HORTON, GREEN_AMPT, MODIFIED_GREEN_AMPT, CURVE_NUMBER")
	}
	if !o.FlowRouting.valid() {
		return nil, invalid("Options", "", "flow routing must be one of STEADY, KINWAVE, DYNWAVE")
	}
	if o.LinkOffsets != "DEPTH" && o.LinkOffsets != "ELEVATION" {
		return nil, invalid("Options", "", "link offsets must be one of DEPTH, ELEVATION")
	}
	if o.ForceMainEquation != "H-W" && o.ForceMainEquation != "D-W" {
		return nil, invalid("Options", "", "force main equation must be one of H-W, D-W")
	}
	for _, v := range []string{o.IgnoreRainfall, o.IgnoreSnowmelt, o.IgnoreGroundwater, o.IgnoreRDII,
		o.IgnoreRouting, o.IgnoreQuality, o.AllowPonding, o.SkipSteadyState} {
		if !yesno(v) {
			return nil, invalid("Options", "", "switch options must be one of YES, NO")
		}
	}
	switch o.InertialDamping {
	case "NONE", "PARTIAL", "FULL":
	default:
		return nil, invalid("Options", "", "inertial damping must be one of NONE, PARTIAL, FULL")
	}
	switch o.NormalFlowLimited {
	case "SLOPE", "FROUDE", "BOTH":
	default:
		return nil, invalid("Options", "", "normal flow limited must be one of SLOPE, FROUDE, BOTH")
	}
	if o.SurchargeMethod != "EXTRAN" && o.SurchargeMethod != "SLOT" {
		return nil, invalid("Options", "", "surcharge method must be one of EXTRAN, SLOT")
	}
	return &o, nil
}

func (o *Options) writeInp(iw *inpWriter) {
	iw.print("[OPTIONS]\n;;Option             Value\n")
	for _, kv := range []struct {
		k, v string
	}{
		{"FLOW_UNITS", string(o.FlowUnits)},
		{"INFILTRATION", string(o.Infiltration)},
		{"FLOW_ROUTING", string(o.FlowRouting)},
		{"LINK_OFFSETS", o.LinkOffsets},
		{"FORCE_MAIN_EQUATION", o.ForceMainEquation},
		{"IGNORE_RAINFALL", o.IgnoreRainfall},
		{"IGNORE_SNOWMELT", o.IgnoreSnowmelt},
		{"IGNORE_GROUNDWATER", o.IgnoreGroundwater},
		{"IGNORE_RDII", o.IgnoreRDII},
		{"IGNORE_ROUTING", o.IgnoreRouting},
		{"IGNORE_QUALITY", o.IgnoreQuality},
		{"ALLOW_PONDING", o.AllowPonding},
		{"SKIP_STEADY_STATE", o.SkipSteadyState},
		{"SYS_FLOW_TOL", fmt.Sprintf("%d", o.SysFlowTol)},
		{"LAT_FLOW_TOL", fmt.Sprintf("%d", o.LatFlowTol)},
		{"START_DATE", o.StartDate},
		{"START_TIME", o.StartTime},
		{"END_DATE", o.EndDate},
		{"END_TIME", o.EndTime},
		{"REPORT_START_DATE", o.ReportStartDate},
		{"REPORT_START_TIME", o.ReportStartTime},
		{"SWEEP_START", o.SweepStart},
		{"SWEEP_END", o.SweepEnd},
		{"DRY_DAYS", fmt.Sprintf("%d", o.DryDays)},
		{"REPORT_STEP", o.ReportStep},
		{"WET_STEP", o.WetStep},
		{"DRY_STEP", o.DryStep},
		{"ROUTING_STEP", pyfloat(o.RoutingStep)},
		{"LENGTHENING_STEP", pyfloat(o.LengtheningStep)},
		{"VARIABLE_STEP", pyfloat(o.VariableStep)},
		{"MINIMUM_STEP", pyfloat(o.MinimumStep)},
		{"INERTIAL_DAMPING", o.InertialDamping},
		{"NORMAL_FLOW_LIMITED", o.NormalFlowLimited},
		{"SURCHARGE_METHOD", o.SurchargeMethod},
		{"MIN_SURFAREA", trimFloat(o.MinSurfArea)},
		{"MIN_SLOPE", trimFloat(o.MinSlope)},
		{"MAX_TRIALS", fmt.Sprintf("%d", o.MaxTrials)},
		{"HEAD_TOLERANCE", trimFloat(o.HeadTolerance)},
		{"THREADS", fmt.Sprintf("%d", o.Threads)},
	} {
		iw.printf("%-20s %s\n", kv.k, kv.v)
	}
}

// WriteOptions writes the [OPTIONS] section.
func WriteOptions(w io.Writer, o *Options) error {
	iw := &inpWriter{w: w}
	o.writeInp(iw)
	return iw.err
}

// Report describes the contents of the report file the engine produces.
// The entity list fields render ALL when the matching All flag is set,
// the referenced names when populated, and NONE otherwise.
type Report struct {
	Disabled   string
	Input      string
	Continuity string
	FlowStats  string
	Controls   string

	AllSubcatchments bool
	Subcatchments    []*Subcatchment
	AllNodes         bool
	Nodes            []Node
	AllLinks         bool
	Links            []Link

	Lid string
}

// NewReport validates r, defaulting the unset switches (continuity and
// flow statistics reporting default to YES, the rest to NO).
func NewReport(r Report) (*Report, error) {
	if r.Lid != "" {
		return nil, notImplemented("Report LID")
	}
	if r.Disabled == "" {
		r.Disabled = "NO"
	}
	if r.Input == "" {
		r.Input = "NO"
	}
	if r.Continuity == "" {
		r.Continuity = "YES"
	}
	if r.FlowStats == "" {
		r.FlowStats = "YES"
	}
	if r.Controls == "" {
		r.Controls = "NO"
	}
	for _, v := range []string{r.Disabled, r.Input, r.Continuity, r.FlowStats, r.Controls} {
		if !yesno(v) {
			return nil, invalid("Report", "", "switch options must be one of YES, NO")
		}
	}
	return &r, nil
}

func (r *Report) subcatchmentsField() string {
	if r.AllSubcatchments {
		return "ALL"
	}
	if len(r.Subcatchments) == 0 {
		return "NONE"
	}
	names := make([]string, len(r.Subcatchments))
	for i, s := range r.Subcatchments {
		names[i] = s.Name
	}
	return strings.Join(names, " ")
}

func (r *Report) nodesField() string {
	if r.AllNodes {
		return "ALL"
	}
	if len(r.Nodes) == 0 {
		return "NONE"
	}
	names := make([]string, len(r.Nodes))
	for i, n := range r.Nodes {
		names[i] = n.NodeName()
	}
	return strings.Join(names, " ")
}

func (r *Report) linksField() string {
	if r.AllLinks {
		return "ALL"
	}
	if len(r.Links) == 0 {
		return "NONE"
	}
	names := make([]string, len(r.Links))
	for i, l := range r.Links {
		names[i] = l.LinkName()
	}
	return strings.Join(names, " ")
}

func (r *Report) writeInp(iw *inpWriter) {
	iw.print("[REPORT]\n")
	for _, kv := range []struct {
		k, v string
	}{
		{"DISABLED", r.Disabled},
		{"INPUT", r.Input},
		{"CONTINUITY", r.Continuity},
		{"FLOWSTATS", r.FlowStats},
		{"CONTROLS", r.Controls},
		{"SUBCATCHMENTS", r.subcatchmentsField()},
		{"NODES", r.nodesField()},
		{"LINKS", r.linksField()},
		{"LID", r.Lid},
	} {
		iw.printf("%-21s %s\n", kv.k, kv.v)
	}
}

// WriteReport writes the [REPORT] section.
func WriteReport(w io.Writer, r *Report) error {
	iw := &inpWriter{w: w}
	r.writeInp(iw)
	return iw.err
}
