package swmming

// The closed vocabularies shared across sections. Values are written to
// the .inp file verbatim.

type FlowUnits string

const (
	CFS FlowUnits = "CFS"
	GPM FlowUnits = "GPM"
	MGD FlowUnits = "MGD"
	CMS FlowUnits = "CMS"
	LPS FlowUnits = "LPS"
	MLD FlowUnits = "MLD"
)

func (u FlowUnits) valid() bool {
	switch u {
	case CFS, GPM, MGD, CMS, LPS, MLD:
		return true
	}
	return false
}

type InfiltrationMethod string

const (
	Horton            InfiltrationMethod = "HORTON"
	ModifiedHorton    InfiltrationMethod = "MODIFIED_HORTON"
	GreenAmpt         InfiltrationMethod = "GREEN_AMPT"
	ModifiedGreenAmpt InfiltrationMethod = "MODIFIED_GREEN_AMPT"
	CurveNumber       InfiltrationMethod = "CURVE_NUMBER"
)

func (m InfiltrationMethod) valid() bool {
	switch m {
	case Horton, ModifiedHorton, GreenAmpt, ModifiedGreenAmpt, CurveNumber:
		return true
	}
	return false
}

type RoutingMethod string

const (
	Steady  RoutingMethod = "STEADY"
	KinWave RoutingMethod = "KINWAVE"
	DynWave RoutingMethod = "DYNWAVE"
)

func (m RoutingMethod) valid() bool {
	switch m {
	case Steady, KinWave, DynWave:
		return true
	}
	return false
}

type EvaporationFormat string

const (
	EvapConstant    EvaporationFormat = "CONSTANT"
	EvapMonthly     EvaporationFormat = "MONTHLY"
	EvapTimeseries  EvaporationFormat = "TIMESERIES"
	EvapTemperature EvaporationFormat = "TEMPERATURE"
	EvapFile        EvaporationFormat = "FILE"
)

func (f EvaporationFormat) valid() bool {
	switch f {
	case EvapConstant, EvapMonthly, EvapTimeseries, EvapTemperature, EvapFile:
		return true
	}
	return false
}

type OutfallType string

const (
	OutfallFree       OutfallType = "FREE"
	OutfallNormal     OutfallType = "NORMAL"
	OutfallFixed      OutfallType = "FIXED"
	OutfallTidal      OutfallType = "TIDAL"
	OutfallTimeseries OutfallType = "TIMESERIES"
)

func yesno(s string) bool { return s == "YES" || s == "NO" }

// Float returns a pointer to v, for the optional numeric fields that
// distinguish "unset" from zero.
func Float(v float64) *float64 { return &v }
