package swmming

import (
	"fmt"
	"io"
	"strings"
)

// Raingage identifies a rain gage providing rainfall data for the study
// area. Exactly one of TSeries or FName supplies the data; a file
// source also needs the recording station name and depth units.
type Raingage struct {
	Name        string
	Form        string // INTENSITY, VOLUME or CUMULATIVE
	Interval    string // decimal hours or hours:minutes
	SCF         float64
	TSeries     *Timeseries
	FName       string
	StationName string
	Units       string // IN or MM

	mode string
}

func NewRaingage(g Raingage) (*Raingage, error) {
	if g.Name == "" {
		return nil, invalid("Raingage", g.Name, "name must not be empty")
	}
	switch g.Form {
	case "INTENSITY", "VOLUME", "CUMULATIVE":
	default:
		return nil, invalid("Raingage", g.Name, "form must be one of INTENSITY, VOLUME, CUMULATIVE")
	}
	if g.SCF == 0 {
		g.SCF = 1
	}
	switch {
	case g.TSeries == nil && g.FName == "":
		return nil, invalid("Raingage", g.Name, "either a tseries or fname must be specified")
	case g.TSeries != nil && g.FName != "":
		return nil, invalid("Raingage", g.Name, "only one of tseries or fname can be specified")
	case g.TSeries != nil:
		g.mode = "TIMESERIES"
	default:
		g.mode = "FILE"
		if g.StationName == "" {
			return nil, invalid("Raingage", g.Name, "station name must be specified if fname is specified")
		}
		if g.Units != "IN" && g.Units != "MM" {
			return nil, invalid("Raingage", g.Name, "units must be one of IN, MM")
		}
	}
	return &g, nil
}

func (g *Raingage) inpLine() string {
	if g.mode == "FILE" {
		return fmt.Sprintf("%-16s %-9s %-9s %-6.2f FILE %s %-10s %-10s",
			g.Name, g.Form, g.Interval, g.SCF, g.FName, g.StationName, g.Units)
	}
	return fmt.Sprintf("%-16s %-9s %-9s %-6.2f TIMESERIES %s ",
		g.Name, g.Form, g.Interval, g.SCF, g.TSeries.Name)
}

func writeRaingages(iw *inpWriter, gs []*Raingage) {
	iw.print("[RAINGAGES]\n" +
		";;Name           Format    Interval  SCF    Source    \n" +
		";;-------------- --------- --------- ------ ----------\n")
	for _, g := range gs {
		iw.print(g.inpLine() + "\n")
	}
}

// WriteRaingages writes the [RAINGAGES] section.
func WriteRaingages(w io.Writer, gs []*Raingage) error {
	iw := &inpWriter{w: w}
	writeRaingages(iw, gs)
	return iw.err
}

// Evaporation specifies how daily potential evaporation rates vary with
// time. The Format field picks the data source: a CONSTANT rate, twelve
// MONTHLY rates, a TIMESERIES, daily TEMPERATURE records, or the climate
// FILE named in the temperature section with twelve pan coefficients.
type Evaporation struct {
	Format       EvaporationFormat
	ConstantRate *float64
	MonthlyRates []float64
	TSeries      *Timeseries
	PanCoefs     []float64
	Recovery     *Pattern
	DryOnly      string // YES or NO

	params string
}

func NewEvaporation(e Evaporation) (*Evaporation, error) {
	if !e.Format.valid() {
		return nil, invalid("Evaporation", "", "format must be one of CONSTANT, MONTHLY, TIMESERIES, TEMPERATURE, FILE")
	}
	switch e.Format {
	case EvapConstant:
		if e.ConstantRate == nil {
			return nil, invalid("Evaporation", "", "constant rate must be specified for the CONSTANT format")
		}
		e.params = pyfloat(*e.ConstantRate)
	case EvapMonthly:
		if len(e.MonthlyRates) != 12 {
			return nil, invalid("Evaporation", "", "12 monthly rates must be specified for the MONTHLY format")
		}
		e.params = joinRates(e.MonthlyRates)
	case EvapTimeseries:
		if e.TSeries == nil {
			return nil, invalid("Evaporation", "", "tseries must be a Timeseries for the TIMESERIES format")
		}
		e.params = e.TSeries.Name
	case EvapTemperature:
		e.params = ""
	case EvapFile:
		if len(e.PanCoefs) != 12 {
			return nil, invalid("Evaporation", "", "12 pan coefficients must be specified for the FILE format")
		}
		e.params = joinRates(e.PanCoefs)
	}
	if e.Recovery != nil {
		return nil, notImplemented("Evaporation recovery")
	}
	if e.DryOnly == "" {
		e.DryOnly = "NO"
	}
	if !yesno(e.DryOnly) {
		return nil, invalid("Evaporation", "", "dry only must be one of YES, NO")
	}
	return &e, nil
}

func joinRates(vs []float64) string {
	var b strings.Builder
	for _, v := range vs {
		fmt.Fprintf(&b, "%-10.3f", v)
	}
	return b.String()
}

func (e *Evaporation) writeInp(iw *inpWriter) {
	iw.print("[EVAPORATION]\n" +
		";;Data Source    Parameters\n" +
		";;-------------- ----------------\n")
	iw.printf("%-16s %s\n", e.Format, e.params)
	iw.printf("DRY_ONLY         %-16s\n", e.DryOnly)
}

// WriteEvaporation writes the [EVAPORATION] section.
func WriteEvaporation(w io.Writer, e *Evaporation) error {
	iw := &inpWriter{w: w}
	e.writeInp(iw)
	return iw.err
}

// SnowmeltParams holds the study-area snowmelt constants.
type SnowmeltParams struct {
	STemp  float64 // air temperature dividing rain from snow
	ATIWt  float64 // antecedent temperature index weight
	RNM    float64 // negative melt ratio
	Elev   float64
	Lat    float64 // degrees North
	DTLong float64 // solar vs clock time correction, minutes
}

// NewSnowmeltParams fills the conventional defaults for zero-valued
// weight, ratio and latitude fields.
func NewSnowmeltParams(p SnowmeltParams) *SnowmeltParams {
	if p.ATIWt == 0 {
		p.ATIWt = 0.5
	}
	if p.RNM == 0 {
		p.RNM = 0.6
	}
	if p.Lat == 0 {
		p.Lat = 50
	}
	return &p
}

// Temperature specifies daily air temperatures, monthly wind speed and
// snowmelt parameters. Needed only when snowmelt is modeled or when
// evaporation is derived from temperatures or a climate file.
type Temperature struct {
	TSeries           *Timeseries
	FName             string // external climate file, alternative to TSeries
	FileStart         string // month/day/year to begin reading the file
	FileUnits         string // C, F or C10
	WindSpeed         []float64
	WindSpeedFromFile bool
	Snowmelt          *SnowmeltParams
	ADCImpervious     []float64
	ADCPervious       []float64

	mode             string
	adcImpv, adcPerv string
}

func NewTemperature(t Temperature) (*Temperature, error) {
	switch {
	case t.TSeries != nil && t.FName != "":
		return nil, invalid("Temperature", "", "only one of tseries or fname can be specified")
	case t.TSeries != nil:
		t.mode = "TIMESERIES"
	case t.FName != "":
		t.mode = "FILE"
		if t.FileStart == "" {
			return nil, invalid("Temperature", "", "file start must be specified if fname is specified")
		}
		if t.FileUnits == "" {
			t.FileUnits = "C10"
		}
		switch t.FileUnits {
		case "C", "F", "C10":
		default:
			return nil, invalid("Temperature", "", "file units must be one of C, F, C10")
		}
	}
	if !t.WindSpeedFromFile && t.WindSpeed != nil && len(t.WindSpeed) != 12 {
		return nil, invalid("Temperature", "", "12 wind speeds must be specified")
	}
	if t.ADCImpervious == nil {
		t.ADCImpervious = fullCover()
	} else if len(t.ADCImpervious) != 9 {
		return nil, invalid("Temperature", "", "9 impervious areal depletion fractions must be specified")
	}
	if t.ADCPervious == nil {
		t.ADCPervious = fullCover()
	} else if len(t.ADCPervious) != 9 {
		return nil, invalid("Temperature", "", "9 pervious areal depletion fractions must be specified")
	}
	var impv, perv strings.Builder
	for i := 0; i < 9; i++ {
		fmt.Fprintf(&impv, "%-10.3f", t.ADCImpervious[i])
		fmt.Fprintf(&perv, "%-10.3f", t.ADCPervious[i])
	}
	t.adcImpv, t.adcPerv = impv.String(), perv.String()
	return &t, nil
}

func fullCover() []float64 {
	adc := make([]float64, 9)
	for i := range adc {
		adc[i] = 1
	}
	return adc
}

// Adjustments holds monthly climate adjustments. Recognized by the .inp
// format but not yet buildable.
type Adjustments struct{}

func NewAdjustments() (*Adjustments, error) {
	return nil, notImplemented("Adjustments")
}
