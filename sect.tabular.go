package swmming

import (
	"fmt"
	"io"
)

// Curve relates one quantity to another (tidal stage, pump head, outlet
// rating, inlet capture). Referenced by name from outfalls, pumps,
// outlets and inlets, but not yet buildable.
type Curve struct {
	Name string
}

func (c *Curve) stageField() string { return fmt.Sprintf("%-16s", c.Name) }

func NewCurve(c Curve) (*Curve, error) {
	return nil, notImplemented("Curve")
}

// Pattern is a periodic adjustment factor set. Recognized by the .inp
// format but not yet buildable.
type Pattern struct {
	Name string
}

func NewPattern(p Pattern) (*Pattern, error) {
	return nil, notImplemented("Pattern")
}

// Timeseries describes how a quantity varies over time. Times are hours
// since the start of the simulation; Date, in Month/Day/Year format,
// applies to the first reading.
type Timeseries struct {
	Name        string
	Times       []float64
	Values      []float64
	Date        string
	Hour        string
	FName       string
	Description string
}

func (t *Timeseries) stageField() string { return fmt.Sprintf("%-16s", t.Name) }

func NewTimeseries(t Timeseries) (*Timeseries, error) {
	if t.Name == "" {
		return nil, invalid("Timeseries", t.Name, "name must not be empty")
	}
	if len(t.Times) != len(t.Values) {
		return nil, invalid("Timeseries", t.Name, "time and value must be the same length")
	}
	return &t, nil
}

func writeTimeseries(iw *inpWriter, tss []*Timeseries) {
	iw.print("[TIMESERIES]\n" +
		";;Name           Date       Time       Value     \n" +
		";;-------------- ---------- ---------- ----------\n")
	for _, ts := range tss {
		if ts.Description == "" {
			iw.printf("%-49s\n", ";")
		} else {
			for _, chunk := range wrapText(ts.Description, 48) {
				iw.printf("; %-47s\n", chunk)
			}
		}
		date := ts.Date
		for i := range ts.Times {
			iw.printf("%-16s %-10s %-10.2f %-10.3f\n", ts.Name, date, ts.Times[i], ts.Values[i])
			date = ""
		}
	}
}

// WriteTimeseries writes the [TIMESERIES] section.
func WriteTimeseries(w io.Writer, tss []*Timeseries) error {
	iw := &inpWriter{w: w}
	writeTimeseries(iw, tss)
	return iw.err
}
