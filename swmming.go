// Package swmming builds an in-memory model of a stormwater/sewer
// network and writes it to the fixed-column SWMM .inp input format.
//
// Entities are validated once at construction (the NewX functions) and
// are immutable afterwards; the section writers and the document
// assembler trust any entity they are handed and emit bytes only.
package swmming

import "io"

// Project collects the entity collections of one input document in
// assembly order. Empty collections are skipped; a nil Title or Options
// falls back to the defaults so a bare Project still yields a valid
// document.
type Project struct {
	Title         *Title
	Options       *Options
	Raingages     []*Raingage
	Subcatchments []*Subcatchment
	Subareas      []*Subarea
	Infiltration  []*Infiltration
	Junctions     []*Junction
	Outfalls      []*Outfall
	Conduits      []*Conduit
	XSections     []*XSection
	Transects     []*Transect
	Timeseries    []*Timeseries
	Streets       []*Street
	Inlets        []*Inlet
	InletUsages   []*InletUsage
	Map           *Map
	Coordinates   []*Coordinate
	Vertices      []*LinkVertex
	Polygons      []*PolygonVertex
	Report        *Report
}

// WriteInp assembles the full .inp document onto w, each section
// followed by a blank separator line.
func (p *Project) WriteInp(w io.Writer) error {
	iw := &inpWriter{w: w}

	t := p.Title
	if t == nil {
		t = DefaultTitle()
	}
	t.writeInp(iw)
	iw.print("\n\n")

	o := p.Options
	if o == nil {
		o = DefaultOptions()
	}
	o.writeInp(iw)
	iw.print("\n\n")

	if len(p.Raingages) > 0 {
		writeRaingages(iw, p.Raingages)
		iw.print("\n\n")
	}
	if len(p.Subcatchments) > 0 {
		writeSubcatchments(iw, p.Subcatchments)
		iw.print("\n\n")
	}
	if len(p.Subareas) > 0 {
		writeSubareas(iw, p.Subareas)
		iw.print("\n\n")
	}
	if len(p.Infiltration) > 0 {
		writeInfiltration(iw, p.Infiltration)
		iw.print("\n\n")
	}
	if len(p.Junctions) > 0 {
		writeJunctions(iw, p.Junctions)
		iw.print("\n\n")
	}
	if len(p.Outfalls) > 0 {
		writeOutfalls(iw, p.Outfalls)
		iw.print("\n\n")
	}
	if len(p.Conduits) > 0 {
		writeConduits(iw, p.Conduits)
		iw.print("\n\n")
	}
	if len(p.XSections) > 0 {
		writeXSections(iw, p.XSections)
		iw.print("\n\n")
	}
	if len(p.Transects) > 0 {
		writeTransects(iw, p.Transects)
		iw.print("\n\n")
	}
	if len(p.Timeseries) > 0 {
		writeTimeseries(iw, p.Timeseries)
		iw.print("\n\n")
	}
	if len(p.Streets) > 0 {
		writeStreets(iw, p.Streets)
		iw.print("\n\n")
	}
	if len(p.Inlets) > 0 {
		writeInlets(iw, p.Inlets)
		iw.print("\n\n")
	}
	if len(p.InletUsages) > 0 {
		writeInletUsages(iw, p.InletUsages)
		iw.print("\n\n")
	}
	if p.Map != nil {
		p.Map.writeInp(iw)
		iw.print("\n\n")
	}
	if len(p.Coordinates) > 0 {
		writeCoordinates(iw, p.Coordinates)
		iw.print("\n\n")
	}
	if len(p.Vertices) > 0 {
		writeVertices(iw, p.Vertices)
		iw.print("\n\n")
	}
	if len(p.Polygons) > 0 {
		writePolygons(iw, p.Polygons)
		iw.print("\n\n")
	}
	if p.Report != nil {
		p.Report.writeInp(iw)
		iw.print("\n\n")
	}
	return iw.err
}
