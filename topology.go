package swmming

// Node is a named point in the drainage network with an invert
// elevation: junctions, outfalls, dividers and storage units.
type Node interface {
	NodeName() string
	InvertElevation() float64
}

// Link is a directed connection between two nodes: conduits, pumps,
// orifices, weirs and outlets.
type Link interface {
	LinkName() string
}

// Area is a named land region contributing runoff.
type Area interface {
	AreaName() string
}

// OutletTarget is anything that can receive subcatchment runoff: any
// Node, or another Subcatchment.
type OutletTarget interface {
	OutletName() string
}
