package swmming

// Stand-ins for the groundwater and snow constructs of the .inp format.
// None are buildable yet; their constructors fail so no partially
// supported record can reach a serializer.

type Snowpack struct {
	Name string
}

func NewSnowpack(s Snowpack) (*Snowpack, error) {
	return nil, notImplemented("Snowpack")
}

type Aquifer struct {
	Name string
}

func NewAquifer(a Aquifer) (*Aquifer, error) {
	return nil, notImplemented("Aquifer")
}

type Groundwater struct {
	Subcatchment *Subcatchment
	Aquifer      *Aquifer
}

func NewGroundwater(g Groundwater) (*Groundwater, error) {
	return nil, notImplemented("Groundwater")
}

type GwfExpression struct {
	Subcatchment *Subcatchment
	Type         string // LATERAL or DEEP
	Expression   string
}

func NewGwfExpression(e GwfExpression) (*GwfExpression, error) {
	return nil, notImplemented("GwfExpression")
}
