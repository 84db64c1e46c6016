package render

// Pass identifies one rendering pass of the client's frame. The sink policy
// decides per pass whether host-emitted geometry is kept or discarded.
type Pass uint8

const (
	PassTerrain Pass = iota
	PassEntities
	PassBlockEntities
	PassParticles
	PassClouds
	PassText

	passCount
)

func (p Pass) String() string {

	switch p {

	case PassTerrain:
		return "terrain"
	case PassEntities:
		return "entities"
	case PassBlockEntities:
		return "blockEntities"
	case PassParticles:
		return "particles"
	case PassClouds:
		return "clouds"
	case PassText:
		return "text"

	default:
		return "unknown"
	}
}
