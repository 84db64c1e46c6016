package render

import (
	"github.com/bloeys/nvox/buffers"
	"github.com/bloeys/nvox/materials"
)

// Render is the backend every baked layer ultimately flows into. The sink
// abstraction only ever reaches a backend through this interface, so backends
// are swappable without touching emitter code.
type Render interface {
	// UploadSection replaces the stored geometry of a section with the given
	// baked layers. Layers of passes not present keep their old geometry.
	UploadSection(pos SectionPos, layers []BakedLayer)

	// RemoveSection drops all stored geometry of a section.
	RemoveSection(pos SectionPos)

	// DrawSection draws one pass layer of a section, if it has one.
	DrawSection(pos SectionPos, pass Pass, mat materials.Material)

	DrawVertexArray(mat materials.Material, vao buffers.VertexArray, firstElement int32, elementCount int32)

	FrameEnd()
}
