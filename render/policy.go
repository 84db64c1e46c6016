package render

import (
	"sync"

	"github.com/bloeys/nvox/assert"
	"github.com/bloeys/nvox/sinks"
)

// SinkPolicy decides, per draw call, which VertexSink variant a mesh emitter
// receives. Passes marked natively handled get the shared discard sink so
// host draw code still runs but produces no geometry; every other pass gets
// a fresh buffered sink for the renderer to consume.
//
// Safe for concurrent use.
type SinkPolicy struct {
	mu      sync.RWMutex
	native  map[Pass]bool
	discard *sinks.Discard
}

func NewSinkPolicy(nativelyHandled ...Pass) *SinkPolicy {

	sp := &SinkPolicy{
		native:  make(map[Pass]bool, len(nativelyHandled)),
		discard: sinks.NewDiscard(),
	}

	for _, p := range nativelyHandled {
		sp.SetNativelyHandled(p, true)
	}

	return sp
}

// SetNativelyHandled marks a pass as drawn by the backend itself. Host
// emissions for that pass are discarded from the next Sink call onwards.
func (sp *SinkPolicy) SetNativelyHandled(p Pass, handled bool) {

	assert.T(p < passCount, "Unknown render pass '%d'", p)

	sp.mu.Lock()
	defer sp.mu.Unlock()

	if handled {
		sp.native[p] = true
	} else {
		delete(sp.native, p)
	}
}

func (sp *SinkPolicy) IsNativelyHandled(p Pass) bool {

	sp.mu.RLock()
	defer sp.mu.RUnlock()
	return sp.native[p]
}

// Sink returns the VertexSink a mesh emitter should drive for one draw call
// of the given pass. Call sites must not branch on the returned variant.
func (sp *SinkPolicy) Sink(p Pass) sinks.VertexSink {

	assert.T(p < passCount, "Unknown render pass '%d'", p)

	sp.mu.RLock()
	defer sp.mu.RUnlock()

	if sp.native[p] {
		return sp.discard
	}

	return sinks.NewBuffered()
}
