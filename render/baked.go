package render

import (
	"github.com/bloeys/nvox/logging"
	"github.com/bloeys/nvox/sinks"
)

// SectionPos is the grid position of one world section
type SectionPos [3]int32

// BakedLayer is one pass worth of section geometry, interleaved and indexed,
// ready for the backend to upload.
type BakedLayer struct {
	Pass     Pass
	Vertices []float32
	Indices  []uint32
}

// SectionUpdate carries freshly baked layers for one section position.
type SectionUpdate struct {
	Pos    SectionPos
	Layers []BakedLayer
}

// BakeLayer turns whatever a draw call's sink accumulated into an uploadable
// layer. Discarded or empty sinks bake to nothing, which keeps the branching
// on sink variants here, in renderer-owned code, and out of emitter call
// sites. Emitted triangles are unindexed, so indices are sequential.
func BakeLayer(p Pass, sink sinks.VertexSink) (BakedLayer, bool) {

	b, ok := sink.(*sinks.Buffered)
	if !ok || b.VertexCount() == 0 {
		return BakedLayer{}, false
	}

	indices := make([]uint32, b.VertexCount())
	for i := range indices {
		indices[i] = uint32(i)
	}

	return BakedLayer{
		Pass:     p,
		Vertices: b.Interleaved(),
		Indices:  indices,
	}, true
}

// UpdateQueue hands baked section geometry from baking code to the frame
// loop. Baking can happen on any goroutine; the render thread drains the
// queue at frame start.
type UpdateQueue struct {
	ch chan SectionUpdate
}

func NewUpdateQueue(capacity int) *UpdateQueue {
	return &UpdateQueue{ch: make(chan SectionUpdate, capacity)}
}

// Submit enqueues an update without blocking. If the queue is full the
// update is dropped and logged; the section simply keeps its old geometry
// until it is baked again.
func (q *UpdateQueue) Submit(u SectionUpdate) {

	select {
	case q.ch <- u:
	default:
		logging.WarnLog.Printf("Section update queue is full. Dropping update for section %v\n", u.Pos)
	}
}

// Drain calls fn for every queued update, then returns. It never blocks
// waiting for new updates.
func (q *UpdateQueue) Drain(fn func(SectionUpdate)) {

	for {
		select {
		case u := <-q.ch:
			fn(u)
		default:
			return
		}
	}
}
