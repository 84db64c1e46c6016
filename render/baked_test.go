package render

import (
	"testing"

	"github.com/bloeys/nvox/sinks"
)

func TestBakeLayerFromBuffered(t *testing.T) {

	b := sinks.NewBuffered()
	for i := 0; i < 3; i++ {
		b.Position(float32(i), 0, 0).Color(255, 255, 255, 255).Texture(0, 0).Overlay(0, 0).Light(15, 15).Normal(0, 1, 0)
	}

	layer, ok := BakeLayer(PassTerrain, b)
	if !ok {
		t.Fatal("BakeLayer returned ok=false for a non-empty buffered sink")
	}

	if layer.Pass != PassTerrain {
		t.Errorf("layer pass = %v, want %v", layer.Pass, PassTerrain)
	}
	if len(layer.Vertices) != 3*sinks.FloatsPerVertex {
		t.Errorf("len(layer.Vertices) = %d, want %d", len(layer.Vertices), 3*sinks.FloatsPerVertex)
	}
	if len(layer.Indices) != 3 {
		t.Fatalf("len(layer.Indices) = %d, want 3", len(layer.Indices))
	}
	for i, idx := range layer.Indices {
		if idx != uint32(i) {
			t.Errorf("layer.Indices[%d] = %d, want %d", i, idx, i)
		}
	}
}

func TestBakeLayerFromDiscard(t *testing.T) {

	d := sinks.NewDiscard()
	d.Position(1, 2, 3).Color(255, 0, 0, 255).Texture(0.5, 0.5).Overlay(0, 0).Light(15, 15).Normal(0, 1, 0)

	if _, ok := BakeLayer(PassClouds, d); ok {
		t.Error("BakeLayer returned ok=true for a discard sink; discarded passes must bake to nothing")
	}
}

func TestBakeLayerFromEmptyBuffered(t *testing.T) {

	if _, ok := BakeLayer(PassTerrain, sinks.NewBuffered()); ok {
		t.Error("BakeLayer returned ok=true for an empty buffered sink")
	}
}

func TestUpdateQueueSubmitDrain(t *testing.T) {

	q := NewUpdateQueue(8)

	q.Submit(SectionUpdate{Pos: SectionPos{0, 0, 0}})
	q.Submit(SectionUpdate{Pos: SectionPos{1, 0, 0}})

	var got []SectionPos
	q.Drain(func(u SectionUpdate) {
		got = append(got, u.Pos)
	})

	if len(got) != 2 || got[0] != (SectionPos{0, 0, 0}) || got[1] != (SectionPos{1, 0, 0}) {
		t.Errorf("drained %v, want updates in submit order", got)
	}

	// A drained queue yields nothing and does not block
	q.Drain(func(u SectionUpdate) {
		t.Errorf("drained unexpected update %v from an empty queue", u.Pos)
	})
}

func TestUpdateQueueFullDropsUpdate(t *testing.T) {

	q := NewUpdateQueue(1)

	q.Submit(SectionUpdate{Pos: SectionPos{0, 0, 0}})
	q.Submit(SectionUpdate{Pos: SectionPos{9, 9, 9}}) // dropped, queue is full

	count := 0
	q.Drain(func(u SectionUpdate) { count++ })

	if count != 1 {
		t.Errorf("drained %d updates, want 1", count)
	}
}
