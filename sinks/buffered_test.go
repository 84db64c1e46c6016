package sinks

import (
	"testing"
)

func TestBufferedAssemblesVertices(t *testing.T) {

	b := NewBuffered()

	b.Position(1, 2, 3).
		Color(255, 0, 0, 255).
		Texture(0.5, 0.25).
		Overlay(1, 2).
		Light(15, 15).
		Normal(0, 0, 1)

	b.Position(4, 5, 6).
		Color(0, 255, 0, 128).
		Texture(1, 1).
		Overlay(0, 0).
		Light(0, 0).
		Normal(1, 0, 0)

	if b.VertexCount() != 2 {
		t.Fatalf("VertexCount = %d, want 2", b.VertexCount())
	}

	v := b.Vertices()[0]
	if v.Pos.Data != [3]float32{1, 2, 3} {
		t.Errorf("vertex 0 pos = %v, want [1 2 3]", v.Pos.Data)
	}
	if v.Color.Data != [4]float32{255, 0, 0, 255} {
		t.Errorf("vertex 0 color = %v, want [255 0 0 255]", v.Color.Data)
	}
	if v.UV.Data != [2]float32{0.5, 0.25} {
		t.Errorf("vertex 0 uv = %v, want [0.5 0.25]", v.UV.Data)
	}
	if v.Overlay != [2]int32{1, 2} {
		t.Errorf("vertex 0 overlay = %v, want [1 2]", v.Overlay)
	}
	if v.Light != [2]int32{15, 15} {
		t.Errorf("vertex 0 light = %v, want [15 15]", v.Light)
	}
	if v.Normal.Data != [3]float32{0, 0, 1} {
		t.Errorf("vertex 0 normal = %v, want [0 0 1]", v.Normal.Data)
	}

	v = b.Vertices()[1]
	if v.Pos.Data != [3]float32{4, 5, 6} {
		t.Errorf("vertex 1 pos = %v, want [4 5 6]", v.Pos.Data)
	}
}

func TestBufferedPositionBeginsNewVertex(t *testing.T) {

	b := NewBuffered()

	b.Position(0, 0, 0)
	b.Position(1, 1, 1)
	b.Position(2, 2, 2)

	if b.VertexCount() != 3 {
		t.Fatalf("VertexCount = %d, want 3", b.VertexCount())
	}
}

func TestBufferedDefaults(t *testing.T) {

	b := NewBuffered()
	b.Position(1, 2, 3)

	v := b.Vertices()[0]
	if v.Color.Data != [4]float32{255, 255, 255, 255} {
		t.Errorf("default color = %v, want opaque white", v.Color.Data)
	}
	if v.Normal.Data != [3]float32{0, 1, 0} {
		t.Errorf("default normal = %v, want up", v.Normal.Data)
	}
	if v.Overlay != [2]int32{0, 0} || v.Light != [2]int32{0, 0} {
		t.Errorf("default overlay/light = %v/%v, want zero", v.Overlay, v.Light)
	}
}

func TestBufferedAttributeWithoutPosition(t *testing.T) {

	// The contract allows any call order: an attribute call with no open
	// vertex must open one instead of failing.
	b := NewBuffered()
	b.Color(1, 2, 3, 4).Texture(0.5, 0.5)

	if b.VertexCount() != 1 {
		t.Fatalf("VertexCount = %d, want 1", b.VertexCount())
	}
	if b.Vertices()[0].Color.Data != [4]float32{1, 2, 3, 4} {
		t.Errorf("color = %v, want [1 2 3 4]", b.Vertices()[0].Color.Data)
	}
}

func TestBufferedRepeatedAttributeOverwrites(t *testing.T) {

	b := NewBuffered()
	b.Position(0, 0, 0).Texture(0.1, 0.1).Texture(0.9, 0.9)

	if b.VertexCount() != 1 {
		t.Fatalf("VertexCount = %d, want 1", b.VertexCount())
	}
	if b.Vertices()[0].UV.Data != [2]float32{0.9, 0.9} {
		t.Errorf("uv = %v, want the last submitted value [0.9 0.9]", b.Vertices()[0].UV.Data)
	}
}

func TestBufferedInterleaved(t *testing.T) {

	b := NewBuffered()

	b.Position(1, 2, 3).
		Color(255, 0, 510, -10).
		Texture(0.5, 0.25).
		Overlay(1, 2).
		Light(3, 4).
		Normal(0, 0, 1)

	got := b.Interleaved()

	want := []float32{
		1, 2, 3, // pos
		1, 0, 1, 0, // color, clamped then normalized
		0.5, 0.25, // uv
		1, 2, // overlay
		3, 4, // light
		0, 0, 1, // normal
	}

	if len(got) != FloatsPerVertex {
		t.Fatalf("len(Interleaved) = %d, want %d", len(got), FloatsPerVertex)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Interleaved[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestBufferedReset(t *testing.T) {

	b := NewBuffered()
	b.Position(1, 2, 3)
	b.Reset()

	if b.VertexCount() != 0 {
		t.Fatalf("VertexCount after Reset = %d, want 0", b.VertexCount())
	}
	if got := b.Interleaved(); len(got) != 0 {
		t.Errorf("Interleaved after Reset has %d floats, want 0", len(got))
	}

	b.Position(7, 8, 9)
	if b.VertexCount() != 1 {
		t.Fatalf("VertexCount after reuse = %d, want 1", b.VertexCount())
	}
}

func TestBufferedChainingIdentity(t *testing.T) {

	b := NewBuffered()

	got := b.Position(1, 2, 3).Color(1, 1, 1, 1).Texture(0, 0).Overlay(0, 0).Light(0, 0).Normal(0, 1, 0)
	if got != VertexSink(b) {
		t.Errorf("chain returned %v, want the original sink %v", got, b)
	}
}
