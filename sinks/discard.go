package sinks

var _ VertexSink = &Discard{}

// Discard implements VertexSink with zero observable effect.
//
// It is used for draw calls that must still run through host code (to keep
// call-count expectations and state machines intact) while their geometry is
// already produced by the backend itself. Discard holds no state, so a
// single instance can be shared by any number of goroutines without locking.
type Discard struct{}

func NewDiscard() *Discard {
	return &Discard{}
}

func (d *Discard) Position(x, y, z float32) VertexSink {
	return d
}

func (d *Discard) Color(r, g, b, a int32) VertexSink {
	return d
}

func (d *Discard) Texture(u, v float32) VertexSink {
	return d
}

func (d *Discard) Overlay(u, v int32) VertexSink {
	return d
}

func (d *Discard) Light(u, v int32) VertexSink {
	return d
}

func (d *Discard) Normal(x, y, z float32) VertexSink {
	return d
}
