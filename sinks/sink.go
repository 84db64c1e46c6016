// The sinks package defines the vertex sink capability that every
// mesh-emitting call site in the client goes through, along with the
// sink variants that can stand behind it.
//
// A mesh emitter is handed a VertexSink by the renderer's sink policy and
// drives it through one full attribute chain per logical vertex. The emitter
// never knows (and must never care) which variant it is talking to: a
// buffer-backed sink that feeds the renderer, or a discard sink that drops
// everything because the backend already draws that pass itself.
package sinks

// VertexSink accepts one vertex's attributes, call by call.
//
// Every operation returns a VertexSink (ordinarily the receiver itself) so
// attribute calls can be chained. Operations never fail for any numeric
// input; keeping values in range is the caller's responsibility. The
// contract puts no ordering constraint between attribute kinds, but callers
// are expected to complete one full attribute set per vertex before starting
// the next, leading with Position.
type VertexSink interface {
	// Position submits the vertex position.
	Position(x, y, z float32) VertexSink

	// Color submits the vertex color as 0-255 channels.
	Color(r, g, b, a int32) VertexSink

	// Texture submits the texture coordinate.
	Texture(u, v float32) VertexSink

	// Overlay submits the overlay texture coordinate.
	Overlay(u, v int32) VertexSink

	// Light submits the packed lightmap sampling coordinate.
	Light(u, v int32) VertexSink

	// Normal submits the vertex normal.
	Normal(x, y, z float32) VertexSink
}
