package render

import (
	"sync"
	"testing"

	"github.com/bloeys/nvox/sinks"
)

func TestSinkPolicySelection(t *testing.T) {

	sp := NewSinkPolicy(PassClouds)

	if _, ok := sp.Sink(PassClouds).(*sinks.Discard); !ok {
		t.Errorf("natively handled pass got %T, want *sinks.Discard", sp.Sink(PassClouds))
	}

	if _, ok := sp.Sink(PassTerrain).(*sinks.Buffered); !ok {
		t.Errorf("host handled pass got %T, want *sinks.Buffered", sp.Sink(PassTerrain))
	}

	// Buffered sinks are per draw call, never shared
	if sp.Sink(PassTerrain) == sp.Sink(PassTerrain) {
		t.Error("two draw calls of the same pass got the same buffered sink")
	}
}

func TestSinkPolicyToggle(t *testing.T) {

	sp := NewSinkPolicy()

	if sp.IsNativelyHandled(PassParticles) {
		t.Error("pass marked natively handled by default")
	}

	sp.SetNativelyHandled(PassParticles, true)
	if _, ok := sp.Sink(PassParticles).(*sinks.Discard); !ok {
		t.Errorf("after SetNativelyHandled(true) got %T, want *sinks.Discard", sp.Sink(PassParticles))
	}

	sp.SetNativelyHandled(PassParticles, false)
	if _, ok := sp.Sink(PassParticles).(*sinks.Buffered); !ok {
		t.Errorf("after SetNativelyHandled(false) got %T, want *sinks.Buffered", sp.Sink(PassParticles))
	}
}

func TestSinkPolicyConcurrent(t *testing.T) {

	sp := NewSinkPolicy(PassClouds)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				sp.SetNativelyHandled(PassText, g%2 == 0)
				sp.Sink(PassTerrain).Position(0, 0, 0)
				sp.Sink(PassClouds).Position(0, 0, 0)
			}
		}(g)
	}
	wg.Wait()
}

func TestSinkPolicyUnknownPassPanics(t *testing.T) {

	defer func() {
		if recover() == nil {
			t.Error("Sink with an out-of-range pass did not panic")
		}
	}()

	NewSinkPolicy().Sink(passCount)
}
