package timing

import (
	"github.com/veandco/go-sdl2/sdl"
)

var (
	perfFrequency uint64
	lastFrame     uint64
	deltaTime     float32
	elapsed       float64
)

func Init() {
	perfFrequency = sdl.GetPerformanceFrequency()
	lastFrame = sdl.GetPerformanceCounter()
}

// FrameStarted must be called once at the top of every frame, before DT is read.
func FrameStarted() {

	now := sdl.GetPerformanceCounter()
	deltaTime = float32(now-lastFrame) / float32(perfFrequency)
	elapsed += float64(deltaTime)
	lastFrame = now
}

// DT returns the time in seconds taken by the last frame
func DT() float32 {
	return deltaTime
}

// ElapsedTime returns the time in seconds since timing.Init was called
func ElapsedTime() float64 {
	return elapsed
}
