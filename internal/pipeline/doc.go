// Package pipeline sequences one sensor tick through the core:
// convert the active stream's frame, project and render tracked bodies, and
// optionally composite both onto a display canvas.
//
// It replaces multi-listener frame-arrived fan-out with a single explicit call
// per tick, so ordering is deterministic. A Pipeline spawns no goroutines and
// keeps no per-frame state.
package pipeline
