// Package testutil provides helpers shared by attributeEvents tests:
// pre-populated in-memory scenes and a recording handler.
package testutil

import (
	"sync"

	"github.com/theodox/attributeEvents/pkg/scene"
	"github.com/theodox/attributeEvents/pkg/types"
)

// SceneWith creates a Memory scene containing the given objects.
func SceneWith(refs ...types.ObjectRef) *scene.Memory {
	m := scene.NewMemory()
	for _, ref := range refs {
		m.AddObject(ref)
	}
	return m
}

// Invocation records one handler call.
type Invocation struct {
	Sender types.ObjectRef
	Ctx    types.Context
}

// Recorder collects handler invocations for assertions.
type Recorder struct {
	mu    sync.Mutex
	calls []Invocation
}

// Handler returns a types.Handler that appends every call to the recorder.
func (r *Recorder) Handler() types.Handler {
	return func(sender types.ObjectRef, ctx types.Context) error {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.calls = append(r.calls, Invocation{Sender: sender, Ctx: ctx})
		return nil
	}
}

// Calls returns a copy of the recorded invocations.
func (r *Recorder) Calls() []Invocation {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Invocation, len(r.calls))
	copy(out, r.calls)
	return out
}

// Count returns the number of recorded invocations.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// Reset discards recorded invocations.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}
