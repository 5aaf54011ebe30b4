package watch

import (
	stderrors "errors"
	"sync"

	"github.com/theodox/attributeEvents/pkg/errors"
	"github.com/theodox/attributeEvents/pkg/logging"
	"github.com/theodox/attributeEvents/pkg/notifier"
	"github.com/theodox/attributeEvents/pkg/registry"
	"github.com/theodox/attributeEvents/pkg/types"
)

// DefaultStorageKey is the reserved metadata key descriptors are stored
// under on each object.
const DefaultStorageKey = "changeEvents"

// Session binds the external collaborators together for the lifetime of a
// host session. It caches WatchedObjects per ref, which is what makes
// repeated Reactivate sweeps idempotent: the same object always resolves
// to the same facade, and subscription bookkeeping lives there.
type Session struct {
	scene    types.Scene
	storage  types.Storage
	handlers *registry.HandlerRegistry
	key      string

	mu      sync.Mutex
	watched map[types.ObjectRef]*WatchedObject
}

// Option configures a Session.
type Option func(*Session)

// WithStorageKey overrides the metadata key used for descriptor storage.
func WithStorageKey(key string) Option {
	return func(s *Session) {
		if key != "" {
			s.key = key
		}
	}
}

// NewSession creates a Session over the given collaborators. A nil
// handlers falls back to the process-wide default registry.
func NewSession(sc types.Scene, st types.Storage, handlers *registry.HandlerRegistry, opts ...Option) *Session {
	if handlers == nil {
		handlers = registry.Default()
	}
	s := &Session{
		scene:    sc,
		storage:  st,
		handlers: handlers,
		key:      DefaultStorageKey,
		watched:  make(map[types.ObjectRef]*WatchedObject),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StorageKey returns the metadata key this session stores descriptors under.
func (s *Session) StorageKey() string {
	return s.key
}

// Handlers returns the registry events dispatch through.
func (s *Session) Handlers() *registry.HandlerRegistry {
	return s.handlers
}

// Watch returns the WatchedObject facade for ref, creating it on first
// use. It fails with ErrObjectNotFound when ref does not resolve in the
// scene, and has no side effects on storage or subscriptions.
func (s *Session) Watch(ref types.ObjectRef) (*WatchedObject, error) {
	if !s.scene.Exists(ref) {
		return nil, errors.Newf(errors.ErrObjectNotFound, "object '%s' does not exist", ref)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if w, exists := s.watched[ref]; exists {
		return w, nil
	}
	w := &WatchedObject{
		ref:     ref,
		session: s,
		subs:    make(map[notifier.Key]types.Subscription),
	}
	s.watched[ref] = w
	return w, nil
}

// Find returns a WatchedObject for every scene object carrying a
// non-empty stored descriptor list. Objects whose storage cannot be read
// are skipped with a warning.
func (s *Session) Find() []*WatchedObject {
	logger := logging.GetLogger("watch")

	var found []*WatchedObject
	for _, ref := range s.scene.Objects() {
		records, ok, err := s.storage.Get(ref, s.key)
		if err != nil {
			logger.Warn().Err(err).Str("object", string(ref)).Msg("cannot read stored events")
			continue
		}
		if !ok || len(records) == 0 {
			continue
		}
		w, err := s.Watch(ref)
		if err != nil {
			continue
		}
		found = append(found, w)
	}
	return found
}

// Outcome reports the result of the reactivation sweep for one object.
type Outcome struct {
	Object    types.ObjectRef
	Activated int
	Err       error
}

// Reactivate scans every object in the scene and re-creates live
// subscriptions for each stored descriptor. Typically called on scene
// open. One object's malformed storage or failing subscription never
// aborts the sweep; such failures are collected in the returned outcomes.
// The sweep is idempotent: watches that are already live stay single.
func (s *Session) Reactivate() []Outcome {
	logger := logging.GetLogger("watch")
	done := logging.LogOperationStart(logger, "reactivate")
	defer done()

	var outcomes []Outcome
	total := 0
	for _, ref := range s.scene.Objects() {
		records, ok, err := s.storage.Get(ref, s.key)
		if err != nil {
			outcomes = append(outcomes, Outcome{Object: ref, Err: errors.Wrapf(err, errors.ErrStorageAccess, "cannot read stored events on '%s'", ref)})
			continue
		}
		if !ok || len(records) == 0 {
			continue
		}

		descriptors, err := notifier.DecodeList(records)
		if err != nil {
			logger.Warn().Err(err).Str("object", string(ref)).Msg("skipping object with malformed storage")
			outcomes = append(outcomes, Outcome{Object: ref, Err: err})
			continue
		}

		w, err := s.Watch(ref)
		if err != nil {
			outcomes = append(outcomes, Outcome{Object: ref, Err: err})
			continue
		}

		outcome := Outcome{Object: ref}
		var failures []error
		for _, d := range descriptors {
			if _, err := w.RegisterEvent(d); err != nil {
				failures = append(failures, err)
				continue
			}
			outcome.Activated++
		}
		outcome.Err = stderrors.Join(failures...)
		total += outcome.Activated
		outcomes = append(outcomes, outcome)
	}

	logger.Info().Int("events", total).Int("objects", len(outcomes)).Msg("reactivated stored events")
	return outcomes
}
