package scene

import (
	"sort"
	"strings"
	"sync"

	"github.com/theodox/attributeEvents/pkg/errors"
	"github.com/theodox/attributeEvents/pkg/logging"
	"github.com/theodox/attributeEvents/pkg/types"
)

// Memory is an in-process scene graph implementing both the Scene and
// Storage ports. Objects carry string attributes and per-key metadata
// record lists. Change notifications are delivered synchronously on the
// caller's goroutine, one at a time, matching the host model the core is
// written against.
type Memory struct {
	mu      sync.Mutex
	objects map[types.ObjectRef]*object
}

type object struct {
	attrs map[string]string
	meta  map[string][]string
	subs  []*subscription
}

type subscription struct {
	scene     *Memory
	ref       types.ObjectRef
	attribute string
	cb        types.ChangeCallback
	active    bool
}

var (
	_ types.Scene   = (*Memory)(nil)
	_ types.Storage = (*Memory)(nil)
)

// NewMemory creates an empty scene.
func NewMemory() *Memory {
	return &Memory{objects: make(map[types.ObjectRef]*object)}
}

// AddObject creates an object under ref. Adding an existing ref is a no-op.
func (m *Memory) AddObject(ref types.ObjectRef) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.objects[ref]; exists {
		return
	}
	m.objects[ref] = &object{
		attrs: make(map[string]string),
		meta:  make(map[string][]string),
	}
}

// DeleteObject removes an object together with its metadata. Live
// subscriptions on the object become inactive; cancelling them later is
// still safe.
func (m *Memory) DeleteObject(ref types.ObjectRef) {
	m.mu.Lock()
	defer m.mu.Unlock()

	obj, exists := m.objects[ref]
	if !exists {
		return
	}
	for _, sub := range obj.subs {
		sub.active = false
	}
	delete(m.objects, ref)
}

// Exists reports whether ref resolves to a live object.
func (m *Memory) Exists(ref types.ObjectRef) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, exists := m.objects[ref]
	return exists
}

// Objects enumerates all objects in stable sorted order.
func (m *Memory) Objects() []types.ObjectRef {
	m.mu.Lock()
	defer m.mu.Unlock()

	refs := make([]types.ObjectRef, 0, len(m.objects))
	for ref := range m.objects {
		refs = append(refs, ref)
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i] < refs[j] })
	return refs
}

// Subscribe registers cb for changes of attribute on ref. A subscription
// on a compound name like "translate" also fires for dotted
// sub-attributes such as "translate.x".
func (m *Memory) Subscribe(ref types.ObjectRef, attribute string, cb types.ChangeCallback) (types.Subscription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	obj, exists := m.objects[ref]
	if !exists {
		return nil, errors.Newf(errors.ErrObjectNotFound, "cannot subscribe: object '%s' does not exist", ref)
	}

	sub := &subscription{
		scene:     m,
		ref:       ref,
		attribute: attribute,
		cb:        cb,
		active:    true,
	}
	obj.subs = append(obj.subs, sub)
	return sub, nil
}

// GetAttr returns the current value of an attribute, or "" when unset.
func (m *Memory) GetAttr(ref types.ObjectRef, attribute string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if obj, exists := m.objects[ref]; exists {
		return obj.attrs[attribute]
	}
	return ""
}

// SetAttr updates an attribute value and synchronously delivers change
// notifications to matching subscriptions, in registration order. Errors
// returned by callbacks surface in the host's console as warnings; the
// host does not abort delivery on a failing callback.
func (m *Memory) SetAttr(ref types.ObjectRef, attribute, value string) error {
	m.mu.Lock()
	obj, exists := m.objects[ref]
	if !exists {
		m.mu.Unlock()
		return errors.Newf(errors.ErrObjectNotFound, "object '%s' does not exist", ref)
	}
	obj.attrs[attribute] = value

	var fired []*subscription
	for _, sub := range obj.subs {
		if sub.active && attributeMatches(sub.attribute, attribute) {
			fired = append(fired, sub)
		}
	}
	m.mu.Unlock()

	logger := logging.GetLogger("scene")
	for _, sub := range fired {
		ctx := types.Context{"changed": attribute, "value": value}
		if err := sub.cb(ref, ctx); err != nil {
			logger.Warn().
				Err(err).
				Str("object", string(ref)).
				Str("attribute", attribute).
				Msg("change callback failed")
		}
	}
	return nil
}

// attributeMatches reports whether a change of changed should fire a
// subscription on watched. A compound watch covers its dotted children.
func attributeMatches(watched, changed string) bool {
	return watched == changed || strings.HasPrefix(changed, watched+".")
}

// Get implements the Storage port.
func (m *Memory) Get(ref types.ObjectRef, key string) ([]string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	obj, exists := m.objects[ref]
	if !exists {
		return nil, false, errors.Newf(errors.ErrObjectNotFound, "object '%s' does not exist", ref)
	}

	records, ok := obj.meta[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]string, len(records))
	copy(out, records)
	return out, true, nil
}

// Set implements the Storage port. The write is visible immediately.
func (m *Memory) Set(ref types.ObjectRef, key string, records []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	obj, exists := m.objects[ref]
	if !exists {
		return errors.Newf(errors.ErrObjectNotFound, "object '%s' does not exist", ref)
	}

	stored := make([]string, len(records))
	copy(stored, records)
	obj.meta[key] = stored
	return nil
}

// Delete implements the Storage port.
func (m *Memory) Delete(ref types.ObjectRef, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	obj, exists := m.objects[ref]
	if !exists {
		return errors.Newf(errors.ErrObjectNotFound, "object '%s' does not exist", ref)
	}
	delete(obj.meta, key)
	return nil
}

// Attributes returns a copy of an object's attribute map, or nil when the
// object does not exist.
func (m *Memory) Attributes(ref types.ObjectRef) map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()

	obj, exists := m.objects[ref]
	if !exists {
		return nil
	}
	out := make(map[string]string, len(obj.attrs))
	for k, v := range obj.attrs {
		out[k] = v
	}
	return out
}

// Metadata returns a copy of an object's metadata map, or nil when the
// object does not exist.
func (m *Memory) Metadata(ref types.ObjectRef) map[string][]string {
	m.mu.Lock()
	defer m.mu.Unlock()

	obj, exists := m.objects[ref]
	if !exists {
		return nil
	}
	out := make(map[string][]string, len(obj.meta))
	for k, v := range obj.meta {
		records := make([]string, len(v))
		copy(records, v)
		out[k] = records
	}
	return out
}

// SetRawMeta stores records under key without any validation. Tests use
// it to plant malformed storage.
func (m *Memory) SetRawMeta(ref types.ObjectRef, key string, records []string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if obj, exists := m.objects[ref]; exists {
		obj.meta[key] = records
	}
}

func (s *subscription) Cancel() {
	s.scene.mu.Lock()
	defer s.scene.mu.Unlock()

	if !s.active {
		return
	}
	s.active = false

	obj, exists := s.scene.objects[s.ref]
	if !exists {
		return
	}
	for i, sub := range obj.subs {
		if sub == s {
			obj.subs = append(obj.subs[:i], obj.subs[i+1:]...)
			return
		}
	}
}

func (s *subscription) Active() bool {
	s.scene.mu.Lock()
	defer s.scene.mu.Unlock()
	return s.active
}
