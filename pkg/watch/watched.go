package watch

import (
	"sync"

	"github.com/theodox/attributeEvents/pkg/errors"
	"github.com/theodox/attributeEvents/pkg/logging"
	"github.com/theodox/attributeEvents/pkg/notifier"
	"github.com/theodox/attributeEvents/pkg/types"
)

// WatchedObject is the per-object facade over stored descriptors and live
// subscriptions. The stored list is the durable source of truth; the
// subscription set is session-scoped and rebuilt from storage by
// Session.Reactivate.
type WatchedObject struct {
	ref     types.ObjectRef
	session *Session

	mu   sync.Mutex
	subs map[notifier.Key]types.Subscription
}

// Ref returns the identity of the underlying scene object.
func (w *WatchedObject) Ref() types.ObjectRef {
	return w.ref
}

// Descriptors reads and decodes the stored descriptor list. A decode
// failure surfaces ErrMalformedRecord to the caller.
func (w *WatchedObject) Descriptors() ([]notifier.Descriptor, error) {
	records, ok, err := w.session.storage.Get(w.ref, w.session.key)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrStorageAccess, "cannot read stored events on '%s'", w.ref)
	}
	if !ok {
		return nil, nil
	}
	return notifier.DecodeList(records)
}

// AddEvent appends d to the stored descriptor list and persists it
// immediately. Adding a descriptor equal to one already stored is a
// silent no-op, so the persisted list never holds duplicates.
func (w *WatchedObject) AddEvent(d notifier.Descriptor) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	stored, err := w.Descriptors()
	if err != nil {
		return err
	}
	if notifier.Contains(stored, d) {
		logger := logging.GetLogger("watch")
		logger.Debug().
			Str("object", string(w.ref)).
			Stringer("descriptor", d).
			Msg("descriptor already stored")
		return nil
	}

	records, err := notifier.EncodeList(append(stored, d))
	if err != nil {
		return err
	}
	if err := w.session.storage.Set(w.ref, w.session.key, records); err != nil {
		return errors.Wrapf(err, errors.ErrStorageAccess, "cannot persist events on '%s'", w.ref)
	}
	return nil
}

// RemoveEvent deletes stored descriptors equal to d and persists the
// shortened list. Any live subscription for d is cancelled as well, so a
// removed watch can never fire again.
func (w *WatchedObject) RemoveEvent(d notifier.Descriptor) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.unregisterLocked(d)

	stored, err := w.Descriptors()
	if err != nil {
		return err
	}

	kept := stored[:0]
	for _, existing := range stored {
		if !existing.Equal(d) {
			kept = append(kept, existing)
		}
	}
	if len(kept) == len(stored) {
		return nil
	}

	records, err := notifier.EncodeList(kept)
	if err != nil {
		return err
	}
	if err := w.session.storage.Set(w.ref, w.session.key, records); err != nil {
		return errors.Wrapf(err, errors.ErrStorageAccess, "cannot persist events on '%s'", w.ref)
	}
	return nil
}

// RegisterEvent creates the live subscription for d. The descriptor must
// already be stored (AddEvent and RegisterEvent are separate, explicit
// steps). Registering an already-active descriptor returns the existing
// handle; a single attribute change never fires a handler twice.
func (w *WatchedObject) RegisterEvent(d notifier.Descriptor) (types.Subscription, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	stored, err := w.Descriptors()
	if err != nil {
		return nil, err
	}
	if !notifier.Contains(stored, d) {
		return nil, errors.Newf(errors.ErrDescriptorNotStored, "descriptor %s is not stored on '%s'; call AddEvent first", d, w.ref)
	}

	key := d.Key()
	if existing, exists := w.subs[key]; exists && existing.Active() {
		return existing, nil
	}

	sub, err := w.session.scene.Subscribe(w.ref, d.Attribute(), w.callback(d))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSubscribe, "cannot subscribe to %s on '%s'", d.Attribute(), w.ref)
	}
	w.subs[key] = sub

	logger := logging.GetLogger("watch")
	logger.Info().
		Str("object", string(w.ref)).
		Str("attribute", d.Attribute()).
		Str("handler", d.HandlerName()).
		Msg("listening")
	return sub, nil
}

// callback builds the change callback for d. At fire time it resolves the
// handler name through the session's registry; resolution failures and
// handler errors travel back to the host's delivery mechanism.
func (w *WatchedObject) callback(d notifier.Descriptor) types.ChangeCallback {
	return func(sender types.ObjectRef, hostCtx types.Context) error {
		// Delivery ordering around object deletion is not guaranteed;
		// firing against a vanished object is tolerated, not an error.
		if !w.session.scene.Exists(sender) {
			logger := logging.GetLogger("watch")
			logger.Debug().
				Str("object", string(sender)).
				Msg("event fired for deleted object")
			return nil
		}

		ctx := hostCtx.Merge(d.Data())
		ctx[types.CtxAttribute] = d.Attribute()
		ctx[types.CtxHandler] = d.HandlerName()
		return w.session.handlers.Dispatch(d.HandlerName(), sender, ctx)
	}
}

// UnregisterEvent cancels the live subscription for d, if any. The stored
// list is untouched: the watch is silenced for this session, not removed.
func (w *WatchedObject) UnregisterEvent(d notifier.Descriptor) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.unregisterLocked(d)
}

// UnregisterAll cancels every live subscription on this object without
// touching storage.
func (w *WatchedObject) UnregisterAll() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for key, sub := range w.subs {
		sub.Cancel()
		delete(w.subs, key)
	}
}

// IsActive reports whether d currently has a live subscription.
func (w *WatchedObject) IsActive(d notifier.Descriptor) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	sub, exists := w.subs[d.Key()]
	return exists && sub.Active()
}

// ActiveCount returns the number of live subscriptions on this object.
func (w *WatchedObject) ActiveCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	count := 0
	for _, sub := range w.subs {
		if sub.Active() {
			count++
		}
	}
	return count
}

func (w *WatchedObject) unregisterLocked(d notifier.Descriptor) {
	key := d.Key()
	if sub, exists := w.subs[key]; exists {
		sub.Cancel()
		delete(w.subs, key)
	}
}
