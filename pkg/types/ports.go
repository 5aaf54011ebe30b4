package types

// Scene is the port onto the host's scene graph. The core never touches
// host APIs directly; an adapter implements this against the concrete
// application (or scene.Memory stands in for tests and tooling).
type Scene interface {
	// Exists reports whether ref resolves to a live object.
	Exists(ref ObjectRef) bool

	// Objects enumerates every object currently in the scene.
	Objects() []ObjectRef

	// Subscribe registers cb for change notifications on (ref, attribute)
	// and returns a cancellable handle. The attribute may be a logical
	// compound name covering several underlying sub-attributes; matching
	// granularity is the host's concern.
	Subscribe(ref ObjectRef, attribute string, cb ChangeCallback) (Subscription, error)
}

// Subscription is a live, session-scoped registration with the host's
// change-notification mechanism. It is never persisted.
type Subscription interface {
	// Cancel stops delivery. Cancelling an already-cancelled or dangling
	// subscription is a no-op.
	Cancel()

	// Active reports whether the subscription still delivers events.
	Active() bool
}

// Storage is the port onto the host's per-object metadata storage. Values
// are ordered sequences of descriptor storage records, mirroring the
// string-array shape hosts typically provide.
type Storage interface {
	// Get returns the record list stored under key on ref. ok is false
	// when nothing has ever been stored there.
	Get(ref ObjectRef, key string) (records []string, ok bool, err error)

	// Set replaces the record list stored under key on ref. The write is
	// immediate and durable for the object's lifetime within the session.
	Set(ref ObjectRef, key string, records []string) error

	// Delete removes the value stored under key on ref, if any.
	Delete(ref ObjectRef, key string) error
}
