package types

// ObjectRef identifies a single object in the host scene. It is a lookup
// key, not an owning reference: the object's lifetime is controlled by the
// host, and a ref may stop resolving at any time.
type ObjectRef string

// Context carries the open-ended named arguments delivered to a handler:
// whatever the host supplies with a change notification, merged with the
// payload stored on the triggering descriptor.
type Context map[string]interface{}

// Standard context keys set by the dispatch path before a handler runs.
const (
	// CtxAttribute is the watched attribute name that triggered the event.
	CtxAttribute = "attribute"
	// CtxHandler is the name the handler was resolved under.
	CtxHandler = "handler"
)

// Handler is a named capability invoked when a watched attribute changes.
// The sender is the object the change occurred on. A returned error
// propagates out of the subscription callback to the host's delivery
// mechanism; it is never swallowed by the dispatch path.
type Handler func(sender ObjectRef, ctx Context) error

// ChangeCallback is the function a Scene invokes when a subscribed
// attribute changes. Its error return travels back to the host.
type ChangeCallback func(sender ObjectRef, ctx Context) error

// Merge returns a copy of ctx with all entries of extra added. Keys already
// present in ctx win. A nil receiver is treated as empty.
func (c Context) Merge(extra Context) Context {
	merged := make(Context, len(c)+len(extra))
	for k, v := range extra {
		merged[k] = v
	}
	for k, v := range c {
		merged[k] = v
	}
	return merged
}
