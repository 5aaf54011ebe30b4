package registry

import (
	"github.com/theodox/attributeEvents/pkg/errors"
	"github.com/theodox/attributeEvents/pkg/logging"
	"github.com/theodox/attributeEvents/pkg/types"
)

// HandlerRegistry maps handler names to callables so that descriptors
// deserialized from object storage can be dispatched by name. Names are
// resolved at fire time, never at descriptor construction: the registry
// only has to be populated before the first event actually fires.
type HandlerRegistry struct {
	handlers Registry[types.Handler]
}

// NewHandlerRegistry creates an empty HandlerRegistry.
func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{
		handlers: New[types.Handler](),
	}
}

// Register binds name to handler. Re-registering an existing name replaces
// the previous handler (last writer wins).
func (r *HandlerRegistry) Register(name string, handler types.Handler) error {
	if handler == nil {
		return errors.Newf(errors.ErrInvalidInput, "handler for '%s' cannot be nil", name)
	}
	if err := r.handlers.Register(name, handler); err != nil {
		return err
	}

	logger := logging.GetLogger("registry")
	logger.Debug().Str("handler", name).Msg("handler registered")
	return nil
}

// Unregister removes the binding for name, if present.
func (r *HandlerRegistry) Unregister(name string) {
	_ = r.handlers.Remove(name)
}

// Has reports whether a handler is registered under name.
func (r *HandlerRegistry) Has(name string) bool {
	return r.handlers.Has(name)
}

// Names returns all registered handler names in sorted order.
func (r *HandlerRegistry) Names() []string {
	return r.handlers.List()
}

// Dispatch resolves name and invokes the handler with sender and ctx.
// An unregistered name fails with ErrUnknownHandler: a missing handler is
// a configuration or session-ordering bug and must surface, not no-op.
// Errors returned by the handler itself pass through untouched.
func (r *HandlerRegistry) Dispatch(name string, sender types.ObjectRef, ctx types.Context) error {
	handler, err := r.handlers.Get(name)
	if err != nil {
		return errors.Newf(errors.ErrUnknownHandler, "no handler registered for '%s'", name).
			WithDetail("sender", string(sender))
	}

	logger := logging.GetLogger("registry")
	logger.Debug().Str("handler", name).Str("sender", string(sender)).Msg("dispatching event")

	return handler(sender, ctx)
}

// defaultRegistry serves the one-registry-per-process usage pattern.
// Tests and embedders that need isolation construct their own instance.
var defaultRegistry = NewHandlerRegistry()

// Default returns the process-wide HandlerRegistry.
func Default() *HandlerRegistry {
	return defaultRegistry
}
