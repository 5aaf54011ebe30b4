// Package registry provides a generic, type-safe registry for name-keyed
// items, and the process-wide HandlerRegistry that resolves handler names
// to callables at event-dispatch time.
package registry
