// Package types defines the core types and interfaces used throughout
// attributeEvents. This includes the Handler calling convention, the
// ObjectRef identity, and the Scene and Storage ports the host
// application implements.
package types
