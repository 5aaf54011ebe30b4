// Package notifier defines the NotifierDescriptor value: an immutable
// pairing of a watched attribute name with the name of the handler to
// invoke when it changes, plus an optional payload carried to the handler.
// Descriptors serialize to compact JSON storage records, the only form in
// which a watch survives a session boundary.
package notifier
