// Package watch ties the pieces together: a Session owns the scene,
// storage and handler-registry collaborators, and hands out WatchedObject
// facades that persist notifier descriptors on scene objects and manage
// the live subscriptions rebuilt from them. Session.Reactivate is the
// session-start sweep that restores every persisted watch in the scene.
package watch
