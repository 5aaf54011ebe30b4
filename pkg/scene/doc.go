// Package scene provides concrete implementations of the Scene and
// Storage ports. Memory is a full in-process host simulator used by tests
// and the CLI; the scenefile subpackage persists a Memory scene to disk.
package scene
