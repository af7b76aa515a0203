// Package syncs provides synchronization primitives for writers sharing a
// filesystem tree.
package syncs
