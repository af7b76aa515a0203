// Package paths resolves where generated files are placed.
//
// The output root is anchored to the enclosing git repository so that the
// generator behaves the same regardless of which subdirectory it is run from.
package paths
