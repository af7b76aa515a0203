// Package redirecterrors provides error definitions for redirect generation.
//
// Errors are sentinel values meant to be wrapped with additional context,
// usually the offending path, and matched with [errors.Is].
package redirecterrors
