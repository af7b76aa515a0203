// Package redirect generates static HTML redirect pages.
//
// Each page is written at a relative document path below an output root and
// sends the browser to the same relative path below a URL prefix, using a
// meta refresh, an inline script, and a fallback link. Generation is
// idempotent: every run overwrites its outputs with byte-identical content.
package redirect
