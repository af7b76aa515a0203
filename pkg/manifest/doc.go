// Package manifest defines which documents receive redirect pages.
//
// The built-in manifest lists the pages of the PHP internals book that moved
// below /php5/. A YAML manifest can override any of its fields.
package manifest
