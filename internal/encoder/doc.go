// Package encoder produces the final representation of normalized media.
//
// Images are encoded as JPEG or PNG and either returned inline as base64 or
// written to a temp file whose file:// URI is returned. Videos are never
// re-encoded: they are read and base64-encoded verbatim, or their location is
// passed through as a URI.
//
// Any failure is reported as an error matching ErrEncodeFailed.
package encoder
