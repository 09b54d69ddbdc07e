// Package tempfiles issues namespaced temp file paths and purges them on
// request.
//
// Every path a Manager issues is <dir>/<prefix><uuid>.<ext>. Purge deletes
// only directory entries starting with the prefix, so files owned by anyone
// else in a shared temp directory are never touched. Nothing is locked: a
// purge racing a writer that was just issued a path may remove its file.
package tempfiles
