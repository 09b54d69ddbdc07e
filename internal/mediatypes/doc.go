// Package mediatypes provides the kind, extension and MIME tables shared by
// the picker, the normalizer and the HTTP bridge.
//
// Kinds are resolved two ways. GetKind looks only at the extension:
//
//	kind := mediatypes.GetKind(strings.ToLower(filepath.Ext(name)))
//
// Classify sniffs the file content with mimetype and only falls back to the
// extension when the content is not recognized:
//
//	kind, err := mediatypes.Classify(path)
//
// Patterns turns kinds into glob patterns suitable for file dialog filters.
package mediatypes
