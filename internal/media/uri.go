package media

import (
	"fmt"
	"net/url"
	"path/filepath"
)

// FileURI returns the file:// URI for an absolute filesystem path.
func FileURI(path string) string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	return u.String()
}

// hasScheme reports whether loc already carries a URI scheme. Single-letter
// schemes are Windows drive letters, not URIs.
func hasScheme(loc string) bool {
	u, err := url.Parse(loc)
	return err == nil && len(u.Scheme) > 1
}

// LocationURI returns loc unchanged when it is already a URI, otherwise the
// file:// URI of the path.
func LocationURI(loc string) string {
	if hasScheme(loc) {
		return loc
	}
	if abs, err := filepath.Abs(loc); err == nil {
		loc = abs
	}
	return FileURI(loc)
}

// PathFromLocation resolves a file:// URI or a plain path to a filesystem path.
func PathFromLocation(loc string) (string, error) {
	if !hasScheme(loc) {
		return loc, nil
	}

	u, err := url.Parse(loc)
	if err != nil {
		return "", err
	}
	if u.Scheme != "file" {
		return "", fmt.Errorf("unsupported location scheme %q", u.Scheme)
	}
	return filepath.FromSlash(u.Path), nil
}
