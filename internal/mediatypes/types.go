package mediatypes

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Kind represents the kind of a picked media item.
type Kind string

const (
	// KindImage represents a still image.
	KindImage Kind = "image"
	// KindVideo represents a video clip.
	KindVideo Kind = "video"
	// KindOther represents an unknown or unsupported file.
	KindOther Kind = "other"
)

// ImageExtensions maps file extensions to whether they are decodable image formats.
var ImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
	".tiff": true,
	".tif":  true,
}

// VideoExtensions maps file extensions to whether they are supported video formats.
var VideoExtensions = map[string]bool{
	".mp4":  true,
	".mkv":  true,
	".avi":  true,
	".mov":  true,
	".wmv":  true,
	".flv":  true,
	".webm": true,
	".m4v":  true,
	".mpeg": true,
	".mpg":  true,
	".3gp":  true,
	".ts":   true,
}

// MimeTypes maps file extensions to their MIME types.
var MimeTypes = map[string]string{
	// Images
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".bmp":  "image/bmp",
	".webp": "image/webp",
	".tiff": "image/tiff",
	".tif":  "image/tiff",

	// Videos
	".mp4":  "video/mp4",
	".mkv":  "video/x-matroska",
	".avi":  "video/x-msvideo",
	".mov":  "video/quicktime",
	".wmv":  "video/x-ms-wmv",
	".flv":  "video/x-flv",
	".webm": "video/webm",
	".m4v":  "video/x-m4v",
	".mpeg": "video/mpeg",
	".mpg":  "video/mpeg",
	".3gp":  "video/3gpp",
	".ts":   "video/mp2t",
}

// GetKind returns the Kind for a given file extension.
// The extension should be lowercase and include the leading dot (e.g., ".jpg").
// Returns KindOther if the extension is not recognized.
func GetKind(ext string) Kind {
	if ImageExtensions[ext] {
		return KindImage
	}
	if VideoExtensions[ext] {
		return KindVideo
	}
	return KindOther
}

// GetMimeType returns the MIME type for a given file extension.
// Returns "application/octet-stream" if the extension is not recognized.
func GetMimeType(ext string) string {
	if mime, ok := MimeTypes[ext]; ok {
		return mime
	}
	return "application/octet-stream"
}

// Classify determines the Kind of the file at path from its content, falling
// back to the extension when the content is not recognized as media.
func Classify(path string) (Kind, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return KindOther, err
	}

	for m := mtype; m != nil; m = m.Parent() {
		switch {
		case strings.HasPrefix(m.String(), "image/"):
			// Sniffed images we cannot decode (svg, heic) are still rejected.
			if ImageExtensions[m.Extension()] {
				return KindImage, nil
			}
			return KindOther, nil
		case strings.HasPrefix(m.String(), "video/"):
			return KindVideo, nil
		}
	}

	return GetKind(strings.ToLower(filepath.Ext(path))), nil
}

// Patterns returns glob patterns ("*.jpg", ...) matching the extensions of
// the given kinds, sorted for stable dialog filters.
func Patterns(kinds ...Kind) []string {
	var patterns []string
	for _, kind := range kinds {
		var exts map[string]bool
		switch kind {
		case KindImage:
			exts = ImageExtensions
		case KindVideo:
			exts = VideoExtensions
		default:
			continue
		}
		for ext := range exts {
			patterns = append(patterns, "*"+ext)
		}
	}
	sort.Strings(patterns)
	return patterns
}
