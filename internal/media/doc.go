// Package media defines the raw items a picker hands over (Photo, Video) and
// the normalized Result shape delivered back to the host.
//
// Photos are decoded eagerly with imaging, honoring EXIF orientation, so the
// rest of the pipeline works on image.Image values. Videos are never decoded;
// they travel as a location that is either a URI or a filesystem path, and
// FileURI, LocationURI and PathFromLocation convert between the two.
package media
