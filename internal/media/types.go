package media

import (
	"image"

	"media-picker/internal/mediatypes"
)

// Kind is the wire kind of a normalized result ("image" or "video").
type Kind = mediatypes.Kind

// Item is one raw media element delivered by a picker.
type Item interface {
	Kind() Kind
}

// Photo is a decoded still image. Width and height come from the image bounds.
type Photo struct {
	Image image.Image
}

// Kind implements Item.
func (Photo) Kind() Kind { return mediatypes.KindImage }

// Width returns the pixel width of the photo.
func (p Photo) Width() int { return p.Image.Bounds().Dx() }

// Height returns the pixel height of the photo.
func (p Photo) Height() int { return p.Image.Bounds().Dy() }

// Video references a clip by location. Location is either a URI or a
// filesystem path; videos are never decoded.
type Video struct {
	Location string
}

// Kind implements Item.
func (Video) Kind() Kind { return mediatypes.KindVideo }

// Result is one element of a successful pick response.
type Result struct {
	Type     Kind   `json:"type"`
	IsBase64 bool   `json:"isBase64"`
	Src      string `json:"src"`
}
