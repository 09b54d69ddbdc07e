package encoder

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"time"

	"media-picker/internal/filesystem"
	"media-picker/internal/logging"
	"media-picker/internal/media"
	"media-picker/internal/mediatypes"
	"media-picker/internal/metrics"
	"media-picker/internal/tempfiles"
)

// DefaultJPEGQuality is the quality used when AsJpeg is set.
const DefaultJPEGQuality = 50

// ErrEncodeFailed is matched by every encoding failure.
var ErrEncodeFailed = errors.New("encode failed")

// Options selects the representation of one item.
type Options struct {
	AsBase64 bool
	AsJpeg   bool
}

// Encoder turns photos and videos into results.
type Encoder struct {
	temp        *tempfiles.Manager
	jpegQuality int
	retry       filesystem.RetryConfig
}

// New returns an Encoder writing file-backed images through temp. A
// non-positive quality means DefaultJPEGQuality.
func New(temp *tempfiles.Manager, jpegQuality int) *Encoder {
	if jpegQuality <= 0 || jpegQuality > 100 {
		jpegQuality = DefaultJPEGQuality
	}
	return &Encoder{
		temp:        temp,
		jpegQuality: jpegQuality,
		retry:       filesystem.DefaultRetryConfig(),
	}
}

func representation(asBase64 bool) string {
	if asBase64 {
		return "base64"
	}
	return "file"
}

// EncodeImage encodes img and returns an image result.
func (e *Encoder) EncodeImage(img image.Image, opts Options) (media.Result, error) {
	start := time.Now()

	var buf bytes.Buffer
	format, ext := "png", "png"
	var err error
	if opts.AsJpeg {
		format, ext = "jpeg", "jpg"
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: e.jpegQuality})
	} else {
		err = png.Encode(&buf, img)
	}
	if err != nil {
		metrics.EncodeFailures.WithLabelValues(string(mediatypes.KindImage)).Inc()
		return media.Result{}, fmt.Errorf("%w: %s encode: %v", ErrEncodeFailed, format, err)
	}

	result := media.Result{Type: mediatypes.KindImage, IsBase64: opts.AsBase64}
	if opts.AsBase64 {
		result.Src = base64.StdEncoding.EncodeToString(buf.Bytes())
	} else {
		path := e.temp.IssuePath(ext)
		if err := filesystem.WriteFileWithRetry(path, buf.Bytes(), 0o644, e.retry); err != nil {
			metrics.EncodeFailures.WithLabelValues(string(mediatypes.KindImage)).Inc()
			return media.Result{}, fmt.Errorf("%w: %v", ErrEncodeFailed, err)
		}
		result.Src = media.FileURI(path)
	}

	metrics.EncodedBytes.WithLabelValues(string(mediatypes.KindImage), format).Add(float64(buf.Len()))
	metrics.EncodeDuration.WithLabelValues(string(mediatypes.KindImage), representation(opts.AsBase64)).
		Observe(time.Since(start).Seconds())
	logging.Debug("Encoded %dx%d image as %s (%d bytes, %s)",
		img.Bounds().Dx(), img.Bounds().Dy(), format, buf.Len(), representation(opts.AsBase64))

	return result, nil
}

// EncodeVideo returns a video result. With asBase64 the whole file is read
// into memory; otherwise the location is passed through as a URI.
func (e *Encoder) EncodeVideo(v media.Video, asBase64 bool) (media.Result, error) {
	result := media.Result{Type: mediatypes.KindVideo, IsBase64: asBase64}

	if !asBase64 {
		result.Src = media.LocationURI(v.Location)
		metrics.EncodeDuration.WithLabelValues(string(mediatypes.KindVideo), "passthrough").Observe(0)
		return result, nil
	}

	start := time.Now()
	path, err := media.PathFromLocation(v.Location)
	if err != nil {
		metrics.EncodeFailures.WithLabelValues(string(mediatypes.KindVideo)).Inc()
		return media.Result{}, fmt.Errorf("%w: %v", ErrEncodeFailed, err)
	}

	data, err := filesystem.ReadFileWithRetry(path, e.retry)
	if err != nil {
		metrics.EncodeFailures.WithLabelValues(string(mediatypes.KindVideo)).Inc()
		return media.Result{}, fmt.Errorf("%w: %v", ErrEncodeFailed, err)
	}

	result.Src = base64.StdEncoding.EncodeToString(data)
	metrics.EncodedBytes.WithLabelValues(string(mediatypes.KindVideo), "original").Add(float64(len(data)))
	metrics.EncodeDuration.WithLabelValues(string(mediatypes.KindVideo), "base64").Observe(time.Since(start).Seconds())
	logging.Debug("Encoded video %s as base64 (%d bytes)", path, len(data))

	return result, nil
}
