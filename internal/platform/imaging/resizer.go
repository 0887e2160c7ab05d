// Package imaging implements the avatar image collaborator: it decodes an
// uploaded JPEG or PNG, scales it to a fixed square size, and re-encodes it
// as PNG for storage.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	// Register the decoders for the formats avatars may arrive in.
	_ "image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
)

// Common imaging errors.
var (
	// ErrInvalidImage is returned when the payload cannot be decoded as an image.
	ErrInvalidImage = errors.New("invalid image data")

	// ErrUnsupportedFormat is returned for decodable images in formats other
	// than JPEG or PNG.
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// Processor transforms an uploaded avatar into its stored form.
type Processor interface {
	// Process decodes, resizes, and re-encodes the image bytes.
	Process(data []byte) ([]byte, error)
}

// Resizer implements Processor by scaling to a size x size PNG using
// Catmull-Rom interpolation.
type Resizer struct {
	size int
}

var _ Processor = (*Resizer)(nil)

// NewResizer creates a Resizer producing size x size pixel output.
func NewResizer(size int) *Resizer {
	if size <= 0 {
		panic("size must be positive")
	}
	return &Resizer{size: size}
}

// Process implements Processor.Process.
func (r *Resizer) Process(data []byte) ([]byte, error) {
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	switch format {
	case "jpeg", "png":
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	dst := image.NewRGBA(image.Rect(0, 0, r.size, r.size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("failed to encode avatar: %w", err)
	}

	return buf.Bytes(), nil
}
