package checks

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ExpectedWidth and ExpectedHeight are the dimensions of the test fixture.
const (
	ExpectedWidth  = 1
	ExpectedHeight = 1
)

// ImageInfo describes a decoded image.
type ImageInfo struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Mode   string `json:"mode"`
	Format string `json:"format"`
	// Pixel is the value at the origin, only set for single pixel images.
	Pixel string `json:"pixel,omitempty"`
}

// Size renders the dimensions as "(w, h)".
func (i ImageInfo) Size() string {
	return fmt.Sprintf("(%d, %d)", i.Width, i.Height)
}

// IsSinglePixel reports whether the image has the expected 1x1 dimensions.
func (i ImageInfo) IsSinglePixel() bool {
	return i.Width == ExpectedWidth && i.Height == ExpectedHeight
}

// DecodeImage describes the image in r. Only the header is read unless it declares
// the expected 1x1 dimensions, so a bogus size never allocates a pixel buffer.
func DecodeImage(r io.ReadSeeker) (*ImageInfo, error) {
	cfg, format, err := image.DecodeConfig(r)
	if err != nil {
		return nil, err
	}
	info := &ImageInfo{
		Width:  cfg.Width,
		Height: cfg.Height,
		Mode:   ModeName(cfg.ColorModel),
		Format: strings.ToUpper(format),
	}
	if !info.IsSinglePixel() {
		return info, nil
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind image data: %w", err)
	}
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return Inspect(img, format), nil
}

// Inspect describes img. The pixel at the origin is only read for 1x1 images.
func Inspect(img image.Image, format string) *ImageInfo {
	b := img.Bounds()
	info := &ImageInfo{
		Width:  b.Dx(),
		Height: b.Dy(),
		Mode:   ModeName(img.ColorModel()),
		Format: strings.ToUpper(format),
	}
	if info.IsSinglePixel() {
		info.Pixel = PixelAt(img, b.Min.X, b.Min.Y)
	}
	return info
}

// ModeName maps a color model to its conventional mode name.
func ModeName(m color.Model) string {
	switch m {
	case color.RGBAModel, color.NRGBAModel:
		return "RGBA"
	case color.RGBA64Model, color.NRGBA64Model:
		return "RGBA;16"
	case color.GrayModel:
		return "L"
	case color.Gray16Model:
		return "I;16"
	case color.AlphaModel, color.Alpha16Model:
		return "A"
	case color.YCbCrModel:
		return "YCbCr"
	case color.NYCbCrAModel:
		return "YCbCrA"
	case color.CMYKModel:
		return "CMYK"
	}
	if _, ok := m.(color.Palette); ok {
		return "P"
	}
	if m == nil {
		return "unknown"
	}
	return fmt.Sprintf("%T", m)
}

// PixelAt renders the pixel at (x, y).
func PixelAt(img image.Image, x, y int) string {
	if p, ok := img.(*image.Paletted); ok {
		return fmt.Sprintf("%d", p.ColorIndexAt(x, y))
	}
	switch c := img.At(x, y).(type) {
	case color.Gray:
		return fmt.Sprintf("%d", c.Y)
	case color.Gray16:
		return fmt.Sprintf("%d", c.Y)
	}
	n := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	return fmt.Sprintf("(%d, %d, %d, %d)", n.R, n.G, n.B, n.A)
}
