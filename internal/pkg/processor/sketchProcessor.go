package processor

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"

	"github.com/disintegration/imaging"
	"github.com/ds124wfegd/pencil-sketch/internal/entity"
	_ "golang.org/x/image/webp" // Register WEBP format decoder
)

// Default pipeline policy. The dimension cap bounds the per-request cost,
// the kernel size controls the softness of the sketch effect.
const (
	DefaultMaxDimension   = 1600
	DefaultBlurKernelSize = 21
)

type ImageProcessor interface {
	Decode(data []byte, contentType string) (*image.NRGBA, error)
	Sketch(src *image.NRGBA) *image.NRGBA
	EncodePNG(img image.Image) ([]byte, error)
}

type imageProcessor struct {
	maxDimension   int
	blurKernelSize int
}

func NewImageProcessor(maxDimension, blurKernelSize int) ImageProcessor {
	if maxDimension <= 0 {
		maxDimension = DefaultMaxDimension
	}
	if blurKernelSize <= 0 {
		blurKernelSize = DefaultBlurKernelSize
	}
	return &imageProcessor{
		maxDimension:   maxDimension,
		blurKernelSize: blurKernelSize,
	}
}

// Decode parses the uploaded bytes into an opaque RGB pixel buffer:
// applies the EXIF orientation, drops transparency and caps the larger
// dimension so one oversized upload cannot dominate a worker.
func (p *imageProcessor) Decode(data []byte, contentType string) (*image.NRGBA, error) {
	if !entity.AllowedImageTypes[contentType] {
		return nil, fmt.Errorf("%w: %s", entity.ErrUnsupportedFormat, contentType)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty payload", entity.ErrDecode)
	}

	// Поворачиваем изображение по EXIF-ориентации при декодировании
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrDecode, err)
	}

	src := imaging.Clone(img)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: image has zero dimensions", entity.ErrDecode)
	}

	// Отбрасываем альфа-канал: дальше работаем только с RGB
	for i := 3; i < len(src.Pix); i += 4 {
		src.Pix[i] = 0xff
	}

	if w > p.maxDimension || h > p.maxDimension {
		src = p.downscale(src, w, h)
	}
	return src, nil
}

// downscale pins the larger side to exactly maxDimension and rounds the
// shorter side to the nearest pixel, keeping the aspect ratio.
func (p *imageProcessor) downscale(src *image.NRGBA, w, h int) *image.NRGBA {
	scale := float64(p.maxDimension) / float64(max(w, h))

	newW, newH := p.maxDimension, p.maxDimension
	if w >= h {
		newH = int(math.Round(float64(h) * scale))
	} else {
		newW = int(math.Round(float64(w) * scale))
	}
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	return imaging.Resize(src, newW, newH, imaging.Lanczos)
}

// Sketch renders the pencil-sketch effect: grayscale, invert, Gaussian
// blur of the inverse and a color-dodge blend of the grayscale over it.
// Pure and total for a normalized buffer; output dimensions match the input.
func (p *imageProcessor) Sketch(src *image.NRGBA) *image.NRGBA {
	gray := grayscale(src)
	inverted := invert(gray)
	blurred := p.blur(inverted)
	return expandToRGB(colorDodge(gray, blurred))
}

// grayscale converts to single-channel intensity using the ITU-R BT.601
// luma weights (0.299*R + 0.587*G + 0.114*B), rounded to nearest.
func grayscale(src *image.NRGBA) *image.Gray {
	b := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			i := src.PixOffset(x, y)
			v := 0.299*float64(src.Pix[i]) + 0.587*float64(src.Pix[i+1]) + 0.114*float64(src.Pix[i+2])
			dst.Pix[y*dst.Stride+x] = uint8(clamp(int(math.Round(v)), 0, 255))
		}
	}
	return dst
}

func invert(src *image.Gray) *image.Gray {
	dst := image.NewGray(src.Bounds())
	for i, v := range src.Pix {
		dst.Pix[i] = 255 - v
	}
	return dst
}

// blur applies a Gaussian blur with the sigma derived from the kernel size
// the standard way: 0.3*((ksize-1)*0.5 - 1) + 0.8. Borders are replicated
// by the convolution, so nothing leaks in at the edges.
func (p *imageProcessor) blur(src *image.Gray) *image.Gray {
	sigma := 0.3*((float64(p.blurKernelSize)-1)*0.5-1) + 0.8

	// imaging.Blur возвращает NRGBA с равными каналами, забираем один
	blurred := imaging.Blur(src, sigma)
	dst := image.NewGray(src.Bounds())
	for y := 0; y < src.Bounds().Dy(); y++ {
		for x := 0; x < src.Bounds().Dx(); x++ {
			dst.Pix[y*dst.Stride+x] = blurred.Pix[blurred.PixOffset(x, y)]
		}
	}
	return dst
}

// colorDodge divides the grayscale by the inverted blur at scale 256.
// A zero denominator means a flat fully-white region and saturates to 255.
func colorDodge(gray, blurred *image.Gray) *image.Gray {
	dst := image.NewGray(gray.Bounds())
	for i := range gray.Pix {
		d := 255 - int(blurred.Pix[i])
		if d <= 0 {
			dst.Pix[i] = 255
			continue
		}
		v := int(gray.Pix[i]) * 256 / d
		if v > 255 {
			v = 255
		}
		dst.Pix[i] = uint8(v)
	}
	return dst
}

// expandToRGB replicates the sketch intensity across three channels so the
// result keeps the channel count of the input.
func expandToRGB(src *image.Gray) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			v := src.Pix[y*src.Stride+x]
			i := dst.PixOffset(x, y)
			dst.Pix[i] = v
			dst.Pix[i+1] = v
			dst.Pix[i+2] = v
			dst.Pix[i+3] = 0xff
		}
	}
	return dst
}

// EncodePNG serializes the result losslessly.
func (p *imageProcessor) EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrEncode, err)
	}
	return buf.Bytes(), nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
