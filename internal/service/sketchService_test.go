package service

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/ds124wfegd/pencil-sketch/internal/entity"
	"github.com/ds124wfegd/pencil-sketch/internal/pkg/processor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConvertDeterminism тестирует побайтовую воспроизводимость конвейера
func TestConvertDeterminism(t *testing.T) {
	svc := NewSketchService(processor.NewImageProcessor(0, 0))
	data := makeGradientPNG(t, 64, 48)

	first, err := svc.Convert(data, "image/png")
	require.NoError(t, err)

	second, err := svc.Convert(data, "image/png")
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first, second))
}

// TestConvertProducesPNG тестирует, что результат — валидный PNG тех же размеров
func TestConvertProducesPNG(t *testing.T) {
	svc := NewSketchService(processor.NewImageProcessor(0, 0))
	data := makeGradientPNG(t, 120, 80)

	result, err := svc.Convert(data, "image/png")
	require.NoError(t, err)

	decoded, format, err := image.Decode(bytes.NewReader(result))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 120, decoded.Bounds().Dx())
	assert.Equal(t, 80, decoded.Bounds().Dy())
}

// TestConvertPropagatesErrors тестирует проброс ошибок декодера
func TestConvertPropagatesErrors(t *testing.T) {
	svc := NewSketchService(processor.NewImageProcessor(0, 0))

	tests := []struct {
		name        string
		data        []byte
		contentType string
		wantErr     error
	}{
		{
			name:        "unsupported declared type",
			data:        makeGradientPNG(t, 8, 8),
			contentType: "image/gif",
			wantErr:     entity.ErrUnsupportedFormat,
		},
		{
			name:        "garbage bytes",
			data:        []byte("definitely not an image"),
			contentType: "image/png",
			wantErr:     entity.ErrDecode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.Convert(tt.data, tt.contentType)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, result)
		})
	}
}

// makeGradientPNG кодирует детерминированный градиент в PNG
func makeGradientPNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 5 % 256),
				G: uint8(y * 9 % 256),
				B: uint8((x * y) % 256),
				A: 255,
			})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}
