package service

import (
	"fmt"

	"github.com/ds124wfegd/pencil-sketch/internal/entity"
)

// Convert runs the whole pipeline for one upload: decode and normalize,
// render the pencil sketch, encode the result to PNG.
func (s *sketchService) Convert(data []byte, contentType string) (out []byte, err error) {
	src, err := s.processor.Decode(data, contentType)
	if err != nil {
		return nil, err
	}

	// Для нормализованного изображения трансформация не имеет пути ошибки,
	// паника здесь — дефект конвейера, а не ошибка пользователя
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("%w: %v", entity.ErrTransform, r)
		}
	}()

	sketch := s.processor.Sketch(src)
	return s.processor.EncodePNG(sketch)
}
