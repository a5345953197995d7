package service

import (
	"github.com/ds124wfegd/pencil-sketch/internal/pkg/processor"
)

type SketchService interface {
	Convert(data []byte, contentType string) ([]byte, error)
}

type sketchService struct {
	processor processor.ImageProcessor
}

func NewSketchService(processor processor.ImageProcessor) SketchService {
	return &sketchService{processor: processor}
}
