package transport

import (
	"github.com/ds124wfegd/pencil-sketch/internal/service"
)

type SketchHandler struct {
	service service.SketchService
}

func NewSketchHandler(service service.SketchService) *SketchHandler {
	return &SketchHandler{service: service}
}
