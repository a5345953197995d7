package entity

// MaxUploadSize is the upload ceiling in bytes (10MB)
const MaxUploadSize = 10 << 20

// AllowedImageTypes lists the MIME types accepted for conversion
var AllowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

type StatusResponse struct {
	Status  string `json:"status"`
	Service string `json:"service,omitempty"`
	Message string `json:"message,omitempty"`
}
