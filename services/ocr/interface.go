package ocr

import (
	"context"
	"errors"
)

// ErrTimeout is returned when the OCR service does not respond within the
// client's deadline. Callers surface it differently from processing errors
// so the user can be told to retry with a clearer image.
var ErrTimeout = errors.New("ocr request timed out")

// Service extracts text from an image via an external OCR provider.
type Service interface {
	// ParseImage submits the image and returns the extracted text.
	ParseImage(ctx context.Context, image []byte, mimeType string) (string, error)
}
