package prescription

import "fmt"

// ValidationError indicates a required input was missing. No external call
// has been made when it is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// UpstreamTimeoutError indicates the OCR service exceeded its deadline.
type UpstreamTimeoutError struct{}

func (e *UpstreamTimeoutError) Error() string {
	return "the OCR server is not responding"
}

// OCRFailureError indicates the OCR service reported a processing error or
// returned no parsed text.
type OCRFailureError struct {
	Reason string
}

func (e *OCRFailureError) Error() string {
	return fmt.Sprintf("the OCR service could not read the image: %s", e.Reason)
}

// MalformedAIResponseError indicates the model's output did not match the
// requested JSON contract.
type MalformedAIResponseError struct {
	Err error
}

func (e *MalformedAIResponseError) Error() string {
	return fmt.Sprintf("AI response did not match the expected JSON shape: %v", e.Err)
}

func (e *MalformedAIResponseError) Unwrap() error {
	return e.Err
}

// StorageError indicates the analyzed prescription could not be persisted.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("failed to save prescription: %v", e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
