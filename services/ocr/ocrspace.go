package ocr

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"arogyamitra/utils"

	"go.uber.org/zap"
)

const (
	defaultEndpoint = "https://api.ocr.space/parse/image"
	// OCR.space can take a while on busy days; past this we give up and ask
	// the user to retry.
	requestTimeout = 25 * time.Second
)

// OCRSpaceClient implements Service against the OCR.space parse API.
type OCRSpaceClient struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// NewOCRSpaceClient creates an OCR.space client with the default endpoint
// and request timeout.
func NewOCRSpaceClient(apiKey string) *OCRSpaceClient {
	return &OCRSpaceClient{
		apiKey:   apiKey,
		endpoint: defaultEndpoint,
		client:   &http.Client{Timeout: requestTimeout},
	}
}

// NewOCRSpaceClientWithEndpoint creates a client against a custom endpoint
// with the given timeout.
func NewOCRSpaceClientWithEndpoint(apiKey, endpoint string, timeout time.Duration) *OCRSpaceClient {
	return &OCRSpaceClient{
		apiKey:   apiKey,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// ocrSpaceResponse is the subset of the OCR.space response we read.
type ocrSpaceResponse struct {
	ParsedResults []struct {
		ParsedText string `json:"ParsedText"`
	} `json:"ParsedResults"`
	IsErroredOnProcessing bool     `json:"IsErroredOnProcessing"`
	ErrorMessage          []string `json:"ErrorMessage"`
}

// ParseImage submits the image as a base64 data URI form field and returns
// the extracted text of the first parsed result.
func (c *OCRSpaceClient) ParseImage(ctx context.Context, image []byte, mimeType string) (string, error) {
	logger := utils.GetLogger()

	dataURI := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(image))

	form := url.Values{}
	form.Set("base64Image", dataURI)
	form.Set("apikey", c.apiKey)
	form.Set("language", "eng")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build ocr request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			logger.Warn("OCR request timed out", zap.Duration("timeout", c.client.Timeout))
			return "", ErrTimeout
		}
		return "", fmt.Errorf("ocr request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ocr service returned status %d", resp.StatusCode)
	}

	var parsed ocrSpaceResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode ocr response: %w", err)
	}

	if parsed.IsErroredOnProcessing || len(parsed.ParsedResults) == 0 {
		msg := strings.Join(parsed.ErrorMessage, "; ")
		if msg == "" {
			msg = "no parsed results"
		}
		logger.Error("OCR processing failed", zap.String("reason", msg))
		return "", fmt.Errorf("ocr processing failed: %s", msg)
	}

	return parsed.ParsedResults[0].ParsedText, nil
}

// isTimeout reports whether the request error was a deadline or transport
// timeout rather than some other transport failure.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
