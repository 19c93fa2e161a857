package prescription

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	prescriptionRepo "arogyamitra/database/repository/prescription"
	"arogyamitra/models"
	"arogyamitra/services/llm"
	"arogyamitra/services/ocr"
	"arogyamitra/utils"

	"go.uber.org/zap"
)

// analysisTemperature keeps the structuring step close to deterministic.
const analysisTemperature = 0.3

const analysisPromptFormat = `**CRITICAL INSTRUCTION: All text in your response MUST be in the %[1]s language and written in its native script (e.g., Devanagari for Hindi).**
For example, for Hindi, instead of 'Namaste', you MUST write 'नमस्ते'. Do not use Roman/English characters for %[1]s words, except for medicine names which should remain in English.

You are 'Arogya Mitra,' a helpful AI health assistant. Analyze the following prescription text.
Your task is to return ONLY a valid JSON object. Do not add any text before or after the JSON.
The JSON must have this exact structure:
{
  "medicines": [{"name": "Medicine Name and Dosage in English", "purpose": "...", "schedule": "...", "side_effects": "..."}],
  "lifestyleAdvice": ["..."]
}`

// DefaultPrescriptionService orchestrates OCR, AI structuring, and storage.
type DefaultPrescriptionService struct {
	OCR  ocr.Service
	LLM  llm.Client
	Repo prescriptionRepo.PrescriptionRepository
}

func (s *DefaultPrescriptionService) Analyze(ctx context.Context, image []byte, mimeType, userID, targetLanguage string) (*models.Prescription, error) {
	logger := utils.GetLogger()

	if len(image) == 0 || userID == "" || targetLanguage == "" {
		return nil, &ValidationError{Message: "Image, userId, and targetLanguage are required."}
	}

	text, err := s.OCR.ParseImage(ctx, image, mimeType)
	if err != nil {
		if errors.Is(err, ocr.ErrTimeout) {
			return nil, &UpstreamTimeoutError{}
		}
		return nil, &OCRFailureError{Reason: err.Error()}
	}
	logger.Debug("OCR text extracted", zap.Int("length", len(text)))

	systemPrompt := fmt.Sprintf(analysisPromptFormat, displayLanguage(targetLanguage))

	raw, err := s.LLM.Complete(ctx, systemPrompt, text, analysisTemperature, true)
	if err != nil {
		return nil, fmt.Errorf("ai analysis failed: %w", err)
	}

	analysis, err := decodeAnalysis(raw)
	if err != nil {
		logger.Error("AI returned malformed analysis", zap.Error(err))
		return nil, &MalformedAIResponseError{Err: err}
	}

	p := &models.Prescription{
		UserID:          userID,
		OriginalText:    text,
		Medicines:       analysis.Medicines,
		LifestyleAdvice: analysis.LifestyleAdvice,
	}
	if err := s.Repo.Create(p); err != nil {
		return nil, &StorageError{Err: err}
	}

	logger.Info("Prescription analyzed and saved",
		zap.String("userId", userID),
		zap.Int("medicines", len(p.Medicines)))
	return p, nil
}

func (s *DefaultPrescriptionService) ListForUser(userID string) ([]models.Prescription, error) {
	return s.Repo.GetAllByUser(userID)
}

// displayLanguage maps the client-supplied target language to the name used
// in the prompt. Only Hindi and Telugu are recognized; anything else falls
// back to English.
func displayLanguage(targetLanguage string) string {
	switch strings.ToLower(targetLanguage) {
	case "hindi":
		return "Hindi"
	case "telugu":
		return "Telugu"
	default:
		return "English"
	}
}

// decodeAnalysis strictly parses the model output. A missing medicines
// array counts as a contract violation even when the JSON itself is valid.
func decodeAnalysis(raw string) (*models.PrescriptionAnalysis, error) {
	var analysis models.PrescriptionAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return nil, err
	}
	if analysis.Medicines == nil {
		return nil, fmt.Errorf("missing medicines array")
	}
	return &analysis, nil
}
