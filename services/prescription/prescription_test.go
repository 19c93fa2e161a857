package prescription

import (
	"context"
	"errors"
	"testing"

	"arogyamitra/models"
	"arogyamitra/services/ocr"
)

type fakeOCR struct {
	text  string
	err   error
	calls int
}

func (f *fakeOCR) ParseImage(ctx context.Context, image []byte, mimeType string) (string, error) {
	f.calls++
	return f.text, f.err
}

type fakeLLM struct {
	reply      string
	err        error
	calls      int
	lastSystem string
	lastUser   string
	lastTemp   float32
	lastJSON   bool
}

func (f *fakeLLM) Complete(ctx context.Context, systemPrompt, userMessage string, temperature float32, jsonMode bool) (string, error) {
	f.calls++
	f.lastSystem = systemPrompt
	f.lastUser = userMessage
	f.lastTemp = temperature
	f.lastJSON = jsonMode
	return f.reply, f.err
}

type fakeRxRepo struct {
	created []*models.Prescription
	err     error
}

func (f *fakeRxRepo) Create(p *models.Prescription) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, p)
	return nil
}

func (f *fakeRxRepo) GetLatestByUser(userID string) (*models.Prescription, error) {
	return nil, nil
}

func (f *fakeRxRepo) GetAllByUser(userID string) ([]models.Prescription, error) {
	return nil, nil
}

const validAnalysis = `{
	"medicines": [{"name": "Paracetamol 500mg", "purpose": "fever", "schedule": "twice daily", "side_effects": "nausea"}],
	"lifestyleAdvice": ["drink water"]
}`

func newService(o *fakeOCR, l *fakeLLM, r *fakeRxRepo) *DefaultPrescriptionService {
	return &DefaultPrescriptionService{OCR: o, LLM: l, Repo: r}
}

func TestAnalyzeMissingFields(t *testing.T) {
	tests := []struct {
		name     string
		image    []byte
		userID   string
		language string
	}{
		{"no image", nil, "u1", "hindi"},
		{"no userId", []byte{1}, "", "hindi"},
		{"no targetLanguage", []byte{1}, "u1", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ocrSvc := &fakeOCR{}
			llmSvc := &fakeLLM{}
			repo := &fakeRxRepo{}
			svc := newService(ocrSvc, llmSvc, repo)

			_, err := svc.Analyze(context.Background(), tt.image, "image/png", tt.userID, tt.language)

			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ocrSvc.calls != 0 || llmSvc.calls != 0 || len(repo.created) != 0 {
				t.Errorf("expected no side effects, got ocr=%d llm=%d saved=%d",
					ocrSvc.calls, llmSvc.calls, len(repo.created))
			}
		})
	}
}

func TestAnalyzePersistsParsedOutput(t *testing.T) {
	ocrSvc := &fakeOCR{text: "Tab Paracetamol 500mg BD x 5 days"}
	llmSvc := &fakeLLM{reply: validAnalysis}
	repo := &fakeRxRepo{}
	svc := newService(ocrSvc, llmSvc, repo)

	saved, err := svc.Analyze(context.Background(), []byte("img"), "image/png", "u1", "hindi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if saved.OriginalText != ocrSvc.text {
		t.Errorf("originalText = %q, want %q", saved.OriginalText, ocrSvc.text)
	}
	if len(saved.Medicines) != 1 || saved.Medicines[0].Name != "Paracetamol 500mg" {
		t.Errorf("unexpected medicines: %+v", saved.Medicines)
	}
	if saved.Medicines[0].SideEffects != "nausea" {
		t.Errorf("side_effects = %q, want %q", saved.Medicines[0].SideEffects, "nausea")
	}
	if len(saved.LifestyleAdvice) != 1 || saved.LifestyleAdvice[0] != "drink water" {
		t.Errorf("unexpected lifestyleAdvice: %v", saved.LifestyleAdvice)
	}
	if len(repo.created) != 1 || repo.created[0] != saved {
		t.Errorf("expected exactly the returned record to be persisted")
	}
	if !llmSvc.lastJSON {
		t.Error("expected JSON-constrained completion")
	}
	if llmSvc.lastTemp != 0.3 {
		t.Errorf("temperature = %v, want 0.3", llmSvc.lastTemp)
	}
	if llmSvc.lastUser != ocrSvc.text {
		t.Errorf("user turn = %q, want raw OCR text", llmSvc.lastUser)
	}
}

func TestAnalyzeOCRTimeout(t *testing.T) {
	ocrSvc := &fakeOCR{err: ocr.ErrTimeout}
	repo := &fakeRxRepo{}
	svc := newService(ocrSvc, &fakeLLM{}, repo)

	_, err := svc.Analyze(context.Background(), []byte("img"), "image/png", "u1", "english")

	var timeoutErr *UpstreamTimeoutError
	if !errors.As(err, &timeoutErr) {
		t.Fatalf("expected UpstreamTimeoutError, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Error("nothing should be persisted on OCR timeout")
	}
}

func TestAnalyzeOCRFailure(t *testing.T) {
	ocrSvc := &fakeOCR{err: errors.New("blurry image")}
	svc := newService(ocrSvc, &fakeLLM{}, &fakeRxRepo{})

	_, err := svc.Analyze(context.Background(), []byte("img"), "image/png", "u1", "english")

	var ocrErr *OCRFailureError
	if !errors.As(err, &ocrErr) {
		t.Fatalf("expected OCRFailureError, got %v", err)
	}
}

func TestAnalyzeMalformedAIResponse(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{"not json", "sorry, here is your plan: ..."},
		{"json without medicines", `{"lifestyleAdvice": ["rest"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRxRepo{}
			svc := newService(&fakeOCR{text: "rx"}, &fakeLLM{reply: tt.reply}, repo)

			_, err := svc.Analyze(context.Background(), []byte("img"), "image/png", "u1", "telugu")

			var malformedErr *MalformedAIResponseError
			if !errors.As(err, &malformedErr) {
				t.Fatalf("expected MalformedAIResponseError, got %v", err)
			}
			if len(repo.created) != 0 {
				t.Error("nothing should be persisted on malformed AI output")
			}
		})
	}
}

func TestAnalyzeStorageFailure(t *testing.T) {
	repo := &fakeRxRepo{err: errors.New("write concern failed")}
	svc := newService(&fakeOCR{text: "rx"}, &fakeLLM{reply: validAnalysis}, repo)

	_, err := svc.Analyze(context.Background(), []byte("img"), "image/png", "u1", "hindi")

	var storageErr *StorageError
	if !errors.As(err, &storageErr) {
		t.Fatalf("expected StorageError, got %v", err)
	}
}

func TestDisplayLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hindi", "Hindi"},
		{"HINDI", "Hindi"},
		{"Telugu", "Telugu"},
		{"english", "English"},
		{"tamil", "English"},
		{"", "English"},
	}

	for _, tt := range tests {
		if got := displayLanguage(tt.in); got != tt.want {
			t.Errorf("displayLanguage(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
