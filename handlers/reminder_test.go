package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	reminderRepo "arogyamitra/database/repository/reminder"
	"arogyamitra/models"
	"arogyamitra/services/reminder"

	"github.com/gin-gonic/gin"
)

type fakeReminderService struct {
	reminders []models.Reminder
}

func (f *fakeReminderService) Create(r *models.Reminder) (*models.Reminder, error) {
	r.ID = "r1"
	r.IsTaken = false
	f.reminders = append(f.reminders, *r)
	return r, nil
}

func (f *fakeReminderService) ListForDate(userID, date string) ([]models.Reminder, error) {
	var out []models.Reminder
	for _, r := range f.reminders {
		if r.UserID == userID && r.Date == date {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReminderService) MarkTaken(id string) (*models.Reminder, error) {
	for i := range f.reminders {
		if f.reminders[i].ID == id {
			f.reminders[i].IsTaken = true
			updated := f.reminders[i]
			return &updated, nil
		}
	}
	return nil, reminderRepo.ErrNotFound
}

func (f *fakeReminderService) NotifyDue(now time.Time) {}

func newReminderRouter(svc reminder.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewReminderHandler(svc)
	r.POST("/api/reminders", h.CreateReminderHandler)
	r.GET("/api/reminders/:userId/:date", h.ListRemindersHandler)
	r.PUT("/api/reminders/:reminderId/taken", h.MarkTakenHandler)
	return r
}

func TestCreateReminderHandler(t *testing.T) {
	router := newReminderRouter(&fakeReminderService{})

	payload := `{"userId":"u1","medicineName":"Paracetamol","dosage":"500mg","reminderTime":"09:00","date":"2024-01-01"}`
	req := httptest.NewRequest(http.MethodPost, "/api/reminders", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}

	var saved models.Reminder
	if err := json.Unmarshal(w.Body.Bytes(), &saved); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if saved.ID == "" || saved.IsTaken {
		t.Errorf("unexpected saved reminder: %+v", saved)
	}
}

func TestCreateReminderHandlerInvalidPayload(t *testing.T) {
	router := newReminderRouter(&fakeReminderService{})

	// Missing medicineName and date.
	payload := `{"userId":"u1","reminderTime":"09:00"}`
	req := httptest.NewRequest(http.MethodPost, "/api/reminders", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestListRemindersHandlerEmpty(t *testing.T) {
	router := newReminderRouter(&fakeReminderService{})

	req := httptest.NewRequest(http.MethodGet, "/api/reminders/u1/2024-01-01", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body := w.Body.String(); body != "[]" {
		t.Errorf("expected empty JSON array, got %s", body)
	}
}

func TestMarkTakenHandlerNotFound(t *testing.T) {
	router := newReminderRouter(&fakeReminderService{})

	req := httptest.NewRequest(http.MethodPut, "/api/reminders/missing/taken", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestMarkTakenHandlerUpdates(t *testing.T) {
	svc := &fakeReminderService{}
	router := newReminderRouter(svc)

	svc.Create(&models.Reminder{UserID: "u1", MedicineName: "Paracetamol", ReminderTime: "09:00", Date: "2024-01-01"})

	req := httptest.NewRequest(http.MethodPut, "/api/reminders/r1/taken", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var updated models.Reminder
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !updated.IsTaken {
		t.Error("expected isTaken true after update")
	}
}
