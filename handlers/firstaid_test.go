package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	firstaidRepo "arogyamitra/database/repository/firstaid"
	"arogyamitra/models"
	"arogyamitra/services/firstaid"

	"github.com/gin-gonic/gin"
)

type fakeFirstAidService struct {
	cases map[string]models.FirstAidCase
}

func (f *fakeFirstAidService) ListCases() ([]models.FirstAidSummary, error) {
	out := []models.FirstAidSummary{}
	for _, c := range f.cases {
		out = append(out, models.FirstAidSummary{Case: c.Case, Title: c.Title})
	}
	return out, nil
}

func (f *fakeFirstAidService) GetCase(caseKey string) (*models.FirstAidCase, error) {
	c, ok := f.cases[caseKey]
	if !ok {
		return nil, firstaidRepo.ErrNotFound
	}
	return &c, nil
}

func newFirstAidRouter(svc firstaid.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewFirstAidHandler(svc)
	r.GET("/api/first-aid", h.ListCasesHandler)
	r.GET("/api/first-aid/:case", h.GetCaseHandler)
	return r
}

func TestListCasesHandler(t *testing.T) {
	router := newFirstAidRouter(&fakeFirstAidService{cases: map[string]models.FirstAidCase{
		"burns": {Case: "burns", Title: "Minor Burns"},
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/first-aid", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var summaries []models.FirstAidSummary
	if err := json.Unmarshal(w.Body.Bytes(), &summaries); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(summaries) != 1 || summaries[0].Case != "burns" {
		t.Errorf("unexpected summaries: %+v", summaries)
	}
}

func TestGetCaseHandlerNotFound(t *testing.T) {
	router := newFirstAidRouter(&fakeFirstAidService{cases: map[string]models.FirstAidCase{}})

	req := httptest.NewRequest(http.MethodGet, "/api/first-aid/snakebite", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestGetCaseHandlerFound(t *testing.T) {
	router := newFirstAidRouter(&fakeFirstAidService{cases: map[string]models.FirstAidCase{
		"choking": {
			Case:  "choking",
			Title: "Choking",
			Instructions: []models.FirstAidStep{
				{Step: 1, Description: "Encourage coughing."},
			},
		},
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/first-aid/choking", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var fa models.FirstAidCase
	if err := json.Unmarshal(w.Body.Bytes(), &fa); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if fa.Title != "Choking" || len(fa.Instructions) != 1 {
		t.Errorf("unexpected case: %+v", fa)
	}
}
