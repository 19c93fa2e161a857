package firstaid

import (
	"errors"
	"testing"

	firstaidRepo "arogyamitra/database/repository/firstaid"
	"arogyamitra/models"
)

type fakeFirstAidRepo struct {
	cases map[string]models.FirstAidCase
}

func (f *fakeFirstAidRepo) GetAllSummaries() ([]models.FirstAidSummary, error) {
	var out []models.FirstAidSummary
	for _, c := range f.cases {
		out = append(out, models.FirstAidSummary{Case: c.Case, Title: c.Title})
	}
	return out, nil
}

func (f *fakeFirstAidRepo) GetByCase(caseKey string) (*models.FirstAidCase, error) {
	c, ok := f.cases[caseKey]
	if !ok {
		return nil, firstaidRepo.ErrNotFound
	}
	return &c, nil
}

func newFakeRepo() *fakeFirstAidRepo {
	return &fakeFirstAidRepo{cases: map[string]models.FirstAidCase{
		"burns": {
			Case:  "burns",
			Title: "Minor Burns",
			Instructions: []models.FirstAidStep{
				{Step: 1, Description: "Cool the burn under running water."},
				{Step: 2, Description: "Cover with a sterile dressing."},
			},
		},
	}}
}

func TestGetCaseFound(t *testing.T) {
	svc := &DefaultFirstAidService{Repo: newFakeRepo()}

	got, err := svc.GetCase("burns")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title != "Minor Burns" || len(got.Instructions) != 2 {
		t.Errorf("unexpected case: %+v", got)
	}
}

func TestGetCaseNotFoundIsDistinct(t *testing.T) {
	svc := &DefaultFirstAidService{Repo: newFakeRepo()}

	got, err := svc.GetCase("snakebite")
	if !errors.Is(err, firstaidRepo.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if got != nil {
		t.Errorf("expected nil case on not-found, got %+v", got)
	}
}

func TestListCasesWithoutCache(t *testing.T) {
	// A nil cache client must be a straight read from the repository.
	svc := &DefaultFirstAidService{Repo: newFakeRepo(), Cache: nil}

	summaries, err := svc.ListCases()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(summaries) != 1 || summaries[0].Case != "burns" {
		t.Errorf("unexpected summaries: %+v", summaries)
	}
}
