package firstaid

import (
	"context"
	"encoding/json"
	"time"

	firstaidRepo "arogyamitra/database/repository/firstaid"
	"arogyamitra/models"
	"arogyamitra/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	caseKeyPrefix = "firstaid:case:"
	summariesKey  = "firstaid:cases"
	cacheTTL      = time.Hour
)

// Service serves the read-only first-aid catalog.
type Service interface {
	// ListCases returns the title/case summary of every case.
	ListCases() ([]models.FirstAidSummary, error)
	// GetCase returns the full case record, or firstaidRepo.ErrNotFound.
	GetCase(caseKey string) (*models.FirstAidCase, error)
}

// DefaultFirstAidService reads the catalog from Mongo with an optional
// Redis read-through cache. A nil Cache disables caching entirely; cache
// errors fall back to the repository.
type DefaultFirstAidService struct {
	Repo  firstaidRepo.FirstAidRepository
	Cache *redis.Client
}

func (s *DefaultFirstAidService) ListCases() ([]models.FirstAidSummary, error) {
	if summaries, ok := getCached[[]models.FirstAidSummary](s.Cache, summariesKey); ok {
		return summaries, nil
	}

	summaries, err := s.Repo.GetAllSummaries()
	if err != nil {
		return nil, err
	}
	setCached(s.Cache, summariesKey, summaries)
	return summaries, nil
}

func (s *DefaultFirstAidService) GetCase(caseKey string) (*models.FirstAidCase, error) {
	if fa, ok := getCached[*models.FirstAidCase](s.Cache, caseKeyPrefix+caseKey); ok {
		return fa, nil
	}

	fa, err := s.Repo.GetByCase(caseKey)
	if err != nil {
		// Not-found is never cached; the catalog is seeded out of band and
		// a missing slug may appear later.
		return nil, err
	}
	setCached(s.Cache, caseKeyPrefix+caseKey, fa)
	return fa, nil
}

func getCached[T any](client *redis.Client, key string) (T, bool) {
	var zero T
	if client == nil {
		return zero, false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			utils.GetLogger().Debug("First-aid cache read failed", zap.String("key", key), zap.Error(err))
		}
		return zero, false
	}

	var value T
	if err := json.Unmarshal([]byte(data), &value); err != nil {
		return zero, false
	}
	return value, true
}

func setCached(client *redis.Client, key string, value any) {
	if client == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	b, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := client.Set(ctx, key, b, cacheTTL).Err(); err != nil {
		utils.GetLogger().Debug("First-aid cache write failed", zap.String("key", key), zap.Error(err))
	}
}
