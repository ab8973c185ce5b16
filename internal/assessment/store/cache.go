package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"hopeconnect/internal/common/logger"
	"hopeconnect/internal/common/metrics"
	"hopeconnect/internal/models"

	"github.com/redis/go-redis/v9"
)

// QuestionCacheKey holds the JSON-encoded active question list.
const QuestionCacheKey = "assessment:questions:active"

// QuestionSource lists the active questions.
type QuestionSource interface {
	ListActiveQuestions(ctx context.Context) ([]models.Question, error)
}

// CachedQuestions is a cache-aside wrapper over a QuestionSource. Redis
// failures are logged and fall through to the source.
type CachedQuestions struct {
	source QuestionSource
	redis  redis.Cmdable
	ttl    time.Duration
	logger logger.Logger
}

// NewCachedQuestions returns source unchanged in behaviour when rdb is nil or
// ttl is not positive.
func NewCachedQuestions(source QuestionSource, rdb redis.Cmdable, ttl time.Duration, log logger.Logger) *CachedQuestions {
	return &CachedQuestions{
		source: source,
		redis:  rdb,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"component": "question-cache"}),
	}
}

func (c *CachedQuestions) ListActiveQuestions(ctx context.Context) ([]models.Question, error) {
	if c.redis == nil || c.ttl <= 0 {
		return c.source.ListActiveQuestions(ctx)
	}

	raw, err := c.redis.Get(ctx, QuestionCacheKey).Bytes()
	switch {
	case err == nil:
		var questions []models.Question
		if jsonErr := json.Unmarshal(raw, &questions); jsonErr == nil {
			metrics.QuestionCacheLookups.WithLabelValues("hit").Inc()
			return questions, nil
		} else {
			c.logger.Warn("discarding corrupt question cache entry", map[string]interface{}{"error": jsonErr})
		}
	case errors.Is(err, redis.Nil):
	default:
		c.logger.Warn("question cache read failed", map[string]interface{}{"error": err})
	}
	metrics.QuestionCacheLookups.WithLabelValues("miss").Inc()

	questions, err := c.source.ListActiveQuestions(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(questions)
	if err != nil {
		return questions, nil
	}
	if err := c.redis.Set(ctx, QuestionCacheKey, data, c.ttl).Err(); err != nil {
		c.logger.Warn("question cache write failed", map[string]interface{}{"error": err})
	}
	return questions, nil
}

// Invalidate drops the cached list, e.g. after seeding new questions.
func (c *CachedQuestions) Invalidate(ctx context.Context) error {
	if c.redis == nil {
		return nil
	}
	return c.redis.Del(ctx, QuestionCacheKey).Err()
}
