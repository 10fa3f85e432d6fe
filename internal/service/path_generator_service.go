package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"smart_learning_path/internal/llm"
	"smart_learning_path/internal/model"
	"smart_learning_path/internal/prompt"
	"smart_learning_path/internal/repository"
	"smart_learning_path/pkg/monitoring"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const cacheKeyPrefix = "learning_path:"

// Settings are the hot-reloadable generation knobs.
type Settings struct {
	MaxTokens     int
	QuizMaxTokens int
	CacheTTL      time.Duration
}

// PathGeneratorService turns learner profiles into learning paths and week
// topics into quizzes, with caching and persistence around the model call.
type PathGeneratorService struct {
	provider   llm.Provider
	store      repository.LearningPathStore
	cache      *CacheService
	normalizer llm.Normalizer
	log        *zap.Logger
	now        func() time.Time

	mu       sync.RWMutex
	settings Settings

	flight singleflight.Group
}

func NewPathGeneratorService(
	provider llm.Provider,
	store repository.LearningPathStore,
	cache *CacheService,
	normalizer llm.Normalizer,
	settings Settings,
	log *zap.Logger,
) *PathGeneratorService {
	if log == nil {
		log = zap.NewNop()
	}
	if cache == nil {
		cache = NewCacheService(nil, log)
	}
	return &PathGeneratorService{
		provider:   provider,
		store:      store,
		cache:      cache,
		normalizer: normalizer,
		log:        log,
		now:        time.Now,
		settings:   settings,
	}
}

func (s *PathGeneratorService) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// UpdateSettings swaps the generation knobs. Calls already in flight keep
// the values they started with.
func (s *PathGeneratorService) UpdateSettings(settings Settings) {
	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()
	s.log.Info("generation settings updated",
		zap.Int("max_tokens", settings.MaxTokens),
		zap.Int("quiz_max_tokens", settings.QuizMaxTokens),
		zap.Duration("cache_ttl", settings.CacheTTL),
	)
}

func (s *PathGeneratorService) StoreMode() string { return s.store.Mode() }

func (s *PathGeneratorService) CacheStatus() string { return s.cache.Status() }

// CacheKey derives the cache key from the profile's JSON encoding. Field
// order is fixed by the struct, so equal profiles always share a key.
func CacheKey(p model.LearnerProfile) string {
	b, _ := json.Marshal(p)
	sum := sha256.Sum256(b)
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}

// GenerateLearningPath never returns an error: every expected failure is
// reported through Success=false and Message.
func (s *PathGeneratorService) GenerateLearningPath(ctx context.Context, profile model.LearnerProfile) model.LearningPathResponse {
	key := CacheKey(profile)
	span := trace.SpanFromContext(ctx)
	span.SetAttributes(attribute.String("learning_path.cache_key", key))

	if resp, ok := s.fromCache(ctx, key); ok {
		span.SetAttributes(attribute.Bool("learning_path.from_cache", true))
		monitoring.GenerationCounter.WithLabelValues("cache_hit").Inc()
		return resp
	}

	// 共享生成不随单个请求取消，由 provider 超时兜底
	ch := s.flight.DoChan(key, func() (interface{}, error) {
		return s.generate(context.WithoutCancel(ctx), profile, key), nil
	})
	select {
	case <-ctx.Done():
		return s.failure(ctx.Err())
	case res := <-ch:
		resp := res.Val.(model.LearningPathResponse)
		if res.Shared && resp.LearningPath != nil {
			resp.LearningPath = clonePath(resp.LearningPath)
		}
		return resp
	}
}

func (s *PathGeneratorService) fromCache(ctx context.Context, key string) (model.LearningPathResponse, bool) {
	data, status := s.cache.Get(ctx, key)
	if status != CacheHit {
		return model.LearningPathResponse{}, false
	}

	var path model.LearningPath
	if err := json.Unmarshal(data, &path); err != nil {
		s.log.Warn("discarding undecodable cache entry", zap.String("key", key), zap.Error(err))
		return model.LearningPathResponse{}, false
	}
	// 已删除的记录不能以 saved=true 返回
	if path.ID != "" {
		if _, err := s.store.Get(ctx, path.ID); errors.Is(err, repository.ErrNotFound) {
			s.log.Info("cached learning path no longer stored, regenerating", zap.String("key", key), zap.String("id", path.ID))
			return model.LearningPathResponse{}, false
		}
	}

	s.log.Debug("learning path served from cache", zap.String("key", key), zap.String("id", path.ID))
	return model.LearningPathResponse{
		Success:      true,
		LearningPath: &path,
		Message:      "Learning path retrieved from cache",
		Saved:        path.ID != "",
		FromCache:    true,
	}, true
}

func (s *PathGeneratorService) generate(ctx context.Context, profile model.LearnerProfile, key string) model.LearningPathResponse {
	settings := s.Settings()

	raw, err := s.provider.Complete(ctx, prompt.LearningPath(profile), settings.MaxTokens)
	if err != nil {
		return s.failure(err)
	}

	value, err := s.normalizer.Normalize(raw)
	if err != nil {
		return s.failure(err)
	}

	var path model.LearningPath
	if err := llm.Decode(value, learningPathSchema, &path); err != nil {
		return s.failure(err)
	}
	path.ID = ""
	path.UserInput = profile
	path.CreatedAt = s.now().UTC()
	s.checkWeekSequence(&path)

	id, err := s.store.Create(ctx, &path)
	if err != nil {
		s.log.Error("failed to save generated learning path",
			zap.String("store", s.store.Mode()),
			zap.Error(err),
		)
		monitoring.GenerationCounter.WithLabelValues("unsaved").Inc()
		return model.LearningPathResponse{
			Success:      true,
			LearningPath: &path,
			Message:      "Learning path generated but could not be saved: " + err.Error(),
			Saved:        false,
		}
	}
	path.ID = id

	if data, err := json.Marshal(path); err == nil {
		s.cache.Set(ctx, key, data, settings.CacheTTL)
	}

	s.log.Info("learning path generated",
		zap.String("id", id),
		zap.Int("weeks", len(path.WeeklyBreakdown)),
		zap.String("provider", s.provider.Name()),
	)
	monitoring.GenerationCounter.WithLabelValues("generated").Inc()
	return model.LearningPathResponse{
		Success:      true,
		LearningPath: &path,
		Message:      "Learning path generated successfully",
		Saved:        true,
	}
}

func (s *PathGeneratorService) failure(err error) model.LearningPathResponse {
	outcome := failureOutcome(err)
	s.log.Warn("learning path generation failed", zap.String("outcome", outcome), zap.Error(err))
	monitoring.GenerationCounter.WithLabelValues(outcome).Inc()
	return model.LearningPathResponse{
		Success: false,
		Message: "Error generating learning path: " + err.Error(),
	}
}

func failureOutcome(err error) string {
	var (
		pe *llm.ProviderError
		me *llm.MalformedResponseError
		se *llm.SchemaMismatchError
	)
	switch {
	case errors.As(err, &pe):
		return "provider_error"
	case errors.As(err, &me):
		return "malformed_response"
	case errors.As(err, &se):
		return "schema_mismatch"
	}
	return "error"
}

// checkWeekSequence only warns: a gap or repeat in week numbers still
// yields a usable plan.
func (s *PathGeneratorService) checkWeekSequence(p *model.LearningPath) {
	for i, w := range p.WeeklyBreakdown {
		if w.WeekNumber != i+1 {
			s.log.Warn("model returned out-of-sequence week numbers",
				zap.Int("position", i+1),
				zap.Int("week_number", w.WeekNumber),
				zap.String("path_title", p.PathTitle),
			)
			return
		}
	}
}

// GenerateQuiz builds a quiz for one week. Unlike path generation the
// failure is returned to the caller.
func (s *PathGeneratorService) GenerateQuiz(ctx context.Context, req model.QuizRequest) (*model.Quiz, error) {
	settings := s.Settings()

	quiz, err := s.generateQuiz(ctx, req, settings.QuizMaxTokens)
	if err != nil {
		monitoring.QuizCounter.WithLabelValues(failureOutcome(err)).Inc()
		s.log.Warn("quiz generation failed", zap.Int("week_number", req.WeekNumber), zap.Error(err))
		return nil, err
	}

	monitoring.QuizCounter.WithLabelValues("generated").Inc()
	return quiz, nil
}

func (s *PathGeneratorService) generateQuiz(ctx context.Context, req model.QuizRequest, maxTokens int) (*model.Quiz, error) {
	raw, err := s.provider.Complete(ctx, prompt.Quiz(req.WeekNumber, req.Topics), maxTokens)
	if err != nil {
		return nil, err
	}

	value, err := s.normalizer.Normalize(raw)
	if err != nil {
		return nil, err
	}

	var quiz model.Quiz
	if err := llm.Decode(value, quizSchema, &quiz); err != nil {
		return nil, err
	}
	for i, q := range quiz.Questions {
		if len(q.Options) != model.QuizOptionsPerQuestion {
			return nil, &llm.SchemaMismatchError{
				Schema: quizSchema.Name,
				Err:    fmt.Errorf("question %d has %d options, want %d", i+1, len(q.Options), model.QuizOptionsPerQuestion),
			}
		}
		if n := q.CorrectOptions(); n != 1 {
			return nil, &llm.SchemaMismatchError{
				Schema: quizSchema.Name,
				Err:    fmt.Errorf("question %d has %d correct options, want 1", i+1, n),
			}
		}
	}

	quiz.WeekNumber = req.WeekNumber
	return &quiz, nil
}

func (s *PathGeneratorService) GetLearningPath(ctx context.Context, id string) (*model.LearningPath, error) {
	return s.store.Get(ctx, id)
}

func (s *PathGeneratorService) ListLearningPaths(ctx context.Context, limit int) ([]model.LearningPath, error) {
	return s.store.List(ctx, limit)
}

func (s *PathGeneratorService) DeleteLearningPath(ctx context.Context, id string) (bool, error) {
	return s.store.Delete(ctx, id)
}

func clonePath(p *model.LearningPath) *model.LearningPath {
	data, err := json.Marshal(p)
	if err != nil {
		cp := *p
		return &cp
	}
	var cp model.LearningPath
	if err := json.Unmarshal(data, &cp); err != nil {
		cp = *p
	}
	return &cp
}
