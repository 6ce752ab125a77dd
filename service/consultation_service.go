package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"legalgpt-portal/cache"
	"legalgpt-portal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ConsultationStore persists answered consultations
type ConsultationStore interface {
	Create(ctx context.Context, c *models.Consultation) error
	ListRecent(ctx context.Context, limit int) ([]*models.Consultation, error)
}

// ConsultationService answers legal queries
type ConsultationService struct {
	generator      Generator
	store          ConsultationStore
	cache          cache.Cache
	cacheTTL       time.Duration
	maxRetries     int
	initialBackoff time.Duration
	now            func() time.Time
	logger         *zap.Logger
}

// ConsultationServiceOption is a functional option for ConsultationService
type ConsultationServiceOption func(*ConsultationService)

// WithGenerator sets the answer generator
func WithGenerator(g Generator) ConsultationServiceOption {
	return func(s *ConsultationService) {
		s.generator = g
	}
}

// WithConsultationStore sets where answered consultations are recorded
func WithConsultationStore(store ConsultationStore) ConsultationServiceOption {
	return func(s *ConsultationService) {
		s.store = store
	}
}

// WithCache sets the answer cache and how long answers stay cached
func WithCache(c cache.Cache, ttl time.Duration) ConsultationServiceOption {
	return func(s *ConsultationService) {
		s.cache = c
		s.cacheTTL = ttl
	}
}

// WithRetry sets the number of generation attempts and the first backoff
func WithRetry(maxRetries int, initialBackoff time.Duration) ConsultationServiceOption {
	return func(s *ConsultationService) {
		if maxRetries > 0 {
			s.maxRetries = maxRetries
		}
		s.initialBackoff = initialBackoff
	}
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) ConsultationServiceOption {
	return func(s *ConsultationService) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewConsultationService creates a new consultation service
func NewConsultationService(opts ...ConsultationServiceOption) *ConsultationService {
	s := &ConsultationService{
		maxRetries:     maxRetries,
		initialBackoff: initialBackoff,
		now:            time.Now,
		logger:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var (
	ErrEmptyQuery        = errors.New("query is empty")
	ErrInvalidParameters = errors.New("invalid generation parameters")
	ErrGeneratorNotSet   = errors.New("generator not set")
	ErrGenerationFailed  = errors.New("failed to generate content")
	ErrStreamInterrupted = errors.New("stream interrupted after partial output")
)

const (
	maxRetries     = 3
	initialBackoff = time.Second

	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

const promptTemplate = `Below is an instruction that describes a task. Write a response that appropriately completes the request.
You are a legal information assistant for United States law. Cite constitutional provisions, statutes and landmark cases where relevant. You do not give legal advice.

### Instruction:
%s

### Response:
`

// BuildPrompt wraps a user query in the instruction template
func BuildPrompt(query string) string {
	return fmt.Sprintf(promptTemplate, strings.TrimSpace(query))
}

// ValidateParams checks every parameter against its accepted range
func ValidateParams(p models.GenerationParams) error {
	values := map[string]float64{
		"Temperature": p.Temperature,
		"Top P":       p.TopP,
		"Top K":       float64(p.TopK),
		"Beams":       float64(p.NumBeams),
		"Max Tokens":  float64(p.MaxTokens),
	}
	for _, b := range models.GenerationParamBounds {
		v := values[b.Name]
		if v < b.Min || v > b.Max {
			return fmt.Errorf("%w: %s must be between %g and %g, got %g", ErrInvalidParameters, b.Name, b.Min, b.Max, v)
		}
	}
	return nil
}

// Consult answers a legal query. Cached answers are returned without calling the generator.
func (s *ConsultationService) Consult(ctx context.Context, req models.ConsultationRequest) (*models.Consultation, error) {
	return s.consult(ctx, req, nil)
}

// ConsultStream answers a legal query, delivering chunks to onChunk when the request asks
// for streaming and the generator supports it. A cached answer arrives as a single chunk.
func (s *ConsultationService) ConsultStream(
	ctx context.Context,
	req models.ConsultationRequest,
	onChunk func(string),
) (*models.Consultation, error) {
	return s.consult(ctx, req, onChunk)
}

func (s *ConsultationService) consult(
	ctx context.Context,
	req models.ConsultationRequest,
	onChunk func(string),
) (*models.Consultation, error) {
	req.Query = strings.TrimSpace(req.Query)
	if req.Query == "" {
		return nil, ErrEmptyQuery
	}
	if err := ValidateParams(req.GenerationParams); err != nil {
		return nil, err
	}
	if s.generator == nil {
		return nil, ErrGeneratorNotSet
	}

	key := cache.ConsultationKey(req)
	if cached, ok := s.lookup(key); ok {
		s.logger.Debug("consultation cache hit", zap.String("id", cached.ID.String()))
		if onChunk != nil {
			onChunk(cached.Answer)
		}
		return cached, nil
	}

	answer, err := s.generateWithRetry(ctx, BuildPrompt(req.Query), req.GenerationParams, onChunk)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	consultation := &models.Consultation{
		ID:        uuid.New(),
		Query:     req.Query,
		Answer:    strings.TrimSpace(answer),
		Params:    req.GenerationParams,
		CreatedAt: s.now().UTC(),
	}
	s.remember(key, consultation)

	if s.store != nil {
		if err := s.store.Create(ctx, consultation); err != nil {
			s.logger.Warn("failed to record consultation",
				zap.String("id", consultation.ID.String()),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("consultation answered",
		zap.String("id", consultation.ID.String()),
		zap.Int("answer_len", len(consultation.Answer)),
	)
	return consultation, nil
}

func (s *ConsultationService) generateWithRetry(
	ctx context.Context,
	prompt string,
	params models.GenerationParams,
	onChunk func(string),
) (string, error) {
	streamer, canStream := s.generator.(StreamGenerator)
	useStream := params.Stream && canStream && onChunk != nil

	// chunks already delivered cannot be taken back, so a stream is never restarted after
	// its first chunk
	emitted := false
	emit := func(chunk string) {
		emitted = true
		onChunk(chunk)
	}

	var lastErr error
	backoff := s.initialBackoff
	for attempt := 0; attempt < s.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		var answer string
		var err error
		if useStream {
			answer, err = streamer.GenerateStream(ctx, prompt, params, emit)
		} else {
			answer, err = s.generator.Generate(ctx, prompt, params)
		}
		if err == nil {
			return answer, nil
		}

		lastErr = err
		s.logger.Warn("generation attempt failed",
			zap.Int("attempt", attempt+1),
			zap.Int("max_attempts", s.maxRetries),
			zap.Error(err),
		)
		// Don't retry blocked prompts or cancelled requests
		if errors.Is(err, errNonRetryable) || ctx.Err() != nil {
			return "", err
		}
		if emitted {
			return "", fmt.Errorf("%w: %v", ErrStreamInterrupted, err)
		}
	}
	return "", fmt.Errorf("failed after %d attempts: %w", s.maxRetries, lastErr)
}

func (s *ConsultationService) lookup(key string) (*models.Consultation, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, ok := s.cache.Get(key)
	if !ok {
		return nil, false
	}
	var c models.Consultation
	if err := json.Unmarshal(raw, &c); err != nil {
		s.logger.Warn("discarding corrupt cache entry", zap.Error(err))
		_ = s.cache.Delete(key)
		return nil, false
	}
	c.Cached = true
	return &c, true
}

func (s *ConsultationService) remember(key string, c *models.Consultation) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(c)
	if err != nil {
		s.logger.Warn("failed to encode consultation for cache", zap.Error(err))
		return
	}
	if err := s.cache.Set(key, raw, s.cacheTTL); err != nil {
		s.logger.Warn("failed to cache consultation", zap.Error(err))
	}
}

// History returns up to limit recent consultations, newest first. Without a store it is
// empty.
func (s *ConsultationService) History(ctx context.Context, limit int) ([]*models.Consultation, error) {
	if s.store == nil {
		return []*models.Consultation{}, nil
	}
	switch {
	case limit <= 0:
		limit = defaultHistoryLimit
	case limit > maxHistoryLimit:
		limit = maxHistoryLimit
	}
	items, err := s.store.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list consultations: %w", err)
	}
	return items, nil
}
