package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"resumeforge/internal/config"
	"resumeforge/internal/logging"
	"resumeforge/pkg/models"
	"resumeforge/pkg/utils"
)

// ErrNotFound is returned when no resume exists under the requested ID.
var ErrNotFound = errors.New("resume not found")

const indexKey = "resume:index"

// ResumeStore persists resume documents in Redis as JSON blobs keyed by
// UUID, with a set index for listing.
type ResumeStore struct {
	client *redis.Client
	config *config.Config
	logger logging.Logger
}

// NewResumeStore creates a new Redis-backed resume store.
func NewResumeStore(cfg *config.Config) *ResumeStore {
	opts, err := redis.ParseURL(utils.GetStringOrDefault(cfg.Redis.URL, "redis://localhost:6379"))
	if err != nil {
		// Fallback to default configuration
		opts = &redis.Options{
			Addr:     "localhost:6379",
			Password: "",
			DB:       0,
		}
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}

	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)

	return &ResumeStore{
		client: client,
		config: cfg,
		logger: logging.GetGlobalLogger(),
	}
}

// Ping tests the Redis connection
func (s *ResumeStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (s *ResumeStore) Close() error {
	return s.client.Close()
}

// IsHealthy checks if Redis is connected and healthy
func (s *ResumeStore) IsHealthy(ctx context.Context) error {
	return s.Ping(ctx)
}

// Create stores a new resume and registers it in the listing index.
func (s *ResumeStore) Create(ctx context.Context, title string, data map[string]interface{}) (*models.StoredResume, error) {
	now := time.Now().UTC()
	resume := &models.StoredResume{
		ID:        utils.GenerateResumeID(),
		Title:     title,
		Data:      data,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.save(ctx, resume); err != nil {
		return nil, err
	}

	if err := s.client.SAdd(ctx, indexKey, resume.ID).Err(); err != nil {
		return nil, fmt.Errorf("failed to index resume: %w", err)
	}

	s.logger.Info("Resume created", map[string]interface{}{
		"resume_id": resume.ID,
		"title":     resume.Title,
	})
	return resume, nil
}

// Get retrieves a resume by ID.
func (s *ResumeStore) Get(ctx context.Context, id string) (*models.StoredResume, error) {
	raw, err := s.client.Get(ctx, resumeKey(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}

	var resume models.StoredResume
	if err := json.Unmarshal([]byte(raw), &resume); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume: %w", err)
	}
	return &resume, nil
}

// Update replaces the stored data for an existing resume. The created
// timestamp is preserved.
func (s *ResumeStore) Update(ctx context.Context, id, title string, data map[string]interface{}) (*models.StoredResume, error) {
	resume, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if title != "" {
		resume.Title = title
	}
	if data != nil {
		resume.Data = data
	}
	resume.UpdatedAt = time.Now().UTC()

	if err := s.save(ctx, resume); err != nil {
		return nil, err
	}
	return resume, nil
}

// Delete removes a resume and its index entry.
func (s *ResumeStore) Delete(ctx context.Context, id string) error {
	deleted, err := s.client.Del(ctx, resumeKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	if deleted == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	if err := s.client.SRem(ctx, indexKey, id).Err(); err != nil {
		s.logger.Warn("Failed to remove resume from index", map[string]interface{}{
			"resume_id": id,
			"error":     err.Error(),
		})
	}
	return nil
}

// List returns every stored resume. Index entries whose document has
// expired or been removed out of band are skipped and pruned.
func (s *ResumeStore) List(ctx context.Context) ([]*models.StoredResume, error) {
	ids, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}

	resumes := make([]*models.StoredResume, 0, len(ids))
	for _, id := range ids {
		resume, err := s.Get(ctx, id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				s.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, err
		}
		resumes = append(resumes, resume)
	}
	return resumes, nil
}

func (s *ResumeStore) save(ctx context.Context, resume *models.StoredResume) error {
	raw, err := json.Marshal(resume)
	if err != nil {
		return fmt.Errorf("failed to marshal resume: %w", err)
	}
	if err := s.client.Set(ctx, resumeKey(resume.ID), raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to save resume: %w", err)
	}
	return nil
}

func resumeKey(id string) string {
	return fmt.Sprintf("resume:%s", id)
}
