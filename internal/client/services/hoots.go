package services

import (
	"context"
	"fmt"

	"github.com/caojohnny91/hoot-client/internal/client/cache"
	"github.com/caojohnny91/hoot-client/internal/client/gateway"
	"github.com/caojohnny91/hoot-client/internal/client/models"
	"github.com/caojohnny91/hoot-client/internal/logging"
)

// HootService pairs each gateway mutation with its cache application.
// Ordering is strictly resolve-then-apply: the cache changes only after the
// gateway call succeeds, so a slow or failed write never leaves a
// temporarily wrong cache state to roll back. A failed call returns the
// error with the cache untouched; there are no retries.
type HootService struct {
	client gateway.Client
	cache  *cache.HootCache
	log    logging.Logger
}

func NewHootService(client gateway.Client, hootCache *cache.HootCache, log logging.Logger) *HootService {
	return &HootService{client: client, cache: hootCache, log: log.With("component", "hoots")}
}

// Cache exposes the underlying hoot cache for reads and subscriptions.
func (s *HootService) Cache() *cache.HootCache {
	return s.cache
}

// Refresh replaces the whole cache with the backend's current list.
func (s *HootService) Refresh(ctx context.Context) error {
	hoots, err := s.client.ListHoots(ctx)
	if err != nil {
		return fmt.Errorf("listing hoots: %w", err)
	}
	s.cache.Load(hoots)
	s.log.Debug(ctx, "cache loaded", "hoots", len(hoots))
	return nil
}

// Get fetches one hoot, comments included, directly from the backend.
// Reads do not touch the cache.
func (s *HootService) Get(ctx context.Context, hootID string) (*models.Hoot, error) {
	hoot, err := s.client.GetHoot(ctx, hootID)
	if err != nil {
		return nil, fmt.Errorf("fetching hoot %s: %w", hootID, err)
	}
	return hoot, nil
}

// Create posts the draft and prepends the backend's response to the cache.
// The cached entry is always the server-assigned entity, never the draft.
func (s *HootService) Create(ctx context.Context, draft models.HootDraft) (*models.Hoot, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	hoot, err := s.client.CreateHoot(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("creating hoot: %w", err)
	}
	s.cache.InsertHoot(*hoot)
	return hoot, nil
}

// Update replaces the hoot remotely and substitutes the cached entry
// wholesale with the backend's response.
func (s *HootService) Update(ctx context.Context, hootID string, draft models.HootDraft) (*models.Hoot, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	hoot, err := s.client.UpdateHoot(ctx, hootID, draft)
	if err != nil {
		return nil, fmt.Errorf("updating hoot %s: %w", hootID, err)
	}
	s.cache.ReplaceHoot(hootID, *hoot)
	return hoot, nil
}

// Delete removes the hoot remotely, then drops it from the cache.
func (s *HootService) Delete(ctx context.Context, hootID string) error {
	removedID, err := s.client.DeleteHoot(ctx, hootID)
	if err != nil {
		return fmt.Errorf("deleting hoot %s: %w", hootID, err)
	}
	s.cache.RemoveHoot(removedID)
	return nil
}

// AddComment appends the backend's comment to the owning cached hoot.
func (s *HootService) AddComment(ctx context.Context, hootID string, draft models.CommentDraft) (*models.Comment, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	comment, err := s.client.AddComment(ctx, hootID, draft)
	if err != nil {
		return nil, fmt.Errorf("adding comment to hoot %s: %w", hootID, err)
	}
	s.cache.InsertComment(hootID, *comment)
	return comment, nil
}

// GetComment fetches one comment directly via its sub-resource address.
func (s *HootService) GetComment(ctx context.Context, hootID, commentID string) (*models.Comment, error) {
	comment, err := s.client.GetComment(ctx, hootID, commentID)
	if err != nil {
		return nil, fmt.Errorf("fetching comment %s/%s: %w", hootID, commentID, err)
	}
	return comment, nil
}

// UpdateComment substitutes the comment inside the owning cached hoot.
func (s *HootService) UpdateComment(ctx context.Context, hootID, commentID string, draft models.CommentDraft) (*models.Comment, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	comment, err := s.client.UpdateComment(ctx, hootID, commentID, draft)
	if err != nil {
		return nil, fmt.Errorf("updating comment %s/%s: %w", hootID, commentID, err)
	}
	s.cache.ReplaceComment(hootID, commentID, *comment)
	return comment, nil
}

// DeleteComment removes the comment remotely, then filters it out of the
// owning cached hoot.
func (s *HootService) DeleteComment(ctx context.Context, hootID, commentID string) error {
	removedID, err := s.client.DeleteComment(ctx, hootID, commentID)
	if err != nil {
		return fmt.Errorf("deleting comment %s/%s: %w", hootID, commentID, err)
	}
	s.cache.RemoveComment(hootID, removedID)
	return nil
}
