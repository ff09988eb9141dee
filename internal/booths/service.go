package booths

import (
	"context"
	"log/slog"

	"expohall/pkg/cache"
	"expohall/pkg/logger"
)

const boothListCacheKey = "expohall:booths:all"

type Service interface {
	ListBooths(ctx context.Context) ([]Booth, error)
	InvalidateCache(ctx context.Context)
}

type service struct {
	repo  Repository
	cache *cache.Client
	log   *logger.Logger
}

// NewService builds the booth listing service. The cache client may be nil;
// listing then always hits the database.
func NewService(repo Repository, cacheClient *cache.Client) Service {
	return &service{
		repo:  repo,
		cache: cacheClient,
		log:   logger.GetDefault().WithComponent("booths"),
	}
}

func (s *service) ListBooths(ctx context.Context) ([]Booth, error) {
	if s.cache != nil {
		var cached []Booth
		hit, err := s.cache.GetJSON(ctx, boothListCacheKey, &cached)
		if err != nil {
			s.log.Warn("booth cache read failed", slog.Any("error", err))
		} else if hit {
			return cached, nil
		}
	}

	list, err := s.repo.ListBooths(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, boothListCacheKey, list); err != nil {
			s.log.Warn("booth cache write failed", slog.Any("error", err))
		}
	}
	return list, nil
}

// InvalidateCache drops the cached booth list after a status change.
func (s *service) InvalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, boothListCacheKey); err != nil {
		s.log.Warn("booth cache invalidation failed", slog.Any("error", err))
	}
}
