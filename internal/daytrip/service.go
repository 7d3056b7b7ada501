package daytrip

import (
	"context"
	"fmt"
	"time"

	"github.com/jcooper22-22/extreme-day-trip-finder/internal/models"
)

// FinderService is what the HTTP layer sees: one Search call.
type FinderService interface {
	Search(ctx context.Context, req *models.SearchRequest) (Result, error)
}

type service struct {
	finder         *Finder
	cache          CacheService
	computeTimeout time.Duration
}

func NewService(f *Finder, ch CacheService, timeout time.Duration) *service {
	return &service{
		finder:         f,
		cache:          ch,
		computeTimeout: timeout,
	}
}

func (s *service) Search(ctx context.Context, req *models.SearchRequest) (Result, error) {
	cacheKey := fmt.Sprintf("%s|%s|%s|%s",
		req.OriginIATA,
		req.DateStart.Format(dayLayout),
		req.DateEnd.Format(dayLayout),
		req.Budget,
	)

	// compute with per-request timeout
	cctx, cancel := context.WithTimeout(ctx, s.computeTimeout)
	defer cancel()

	res, err := s.cache.GetOrCompute(cctx, cacheKey, func(ctx context.Context) (Result, error) {
		return s.finder.Find(ctx, req.OriginIATA, req.Budget, req.DateStart, req.DateEnd)
	})
	if err != nil {
		return Result{}, err
	}

	return res, nil
}
