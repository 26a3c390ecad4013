package reaction

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/Deshan005/AdvancedServerSideCW2/domain"
)

type Service struct {
	reactionRepo domain.ReactionRepository
	blogRepo     domain.BlogRepository
	cache        domain.BlogCache
	countsSyncer domain.SyncCountsWorker
}

var _ domain.ReactionUsecase = (*Service)(nil)

// NewService will create a new reaction service object
func NewService(r domain.ReactionRepository, b domain.BlogRepository, c domain.BlogCache, w domain.SyncCountsWorker) *Service {
	return &Service{
		reactionRepo: r,
		blogRepo:     b,
		cache:        c,
		countsSyncer: w,
	}
}

// React upserts the caller's reaction and queues a count refresh. The store
// write is the success path even when a reaction already exists; the composite
// key turns the second insert into an overwrite.
func (s *Service) React(ctx context.Context, r domain.Reaction) error {
	if !r.Kind.Valid() {
		return domain.ErrBadParamInput
	}

	if _, err := s.blogRepo.GetByID(ctx, r.BlogID); err != nil {
		return err
	}

	if err := s.reactionRepo.Upsert(ctx, r); err != nil {
		return err
	}

	s.countsSyncer.Send(r.BlogID)
	return nil
}

// Counts serves from the cache and falls through to mysql on a miss or a
// cache failure. A cache problem is never surfaced to the caller.
func (s *Service) Counts(ctx context.Context, blogID int64) (domain.ReactionCounts, error) {
	counts, err := s.cache.GetReactionCounts(ctx, blogID)
	if err == nil {
		return counts, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("reaction counts cache read failed for blog %d: %v", blogID, err)
	}

	counts, err = s.reactionRepo.Counts(ctx, blogID)
	if err != nil {
		return domain.ReactionCounts{}, err
	}

	go func(id int64, c domain.ReactionCounts) {
		if err := s.cache.SetReactionCounts(context.Background(), id, c); err != nil {
			logrus.Warnf("failed to set reaction counts cache: %v", err)
		}
	}(blogID, counts)

	return counts, nil
}

func (s *Service) UserReaction(ctx context.Context, blogID int64, userEmail string) (domain.ReactionKind, error) {
	return s.reactionRepo.UserReaction(ctx, blogID, userEmail)
}
