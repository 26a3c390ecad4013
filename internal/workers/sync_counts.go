package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Deshan005/AdvancedServerSideCW2/domain"
)

// syncCountsWorker recomputes cached reaction counts for blogs whose
// reactions changed. Tasks are deduplicated per flush, so a burst of
// reactions on one blog costs a single aggregation query.
type syncCountsWorker struct {
	reactionRepo domain.ReactionRepository
	cache        domain.BlogCache
	ch           chan int64
}

var _ domain.SyncCountsWorker = (*syncCountsWorker)(nil)

func NewSyncCountsWorker(r domain.ReactionRepository, c domain.BlogCache) *syncCountsWorker {
	return &syncCountsWorker{
		reactionRepo: r,
		cache:        c,
		ch:           make(chan int64, 1024),
	}
}

// Send enqueues a refresh for the given blog, dropping the task when the
// channel is full; the cache TTL covers the loss.
func (s *syncCountsWorker) Send(blogID int64) {
	select {
	case s.ch <- blogID:
	default:
		logrus.Info("SyncCountsWorker's channel is full, task dropped")
	}
}

func (s *syncCountsWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	const batchSize = 100
	batch := make([]int64, 0, batchSize)
	for {
		select {
		case blogID := <-s.ch:
			batch = append(batch, blogID)
			if len(batch) == batchSize {
				s.flush(ctx, batch)
				batch = make([]int64, 0, batchSize)
			}
		case <-ticker.C:
			s.flush(ctx, batch)
			batch = make([]int64, 0, batchSize)
		case <-ctx.Done():
			logrus.Info("shutting down SyncCountsWorker, flushing remaining tasks...")
			s.flush(context.Background(), batch)
			return
		}
	}
}

func (s *syncCountsWorker) flush(ctx context.Context, batch []int64) {
	if len(batch) == 0 {
		return
	}

	touched := make(map[int64]struct{}, len(batch))
	for _, id := range batch {
		touched[id] = struct{}{}
	}

	for blogID := range touched {
		counts, err := s.reactionRepo.Counts(ctx, blogID)
		if err != nil {
			logrus.Errorf("failed to recount reactions for blog %d: %v", blogID, err)
			continue
		}
		if err := s.cache.SetReactionCounts(ctx, blogID, counts); err != nil {
			logrus.Warnf("failed to refresh reaction counts cache for blog %d: %v", blogID, err)
		}
	}
}
