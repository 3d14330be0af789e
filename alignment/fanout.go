package alignment

import (
	"context"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/practicepreach/preach/core"
)

// ScoreParties scores each party concurrently on a worker pool and
// returns the per-party results. A failing party is logged and left out
// of the map; it never fails the other parties. Pass core.Parties to
// compare the full vocabulary.
func (s *Scorer) ScoreParties(ctx context.Context, topic string, parties []core.Party, start, end time.Time) (map[core.Party]*core.Alignment, error) {
	pool, err := ants.NewPool(s.poolSize)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make(map[core.Party]*core.Alignment, len(parties))
	)

	for _, party := range parties {
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()

			result, err := s.Score(ctx, topic, party, start, end)
			if err != nil {
				s.logger.Error("scoring party failed", "party", party, "err", err)
				return
			}

			mu.Lock()
			results[party] = result
			mu.Unlock()
		})
		if submitErr != nil {
			wg.Done()
			s.logger.Error("submitting scoring task failed", "party", party, "err", submitErr)
		}
	}

	wg.Wait()
	return results, nil
}
