package syncerimpl

import (
	"context"
	"fmt"
	"sync"

	"github.com/orgball2608/insta-shop-sync/internal/domain"
	"github.com/orgball2608/insta-shop-sync/internal/syncer"
	"github.com/panjf2000/ants/v2"
)

type outcome struct {
	posts []domain.EnrichedPost
	err   error
}

func (s *SyncerImpl) SyncAll(ctx context.Context, accounts []domain.Account) syncer.Result {
	result := syncer.Result{
		Posts:  make([]domain.EnrichedPost, 0),
		Errors: make([]domain.SyncError, 0),
	}
	if len(accounts) == 0 {
		return result
	}

	if timeout := s.syncTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	outcomes := make([]outcome, len(accounts))
	s.runJobsWithAnts(ctx, accounts, outcomes)

	for i, o := range outcomes {
		if o.err != nil {
			result.Errors = append(result.Errors, domain.SyncError{
				ConfigID: accounts[i].ID,
				Username: accounts[i].Username,
				Error:    o.err.Error(),
			})
			continue
		}
		result.Posts = append(result.Posts, o.posts...)
	}

	s.Logger.Info("Sync finished",
		"accounts", len(accounts),
		"posts", len(result.Posts),
		"failed", len(result.Errors),
	)
	return result
}

// runJobsWithAnts runs one SyncAccount per account and waits for every task,
// whether it succeeded, failed or panicked.
func (s *SyncerImpl) runJobsWithAnts(ctx context.Context, accounts []domain.Account, outcomes []outcome) {
	var wg sync.WaitGroup
	pool, err := ants.NewPool(s.accountConcurrency(), ants.WithPreAlloc(true))
	if err != nil {
		for i := range outcomes {
			outcomes[i].err = fmt.Errorf("failed to start worker pool: %w", err)
		}
		return
	}
	defer pool.Release()

	for i, acc := range accounts {
		wg.Add(1)

		err := pool.Submit(func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					s.Logger.Error("Panic while syncing account", "account_id", acc.ID, "panic", r)
					outcomes[i] = outcome{err: fmt.Errorf("sync panicked: %v", r)}
				}
			}()

			posts, err := s.SyncAccount(ctx, acc)
			outcomes[i] = outcome{posts: posts, err: err}
		})
		if err != nil {
			wg.Done()
			s.Logger.Error("Failed to submit job to ants pool", "account_id", acc.ID, "error", err)
			outcomes[i] = outcome{err: fmt.Errorf("failed to schedule sync: %w", err)}
		}
	}

	wg.Wait()
}
