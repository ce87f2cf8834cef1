package sweeper

import (
	"context"
	"log"
	"time"

	"github.com/hostellink/backend/internal/repository"
)

// Sweeper periodically expires pending reservations whose deposit window
// lapsed. The transition itself is a conditional update, so overlapping
// sweeps or a webhook racing the sweep cannot double-apply.
type Sweeper struct {
	repo     repository.ReservationRepository
	interval time.Duration
}

func New(repo repository.ReservationRepository, interval time.Duration) *Sweeper {
	return &Sweeper{repo: repo, interval: interval}
}

func (s *Sweeper) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Println("[Sweeper] stopping")
				return
			case now := <-ticker.C:
				s.sweep(ctx, now)
			}
		}
	}()
}

func (s *Sweeper) sweep(ctx context.Context, now time.Time) {
	expired, err := s.repo.ExpireOverdue(ctx, now)
	if err != nil {
		log.Printf("[Sweeper] sweep failed: %v", err)
		return
	}
	if expired > 0 {
		log.Printf("[Sweeper] expired %d overdue reservations", expired)
	}
}
