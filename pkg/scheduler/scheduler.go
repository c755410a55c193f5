// Package scheduler refreshes the price snapshot cache on a cron, so the
// first farmer of the day is not the one paying for the upstream fetch.
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	svc "krishi/pkg/market/service"
)

type Scheduler struct {
	cron   *cron.Cron
	market svc.MarketService
}

func New(market svc.MarketService) *Scheduler {
	return &Scheduler{cron: cron.New(), market: market}
}

// Start registers the refresh job and runs one refresh immediately in the
// background, same pattern as a ticker with an up-front tick.
func (s *Scheduler) Start(spec string) error {
	if spec == "" {
		spec = "0 */12 * * *" // every 12 hours
	}
	if _, err := s.cron.AddFunc(spec, s.refresh); err != nil {
		return err
	}
	go s.refresh()
	s.cron.Start()
	log.Printf("[cron] price refresh scheduled: %s", spec)
	return nil
}

func (s *Scheduler) Stop() { s.cron.Stop() }

func (s *Scheduler) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	if err := s.market.Refresh(ctx); err != nil {
		log.Printf("[cron] price refresh failed: %v", err)
		return
	}
	log.Printf("[cron] price refresh complete")
}
