package scheduler

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"github.com/ManuelReschke/QuestBoard/internal/pkg/metrics"
)

// Expirer moves quests past their end date to EXPIRED
type Expirer interface {
	ExpireEnded() (int64, error)
}

// QuestScheduler runs the periodic quest expiry sweep
type QuestScheduler struct {
	expirer  Expirer
	interval time.Duration
	ticker   *time.Ticker
	stopCh   chan struct{}
	wg       sync.WaitGroup
	mu       sync.Mutex
	running  bool
}

// NewQuestScheduler creates a scheduler sweeping every interval
func NewQuestScheduler(expirer Expirer, interval time.Duration) *QuestScheduler {
	if interval <= 0 {
		interval = time.Hour
	}
	return &QuestScheduler{
		expirer:  expirer,
		interval: interval,
	}
}

// Start runs one sweep right away and then one per interval
func (s *QuestScheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}

	// Recreate stop channel for each start cycle so the scheduler can be restarted safely.
	s.stopCh = make(chan struct{})
	s.running = true
	s.ticker = time.NewTicker(s.interval)
	log.Infof("[QuestScheduler] Starting expiry sweep every %v", s.interval)

	s.wg.Add(1)
	go s.worker(s.ticker, s.stopCh)
}

// Stop stops the sweep and waits for a running sweep to finish
func (s *QuestScheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	log.Info("[QuestScheduler] Stopping expiry sweep...")
	s.ticker.Stop()
	close(s.stopCh)
	s.running = false
	s.mu.Unlock()

	s.wg.Wait()
	log.Info("[QuestScheduler] Stopped")
}

func (s *QuestScheduler) worker(ticker *time.Ticker, stopCh <-chan struct{}) {
	defer s.wg.Done()

	s.RunOnce()
	for {
		select {
		case <-ticker.C:
			s.RunOnce()
		case <-stopCh:
			return
		}
	}
}

// RunOnce performs a single sweep
func (s *QuestScheduler) RunOnce() {
	n, err := s.expirer.ExpireEnded()
	if err != nil {
		log.Errorf("[QuestScheduler] Expiry sweep failed: %v", err)
		return
	}
	metrics.QuestsExpired(n)
	if n > 0 {
		log.Infof("[QuestScheduler] Expired %d quests", n)
	}
}
