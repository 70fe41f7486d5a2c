package scheduler

import (
	"log"
	"os"
	"sync"
	"time"

	"github.com/design-toolkit/api/calculators"
)

// Scheduler re-reads the presets file on a fixed interval and swaps the
// catalog when the file's modification time changes.
type Scheduler struct {
	Path     string
	Interval time.Duration
	Store    *calculators.Store

	mu      sync.Mutex
	lastMod time.Time
	ticker  *time.Ticker
	done    chan bool
}

// NewScheduler has not loaded anything yet. Call Reload once for the
// initial catalog so the recorded modification time is taken before the
// file is read.
func NewScheduler(path string, interval time.Duration, store *calculators.Store) *Scheduler {
	return &Scheduler{
		Path:     path,
		Interval: interval,
		Store:    store,
		done:     make(chan bool),
	}
}

// Start begins polling. A non-positive interval disables it.
func (s *Scheduler) Start() {
	if s.Interval <= 0 {
		return
	}

	log.Printf("Scheduler started. Checking %s every %v", s.Path, s.Interval)

	s.ticker = time.NewTicker(s.Interval)
	go func() {
		for {
			select {
			case <-s.ticker.C:
				if _, err := s.Reload(); err != nil {
					log.Printf("Error reloading presets: %v", err)
				}
			case <-s.done:
				return
			}
		}
	}()
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	if s.ticker == nil {
		return
	}
	s.ticker.Stop()
	s.done <- true
	log.Println("Scheduler stopped")
}

// Reload swaps in the file's catalog if it changed since the last load. A
// file that disappears leaves the current catalog in place. A file that
// fails to parse is retried on the next tick.
func (s *Scheduler) Reload() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	info, err := os.Stat(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if info.ModTime().Equal(s.lastMod) {
		return false, nil
	}

	catalog, err := calculators.LoadCatalogFile(s.Path)
	if err != nil {
		return false, err
	}

	s.Store.Set(catalog)
	s.lastMod = info.ModTime()
	log.Printf("Reloaded presets from %s: %d print, %d canvas groups, %d type scales",
		s.Path, len(catalog.Print), len(catalog.Canvas), len(catalog.TypeScales))
	return true, nil
}
