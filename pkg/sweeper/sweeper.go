// Package sweeper deletes downloaded files once they exceed a retention
// threshold. Completed downloads are meant to be fetched promptly; the
// sweeper keeps the download directory from accumulating stale media.
package sweeper

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Sweeper periodically scans a directory and removes regular files whose
// age is strictly greater than maxAge. Hidden files are never touched.
// It properly coordinates shutdown to prevent races with an in-flight sweep.
type Sweeper struct {
	dir      string
	interval time.Duration
	maxAge   time.Duration

	// now and remove are injectable for tests.
	now    func() time.Time
	remove func(string) error

	ticker       *time.Ticker
	shutdownChan chan struct{}
	shutdownDone chan struct{}
	shutdownOnce sync.Once
}

// New creates a sweeper for dir. Non-positive durations fall back to the
// five minute defaults.
func New(dir string, interval, maxAge time.Duration) *Sweeper {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	if maxAge <= 0 {
		maxAge = 5 * time.Minute
	}

	return &Sweeper{
		dir:          dir,
		interval:     interval,
		maxAge:       maxAge,
		now:          time.Now,
		remove:       os.Remove,
		ticker:       time.NewTicker(interval),
		shutdownChan: make(chan struct{}),
		shutdownDone: make(chan struct{}),
	}
}

// Start begins the sweep loop in a goroutine.
func (s *Sweeper) Start() {
	log.Printf("Retention sweeper running: files older than %s are deleted every %s", s.maxAge, s.interval)
	go s.sweepLoop()
}

// Stop gracefully stops the sweeper, waiting for an in-flight sweep to
// finish.
func (s *Sweeper) Stop() {
	s.shutdownOnce.Do(func() {
		close(s.shutdownChan)
		<-s.shutdownDone // Wait for the loop to finish (prevents shutdown race)
		s.ticker.Stop()
	})
}

func (s *Sweeper) sweepLoop() {
	defer close(s.shutdownDone) // Signal completion

	for {
		select {
		case <-s.ticker.C:
			s.sweepOnce()
		case <-s.shutdownChan:
			return
		}
	}
}

// sweepOnce performs a single pass over the directory and returns how many
// files were deleted. An individual deletion failure is logged and the pass
// continues with the remaining files.
func (s *Sweeper) sweepOnce() int {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Sweep failed to read %s: %v", s.dir, err)
		}
		return 0
	}

	now := s.now()
	deleted := 0

	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			// Vanished between ReadDir and Info; nothing to delete.
			continue
		}

		age := now.Sub(info.ModTime())
		if age <= s.maxAge {
			continue
		}

		path := filepath.Join(s.dir, entry.Name())
		if err := s.remove(path); err != nil {
			log.Printf("Error deleting %s: %v", entry.Name(), err)
			continue
		}
		deleted++
		log.Printf("Deleted old file: %s (age: %s)", entry.Name(), age.Round(time.Second))
	}

	if deleted > 0 {
		log.Printf("Sweep complete: %d file(s) deleted", deleted)
	}
	return deleted
}
