package downloads

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// JobStore is the shared progress registry. Every job is keyed by a locally
// generated correlation ID assigned at submission time, so concurrent
// downloads can never collide on a not-yet-known engine ID and failures are
// always attributable to the job that caused them.
//
// Entries are never removed; the registry grows for the life of the process.
type JobStore struct {
	mutex sync.RWMutex
	jobs  map[string]*Job
}

func NewJobStore() *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
	}
}

// Create registers a new queued job and returns a copy of it.
func (s *JobStore) Create(url string, mode Mode, formatID string) (Job, error) {
	if url == "" {
		return Job{}, fmt.Errorf("url cannot be empty")
	}

	job := &Job{
		ID:        uuid.NewString(),
		URL:       url,
		Mode:      mode,
		FormatID:  formatID,
		Status:    JobStatusQueued,
		CreatedAt: time.Now(),
	}

	s.mutex.Lock()
	s.jobs[job.ID] = job
	s.mutex.Unlock()

	return *job, nil
}

// Get returns a copy of the job with the given ID.
func (s *JobStore) Get(id string) (Job, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	job, ok := s.jobs[id]
	if !ok {
		return Job{}, fmt.Errorf("job not found: %s", id)
	}
	return *job, nil
}

// List returns copies of all jobs in no particular order.
func (s *JobStore) List() []Job {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	jobs := make([]Job, 0, len(s.jobs))
	for _, job := range s.jobs {
		jobs = append(jobs, *job)
	}
	return jobs
}

// Snapshot returns the full registry keyed by job ID, as served to pollers.
func (s *JobStore) Snapshot() map[string]Job {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	snap := make(map[string]Job, len(s.jobs))
	for id, job := range s.jobs {
		snap[id] = *job
	}
	return snap
}

// SetProgress records a transfer snapshot for a running job. The last write
// for a given ID wins. Writes to a terminal job are ignored.
func (s *JobStore) SetProgress(id, mediaID string, p Progress) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	job, ok := s.jobs[id]
	if !ok || job.Status.Terminal() {
		return
	}
	job.Status = JobStatusDownloading
	if mediaID != "" {
		job.MediaID = mediaID
	}
	job.Progress = p
}

// SetFinished marks the engine-reported end of transfer. Post-processing may
// still be running; the job is not terminal yet.
func (s *JobStore) SetFinished(id, mediaID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	job, ok := s.jobs[id]
	if !ok || job.Status.Terminal() {
		return
	}
	job.Status = JobStatusFinished
	if mediaID != "" {
		job.MediaID = mediaID
	}
	job.Progress.Percentage = 100
}

// Complete marks the job terminally successful.
func (s *JobStore) Complete(id, resultName string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	job, ok := s.jobs[id]
	if !ok || job.Status.Terminal() {
		return
	}
	now := time.Now()
	job.Status = JobStatusCompleted
	job.Progress.Percentage = 100
	job.ResultName = resultName
	job.CompletedAt = &now
}

// Fail marks the job terminally failed with the given message.
func (s *JobStore) Fail(id, errorMsg string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	job, ok := s.jobs[id]
	if !ok || job.Status.Terminal() {
		return
	}
	now := time.Now()
	job.Status = JobStatusError
	job.Error = errorMsg
	job.CompletedAt = &now
}

// Cancel invokes the job's cancel handle and marks it cancelled.
func (s *JobStore) Cancel(id string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return fmt.Errorf("job not found: %s", id)
	}
	if job.Status.Terminal() {
		return fmt.Errorf("job already %s: %s", job.Status, id)
	}
	if job.cancel != nil {
		job.cancel()
	}
	now := time.Now()
	job.Status = JobStatusCancelled
	job.CompletedAt = &now
	return nil
}

func (s *JobStore) setCancelFunc(id string, cancel context.CancelFunc) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if job, ok := s.jobs[id]; ok {
		job.cancel = cancel
	}
}

// Close cancels every non-terminal job. Used on process shutdown.
func (s *JobStore) Close() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, job := range s.jobs {
		if !job.Status.Terminal() && job.cancel != nil {
			job.cancel()
		}
	}
}
