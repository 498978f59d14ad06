package downloads

import (
	"context"
	"fmt"
	"log"
	"math"
	"path/filepath"

	"grabctl/pkg/config"
)

// Manager starts and tracks download jobs. Each job runs on its own
// goroutine for the full duration of the transfer; there is no queue and no
// cap on concurrent jobs. Progress flows from the engine callback into the
// job store, where pollers read it.
type Manager struct {
	cfg    config.DownloadsConfig
	store  *JobStore
	engine Engine
}

// NewManager wires a manager with the production yt-dlp engine.
func NewManager(cfg config.DownloadsConfig) *Manager {
	engine := newYtdlpEngine(cfg.Dir, cfg.OutputTemplate, cfg.AudioFormat, cfg.AudioQuality)
	return NewManagerWithEngine(cfg, engine)
}

// NewManagerWithEngine wires a manager around an explicit engine. Tests use
// this to substitute a stub for yt-dlp.
func NewManagerWithEngine(cfg config.DownloadsConfig, engine Engine) *Manager {
	return &Manager{
		cfg:    cfg,
		store:  NewJobStore(),
		engine: engine,
	}
}

// StartDownload registers a job and launches it in the background. It never
// blocks on the transfer; the returned ID is the handle for polling.
func (m *Manager) StartDownload(url string, mode Mode, formatID string) (string, error) {
	if url == "" {
		return "", fmt.Errorf("url cannot be empty")
	}
	if mode == ModeCustom && formatID == "" {
		return "", fmt.Errorf("custom mode requires a format ID")
	}

	job, err := m.store.Create(url, mode, formatID)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.store.setCancelFunc(job.ID, cancel)

	go m.downloadWorker(ctx, job.ID, FetchRequest{URL: url, Mode: mode, FormatID: formatID})

	return job.ID, nil
}

func (m *Manager) downloadWorker(ctx context.Context, jobID string, req FetchRequest) {
	result, err := m.engine.Fetch(ctx, req, func(ev ProgressEvent) {
		m.applyEvent(jobID, ev)
	})
	if err != nil {
		log.Printf("Download %s failed: %v", jobID, err)
		m.store.Fail(jobID, err.Error())
		return
	}

	name := result.Title
	if result.Filename != "" {
		name = filepath.Base(result.Filename)
	}
	m.store.Complete(jobID, name)
	log.Printf("Download %s completed: %s", jobID, name)
}

// applyEvent converts an engine progress event into a registry snapshot.
func (m *Manager) applyEvent(jobID string, ev ProgressEvent) {
	if ev.Finished {
		m.store.SetFinished(jobID, ev.MediaID)
		return
	}

	var pct float64
	if ev.TotalBytes > 0 {
		pct = float64(ev.DownloadedBytes) / float64(ev.TotalBytes) * 100
		pct = math.Round(pct*10) / 10
	}

	speed := "N/A"
	if ev.SpeedBPS > 0 {
		speed = FormatBytes(int64(ev.SpeedBPS)) + "/s"
	}
	eta := "N/A"
	if ev.ETASeconds > 0 {
		eta = fmt.Sprintf("%ds", ev.ETASeconds)
	}

	m.store.SetProgress(jobID, ev.MediaID, Progress{
		Percentage:      pct,
		DownloadedBytes: ev.DownloadedBytes,
		TotalBytes:      ev.TotalBytes,
		Downloaded:      FormatBytes(ev.DownloadedBytes),
		Total:           FormatBytes(ev.TotalBytes),
		Speed:           speed,
		ETA:             eta,
	})
}

// Probe resolves media metadata for a URL without downloading anything.
func (m *Manager) Probe(ctx context.Context, url string) (*MediaInfo, error) {
	return m.engine.Probe(ctx, url)
}

func (m *Manager) GetJob(jobID string) (Job, error) {
	return m.store.Get(jobID)
}

func (m *Manager) ListJobs() []Job {
	return m.store.List()
}

// ProgressSnapshot returns the full registry, keyed by job ID.
func (m *Manager) ProgressSnapshot() map[string]Job {
	return m.store.Snapshot()
}

// ListFiles lists completed downloads currently on disk.
func (m *Manager) ListFiles() ([]DownloadedFile, error) {
	return ScanDownloads(m.cfg.Dir)
}

// FilePath resolves a stored file by name, rejecting path traversal.
func (m *Manager) FilePath(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || name[0] == '.' {
		return "", fmt.Errorf("invalid file name: %q", name)
	}
	return filepath.Join(m.cfg.Dir, name), nil
}

// Close cancels all in-flight jobs. Used on process shutdown.
func (m *Manager) Close() {
	m.store.Close()
}
