package downloads_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"grabctl/pkg/config"
	"grabctl/pkg/downloads"
)

// stubEngine replaces yt-dlp in tests. It replays a scripted sequence of
// progress events and then returns its configured result.
type stubEngine struct {
	events  []downloads.ProgressEvent
	result  *downloads.FetchResult
	err     error
	release chan struct{} // if set, Fetch blocks here after emitting events

	lastReq downloads.FetchRequest
	info    *downloads.MediaInfo
}

func (e *stubEngine) Fetch(ctx context.Context, req downloads.FetchRequest, onProgress func(downloads.ProgressEvent)) (*downloads.FetchResult, error) {
	e.lastReq = req
	for _, ev := range e.events {
		onProgress(ev)
	}
	if e.release != nil {
		select {
		case <-e.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return e.result, e.err
}

func (e *stubEngine) Probe(ctx context.Context, url string) (*downloads.MediaInfo, error) {
	if e.info == nil {
		return nil, errors.New("extraction failed: no info")
	}
	return e.info, nil
}

func testConfig() config.DownloadsConfig {
	return config.DownloadsConfig{
		Dir:            "downloads",
		OutputTemplate: "%(title)s.%(ext)s",
		AudioFormat:    "mp3",
		AudioQuality:   "192K",
	}
}

// waitForStatus polls until the job reaches the wanted status or the
// deadline expires.
func waitForStatus(t *testing.T, m *downloads.Manager, jobID string, want downloads.JobStatus) downloads.Job {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		job, err := m.GetJob(jobID)
		if err != nil {
			t.Fatalf("GetJob failed: %v", err)
		}
		if job.Status == want {
			return job
		}
		time.Sleep(5 * time.Millisecond)
	}
	job, _ := m.GetJob(jobID)
	t.Fatalf("Job %s never reached %s, stuck at %s", jobID, want, job.Status)
	return downloads.Job{}
}

func TestManager_DownloadLifecycle(t *testing.T) {
	engine := &stubEngine{
		events: []downloads.ProgressEvent{
			{MediaID: "abc123", DownloadedBytes: 256 * 1024, TotalBytes: 1024 * 1024, SpeedBPS: 512 * 1024, ETASeconds: 2},
			{MediaID: "abc123", DownloadedBytes: 1024 * 1024, TotalBytes: 1024 * 1024, Finished: true},
		},
		result:  &downloads.FetchResult{MediaID: "abc123", Title: "My Video", Filename: "/tmp/downloads/My Video.mp4"},
		release: make(chan struct{}),
	}
	manager := downloads.NewManagerWithEngine(testConfig(), engine)
	defer manager.Close()

	jobID, err := manager.StartDownload("https://example.com/watch?v=abc123", downloads.ModeVideo, "")
	if err != nil {
		t.Fatalf("StartDownload failed: %v", err)
	}

	// The engine is blocked after its last event, so the finished snapshot
	// is observable before completion.
	job := waitForStatus(t, manager, jobID, downloads.JobStatusFinished)
	if job.Progress.Percentage != 100 {
		t.Errorf("Expected percentage 100 after finish, got %v", job.Progress.Percentage)
	}
	if job.MediaID != "abc123" {
		t.Errorf("Expected media ID 'abc123', got %q", job.MediaID)
	}

	// Release the engine and let the worker complete the job
	close(engine.release)

	job = waitForStatus(t, manager, jobID, downloads.JobStatusCompleted)
	if job.ResultName != "My Video.mp4" {
		t.Errorf("Expected result name 'My Video.mp4', got %q", job.ResultName)
	}
	if job.CompletedAt == nil {
		t.Error("Expected a completion timestamp")
	}
	if job.Error != "" {
		t.Errorf("Expected no error, got %q", job.Error)
	}
}

func TestManager_ProgressFormatting(t *testing.T) {
	engine := &stubEngine{
		events: []downloads.ProgressEvent{
			{MediaID: "abc123", DownloadedBytes: 512 * 1024, TotalBytes: 2 * 1024 * 1024, SpeedBPS: 256 * 1024, ETASeconds: 6},
		},
		release: make(chan struct{}),
		result:  &downloads.FetchResult{},
	}
	manager := downloads.NewManagerWithEngine(testConfig(), engine)
	defer manager.Close()

	jobID, err := manager.StartDownload("https://example.com/v", downloads.ModeVideo, "")
	if err != nil {
		t.Fatalf("StartDownload failed: %v", err)
	}

	job := waitForStatus(t, manager, jobID, downloads.JobStatusDownloading)

	if job.Progress.Percentage != 25.0 {
		t.Errorf("Expected percentage 25.0, got %v", job.Progress.Percentage)
	}
	if job.Progress.Downloaded != "512.0 KB" {
		t.Errorf("Expected downloaded '512.0 KB', got %q", job.Progress.Downloaded)
	}
	if job.Progress.Total != "2.0 MB" {
		t.Errorf("Expected total '2.0 MB', got %q", job.Progress.Total)
	}
	if job.Progress.Speed != "256.0 KB/s" {
		t.Errorf("Expected speed '256.0 KB/s', got %q", job.Progress.Speed)
	}
	if job.Progress.ETA != "6s" {
		t.Errorf("Expected ETA '6s', got %q", job.Progress.ETA)
	}

	close(engine.release)
	waitForStatus(t, manager, jobID, downloads.JobStatusCompleted)
}

func TestManager_UnknownTotalBytes(t *testing.T) {
	engine := &stubEngine{
		events: []downloads.ProgressEvent{
			{DownloadedBytes: 1024, TotalBytes: 0},
		},
		release: make(chan struct{}),
		result:  &downloads.FetchResult{},
	}
	manager := downloads.NewManagerWithEngine(testConfig(), engine)
	defer manager.Close()

	jobID, _ := manager.StartDownload("https://example.com/v", downloads.ModeVideo, "")
	job := waitForStatus(t, manager, jobID, downloads.JobStatusDownloading)

	if job.Progress.Percentage != 0 {
		t.Errorf("Expected percentage 0 with unknown total, got %v", job.Progress.Percentage)
	}
	if job.Progress.Total != "0 B" {
		t.Errorf("Expected total '0 B', got %q", job.Progress.Total)
	}
	if job.Progress.Speed != "N/A" {
		t.Errorf("Expected speed 'N/A', got %q", job.Progress.Speed)
	}
	if job.Progress.ETA != "N/A" {
		t.Errorf("Expected ETA 'N/A', got %q", job.Progress.ETA)
	}

	close(engine.release)
	waitForStatus(t, manager, jobID, downloads.JobStatusCompleted)
}

func TestManager_DownloadFailure(t *testing.T) {
	engine := &stubEngine{
		err: errors.New("extraction failed: video unavailable"),
	}
	manager := downloads.NewManagerWithEngine(testConfig(), engine)
	defer manager.Close()

	jobID, err := manager.StartDownload("https://example.com/gone", downloads.ModeVideo, "")
	if err != nil {
		t.Fatalf("StartDownload failed: %v", err)
	}

	job := waitForStatus(t, manager, jobID, downloads.JobStatusError)
	if !strings.Contains(job.Error, "video unavailable") {
		t.Errorf("Expected error message to be recorded, got %q", job.Error)
	}
	if job.CompletedAt == nil {
		t.Error("Expected a completion timestamp on failure")
	}
}

func TestManager_FailureDoesNotTouchOtherJobs(t *testing.T) {
	failing := &stubEngine{err: errors.New("extraction failed: boom")}
	manager := downloads.NewManagerWithEngine(testConfig(), failing)
	defer manager.Close()

	// Same URL twice; only the jobs' own entries may change
	a, _ := manager.StartDownload("https://example.com/v", downloads.ModeVideo, "")
	b, _ := manager.StartDownload("https://example.com/v", downloads.ModeVideo, "")

	waitForStatus(t, manager, a, downloads.JobStatusError)
	waitForStatus(t, manager, b, downloads.JobStatusError)

	jobA, _ := manager.GetJob(a)
	jobB, _ := manager.GetJob(b)
	if jobA.ID == jobB.ID {
		t.Fatal("Expected distinct job entries for the same URL")
	}
	if jobA.Error == "" || jobB.Error == "" {
		t.Error("Expected each job to carry its own error")
	}
}

func TestManager_StartDownloadValidation(t *testing.T) {
	manager := downloads.NewManagerWithEngine(testConfig(), &stubEngine{})
	defer manager.Close()

	if _, err := manager.StartDownload("", downloads.ModeVideo, ""); err == nil {
		t.Error("Expected error for empty URL")
	}
	if _, err := manager.StartDownload("https://example.com/v", downloads.ModeCustom, ""); err == nil {
		t.Error("Expected error for custom mode without a format ID")
	}
}

func TestManager_ModePassedToEngine(t *testing.T) {
	engine := &stubEngine{result: &downloads.FetchResult{}}
	manager := downloads.NewManagerWithEngine(testConfig(), engine)
	defer manager.Close()

	jobID, err := manager.StartDownload("https://example.com/v", downloads.ModeCustom, "137+140")
	if err != nil {
		t.Fatalf("StartDownload failed: %v", err)
	}
	waitForStatus(t, manager, jobID, downloads.JobStatusCompleted)

	if engine.lastReq.Mode != downloads.ModeCustom {
		t.Errorf("Expected custom mode, got %s", engine.lastReq.Mode)
	}
	if engine.lastReq.FormatID != "137+140" {
		t.Errorf("Expected format ID '137+140', got %q", engine.lastReq.FormatID)
	}
}

func TestManager_ResultNameFallsBackToTitle(t *testing.T) {
	engine := &stubEngine{
		result: &downloads.FetchResult{MediaID: "abc", Title: "Untitled Clip"},
	}
	manager := downloads.NewManagerWithEngine(testConfig(), engine)
	defer manager.Close()

	jobID, _ := manager.StartDownload("https://example.com/v", downloads.ModeVideo, "")
	job := waitForStatus(t, manager, jobID, downloads.JobStatusCompleted)

	if job.ResultName != "Untitled Clip" {
		t.Errorf("Expected title fallback, got %q", job.ResultName)
	}
}

func TestManager_Probe(t *testing.T) {
	engine := &stubEngine{
		info: &downloads.MediaInfo{ID: "abc", Title: "A Video", Formats: []downloads.MediaFormat{}},
	}
	manager := downloads.NewManagerWithEngine(testConfig(), engine)
	defer manager.Close()

	info, err := manager.Probe(context.Background(), "https://example.com/v")
	if err != nil {
		t.Fatalf("Probe failed: %v", err)
	}
	if info.Title != "A Video" {
		t.Errorf("Expected title 'A Video', got %q", info.Title)
	}
}

func TestManager_FilePath(t *testing.T) {
	manager := downloads.NewManagerWithEngine(testConfig(), &stubEngine{})
	defer manager.Close()

	tests := []struct {
		name    string
		file    string
		wantErr bool
	}{
		{"plain name", "video.mp4", false},
		{"name with spaces", "My Video.mp4", false},
		{"empty", "", true},
		{"traversal", "../etc/passwd", true},
		{"nested", "sub/video.mp4", true},
		{"hidden", ".bashrc", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := manager.FilePath(tt.file)
			if (err != nil) != tt.wantErr {
				t.Errorf("FilePath(%q) error = %v, wantErr %v", tt.file, err, tt.wantErr)
			}
			if !tt.wantErr && path != filepath.Join("downloads", tt.file) {
				t.Errorf("FilePath(%q) = %q", tt.file, path)
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in    string
		want  downloads.Mode
		valid bool
	}{
		{"", downloads.ModeVideo, true},
		{"video", downloads.ModeVideo, true},
		{"audio", downloads.ModeAudio, true},
		{"custom", downloads.ModeCustom, true},
		{"playlist", "", false},
		{"Video", "", false},
	}

	for _, tt := range tests {
		mode, ok := downloads.ParseMode(tt.in)
		if ok != tt.valid || mode != tt.want {
			t.Errorf("ParseMode(%q) = (%q, %v), want (%q, %v)", tt.in, mode, ok, tt.want, tt.valid)
		}
	}
}
