package downloads

import (
	"context"
	"time"
)

type JobStatus string

const (
	JobStatusQueued      JobStatus = "queued"
	JobStatusDownloading JobStatus = "downloading"
	JobStatusFinished    JobStatus = "finished"
	JobStatusCompleted   JobStatus = "completed"
	JobStatusError       JobStatus = "error"
	JobStatusCancelled   JobStatus = "cancelled"
)

// Terminal reports whether a job in this status will never change again.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusError || s == JobStatusCancelled
}

type Mode string

const (
	ModeVideo  Mode = "video"
	ModeAudio  Mode = "audio"
	ModeCustom Mode = "custom"
)

// ParseMode maps a request string onto a download mode. An empty string
// selects video, matching the web form default.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case "":
		return ModeVideo, true
	case ModeVideo, ModeAudio, ModeCustom:
		return Mode(s), true
	}
	return "", false
}

// Progress is the latest transfer snapshot for one job. Byte counts are
// carried both raw and pre-formatted so pollers can render them directly.
type Progress struct {
	Percentage      float64 `json:"percentage"`
	DownloadedBytes int64   `json:"downloaded_bytes"`
	TotalBytes      int64   `json:"total_bytes"`
	Downloaded      string  `json:"downloaded"`
	Total           string  `json:"total"`
	Speed           string  `json:"speed"`
	ETA             string  `json:"eta"`
}

type Job struct {
	ID          string     `json:"id"`
	URL         string     `json:"url"`
	Mode        Mode       `json:"mode"`
	FormatID    string     `json:"format_id,omitempty"`
	MediaID     string     `json:"media_id,omitempty"`
	Status      JobStatus  `json:"status"`
	Progress    Progress   `json:"progress"`
	ResultName  string     `json:"result_name,omitempty"`
	Error       string     `json:"error,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	// cancel is the internal task handle for the job's goroutine. There is
	// no external stop signal; it is only invoked on process shutdown.
	cancel context.CancelFunc
}
