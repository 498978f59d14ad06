package downloads

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/lrstanley/go-ytdlp"
)

// FetchRequest describes one extraction+download operation.
type FetchRequest struct {
	URL      string
	Mode     Mode
	FormatID string
}

// ProgressEvent is delivered by the engine while a transfer is running.
// MediaID may be empty until the engine has resolved the media.
type ProgressEvent struct {
	MediaID         string
	Finished        bool
	DownloadedBytes int64
	TotalBytes      int64
	SpeedBPS        float64
	ETASeconds      int64
}

// FetchResult carries the outcome of a successful fetch.
type FetchResult struct {
	MediaID  string
	Title    string
	Filename string
}

// MediaInfo is the metadata returned by a probe, without downloading.
type MediaInfo struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Duration    float64       `json:"duration,omitempty"`
	Uploader    string        `json:"uploader,omitempty"`
	ViewCount   int64         `json:"view_count,omitempty"`
	Thumbnail   string        `json:"thumbnail,omitempty"`
	Description string        `json:"description,omitempty"`
	Formats     []MediaFormat `json:"formats"`
}

type MediaFormat struct {
	FormatID   string `json:"format_id"`
	Ext        string `json:"ext"`
	Resolution string `json:"resolution"`
	Filesize   string `json:"filesize"`
	VCodec     string `json:"vcodec"`
	ACodec     string `json:"acodec"`
}

// Engine is the external extraction engine contract. The production
// implementation shells out to yt-dlp; tests substitute a stub.
type Engine interface {
	Fetch(ctx context.Context, req FetchRequest, onProgress func(ProgressEvent)) (*FetchResult, error)
	Probe(ctx context.Context, url string) (*MediaInfo, error)
}

const (
	progressFrequency = 500 * time.Millisecond
	descriptionLimit  = 500
)

// ytdlpEngine drives yt-dlp through go-ytdlp.
type ytdlpEngine struct {
	downloadDir    string
	outputTemplate string
	audioFormat    string
	audioQuality   string
}

func newYtdlpEngine(dir, outputTemplate, audioFormat, audioQuality string) *ytdlpEngine {
	return &ytdlpEngine{
		downloadDir:    dir,
		outputTemplate: outputTemplate,
		audioFormat:    audioFormat,
		audioQuality:   audioQuality,
	}
}

func (e *ytdlpEngine) Fetch(ctx context.Context, req FetchRequest, onProgress func(ProgressEvent)) (*FetchResult, error) {
	dl := ytdlp.New().
		NoPlaylist().
		Output(filepath.Join(e.downloadDir, e.outputTemplate))

	switch req.Mode {
	case ModeAudio:
		dl = dl.Format("bestaudio/best").
			ExtractAudio().
			AudioFormat(e.audioFormat).
			AudioQuality(e.audioQuality)
	case ModeCustom:
		dl = dl.Format(req.FormatID)
	default:
		dl = dl.Format("best")
	}

	dl.ProgressFunc(progressFrequency, func(update ytdlp.ProgressUpdate) {
		ev := ProgressEvent{
			DownloadedBytes: int64(update.DownloadedBytes),
			TotalBytes:      int64(update.TotalBytes),
		}
		if update.Info != nil {
			ev.MediaID = update.Info.ID
		}
		if update.Status == ytdlp.ProgressStatusFinished {
			ev.Finished = true
			onProgress(ev)
			return
		}
		if !update.Started.IsZero() {
			if elapsed := time.Since(update.Started).Seconds(); elapsed > 0 {
				ev.SpeedBPS = float64(update.DownloadedBytes) / elapsed
			}
		}
		if eta := update.ETA(); eta > 0 {
			ev.ETASeconds = int64(eta.Seconds())
		}
		onProgress(ev)
	})

	result, err := dl.Run(ctx, req.URL)
	if err != nil {
		return nil, fmt.Errorf("extraction failed: %w", err)
	}

	info, err := result.GetExtractedInfo()
	if err != nil || len(info) == 0 {
		// Download succeeded but the metadata could not be parsed back.
		return &FetchResult{}, nil
	}

	res := &FetchResult{MediaID: info[0].ID}
	if info[0].Title != nil {
		res.Title = *info[0].Title
	}
	if info[0].Filename != nil {
		res.Filename = *info[0].Filename
	}
	return res, nil
}

// rawInfo mirrors the subset of yt-dlp's JSON dump the probe cares about.
type rawInfo struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Duration    float64     `json:"duration"`
	Uploader    string      `json:"uploader"`
	ViewCount   int64       `json:"view_count"`
	Thumbnail   string      `json:"thumbnail"`
	Description string      `json:"description"`
	Formats     []rawFormat `json:"formats"`
}

type rawFormat struct {
	FormatID   string  `json:"format_id"`
	Ext        string  `json:"ext"`
	Resolution string  `json:"resolution"`
	Filesize   int64   `json:"filesize"`
	VCodec     string  `json:"vcodec"`
	ACodec     string  `json:"acodec"`
}

func (e *ytdlpEngine) Probe(ctx context.Context, url string) (*MediaInfo, error) {
	result, err := ytdlp.New().
		NoPlaylist().
		SkipDownload().
		DumpSingleJSON().
		Run(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("extraction failed: %w", err)
	}

	var raw rawInfo
	if err := json.Unmarshal([]byte(result.Stdout), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse media info: %w", err)
	}

	info := &MediaInfo{
		ID:          raw.ID,
		Title:       raw.Title,
		Duration:    raw.Duration,
		Uploader:    raw.Uploader,
		ViewCount:   raw.ViewCount,
		Thumbnail:   raw.Thumbnail,
		Description: truncate(raw.Description, descriptionLimit),
		Formats:     make([]MediaFormat, 0, len(raw.Formats)),
	}

	for _, f := range raw.Formats {
		resolution := f.Resolution
		if resolution == "" {
			if f.VCodec == "none" {
				resolution = "audio only"
			} else {
				resolution = "N/A"
			}
		}
		info.Formats = append(info.Formats, MediaFormat{
			FormatID:   f.FormatID,
			Ext:        f.Ext,
			Resolution: resolution,
			Filesize:   FormatBytes(f.Filesize),
			VCodec:     f.VCodec,
			ACodec:     f.ACodec,
		})
	}

	return info, nil
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return strings.ToValidUTF8(s[:limit], "")
}
