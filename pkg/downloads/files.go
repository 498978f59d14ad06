package downloads

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DownloadedFile is one completed download on disk.
type DownloadedFile struct {
	Name       string    `json:"name"`
	SizeBytes  int64     `json:"size_bytes"`
	Size       string    `json:"size"`
	Path       string    `json:"path"`
	ModifiedAt time.Time `json:"modified_at"`
}

// partialExtensions are yt-dlp in-flight artifacts, excluded from listings.
var partialExtensions = map[string]bool{
	".part": true,
	".ytdl": true,
	".tmp":  true,
}

// ScanDownloads lists the regular files in the download directory. Hidden
// files and in-flight partials are skipped. A missing directory is treated
// as empty.
func ScanDownloads(dir string) ([]DownloadedFile, error) {
	files := []DownloadedFile{}

	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return files, nil
	}
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") || partialExtensions[filepath.Ext(name)] {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			// File may have been swept between ReadDir and Info.
			continue
		}

		files = append(files, DownloadedFile{
			Name:       name,
			SizeBytes:  info.Size(),
			Size:       FormatBytes(info.Size()),
			Path:       filepath.Join(dir, name),
			ModifiedAt: info.ModTime(),
		})
	}

	return files, nil
}
