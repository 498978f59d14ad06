package server

import (
	"net/http"
	"os"

	"grabctl/pkg/downloads"

	"github.com/go-chi/chi/v5"
)

type ListFilesResponse struct {
	Files []downloads.DownloadedFile `json:"files"`
}

type fileNotFoundResponse struct {
	Error          string   `json:"error"`
	Requested      string   `json:"requested"`
	AvailableFiles []string `json:"available_files"`
}

// ListFiles godoc
// @Summary List downloaded files
// @Description Returns the completed downloads currently on disk
// @Tags files
// @Produces json
// @Success 200 {object} ListFilesResponse "Downloaded files"
// @Failure 500 {object} errorResponse "Internal Server Error"
// @Router /files [get]
func (h *Handler) ListFiles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		files, err := h.manager.ListFiles()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}
		writeJSON(w, http.StatusOK, ListFilesResponse{Files: files})
	}
}

// FetchFile godoc
// @Summary Fetch a downloaded file
// @Description Streams a completed download, honoring range requests and modification-time validators
// @Tags files
// @Produces octet-stream
// @Param name path string true "File name"
// @Success 200 {file} binary "File content"
// @Failure 404 {object} fileNotFoundResponse "File not found, with the list of available files"
// @Router /files/{name} [get]
func (h *Handler) FetchFile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")

		path, err := h.manager.FilePath(name)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}

		f, err := os.Open(path)
		if err != nil {
			h.writeFileNotFound(w, name)
			return
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil || info.IsDir() {
			h.writeFileNotFound(w, name)
			return
		}

		w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
		// ServeContent handles Range requests and If-Modified-Since. The file
		// can be swept mid-transfer; the resulting read error aborts this
		// response only.
		http.ServeContent(w, r, name, info.ModTime(), f)
	}
}

// writeFileNotFound reports a missing file along with what is available, as
// a diagnostic aid for clients that cached a stale listing.
func (h *Handler) writeFileNotFound(w http.ResponseWriter, requested string) {
	available := []string{}
	if files, err := h.manager.ListFiles(); err == nil {
		for _, f := range files {
			available = append(available, f.Name)
		}
	}
	writeJSON(w, http.StatusNotFound, fileNotFoundResponse{
		Error:          "File not found",
		Requested:      requested,
		AvailableFiles: available,
	})
}
