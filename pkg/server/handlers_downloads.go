package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"grabctl/pkg/downloads"
	"grabctl/pkg/validation"

	"github.com/go-chi/chi/v5"
)

type StartDownloadRequest struct {
	URL      string `json:"url"`
	Mode     string `json:"mode"`
	FormatID string `json:"format_id,omitempty"`
}

type StartDownloadResponse struct {
	JobID string `json:"job_id"`
	URL   string `json:"url"`
	Mode  string `json:"mode"`
}

type MediaInfoRequest struct {
	URL string `json:"url"`
}

// StartDownload godoc
// @Summary Start a background download
// @Description Validates the request and launches an extraction+download job; returns immediately with the job ID
// @Tags downloads
// @Accept json
// @Produces json
// @Param request body StartDownloadRequest true "Download request"
// @Success 202 {object} StartDownloadResponse "Download started"
// @Failure 400 {object} errorResponse "Invalid request"
// @Router /downloads [post]
func (h *Handler) StartDownload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req StartDownloadRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "Failed to parse request body")
			return
		}

		url, err := validation.ValidateURL(req.URL)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}

		mode, ok := downloads.ParseMode(req.Mode)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid_request", "mode must be video, audio or custom")
			return
		}

		formatID := ""
		if mode == downloads.ModeCustom {
			formatID, err = validation.ValidateFormatID(req.FormatID)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
				return
			}
		}

		jobID, err := h.manager.StartDownload(url, mode, formatID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "download_failed", err.Error())
			return
		}

		writeJSON(w, http.StatusAccepted, StartDownloadResponse{
			JobID: jobID,
			URL:   url,
			Mode:  string(mode),
		})
	}
}

// GetProgress godoc
// @Summary Get progress for all downloads
// @Description Returns the full progress registry keyed by job ID
// @Tags downloads
// @Produces json
// @Success 200 {object} map[string]downloads.Job "Progress snapshot"
// @Router /downloads/progress [get]
func (h *Handler) GetProgress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, h.manager.ProgressSnapshot())
	}
}

// GetJob godoc
// @Summary Get one download job
// @Description Returns the latest progress snapshot for a single job
// @Tags downloads
// @Produces json
// @Param id path string true "Job ID"
// @Success 200 {object} downloads.Job "Job details"
// @Failure 404 {object} errorResponse "Job not found"
// @Router /downloads/jobs/{id} [get]
func (h *Handler) GetJob() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobID := chi.URLParam(r, "id")
		if jobID == "" {
			writeError(w, http.StatusBadRequest, "invalid_request", "job ID is required")
			return
		}

		job, err := h.manager.GetJob(jobID)
		if err != nil {
			if strings.Contains(err.Error(), "job not found") {
				writeError(w, http.StatusNotFound, "job_not_found", err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		writeJSON(w, http.StatusOK, job)
	}
}

// MediaInfo godoc
// @Summary Resolve media metadata
// @Description Returns title, uploader and available formats for a URL without downloading
// @Tags downloads
// @Accept json
// @Produces json
// @Param request body MediaInfoRequest true "Probe request"
// @Success 200 {object} downloads.MediaInfo "Media metadata"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 502 {object} errorResponse "Extraction failed"
// @Router /media/info [post]
func (h *Handler) MediaInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MediaInfoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "Failed to parse request body")
			return
		}

		url, err := validation.ValidateURL(req.URL)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}

		info, err := h.manager.Probe(r.Context(), url)
		if err != nil {
			writeError(w, http.StatusBadGateway, "extraction_failed", err.Error())
			return
		}

		writeJSON(w, http.StatusOK, info)
	}
}
