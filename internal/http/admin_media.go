package httpapi

import (
	"net/http"

	"portfolio-backend-go/internal/services"

	"github.com/go-chi/chi/v5"
)

const maxUploadBytes = 10 << 20

type UploadResponse struct {
	Path string  `json:"path"`
	URL  *string `json:"url"`
}

// AdminUpload stores a multipart "file" under a media bucket. The returned path is what
// image fields of content records hold.
func (s *Server) AdminUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid upload")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		mapServiceError(w, services.FieldError("file", "No file was submitted."))
		return
	}
	defer file.Close()

	stored, err := services.SaveMedia(s.Config.MediaStoragePath, chi.URLParam(r, "bucket"), header.Filename, file)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	auditf(r, "uploaded %s", stored)
	WriteJSON(w, http.StatusCreated, UploadResponse{Path: stored, URL: s.mediaURL(stored)})
}

func (s *Server) AdminSystem(w http.ResponseWriter, r *http.Request) {
	snapshot, err := services.CaptureSystemSnapshot(s.Config.MetricsDiskPath)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, snapshot)
}
