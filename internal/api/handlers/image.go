package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/r8r-one/platform/internal/api/middleware"
	"github.com/r8r-one/platform/internal/service"
)

// maxImageBytes caps a single upload.
const maxImageBytes = 10 << 20

type ImageHandler struct {
	svc     *service.ImageService
	cdnBase string
}

func NewImageHandler(svc *service.ImageService, cdnBase string) *ImageHandler {
	return &ImageHandler{svc: svc, cdnBase: cdnBase}
}

func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.TenantIDFromContext(r.Context())

	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No image file provided")
		return
	}
	defer func() { _ = file.Close() }()

	// Read one byte past the cap so an oversize file is rejected rather
	// than stored truncated.
	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes+1))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read image")
		return
	}
	if len(data) > maxImageBytes {
		writeError(w, http.StatusRequestEntityTooLarge, "image exceeds the 10MB limit")
		return
	}

	res, err := h.svc.Upload(r.Context(), tenantID, header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotAnImage), errors.Is(err, service.ErrImageEmpty):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "Failed to upload image")
		}
		return
	}

	resp := map[string]any{
		"success":  true,
		"filename": res.Filename,
		"url":      res.URL,
	}
	if h.cdnBase != "" {
		resp["cdnUrl"] = h.cdnBase + "/" + res.Filename
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ImageHandler) Get(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	img, err := h.svc.Get(r.Context(), filename)
	if err != nil {
		if errors.Is(err, service.ErrImageNotFound) {
			writeError(w, http.StatusNotFound, "Image not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to fetch image")
		return
	}

	w.Header().Set("Content-Type", img.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(img.Data)))
	// Filenames are unique, so images are immutable once stored.
	w.Header().Set("Cache-Control", "public, max-age=31536000")
	_, _ = w.Write(img.Data)
}
