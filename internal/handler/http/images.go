package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-time-diary/internal/logger"
	"github.com/MKhiriev/go-time-diary/internal/utils"
	"github.com/MKhiriev/go-time-diary/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) setCover(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "unauthenticated request")
		return
	}

	upload, closeBody, err := readUpload(w, r)
	if err != nil {
		writeError(w, r, err, "invalid cover upload")
		return
	}
	defer closeBody()

	cover, err := h.services.DiaryService.SetCover(r.Context(), userID, chi.URLParam(r, "diaryID"), upload)
	if err != nil {
		writeError(w, r, err, "error setting diary cover")
		return
	}

	utils.WriteJSON(w, cover, http.StatusCreated)
}

func (h *Handler) addImage(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "unauthenticated request")
		return
	}

	upload, closeBody, err := readUpload(w, r)
	if err != nil {
		writeError(w, r, err, "invalid image upload")
		return
	}
	defer closeBody()

	logger.FromRequest(r).Debug().
		Str("file", upload.FileName).
		Int64("size", upload.Size).
		Msg("image upload received")

	img, err := h.services.DiaryService.AddImage(r.Context(), userID, chi.URLParam(r, "subPageID"), upload)
	if err != nil {
		writeError(w, r, err, "error adding image")
		return
	}

	utils.WriteJSON(w, img, http.StatusCreated)
}

func (h *Handler) transformImage(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "unauthenticated request")
		return
	}

	var req models.ImageTransformRequest
	if err = utils.ReadJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "invalid image transform")
		return
	}

	img, err := h.services.DiaryService.TransformImage(r.Context(), userID, chi.URLParam(r, "imageID"), req)
	if err != nil {
		writeError(w, r, err, "error transforming image")
		return
	}

	utils.WriteJSON(w, img, http.StatusOK)
}

func (h *Handler) deleteImage(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "unauthenticated request")
		return
	}

	if err = h.services.DiaryService.DeleteImage(r.Context(), userID, chi.URLParam(r, "imageID")); err != nil {
		writeError(w, r, err, "error deleting image")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
