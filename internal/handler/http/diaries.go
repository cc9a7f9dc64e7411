package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-time-diary/internal/utils"
	"github.com/MKhiriev/go-time-diary/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createDiary(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "unauthenticated request")
		return
	}

	var req models.DiaryRequest
	if err = utils.ReadJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "invalid diary request")
		return
	}

	diary, err := h.services.DiaryService.CreateDiary(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err, "error creating diary")
		return
	}

	utils.WriteJSON(w, diary, http.StatusCreated)
}

func (h *Handler) updateDiary(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "unauthenticated request")
		return
	}

	var req models.DiaryRequest
	if err = utils.ReadJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "invalid diary request")
		return
	}

	diary, err := h.services.DiaryService.UpdateDiary(r.Context(), userID, chi.URLParam(r, "diaryID"), req)
	if err != nil {
		writeError(w, r, err, "error updating diary")
		return
	}

	utils.WriteJSON(w, diary, http.StatusOK)
}

func (h *Handler) deleteDiary(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "unauthenticated request")
		return
	}

	if err = h.services.DiaryService.DeleteDiary(r.Context(), userID, chi.URLParam(r, "diaryID")); err != nil {
		writeError(w, r, err, "error deleting diary")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) addPage(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "unauthenticated request")
		return
	}

	page, err := h.services.DiaryService.AddPage(r.Context(), userID, chi.URLParam(r, "diaryID"))
	if err != nil {
		writeError(w, r, err, "error adding page")
		return
	}

	utils.WriteJSON(w, page, http.StatusCreated)
}

func (h *Handler) updatePage(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "unauthenticated request")
		return
	}

	var req models.PageContentRequest
	if err = utils.ReadJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "invalid page content")
		return
	}

	page, err := h.services.DiaryService.UpdatePageContent(r.Context(), userID, chi.URLParam(r, "pageID"), req)
	if err != nil {
		writeError(w, r, err, "error updating page")
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) deletePage(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "unauthenticated request")
		return
	}

	if err = h.services.DiaryService.DeletePage(r.Context(), userID, chi.URLParam(r, "pageID")); err != nil {
		writeError(w, r, err, "error deleting page")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
