package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)
	router.Use(middleware.Compress(5, "application/json"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Post("/api/user/anonymous", h.signInAnonymously)
		r.Post("/api/user/password/forgot", h.requestPasswordReset)
		r.Post("/api/user/password/reset", h.resetPassword)
		r.Get("/api/version/", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/user/me", h.getProfile)
		r.Put("/api/user/me", h.updateProfile)
		r.Delete("/api/user/me", h.deleteProfile)
		r.Post("/api/user/link", h.linkAccount)

		r.Get("/api/screens/home", h.homeScreen)
		r.Get("/api/screens/diaries/{diaryID}", h.diaryScreen)
		r.Get("/api/screens/capsules", h.capsuleScreen)

		r.Post("/api/diaries", h.createDiary)
		r.Put("/api/diaries/{diaryID}", h.updateDiary)
		r.Delete("/api/diaries/{diaryID}", h.deleteDiary)
		r.Post("/api/diaries/{diaryID}/cover", h.setCover)
		r.Post("/api/diaries/{diaryID}/pages", h.addPage)

		r.Put("/api/pages/{pageID}", h.updatePage)
		r.Delete("/api/pages/{pageID}", h.deletePage)
		r.Post("/api/pages/{pageID}/layout/next", h.nextRender)
		r.Post("/api/pages/{pageID}/layout/report", h.reportLayout)
		r.Post("/api/pages/{pageID}/layout/reset", h.resetLayout)

		r.Post("/api/subpages/{subPageID}/images", h.addImage)
		r.Put("/api/images/{imageID}", h.transformImage)
		r.Delete("/api/images/{imageID}", h.deleteImage)

		r.Post("/api/capsules", h.createCapsule)
		r.Get("/api/capsules/{capsuleID}", h.getCapsule)
		r.Delete("/api/capsules/{capsuleID}", h.deleteCapsule)
	})

	router.MethodNotAllowed(methodNotAllowed(router))

	return router
}
