package web

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts every page, form and asset route on the router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Index)
	r.Get("/post/{id}", h.ShowPost)
	r.Get("/about", h.About)
	r.Get("/contact", h.ContactPage)
	r.Post("/contact", h.SubmitContact)
	r.Get("/new-post", h.NewPostPage)
	r.Post("/new-post", h.SubmitNewPost)
	r.Get("/edit-post/{id}", h.EditPostPage)
	r.Post("/edit-post/{id}", h.SubmitEditPost)
	r.Get("/delete/{id}", h.DeletePost)
	r.Get("/healthz", h.Healthz)
	r.Handle("/static/*", StaticHandler())
}
