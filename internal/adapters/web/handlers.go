package web

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	contactapp "github.com/quietpage/quietpage/internal/contact/application"
	"github.com/quietpage/quietpage/internal/platform/logger"
	"github.com/quietpage/quietpage/internal/posts/application"
	"github.com/quietpage/quietpage/internal/posts/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// collection of page template file names
var pageTemplates = []string{
	"index.html",
	"post.html",
	"about.html",
	"contact.html",
	"make_post.html",
}

// SiteInfo carries the operator metadata every page renders.
type SiteInfo struct {
	DeveloperName    string
	DeveloperSurname string
	GitHubURL        string
	LinkedInURL      string
	TwitterURL       string
	ResumeURL        string
}

// Handler renders the blog's HTML pages and maps form submissions onto the
// content service and the contact notifier.
type Handler struct {
	content  *application.ContentService
	notifier *contactapp.NotifierService
	site     SiteInfo
	pool     *pgxpool.Pool
	logger   logger.Logger
	pages    map[string]*template.Template
}

// NewHandler parses the embedded templates and builds the page handler.
func NewHandler(
	content *application.ContentService,
	notifier *contactapp.NotifierService,
	site SiteInfo,
	pool *pgxpool.Pool,
	logger logger.Logger,
) (*Handler, error) {
	funcs := template.FuncMap{
		// Post bodies are sanitized on the way in, so rendering them as
		// HTML is safe here.
		"safeHTML": func(s string) template.HTML { return template.HTML(s) },
	}

	pages := make(map[string]*template.Template, len(pageTemplates))
	for _, name := range pageTemplates {
		tmpl, err := template.New("base.html").Funcs(funcs).
			ParseFS(templateFS, "templates/base.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("web: parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}

	return &Handler{
		content:  content,
		notifier: notifier,
		site:     site,
		pool:     pool,
		logger:   logger,
		pages:    pages,
	}, nil
}

// page is the data handed to every template.
type page struct {
	Site    SiteInfo
	Year    int
	Heading string
	Posts   []*domain.Post
	Post    *domain.Post
	Form    any
	Action  string
}

func (h *Handler) newPage(now time.Time) page {
	return page{Site: h.site, Year: now.Year()}
}

// Index lists all posts sorted by publish date.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	now := time.Now()

	posts, err := h.content.ListPosts(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	data := h.newPage(now)
	data.Posts = posts
	h.render(w, r, "index.html", http.StatusOK, data)
}

// ShowPost renders the detail page for one post. An unknown or malformed
// id renders the empty detail page rather than an error.
func (h *Handler) ShowPost(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	data := h.newPage(now)

	if id, err := uuid.Parse(chi.URLParam(r, "id")); err == nil {
		post, err := h.content.GetPost(r.Context(), id)
		if err != nil {
			h.renderError(w, r, err)
			return
		}
		data.Post = post
	}

	h.render(w, r, "post.html", http.StatusOK, data)
}

// About renders the static informational page.
func (h *Handler) About(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "about.html", http.StatusOK, h.newPage(time.Now()))
}

// ContactPage renders the blank contact form.
func (h *Handler) ContactPage(w http.ResponseWriter, r *http.Request) {
	data := h.newPage(time.Now())
	data.Form = &ContactForm{Errors: map[string]string{}}
	h.render(w, r, "contact.html", http.StatusOK, data)
}

// SubmitContact relays the visitor's message and re-renders the form
// regardless of the transport outcome; a delivery failure is logged but
// never shown to the visitor.
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	data := h.newPage(time.Now())

	form := parseContactForm(r)
	if !form.Valid() {
		data.Form = form
		h.render(w, r, "contact.html", http.StatusOK, data)
		return
	}

	if err := h.notifier.Notify(r.Context(), form.message()); err != nil {
		h.logger.Warn(r.Context(), "contact notification not delivered", "error", err)
	}

	data.Form = &ContactForm{Errors: map[string]string{}}
	h.render(w, r, "contact.html", http.StatusOK, data)
}

// NewPostPage renders the blank create form.
func (h *Handler) NewPostPage(w http.ResponseWriter, r *http.Request) {
	data := h.newPage(time.Now())
	data.Heading = "New Post"
	data.Action = "/new-post"
	data.Form = &PostForm{Errors: map[string]string{}}
	h.render(w, r, "make_post.html", http.StatusOK, data)
}

// SubmitNewPost handles the create-form submission.
func (h *Handler) SubmitNewPost(w http.ResponseWriter, r *http.Request) {
	h.submitPost(w, r, "New Post", "/new-post", false)
}

// EditPostPage renders the form pre-filled from the addressed post, with
// the title locked.
func (h *Handler) EditPostPage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	editForm, err := h.content.PrepareEditForm(r.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrPostNotFound) {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		h.renderError(w, r, err)
		return
	}

	post := editForm.Post
	data := h.newPage(time.Now())
	data.Heading = "Edit Post"
	data.Action = "/edit-post/" + id.String()
	data.Form = &PostForm{
		Title:       post.Title,
		Subtitle:    post.Subtitle,
		Author:      post.Author,
		ImageURL:    post.ImageURL,
		Body:        post.Body,
		TitleLocked: editForm.TitleLocked,
		Errors:      map[string]string{},
	}
	h.render(w, r, "make_post.html", http.StatusOK, data)
}

// SubmitEditPost handles the edit-form submission. It behaves exactly like
// the create submission: the title decides which record is touched.
func (h *Handler) SubmitEditPost(w http.ResponseWriter, r *http.Request) {
	h.submitPost(w, r, "Edit Post", r.URL.Path, true)
}

func (h *Handler) submitPost(w http.ResponseWriter, r *http.Request, heading, action string, titleLocked bool) {
	// One timestamp per request: the same value ends up on the record and
	// any page rendered from it.
	now := time.Now()

	form := parsePostForm(r)
	form.TitleLocked = titleLocked

	renderForm := func(status int) {
		data := h.newPage(now)
		data.Heading = heading
		data.Action = action
		data.Form = form
		h.render(w, r, "make_post.html", status, data)
	}

	if !form.Valid() {
		renderForm(http.StatusBadRequest)
		return
	}

	if _, err := h.content.SubmitPost(r.Context(), form.params(), now); err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidPostData):
			form.Errors["form"] = "The submitted post is invalid. Please review the fields."
			renderForm(http.StatusBadRequest)
		case errors.Is(err, application.ErrTitleConflict):
			form.Errors["title"] = "A post with this title was just created. Please try again."
			renderForm(http.StatusConflict)
		default:
			h.renderError(w, r, err)
		}
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

// DeletePost removes the addressed post and returns to the index.
func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	if id, err := uuid.Parse(chi.URLParam(r, "id")); err == nil {
		if err := h.content.DeletePost(r.Context(), id); err != nil {
			h.renderError(w, r, err)
			return
		}
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

// Healthz reports process liveness and database reachability.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	body := map[string]string{"status": "ok", "database": "up"}

	if h.pool != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.pool.Ping(ctx); err != nil {
			status = http.StatusServiceUnavailable
			body["status"] = "degraded"
			body["database"] = "down"
		}
	} else {
		body["database"] = "unconfigured"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// render executes the page into a buffer first so a template failure can
// still produce a clean 500 instead of a half-written page.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, status int, data page) {
	tmpl, ok := h.pages[name]
	if !ok {
		h.logger.Error(r.Context(), "unknown template", "template", name)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		h.logger.Error(r.Context(), "failed to render template", "template", name, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
