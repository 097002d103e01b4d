package web

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/quietpage/quietpage/internal/contact/domain"
	"github.com/quietpage/quietpage/internal/posts/application"
)

// PostForm holds the make-post form state: submitted values plus per-field
// errors for inline re-rendering.
type PostForm struct {
	Title    string
	Subtitle string
	Author   string
	ImageURL string
	Body     string

	// TitleLocked marks the title read-only on the edit form. The title is
	// the edit-merge key and must not change through the input layer.
	TitleLocked bool

	Errors map[string]string
}

func parsePostForm(r *http.Request) *PostForm {
	return &PostForm{
		Title:    strings.TrimSpace(r.PostFormValue("title")),
		Subtitle: strings.TrimSpace(r.PostFormValue("subtitle")),
		Author:   strings.TrimSpace(r.PostFormValue("author")),
		ImageURL: strings.TrimSpace(r.PostFormValue("img_url")),
		Body:     r.PostFormValue("body"),
		Errors:   make(map[string]string),
	}
}

// Valid checks the required fields and the image URL, filling Errors for
// everything that fails. Nothing is mutated when validation fails; the form
// is simply re-rendered.
func (f *PostForm) Valid() bool {
	if f.Title == "" {
		f.Errors["title"] = "Blog post title is required"
	}
	if f.Subtitle == "" {
		f.Errors["subtitle"] = "Subtitle is required"
	}
	if f.Author == "" {
		f.Errors["author"] = "Your name is required"
	}
	if f.ImageURL == "" {
		f.Errors["img_url"] = "Blog image URL is required"
	} else if u, err := url.ParseRequestURI(f.ImageURL); err != nil || u.Scheme == "" || u.Host == "" {
		f.Errors["img_url"] = "Blog image URL must be a valid URL"
	}
	if strings.TrimSpace(f.Body) == "" {
		f.Errors["body"] = "Blog content is required"
	}
	return len(f.Errors) == 0
}

func (f *PostForm) params() application.SubmitPostParams {
	return application.SubmitPostParams{
		Title:    f.Title,
		Subtitle: f.Subtitle,
		Author:   f.Author,
		ImageURL: f.ImageURL,
		Body:     f.Body,
	}
}

// ContactForm holds the contact form state.
type ContactForm struct {
	Name    string
	Email   string
	Phone   string
	Message string

	Errors map[string]string
}

func parseContactForm(r *http.Request) *ContactForm {
	return &ContactForm{
		Name:    strings.TrimSpace(r.PostFormValue("name")),
		Email:   strings.TrimSpace(r.PostFormValue("email")),
		Phone:   strings.TrimSpace(r.PostFormValue("phone")),
		Message: r.PostFormValue("message"),
		Errors:  make(map[string]string),
	}
}

func (f *ContactForm) Valid() bool {
	if f.Name == "" {
		f.Errors["name"] = "Name is required"
	}
	if f.Email == "" {
		f.Errors["email"] = "Email address is required"
	}
	if f.Phone == "" {
		f.Errors["phone"] = "Phone number is required"
	}
	if strings.TrimSpace(f.Message) == "" {
		f.Errors["message"] = "Message is required"
	}
	return len(f.Errors) == 0
}

func (f *ContactForm) message() domain.ContactMessage {
	return domain.ContactMessage{
		Name:    f.Name,
		Email:   f.Email,
		Phone:   f.Phone,
		Message: f.Message,
	}
}
