package views

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"io"
	"net/http"

	"tutorhub/internal/apperror"

	"github.com/a-h/templ"
)

//go:embed templates/*.html
var files embed.FS

var pages = template.Must(template.ParseFS(files, "templates/*.html"))

type RegisterForm struct {
	Error        string
	Username     string
	Password     string
	Confirmation string
	Name         string
	ImageURL     string
	Profile      string
}

type SigninForm struct {
	Error    string
	Username string
	Password string
}

type UserPage struct {
	Name    string
	Title   string
	Message string
}

type Registered struct {
	TutorID int
}

func Register(form RegisterForm) templ.Component {
	return Layout("Register", fragment(pages, "register", form))
}

func Signin(form SigninForm) templ.Component {
	return Layout("Sign in", fragment(pages, "signin", form))
}

func User(p UserPage) templ.Component {
	return Layout(p.Title, fragment(pages, "user", p))
}

func RegisteredPage(r Registered) templ.Component {
	return Layout("Registered", fragment(pages, "registered", r))
}

// Layout wraps content in the shared document shell.
func Layout(title string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := pages.ExecuteTemplate(w, "header", title); err != nil {
			return err
		}
		if err := content.Render(ctx, w); err != nil {
			return err
		}
		return pages.ExecuteTemplate(w, "footer", nil)
	})
}

func fragment(t *template.Template, name string, data interface{}) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return t.ExecuteTemplate(w, name, data)
	})
}

// Render writes c as a 200 HTML page. Nothing reaches w if rendering fails,
// so the caller can still send an error response. Any returned error is a
// TemplateError.
func Render(w http.ResponseWriter, r *http.Request, c templ.Component) error {
	var buf bytes.Buffer
	if err := c.Render(r.Context(), &buf); err != nil {
		return apperror.Template(err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
	return nil
}
