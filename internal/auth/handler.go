package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"tutorhub/internal/apperror"
	"tutorhub/internal/httputil"
	"tutorhub/internal/metrics"
	"tutorhub/internal/tutorclient"
	"tutorhub/internal/user"
	"tutorhub/internal/views"

	"github.com/a-h/templ"
	"github.com/gorilla/mux"
)

const (
	msgUserExists       = "User Id already exists"
	msgPasswordMismatch = "Passwords do not match"
	msgInvalidLogin     = "Invalid login"
)

// TutorCreator creates the tutor record a new user is linked to.
type TutorCreator interface {
	CreateTutor(ctx context.Context, tutor tutorclient.NewTutor) (*tutorclient.Tutor, error)
}

type Handler struct {
	users   user.Repository
	tutors  TutorCreator
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewHandler(users user.Repository, tutors TutorCreator, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		users:   users,
		tutors:  tutors,
		logger:  logger,
		metrics: m,
	}
}

func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/", h.ShowRegisterForm).Methods(http.MethodGet)
	router.HandleFunc("/register", h.HandleRegister).Methods(http.MethodPost)
	router.HandleFunc("/signinform", h.ShowSigninForm).Methods(http.MethodGet)
	router.HandleFunc("/signin", h.HandleSignin).Methods(http.MethodPost)
}

func (h *Handler) ShowRegisterForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, views.Register(views.RegisterForm{}))
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httputil.RespondWithError(w, r, h.logger, apperror.InvalidInput("Invalid form data"))
		return
	}

	form := views.RegisterForm{
		Username: r.PostFormValue("username"),
		Name:     r.PostFormValue("name"),
		ImageURL: r.PostFormValue("imageurl"),
		Profile:  r.PostFormValue("profile"),
	}
	password := r.PostFormValue("password")
	confirmation := r.PostFormValue("confirmation")

	_, err := h.users.GetByUsername(r.Context(), form.Username)
	switch {
	case err == nil:
		form.Error = msgUserExists
	case !errors.Is(err, apperror.ErrNotFound):
		httputil.RespondWithError(w, r, h.logger, err)
		return
	case password != confirmation:
		form.Error = msgPasswordMismatch
	}

	if form.Error != "" {
		h.logger.InfoContext(r.Context(), "registration rejected", "username", form.Username, "reason", form.Error)
		h.render(w, r, views.Register(form))
		return
	}

	tutor, err := h.tutors.CreateTutor(r.Context(), tutorclient.NewTutor{
		Name:    form.Name,
		PicURL:  form.ImageURL,
		Profile: form.Profile,
	})
	if err != nil {
		httputil.RespondWithError(w, r, h.logger, err)
		return
	}

	hashed, err := HashPassword(password)
	if err != nil {
		httputil.RespondWithError(w, r, h.logger, err)
		return
	}

	tutorID := tutor.ID
	if err := h.users.Create(r.Context(), &user.User{
		Username: form.Username,
		Password: hashed,
		TutorID:  &tutorID,
	}); err != nil {
		httputil.RespondWithError(w, r, h.logger, err)
		return
	}

	h.metrics.RecordRegistration(r.Context())
	h.logger.InfoContext(r.Context(), "user registered", "username", form.Username, "tutor_id", tutorID)

	h.render(w, r, views.RegisteredPage(views.Registered{TutorID: tutorID}))
}

func (h *Handler) ShowSigninForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, views.Signin(views.SigninForm{}))
}

// HandleSignin answers unknown users and wrong passwords identically, and
// runs one hash verification on both paths.
func (h *Handler) HandleSignin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httputil.RespondWithError(w, r, h.logger, apperror.InvalidInput("Invalid form data"))
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	stored := dummyHash
	u, err := h.users.GetByUsername(r.Context(), username)
	switch {
	case err == nil:
		stored = u.Password
	case !errors.Is(err, apperror.ErrNotFound):
		httputil.RespondWithError(w, r, h.logger, err)
		return
	}

	ok := VerifyPassword(password, stored) && u != nil
	h.metrics.RecordSignin(r.Context(), ok)

	if !ok {
		h.logger.InfoContext(r.Context(), "signin rejected", "username", username)
		h.render(w, r, views.Signin(views.SigninForm{
			Error:    msgInvalidLogin,
			Username: username,
			Password: password,
		}))
		return
	}

	h.render(w, r, views.User(views.UserPage{
		Name:    username,
		Title:   "Signin confirmation!",
		Message: "You have successfully logged in to tutorhub!",
	}))
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	if err := views.Render(w, r, c); err != nil {
		httputil.RespondWithError(w, r, h.logger, err)
	}
}
