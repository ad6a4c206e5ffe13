package courseproxy

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"tutorhub/internal/apperror"
	"tutorhub/internal/httputil"
	"tutorhub/internal/tutorclient"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// CourseClient is the part of tutorclient.Client the proxy forwards to.
type CourseClient interface {
	GetCourses(ctx context.Context, tutorID int) ([]tutorclient.Course, error)
	CreateCourse(ctx context.Context, course tutorclient.NewCourse) (*tutorclient.Course, error)
	UpdateCourse(ctx context.Context, tutorID, courseID int, update tutorclient.UpdateCourse) (*tutorclient.Course, error)
	DeleteCourse(ctx context.Context, tutorID, courseID int) (string, error)
}

// NewCourseRequest is a course posted from the browser; the tutor comes
// from the path.
type NewCourseRequest struct {
	Name        *string `json:"course_name" validate:"required"`
	Description *string `json:"course_description"`
	Format      *string `json:"course_format"`
	Structure   *string `json:"course_structure"`
	Duration    *string `json:"course_duration"`
	Price       *int    `json:"course_price"`
	Language    *string `json:"course_language"`
	Level       *string `json:"course_level"`
}

type Handler struct {
	client   CourseClient
	validate *validator.Validate
	logger   *slog.Logger
}

func NewHandler(client CourseClient, logger *slog.Logger) *Handler {
	return &Handler{
		client:   client,
		validate: validator.New(),
		logger:   logger,
	}
}

func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/courses/{tutor_id}", h.GetCourses).Methods(http.MethodGet)
	router.HandleFunc("/courses/new/{tutor_id}", h.CreateCourse).Methods(http.MethodPost)
	router.HandleFunc("/courses/{tutor_id}/{course_id}", h.UpdateCourse).Methods(http.MethodPut)
	router.HandleFunc("/courses/delete/{tutor_id}/{course_id}", h.DeleteCourse).Methods(http.MethodDelete)
}

func (h *Handler) GetCourses(w http.ResponseWriter, r *http.Request) {
	tutorID, err := pathID(r, "tutor_id")
	if err != nil {
		httputil.RespondWithError(w, r, h.logger, err)
		return
	}

	courses, err := h.client.GetCourses(r.Context(), tutorID)
	if err != nil {
		httputil.RespondWithError(w, r, h.logger, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, courses)
}

func (h *Handler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	tutorID, err := pathID(r, "tutor_id")
	if err != nil {
		httputil.RespondWithError(w, r, h.logger, err)
		return
	}

	var req NewCourseRequest
	if err := httputil.DecodeJSON(r, h.validate, &req); err != nil {
		httputil.RespondWithError(w, r, h.logger, err)
		return
	}

	h.logger.InfoContext(r.Context(), "forwarding new course", "tutor_id", tutorID, "course_name", *req.Name)
	course, err := h.client.CreateCourse(r.Context(), tutorclient.NewCourse{
		TutorID:     tutorID,
		Name:        *req.Name,
		Description: req.Description,
		Format:      req.Format,
		Structure:   req.Structure,
		Duration:    req.Duration,
		Price:       req.Price,
		Language:    req.Language,
		Level:       req.Level,
	})
	if err != nil {
		httputil.RespondWithError(w, r, h.logger, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, course)
}

func (h *Handler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	tutorID, courseID, err := courseKey(r)
	if err != nil {
		httputil.RespondWithError(w, r, h.logger, err)
		return
	}

	var update tutorclient.UpdateCourse
	if err := httputil.DecodeJSON(r, h.validate, &update); err != nil {
		httputil.RespondWithError(w, r, h.logger, err)
		return
	}

	course, err := h.client.UpdateCourse(r.Context(), tutorID, courseID, update)
	if err != nil {
		httputil.RespondWithError(w, r, h.logger, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, course)
}

func (h *Handler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	tutorID, courseID, err := courseKey(r)
	if err != nil {
		httputil.RespondWithError(w, r, h.logger, err)
		return
	}

	msg, err := h.client.DeleteCourse(r.Context(), tutorID, courseID)
	if err != nil {
		httputil.RespondWithError(w, r, h.logger, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, msg)
}

func courseKey(r *http.Request) (int, int, error) {
	tutorID, err := pathID(r, "tutor_id")
	if err != nil {
		return 0, 0, err
	}
	courseID, err := pathID(r, "course_id")
	if err != nil {
		return 0, 0, err
	}
	return tutorID, courseID, nil
}

func pathID(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil {
		return 0, apperror.InvalidInput("Invalid " + name)
	}
	return id, nil
}
