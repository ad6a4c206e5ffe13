package course

import (
	"log/slog"
	"net/http"
	"strconv"

	"tutorhub/internal/apperror"
	"tutorhub/internal/httputil"
	"tutorhub/internal/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	service  Service
	validate *validator.Validate
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

func NewHandler(service Service, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
		metrics:  m,
	}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/courses", h.CreateCourse)
	router.Get("/courses/{tutor_id}", h.GetCoursesForTutor)
	router.Get("/courses/{tutor_id}/{course_id}", h.GetCourse)
	router.Put("/courses/{tutor_id}/{course_id}", h.UpdateCourse)
	router.Delete("/courses/{tutor_id}/{course_id}", h.DeleteCourse)
}

func (h *Handler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var newCourse NewCourse
	if err := httputil.DecodeJSON(r, h.validate, &newCourse); err != nil {
		httputil.RespondWithError(w, r, h.logger, err)
		return
	}

	h.logger.InfoContext(r.Context(), "creating course", "tutor_id", *newCourse.TutorID, "course_name", *newCourse.Name)
	course, err := h.service.CreateCourse(r.Context(), newCourse)
	if err != nil {
		httputil.RespondWithError(w, r, h.logger, err)
		return
	}

	h.metrics.RecordCourseCreated(r.Context(), course.TutorID)

	httputil.RespondWithJSON(w, http.StatusOK, course)
}

func (h *Handler) GetCoursesForTutor(w http.ResponseWriter, r *http.Request) {
	tutorID, err := pathID(r, "tutor_id")
	if err != nil {
		httputil.RespondWithError(w, r, h.logger, err)
		return
	}

	h.logger.InfoContext(r.Context(), "fetching courses for tutor", "tutor_id", tutorID)
	courses, err := h.service.GetCoursesForTutor(r.Context(), tutorID)
	if err != nil {
		httputil.RespondWithError(w, r, h.logger, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, courses)
}

func (h *Handler) GetCourse(w http.ResponseWriter, r *http.Request) {
	tutorID, courseID, err := courseKey(r)
	if err != nil {
		httputil.RespondWithError(w, r, h.logger, err)
		return
	}

	course, err := h.service.GetCourse(r.Context(), tutorID, courseID)
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

	var update UpdateCourse
	if err := httputil.DecodeJSON(r, h.validate, &update); err != nil {
		httputil.RespondWithError(w, r, h.logger, err)
		return
	}

	h.logger.InfoContext(r.Context(), "updating course", "tutor_id", tutorID, "course_id", courseID)
	course, err := h.service.UpdateCourse(r.Context(), tutorID, courseID, update)
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

	h.logger.InfoContext(r.Context(), "deleting course", "tutor_id", tutorID, "course_id", courseID)
	msg, err := h.service.DeleteCourse(r.Context(), tutorID, courseID)
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
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		return 0, apperror.InvalidInput("Invalid " + name)
	}
	return id, nil
}
