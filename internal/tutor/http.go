package tutor

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
	router.Get("/tutors", h.GetAllTutors)
	router.Post("/tutors", h.CreateTutor)
	router.Get("/tutors/{tutor_id}", h.GetTutor)
	router.Put("/tutors/{tutor_id}", h.UpdateTutor)
	router.Delete("/tutors/{tutor_id}", h.DeleteTutor)
}

func (h *Handler) GetAllTutors(w http.ResponseWriter, r *http.Request) {
	h.logger.InfoContext(r.Context(), "fetching all tutors")

	tutors, err := h.service.GetAllTutors(r.Context())
	if err != nil {
		httputil.RespondWithError(w, r, h.logger, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, tutors)
}

func (h *Handler) GetTutor(w http.ResponseWriter, r *http.Request) {
	id, err := tutorID(r)
	if err != nil {
		httputil.RespondWithError(w, r, h.logger, err)
		return
	}

	h.logger.InfoContext(r.Context(), "fetching tutor", "tutor_id", id)
	tutor, err := h.service.GetTutorByID(r.Context(), id)
	if err != nil {
		httputil.RespondWithError(w, r, h.logger, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, tutor)
}

func (h *Handler) CreateTutor(w http.ResponseWriter, r *http.Request) {
	var newTutor NewTutor
	if err := httputil.DecodeJSON(r, h.validate, &newTutor); err != nil {
		httputil.RespondWithError(w, r, h.logger, err)
		return
	}

	h.logger.InfoContext(r.Context(), "creating tutor", "tutor_name", *newTutor.Name)
	tutor, err := h.service.CreateTutor(r.Context(), newTutor)
	if err != nil {
		httputil.RespondWithError(w, r, h.logger, err)
		return
	}

	h.metrics.RecordTutorCreated(r.Context())

	httputil.RespondWithJSON(w, http.StatusOK, tutor)
}

func (h *Handler) UpdateTutor(w http.ResponseWriter, r *http.Request) {
	id, err := tutorID(r)
	if err != nil {
		httputil.RespondWithError(w, r, h.logger, err)
		return
	}

	var update UpdateTutor
	if err := httputil.DecodeJSON(r, h.validate, &update); err != nil {
		httputil.RespondWithError(w, r, h.logger, err)
		return
	}

	h.logger.InfoContext(r.Context(), "updating tutor", "tutor_id", id)
	tutor, err := h.service.UpdateTutor(r.Context(), id, update)
	if err != nil {
		httputil.RespondWithError(w, r, h.logger, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, tutor)
}

func (h *Handler) DeleteTutor(w http.ResponseWriter, r *http.Request) {
	id, err := tutorID(r)
	if err != nil {
		httputil.RespondWithError(w, r, h.logger, err)
		return
	}

	h.logger.InfoContext(r.Context(), "deleting tutor", "tutor_id", id)
	msg, err := h.service.DeleteTutor(r.Context(), id)
	if err != nil {
		httputil.RespondWithError(w, r, h.logger, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, msg)
}

func tutorID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "tutor_id"))
	if err != nil {
		return 0, apperror.InvalidInput("Invalid tutor id")
	}
	return id, nil
}
