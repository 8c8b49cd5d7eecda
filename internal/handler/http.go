package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/MikhailRaia/url-shortener-client/internal/form"
	"github.com/MikhailRaia/url-shortener-client/internal/logger"
	"github.com/MikhailRaia/url-shortener-client/internal/middleware"
	"github.com/MikhailRaia/url-shortener-client/internal/pool"
	"github.com/MikhailRaia/url-shortener-client/internal/submission"
)

const maxFormMemory = 1 << 20

type Submitter interface {
	Submit(ctx context.Context, f submission.Form) submission.State
	State() submission.State
}

type ServicePinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	submitter Submitter
	pinger    ServicePinger
	buffers   *pool.Pool[*bytes.Buffer]
}

func NewHandler(submitter Submitter, pinger ServicePinger) *Handler {
	return &Handler{
		submitter: submitter,
		pinger:    pinger,
		buffers:   pool.New(32, func() *bytes.Buffer { return new(bytes.Buffer) }),
	}
}

func (h *Handler) RegisterRoutes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	r.Use(logger.RequestLogger)

	r.Use(middleware.GzipReader)
	r.Use(middleware.GzipMiddleware)
	r.Use(middleware.Origin)

	r.Post("/submit", h.handleSubmit)
	r.Get("/state", h.handleState)
	r.Get("/ping", h.handlePing)

	return r
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := r.ParseMultipartForm(maxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	state := h.submitter.Submit(r.Context(), form.NewValues(r.PostForm))

	status := http.StatusCreated
	if state.Kind() != submission.KindSuccess {
		status = http.StatusBadGateway
	}

	h.writeState(w, status, state)
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	h.writeState(w, http.StatusOK, h.submitter.State())
}

func (h *Handler) handlePing(w http.ResponseWriter, r *http.Request) {
	if h.pinger == nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := h.pinger.Ping(r.Context()); err != nil {
		log.Warn().Err(err).Msg("Shortening service health check failed")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) writeState(w http.ResponseWriter, status int, state submission.State) {
	buf := h.buffers.Get()
	defer h.buffers.Put(buf)

	if err := json.NewEncoder(buf).Encode(state.View()); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}
