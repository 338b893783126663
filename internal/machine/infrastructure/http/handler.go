package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/servivending/payment-relay/internal/machine/application"
)

type Handler struct {
	log     *slog.Logger
	service *application.Service
	tracer  trace.Tracer
}

func NewHandler(log *slog.Logger, service *application.Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
		tracer:  otel.Tracer("machine-http"),
	}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/maquina/{id}", h.getMachine)
}

func (h *Handler) getMachine(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "GetMachine")
	defer span.End()

	machineID := chi.URLParam(r, "id")

	doc, err := h.service.Snapshot(ctx, machineID)
	if errors.Is(err, application.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Máquina no encontrada"})
		return
	}
	if err != nil {
		h.log.Error("get machine failed", "maquina_id", machineID, "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
