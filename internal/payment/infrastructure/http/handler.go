package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/servivending/payment-relay/internal/payment/application"
	"github.com/servivending/payment-relay/internal/payment/domain"
	"github.com/servivending/payment-relay/pkg/metrics"
)

type Handler struct {
	log     *slog.Logger
	service *application.Service
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

func NewHandler(log *slog.Logger, service *application.Service, m *metrics.Metrics) *Handler {
	return &Handler{
		log:     log,
		service: service,
		metrics: m,
		tracer:  otel.Tracer("payment-http"),
	}
}

type createPaymentReq struct {
	MachineID string        `json:"maquina_id"`
	Products  []domain.Item `json:"productos"`
}

type createPaymentResp struct {
	PaymentURL string `json:"payment_url"`
	QRData     string `json:"qr_data"`
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/crear_pago", h.createPayment)
	r.Post("/webhook_pago", h.paymentWebhook)
}

func (h *Handler) createPayment(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "CreatePayment")
	defer span.End()

	var req createPaymentReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.metrics.PaymentsCreated.WithLabelValues("invalid").Inc()
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Datos insuficientes"})
		return
	}
	span.SetAttributes(attribute.String("maquina_id", req.MachineID))

	pref, err := h.service.CreatePayment(ctx, req.MachineID, req.Products)
	if errors.Is(err, application.ErrInvalidRequest) {
		h.metrics.PaymentsCreated.WithLabelValues("invalid").Inc()
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Datos insuficientes"})
		return
	}
	if err != nil {
		h.log.Error("create payment failed", "maquina_id", req.MachineID, "err", err)
		h.metrics.PaymentsCreated.WithLabelValues("error").Inc()
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}

	h.metrics.PaymentsCreated.WithLabelValues("created").Inc()
	writeJSON(w, http.StatusOK, createPaymentResp{
		PaymentURL: pref.PaymentURL,
		QRData:     pref.ID,
	})
}

func (h *Handler) paymentWebhook(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "PaymentWebhook")
	defer span.End()

	var n domain.Notification
	if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
		h.metrics.WebhooksProcessed.WithLabelValues("error").Inc()
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	span.SetAttributes(attribute.String("action", n.Action))

	out, err := h.service.HandleNotification(ctx, n)
	if err != nil {
		h.log.Error("webhook processing failed", "action", n.Action, "payment_id", string(n.Data.ID), "err", err)
		h.metrics.WebhooksProcessed.WithLabelValues("error").Inc()
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	switch out {
	case application.OutcomeNotApproved:
		h.metrics.WebhooksProcessed.WithLabelValues("not_approved").Inc()
		w.WriteHeader(http.StatusBadRequest)
	case application.OutcomeIgnored:
		h.metrics.WebhooksProcessed.WithLabelValues("ignored").Inc()
		w.WriteHeader(http.StatusOK)
	default:
		h.metrics.WebhooksProcessed.WithLabelValues("approved").Inc()
		w.WriteHeader(http.StatusOK)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
