package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/api/option"

	"github.com/servivending/payment-relay/internal/config"
	machineapp "github.com/servivending/payment-relay/internal/machine/application"
	machinefs "github.com/servivending/payment-relay/internal/machine/infrastructure/firestore"
	machinehttp "github.com/servivending/payment-relay/internal/machine/infrastructure/http"
	paymentapp "github.com/servivending/payment-relay/internal/payment/application"
	paymenthttp "github.com/servivending/payment-relay/internal/payment/infrastructure/http"
	"github.com/servivending/payment-relay/internal/payment/infrastructure/mercadopago"
	"github.com/servivending/payment-relay/pkg/logging"
	"github.com/servivending/payment-relay/pkg/metrics"
	"github.com/servivending/payment-relay/pkg/middleware"
	"github.com/servivending/payment-relay/pkg/shutdown"
	"github.com/servivending/payment-relay/pkg/tracing"
)

func main() {
	log := logging.New("payment-relay")

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Error("config load failed", "err", err)
		os.Exit(1)
	}

	tp, err := tracing.Init(ctx, "payment-relay", cfg.OTLPEndpoint, log)
	if err != nil {
		log.Error("otel init failed", "err", err)
		os.Exit(1)
	}
	defer func() { _ = tp.Shutdown(context.Background()) }()

	// Firestore setup
	var fsOpts []option.ClientOption
	if cfg.CredentialsFile != "" {
		fsOpts = append(fsOpts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	fsClient, err := firestore.NewClient(ctx, cfg.FirestoreProjectID, fsOpts...)
	if err != nil {
		log.Error("firestore connect failed", "err", err)
		os.Exit(1)
	}
	defer fsClient.Close()

	// Payment provider
	mp, err := mercadopago.NewClient(cfg.MPAccessToken)
	if err != nil {
		log.Error("mercadopago init failed", "err", err)
		os.Exit(1)
	}

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	m := metrics.New(reg)

	// Services & handlers
	machineRepo := machinefs.NewRepository(log, fsClient)
	machineSvc := machineapp.NewService(log, machineRepo)
	paymentSvc := paymentapp.NewService(log, mp, machineSvc, cfg.WebhookURL)

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.WithRequestID)
	r.Use(middleware.WithLogging(log))
	r.Use(middleware.WithDuration(m.RequestDuration))
	paymenthttp.NewHandler(log, paymentSvc, m).Register(r)
	machinehttp.NewHandler(log, machineSvc).Register(r)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Info("http listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)
	log.Info("payment-relay shutdown complete")
}
