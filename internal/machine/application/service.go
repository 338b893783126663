package application

import (
	"context"
	"errors"
	"log/slog"
)

var ErrNotFound = errors.New("machine not found")

type Service struct {
	log  *slog.Logger
	repo Repository
}

func NewService(log *slog.Logger, repo Repository) *Service {
	return &Service{log: log, repo: repo}
}

// Snapshot returns the machine document verbatim.
func (s *Service) Snapshot(ctx context.Context, machineID string) (map[string]any, error) {
	return s.repo.Snapshot(ctx, machineID)
}

// ApplyPurchase consumes stock on the machine after a confirmed payment.
// A missing record is not an error: the machine may have been retired by
// the administrative process between payment and notification.
func (s *Service) ApplyPurchase(ctx context.Context, machineID string) error {
	updated, err := s.repo.ApplyPurchase(ctx, machineID)
	if err != nil {
		return err
	}
	if !updated {
		s.log.Warn("machine record missing, stock update skipped", "maquina_id", machineID)
		return nil
	}
	s.log.Info("stock updated", "maquina_id", machineID)
	return nil
}
