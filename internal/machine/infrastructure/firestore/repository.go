package firestore

import (
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/servivending/payment-relay/internal/machine/application"
	"github.com/servivending/payment-relay/internal/machine/domain"
)

// Collection holding one document per vending machine.
const Collection = "maquinas"

type Repository struct {
	log    *slog.Logger
	client *firestore.Client
}

func NewRepository(log *slog.Logger, client *firestore.Client) *Repository {
	return &Repository{log: log, client: client}
}

func (r *Repository) doc(machineID string) *firestore.DocumentRef {
	return r.client.Collection(Collection).Doc(machineID)
}

func (r *Repository) Snapshot(ctx context.Context, machineID string) (map[string]any, error) {
	snap, err := r.doc(machineID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, application.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get machine %s: %w", machineID, err)
	}
	return snap.Data(), nil
}

// ApplyPurchase runs the read-modify-write on productos inside a Firestore
// transaction so concurrent approved payments for the same machine cannot
// overwrite each other's stock update.
func (r *Repository) ApplyPurchase(ctx context.Context, machineID string) (bool, error) {
	ref := r.doc(machineID)
	updated := false

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		updated = false
		snap, err := tx.Get(ref)
		if status.Code(err) == codes.NotFound {
			return nil
		}
		if err != nil {
			return err
		}

		var m domain.Machine
		if err := snap.DataTo(&m); err != nil {
			return err
		}
		m.ApplyPurchase()

		if err := tx.Update(ref, []firestore.Update{{Path: "productos", Value: m.Products}}); err != nil {
			return err
		}
		updated = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("apply purchase on machine %s: %w", machineID, err)
	}
	return updated, nil
}
