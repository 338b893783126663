package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/servivending/payment-relay/internal/machine/application"
)

type fakeRepo struct {
	docs map[string]map[string]any
	err  error
}

func (f *fakeRepo) Snapshot(_ context.Context, id string) (map[string]any, error) {
	if f.err != nil {
		return nil, f.err
	}
	doc, ok := f.docs[id]
	if !ok {
		return nil, application.ErrNotFound
	}
	return doc, nil
}

func (f *fakeRepo) ApplyPurchase(_ context.Context, id string) (bool, error) {
	_, ok := f.docs[id]
	return ok, f.err
}

func newTestRouter(repo *fakeRepo) http.Handler {
	log := slog.New(slog.DiscardHandler)
	h := NewHandler(log, application.NewService(log, repo))
	r := chi.NewRouter()
	h.Register(r)
	return r
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestGetMachineNotFound(t *testing.T) {
	h := newTestRouter(&fakeRepo{docs: map[string]map[string]any{}})

	rr := get(t, h, "/maquina/maq-404")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["error"] != "Máquina no encontrada" {
		t.Fatalf("error = %q, want Máquina no encontrada", resp["error"])
	}
}

func TestGetMachineVerbatim(t *testing.T) {
	// The stored document is returned whole, including fields this
	// service never touches.
	doc := map[string]any{
		"productos": []any{
			map[string]any{"nombre": "agua", "precio": 15.0, "cantidad": 1.0, "stock": 9.0},
		},
		"ubicacion": "pasillo 4",
	}
	h := newTestRouter(&fakeRepo{docs: map[string]map[string]any{"maq-1": doc}})

	rr := get(t, h, "/maquina/maq-1")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var got map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got["ubicacion"] != "pasillo 4" {
		t.Fatalf("extra field dropped: %v", got)
	}
	productos, ok := got["productos"].([]any)
	if !ok || len(productos) != 1 {
		t.Fatalf("productos = %v", got["productos"])
	}
}

func TestGetMachineStoreFailure(t *testing.T) {
	h := newTestRouter(&fakeRepo{err: errors.New("firestore unavailable")})

	rr := get(t, h, "/maquina/maq-1")
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["error"] != "Error interno" {
		t.Fatalf("error = %q, want Error interno", resp["error"])
	}
}
