package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pagoservicios/payments-api/internal/core/domain"
)

type stubClientRepo struct {
	clients  map[uint]domain.Client
	nextID   uint
	replaces int
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{clients: make(map[uint]domain.Client), nextID: 1}
}

func (r *stubClientRepo) List(_ context.Context) ([]domain.Client, error) {
	var out []domain.Client
	for _, c := range r.clients {
		out = append(out, c)
	}
	return out, nil
}

func (r *stubClientRepo) Create(_ context.Context, record *domain.Client) error {
	record.ID = r.nextID
	r.nextID++
	r.clients[record.ID] = *record
	return nil
}

func (r *stubClientRepo) Get(_ context.Context, id uint) (*domain.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (r *stubClientRepo) Replace(_ context.Context, record *domain.Client) error {
	r.replaces++
	r.clients[record.ID] = *record
	return nil
}

func (r *stubClientRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.clients[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.clients, id)
	return nil
}

func newClientService(repo *stubClientRepo) *RecordService[domain.Client] {
	return NewRecordService[domain.Client](repo, "client", zerolog.Nop())
}

func TestRecordService_List_Empty(t *testing.T) {
	svc := newClientService(newStubClientRepo())

	if _, err := svc.List(context.Background()); !errors.Is(err, domain.ErrNoRecords) {
		t.Fatalf("expected ErrNoRecords, got %v", err)
	}
}

func TestRecordService_CreateAndGet(t *testing.T) {
	repo := newStubClientRepo()
	svc := newClientService(repo)

	created, err := svc.Create(context.Background(), &domain.Client{Name: "Acme", Phone: "5551234"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Name != "Acme" || got.Phone != "5551234" {
		t.Fatalf("unexpected record: %+v", got)
	}

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 record, got %d", len(list))
	}
}

func TestRecordService_Get_NotFound(t *testing.T) {
	svc := newClientService(newStubClientRepo())

	if _, err := svc.Get(context.Background(), 7); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRecordService_Update_IDMismatch(t *testing.T) {
	repo := newStubClientRepo()
	svc := newClientService(repo)

	_, _ = svc.Create(context.Background(), &domain.Client{Name: "Acme", Phone: "5551234"})

	_, err := svc.Update(context.Background(), 1, &domain.Client{ID: 2, Name: "Other", Phone: "5550000"})
	if !errors.Is(err, domain.ErrIDMismatch) {
		t.Fatalf("expected ErrIDMismatch, got %v", err)
	}
	if repo.replaces != 0 {
		t.Fatalf("expected no write on id mismatch, got %d", repo.replaces)
	}
}

func TestRecordService_Update_Missing(t *testing.T) {
	svc := newClientService(newStubClientRepo())

	_, err := svc.Update(context.Background(), 9, &domain.Client{ID: 9, Name: "Ghost", Phone: "5559999"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRecordService_Update_Replaces(t *testing.T) {
	repo := newStubClientRepo()
	svc := newClientService(repo)

	created, _ := svc.Create(context.Background(), &domain.Client{Name: "Acme", Phone: "5551234"})

	updated, err := svc.Update(context.Background(), created.ID, &domain.Client{ID: created.ID, Name: "Acme SA", Phone: "5555678"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "Acme SA" {
		t.Fatalf("unexpected name: %s", updated.Name)
	}

	got, _ := svc.Get(context.Background(), created.ID)
	if got.Phone != "5555678" {
		t.Fatalf("replace did not persist: %+v", got)
	}
}

func TestRecordService_Delete(t *testing.T) {
	repo := newStubClientRepo()
	svc := newClientService(repo)

	created, _ := svc.Create(context.Background(), &domain.Client{Name: "Acme", Phone: "5551234"})

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
