package handler

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/aakb/rasid-api/internal/domain/entity"
	"github.com/aakb/rasid-api/internal/domain/repository"
	"github.com/aakb/rasid-api/pkg/pagination"
	"github.com/google/uuid"
)

// memStore backs the sadhak, receipt and settings repositories in memory
type memStore struct {
	mu       sync.Mutex
	sadhaks  map[uuid.UUID]entity.Sadhak
	receipts map[int64]entity.Receipt
	seq      int64
	settings *entity.Settings
}

func newMemStore() *memStore {
	return &memStore{
		sadhaks:  map[uuid.UUID]entity.Sadhak{},
		receipts: map[int64]entity.Receipt{},
	}
}

type sadhakRepo struct{ *memStore }
type receiptRepo struct{ *memStore }
type settingsRepo struct{ *memStore }

func (r sadhakRepo) Create(_ context.Context, s *entity.Sadhak) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.sadhaks[s.ID] = *s
	return nil
}

func (r sadhakRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Sadhak, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sadhaks[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r sadhakRepo) GetByName(_ context.Context, name string) (*entity.Sadhak, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sadhaks {
		if strings.EqualFold(s.Name, strings.TrimSpace(name)) {
			return &s, nil
		}
	}
	return nil, nil
}

func (r sadhakRepo) Update(_ context.Context, s *entity.Sadhak) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sadhaks[s.ID] = *s
	return nil
}

func (r sadhakRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sadhaks, id)
	return nil
}

func (r sadhakRepo) Search(_ context.Context, params *pagination.PaginationParams, search string) ([]entity.Sadhak, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Sadhak
	for _, s := range r.sadhaks {
		if strings.Contains(strings.ToLower(s.Name), strings.ToLower(search)) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, int64(len(out)), nil
}

func (r sadhakRepo) HasReceipts(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rc := range r.receipts {
		if rc.SadhakID == id {
			return true, nil
		}
	}
	return false, nil
}

func (r receiptRepo) Create(_ context.Context, rc *entity.Receipt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	rc.ReceiptNo = r.seq
	r.receipts[rc.ReceiptNo] = *rc
	return nil
}

func (r receiptRepo) GetByNumber(_ context.Context, no int64) (*entity.Receipt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rc, ok := r.receipts[no]
	if !ok {
		return nil, nil
	}
	rc.Sadhak = r.sadhaks[rc.SadhakID]
	return &rc, nil
}

func (r receiptRepo) Update(_ context.Context, rc *entity.Receipt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.receipts[rc.ReceiptNo] = *rc
	return nil
}

func (r receiptRepo) Delete(_ context.Context, no int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.receipts, no)
	return nil
}

func (r receiptRepo) List(_ context.Context, _ *pagination.PaginationParams, _ repository.ReceiptFilter) ([]entity.Receipt, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Receipt
	for _, rc := range r.receipts {
		out = append(out, rc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ReceiptNo > out[j].ReceiptNo })
	return out, int64(len(out)), nil
}

func (r receiptRepo) MaxNumber(context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.seq, nil
}

func (r settingsRepo) Get(context.Context) (*entity.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.settings == nil {
		return nil, nil
	}
	s := *r.settings
	return &s, nil
}

func (r settingsRepo) Save(_ context.Context, s *entity.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.settings = &cp
	return nil
}
