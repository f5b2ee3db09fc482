package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/aakb/rasid-api/internal/domain/entity"
	"github.com/aakb/rasid-api/internal/domain/repository"
	"github.com/aakb/rasid-api/pkg/pagination"
	"github.com/google/uuid"
)

func page[T any](items []T, params *pagination.PaginationParams) []T {
	start := params.Offset()
	if start > len(items) {
		return nil
	}
	end := start + params.PerPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
	for _, u := range users {
		if u.ID == uuid.Nil {
			u.ID = uuid.New()
		}
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) List(_ context.Context, params *pagination.PaginationParams, search string) ([]entity.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.User
	for _, u := range r.users {
		if search == "" || strings.Contains(strings.ToLower(u.Name+" "+u.Email), strings.ToLower(search)) {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return page(out, params), int64(len(out)), nil
}

type fakeSadhakRepo struct {
	mu       sync.Mutex
	sadhaks  map[uuid.UUID]*entity.Sadhak
	receipts map[uuid.UUID]bool
}

func newFakeSadhakRepo(sadhaks ...*entity.Sadhak) *fakeSadhakRepo {
	r := &fakeSadhakRepo{sadhaks: make(map[uuid.UUID]*entity.Sadhak), receipts: make(map[uuid.UUID]bool)}
	for _, s := range sadhaks {
		if s.ID == uuid.Nil {
			s.ID = uuid.New()
		}
		r.sadhaks[s.ID] = s
	}
	return r
}

func (r *fakeSadhakRepo) Create(_ context.Context, s *entity.Sadhak) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	cp := *s
	r.sadhaks[s.ID] = &cp
	return nil
}

func (r *fakeSadhakRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Sadhak, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sadhaks[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSadhakRepo) GetByName(_ context.Context, name string) (*entity.Sadhak, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sadhaks {
		if strings.EqualFold(s.Name, strings.TrimSpace(name)) {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSadhakRepo) Update(_ context.Context, s *entity.Sadhak) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.sadhaks[s.ID] = &cp
	return nil
}

func (r *fakeSadhakRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sadhaks, id)
	return nil
}

func (r *fakeSadhakRepo) Search(_ context.Context, params *pagination.PaginationParams, search string) ([]entity.Sadhak, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Sadhak
	for _, s := range r.sadhaks {
		if strings.Contains(strings.ToLower(s.Name), strings.ToLower(search)) {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return page(out, params), int64(len(out)), nil
}

func (r *fakeSadhakRepo) HasReceipts(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.receipts[id], nil
}

type fakeReceiptRepo struct {
	mu       sync.Mutex
	seq      int64
	receipts map[int64]*entity.Receipt
	sadhaks  *fakeSadhakRepo
	filter   repository.ReceiptFilter
}

func newFakeReceiptRepo(sadhaks *fakeSadhakRepo) *fakeReceiptRepo {
	return &fakeReceiptRepo{receipts: make(map[int64]*entity.Receipt), sadhaks: sadhaks}
}

func (r *fakeReceiptRepo) Create(_ context.Context, receipt *entity.Receipt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	receipt.ReceiptNo = r.seq
	cp := *receipt
	cp.Sadhak = entity.Sadhak{}
	r.receipts[receipt.ReceiptNo] = &cp
	r.sadhaks.mu.Lock()
	r.sadhaks.receipts[receipt.SadhakID] = true
	r.sadhaks.mu.Unlock()
	return nil
}

func (r *fakeReceiptRepo) withSadhak(receipt entity.Receipt) entity.Receipt {
	if s, _ := r.sadhaks.GetByID(context.Background(), receipt.SadhakID); s != nil {
		receipt.Sadhak = *s
	}
	return receipt
}

func (r *fakeReceiptRepo) GetByNumber(_ context.Context, receiptNo int64) (*entity.Receipt, error) {
	r.mu.Lock()
	rec, ok := r.receipts[receiptNo]
	r.mu.Unlock()
	if !ok {
		return nil, nil
	}
	out := r.withSadhak(*rec)
	return &out, nil
}

func (r *fakeReceiptRepo) Update(_ context.Context, receipt *entity.Receipt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *receipt
	cp.Sadhak = entity.Sadhak{}
	r.receipts[receipt.ReceiptNo] = &cp
	return nil
}

func (r *fakeReceiptRepo) Delete(_ context.Context, receiptNo int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.receipts, receiptNo)
	return nil
}

func (r *fakeReceiptRepo) List(_ context.Context, params *pagination.PaginationParams, filter repository.ReceiptFilter) ([]entity.Receipt, int64, error) {
	r.mu.Lock()
	r.filter = filter
	var all []entity.Receipt
	for _, rec := range r.receipts {
		all = append(all, *rec)
	}
	r.mu.Unlock()

	var out []entity.Receipt
	for _, rec := range all {
		rec = r.withSadhak(rec)
		if !filter.From.IsZero() && rec.Date.Before(filter.From) {
			continue
		}
		if !filter.To.IsZero() && rec.Date.After(filter.To) {
			continue
		}
		if filter.Name != "" && !strings.Contains(strings.ToLower(rec.Sadhak.Name), strings.ToLower(filter.Name)) {
			continue
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ReceiptNo > out[j].ReceiptNo })
	return page(out, params), int64(len(out)), nil
}

func (r *fakeReceiptRepo) MaxNumber(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var maxNo int64
	for no := range r.receipts {
		if no > maxNo {
			maxNo = no
		}
	}
	return maxNo, nil
}

type fakeSettingsRepo struct {
	settings *entity.Settings
	saves    int
}

func (r *fakeSettingsRepo) Get(_ context.Context) (*entity.Settings, error) {
	if r.settings == nil {
		return nil, nil
	}
	cp := *r.settings
	return &cp, nil
}

func (r *fakeSettingsRepo) Save(_ context.Context, s *entity.Settings) error {
	s.ID = entity.SettingsID
	cp := *s
	r.settings = &cp
	r.saves++
	return nil
}

type fakeReportRepo struct {
	total   int64
	monthly []repository.MonthlyCollection
	since   time.Time
}

func (r *fakeReportRepo) TotalCollection(_ context.Context) (int64, error) {
	return r.total, nil
}

func (r *fakeReportRepo) MonthlyCollections(_ context.Context, since time.Time) ([]repository.MonthlyCollection, error) {
	r.since = since
	return r.monthly, nil
}
