package services

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"upipay_backend/internal/models"
	"upipay_backend/internal/repositories"

	"github.com/shopspring/decimal"
)

// In-memory repository fakes so service behavior can be exercised without
// a database.

type fakeClock struct {
	now time.Time
}

func newFakeClock(t time.Time) *fakeClock { return &fakeClock{now: t} }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type fakeMerchantRepo struct {
	mu     sync.Mutex
	byID   map[string]*models.UpiID
	nextID int
}

func newFakeMerchantRepo() *fakeMerchantRepo {
	return &fakeMerchantRepo{byID: make(map[string]*models.UpiID)}
}

func (r *fakeMerchantRepo) Insert(upi *models.UpiID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if upi.ID == "" {
		r.nextID++
		upi.ID = fmt.Sprintf("merchant-%d", r.nextID)
	}
	cp := *upi
	r.byID[upi.ID] = &cp
	return nil
}

func (r *fakeMerchantRepo) FindByID(id string) (*models.UpiID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	upi, ok := r.byID[id]
	if !ok {
		return nil, repositories.ErrMerchantNotFound
	}
	cp := *upi
	return &cp, nil
}

func (r *fakeMerchantRepo) FindByAddress(address string) (*models.UpiID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, upi := range r.byID {
		if upi.UpiID == address && upi.DeletedAt == nil {
			cp := *upi
			return &cp, nil
		}
	}
	return nil, repositories.ErrMerchantNotFound
}

func (r *fakeMerchantRepo) FindByAddressAny(address string) (*models.UpiID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, upi := range r.byID {
		if upi.UpiID == address {
			cp := *upi
			return &cp, nil
		}
	}
	return nil, repositories.ErrMerchantNotFound
}

func (r *fakeMerchantRepo) ExistsByAddress(address string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, upi := range r.byID {
		if upi.UpiID == address {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeMerchantRepo) List(includeDeleted bool) ([]models.UpiID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.UpiID
	for _, upi := range r.byID {
		if !includeDeleted && upi.DeletedAt != nil {
			continue
		}
		out = append(out, *upi)
	}
	sortMerchantsNewestFirst(out)
	return out, nil
}

func (r *fakeMerchantRepo) ListAcceptingPayments() ([]models.UpiID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.UpiID
	for _, upi := range r.byID {
		if upi.IsActive && upi.BlockedAt == nil && upi.DeletedAt == nil {
			out = append(out, *upi)
		}
	}
	sortMerchantsNewestFirst(out)
	return out, nil
}

func (r *fakeMerchantRepo) Update(id string, patch map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	upi, ok := r.byID[id]
	if !ok {
		return repositories.ErrMerchantNotFound
	}
	for col, val := range patch {
		switch col {
		case "is_active":
			upi.IsActive = val.(bool)
		case "blocked_at":
			upi.BlockedAt = toTimePtr(val)
		case "deleted_at":
			upi.DeletedAt = toTimePtr(val)
		}
	}
	return nil
}

func sortMerchantsNewestFirst(upis []models.UpiID) {
	sort.Slice(upis, func(i, j int) bool {
		return upis[i].CreatedAt.After(upis[j].CreatedAt)
	})
}

func toTimePtr(val interface{}) *time.Time {
	switch v := val.(type) {
	case nil:
		return nil
	case time.Time:
		return &v
	case *time.Time:
		return v
	}
	return nil
}

type fakeTransactionRepo struct {
	mu    sync.Mutex
	byRef map[string]*models.Transaction
	order []string
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{byRef: make(map[string]*models.Transaction)}
}

func (r *fakeTransactionRepo) Insert(tx *models.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if tx.ID == "" {
		tx.ID = fmt.Sprintf("tx-%d", len(r.order)+1)
	}
	cp := *tx
	r.byRef[tx.Reference] = &cp
	r.order = append(r.order, tx.Reference)
	return nil
}

func (r *fakeTransactionRepo) FindByReference(reference string) (*models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx, ok := r.byRef[reference]
	if !ok {
		return nil, repositories.ErrTransactionNotFound
	}
	cp := *tx
	return &cp, nil
}

func (r *fakeTransactionRepo) Update(reference string, patch map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx, ok := r.byRef[reference]
	if !ok {
		return repositories.ErrTransactionNotFound
	}
	for col, val := range patch {
		switch col {
		case "status":
			tx.Status = val.(models.TransactionStatus)
		case "completed_at":
			tx.CompletedAt = toTimePtr(val)
		case "failed_at":
			tx.FailedAt = toTimePtr(val)
		case "verified_by":
			tx.VerifiedBy = val.(string)
		case "verified_at":
			tx.VerifiedAt = toTimePtr(val)
		}
	}
	return nil
}

func (r *fakeTransactionRepo) List() ([]models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Transaction, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		out = append(out, *r.byRef[r.order[i]])
	}
	return out, nil
}

func (r *fakeTransactionRepo) SumAmountSince(address string, since time.Time) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := decimal.Zero
	for _, tx := range r.byRef {
		if tx.UpiID == address && !tx.CreatedAt.Before(since) {
			total = total.Add(tx.Amount)
		}
	}
	return total, nil
}

func (r *fakeTransactionRepo) ListPendingCreatedBefore(cutoff time.Time) ([]models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Transaction
	for _, ref := range r.order {
		tx := r.byRef[ref]
		if tx.Status == models.TransactionStatusPending && tx.CreatedAt.Before(cutoff) {
			out = append(out, *tx)
		}
	}
	return out, nil
}

type publishedStatus struct {
	Reference string
	Status    models.TransactionStatus
	At        time.Time
}

// recordingPublisher captures broadcast calls in order.
type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedStatus
}

func (p *recordingPublisher) PublishStatus(reference string, status models.TransactionStatus, at time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedStatus{Reference: reference, Status: status, At: at})
}

func (p *recordingPublisher) Events() []publishedStatus {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]publishedStatus, len(p.events))
	copy(out, p.events)
	return out
}

type fakeAuditRepo struct {
	mu        sync.Mutex
	entries   []models.UpiAuditLog
	recordErr error
}

func (r *fakeAuditRepo) Create(entry *models.UpiAuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.recordErr != nil {
		return r.recordErr
	}
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *fakeAuditRepo) Record(upiID, action string, oldValues, newValues interface{}, actionBy string) error {
	return r.Create(&models.UpiAuditLog{UpiIDRef: upiID, Action: action, ActionBy: actionBy})
}

func (r *fakeAuditRepo) ListByUpiID(upiID string) ([]models.UpiAuditLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.UpiAuditLog
	for _, e := range r.entries {
		if e.UpiIDRef == upiID {
			out = append(out, e)
		}
	}
	return out, nil
}
