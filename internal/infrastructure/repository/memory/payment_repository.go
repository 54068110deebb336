package memory

import (
	"context"
	"sync"

	"github.com/mrftt12/Pickem/internal/domain/payment"
)

type PaymentRepository struct {
	mu     sync.RWMutex
	items  map[int64]payment.Payment
	orders []int64
	nextID int64
}

func NewPaymentRepository(payments []payment.Payment) *PaymentRepository {
	r := &PaymentRepository{
		items:  make(map[int64]payment.Payment, len(payments)),
		orders: make([]int64, 0, len(payments)),
	}
	for _, p := range payments {
		r.items[p.ID] = p
		r.orders = append(r.orders, p.ID)
		if p.ID > r.nextID {
			r.nextID = p.ID
		}
	}
	return r
}

func (r *PaymentRepository) GetByID(_ context.Context, paymentID int64) (payment.Payment, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[paymentID]
	if !ok {
		return payment.Payment{}, false, nil
	}
	return p, true, nil
}

func (r *PaymentRepository) GetByUserWeek(_ context.Context, userID, weekID int64) (payment.Payment, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.orders {
		if p, ok := r.items[id]; ok && p.UserID == userID && p.WeekID == weekID {
			return p, true, nil
		}
	}
	return payment.Payment{}, false, nil
}

func (r *PaymentRepository) ListByWeek(_ context.Context, weekID int64) ([]payment.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]payment.Payment, 0)
	for _, id := range r.orders {
		if p, ok := r.items[id]; ok && p.WeekID == weekID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *PaymentRepository) Create(_ context.Context, item payment.Payment) (payment.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	item.ID = r.nextID
	r.items[item.ID] = item
	r.orders = append(r.orders, item.ID)
	return item, nil
}

func (r *PaymentRepository) UpdateStatus(_ context.Context, paymentID int64, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p, ok := r.items[paymentID]; ok {
		p.Status = status
		r.items[paymentID] = p
	}
	return nil
}
