package memory

import (
	"context"
	"sync"
	"time"

	"github.com/sthwalo/acc-sub020/internal/adapter/repository/repo_interfaces"
	"github.com/sthwalo/acc-sub020/internal/domain"
)

// BankTransactionRepository keeps accepted transactions in memory. It backs
// dry runs and tests and is safe for concurrent use.
type BankTransactionRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  []domain.BankTransaction
}

func NewBankTransactionRepository() *BankTransactionRepository {
	return &BankTransactionRepository{}
}

func (r *BankTransactionRepository) Insert(_ context.Context, transaction domain.BankTransaction) (domain.BankTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	transaction.ID = r.nextID
	transaction.CreatedAt = time.Now().UTC()
	r.items = append(r.items, transaction)

	return transaction, nil
}

func (r *BankTransactionRepository) Exists(_ context.Context, key domain.DuplicateKey) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.Key().Matches(key) {
			return true, nil
		}
	}

	return false, nil
}

func (r *BankTransactionRepository) FindByKey(_ context.Context, key domain.DuplicateKey) (domain.BankTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.Key().Matches(key) {
			return item, nil
		}
	}

	return domain.BankTransaction{}, domain.ErrRecordNotFound
}

// All returns a copy of every stored transaction in insertion order.
func (r *BankTransactionRepository) All() []domain.BankTransaction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.BankTransaction, len(r.items))
	copy(out, r.items)
	return out
}

var _ repo_interfaces.BankTransactionRepository = (*BankTransactionRepository)(nil)
