package repo_interfaces

import (
	"context"

	"github.com/sthwalo/acc-sub020/internal/domain"
)

//go:generate mockgen -destination=../mocks/mock_bank_transaction_repository.go -package=mocks -source=bank_transaction_repository.go BankTransactionRepository
type BankTransactionRepository interface {
	Insert(ctx context.Context, transaction domain.BankTransaction) (domain.BankTransaction, error)
	Exists(ctx context.Context, key domain.DuplicateKey) (bool, error)
	FindByKey(ctx context.Context, key domain.DuplicateKey) (domain.BankTransaction, error)
}
