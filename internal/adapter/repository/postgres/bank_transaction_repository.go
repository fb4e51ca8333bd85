package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sthwalo/acc-sub020/internal/domain"
	"github.com/sthwalo/acc-sub020/internal/logger"
)

type BankTransactionRepository struct {
	db *sql.DB
}

func NewBankTransactionRepository(db *sql.DB) *BankTransactionRepository {
	return &BankTransactionRepository{db: db}
}

func (r *BankTransactionRepository) Insert(ctx context.Context, transaction domain.BankTransaction) (domain.BankTransaction, error) {
	logger.Info("bank transaction repository insert", logger.Fields{
		"companyId":       transaction.CompanyID,
		"fiscalPeriodId":  transaction.FiscalPeriodID,
		"transactionDate": transaction.TransactionDate.Format("2006-01-02"),
		"details":         transaction.Details,
	})

	const query = `
INSERT INTO bank_transactions (
	company_id,
	fiscal_period_id,
	transaction_date,
	details,
	debit_amount,
	credit_amount,
	balance
) VALUES (
	$1, $2, $3, $4, $5, $6, $7
)
RETURNING id, created_at`

	var (
		id        int64
		createdAt time.Time
	)

	if err := r.db.QueryRowContext(
		ctx,
		query,
		transaction.CompanyID,
		transaction.FiscalPeriodID,
		transaction.TransactionDate,
		transaction.Details,
		transaction.DebitAmount,
		transaction.CreditAmount,
		transaction.Balance,
	).Scan(&id, &createdAt); err != nil {
		logger.Error("bank transaction repository insert failed", err, logger.Fields{
			"companyId": transaction.CompanyID,
			"details":   transaction.Details,
		})
		return domain.BankTransaction{}, fmt.Errorf("insert bank transaction: %w", err)
	}

	transaction.ID = id
	transaction.CreatedAt = createdAt

	logger.Info("bank transaction repository insert success", logger.Fields{
		"transactionId": transaction.ID,
		"companyId":     transaction.CompanyID,
	})

	return transaction, nil
}

// duplicateKeyPredicate matches the composite duplicate key: company, date,
// both amounts by value, details after whitespace/case normalization, and
// balance where NULL only matches NULL.
const duplicateKeyPredicate = `
company_id = $1
	AND transaction_date = $2
	AND debit_amount = $3
	AND credit_amount = $4
	AND lower(regexp_replace(btrim(details), '\s+', ' ', 'g')) = $5
	AND balance IS NOT DISTINCT FROM $6`

func (r *BankTransactionRepository) Exists(ctx context.Context, key domain.DuplicateKey) (bool, error) {
	const query = `
SELECT EXISTS (
	SELECT 1
	FROM bank_transactions
	WHERE ` + duplicateKeyPredicate + `
)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, keyArgs(key)...).Scan(&exists); err != nil {
		logger.Error("bank transaction repository exists failed", err, logger.Fields{
			"companyId": key.CompanyID,
		})
		return false, fmt.Errorf("check bank transaction exists: %w", err)
	}

	return exists, nil
}

func (r *BankTransactionRepository) FindByKey(ctx context.Context, key domain.DuplicateKey) (domain.BankTransaction, error) {
	const query = `
SELECT id, company_id, fiscal_period_id, transaction_date, details, debit_amount, credit_amount, balance, created_at
FROM bank_transactions
WHERE ` + duplicateKeyPredicate + `
ORDER BY id
LIMIT 1`

	var transaction domain.BankTransaction

	if err := r.db.QueryRowContext(ctx, query, keyArgs(key)...).Scan(
		&transaction.ID,
		&transaction.CompanyID,
		&transaction.FiscalPeriodID,
		&transaction.TransactionDate,
		&transaction.Details,
		&transaction.DebitAmount,
		&transaction.CreditAmount,
		&transaction.Balance,
		&transaction.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return domain.BankTransaction{}, domain.ErrRecordNotFound
		}
		logger.Error("bank transaction repository find failed", err, logger.Fields{
			"companyId": key.CompanyID,
		})
		return domain.BankTransaction{}, fmt.Errorf("find bank transaction: %w", err)
	}

	logger.Info("bank transaction repository find success", logger.Fields{
		"transactionId": transaction.ID,
		"companyId":     transaction.CompanyID,
	})

	return transaction, nil
}

func keyArgs(key domain.DuplicateKey) []any {
	return []any{
		key.CompanyID,
		domain.DateOnly(key.TransactionDate),
		key.DebitAmount,
		key.CreditAmount,
		domain.NormalizeDetails(key.Details),
		key.Balance,
	}
}
