package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sthwalo/acc-sub020/internal/domain"
)

func TestTrialBalanceColumns(t *testing.T) {
	tests := []struct {
		name       string
		normal     domain.NormalBalance
		closing    string
		wantDebit  string
		wantCredit string
	}{
		{
			name:       "debit-normal positive stays in debit column",
			normal:     domain.NormalBalanceDebit,
			closing:    "210897.25",
			wantDebit:  "210897.25",
			wantCredit: "0",
		},
		{
			name:       "debit-normal negative flips to credit column",
			normal:     domain.NormalBalanceDebit,
			closing:    "-69049.76",
			wantDebit:  "0",
			wantCredit: "69049.76",
		},
		{
			name:       "credit-normal positive stays in credit column",
			normal:     domain.NormalBalanceCredit,
			closing:    "141847.49",
			wantDebit:  "0",
			wantCredit: "141847.49",
		},
		{
			name:       "credit-normal negative flips to debit column",
			normal:     domain.NormalBalanceCredit,
			closing:    "-250.00",
			wantDebit:  "250.00",
			wantCredit: "0",
		},
		{
			name:       "zero closing sits on the normal side",
			normal:     domain.NormalBalanceDebit,
			closing:    "0",
			wantDebit:  "0",
			wantCredit: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balance := domain.AccountBalance{
				AccountCode:    "1100",
				NormalBalance:  tt.normal,
				ClosingBalance: dec(tt.closing),
			}
			assert.True(t, balance.TrialBalanceDebit().Equal(dec(tt.wantDebit)))
			assert.True(t, balance.TrialBalanceCredit().Equal(dec(tt.wantCredit)))
		})
	}
}
